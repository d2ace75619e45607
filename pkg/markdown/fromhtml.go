package markdown

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yaklabco/varedit/pkg/langdetect"
	"github.com/yaklabco/varedit/pkg/placeholder"
)

// FromHTML converts editor HTML back to markdown. Placeholder spans become
// their delimited text. Unknown tags are dropped and their text kept.
func (c *Converter) FromHTML(src string) (string, error) {
	w := &htmlWriter{delims: c.delims, class: c.class}
	w.push(0)

	z := html.NewTokenizer(strings.NewReader(src))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("tokenize html: %w", err)
			}
			return w.finish(), nil
		case html.TextToken:
			w.text(string(z.Text()))
		case html.StartTagToken:
			w.start(z.Token())
		case html.SelfClosingTagToken:
			tok := z.Token()
			w.start(tok)
			w.end(tok.DataAtom)
		case html.EndTagToken:
			w.end(z.Token().DataAtom)
		case html.CommentToken, html.DoctypeToken:
		}
	}
}

// frame collects the output of an element that needs post-processing
// once it closes.
type frame struct {
	tag    atom.Atom
	buf    strings.Builder
	href   string
	lang   string
	marker string
}

type list struct {
	ordered bool
	n       int
}

type htmlWriter struct {
	delims placeholder.Delimiters
	class  string

	stack []*frame
	lists []list

	skipTag   atom.Atom
	skipDepth int
}

func (w *htmlWriter) push(tag atom.Atom) *frame {
	f := &frame{tag: tag}
	w.stack = append(w.stack, f)
	return f
}

func (w *htmlWriter) top() *frame {
	return w.stack[len(w.stack)-1]
}

func (w *htmlWriter) inPre() bool {
	return w.top().tag == atom.Pre
}

func (w *htmlWriter) text(s string) {
	if w.skipDepth > 0 {
		return
	}

	f := w.top()
	if f.tag == atom.Pre {
		f.buf.WriteString(s)
		return
	}

	s = collapseSpace(s)
	if atBreak(&f.buf) {
		s = strings.TrimLeft(s, " ")
	}
	f.buf.WriteString(s)
}

//nolint:cyclop,funlen // one case per supported tag
func (w *htmlWriter) start(tok html.Token) {
	if w.skipDepth > 0 {
		if tok.DataAtom == w.skipTag {
			w.skipDepth++
		}
		return
	}

	f := w.top()
	if w.inPre() {
		if tok.DataAtom == atom.Code {
			f.lang = languageClass(attr(tok, "class"))
		}
		if tok.DataAtom == atom.Br {
			f.buf.WriteString("\n")
		}
		return
	}

	switch tok.DataAtom {
	case atom.P, atom.Div:
		blankLine(&f.buf)
	case atom.Br:
		trimTrailingSpace(&f.buf)
		f.buf.WriteString("\n")
	case atom.Hr:
		blankLine(&f.buf)
		f.buf.WriteString("---")
		blankLine(&f.buf)
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		blankLine(&f.buf)
		f.buf.WriteString(strings.Repeat("#", headingLevel(tok.DataAtom)) + " ")
	case atom.Strong, atom.B:
		f.buf.WriteString("**")
	case atom.Em, atom.I:
		f.buf.WriteString("*")
	case atom.Del, atom.S:
		f.buf.WriteString("~~")
	case atom.Code:
		f.buf.WriteString("`")
	case atom.A:
		w.push(atom.A).href = attr(tok, "href")
	case atom.Pre:
		w.push(atom.Pre)
	case atom.Blockquote:
		w.push(atom.Blockquote)
	case atom.Ul, atom.Ol:
		if f.tag == atom.Li {
			newline(&f.buf)
		} else {
			blankLine(&f.buf)
		}
		w.lists = append(w.lists, list{ordered: tok.DataAtom == atom.Ol})
	case atom.Li:
		w.push(atom.Li).marker = w.nextMarker()
	case atom.Span:
		if w.isPlaceholder(tok) {
			if name, ok := attrOK(tok, "data-template"); ok {
				f.buf.WriteString(w.delims.Wrap(name))
				w.skip(atom.Span)
			}
		}
	case atom.Script, atom.Style, atom.Head:
		w.skip(tok.DataAtom)
	}
}

func (w *htmlWriter) end(tag atom.Atom) {
	if w.skipDepth > 0 {
		if tag == w.skipTag {
			w.skipDepth--
		}
		return
	}

	if w.inPre() && tag != atom.Pre {
		return
	}

	f := w.top()
	switch tag {
	case atom.P, atom.Div, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		blankLine(&f.buf)
	case atom.Strong, atom.B:
		f.buf.WriteString("**")
	case atom.Em, atom.I:
		f.buf.WriteString("*")
	case atom.Del, atom.S:
		f.buf.WriteString("~~")
	case atom.Code:
		f.buf.WriteString("`")
	case atom.A, atom.Pre, atom.Blockquote, atom.Li:
		w.closeThrough(tag)
	case atom.Ul, atom.Ol:
		if len(w.lists) > 0 {
			w.lists = w.lists[:len(w.lists)-1]
		}
		if f.tag != atom.Li {
			blankLine(&f.buf)
		}
	}
}

func (w *htmlWriter) skip(tag atom.Atom) {
	w.skipTag = tag
	w.skipDepth = 1
}

func (w *htmlWriter) isPlaceholder(tok html.Token) bool {
	return slices.Contains(strings.Fields(attr(tok, "class")), w.class)
}

func (w *htmlWriter) nextMarker() string {
	if len(w.lists) == 0 {
		return "- "
	}
	l := &w.lists[len(w.lists)-1]
	if !l.ordered {
		return "- "
	}
	l.n++
	return strconv.Itoa(l.n) + ". "
}

// closeThrough closes open frames up to and including the nearest tag frame.
func (w *htmlWriter) closeThrough(tag atom.Atom) {
	idx := -1
	for i := len(w.stack) - 1; i > 0; i-- {
		if w.stack[i].tag == tag {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return
	}
	for len(w.stack) > idx {
		w.closeFrame()
	}
}

func (w *htmlWriter) closeFrame() {
	f := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	parent := &w.top().buf

	switch f.tag {
	case atom.A:
		label := strings.TrimSpace(f.buf.String())
		if f.href == "" || f.href == label {
			parent.WriteString(label)
			return
		}
		parent.WriteString("[" + label + "](" + f.href + ")")
	case atom.Pre:
		code := strings.TrimRight(f.buf.String(), "\n")
		lang := f.lang
		if lang == "" {
			lang = langdetect.FenceTag(code)
		}
		fence := "```"
		if strings.Contains(code, fence) {
			fence = "~~~"
		}
		blankLine(parent)
		parent.WriteString(fence + lang + "\n" + code + "\n" + fence)
		blankLine(parent)
	case atom.Blockquote:
		blankLine(parent)
		parent.WriteString(prefixLines(strings.TrimSpace(f.buf.String()), "> "))
		blankLine(parent)
	case atom.Li:
		body := strings.TrimSpace(f.buf.String())
		newline(parent)
		parent.WriteString(f.marker + indentLines(body, strings.Repeat(" ", len(f.marker))) + "\n")
	}
}

func (w *htmlWriter) finish() string {
	for len(w.stack) > 1 {
		w.closeFrame()
	}
	return strings.TrimSpace(w.stack[0].buf.String())
}

func attr(tok html.Token, key string) string {
	v, _ := attrOK(tok, key)
	return v
}

func attrOK(tok html.Token, key string) (string, bool) {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func languageClass(class string) string {
	for _, c := range strings.Fields(class) {
		if lang, ok := strings.CutPrefix(c, "language-"); ok {
			return lang
		}
	}
	return ""
}

func headingLevel(a atom.Atom) int {
	return slices.Index([]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}, a) + 1
}

// collapseSpace folds runs of whitespace into single spaces.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}

	out := strings.Join(fields, " ")
	if strings.TrimLeft(s, " \t\r\n") != s {
		out = " " + out
	}
	if strings.TrimRight(s, " \t\r\n") != s {
		out += " "
	}
	return out
}

// atBreak reports whether b is empty or ends in whitespace.
func atBreak(b *strings.Builder) bool {
	s := b.String()
	return s == "" || strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\n")
}

func trimTrailingSpace(b *strings.Builder) {
	s := b.String()
	if trimmed := strings.TrimRight(s, " "); trimmed != s {
		b.Reset()
		b.WriteString(trimmed)
	}
}

func newline(b *strings.Builder) {
	trimTrailingSpace(b)
	if s := b.String(); s != "" && !strings.HasSuffix(s, "\n") {
		b.WriteString("\n")
	}
}

// blankLine ends the current block so the next output starts a new one.
func blankLine(b *strings.Builder) {
	s := b.String()
	if s == "" {
		return
	}
	trimmed := strings.TrimRight(s, " \n")
	b.Reset()
	b.WriteString(trimmed)
	if trimmed != "" {
		b.WriteString("\n\n")
	}
}

func prefixLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = strings.TrimRight(prefix, " ")
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func indentLines(s, pad string) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
