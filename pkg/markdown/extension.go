package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/varedit/pkg/placeholder"
)

// KindPlaceholder is the ast.NodeKind of Placeholder nodes.
//
//nolint:gochecknoglobals // goldmark node kinds are registered once
var KindPlaceholder = ast.NewNodeKind("Placeholder")

// Placeholder is an inline node for a delimited template variable.
type Placeholder struct {
	ast.BaseInline

	// Name is the text between the delimiters.
	Name string

	// Raw is the placeholder as written, delimiters included.
	Raw string
}

// Kind implements ast.Node.
func (n *Placeholder) Kind() ast.NodeKind {
	return KindPlaceholder
}

// Dump implements ast.Node.
func (n *Placeholder) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Name": n.Name}, nil)
}

type placeholderParser struct {
	open  []byte
	close []byte
}

func (p *placeholderParser) Trigger() []byte {
	return p.open[:1]
}

func (p *placeholderParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, p.open) {
		return nil
	}

	end := bytes.Index(line[len(p.open):], p.close)
	if end < 0 {
		return nil
	}

	total := len(p.open) + end + len(p.close)
	node := &Placeholder{
		Name: string(line[len(p.open) : len(p.open)+end]),
		Raw:  string(line[:total]),
	}
	block.Advance(total)

	return node
}

type placeholderRenderer struct {
	class string
}

func (r *placeholderRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindPlaceholder, r.render)
}

func (r *placeholderRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n, ok := node.(*Placeholder)
	if !ok {
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<span class="`)
	_, _ = w.Write(util.EscapeHTML([]byte(r.class)))
	_, _ = w.WriteString(`" data-template="`)
	_, _ = w.Write(util.EscapeHTML([]byte(n.Name)))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML([]byte(n.Raw)))
	_, _ = w.WriteString(`</span>`)

	return ast.WalkSkipChildren, nil
}

// placeholderExtension parses placeholders ahead of emphasis and links so
// their inner text is kept verbatim.
type placeholderExtension struct {
	delims placeholder.Delimiters
	class  string
}

func (e *placeholderExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&placeholderParser{
			open:  []byte(e.delims.Open),
			close: []byte(e.delims.Close),
		}, 90),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&placeholderRenderer{class: e.class}, 500),
	))
}
