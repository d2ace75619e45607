package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/varedit/pkg/editor"
	"github.com/yaklabco/varedit/pkg/placeholder"
)

// HighlightLine styles the parts of line covered by spans. lineStart is the
// byte offset of line within the text the spans were scanned from.
func (s *Styles) HighlightLine(line string, lineStart int, spans []placeholder.Span) string {
	var b strings.Builder
	pos := 0
	for _, span := range spans {
		start := max(span.Start-lineStart, pos)
		end := min(span.End-lineStart, len(line))
		if end <= start {
			continue
		}
		b.WriteString(s.SourceLine.Render(line[pos:start]))
		b.WriteString(s.Placeholder.Render(line[start:end]))
		pos = end
	}
	b.WriteString(s.SourceLine.Render(line[pos:]))
	return b.String()
}

// FormatLocation formats path:line:col.
func (s *Styles) FormatLocation(path string, line, col int) string {
	return s.FilePath.Render(path) + s.Location.Render(fmt.Sprintf(":%d:%d", line, col))
}

// FormatCaret returns a marker line pointing at the rune column col of line.
func (s *Styles) FormatCaret(line string, offset int) string {
	col := editor.ByteToRune(line, offset)
	return strings.Repeat(" ", col) + s.Caret.Render("^")
}
