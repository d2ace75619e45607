package pretty

import "strings"

// ColorizeDiff styles a unified diff line by line.
func (s *Styles) ColorizeDiff(diff string) string {
	lines := strings.SplitAfter(diff, "\n")
	var b strings.Builder
	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]

		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			b.WriteString(s.DiffHeader.Render(body))
		case strings.HasPrefix(body, "@@"):
			b.WriteString(s.DiffHunk.Render(body))
		case strings.HasPrefix(body, "+"):
			b.WriteString(s.DiffAdd.Render(body))
		case strings.HasPrefix(body, "-"):
			b.WriteString(s.DiffRemove.Render(body))
		default:
			b.WriteString(body)
		}
		b.WriteString(nl)
	}
	return b.String()
}
