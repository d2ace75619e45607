package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/varedit/pkg/editor"
	"github.com/yaklabco/varedit/pkg/suggest"
)

const (
	selectedMarker = "> "
	itemMarker     = "  "
	ellipsis       = "…"
)

// RenderDropdown draws the suggestion list within size. The selected item is
// marked so the list reads the same without color. Items beyond the height
// are scrolled so the selection stays visible.
func (s *Styles) RenderDropdown(items []suggest.Item, selected int, size editor.Size) string {
	if len(items) == 0 || size.Height <= 0 {
		return ""
	}

	first := 0
	if selected >= size.Height {
		first = selected - size.Height + 1
	}
	last := min(first+size.Height, len(items))

	width := max(size.Width, len(selectedMarker)+1)
	rows := make([]string, 0, last-first)
	for idx := first; idx < last; idx++ {
		rows = append(rows, s.renderItem(items[idx], idx == selected, width))
	}
	return strings.Join(rows, "\n")
}

func (s *Styles) renderItem(item suggest.Item, selected bool, width int) string {
	marker, style := itemMarker, s.Item
	if selected {
		marker, style = selectedMarker, s.SelectedItem
	}

	room := width - len(marker)
	label := truncate(item.DisplayLabel(), room)
	row := style.Render(marker + label)

	room -= lipgloss.Width(label)
	if item.Description != "" && room > 2 {
		desc := truncate(item.Description, room-2)
		row += "  " + s.Description.Render(desc)
		room -= 2 + lipgloss.Width(desc)
	}

	return row + strings.Repeat(" ", max(room, 0))
}

// Indent shifts every line of block right by n columns.
func Indent(block string, n int) string {
	if n <= 0 || block == "" {
		return block
	}
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(block, "\n", "\n"+pad)
}

// truncate shortens s to at most n terminal cells, marking the cut with an
// ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}

	limit := n - lipgloss.Width(ellipsis)
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > limit {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + ellipsis
}
