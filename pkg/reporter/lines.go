package reporter

import (
	"sort"
	"unicode/utf8"
)

// LineIndex maps byte offsets of a text to lines and columns.
type LineIndex struct {
	text   string
	starts []int
}

// NewLineIndex indexes the line starts of text.
func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := range len(text) {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{text: text, starts: starts}
}

// Position returns the 1-based line and rune column of offset.
func (idx *LineIndex) Position(offset int) (int, int) {
	offset = max(0, min(offset, len(idx.text)))
	line := sort.Search(len(idx.starts), func(i int) bool { return idx.starts[i] > offset }) - 1
	col := utf8.RuneCountInString(idx.text[idx.starts[line]:offset]) + 1
	return line + 1, col
}

// Line returns the 1-based line without its line ending, and the byte
// offset where it starts.
func (idx *LineIndex) Line(line int) (string, int) {
	if line < 1 || line > len(idx.starts) {
		return "", len(idx.text)
	}
	start := idx.starts[line-1]
	end := len(idx.text)
	if line < len(idx.starts) {
		end = idx.starts[line] - 1
	}
	if end > start && idx.text[end-1] == '\r' {
		end--
	}
	return idx.text[start:end], start
}
