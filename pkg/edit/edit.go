// Package edit provides byte-range text edits and their application.
package edit

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// TextEdit replaces the half-open byte range [StartOffset, EndOffset) with NewText.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int `json:"start"`

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int `json:"end"`

	// NewText is the replacement text.
	NewText string `json:"new_text"`
}

// Replace builds a TextEdit for [start, end).
func Replace(start, end int, newText string) TextEdit {
	return TextEdit{StartOffset: start, EndOffset: end, NewText: newText}
}

// Len returns the length of the replaced range.
func (e TextEdit) Len() int {
	return e.EndOffset - e.StartOffset
}

// Delta is the change in document length once the edit is applied.
func (e TextEdit) Delta() int {
	return len(e.NewText) - e.Len()
}

// ValidationError describes an edit that does not fit the content.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ConflictError describes overlapping edits.
type ConflictError struct {
	Edit1 TextEdit
	Edit2 TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.Edit1.StartOffset, e.Edit1.EndOffset,
		e.Edit2.StartOffset, e.Edit2.EndOffset)
}

// Validate checks that the edit range lies within content of length contentLen.
func (e TextEdit) Validate(contentLen int) error {
	switch {
	case e.StartOffset < 0:
		return &ValidationError{Edit: e, Message: "start offset is negative"}
	case e.EndOffset < e.StartOffset:
		return &ValidationError{Edit: e, Message: "end offset is before start offset"}
	case e.EndOffset > contentLen:
		return &ValidationError{
			Edit:    e,
			Message: fmt.Sprintf("end offset %d exceeds content length %d", e.EndOffset, contentLen),
		}
	}
	return nil
}

// Apply returns text with the edit applied. The edit must be valid for text.
func Apply(text string, e TextEdit) string {
	var out strings.Builder
	out.Grow(len(text) + e.Delta())
	out.WriteString(text[:e.StartOffset])
	out.WriteString(e.NewText)
	out.WriteString(text[e.EndOffset:])
	return out.String()
}

// ApplyAll applies non-overlapping edits to text in a single pass.
// Edits are validated and sorted first.
func ApplyAll(text string, edits []TextEdit) (string, error) {
	prepared, err := Prepare(edits, len(text))
	if err != nil {
		return "", err
	}
	if len(prepared) == 0 {
		return text, nil
	}

	delta := 0
	for _, e := range prepared {
		delta += e.Delta()
	}

	var out strings.Builder
	out.Grow(len(text) + delta)

	cursor := 0
	for _, e := range prepared {
		out.WriteString(text[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.WriteString(text[cursor:])

	return out.String(), nil
}

// Prepare validates, sorts and checks edits for overlaps.
// The input slice is not modified.
func Prepare(edits []TextEdit, contentLen int) ([]TextEdit, error) {
	if len(edits) == 0 {
		return edits, nil
	}

	for _, e := range edits {
		if err := e.Validate(contentLen); err != nil {
			return nil, err
		}
	}

	result := make([]TextEdit, len(edits))
	copy(result, edits)
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].StartOffset != result[j].StartOffset {
			return result[i].StartOffset < result[j].StartOffset
		}
		return result[i].EndOffset < result[j].EndOffset
	})

	for i := 1; i < len(result); i++ {
		if result[i].StartOffset < result[i-1].EndOffset {
			return nil, &ConflictError{Edit1: result[i-1], Edit2: result[i]}
		}
	}

	return result, nil
}

// Clamp limits offset to [0, len(text)] and moves it back to the start of
// the rune it falls inside.
func Clamp(text string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(text) {
		return len(text)
	}
	for offset > 0 && !utf8.RuneStart(text[offset]) {
		offset--
	}
	return offset
}

// ClampRange clamps both ends of [start, end) and orders them.
func ClampRange(text string, start, end int) (int, int) {
	start, end = Clamp(text, start), Clamp(text, end)
	if end < start {
		start, end = end, start
	}
	return start, end
}
