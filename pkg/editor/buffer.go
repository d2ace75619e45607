package editor

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/varedit/pkg/decoration"
	"github.com/yaklabco/varedit/pkg/edit"
)

type listener struct {
	id int
	fn func(ChangeReason)
}

// Buffer is an in-memory Adapter. It models a plain-text editor whose
// caret geometry is measured in character cells: Top is the zero-based line,
// Left the rune column and Height one line.
//
// Listeners are called synchronously, including for changes made by a
// listener itself. Format changes notify with ReasonText, as rich-text
// engines do.
type Buffer struct {
	text      string
	caret     int
	selection int
	formats   map[string][]decoration.Range
	listeners []listener
	nextID    int
}

// NewBuffer returns a Buffer holding text with the caret at the end.
func NewBuffer(text string) *Buffer {
	return &Buffer{
		text:    text,
		caret:   len(text),
		formats: make(map[string][]decoration.Range),
	}
}

// Text implements Adapter.
func (b *Buffer) Text() string {
	return b.text
}

// Caret implements Adapter.
func (b *Buffer) Caret() int {
	return b.caret
}

// Selection returns the length of the selection after the caret.
func (b *Buffer) Selection() int {
	return b.selection
}

// SetCaret implements Adapter. Offsets are clamped to the text.
func (b *Buffer) SetCaret(offset, length int) {
	b.caret = edit.Clamp(b.text, offset)
	b.selection = edit.Clamp(b.text, b.caret+max(length, 0)) - b.caret
	b.notify(ReasonSelection)
}

// ReplaceRange implements Adapter. Format ranges and the caret follow the edit.
func (b *Buffer) ReplaceRange(start, end int, text string) {
	start, end = edit.ClampRange(b.text, start, end)
	e := edit.Replace(start, end, text)

	b.text = edit.Apply(b.text, e)
	for name, ranges := range b.formats {
		b.formats[name] = shiftRanges(ranges, e)
	}

	switch {
	case b.caret >= end:
		b.caret += e.Delta()
	case b.caret > start:
		b.caret = start + len(text)
	}
	b.selection = 0

	b.notify(ReasonText)
}

// AddInlineFormat implements Adapter.
func (b *Buffer) AddInlineFormat(start, end int, format string) {
	start, end = edit.ClampRange(b.text, start, end)
	if start == end {
		return
	}
	r := decoration.Range{Start: start, End: end}
	if !slices.Contains(b.formats[format], r) {
		b.formats[format] = append(b.formats[format], r)
	}
	b.notify(ReasonText)
}

// RemoveInlineFormat implements Adapter. Ranges partly covered are trimmed.
func (b *Buffer) RemoveInlineFormat(start, end int, format string) {
	start, end = edit.ClampRange(b.text, start, end)
	cut := decoration.Range{Start: start, End: end}

	var kept []decoration.Range
	for _, r := range b.formats[format] {
		if !r.Overlaps(cut) {
			kept = append(kept, r)
			continue
		}
		if r.Start < cut.Start {
			kept = append(kept, decoration.Range{Start: r.Start, End: cut.Start})
		}
		if r.End > cut.End {
			kept = append(kept, decoration.Range{Start: cut.End, End: r.End})
		}
	}
	b.formats[format] = kept
	b.notify(ReasonText)
}

// InlineFormats implements Adapter. The result is sorted by start offset.
func (b *Buffer) InlineFormats(format string) []decoration.Range {
	out := slices.Clone(b.formats[format])
	slices.SortFunc(out, func(x, y decoration.Range) int {
		if x.Start != y.Start {
			return x.Start - y.Start
		}
		return x.End - y.End
	})
	return out
}

// OnChange implements Adapter.
func (b *Buffer) OnChange(fn func(ChangeReason)) func() {
	id := b.nextID
	b.nextID++
	b.listeners = append(b.listeners, listener{id: id, fn: fn})

	return func() {
		b.listeners = slices.DeleteFunc(b.listeners, func(l listener) bool {
			return l.id == id
		})
	}
}

// BoundingBox implements Adapter.
func (b *Buffer) BoundingBox(offset int) Box {
	offset = edit.Clamp(b.text, offset)
	before := b.text[:offset]
	line := strings.Count(before, "\n")
	col := utf8.RuneCountInString(before[strings.LastIndexByte(before, '\n')+1:])
	return Box{Top: line, Left: col, Height: 1}
}

// Type replaces the selection (or inserts at the caret) with s, like a keystroke.
func (b *Buffer) Type(s string) {
	b.ReplaceRange(b.caret, b.caret+b.selection, s)
}

// Backspace deletes the selection or the rune before the caret.
func (b *Buffer) Backspace() {
	if b.selection > 0 {
		b.ReplaceRange(b.caret, b.caret+b.selection, "")
		return
	}
	if b.caret == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(b.text[:b.caret])
	b.ReplaceRange(b.caret-size, b.caret, "")
}

func (b *Buffer) notify(reason ChangeReason) {
	for _, l := range slices.Clone(b.listeners) {
		l.fn(reason)
	}
}

// shiftRanges moves ranges to account for e. Text inserted strictly inside a
// range joins it; ranges wholly replaced disappear.
func shiftRanges(ranges []decoration.Range, e edit.TextEdit) []decoration.Range {
	insertedEnd := e.StartOffset + len(e.NewText)
	var out []decoration.Range
	for _, r := range ranges {
		switch {
		case r.End <= e.StartOffset:
		case r.Start >= e.EndOffset:
			r.Start += e.Delta()
			r.End += e.Delta()
		default:
			if r.Start >= e.StartOffset {
				r.Start = insertedEnd
			}
			if r.End > e.EndOffset {
				r.End += e.Delta()
			} else {
				r.End = e.StartOffset
			}
		}
		if r.End > r.Start {
			out = append(out, r)
		}
	}
	return out
}
