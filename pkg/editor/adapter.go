// Package editor connects the placeholder core to a host text editor.
//
// A host integration implements Adapter by translating its native selection
// and range model to byte offsets. Session then drives highlighting,
// suggestions and commits through that adapter:
//
//	buf := editor.NewBuffer("Hi {{us")
//	session, err := editor.NewSession(buf, editor.WithCatalog(items))
//	if err != nil {
//	    // invalid delimiters
//	}
//	defer session.Close()
//
//	buf.SetCaret(7, 0)
//	session.HandleKey(editor.KeyEnter)
package editor

import "github.com/yaklabco/varedit/pkg/decoration"

// ChangeReason tells a change listener what changed.
type ChangeReason string

const (
	ReasonText      ChangeReason = "text"
	ReasonSelection ChangeReason = "selection"
)

// Box is the on-screen geometry of a caret position, in the host's units.
type Box struct {
	Top    int
	Left   int
	Height int
}

// Adapter is the host editor as seen by a Session. Offsets are byte offsets
// into the UTF-8 plain text returned by Text.
type Adapter interface {
	// Text returns the current plain text.
	Text() string

	// Caret returns the caret offset.
	Caret() int

	// SetCaret moves the caret, selecting length bytes after it.
	SetCaret(offset, length int)

	// ReplaceRange replaces [start, end) with text in one operation.
	ReplaceRange(start, end int, text string)

	// AddInlineFormat applies the named format to [start, end).
	AddInlineFormat(start, end int, format string)

	// RemoveInlineFormat clears the named format from [start, end).
	RemoveInlineFormat(start, end int, format string)

	// InlineFormats returns the ranges currently carrying the named format.
	// Adjacent runs may be reported merged or split.
	InlineFormats(format string) []decoration.Range

	// OnChange registers fn for change notifications and returns a function
	// that removes it.
	OnChange(fn func(ChangeReason)) (unsubscribe func())

	// BoundingBox returns the geometry of the caret at offset.
	BoundingBox(offset int) Box
}
