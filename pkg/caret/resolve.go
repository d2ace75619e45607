// Package caret classifies the caret position relative to placeholders and
// extracts the partial name being typed.
package caret

import (
	"strings"

	"github.com/yaklabco/varedit/pkg/placeholder"
)

// State classifies the caret's relationship to a placeholder.
type State int

const (
	// NotInPlaceholder means no suggestion query is active.
	NotInPlaceholder State = iota
	// InsideOpenPlaceholder means the caret follows an opening delimiter
	// that has no closing delimiter yet.
	InsideOpenPlaceholder
	// InsideClosedPlaceholder means the caret sits within a complete pair.
	InsideClosedPlaceholder
)

func (s State) String() string {
	switch s {
	case NotInPlaceholder:
		return "none"
	case InsideOpenPlaceholder:
		return "open"
	case InsideClosedPlaceholder:
		return "closed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Context is the resolved caret classification.
type Context struct {
	State State `json:"state"`

	// Caret is the clamped caret offset the context was resolved at.
	Caret int `json:"caret"`

	// QueryStart is the offset right after the opening delimiter.
	QueryStart int `json:"query_start"`

	// Query is the text between QueryStart and the caret.
	Query string `json:"query"`

	// ReplaceEnd is where the text a commit replaces ends: the caret for an
	// open placeholder, the closing delimiter for a closed one.
	ReplaceEnd int `json:"replace_end"`
}

// Active reports whether the caret is inside a placeholder.
func (c Context) Active() bool {
	return c.State != NotInPlaceholder
}

// ReplaceLength is the number of bytes a commit replaces starting at QueryStart.
func (c Context) ReplaceLength() int {
	if !c.Active() {
		return 0
	}
	return c.ReplaceEnd - c.QueryStart
}

// Resolve classifies caret within text. Only the caret's line is examined.
// A caret outside the text is clamped to its bounds.
func Resolve(text string, caret int, delims placeholder.Delimiters) Context {
	caret = clamp(caret, 0, len(text))
	none := Context{State: NotInPlaceholder, Caret: caret, QueryStart: caret, ReplaceEnd: caret}

	if delims.Validate() != nil {
		return none
	}

	lineStart, lineEnd := lineBounds(text, caret)

	rel := strings.LastIndex(text[lineStart:caret], delims.Open)
	if rel < 0 {
		return none
	}
	openPos := lineStart + rel
	queryStart := openPos + len(delims.Open)

	// A close between the open and the caret means that placeholder already
	// ended, e.g. {{a}}|{{b}}.
	if strings.Contains(text[queryStart:caret], delims.Close) {
		return none
	}

	ctx := Context{
		Caret:      caret,
		QueryStart: queryStart,
		Query:      text[queryStart:caret],
	}

	if rel := strings.Index(text[caret:lineEnd], delims.Close); rel >= 0 {
		closePos := caret + rel
		if strings.Contains(text[queryStart:closePos], delims.Open) {
			// The close ends a later placeholder, e.g. {{na| and {{x}}.
			ctx.State = InsideOpenPlaceholder
			ctx.ReplaceEnd = caret
			return ctx
		}
		ctx.State = InsideClosedPlaceholder
		ctx.ReplaceEnd = closePos
		return ctx
	}

	if strings.Contains(text[openPos:lineEnd], delims.Close) {
		return none
	}

	ctx.State = InsideOpenPlaceholder
	ctx.ReplaceEnd = caret
	return ctx
}

// lineBounds returns the half-open range of the line containing offset,
// excluding the newline characters.
func lineBounds(text string, offset int) (int, int) {
	start := strings.LastIndexByte(text[:offset], '\n') + 1

	end := len(text)
	if rel := strings.IndexByte(text[offset:], '\n'); rel >= 0 {
		end = offset + rel
	}
	if end > start && text[end-1] == '\r' && end-1 >= offset {
		end--
	}
	return start, end
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
