// Package commit computes the single text edit that inserts a chosen
// suggestion into a placeholder.
package commit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/varedit/pkg/caret"
	"github.com/yaklabco/varedit/pkg/edit"
	"github.com/yaklabco/varedit/pkg/placeholder"
	"github.com/yaklabco/varedit/pkg/suggest"
)

// ErrStaleCommit is returned when the recorded query position no longer
// matches the text. Callers drop the commit and wait for the next event.
var ErrStaleCommit = errors.New("stale commit")

// Result describes the outcome of a commit.
type Result struct {
	// NewText is the document after the edit.
	NewText string

	// NewCaret is where the caret goes after the edit.
	NewCaret int

	// Edit is the one replace operation that turns the old text into NewText.
	Edit edit.TextEdit

	// ClosedInserted reports whether the closing delimiter was added.
	ClosedInserted bool
}

// Commit replaces text[queryStart:queryStart+queryLength] with chosen.Value.
// The closing delimiter is appended unless it already follows the replaced
// range, in which case only the inner text changes.
func Commit(text string, queryStart, queryLength int, chosen suggest.Item, delims placeholder.Delimiters) (Result, error) {
	if err := delims.Validate(); err != nil {
		return Result{}, err
	}

	end := queryStart + queryLength
	if queryLength < 0 || queryStart < len(delims.Open) || end > len(text) {
		return Result{}, fmt.Errorf("%w: range [%d:%d] outside text of length %d",
			ErrStaleCommit, queryStart, end, len(text))
	}
	if text[queryStart-len(delims.Open):queryStart] != delims.Open {
		return Result{}, fmt.Errorf("%w: no opening delimiter before offset %d", ErrStaleCommit, queryStart)
	}

	insert := chosen.Value
	closed := strings.HasPrefix(text[end:], delims.Close)
	if !closed {
		insert += delims.Close
	}

	textEdit := edit.Replace(queryStart, end, insert)

	return Result{
		NewText:        edit.Apply(text, textEdit),
		NewCaret:       queryStart + len(insert),
		Edit:           textEdit,
		ClosedInserted: !closed,
	}, nil
}

// FromContext commits chosen at a resolved caret context.
func FromContext(text string, ctx caret.Context, chosen suggest.Item, delims placeholder.Delimiters) (Result, error) {
	if !ctx.Active() {
		return Result{}, fmt.Errorf("%w: caret is not inside a placeholder", ErrStaleCommit)
	}
	return Commit(text, ctx.QueryStart, ctx.ReplaceLength(), chosen, delims)
}
