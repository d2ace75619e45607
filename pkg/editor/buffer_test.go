package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/varedit/pkg/decoration"
	"github.com/yaklabco/varedit/pkg/editor"
)

func TestBuffer_ReplaceRangeShiftsFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start int
		end   int
		text  string
		want  []decoration.Range
	}{
		{
			name:  "insert before range",
			start: 0,
			end:   0,
			text:  "ab",
			want:  []decoration.Range{{Start: 6, End: 11}},
		},
		{
			name:  "insert after range",
			start: 9,
			end:   9,
			text:  "ab",
			want:  []decoration.Range{{Start: 4, End: 9}},
		},
		{
			name:  "insert inside range",
			start: 6,
			end:   6,
			text:  "xy",
			want:  []decoration.Range{{Start: 4, End: 11}},
		},
		{
			name:  "replace whole range",
			start: 4,
			end:   9,
			text:  "z",
			want:  nil,
		},
		{
			name:  "delete tail of range",
			start: 7,
			end:   10,
			text:  "",
			want:  []decoration.Range{{Start: 4, End: 7}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := editor.NewBuffer("Hi, {{a}} there")
			buf.AddInlineFormat(4, 9, "var")

			buf.ReplaceRange(tt.start, tt.end, tt.text)

			assert.Equal(t, tt.want, buf.InlineFormats("var"))
		})
	}
}

func TestBuffer_ReplaceRangeMovesCaret(t *testing.T) {
	t.Parallel()

	buf := editor.NewBuffer("hello world")
	buf.SetCaret(8, 0)

	buf.ReplaceRange(0, 5, "hi")
	assert.Equal(t, 5, buf.Caret())

	buf.ReplaceRange(3, 6, "you")
	assert.Equal(t, 6, buf.Caret())
}

func TestBuffer_RemoveInlineFormatTrims(t *testing.T) {
	t.Parallel()

	buf := editor.NewBuffer("0123456789")
	buf.AddInlineFormat(2, 8, "var")

	buf.RemoveInlineFormat(4, 6, "var")

	assert.Equal(t, []decoration.Range{{Start: 2, End: 4}, {Start: 6, End: 8}}, buf.InlineFormats("var"))
}

func TestBuffer_AddInlineFormatIgnoresDuplicatesAndEmpty(t *testing.T) {
	t.Parallel()

	buf := editor.NewBuffer("0123456789")
	buf.AddInlineFormat(2, 4, "var")
	buf.AddInlineFormat(2, 4, "var")
	buf.AddInlineFormat(5, 5, "var")

	assert.Equal(t, []decoration.Range{{Start: 2, End: 4}}, buf.InlineFormats("var"))
	assert.Empty(t, buf.InlineFormats("other"))
}

func TestBuffer_TypeAndBackspace(t *testing.T) {
	t.Parallel()

	buf := editor.NewBuffer("")
	buf.Type("héllo")
	assert.Equal(t, 6, buf.Caret())

	buf.Backspace()
	buf.Backspace()
	buf.Backspace()
	buf.Backspace()
	assert.Equal(t, "h", buf.Text())
	assert.Equal(t, 1, buf.Caret())

	buf.SetCaret(0, 1)
	buf.Type("j")
	assert.Equal(t, "j", buf.Text())

	buf.SetCaret(0, 0)
	buf.Backspace()
	assert.Equal(t, "j", buf.Text())
}

func TestBuffer_SetCaretClamps(t *testing.T) {
	t.Parallel()

	buf := editor.NewBuffer("abc")
	buf.SetCaret(-4, 2)
	assert.Equal(t, 0, buf.Caret())
	assert.Equal(t, 2, buf.Selection())

	buf.SetCaret(2, 10)
	assert.Equal(t, 2, buf.Caret())
	assert.Equal(t, 1, buf.Selection())
}

func TestBuffer_OnChange(t *testing.T) {
	t.Parallel()

	buf := editor.NewBuffer("")

	var reasons []editor.ChangeReason
	unsubscribe := buf.OnChange(func(r editor.ChangeReason) {
		reasons = append(reasons, r)
	})

	buf.Type("a")
	buf.SetCaret(0, 0)
	unsubscribe()
	buf.Type("b")

	require.Len(t, reasons, 2)
	assert.Equal(t, []editor.ChangeReason{editor.ReasonText, editor.ReasonSelection}, reasons)
}

func TestBuffer_BoundingBox(t *testing.T) {
	t.Parallel()

	buf := editor.NewBuffer("first\nsé{{x")

	assert.Equal(t, editor.Box{Top: 0, Left: 3, Height: 1}, buf.BoundingBox(3))
	assert.Equal(t, editor.Box{Top: 1, Left: 0, Height: 1}, buf.BoundingBox(6))
	assert.Equal(t, editor.Box{Top: 1, Left: 4, Height: 1}, buf.BoundingBox(11))
}
