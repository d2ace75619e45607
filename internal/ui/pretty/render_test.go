package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/varedit/internal/ui/pretty"
	"github.com/yaklabco/varedit/pkg/editor"
	"github.com/yaklabco/varedit/pkg/placeholder"
	"github.com/yaklabco/varedit/pkg/suggest"
)

func TestHighlightLine_PlainTextUnchanged(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	text := "first\nHi {{name}} and {{x}}"
	spans := placeholder.Scan(text, placeholder.DefaultDelimiters())

	assert.Equal(t, "Hi {{name}} and {{x}}", styles.HighlightLine("Hi {{name}} and {{x}}", 6, spans))
	assert.Equal(t, "first", styles.HighlightLine("first", 0, spans))
}

func TestFormatCaret(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "   ^", styles.FormatCaret("héllo", 4))
	assert.Equal(t, "notes.md:2:5", styles.FormatLocation("notes.md", 2, 5))
}

func TestRenderDropdown(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	items := []suggest.Item{
		{Value: "first_name", Description: "Given name"},
		{Value: "last_name"},
		{Value: "company_registration_number"},
	}

	got := styles.RenderDropdown(items, 1, editor.Size{Width: 20, Height: 3})
	lines := strings.Split(got, "\n")

	assert.Equal(t, []string{
		"  first_name  Given…",
		"> last_name         ",
		"  company_registrat…",
	}, lines)
}

func TestRenderDropdown_WideLabels(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	items := []suggest.Item{
		{Value: "名前"},
		{Value: "住所の番号です"},
	}

	got := styles.RenderDropdown(items, 0, editor.Size{Width: 10, Height: 2})

	assert.Equal(t, []string{
		"> 名前    ",
		"  住所の… ",
	}, strings.Split(got, "\n"))
}

func TestRenderDropdown_ScrollsToSelection(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	items := []suggest.Item{{Value: "a"}, {Value: "b"}, {Value: "c"}, {Value: "d"}}

	got := styles.RenderDropdown(items, 3, editor.Size{Width: 5, Height: 2})

	assert.Equal(t, "  c  \n> d  ", got)
	assert.Empty(t, styles.RenderDropdown(nil, 0, editor.Size{Width: 5, Height: 2}))
}

func TestIndent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  a\n  b", pretty.Indent("a\nb", 2))
	assert.Equal(t, "a", pretty.Indent("a", 0))
}

func TestColorizeDiff_PlainPassThrough(t *testing.T) {
	t.Parallel()

	diff := "--- a/x\n+++ b/x\n@@ -1 +1 @@\n-old\n+new\n"
	assert.Equal(t, diff, pretty.NewStyles(false).ColorizeDiff(diff))
}
