package caret_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/varedit/pkg/caret"
	"github.com/yaklabco/varedit/pkg/placeholder"
)

func FuzzResolve(f *testing.F) {
	f.Add("Hi {{us", 7)
	f.Add("{{a}}{{b}}", 5)
	f.Add("{{user}} x", 4)
	f.Add("Hi {{na and {{x}}", 7)
	f.Add("a\n{{b\nc}}", 5)
	f.Add("", 0)
	f.Add("{{", -1)

	delims := placeholder.DefaultDelimiters()

	f.Fuzz(func(t *testing.T, text string, offset int) {
		ctx := caret.Resolve(text, offset, delims)

		if ctx.Caret < 0 || ctx.Caret > len(text) {
			t.Fatalf("caret %d not clamped to [0,%d]", ctx.Caret, len(text))
		}
		if !ctx.Active() {
			return
		}
		if ctx.QueryStart < len(delims.Open) || ctx.QueryStart > ctx.Caret {
			t.Fatalf("query start %d out of range (caret %d)", ctx.QueryStart, ctx.Caret)
		}
		if text[ctx.QueryStart-len(delims.Open):ctx.QueryStart] != delims.Open {
			t.Fatalf("query start %d not preceded by opening delimiter", ctx.QueryStart)
		}
		if text[ctx.QueryStart:ctx.Caret] != ctx.Query {
			t.Fatalf("query %q does not match text", ctx.Query)
		}
		if ctx.ReplaceEnd < ctx.Caret || ctx.ReplaceEnd > len(text) {
			t.Fatalf("replace end %d out of range", ctx.ReplaceEnd)
		}
		if strings.Contains(ctx.Query, "\n") {
			t.Fatalf("query %q crosses a line", ctx.Query)
		}
		if ctx.State == caret.InsideClosedPlaceholder && !strings.HasPrefix(text[ctx.ReplaceEnd:], delims.Close) {
			t.Fatalf("closed context does not end at a closing delimiter")
		}
	})
}
