// Package decoration keeps an inline format layer in step with the
// placeholders found in a document.
package decoration

import (
	"slices"

	"github.com/yaklabco/varedit/pkg/placeholder"
)

// DefaultFormat is the inline format name used for placeholder highlighting.
const DefaultFormat = "template-variable"

// Range is a half-open byte range carrying a decoration.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the length of the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Overlaps reports whether r and other share at least one byte.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

func compareRanges(a, b Range) int {
	if a.Start != b.Start {
		return a.Start - b.Start
	}
	return a.End - b.End
}

// OpKind is the kind of a format operation.
type OpKind int

const (
	OpRemove OpKind = iota
	OpAdd
)

// Op is one format operation on the host editor.
type Op struct {
	Kind  OpKind
	Range Range
}

// Plan is the minimal set of changes that turns the current format ranges
// into the target ranges.
type Plan struct {
	ToAdd    []Range
	ToRemove []Range
}

// Empty reports whether the plan changes nothing.
func (p Plan) Empty() bool {
	return len(p.ToAdd) == 0 && len(p.ToRemove) == 0
}

// Ops returns the plan as an ordered operation list. Removals come first so
// that a removal never clears a range that was just added.
func (p Plan) Ops() []Op {
	ops := make([]Op, 0, len(p.ToAdd)+len(p.ToRemove))
	for _, r := range p.ToRemove {
		ops = append(ops, Op{Kind: OpRemove, Range: r})
	}
	for _, r := range p.ToAdd {
		ops = append(ops, Op{Kind: OpAdd, Range: r})
	}
	return ops
}

// Targets converts spans to the ranges they should be decorated with.
func Targets(spans []placeholder.Span) []Range {
	out := make([]Range, 0, len(spans))
	for _, s := range spans {
		out = append(out, Range{Start: s.Start, End: s.End})
	}
	return out
}

// Sync diffs the decoration wanted for spans against current. Calling it
// again after the plan has been applied yields an empty plan.
func Sync(spans []placeholder.Span, current []Range) Plan {
	return Diff(Targets(spans), current)
}

// Diff compares target and current range sets by exact bounds after
// merging touching ranges on both sides. Duplicates and empty ranges are
// ignored; results are sorted.
func Diff(target, current []Range) Plan {
	want := normalize(target)
	have := normalize(current)

	var plan Plan
	i, j := 0, 0
	for i < len(want) && j < len(have) {
		switch c := compareRanges(want[i], have[j]); {
		case c == 0:
			i++
			j++
		case c < 0:
			plan.ToAdd = append(plan.ToAdd, want[i])
			i++
		default:
			plan.ToRemove = append(plan.ToRemove, have[j])
			j++
		}
	}
	plan.ToAdd = append(plan.ToAdd, want[i:]...)
	plan.ToRemove = append(plan.ToRemove, have[j:]...)

	return plan
}

// normalize sorts ranges and merges the ones that touch or overlap, so a
// host reporting adjacent runs as one range compares equal to the targets.
func normalize(ranges []Range) []Range {
	sorted := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.Len() > 0 {
			sorted = append(sorted, r)
		}
	}
	slices.SortFunc(sorted, compareRanges)

	out := sorted[:0]
	for _, r := range sorted {
		if n := len(out); n > 0 && r.Start <= out[n-1].End {
			out[n-1].End = max(out[n-1].End, r.End)
			continue
		}
		out = append(out, r)
	}
	return out
}
