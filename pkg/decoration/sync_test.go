package decoration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/varedit/pkg/decoration"
	"github.com/yaklabco/varedit/pkg/placeholder"
)

func TestSync(t *testing.T) {
	t.Parallel()

	spans := placeholder.Scan("{{a}} and {{b}}", placeholder.DefaultDelimiters())

	tests := []struct {
		name       string
		current    []decoration.Range
		wantAdd    []decoration.Range
		wantRemove []decoration.Range
	}{
		{
			name:    "nothing applied yet",
			current: nil,
			wantAdd: []decoration.Range{{Start: 0, End: 5}, {Start: 10, End: 15}},
		},
		{
			name:    "already in sync",
			current: []decoration.Range{{Start: 10, End: 15}, {Start: 0, End: 5}},
		},
		{
			name:       "stale range removed",
			current:    []decoration.Range{{Start: 0, End: 5}, {Start: 6, End: 9}, {Start: 10, End: 15}},
			wantRemove: []decoration.Range{{Start: 6, End: 9}},
		},
		{
			name:       "shifted range replaced",
			current:    []decoration.Range{{Start: 0, End: 7}, {Start: 10, End: 15}},
			wantAdd:    []decoration.Range{{Start: 0, End: 5}},
			wantRemove: []decoration.Range{{Start: 0, End: 7}},
		},
		{
			name:    "duplicates and empty ranges ignored",
			current: []decoration.Range{{Start: 0, End: 5}, {Start: 0, End: 5}, {Start: 3, End: 3}},
			wantAdd: []decoration.Range{{Start: 10, End: 15}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			plan := decoration.Sync(spans, tc.current)
			assert.Equal(t, tc.wantAdd, plan.ToAdd, "to add")
			assert.Equal(t, tc.wantRemove, plan.ToRemove, "to remove")
		})
	}
}

func TestSync_IdempotentAfterApply(t *testing.T) {
	t.Parallel()

	spans := placeholder.Scan("x {{a}} y {{b}} z", placeholder.DefaultDelimiters())
	current := []decoration.Range{{Start: 1, End: 4}}

	plan := decoration.Sync(spans, current)
	assert.False(t, plan.Empty())

	applied := decoration.Targets(spans)
	assert.True(t, decoration.Sync(spans, applied).Empty())
	assert.True(t, decoration.Sync(spans, applied).Empty())
}

func TestSync_AdjacentPlaceholdersReportedAsOneRun(t *testing.T) {
	t.Parallel()

	spans := placeholder.Scan("{{a}}{{b}} x", placeholder.DefaultDelimiters())

	merged := []decoration.Range{{Start: 0, End: 10}}
	assert.True(t, decoration.Sync(spans, merged).Empty())

	split := []decoration.Range{{Start: 0, End: 5}, {Start: 5, End: 10}}
	assert.True(t, decoration.Sync(spans, split).Empty())

	plan := decoration.Sync(spans[:1], merged)
	assert.Equal(t, []decoration.Range{{Start: 0, End: 5}}, plan.ToAdd)
	assert.Equal(t, []decoration.Range{{Start: 0, End: 10}}, plan.ToRemove)
}

func TestSync_NoSpansClearsEverything(t *testing.T) {
	t.Parallel()

	plan := decoration.Sync(nil, []decoration.Range{{Start: 0, End: 4}})
	assert.Empty(t, plan.ToAdd)
	assert.Equal(t, []decoration.Range{{Start: 0, End: 4}}, plan.ToRemove)
}

func TestPlan_Ops(t *testing.T) {
	t.Parallel()

	plan := decoration.Plan{
		ToAdd:    []decoration.Range{{Start: 0, End: 5}},
		ToRemove: []decoration.Range{{Start: 0, End: 7}},
	}

	ops := plan.Ops()
	assert.Equal(t, []decoration.Op{
		{Kind: decoration.OpRemove, Range: decoration.Range{Start: 0, End: 7}},
		{Kind: decoration.OpAdd, Range: decoration.Range{Start: 0, End: 5}},
	}, ops)
}

func TestRange_Overlaps(t *testing.T) {
	t.Parallel()

	a := decoration.Range{Start: 0, End: 5}
	assert.True(t, a.Overlaps(decoration.Range{Start: 4, End: 8}))
	assert.False(t, a.Overlaps(decoration.Range{Start: 5, End: 8}))
}
