package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/varedit/pkg/suggest"
)

func TestSelection_NavigationClamps(t *testing.T) {
	t.Parallel()

	sel := suggest.NewSelection(suggest.ResetAlways)
	sel.Update(testCatalog()[:3], "")

	for range 3 {
		sel.Up()
	}
	assert.Equal(t, 0, sel.Index)

	for range 5 {
		sel.Down()
	}
	assert.Equal(t, 2, sel.Index)

	item, ok := sel.Selected()
	assert.True(t, ok)
	assert.Equal(t, "order_id", item.Value)
}

func TestSelection_UpdateResetsIndex(t *testing.T) {
	t.Parallel()

	sel := suggest.NewSelection(suggest.ResetAlways)
	sel.Update(testCatalog(), "")
	sel.Down()
	sel.Down()

	sel.Update(testCatalog(), "")
	assert.Equal(t, 0, sel.Index)

	sel.Down()
	sel.Update(suggest.Filter(testCatalog(), "name"), "name")
	assert.Equal(t, 0, sel.Index)
}

func TestSelection_PreserveOnEmptyReopen(t *testing.T) {
	t.Parallel()

	sel := suggest.NewSelection(suggest.PreserveOnEmptyReopen)
	sel.Update(testCatalog(), "")
	sel.Down()
	sel.Down()

	sel.Update(testCatalog(), "")
	assert.Equal(t, 2, sel.Index, "empty to empty keeps index")

	sel.Update(suggest.Filter(testCatalog(), "e"), "e")
	assert.Equal(t, 0, sel.Index, "query change resets")

	sel.Update(testCatalog(), "")
	assert.Equal(t, 0, sel.Index, "non-empty to empty resets")
}

func TestSelection_PreservedIndexIsClamped(t *testing.T) {
	t.Parallel()

	sel := suggest.NewSelection(suggest.PreserveOnEmptyReopen)
	sel.Update(testCatalog(), "")
	sel.Down()
	sel.Down()
	sel.Down()

	sel.Update(testCatalog()[:2], "")
	assert.Equal(t, 1, sel.Index)
}

func TestSelection_Empty(t *testing.T) {
	t.Parallel()

	sel := suggest.NewSelection("unknown")
	sel.Update(nil, "zzz")
	sel.Down()
	sel.Up()

	assert.True(t, sel.Empty())
	assert.Equal(t, 0, sel.Len())
	assert.Equal(t, 0, sel.Index)

	_, ok := sel.Selected()
	assert.False(t, ok)
}
