package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/varedit/pkg/editor"
)

func TestPlaceDropdown(t *testing.T) {
	t.Parallel()

	size := editor.Size{Width: 200, Height: 100}
	viewport := editor.Size{Width: 800, Height: 600}

	tests := []struct {
		name     string
		anchor   editor.Box
		viewport editor.Size
		want     editor.Point
	}{
		{
			name:     "below caret",
			anchor:   editor.Box{Top: 40, Left: 50, Height: 20},
			viewport: viewport,
			want:     editor.Point{Top: 60, Left: 50},
		},
		{
			name:     "flips above near bottom",
			anchor:   editor.Box{Top: 550, Left: 50, Height: 20},
			viewport: viewport,
			want:     editor.Point{Top: 450, Left: 50},
		},
		{
			name:     "clamped to right edge with margin",
			anchor:   editor.Box{Top: 40, Left: 700, Height: 20},
			viewport: viewport,
			want:     editor.Point{Top: 60, Left: 590},
		},
		{
			name:     "never above the viewport",
			anchor:   editor.Box{Top: 30, Left: 0, Height: 20},
			viewport: editor.Size{Width: 800, Height: 100},
			want:     editor.Point{Top: 0, Left: 0},
		},
		{
			name:     "zero viewport is unconstrained",
			anchor:   editor.Box{Top: 5000, Left: 5000, Height: 20},
			viewport: editor.Size{},
			want:     editor.Point{Top: 5020, Left: 5000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := editor.PlaceDropdown(tt.anchor, tt.viewport, size, 10)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLimits_Measure(t *testing.T) {
	t.Parallel()

	limits := editor.DefaultLimits()

	assert.Equal(t, editor.Size{Width: 200, Height: 64}, limits.Measure([]string{"a", "b"}))

	long := make([]string, 20)
	for i := range long {
		long[i] = "a very long label that keeps going and going and going and going"
	}
	assert.Equal(t, editor.Size{Width: 400, Height: 300}, limits.Measure(long))
}
