package editor

import "unicode/utf8"

// Size is a width and height in the host's units.
type Size struct {
	Width  int
	Height int
}

// Point is a top-left position in the host's units.
type Point struct {
	Top  int
	Left int
}

// Limits bound the dropdown geometry.
type Limits struct {
	ItemHeight int `yaml:"item_height"`
	CharWidth  int `yaml:"char_width"`
	MaxHeight  int `yaml:"max_height"`
	MinWidth   int `yaml:"min_width"`
	MaxWidth   int `yaml:"max_width"`
	Margin     int `yaml:"margin"`
}

// DefaultLimits returns pixel limits for a browser-style host.
func DefaultLimits() Limits {
	return Limits{
		ItemHeight: 32,
		CharWidth:  8,
		MaxHeight:  300,
		MinWidth:   200,
		MaxWidth:   400,
		Margin:     10,
	}
}

// CellLimits returns limits for a terminal, measured in character cells.
func CellLimits() Limits {
	return Limits{
		ItemHeight: 1,
		CharWidth:  1,
		MaxHeight:  10,
		MinWidth:   20,
		MaxWidth:   60,
		Margin:     1,
	}
}

// Measure returns the dropdown size needed to show labels.
func (l Limits) Measure(labels []string) Size {
	longest := 0
	for _, label := range labels {
		longest = max(longest, utf8.RuneCountInString(label))
	}

	width := longest * l.CharWidth
	width = max(width, l.MinWidth)
	if l.MaxWidth > 0 {
		width = min(width, l.MaxWidth)
	}

	height := len(labels) * l.ItemHeight
	if l.MaxHeight > 0 {
		height = min(height, l.MaxHeight)
	}

	return Size{Width: width, Height: height}
}

// PlaceDropdown positions a dropdown of the given size next to the caret box.
// It opens below the caret and flips above when it would overflow the bottom
// of the viewport. It is pulled left to keep margin clear of the right edge.
// A zero viewport dimension leaves that axis unconstrained.
func PlaceDropdown(anchor Box, viewport, size Size, margin int) Point {
	pos := Point{Top: anchor.Top + anchor.Height, Left: anchor.Left}

	if viewport.Height > 0 && pos.Top+size.Height > viewport.Height {
		pos.Top = anchor.Top - size.Height
	}

	if viewport.Width > 0 && pos.Left+size.Width > viewport.Width-margin {
		pos.Left = viewport.Width - size.Width - margin
	}

	pos.Top = max(pos.Top, 0)
	pos.Left = max(pos.Left, 0)
	return pos
}
