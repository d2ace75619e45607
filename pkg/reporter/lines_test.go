package reporter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/varedit/pkg/reporter"
)

func TestLineIndex(t *testing.T) {
	t.Parallel()

	idx := reporter.NewLineIndex("héllo {{a}}\r\nsecond\n")

	tests := []struct {
		offset   int
		line     int
		col      int
		lineText string
	}{
		{offset: 0, line: 1, col: 1, lineText: "héllo {{a}}"},
		{offset: 7, line: 1, col: 7, lineText: "héllo {{a}}"},
		{offset: 14, line: 2, col: 1, lineText: "second"},
		{offset: 21, line: 3, col: 1, lineText: ""},
		{offset: 99, line: 3, col: 1, lineText: ""},
		{offset: -5, line: 1, col: 1, lineText: "héllo {{a}}"},
	}

	for _, tt := range tests {
		line, col := idx.Position(tt.offset)
		assert.Equal(t, tt.line, line, "line of %d", tt.offset)
		assert.Equal(t, tt.col, col, "column of %d", tt.offset)

		text, _ := idx.Line(line)
		assert.Equal(t, tt.lineText, text)
	}

	_, start := idx.Line(2)
	assert.Equal(t, 14, start)
}
