package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/varedit/pkg/editor"
)

func TestRuneByteConversion(t *testing.T) {
	t.Parallel()

	text := "aé€b"

	assert.Equal(t, 0, editor.RuneToByte(text, 0))
	assert.Equal(t, 1, editor.RuneToByte(text, 1))
	assert.Equal(t, 3, editor.RuneToByte(text, 2))
	assert.Equal(t, 6, editor.RuneToByte(text, 3))
	assert.Equal(t, 7, editor.RuneToByte(text, 4))
	assert.Equal(t, 7, editor.RuneToByte(text, 99))

	assert.Equal(t, 0, editor.ByteToRune(text, 0))
	assert.Equal(t, 2, editor.ByteToRune(text, 3))
	assert.Equal(t, 2, editor.ByteToRune(text, 4))
	assert.Equal(t, 2, editor.ByteToRune(text, 5))
	assert.Equal(t, 4, editor.ByteToRune(text, 7))
	assert.Equal(t, 4, editor.ByteToRune(text, 99))
}
