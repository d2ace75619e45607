package editor

import "unicode/utf8"

// RuneToByte converts a rune index into a byte offset in text.
// Indexes past the end map to len(text).
func RuneToByte(text string, runeIdx int) int {
	if runeIdx <= 0 {
		return 0
	}
	count := 0
	for offset := range text {
		if count == runeIdx {
			return offset
		}
		count++
	}
	return len(text)
}

// ByteToRune converts a byte offset into a rune index in text.
// Offsets inside a multi-byte rune count that rune as not yet reached.
func ByteToRune(text string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	for offset < len(text) && offset > 0 && !utf8.RuneStart(text[offset]) {
		offset--
	}
	return utf8.RuneCountInString(text[:offset])
}
