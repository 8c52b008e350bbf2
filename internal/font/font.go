// Package font provides the built-in CHIP-8 hexadecimal digit glyphs.
package font

// GlyphSize is the number of bytes of a single glyph, one byte per row.
const GlyphSize = 5

// GlyphCount is the number of glyphs in the font, one per hex digit 0-F.
const GlyphCount = 16

// Size is the total size of the font table in bytes.
const Size = GlyphSize * GlyphCount

var glyphs = [Size]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Default returns a copy of the built-in glyph table.
// The returned slice is owned by the caller.
func Default() []byte {
	b := make([]byte, Size)
	copy(b, glyphs[:])
	return b
}

// Glyph returns the rows of the glyph for the given hex digit.
// Only the low nibble of digit is used.
func Glyph(digit byte) []byte {
	offset := int(digit&0x0F) * GlyphSize
	b := make([]byte, GlyphSize)
	copy(b, glyphs[offset:offset+GlyphSize])
	return b
}
