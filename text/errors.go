package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned when a font size is not a positive finite
	// number.
	ErrInvalidSize = errors.New("text: invalid font size")

	// ErrNoOutline is returned for glyphs the font draws without a vector
	// outline, such as bitmap or color glyphs.
	ErrNoOutline = errors.New("text: glyph has no outline")
)
