// Package text lays out measured runs of text along a circle and stacks
// trimmed copies of a line.
//
// The layout engine works on [RunSlice] values: anything with typographic
// bounds. A [GoTextShaper] produces them from strings using HarfBuzz shaping
// from go-text/typesetting over bidi segments from golang.org/x/text.
//
// # Circular layout
//
// A circular layout maps a single line of slices onto a circle whose inner
// radius (the descender) has the line width as circumference. Each slice gets
// an affine transform that centers it, lifts it to the ring, turns it by its
// angular position and moves the construction into the positive quadrant:
//
//	shaper, err := text.NewDefaultShaper() // Go Regular
//	if err != nil {
//	    log.Fatal(err)
//	}
//	runs, err := shaper.Shape("Hello, circle!", 24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout := text.NewCircularLayout(text.FlattenRuns(runs), 0)
//	for slice := range layout.All() {
//	    glyph := slice.Run.(text.Glyph)
//	    path, _ := shaper.GlyphPath(glyph)
//	    draw(path.Transform(slice.Transform))
//	}
//
// The sequence returned by All is lazy and can be ranged over any number of
// times; each traversal recomputes the transforms.
package text
