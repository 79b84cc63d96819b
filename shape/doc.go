// Package shape provides shapes that fit a bounding rectangle: path data
// parsed from a compact SVG-like syntax, an application glyph and the basic
// circle, capsule and rounded rectangle.
//
// Every shape implements tryouts.Shape.
package shape
