// Package canvasrender draws tryouts geometry with github.com/tdewolff/canvas
// and writes it as SVG, PNG or PDF.
//
// A Renderer owns one canvas the size of the drawing. Coordinates are y-down
// with the origin at the top-left corner, matching the rest of the module.
//
//	r := canvasrender.New(tryouts.Sz(320, 320), canvasrender.DefaultStyle())
//	if err := blueprint.Draw(shape.AppFigure{}, r.Size(), r); err != nil {
//		return err
//	}
//	return r.WriteFile("figure.svg", canvasrender.FormatSVG)
package canvasrender
