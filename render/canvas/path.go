package canvasrender

import (
	"github.com/tdewolff/canvas"

	"github.com/gogpu/tryouts"
)

// toCanvasPath converts p element by element.
func toCanvasPath(p *tryouts.Path) *canvas.Path {
	out := &canvas.Path{}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case tryouts.MoveTo:
			out.MoveTo(e.Point.X, e.Point.Y)
		case tryouts.LineTo:
			out.LineTo(e.Point.X, e.Point.Y)
		case tryouts.QuadTo:
			out.QuadTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case tryouts.CubicTo:
			out.CubeTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case tryouts.Close:
			out.Close()
		}
	}
	return out
}

func capper(c tryouts.LineCap) canvas.Capper {
	switch c {
	case tryouts.LineCapRound:
		return canvas.RoundCap
	case tryouts.LineCapSquare:
		return canvas.SquareCap
	default:
		return canvas.ButtCap
	}
}
