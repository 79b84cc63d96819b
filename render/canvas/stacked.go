package canvasrender

import (
	"fmt"
	"math"

	"github.com/tdewolff/canvas"

	"github.com/gogpu/tryouts"
	"github.com/gogpu/tryouts/text"
)

// DrawStackedText fills copies of the line made of slices below each other,
// following text.StackedLayout. Each copy keeps only the part of its glyphs
// below its trim height. The top of the first copy is placed at origin.
func (r *Renderer) DrawStackedText(slices []text.RunSlice, outlines GlyphOutliner, origin tryouts.Point, spacing float64) error {
	if len(slices) == 0 {
		return nil
	}

	top, left := math.Inf(1), math.Inf(1)
	for _, s := range slices {
		b := s.TypographicBounds()
		top = math.Min(top, b.MinY())
		left = math.Min(left, b.MinX())
	}
	lineSize := text.LineSize(slices)

	var glyphs []*tryouts.Path
	for _, s := range slices {
		var gs []text.Glyph
		switch run := s.(type) {
		case text.Glyph:
			gs = []text.Glyph{run}
		case text.Run:
			gs = run.Glyphs
		}
		for _, g := range gs {
			p, err := outlines.GlyphPath(g)
			if err != nil {
				return fmt.Errorf("canvasrender: glyph %d: %w", g.ID, err)
			}
			glyphs = append(glyphs, p)
		}
	}

	for _, c := range text.StackedLayout(lineSize, spacing) {
		m := tryouts.Translate(origin.X, origin.Y-top+c.Y)
		keep := tryouts.R(left, top+c.Trim, lineSize.Width, lineSize.Height-c.Trim)
		mask := toCanvasPath(tryouts.RectPath(keep.Offset(m.C, m.F)))

		for _, g := range glyphs {
			p := toCanvasPath(g.Transform(m))
			if c.Trim > 0 {
				p = p.And(mask)
			}
			r.fillCanvasPath(p)
		}
	}
	return nil
}

func (r *Renderer) fillCanvasPath(p *canvas.Path) {
	if p.Empty() {
		return
	}
	r.ctx.Push()
	defer r.ctx.Pop()
	r.ctx.SetFillColor(r.style.Ink)
	r.ctx.SetStrokeColor(transparent)
	r.ctx.DrawPath(0, 0, p)
}
