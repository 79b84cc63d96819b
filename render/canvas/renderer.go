package canvasrender

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/tdewolff/canvas"

	"github.com/gogpu/tryouts"
	"github.com/gogpu/tryouts/blueprint"
	"github.com/gogpu/tryouts/cartesian"
	"github.com/gogpu/tryouts/text"
	"github.com/gogpu/tryouts/transform3d"
)

// Renderer draws onto a tdewolff/canvas canvas.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	size   tryouts.Size
	style  Style
	canvas *canvas.Canvas
	ctx    *canvas.Context
}

var _ blueprint.Renderer = (*Renderer)(nil)

// ErrNonFinite is returned when an effect projects onto non-finite
// coordinates.
var ErrNonFinite = errors.New("canvasrender: effect matrix is not finite")

// New returns a renderer with a blank canvas of the given size.
func New(size tryouts.Size, style Style) *Renderer {
	c := canvas.New(size.Width, size.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	return &Renderer{size: size, style: style, canvas: c, ctx: ctx}
}

// Size returns the size of the canvas.
func (r *Renderer) Size() tryouts.Size {
	return r.size
}

// Style returns the colors r draws with.
func (r *Renderer) Style() Style {
	return r.style
}

// Render implements blueprint.Renderer. The sheet is filled with its rounded
// outline. The guides are clipped to that outline and faded radially from
// blueprint.GuideOpacity at the sheet center to transparent at
// blueprint.MaskFadeRadius. The plan is filled, or stroked when it carries a
// stroke style.
func (r *Renderer) Render(layout blueprint.Layout) error {
	bounds := layout.Sheet.Bounds
	outline := blueprint.MaskOutline(bounds)
	r.fill(outline, r.style.Sheet)

	mask := toCanvasPath(outline)
	fade := guideFade(bounds, r.style.Guide)
	for _, g := range layout.Grid {
		p := clippedGuide(g, mask)
		if p.Empty() {
			continue
		}
		r.ctx.Push()
		r.ctx.SetFillGradient(fade)
		r.ctx.SetStrokeColor(transparent)
		r.ctx.DrawPath(0, 0, p)
		r.ctx.Pop()
	}

	if layout.Plan.IsEmpty() {
		return nil
	}
	if layout.Plan.Stroke != nil {
		r.stroke(layout.Plan.Path, *layout.Plan.Stroke, r.style.Ink)
	} else {
		r.fill(layout.Plan.Path, r.style.Ink)
	}
	return nil
}

// DrawSystem draws the grid lines of s at cartesian.GridOpacity and its axes
// at full opacity.
func (r *Renderer) DrawSystem(s cartesian.System) {
	line := tryouts.SolidStroke(1)
	grid := withOpacity(r.style.Grid, cartesian.GridOpacity)
	for l := range s.GridLines() {
		r.stroke(l.Path(), line, grid)
	}
	y, x := s.Axes()
	r.stroke(y.Path(), line, r.style.Grid)
	r.stroke(x.Path(), line, r.style.Grid)
}

// DrawRotation draws the clues of rotating e by angle radians: the anchor,
// the dashed initial path, the orbit of the path origin and the rotated
// path.
func (r *Renderer) DrawRotation(angle float64, e cartesian.Entry) {
	d := cartesian.DebugRotation(angle, e.RotationPoint, e.Path)
	line := tryouts.SolidStroke(1)
	r.stroke(d.Anchor, line, e.Color)
	r.stroke(d.Initial, cartesian.InitialStroke, e.Color)
	r.stroke(d.Orbit, line, withOpacity(e.Color, cartesian.GridOpacity))
	r.stroke(d.Current, line, e.Color)
}

// GlyphOutliner returns the outline of a shaped glyph.
type GlyphOutliner interface {
	GlyphPath(g text.Glyph) (*tryouts.Path, error)
}

// DrawCircularText fills the glyphs of l, offset by origin. Slices must be
// text.Glyph or text.Run values; other run slices are skipped. When guides
// is set the layout guides are stroked first.
func (r *Renderer) DrawCircularText(l *text.CircularLayout, outlines GlyphOutliner, origin tryouts.Point, guides bool) error {
	offset := tryouts.Translate(origin.X, origin.Y)

	if guides {
		style := tryouts.SolidStroke(1)
		for _, g := range l.Guides() {
			r.stroke(g.Transform(offset), style, withOpacity(r.style.Guide, blueprint.GuideOpacity))
		}
	}

	for s := range l.All() {
		var glyphs []text.Glyph
		switch run := s.Run.(type) {
		case text.Glyph:
			glyphs = []text.Glyph{run}
		case text.Run:
			glyphs = run.Glyphs
		default:
			tryouts.Logger().Debug("canvasrender: skipping run slice", "type", fmt.Sprintf("%T", s.Run))
			continue
		}

		m := s.Transform.Then(offset)
		for _, g := range glyphs {
			p, err := outlines.GlyphPath(g)
			if err != nil {
				return fmt.Errorf("canvasrender: glyph %d: %w", g.ID, err)
			}
			r.fill(p.Transform(m), r.style.Ink)
		}
	}
	return nil
}

// DrawEffect draws path, laid out in a box of the given size at origin,
// through the matrix of effect. The box outline is drawn dashed before the
// effect and the transformed content is filled on top.
func (r *Renderer) DrawEffect(path *tryouts.Path, size tryouts.Size, origin tryouts.Point, effect transform3d.Effect) error {
	proj := effect.MatrixValue(size).Projection()
	if !proj.IsFinite() {
		return ErrNonFinite
	}
	offset := tryouts.Translate(origin.X, origin.Y)

	box := tryouts.RectPath(tryouts.Rect{Size: size})
	r.stroke(box.Transform(offset), tryouts.DashedStroke(1, 4, 2), withOpacity(r.style.Guide, blueprint.GuideOpacity))
	r.stroke(proj.TransformPath(box).Transform(offset), tryouts.SolidStroke(1), r.style.Guide)
	r.fill(proj.TransformPath(path).Transform(offset), r.style.Ink)
	return nil
}

// Write encodes the canvas to w in format f.
func (r *Renderer) Write(w io.Writer, f Format) error {
	writer, err := f.writer(r.style.Resolution)
	if err != nil {
		return err
	}
	if err := writer(w, r.canvas); err != nil {
		return fmt.Errorf("canvasrender: write %s: %w", f, err)
	}
	return nil
}

// WriteFile encodes the canvas in format f to the named file.
func (r *Renderer) WriteFile(name string, f Format) (err error) {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("canvasrender: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("canvasrender: %w", cerr)
		}
	}()

	buf := bufio.NewWriter(file)
	if err := r.Write(buf, f); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("canvasrender: %w", err)
	}
	tryouts.Logger().Debug("canvasrender: wrote file", "name", name, "format", string(f))
	return nil
}

// clippedGuide returns the stroke outline of g intersected with mask.
func clippedGuide(g blueprint.Guide, mask *canvas.Path) *canvas.Path {
	p := toCanvasPath(g.Path)
	if p.Empty() || mask.Empty() || g.Style.Width <= 0 {
		return &canvas.Path{}
	}
	if g.Style.IsDashed() {
		p = p.Dash(0, g.Style.Dash...)
	}
	return p.Stroke(g.Style.Width, capper(g.Style.Cap), canvas.MiterJoin, canvas.Tolerance).And(mask)
}

// guideFade returns the radial gradient guides are filled with on a sheet
// laid out in bounds.
func guideFade(bounds tryouts.Rect, c color.RGBA) *canvas.RadialGradient {
	center := bounds.Center()
	p := canvas.Point{X: center.X, Y: center.Y}
	fade := canvas.NewRadialGradient(p, 0, p, blueprint.MaskFadeRadius(bounds))
	fade.Add(0, withOpacity(c, blueprint.GuideOpacity))
	fade.Add(1, color.RGBA{})
	return fade
}

func (r *Renderer) fill(p *tryouts.Path, c color.RGBA) {
	if p == nil || len(p.Elements()) == 0 {
		return
	}
	r.ctx.Push()
	defer r.ctx.Pop()
	r.ctx.SetFillColor(c)
	r.ctx.SetStrokeColor(transparent)
	r.ctx.DrawPath(0, 0, toCanvasPath(p))
}

func (r *Renderer) stroke(p *tryouts.Path, style tryouts.StrokeStyle, c color.RGBA) {
	if p == nil || len(p.Elements()) == 0 {
		return
	}
	r.ctx.Push()
	defer r.ctx.Pop()
	r.ctx.SetFillColor(transparent)
	r.ctx.SetStrokeColor(c)
	r.ctx.SetStrokeWidth(style.Width)
	r.ctx.SetStrokeCapper(capper(style.Cap))
	if style.IsDashed() {
		r.ctx.SetDashes(0, style.Dash...)
	}
	r.ctx.DrawPath(0, 0, toCanvasPath(p))
}
