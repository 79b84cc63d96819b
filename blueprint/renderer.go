package blueprint

import (
	"fmt"
	"math"

	"github.com/gogpu/tryouts"
)

// GuideOpacity is the opacity guides are stroked with.
const GuideOpacity = 0.6

// Renderer draws a blueprint layout.
type Renderer interface {
	Render(layout Layout) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(layout Layout) error

// Render implements Renderer.
func (f RendererFunc) Render(layout Layout) error {
	return f(layout)
}

// Draw lays out a blueprint of shape on a sheet of the given size at the
// origin and hands it to r.
func Draw(shape tryouts.Shape, size tryouts.Size, r Renderer) error {
	layout := NewLayout(shape, tryouts.Rect{Size: size})
	tryouts.Logger().Debug("blueprint: draw", "size", size, "guides", len(layout.Grid), "plan", !layout.Plan.IsEmpty())
	if err := r.Render(layout); err != nil {
		return fmt.Errorf("blueprint: render: %w", err)
	}
	return nil
}

// CornerRadius returns the corner radius of the sheet mask for rect.
func CornerRadius(rect tryouts.Rect) float64 {
	return math.Min(rect.Width(), rect.Height()) * 10.0 / 57
}

// MaskOutline returns the rounded outline clipping the sheet.
func MaskOutline(rect tryouts.Rect) *tryouts.Path {
	return tryouts.RoundedRectPath(rect, CornerRadius(rect))
}

// MaskFadeRadius returns the radius at which the radial fade of the grid
// mask reaches full transparency.
func MaskFadeRadius(rect tryouts.Rect) float64 {
	return math.Max(rect.Width(), rect.Height()) / 1.75
}
