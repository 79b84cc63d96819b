package blueprint

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/tryouts"
	"github.com/gogpu/tryouts/shape"
)

func segmentOf(t *testing.T, g Guide) (tryouts.Point, tryouts.Point) {
	t.Helper()
	elems := g.Path.Elements()
	if len(elems) != 2 {
		t.Fatalf("guide has %d elements, want 2", len(elems))
	}
	move, ok := elems[0].(tryouts.MoveTo)
	if !ok {
		t.Fatalf("first element = %T, want MoveTo", elems[0])
	}
	line, ok := elems[1].(tryouts.LineTo)
	if !ok {
		t.Fatalf("second element = %T, want LineTo", elems[1])
	}
	return move.Point, line.Point
}

func TestNewLayoutGrid(t *testing.T) {
	bounds := tryouts.R(0, 0, 300, 200)
	layout := NewLayout(shape.Rectangle{}, bounds)

	if layout.Sheet.Bounds != bounds {
		t.Errorf("Sheet.Bounds = %v, want %v", layout.Sheet.Bounds, bounds)
	}
	if got := len(layout.Grid); got != 15 {
		t.Fatalf("len(Grid) = %d, want 15", got)
	}

	tests := []struct {
		name       string
		index      int
		start, end tryouts.Point
		dashed     bool
	}{
		{"horizontal diameter", 0, tryouts.Pt(0, 100), tryouts.Pt(300, 100), false},
		{"vertical diameter", 1, tryouts.Pt(150, 0), tryouts.Pt(150, 200), false},
		{"outer vertical", 4, tryouts.Pt(80, 0), tryouts.Pt(80, 200), true},
		{"outer horizontal", 5, tryouts.Pt(0, 30), tryouts.Pt(300, 30), true},
		{"mirrored outer vertical", 8, tryouts.Pt(220, 0), tryouts.Pt(220, 200), true},
		{"mirrored outer horizontal", 9, tryouts.Pt(0, 170), tryouts.Pt(300, 170), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := layout.Grid[tt.index]
			start, end := segmentOf(t, g)
			if !start.ApproxEqual(tt.start, 1e-9) || !end.ApproxEqual(tt.end, 1e-9) {
				t.Errorf("segment = %v-%v, want %v-%v", start, end, tt.start, tt.end)
			}
			if g.Style.IsDashed() != tt.dashed {
				t.Errorf("IsDashed() = %v, want %v", g.Style.IsDashed(), tt.dashed)
			}
			if g.Style.Width != 1 {
				t.Errorf("Width = %v, want 1", g.Style.Width)
			}
		})
	}
}

func TestNewLayoutCircles(t *testing.T) {
	layout := NewLayout(nil, tryouts.R(0, 0, 300, 200))
	circles := layout.Grid[12:]

	outer := 70.0
	inner := outer * (1 - 2*InnerMark)
	radii := []float64{outer, inner, inner * math.Sqrt2}
	for i, g := range circles {
		b := g.Bounds()
		if math.Abs(b.Width()/2-radii[i]) > 1e-9 {
			t.Errorf("circle %d radius = %v, want %v", i, b.Width()/2, radii[i])
		}
		if c := b.Center(); !c.ApproxEqual(tryouts.Pt(150, 100), 1e-9) {
			t.Errorf("circle %d center = %v, want (150, 100)", i, c)
		}
	}
}

func TestNewLayoutPlan(t *testing.T) {
	bounds := tryouts.R(0, 0, 300, 200)
	grid := tryouts.R(80, 30, 140, 140)

	tests := []struct {
		name    string
		shape   tryouts.Shape
		empty   bool
		stroked bool
	}{
		{"no shape", nil, true, false},
		{"filled", shape.Rectangle{}, false, false},
		{"stroked", shape.AppFigure{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewLayout(tt.shape, bounds).Plan
			if plan.IsEmpty() != tt.empty {
				t.Fatalf("IsEmpty() = %v, want %v", plan.IsEmpty(), tt.empty)
			}
			if (plan.Stroke != nil) != tt.stroked {
				t.Errorf("Stroke = %v, want stroked %v", plan.Stroke, tt.stroked)
			}
		})
	}

	plan := NewLayout(shape.Rectangle{}, bounds).Plan
	if got := plan.Bounds(); got != grid {
		t.Errorf("plan bounds = %v, want %v", got, grid)
	}
}

func TestNewLayoutDegenerate(t *testing.T) {
	layout := NewLayout(shape.Circle{}, tryouts.ZeroRect)
	if got := len(layout.Grid); got != 12 {
		t.Fatalf("len(Grid) = %d, want 12", got)
	}
	for i, g := range layout.Grid {
		if n := len(g.Path.Elements()); n != 0 {
			t.Errorf("guide %d has %d elements, want 0", i, n)
		}
	}
}

func TestDraw(t *testing.T) {
	var got Layout
	r := RendererFunc(func(l Layout) error {
		got = l
		return nil
	})
	if err := Draw(shape.Circle{}, tryouts.Sz(120, 80), r); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if want := tryouts.R(0, 0, 120, 80); got.Sheet.Bounds != want {
		t.Errorf("Sheet.Bounds = %v, want %v", got.Sheet.Bounds, want)
	}

	errBoom := errors.New("boom")
	err := Draw(nil, tryouts.Sz(10, 10), RendererFunc(func(Layout) error { return errBoom }))
	if !errors.Is(err, errBoom) {
		t.Errorf("Draw() error = %v, want wrapping %v", err, errBoom)
	}
}

func TestMaskMetrics(t *testing.T) {
	rect := tryouts.R(0, 0, 114, 57)
	if got := CornerRadius(rect); math.Abs(got-10) > 1e-12 {
		t.Errorf("CornerRadius() = %v, want 10", got)
	}
	if got := MaskFadeRadius(rect); math.Abs(got-114/1.75) > 1e-12 {
		t.Errorf("MaskFadeRadius() = %v, want %v", got, 114/1.75)
	}
	got := MaskOutline(rect).Bounds()
	if !got.Origin.ApproxEqual(rect.Origin, 1e-9) || math.Abs(got.Width()-114) > 1e-9 || math.Abs(got.Height()-57) > 1e-9 {
		t.Errorf("MaskOutline bounds = %v, want %v", got, rect)
	}
}
