package cartesian

import (
	"math"
	"slices"
	"testing"

	"github.com/gogpu/tryouts"
)

func TestCursorMarks(t *testing.T) {
	tests := []struct {
		name   string
		cursor Cursor
		want   []float64
	}{
		{"even", NewCursor(100, 20), []float64{10, 30, 50, 70, 90}},
		{"uneven", NewCursor(100, 30), []float64{20, 50, 80}},
		{"exact fit", NewCursor(40, 10), []float64{0, 10, 20, 30, 40}},
		{"stride larger than half", NewCursor(10, 20), []float64{5}},
		{"zero stride", NewCursor(100, 0), nil},
		{"negative stride", NewCursor(100, -5), nil},
		{"nan length", NewCursor(math.NaN(), 5), nil},
		{"infinite length", NewCursor(math.Inf(1), 5), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cursor.Marks()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Marks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCursorMiddleMark(t *testing.T) {
	for _, stride := range []float64{3, 7, 12.5, 20} {
		c := NewCursor(250, stride)
		if !slices.Contains(c.Marks(), 125) {
			t.Errorf("stride %v: marks %v miss the middle", stride, c.Marks())
		}
	}
}

func TestCursorRestartable(t *testing.T) {
	c := NewCursor(60, 20)
	first := c.Marks()
	second := c.Marks()
	if !slices.Equal(first, second) {
		t.Errorf("second pass = %v, want %v", second, first)
	}

	var got []float64
	for m := range c.All() {
		got = append(got, m)
		break
	}
	if len(got) != 1 {
		t.Errorf("early break yielded %d marks, want 1", len(got))
	}
}

func TestGridLines(t *testing.T) {
	s := New(tryouts.Sz(20, 20), tryouts.R(5, 7, 100, 60))

	var lines []Line
	for l := range s.GridLines() {
		lines = append(lines, l)
	}
	if len(lines) != 8 {
		t.Fatalf("len(lines) = %d, want 8", len(lines))
	}

	want := []Line{
		{tryouts.Pt(15, 7), tryouts.Pt(15, 67)},
		{tryouts.Pt(5, 17), tryouts.Pt(105, 17)},
	}
	if lines[0] != want[0] {
		t.Errorf("first vertical line = %v, want %v", lines[0], want[0])
	}
	if lines[5] != want[1] {
		t.Errorf("first horizontal line = %v, want %v", lines[5], want[1])
	}
}

func TestAxes(t *testing.T) {
	s := New(tryouts.Sz(10, 10), tryouts.R(0, 0, 80, 40))
	y, x := s.Axes()

	if want := (Line{tryouts.Pt(40, 0), tryouts.Pt(40, 40)}); y != want {
		t.Errorf("y axis = %v, want %v", y, want)
	}
	if want := (Line{tryouts.Pt(0, 20), tryouts.Pt(80, 20)}); x != want {
		t.Errorf("x axis = %v, want %v", x, want)
	}
	if c := s.Center(); c != tryouts.Pt(40, 20) {
		t.Errorf("Center() = %v, want (40, 20)", c)
	}
}

func TestRotationAbout(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		pivot tryouts.Point
		in    tryouts.Point
		want  tryouts.Point
	}{
		{"zero angle", 0, tryouts.Pt(3, 4), tryouts.Pt(7, 9), tryouts.Pt(7, 9)},
		{"quarter turn", math.Pi / 2, tryouts.Pt(10, 10), tryouts.Pt(20, 10), tryouts.Pt(10, 20)},
		{"half turn", math.Pi, tryouts.Pt(10, 10), tryouts.Pt(20, 15), tryouts.Pt(0, 5)},
		{"pivot is fixed", 1.234, tryouts.Pt(-4, 6), tryouts.Pt(-4, 6), tryouts.Pt(-4, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotationAbout(tt.angle, tt.pivot).TransformPoint(tt.in)
			if !got.ApproxEqual(tt.want, 1e-9) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDebugRotation(t *testing.T) {
	path := tryouts.RectPath(tryouts.R(3, 4, 10, 10))
	d := DebugRotation(math.Pi/2, tryouts.Pt(0, 0), path)

	if r := d.Orbit.Bounds().Width() / 2; math.Abs(r-5) > 1e-9 {
		t.Errorf("orbit radius = %v, want 5", r)
	}
	if r := d.Anchor.Bounds().Width() / 2; math.Abs(r-AnchorRadius) > 1e-9 {
		t.Errorf("anchor radius = %v, want %v", r, AnchorRadius)
	}
	if d.Initial != path {
		t.Error("Initial is not the input path")
	}
	got := d.Current.Bounds()
	want := tryouts.R(-14, 3, 10, 10)
	if !got.Origin.ApproxEqual(want.Origin, 1e-9) || math.Abs(got.Width()-10) > 1e-9 {
		t.Errorf("Current bounds = %v, want %v", got, want)
	}
}

func TestDebugRotationEntries(t *testing.T) {
	s := New(tryouts.Sz(20, 20), tryouts.R(0, 0, 400, 600))
	entries := s.DebugRotationEntries()
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}

	tests := []struct {
		name   string
		bounds tryouts.Rect
		pivot  tryouts.Point
	}{
		{"rounded rectangle", tryouts.R(220, 340, 40, 40), tryouts.Pt(200, 300)},
		{"capsule", tryouts.R(260, 120, 20, 60), tryouts.Pt(270, 170)},
		{"circle", tryouts.R(80, 100, 40, 40), tryouts.Pt(120, 140)},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entries[i]
			b := e.Path.Bounds()
			if !b.Origin.ApproxEqual(tt.bounds.Origin, 1e-9) ||
				math.Abs(b.Width()-tt.bounds.Width()) > 1e-9 ||
				math.Abs(b.Height()-tt.bounds.Height()) > 1e-9 {
				t.Errorf("bounds = %v, want %v", b, tt.bounds)
			}
			if e.RotationPoint != tt.pivot {
				t.Errorf("RotationPoint = %v, want %v", e.RotationPoint, tt.pivot)
			}
			if e.Color.A != 0xff {
				t.Errorf("Color = %v, want opaque", e.Color)
			}
		})
	}
}
