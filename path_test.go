package tryouts

import "testing"

func TestCirclePath(t *testing.T) {
	tests := []struct {
		name   string
		center Point
		radius float64
		want   *Path
	}{
		{"origin", Pt(0, 0), 10, EllipsePath(R(-10, -10, 20, 20))},
		{"positive", Pt(10, 10), 5, EllipsePath(R(5, 5, 10, 10))},
		{"negative", Pt(-10, -10), 15, EllipsePath(R(-25, -25, 30, 30))},
		{"zero radius", Pt(0, 0), 0, EllipsePath(R(0, 0, 0, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CirclePath(tt.center, tt.radius)
			if !got.Equal(tt.want) {
				t.Errorf("CirclePath(%v, %v) = %v, want %v", tt.center, tt.radius, got.Elements(), tt.want.Elements())
			}
		})
	}
}

func TestLineSegmentPath(t *testing.T) {
	tests := []struct {
		name       string
		start, end Point
		want       []PathElement
	}{
		{"forward", Pt(0, 0), Pt(10, 10), []PathElement{MoveTo{Pt(0, 0)}, LineTo{Pt(10, 10)}}},
		{"backward", Pt(10, 10), Pt(0, 0), []PathElement{MoveTo{Pt(10, 10)}, LineTo{Pt(0, 0)}}},
		{"degenerate origin", Pt(0, 0), Pt(0, 0), nil},
		{"degenerate", Pt(10, 10), Pt(10, 10), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineSegmentPath(tt.start, tt.end).Elements()
			if len(got) != len(tt.want) {
				t.Fatalf("LineSegmentPath(%v, %v) has %d elements, want %d", tt.start, tt.end, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("element %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPath_Bounds(t *testing.T) {
	tests := []struct {
		name string
		path *Path
		want Rect
	}{
		{"empty", NewPath(), ZeroRect},
		{"segment", LineSegmentPath(Pt(10, 2), Pt(-4, 8)), R(-4, 2, 14, 6)},
		{"circle", CirclePath(Pt(5, 5), 5), R(0, 0, 10, 10)},
		{"rect", RectPath(R(1, 2, 3, 4)), R(1, 2, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPath_TransformAndMap(t *testing.T) {
	p := RectPath(R(0, 0, 2, 2))
	moved := p.Transform(Translate(3, 4))
	if got := moved.Bounds(); got != R(3, 4, 2, 2) {
		t.Errorf("Transform bounds = %v, want %v", got, R(3, 4, 2, 2))
	}

	doubled := p.Map(func(pt Point) Point { return pt.Mul(2) })
	if got := doubled.Bounds(); got != R(0, 0, 4, 4) {
		t.Errorf("Map bounds = %v, want %v", got, R(0, 0, 4, 4))
	}
	if len(doubled.Elements()) != len(p.Elements()) {
		t.Errorf("Map changed element count: %d != %d", len(doubled.Elements()), len(p.Elements()))
	}
}
