package tryouts

import "testing"

func TestRect_Center(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want Point
	}{
		{"zero", ZeroRect, Pt(0, 0)},
		{"infinite", Infinite, Pt(0, 0)},
		{"centered on origin", R(-10, -10, 20, 20), Pt(0, 0)},
		{"offset", R(10, 20, 30, 30), Pt(25, 35)},
		{"negative size", R(40, 50, -30, -30), Pt(25, 35)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Center(); got != tt.want {
				t.Errorf("%v.Center() = %v, want %v", tt.rect, got, tt.want)
			}
		})
	}
}

func TestRect_CenteredAt(t *testing.T) {
	tests := []struct {
		name  string
		rect  Rect
		point Point
		want  Rect
	}{
		{"zero", ZeroRect, Pt(0, 0), ZeroRect},
		{"infinite", Infinite, Pt(0, 0), Infinite},
		{"infinite moved", Infinite, Pt(5, 5), Infinite},
		{"positive", R(0, 0, 10, 10), Pt(10, 10), R(5, 5, 10, 10)},
		{"negative", R(0, 0, 10, 10), Pt(-10, -10), R(-15, -15, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.CenteredAt(tt.point); got != tt.want {
				t.Errorf("%v.CenteredAt(%v) = %v, want %v", tt.rect, tt.point, got, tt.want)
			}
		})
	}
}

func TestRect_ScaledBy(t *testing.T) {
	square := R(-10, -10, 20, 20)

	tests := []struct {
		name  string
		rect  Rect
		scale float64
		want  Rect
	}{
		{"zero by -1", ZeroRect, -1, ZeroRect},
		{"zero by 0", ZeroRect, 0, ZeroRect},
		{"zero by 1", ZeroRect, 1, ZeroRect},
		{"infinite by -1", Infinite, -1, Infinite},
		{"infinite by 0", Infinite, 0, Infinite},
		{"infinite by 1", Infinite, 1, Infinite},
		{"square by 0", square, 0, ZeroRect},
		{"square by 1", square, 1, square},
		{"square by 2", square, 2, R(-20, -20, 40, 40)},
		{"square by 0.5", square, 0.5, R(-5, -5, 10, 10)},
		{"square by -1", square, -1, square},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.ScaledBy(tt.scale); got != tt.want {
				t.Errorf("%v.ScaledBy(%v) = %v, want %v", tt.rect, tt.scale, got, tt.want)
			}
		})
	}
}

func TestRect_AspectRatio(t *testing.T) {
	hd := R(0, 0, 1920, 1080)

	tests := []struct {
		name   string
		rect   Rect
		ratio  float64
		bounds Rect
		want   Rect
	}{
		{"zero", ZeroRect, 0, ZeroRect, ZeroRect},
		{"infinite into zero", Infinite, 0, ZeroRect, ZeroRect},
		{"16:9 into hd", R(0, 0, 160, 90), 16.0 / 9.0, hd, hd},
		{"square into hd", R(0, 0, 160, 90), 1, hd, R(420, 0, 1080, 1080)},
		{"square into portrait", R(0, 0, 640, 960), 1, R(0, 0, 640, 960), R(0, 160, 640, 640)},
		{"4:5 into portrait", R(0, 0, 6000, 4000), 4.0 / 5.0, R(0, 0, 640, 960), R(0, 80, 640, 800)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.AspectRatio(tt.ratio, tt.bounds); got != tt.want {
				t.Errorf("%v.AspectRatio(%v, %v) = %v, want %v", tt.rect, tt.ratio, tt.bounds, got, tt.want)
			}
		})
	}
}

func TestRect_AspectRatioInside(t *testing.T) {
	tests := []struct {
		name   string
		rect   Rect
		bounds Rect
		want   Rect
	}{
		{"infinite into infinite", Infinite, Infinite, Infinite},
		{"keeps own ratio", R(0, 0, 160, 90), R(0, 0, 1920, 1080), R(0, 0, 1920, 1080)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.AspectRatioInside(tt.bounds); got != tt.want {
				t.Errorf("%v.AspectRatioInside(%v) = %v, want %v", tt.rect, tt.bounds, got, tt.want)
			}
		})
	}
}

func TestRect_IsEmptyAndInfinite(t *testing.T) {
	if !ZeroRect.IsEmpty() {
		t.Error("ZeroRect.IsEmpty() = false, want true")
	}
	if !R(5, 5, 0, 10).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
	if R(5, 5, -1, 10).IsEmpty() {
		t.Error("negative-width rect should not be empty")
	}
	if !Infinite.IsInfinite() {
		t.Error("Infinite.IsInfinite() = false, want true")
	}
	if R(0, 0, 1e300, 1e300).IsInfinite() {
		t.Error("a large finite rect must not be infinite")
	}
}
