package text

import (
	"slices"
	"testing"

	"github.com/gogpu/tryouts"
)

func TestStackedLayout(t *testing.T) {
	tests := []struct {
		name     string
		lineSize tryouts.Size
		spacing  float64
		want     []StackedCopy
	}{
		{
			name:     "default spacing",
			lineSize: tryouts.Sz(100, 16),
			spacing:  DefaultStackSpacing,
			want: []StackedCopy{
				{Offset: 0, Y: 0, Trim: 0},
				{Offset: 16, Y: 16, Trim: 2},
				{Offset: 14, Y: 30, Trim: 4},
			},
		},
		{
			name:     "height is rounded",
			lineSize: tryouts.Sz(100, 15.6),
			spacing:  0,
			want: []StackedCopy{
				{Offset: 0, Y: 0, Trim: 0},
				{Offset: 8, Y: 8, Trim: 2},
				{Offset: 6, Y: 14, Trim: 4},
			},
		},
		{
			name:     "too short to stack",
			lineSize: tryouts.Sz(100, 6),
			spacing:  DefaultStackSpacing,
			want:     nil,
		},
		{
			name:     "empty line",
			lineSize: tryouts.Sz(0, 0),
			spacing:  DefaultStackSpacing,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StackedLayout(tt.lineSize, tt.spacing)
			if !slices.Equal(got, tt.want) {
				t.Errorf("StackedLayout(%v, %v) = %+v, want %+v", tt.lineSize, tt.spacing, got, tt.want)
			}
		})
	}
}

func TestStackedSize(t *testing.T) {
	tests := []struct {
		name     string
		lineSize tryouts.Size
		spacing  float64
		want     tryouts.Size
	}{
		{"grows by offsets", tryouts.Sz(100, 16), 8, tryouts.Sz(100, 46)},
		{"unchanged when not stacked", tryouts.Sz(40, 6), 8, tryouts.Sz(40, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StackedSize(tt.lineSize, tt.spacing); got != tt.want {
				t.Errorf("StackedSize(%v, %v) = %v, want %v", tt.lineSize, tt.spacing, got, tt.want)
			}
		})
	}
}
