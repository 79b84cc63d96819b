package text

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/tryouts"
)

// GlyphID is a glyph index in a font.
type GlyphID uint16

// Glyph is a single shaped glyph. It is the finest RunSlice a shaper
// produces.
type Glyph struct {
	ID GlyphID
	// Cluster is the rune offset of the glyph's cluster in the shaped string.
	Cluster int
	// Text is the cluster text, set on the first glyph of each cluster.
	Text string
	// X and Y are the glyph origin on the line; the baseline is y=0.
	X, Y    float64
	Advance float64
	// Ascent and Descent are the line extents above and below the baseline.
	Ascent, Descent float64
	Size            float64
}

// TypographicBounds implements RunSlice.
func (g Glyph) TypographicBounds() tryouts.Rect {
	return tryouts.R(g.X, -g.Ascent, g.Advance, g.Ascent+g.Descent)
}

// Run is a shaped run of text with a single direction.
type Run struct {
	Text      string
	Direction Direction
	Glyphs    []Glyph
	// X is the pen position at the start of the run.
	X               float64
	Advance         float64
	Ascent, Descent float64
}

// TypographicBounds implements RunSlice.
func (r Run) TypographicBounds() tryouts.Rect {
	return tryouts.R(r.X, -r.Ascent, r.Advance, r.Ascent+r.Descent)
}

// FlattenRuns returns the glyphs of runs as run slices, in visual order.
func FlattenRuns(runs []Run) []RunSlice {
	var out []RunSlice
	for _, r := range runs {
		for _, g := range r.Glyphs {
			out = append(out, g)
		}
	}
	return out
}

// GoTextShaper shapes text with go-text/typesetting's HarfBuzz
// implementation and extracts glyph outlines with golang.org/x/image/font/sfnt.
//
// GoTextShaper is safe for concurrent use. The parsed font.Font is
// read-only; a font.Face is created per Shape call since faces are not safe
// for concurrent use. HarfbuzzShaper instances and sfnt buffers are pooled.
type GoTextShaper struct {
	shaperPool sync.Pool
	bufferPool sync.Pool

	font     *font.Font
	outlines *sfnt.Font
	cache    *Cache[outlineKey, *tryouts.Path]
}

// NewGoTextShaper parses TrueType or OpenType font data.
func NewGoTextShaper(data []byte) (*GoTextShaper, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	outlines, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font outlines: %w", err)
	}

	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		bufferPool: sync.Pool{
			New: func() any {
				return &sfnt.Buffer{}
			},
		},
		font:     face.Font,
		outlines: outlines,
		cache:    NewCache[outlineKey, *tryouts.Path](DefaultOutlineCacheSize),
	}, nil
}

// NewDefaultShaper returns a shaper for the Go Regular font.
func NewDefaultShaper() (*GoTextShaper, error) {
	return NewGoTextShaper(goregular.TTF)
}

// Shape shapes s at the given size in pixels per em. The string is split
// into bidi segments, each shaped into a Run; runs are returned in visual
// order with glyph positions continuing across runs.
func (s *GoTextShaper) Shape(str string, size float64) ([]Run, error) {
	if !(size > 0) || math.IsInf(size, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	if str == "" {
		return nil, nil
	}

	face := font.NewFace(s.font)
	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer s.shaperPool.Put(hb)

	segments := SegmentBidi(str, DirectionLTR)
	runs := make([]Run, 0, len(segments))
	var pen float64
	for _, seg := range segments {
		runes := []rune(seg.Text)
		dir := mapDirection(seg.Direction)
		output := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: dir,
			Face:      face,
			Size:      floatToFixed(size),
			Script:    detectScript(runes),
			Language:  language.NewLanguage("en"),
		})

		run := convertRun(seg, runes, output, size, pen)
		pen += run.Advance
		runs = append(runs, run)
	}

	tryouts.Logger().Debug("text: shaped", "runes", len([]rune(str)), "runs", len(runs), "advance", pen)
	return runs, nil
}

// GlyphPath returns the outline of g placed at its origin on the line, in
// y-down coordinates. Glyphs without contours, like spaces, give an empty
// path. Outlines are cached per glyph and size.
func (s *GoTextShaper) GlyphPath(g Glyph) (*tryouts.Path, error) {
	key := outlineKey{ID: g.ID, Size: g.Size}
	if p, ok := s.cache.Get(key); ok {
		return p.Transform(tryouts.Translate(g.X, g.Y)), nil
	}
	p, err := s.loadOutline(g)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, p)
	return p.Transform(tryouts.Translate(g.X, g.Y)), nil
}

// loadOutline extracts the outline of g at the origin.
func (s *GoTextShaper) loadOutline(g Glyph) (*tryouts.Path, error) {
	buf := s.bufferPool.Get().(*sfnt.Buffer)
	defer s.bufferPool.Put(buf)

	segments, err := s.outlines.LoadGlyph(buf, sfnt.GlyphIndex(g.ID), floatToFixed(g.Size), nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, fmt.Errorf("%w: glyph %d", ErrNoOutline, g.ID)
		}
		return nil, fmt.Errorf("text: load glyph %d: %w", g.ID, err)
	}

	p := tryouts.NewPath()
	for i, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if i > 0 {
				p.Close()
			}
			p.MoveTo(fixedToFloat(seg.Args[0].X), fixedToFloat(seg.Args[0].Y))
		case sfnt.SegmentOpLineTo:
			p.LineTo(fixedToFloat(seg.Args[0].X), fixedToFloat(seg.Args[0].Y))
		case sfnt.SegmentOpQuadTo:
			p.QuadraticTo(
				fixedToFloat(seg.Args[0].X), fixedToFloat(seg.Args[0].Y),
				fixedToFloat(seg.Args[1].X), fixedToFloat(seg.Args[1].Y),
			)
		case sfnt.SegmentOpCubeTo:
			p.CubicTo(
				fixedToFloat(seg.Args[0].X), fixedToFloat(seg.Args[0].Y),
				fixedToFloat(seg.Args[1].X), fixedToFloat(seg.Args[1].Y),
				fixedToFloat(seg.Args[2].X), fixedToFloat(seg.Args[2].Y),
			)
		}
	}
	if len(segments) > 0 {
		p.Close()
	}
	return p, nil
}

func convertRun(seg Segment, runes []rune, output shaping.Output, size, pen float64) Run {
	run := Run{
		Text:      seg.Text,
		Direction: seg.Direction,
		X:         pen,
		Ascent:    fixedToFloat(output.LineBounds.Ascent),
		Descent:   math.Abs(fixedToFloat(output.LineBounds.Descent)),
		Glyphs:    make([]Glyph, 0, len(output.Glyphs)),
	}

	starts := make([]int, 0, len(output.Glyphs))
	for _, g := range output.Glyphs {
		starts = append(starts, g.TextIndex())
	}
	slices.Sort(starts)
	starts = slices.Compact(starts)
	seen := make(map[int]bool, len(starts))

	x := pen
	for _, g := range output.Glyphs {
		cluster := g.TextIndex()
		glyph := Glyph{
			ID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph indices fit in uint16 in sfnt fonts
			Cluster: seg.Start + cluster,
			X:       x + fixedToFloat(g.XOffset),
			// go-text offsets are y-up.
			Y:       -fixedToFloat(g.YOffset),
			Advance: fixedToFloat(g.Advance),
			Ascent:  run.Ascent,
			Descent: run.Descent,
			Size:    size,
		}
		if !seen[cluster] {
			seen[cluster] = true
			i, _ := slices.BinarySearch(starts, cluster)
			end := len(runes)
			if i+1 < len(starts) {
				end = starts[i+1]
			}
			glyph.Text = string(runes[cluster:end])
		}
		run.Glyphs = append(run.Glyphs, glyph)
		x += glyph.Advance
	}
	run.Advance = x - pen
	return run
}

// mapDirection converts a Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune. Mixed-script
// text should be split by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(size * 64))
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
