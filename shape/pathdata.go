package shape

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gogpu/tryouts"
)

var (
	pathLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n,]+`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`},
		{Name: "Command", Pattern: `[MLQCZ]`},
	})

	pathParser = participle.MustBuild[PathData](
		participle.Lexer(pathLexer),
		participle.Elide("Whitespace"),
	)
)

// PathData is a parsed path in unit coordinates. The syntax is the absolute
// subset of SVG path data: M x y, L x y, Q cx cy x y, C c1x c1y c2x c2y x y
// and Z, separated by whitespace or commas.
type PathData struct {
	Commands []*Command `parser:"@@*"`
}

// Command is a single path data command.
type Command struct {
	Pos lexer.Position `parser:""`

	Move  *Pair  `parser:"  'M' @@"`
	Line  *Pair  `parser:"| 'L' @@"`
	Quad  *Quad  `parser:"| 'Q' @@"`
	Cubic *Cubic `parser:"| 'C' @@"`
	Close bool   `parser:"| @'Z'"`
}

// Pair is a coordinate pair.
type Pair struct {
	X float64 `parser:"@Number"`
	Y float64 `parser:"@Number"`
}

// Quad is a quadratic curve: control point then end point.
type Quad struct {
	Control Pair `parser:"@@"`
	To      Pair `parser:"@@"`
}

// Cubic is a cubic curve: two control points then end point.
type Cubic struct {
	Control1 Pair `parser:"@@"`
	Control2 Pair `parser:"@@"`
	To       Pair `parser:"@@"`
}

// ParsePathData parses path data.
func ParsePathData(s string) (*PathData, error) {
	d, err := pathParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("shape: parse path data: %w", err)
	}
	return d, nil
}

// MustParsePathData is like ParsePathData but panics on error.
func MustParsePathData(s string) *PathData {
	d, err := ParsePathData(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Path implements tryouts.Shape, mapping unit coordinates onto bounds.
func (d *PathData) Path(bounds tryouts.Rect) *tryouts.Path {
	r := bounds.Standardized()
	pt := func(p Pair) tryouts.Point {
		return tryouts.Pt(r.Origin.X+p.X*r.Size.Width, r.Origin.Y+p.Y*r.Size.Height)
	}

	path := tryouts.NewPath()
	for _, c := range d.Commands {
		switch {
		case c.Move != nil:
			p := pt(*c.Move)
			path.MoveTo(p.X, p.Y)
		case c.Line != nil:
			p := pt(*c.Line)
			path.LineTo(p.X, p.Y)
		case c.Quad != nil:
			cp, p := pt(c.Quad.Control), pt(c.Quad.To)
			path.QuadraticTo(cp.X, cp.Y, p.X, p.Y)
		case c.Cubic != nil:
			c1, c2, p := pt(c.Cubic.Control1), pt(c.Cubic.Control2), pt(c.Cubic.To)
			path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		case c.Close:
			path.Close()
		}
	}
	return path
}
