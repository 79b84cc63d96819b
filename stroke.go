package tryouts

// LineCap specifies the shape of open line endpoints.
type LineCap int

const (
	// LineCapButt ends the line flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the line with a half circle.
	LineCapRound
	// LineCapSquare extends the line by half its width.
	LineCapSquare
)

// String returns the string representation of the line cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "Butt"
	case LineCapRound:
		return "Round"
	case LineCapSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

// StrokeStyle describes how a path outline is stroked.
type StrokeStyle struct {
	// Width is the line width. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Dash alternates dash and gap lengths. nil means a solid line.
	Dash []float64
}

// SolidStroke returns a solid butt-capped stroke of the given width.
func SolidStroke(width float64) StrokeStyle {
	return StrokeStyle{Width: width}
}

// DashedStroke returns a dashed stroke of the given width and pattern.
//
// Example:
//
//	DashedStroke(1, 4, 2) // 4 units dash, 2 units gap
func DashedStroke(width float64, pattern ...float64) StrokeStyle {
	return StrokeStyle{Width: width, Dash: pattern}
}

// IsDashed reports whether the stroke has a dash pattern with some
// non-zero length.
func (s StrokeStyle) IsDashed() bool {
	for _, l := range s.Dash {
		if l > 0 {
			return true
		}
	}
	return false
}
