package text

import "golang.org/x/text/unicode/bidi"

// Segment is a run of text with a single direction, in visual order.
type Segment struct {
	Text string
	// Start and End are rune offsets into the segmented string.
	Start, End int
	Direction  Direction
}

// SegmentBidi splits s into directional runs using the Unicode
// Bidirectional Algorithm. The segments are returned in visual order, left
// to right. base selects the paragraph direction for text without strong
// characters.
func SegmentBidi(s string, base Direction) []Segment {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	whole := []Segment{{Text: s, Start: 0, End: len(runes), Direction: base}}

	defaultDir := bidi.Neutral
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(defaultDir)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	segments := make([]Segment, 0, ordering.NumRuns())
	for i := range ordering.NumRuns() {
		run := ordering.Run(i)
		// Pos reports inclusive rune positions.
		start, end := run.Pos()
		end = min(end+1, len(runes))
		if start >= end {
			continue
		}
		dir := DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		segments = append(segments, Segment{
			Text:      string(runes[start:end]),
			Start:     start,
			End:       end,
			Direction: dir,
		})
	}
	if len(segments) == 0 {
		return whole
	}
	return segments
}
