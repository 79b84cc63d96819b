package shape

import "github.com/gogpu/tryouts"

// appFigureData is the outline of a generic application glyph in unit
// coordinates: (0, 0) is the top-left corner and (1, 1) the bottom-right
// corner of the bounds.
const appFigureData = `
	M 0.48732 0.19898
	L 0.63547 0.45579
	C 0.63564 0.45609 0.63596 0.45628 0.63631 0.45628
	L 0.76996 0.45628
	L 0.76996 0.45628
	C 0.77989 0.45628 0.7889 0.45867 0.7965 0.46297
	C 0.80411 0.46727 0.8103 0.47346 0.8146 0.48107
	C 0.81874 0.4884 0.82112 0.49704 0.82128 0.50655
	L 0.82129 0.50761
	C 0.82129 0.51753 0.8189 0.52654 0.8146 0.53415
	C 0.8103 0.54175 0.80411 0.54795 0.7965 0.55225
	C 0.7889 0.55654 0.77989 0.55894 0.76996 0.55894
	L 0.69683 0.55894
	C 0.69629 0.55894 0.69585 0.55937 0.69585 0.55991
	C 0.69585 0.56008 0.6959 0.56025 0.69598 0.5604
	L 0.74693 0.64863
	L 0.74693 0.64863
	C 0.75189 0.65723 0.75432 0.66623 0.7544 0.67496
	C 0.75448 0.6837 0.75221 0.69216 0.74777 0.69969
	C 0.7435 0.70693 0.73722 0.7133 0.72908 0.71819
	L 0.72814 0.71875
	C 0.71954 0.72371 0.71054 0.72614 0.70181 0.72623
	C 0.69307 0.72631 0.68461 0.72404 0.67708 0.7196
	C 0.66956 0.71516 0.66298 0.70856 0.65802 0.69996
	L 0.51733 0.45628
	M 0.50187 0.55894
	L 0.24469 0.55894
	M 0.20253 0.63197
	C 0.19288 0.64868 0.1798 0.67134 0.16328 0.69996
	C 0.15831 0.70856 0.15173 0.71516 0.14421 0.7196
	C 0.13669 0.72404 0.12822 0.72631 0.11949 0.72624
	C 0.11075 0.72614 0.10175 0.72371 0.09316 0.71875
	C 0.08456 0.71379 0.07796 0.70721 0.07352 0.69969
	C 0.06908 0.69216 0.06681 0.6837 0.06689 0.67496
	C 0.06697 0.66623 0.06941 0.65723 0.07437 0.64863
	C 0.08773 0.62549 0.09838 0.60704 0.10633 0.59327
	M 0.24469 0.55894
	L 0.05133 0.55894
	C 0.04141 0.55894 0.0324 0.55654 0.02479 0.55225
	C 0.01719 0.54795 0.01099 0.54175 0.00669 0.53415
	C 0.0024 0.52654 0 0.51753 0 0.50761
	C 0 0.49768 0.0024 0.48867 0.00669 0.48107
	C 0.01099 0.47346 0.01719 0.46727 0.02479 0.46297
	C 0.0324 0.45867 0.04141 0.45628 0.05133 0.45628
	L 0.18486 0.45628
	C 0.18521 0.45628 0.18553 0.45609 0.18571 0.45579
	L 0.35109 0.16933
	C 0.35127 0.16903 0.35127 0.16866 0.35109 0.16835
	L 0.2987 0.07761
	L 0.2987 0.07761
	C 0.29374 0.06902 0.29131 0.06001 0.29123 0.05128
	C 0.29115 0.04255 0.29342 0.03408 0.29785 0.02656
	C 0.30229 0.01903 0.3089 0.01245 0.31749 0.00749
	C 0.32608 0.00253 0.33509 0.0001 0.34382 0
	C 0.35255 -0.00006 0.36102 0.0022 0.36854 0.00664
	C 0.37607 0.01108 0.38265 0.01769 0.38761 0.02628
	L 0.4098 0.06472
	C 0.41007 0.06518 0.41067 0.06534 0.41113 0.06507
	C 0.41128 0.06499 0.4114 0.06486 0.41149 0.06472
	L 0.43368 0.02628
	L 0.43368 0.02628
	C 0.43864 0.01769 0.44523 0.01108 0.45275 0.00664
	C 0.46027 0.0022 0.46874 -0.00006 0.47747 0
	C 0.48588 0.0001 0.49454 0.00235 0.50285 0.00695
	L 0.5038 0.00749
	C 0.5124 0.01245 0.519 0.01903 0.52344 0.02656
	C 0.52788 0.03408 0.53015 0.04255 0.53008 0.05128
	C 0.52998 0.06001 0.52755 0.06902 0.52259 0.07761
	L 0.41065 0.2715
	M 0.41065 0.2715
	L 0.30481 0.45481
	C 0.30454 0.45528 0.3047 0.45587 0.30517 0.45614
	C 0.30532 0.45623 0.30549 0.45628 0.30566 0.45628
	L 0.47132 0.45628
	L 0.47132 0.45628
	M 0.51733 0.45628
	L 0.43634 0.316
`

var appFigureOutline = MustParsePathData(appFigureData)

// AppFigure is a generic application glyph. Its outline is stroked with
// round caps at a width proportional to its height, and is centered in the
// bounds it is drawn in.
type AppFigure struct{}

// Path implements tryouts.Shape.
func (AppFigure) Path(bounds tryouts.Rect) *tryouts.Path {
	r := bounds.Standardized()
	// The outline scales with the bounds size and is then centered.
	path := appFigureOutline.Path(tryouts.Rect{Size: r.Size})
	b := path.Bounds()
	c := r.Center()
	return path.Transform(tryouts.Translate(c.X-b.MidX(), c.Y-b.MidY()))
}

// StrokeStyle implements tryouts.Stroker.
func (f AppFigure) StrokeStyle(bounds tryouts.Rect) tryouts.StrokeStyle {
	return tryouts.StrokeStyle{
		Width: f.Path(bounds).Bounds().Height() * 0.025,
		Cap:   tryouts.LineCapRound,
	}
}

// SizeThatFits returns the square that fits the proposed size.
func (AppFigure) SizeThatFits(proposal tryouts.Size) tryouts.Size {
	side := min(proposal.Width, proposal.Height)
	return tryouts.Sz(side, side)
}
