package main

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/gogpu/tryouts"
	"github.com/gogpu/tryouts/blueprint"
	"github.com/gogpu/tryouts/cartesian"
	"github.com/gogpu/tryouts/cmd/tryouts/internal/config"
	canvasrender "github.com/gogpu/tryouts/render/canvas"
	"github.com/gogpu/tryouts/shape"
	"github.com/gogpu/tryouts/text"
	"github.com/gogpu/tryouts/transform3d"
)

// renderAll renders every scene of cfg into outDir and returns the written
// file names.
func renderAll(cfg *config.Config, outDir string) ([]string, error) {
	format, err := canvasrender.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	var shaper *text.GoTextShaper
	files := make([]string, 0, len(cfg.Scenes))
	for _, s := range cfg.Scenes {
		if (s.Kind == config.KindCircularText || s.Kind == config.KindStackedText) && shaper == nil {
			if shaper, err = text.NewDefaultShaper(); err != nil {
				return nil, err
			}
		}

		r, err := renderScene(s, shaper)
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", s.Name, err)
		}
		name := filepath.Join(outDir, s.Name+format.Ext())
		if err := r.WriteFile(name, format); err != nil {
			return nil, fmt.Errorf("scene %q: %w", s.Name, err)
		}
		files = append(files, name)
	}
	return files, nil
}

func renderScene(s config.Scene, shaper *text.GoTextShaper) (*canvasrender.Renderer, error) {
	size := tryouts.Sz(s.Width, s.Height)
	tryouts.Logger().Debug("rendering scene", "kind", s.Kind, "name", s.Name, "size", size)

	switch s.Kind {
	case config.KindBlueprint:
		return renderBlueprint(s, size)
	case config.KindCircularText:
		return renderCircularText(s, shaper)
	case config.KindStackedText:
		return renderStackedText(s, shaper)
	case config.KindCartesian:
		return renderCartesian(s, size), nil
	case config.KindEffect:
		return renderEffect(s, size)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownKind, s.Kind)
	}
}

func lookupShape(name string) (tryouts.Shape, error) {
	if name == "" {
		return nil, nil
	}
	sh, ok := shape.Named(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown shape %q", config.ErrInvalidScene, name)
	}
	return sh, nil
}

func renderBlueprint(s config.Scene, size tryouts.Size) (*canvasrender.Renderer, error) {
	sh, err := lookupShape(s.Shape)
	if err != nil {
		return nil, err
	}
	r := canvasrender.New(size, canvasrender.DefaultStyle())
	if err := blueprint.Draw(sh, size, r); err != nil {
		return nil, err
	}
	return r, nil
}

// radians converts configuration angles, given in degrees.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func renderCircularText(s config.Scene, shaper *text.GoTextShaper) (*canvasrender.Renderer, error) {
	runs, err := shaper.Shape(s.Text, s.FontSize)
	if err != nil {
		return nil, err
	}
	layout := text.NewCircularLayout(text.FlattenRuns(runs), radians(s.StartAngle))
	side := layout.Bounds().Rect().Width()

	const margin = 8
	r := canvasrender.New(tryouts.Sz(side+2*margin, side+2*margin), canvasrender.DefaultStyle())
	if err := r.DrawCircularText(layout, shaper, tryouts.Pt(margin, margin), s.Guides); err != nil {
		return nil, err
	}
	return r, nil
}

func renderStackedText(s config.Scene, shaper *text.GoTextShaper) (*canvasrender.Renderer, error) {
	runs, err := shaper.Shape(s.Text, s.FontSize)
	if err != nil {
		return nil, err
	}
	spacing := s.Spacing
	if spacing == 0 {
		spacing = text.DefaultStackSpacing
	}
	slices := text.FlattenRuns(runs)
	size := text.StackedSize(text.LineSize(slices), spacing)

	r := canvasrender.New(size, canvasrender.DefaultStyle())
	if err := r.DrawStackedText(slices, shaper, tryouts.Point{}, spacing); err != nil {
		return nil, err
	}
	return r, nil
}

func renderCartesian(s config.Scene, size tryouts.Size) *canvasrender.Renderer {
	system := cartesian.New(tryouts.Sz(s.Unit, s.Unit), tryouts.Rect{Size: size})
	r := canvasrender.New(size, canvasrender.DefaultStyle())
	r.DrawSystem(system)
	for _, e := range system.DebugRotationEntries() {
		r.DrawRotation(radians(s.Angle), e)
	}
	return r
}

func effectOf(s config.Scene) transform3d.Effect {
	axis := transform3d.V3(0, 0, 1)
	if len(s.Axis) == 3 {
		axis = transform3d.V3(s.Axis[0], s.Axis[1], s.Axis[2])
	}
	anchor := transform3d.Front
	if len(s.Anchor) >= 2 {
		anchor = transform3d.UnitPoint3D{X: s.Anchor[0], Y: s.Anchor[1]}
		if len(s.Anchor) == 3 {
			anchor.Z = s.Anchor[2]
		}
	}
	t := transform3d.AxisAngleTransform(radians(s.Angle), axis)

	if s.Perspective != nil {
		return transform3d.ProjectiveEffect{Transform: t, Anchor: anchor, Perspective: *s.Perspective}
	}
	return transform3d.AffineEffect{Transform: t, Anchor: anchor}
}

func renderEffect(s config.Scene, size tryouts.Size) (*canvasrender.Renderer, error) {
	sh, err := lookupShape(s.Shape)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		sh = shape.Rectangle{}
	}

	// The content box is half the canvas, centered.
	box := tryouts.Sz(size.Width/2, size.Height/2)
	origin := tryouts.Pt(size.Width/4, size.Height/4)

	r := canvasrender.New(size, canvasrender.DefaultStyle())
	if err := r.DrawEffect(sh.Path(tryouts.Rect{Size: box}), box, origin, effectOf(s)); err != nil {
		return nil, err
	}
	return r, nil
}
