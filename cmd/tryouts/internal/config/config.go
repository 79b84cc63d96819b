// Package config loads the scene files rendered by the tryouts command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Version is the scene file version written by default. Files of any
// version with the same major version are accepted.
const Version = "v1.0.0"

// Defaults applied to missing fields.
const (
	DefaultWidth    = 320.0
	DefaultHeight   = 320.0
	DefaultFormat   = "svg"
	DefaultFontSize = 14.0
	DefaultUnit     = 20.0
)

// Scene kinds.
const (
	KindBlueprint    = "blueprint"
	KindCircularText = "circular-text"
	KindStackedText  = "stacked-text"
	KindCartesian    = "cartesian"
	KindEffect       = "effect"
)

var (
	// ErrUnsupportedVersion is returned for scene files of another major
	// version.
	ErrUnsupportedVersion = errors.New("config: unsupported version")
	// ErrInvalidSize is returned for non-positive canvas sizes.
	ErrInvalidSize = errors.New("config: invalid size")
	// ErrInvalidScene is returned for scenes missing required fields.
	ErrInvalidScene = errors.New("config: invalid scene")
	// ErrUnknownKind is returned for scenes of an unknown kind.
	ErrUnknownKind = errors.New("config: unknown scene kind")
)

// Config is a scene file.
type Config struct {
	Version string  `yaml:"version,omitempty"`
	Width   float64 `yaml:"width,omitempty"`
	Height  float64 `yaml:"height,omitempty"`
	Format  string  `yaml:"format,omitempty"`
	Scenes  []Scene `yaml:"scenes"`
}

// Scene is one drawing. Fields not used by its kind are ignored.
type Scene struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`

	// Width and Height override the file size for this scene.
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	// Shape names the shape of blueprint and effect scenes.
	Shape string `yaml:"shape,omitempty"`

	// Text, FontSize, StartAngle and Guides configure text scenes.
	Text       string  `yaml:"text,omitempty"`
	FontSize   float64 `yaml:"font_size,omitempty"`
	StartAngle float64 `yaml:"start_angle,omitempty"`
	Guides     bool    `yaml:"guides,omitempty"`
	Spacing    float64 `yaml:"spacing,omitempty"`

	// Unit is the grid cell side of cartesian scenes.
	Unit float64 `yaml:"unit,omitempty"`

	// Angle is in degrees; it rotates cartesian entries and effect content.
	Angle float64 `yaml:"angle,omitempty"`
	// Axis is the rotation axis of effect scenes.
	Axis []float64 `yaml:"axis,omitempty"`
	// Anchor is the unit anchor point of effect scenes.
	Anchor []float64 `yaml:"anchor,omitempty"`
	// Perspective selects a projective effect when set.
	Perspective *float64 `yaml:"perspective,omitempty"`
}

// Load reads and validates the scene file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a scene file, applying defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Version) == "" {
		c.Version = Version
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if strings.TrimSpace(c.Format) == "" {
		c.Format = DefaultFormat
	}
	for i := range c.Scenes {
		s := &c.Scenes[i]
		s.Kind = strings.ToLower(strings.TrimSpace(s.Kind))
		s.Name = strings.TrimSpace(s.Name)
		if s.Width == 0 {
			s.Width = c.Width
		}
		if s.Height == 0 {
			s.Height = c.Height
		}
		if s.FontSize == 0 {
			s.FontSize = DefaultFontSize
		}
		if s.Unit == 0 {
			s.Unit = DefaultUnit
		}
	}
}

// Validate checks the version, the sizes and every scene.
func (c *Config) Validate() error {
	if !semver.IsValid(c.Version) {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, c.Version)
	}
	if semver.Major(c.Version) != semver.Major(Version) {
		return fmt.Errorf("%w: %s, want %s", ErrUnsupportedVersion, c.Version, semver.Major(Version))
	}
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidSize, c.Width, c.Height)
	}

	seen := make(map[string]bool, len(c.Scenes))
	for i, s := range c.Scenes {
		if err := s.validate(); err != nil {
			return fmt.Errorf("scene %d: %w", i, err)
		}
		if seen[s.Name] {
			return fmt.Errorf("scene %d: %w: duplicate name %q", i, ErrInvalidScene, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

func (s Scene) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScene)
	}
	if strings.ContainsAny(s.Name, `/\`) {
		return fmt.Errorf("%w: name %q contains a path separator", ErrInvalidScene, s.Name)
	}
	if !(s.Width > 0) || !(s.Height > 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidSize, s.Width, s.Height)
	}

	switch s.Kind {
	case KindBlueprint:
	case KindCircularText, KindStackedText:
		if s.Text == "" {
			return fmt.Errorf("%w: %s scene %q needs text", ErrInvalidScene, s.Kind, s.Name)
		}
		if !(s.FontSize > 0) {
			return fmt.Errorf("%w: font size %g", ErrInvalidScene, s.FontSize)
		}
	case KindCartesian:
		if !(s.Unit > 0) {
			return fmt.Errorf("%w: unit %g", ErrInvalidScene, s.Unit)
		}
	case KindEffect:
		if len(s.Axis) != 0 && len(s.Axis) != 3 {
			return fmt.Errorf("%w: axis needs 3 components, got %d", ErrInvalidScene, len(s.Axis))
		}
		if len(s.Anchor) != 0 && len(s.Anchor) != 2 && len(s.Anchor) != 3 {
			return fmt.Errorf("%w: anchor needs 2 or 3 components, got %d", ErrInvalidScene, len(s.Anchor))
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	return nil
}
