package canvasrender

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

// ErrUnknownFormat is returned for output formats the renderer cannot write.
var ErrUnknownFormat = errors.New("canvasrender: unknown format")

// Format is an output file format.
type Format string

// Supported formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath returns the format matching the extension of name.
func FormatFromPath(name string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(name), "."))
}

// Ext returns the file extension of f, with the leading dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// writer returns the canvas writer for f. PNG output is rasterized at
// resolution dots per canvas unit.
func (f Format) writer(resolution float64) (canvas.Writer, error) {
	switch f {
	case FormatSVG:
		return renderers.SVG(), nil
	case FormatPNG:
		return renderers.PNG(canvas.DPMM(resolution)), nil
	case FormatPDF:
		return renderers.PDF(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
