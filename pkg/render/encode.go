package render

import (
	"context"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/matzehuels/mazegen/pkg/errors"
	pkgio "github.com/matzehuels/mazegen/pkg/io"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/render/nodelink"
)

// Format constants for output formats.
const (
	FormatBMP  = "bmp"
	FormatPNG  = "png"
	FormatText = "txt"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatBMP:  true,
	FormatPNG:  true,
	FormatText: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// Options configures encoding.
type Options struct {
	Palette maze.Palette // zero value means maze.DefaultPalette
	Scale   int          // pixels per cell for raster formats; values below 1 mean 1
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be bmp, png, txt, dot, svg or json)", format)
	}
	return nil
}

// IsRaster reports whether format produces a pixel image that honours Scale.
func IsRaster(format string) bool {
	return format == FormatBMP || format == FormatPNG
}

// FormatFromPath infers the output format from the file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from %q (no extension)", path)
	}
	if err := ValidateFormat(ext); err != nil {
		return "", err
	}
	return ext, nil
}

// Encode writes g to w in the given format.
func Encode(ctx context.Context, w io.Writer, format string, g *maze.Grid, opts Options) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}

	if opts.Palette == (maze.Palette{}) {
		opts.Palette = maze.DefaultPalette
	}

	var err error
	switch format {
	case FormatBMP:
		err = bmp.Encode(w, Image(g, opts.Palette, opts.Scale))
	case FormatPNG:
		err = png.Encode(w, Image(g, opts.Palette, opts.Scale))
	case FormatText:
		_, err = io.WriteString(w, g.String())
	case FormatDOT:
		_, err = io.WriteString(w, nodelink.ToDOT(g))
	case FormatJSON:
		err = pkgio.WriteJSON(g, w)
	case FormatSVG:
		var svg []byte
		svg, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(g))
		if err == nil {
			_, err = w.Write(svg)
		}
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "encode %s", format)
	}
	return nil
}
