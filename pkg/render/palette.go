package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/maze"
)

// PaletteSpec holds hex color strings ("#rrggbb") for each cell role.
// Empty fields keep the default color.
type PaletteSpec struct {
	Wall  string `toml:"wall"`
	Path  string `toml:"path"`
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// ParsePalette resolves a PaletteSpec against [maze.DefaultPalette].
func ParsePalette(spec PaletteSpec) (maze.Palette, error) {
	p := maze.DefaultPalette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"wall", spec.Wall, &p.Wall},
		{"path", spec.Path, &p.Path},
		{"start", spec.Start, &p.Start},
		{"end", spec.End, &p.End},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return maze.Palette{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "%s color %q", f.name, f.hex)
		}
		r, g, b := c.RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return p, nil
}
