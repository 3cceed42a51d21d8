// Package render converts carved grids into image files.
//
// # Overview
//
// The grid's RGB buffer (one triple per cell, see [maze.Grid.RGB]) is the
// whole contract between the maze core and this package. From it render
// builds an [image.Image], optionally upscaled so each cell covers a block of
// pixels, and encodes it:
//
//   - BMP: the default bitmap output, via golang.org/x/image/bmp
//   - PNG: compressed raster output
//   - TXT: ASCII art from [maze.Grid.String]
//   - JSON: dimensions, rows and passages via [pkgio.WriteJSON]
//
// Spanning-tree diagrams (DOT and SVG) live in the [nodelink] subpackage.
//
// # Usage
//
//	img := render.Image(g, maze.DefaultPalette, 8)
//
//	var buf bytes.Buffer
//	err := render.Encode(ctx, &buf, render.FormatBMP, g, render.Options{Scale: 8})
//
// [nodelink]: github.com/matzehuels/mazegen/pkg/render/nodelink
// [pkgio.WriteJSON]: github.com/matzehuels/mazegen/pkg/io.WriteJSON
package render
