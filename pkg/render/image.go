package render

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// Image builds an image from the grid's RGB buffer. With scale > 1 each cell
// becomes a scale x scale block of identical pixels.
func Image(g *maze.Grid, p maze.Palette, scale int) image.Image {
	img := FromRGB(g.Width(), g.Height(), g.RGBWith(p))
	if scale <= 1 {
		return img
	}
	return imaging.Resize(img, g.Width()*scale, g.Height()*scale, imaging.NearestNeighbor)
}

// FromRGB wraps a packed RGB buffer of width*height triples as an opaque
// *image.RGBA. It panics if the buffer length does not match.
func FromRGB(width, height int, rgb []byte) *image.RGBA {
	if len(rgb) != width*height*3 {
		panic("render: RGB buffer does not match dimensions")
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < len(rgb); i, j = i+3, j+4 {
		img.Pix[j] = rgb[i]
		img.Pix[j+1] = rgb[i+1]
		img.Pix[j+2] = rgb[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}
