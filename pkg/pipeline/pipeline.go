// Package pipeline provides the generate → render pipeline for mazegen.
//
// This package centralizes option defaults, validation and the two stages of
// a run so every entry point (the generate command, the terminal preview,
// tests) behaves the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: build a grid, place start/end, carve it with a seeded PRNG
//  2. Render: encode the carved grid (BMP, PNG, TXT, DOT, SVG)
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Width:  31,
//	    Height: 21,
//	    Seed:   42,
//	    Format: "bmp",
//	})
//	if err != nil && errors.IsFatal(err) {
//	    log.Fatal(err)
//	}
//	os.WriteFile("maze.bmp", res.Artifact, 0o644)
//
// A zero Seed picks a random one; the chosen seed is reported in
// [Result.Seed] so the run can be reproduced.
package pipeline

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default maze width in cells.
	DefaultWidth = 19

	// DefaultHeight is the default maze height in cells.
	DefaultHeight = 19

	// DefaultScale is the default number of pixels per cell.
	DefaultScale = 1

	// DefaultFormat is the default output format.
	DefaultFormat = render.FormatBMP

	// MaxDimension bounds width and height in cells.
	MaxDimension = 16384

	// MaxImageDimension bounds each side of a bmp or png in pixels after scaling.
	MaxImageDimension = 16384
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one generation run.
type Options struct {
	// Generate options
	Width  int
	Height int
	Start  *maze.Coordinate // nil keeps the grid default (0,0)
	End    *maze.Coordinate // nil keeps the grid default (width-1,height-1)
	Seed   uint64           // 0 picks a random seed

	// Render options
	Format  string
	Scale   int
	Palette maze.Palette // zero value means maze.DefaultPalette

	// Runtime options
	Logger *log.Logger // overrides the runner's logger when set

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Grid is the carved maze.
	Grid *maze.Grid

	// Seed is the PRNG seed actually used.
	Seed uint64

	// Format is the encoding of Artifact.
	Format string

	// Artifact holds the encoded output. It is nil when rendering failed.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	maze.Stats
	CarveTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetGenerateDefaults()
	o.SetRenderDefaults()
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetGenerateDefaults fills in zero dimensions and the seed.
func (o *Options) SetGenerateDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == 0 {
		o.Seed = RandomSeed()
	}
}

// SetRenderDefaults fills in the format, scale and palette.
func (o *Options) SetRenderDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Palette == (maze.Palette{}) {
		o.Palette = maze.DefaultPalette
	}
}

// ValidateForGenerate checks dimensions and that start/end fall inside the grid.
func (o *Options) ValidateForGenerate() error {
	if err := validateDimension("width", o.Width); err != nil {
		return err
	}
	if err := validateDimension("height", o.Height); err != nil {
		return err
	}

	w, h := maze.NormalizeDimension(o.Width), maze.NormalizeDimension(o.Height)
	if err := validateCoordinate("start", o.Start, w, h); err != nil {
		return err
	}
	return validateCoordinate("end", o.End, w, h)
}

// ValidateForRender checks the format and scale. For raster formats it also
// bounds the scaled image, so it expects the dimensions to be set.
func (o *Options) ValidateForRender() error {
	if err := render.ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := errors.ValidateScale(o.Scale); err != nil {
		return err
	}
	if !render.IsRaster(o.Format) {
		return nil
	}
	w, h := maze.NormalizeDimension(o.Width), maze.NormalizeDimension(o.Height)
	if w*o.Scale > MaxImageDimension || h*o.Scale > MaxImageDimension {
		return errors.New(errors.ErrCodeInvalidDimension,
			"%dx%d at scale %d exceeds %d pixels per side", o.Width, o.Height, o.Scale, MaxImageDimension)
	}
	return nil
}

func validateDimension(name string, v int) error {
	if v < 0 || v > MaxDimension {
		return errors.New(errors.ErrCodeInvalidDimension, "%s must be between 1 and %d, got %d", name, MaxDimension, v)
	}
	return nil
}

func validateCoordinate(name string, c *maze.Coordinate, width, height int) error {
	if c == nil {
		return nil
	}
	if c.X < 0 || c.Y < 0 || c.X >= width || c.Y >= height {
		return errors.New(errors.ErrCodeInvalidCoordinate,
			"%s %v is outside the %dx%d grid", name, *c, width, height)
	}
	return nil
}

// RandomSeed returns a fresh non-zero seed.
func RandomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// NewRand returns the PRNG used for carving with the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}
