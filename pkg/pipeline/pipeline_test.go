package pipeline

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/observability"
	"github.com/matzehuels/mazegen/pkg/render"
)

func quietRunner() *Runner {
	return NewRunner(log.New(&bytes.Buffer{}))
}

func TestOptions_ValidateAndSetDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
	}
	if opts.Format != DefaultFormat {
		t.Errorf("Format = %q, want %q", opts.Format, DefaultFormat)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %d, want %d", opts.Scale, DefaultScale)
	}
	if opts.Seed == 0 {
		t.Error("Seed should be chosen when zero")
	}
	if opts.Palette != maze.DefaultPalette {
		t.Error("Palette should default to maze.DefaultPalette")
	}
}

func TestOptions_ValidateAndSetDefaults_Idempotent(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	seed := opts.Seed
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Seed != seed {
		t.Errorf("second call changed seed from %d to %d", seed, opts.Seed)
	}
}

func TestOptions_Validation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"negative width", Options{Width: -1}, errors.ErrCodeInvalidDimension},
		{"negative height", Options{Height: -5}, errors.ErrCodeInvalidDimension},
		{"too wide", Options{Width: MaxDimension + 1}, errors.ErrCodeInvalidDimension},
		{"start outside", Options{Width: 5, Height: 5, Start: &maze.Coordinate{X: 5, Y: 0}}, errors.ErrCodeInvalidCoordinate},
		{"end outside", Options{Width: 5, Height: 5, End: &maze.Coordinate{X: 0, Y: 9}}, errors.ErrCodeInvalidCoordinate},
		{"end outside after even decrement", Options{Width: 6, Height: 6, End: &maze.Coordinate{X: 5, Y: 5}}, errors.ErrCodeInvalidCoordinate},
		{"bad format", Options{Format: "gif"}, errors.ErrCodeInvalidFormat},
		{"bad scale", Options{Scale: -2}, errors.ErrCodeInvalidInput},
		{"scaled png too large", Options{Width: MaxDimension, Height: MaxDimension, Scale: 64, Format: render.FormatPNG}, errors.ErrCodeInvalidDimension},
		{"scaled bmp too tall", Options{Width: 5, Height: 301, Scale: 64, Format: render.FormatBMP}, errors.ErrCodeInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestOptions_ImageBound(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"largest unscaled png", Options{Width: MaxDimension, Height: MaxDimension, Format: render.FormatPNG}},
		{"scale at the bound", Options{Width: 255, Height: 255, Scale: 64, Format: render.FormatBMP}},
		{"text ignores scale", Options{Width: MaxDimension, Height: MaxDimension, Scale: 64, Format: render.FormatText}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Seed = 1
			if err := opts.ValidateAndSetDefaults(); err != nil {
				t.Errorf("ValidateAndSetDefaults() error: %v", err)
			}
		})
	}
}

func TestRunner_Execute(t *testing.T) {
	res, err := quietRunner().Execute(context.Background(), Options{
		Width:  5,
		Height: 5,
		Seed:   7,
		Format: render.FormatText,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if res.RunID == "" {
		t.Error("RunID should be set")
	}
	if res.Seed != 7 {
		t.Errorf("Seed = %d, want 7", res.Seed)
	}
	if res.Format != render.FormatText {
		t.Errorf("Format = %q", res.Format)
	}
	if got, want := string(res.Artifact), res.Grid.String(); got != want {
		t.Errorf("Artifact = %q, want %q", got, want)
	}
	if res.Stats.Junctions != 9 {
		t.Errorf("Junctions = %d, want 9", res.Stats.Junctions)
	}
	if res.Stats.Open != 2*res.Stats.Junctions-1 {
		t.Errorf("Open = %d, want %d", res.Stats.Open, 2*res.Stats.Junctions-1)
	}
}

func TestRunner_Deterministic(t *testing.T) {
	run := func() string {
		res, err := quietRunner().Execute(context.Background(), Options{
			Width: 21, Height: 15, Seed: 1234, Format: render.FormatText,
		})
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		return string(res.Artifact)
	}
	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different mazes:\n%s\n%s", a, b)
	}
}

func TestRunner_StartEnd(t *testing.T) {
	res, err := quietRunner().Execute(context.Background(), Options{
		Width:  9,
		Height: 9,
		Seed:   3,
		Start:  &maze.Coordinate{X: 3, Y: 5},
		End:    &maze.Coordinate{X: 8, Y: 1},
		Format: render.FormatText,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got := res.Grid.Start(); got != (maze.Coordinate{X: 2, Y: 4}) {
		t.Errorf("Start = %v, want (2,4)", got)
	}
	if got := res.Grid.End(); got != (maze.Coordinate{X: 8, Y: 0}) {
		t.Errorf("End = %v, want (8,0)", got)
	}
}

func TestRunner_InvalidOptions(t *testing.T) {
	res, err := quietRunner().Execute(context.Background(), Options{Width: -3})
	if res != nil {
		t.Error("result should be nil on invalid options")
	}
	if !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("error = %v", err)
	}
}

func TestRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := quietRunner().Generate(ctx, Options{}); err != context.Canceled {
		t.Errorf("Generate() error = %v, want context.Canceled", err)
	}
}

func TestRunner_RenderWithoutGrid(t *testing.T) {
	err := quietRunner().Render(context.Background(), &Result{}, Options{})
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Render() error = %v, want %s", err, errors.ErrCodeInternal)
	}
}

type recordingHooks struct {
	observability.NoopGenerateHooks
	carves    int
	encodes   int
	junctions int
	size      int
}

func (h *recordingHooks) OnCarveComplete(_ context.Context, _, _, junctions int, _ time.Duration) {
	h.carves++
	h.junctions = junctions
}

func (h *recordingHooks) OnEncodeComplete(_ context.Context, _ string, size int, _ time.Duration, _ error) {
	h.encodes++
	h.size = size
}

func TestRunner_Hooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetGenerateHooks(h)
	defer observability.Reset()

	res, err := quietRunner().Execute(context.Background(), Options{Width: 7, Height: 7, Seed: 1, Format: render.FormatBMP})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if h.carves != 1 || h.encodes != 1 {
		t.Errorf("hooks fired carve=%d encode=%d, want 1 each", h.carves, h.encodes)
	}
	if h.junctions != 16 {
		t.Errorf("junctions = %d, want 16", h.junctions)
	}
	if h.size != len(res.Artifact) {
		t.Errorf("encode size = %d, want %d", h.size, len(res.Artifact))
	}
}
