package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/maze/carve"
	"github.com/matzehuels/mazegen/pkg/observability"
	"github.com/matzehuels/mazegen/pkg/render"
)

// Runner executes pipeline stages.
//
// The Runner holds no per-run state, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete generate → render pipeline.
//
// When rendering fails the returned Result is still populated with the
// carved grid and the error carries [errors.ErrCodeEncode].
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	res, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := r.Render(ctx, res, opts); err != nil {
		return res, err
	}
	return res, nil
}

// Generate builds and carves a grid.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g := maze.New(opts.Width, opts.Height)
	if opts.Start != nil {
		g.SetStart(*opts.Start)
	}
	if opts.End != nil {
		g.SetEnd(*opts.End)
	}

	res := &Result{
		RunID: uuid.NewString(),
		Grid:  g,
		Seed:  opts.Seed,
	}
	logger := r.logger(opts).With("run", shortID(res.RunID))

	hooks := observability.Generate()
	hooks.OnCarveStart(ctx, g.Width(), g.Height())

	start := time.Now()
	carve.DepthFirst(g, NewRand(opts.Seed))
	res.Stats.CarveTime = time.Since(start)
	res.Stats.Stats = g.Stats()

	hooks.OnCarveComplete(ctx, g.Width(), g.Height(), res.Stats.Junctions, res.Stats.CarveTime)

	logger.Info("carved maze",
		"size", sizeString(g),
		"seed", opts.Seed,
		"start", g.Start(),
		"end", g.End(),
		"dead_ends", res.Stats.DeadEnds,
		"duration", res.Stats.CarveTime)

	return res, nil
}

// Render encodes res.Grid into res.Artifact.
func (r *Runner) Render(ctx context.Context, res *Result, opts Options) error {
	if res == nil || res.Grid == nil {
		return errors.New(errors.ErrCodeInternal, "render called without a generated grid")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	logger := r.logger(opts).With("run", shortID(res.RunID))

	hooks := observability.Generate()
	hooks.OnEncodeStart(ctx, opts.Format)

	start := time.Now()
	var buf bytes.Buffer
	err := render.Encode(ctx, &buf, opts.Format, res.Grid, render.Options{
		Palette: opts.Palette,
		Scale:   opts.Scale,
	})
	res.Stats.RenderTime = time.Since(start)
	res.Format = opts.Format

	hooks.OnEncodeComplete(ctx, opts.Format, buf.Len(), res.Stats.RenderTime, err)

	if err != nil {
		logger.Error("encode failed", "format", opts.Format, "err", err)
		return err
	}
	res.Artifact = buf.Bytes()

	logger.Debug("encoded maze",
		"format", opts.Format,
		"bytes", len(res.Artifact),
		"duration", res.Stats.RenderTime)
	return nil
}

// logger returns the per-run logger if one was supplied, else the runner's.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

func sizeString(g *maze.Grid) string {
	return fmt.Sprintf("%dx%d", g.Width(), g.Height())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
