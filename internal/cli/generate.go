package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/internal/config"
	"github.com/matzehuels/mazegen/pkg/errors"
	pkgio "github.com/matzehuels/mazegen/pkg/io"
	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/render"
)

// generateFlags holds the raw flag values of the generate command.
type generateFlags struct {
	start  string
	end    string
	seed   uint64
	scale  int
	format string
	config string
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate <output> [width] [height]",
		Short: "Carve a maze and write it to a file",
		Long: `Carve a perfect maze and write it to a file.

Width and height default to 19 (or the configured size). Even sizes are
reduced by one, and values that are not positive integers fall back to
the default. Start and end take the form "(x,y)" and are snapped to the
nearest junction with even coordinates.

The output format is taken from --format, then the file extension, then
the config file: bmp, png, txt, dot, svg or json.

Examples:
  mazegen generate maze.bmp
  mazegen generate maze.png 41 31 --scale 8
  mazegen generate maze.bmp 21 21 --start "(0,10)" --end "(20,10)" --seed 7`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.start, "start", "", `start cell as "(x,y)" (default (0,0))`)
	cmd.Flags().StringVar(&flags.end, "end", "", `end cell as "(x,y)" (default bottom-right corner)`)
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "PRNG seed (0 picks one at random)")
	cmd.Flags().IntVar(&flags.scale, "scale", 0, "pixels per cell for bmp and png")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: bmp, png, txt, dot, svg, json")
	cmd.Flags().StringVar(&flags.config, "config", "", "config file (default $XDG_CONFIG_HOME/mazegen/config.toml)")

	return cmd
}

// buildOptions merges config values, positional arguments and flags into
// pipeline options. Flags win over config.
func buildOptions(cfg *config.Config, args []string, flags generateFlags) (pipeline.Options, error) {
	opts := pipeline.Options{
		Width:  parseDimension(argAt(args, 1), cfg.Width),
		Height: parseDimension(argAt(args, 2), cfg.Height),
		Seed:   cfg.Seed,
		Scale:  cfg.Scale,
		Format: cfg.Format,
	}

	var err error
	if opts.Start, err = parseCoordinateFlag("start", flags.start); err != nil {
		return opts, err
	}
	if opts.End, err = parseCoordinateFlag("end", flags.end); err != nil {
		return opts, err
	}

	if opts.Palette, err = cfg.Palette(); err != nil {
		return opts, err
	}
	if flags.seed != 0 {
		opts.Seed = flags.seed
	}
	if flags.scale != 0 {
		opts.Scale = flags.scale
	}

	if flags.format != "" {
		opts.Format = flags.format
	} else if f, err := render.FormatFromPath(argAt(args, 0)); err == nil {
		opts.Format = f
	}
	return opts, nil
}

func (c *CLI) runGenerate(ctx context.Context, args []string, flags generateFlags) error {
	logger := loggerFromContext(ctx)
	output := args[0]

	if err := errors.ValidateOutputPath(output); err != nil {
		return err
	}
	cfg, err := config.Load(flags.config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts, err := buildOptions(cfg, args, flags)
	if err != nil {
		return err
	}
	if ext, err := render.FormatFromPath(output); err == nil && ext != opts.Format {
		printWarning("writing %s output to %s", opts.Format, output)
	}
	opts.Logger = logger

	prog := newProgress(logger)
	spinner := newSpinner(ctx, "Carving maze...")
	spinner.Start()

	res, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		if errors.IsFatal(err) {
			spinner.StopWithError("Generation failed")
			return err
		}
		spinner.StopWithError(errors.UserMessage(err))
		return nil
	}
	spinner.Stop()

	if err := pkgio.WriteFile(output, res.Artifact); err != nil {
		printError("%v", err)
		return nil
	}
	prog.done("wrote maze", "path", output, "format", res.Format)

	printSuccess("Generated %dx%d maze", res.Grid.Width(), res.Grid.Height())
	printFile(output)
	printStats(res.Stats.Stats, res.Seed, res.Stats.CarveTime+res.Stats.RenderTime)
	return nil
}
