package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/internal/config"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/maze/carve"
	"github.com/matzehuels/mazegen/pkg/pipeline"
)

const (
	defaultWatchDelay = 30 * time.Millisecond
	defaultWatchSteps = 1
)

// watchCommand creates the watch command, which animates carving in the terminal.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		flags watchFlags
		delay time.Duration
		steps int
	)

	cmd := &cobra.Command{
		Use:   "watch [width] [height]",
		Short: "Animate the carver in the terminal",
		Long: `Animate randomized depth-first carving in the terminal.

Sizes, --start and --end follow the same rules as generate. Each tick
advances the carver by --steps moves. The current cell is shown in green,
the start in red and the end in blue. Press space to pause, s to finish
instantly and q to quit.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.config)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			g, seed, err := watchGrid(cfg, args, flags)
			if err != nil {
				return err
			}
			return c.runWatch(cmd.Context(), newWatchModel(g, seed, delay, steps))
		},
	}

	cmd.Flags().StringVar(&flags.start, "start", "", `start cell as "(x,y)" (default (0,0))`)
	cmd.Flags().StringVar(&flags.end, "end", "", `end cell as "(x,y)" (default bottom-right corner)`)
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "PRNG seed (0 picks one at random)")
	cmd.Flags().DurationVar(&delay, "delay", defaultWatchDelay, "time between frames")
	cmd.Flags().IntVar(&steps, "steps", defaultWatchSteps, "carver moves per frame")
	cmd.Flags().StringVar(&flags.config, "config", "", "config file (default $XDG_CONFIG_HOME/mazegen/config.toml)")

	return cmd
}

// watchFlags holds the raw flag values of the watch command.
type watchFlags struct {
	start  string
	end    string
	seed   uint64
	config string
}

// watchGrid validates the requested size and markers the way generate does
// and returns the uncarved grid with the seed to carve it with.
func watchGrid(cfg *config.Config, args []string, flags watchFlags) (*maze.Grid, uint64, error) {
	opts := pipeline.Options{
		Width:  parseDimension(argAt(args, 0), cfg.Width),
		Height: parseDimension(argAt(args, 1), cfg.Height),
		Seed:   cfg.Seed,
	}
	if flags.seed != 0 {
		opts.Seed = flags.seed
	}

	var err error
	if opts.Start, err = parseCoordinateFlag("start", flags.start); err != nil {
		return nil, 0, err
	}
	if opts.End, err = parseCoordinateFlag("end", flags.end); err != nil {
		return nil, 0, err
	}

	opts.SetGenerateDefaults()
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, 0, err
	}

	g := maze.New(opts.Width, opts.Height)
	if opts.Start != nil {
		g.SetStart(*opts.Start)
	}
	if opts.End != nil {
		g.SetEnd(*opts.End)
	}
	return g, opts.Seed, nil
}

func (c *CLI) runWatch(ctx context.Context, m watchModel) error {
	logger := loggerFromContext(ctx)
	logger.Debug("watch", "width", m.carver.Grid().Width(), "height", m.carver.Grid().Height(), "seed", m.seed)

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	if fm, ok := final.(watchModel); ok {
		if fm.carver.Done() {
			printSuccess("Carved %d passages", fm.carver.Carved())
		} else {
			printInfo("Stopped after %d moves", fm.moves)
		}
	}
	return nil
}

// =============================================================================
// watchModel - bubbletea model stepping a carver
// =============================================================================

// tickMsg carries the tick chain it belongs to. Resuming starts a new chain,
// and ticks from an older one are dropped.
type tickMsg struct {
	chain int
}

type watchModel struct {
	carver *carve.Carver
	seed   uint64
	delay  time.Duration
	steps  int
	moves  int
	paused bool
	chain  int
}

func newWatchModel(g *maze.Grid, seed uint64, delay time.Duration, steps int) watchModel {
	if delay <= 0 {
		delay = defaultWatchDelay
	}
	if steps < 1 {
		steps = defaultWatchSteps
	}
	return watchModel{
		carver: carve.New(g, pipeline.NewRand(seed)),
		seed:   seed,
		delay:  delay,
		steps:  steps,
	}
}

func (m watchModel) tick() tea.Cmd {
	chain := m.chain
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return tickMsg{chain: chain} })
}

func (m watchModel) Init() tea.Cmd {
	return m.tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if !m.paused && !m.carver.Done() {
				m.chain++
				return m, m.tick()
			}
		case "s":
			for !m.carver.Done() {
				m.carver.Step()
				m.moves++
			}
			return m, nil
		}
	case tickMsg:
		if msg.chain != m.chain || m.paused || m.carver.Done() {
			return m, nil
		}
		for i := 0; i < m.steps && !m.carver.Done(); i++ {
			m.carver.Step()
			m.moves++
		}
		if m.carver.Done() {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder
	g := m.carver.Grid()

	b.WriteString(StyleTitle.Render(fmt.Sprintf("mazegen %dx%d", g.Width(), g.Height())))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("seed %d", m.seed)))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	status := fmt.Sprintf("moves %d  depth %d", m.moves, m.carver.Depth())
	switch {
	case m.carver.Done():
		status += "  done"
	case m.paused:
		status += "  paused"
	}
	b.WriteString(StyleDim.Render(status + "  ·  space pause  s finish  q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderGrid draws each cell two columns wide so the maze keeps its aspect
// ratio in a terminal.
func (m watchModel) renderGrid() string {
	g := m.carver.Grid()
	var cur maze.Coordinate
	active := !m.carver.Done()
	if active {
		cur = m.carver.Current()
	}

	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := maze.Coordinate{X: x, Y: y}
			switch {
			case active && c == cur:
				b.WriteString(styleCurrent.Render("██"))
			case c == g.Start():
				b.WriteString(styleStart.Render("██"))
			case c == g.End():
				b.WriteString(styleEnd.Render("██"))
			case g.At(c) == maze.Wall:
				b.WriteString(styleWall.Render("██"))
			default:
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
