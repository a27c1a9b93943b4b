package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/punishboard/pkg/board"
	"github.com/matzehuels/punishboard/pkg/buildinfo"
	"github.com/matzehuels/punishboard/pkg/cache"
	"github.com/matzehuels/punishboard/pkg/config"
	"github.com/matzehuels/punishboard/pkg/dice"
	"github.com/matzehuels/punishboard/pkg/observability"
	"github.com/matzehuels/punishboard/pkg/pipeline"
	"github.com/matzehuels/punishboard/pkg/session"
	"github.com/matzehuels/punishboard/pkg/store"
)

// appName is the application name used for display.
const appName = "punishboard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool

	// openStore replaces the configured store backend, for tests.
	openStore func(ctx context.Context) (store.Store, error)
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Punishboard designs and plays Monopoly-style punishment boards",
		Long: `Punishboard builds a square board from a list of punishments. The four
corners are fixed spaces and the list is split evenly over the four sides.
Roll a die to walk a token around the board in the terminal, serve the
board over HTTP, or render it to SVG, PNG, PDF, JSON or a Graphviz ring.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/punishboard/config.toml)")

	// Register all subcommands
	root.AddCommand(c.spaceCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and attaches the logger to the command
// context. --verbose wins over the configured level.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, err := parseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if c.verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}

	hooks := logHooks{logger: c.Logger}
	observability.SetStoreHooks(hooks)
	observability.SetGameHooks(hooks)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Factories
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache || c.Config.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(c.Config.Cache.Dir)
	if err != nil {
		c.Logger.Warn("artifact cache unavailable", "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// store opens the configured space list backend.
func (c *CLI) store(ctx context.Context) (store.Store, error) {
	if c.openStore != nil {
		return c.openStore(ctx)
	}
	st, err := store.Open(ctx, c.Config.Store)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", c.Config.Store.Backend, err)
	}
	return st, nil
}

// newSession creates a session holding the saved space list.
func (c *CLI) newSession(ctx context.Context, st store.Store, opts ...session.Option) (*session.Session, error) {
	saved, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load space list: %w", err)
	}
	if rng := c.seededRNG(); rng != nil {
		opts = append([]session.Option{session.WithRNG(rng)}, opts...)
	}
	s := session.New(opts...)
	if skipped, _ := s.Replace(saved); skipped > 0 {
		c.Logger.Warn("dropped invalid saved spaces", "skipped", skipped)
	}
	return s, nil
}

// seededRNG returns a reproducible die when the config sets a seed, nil
// otherwise.
func (c *CLI) seededRNG() dice.RNG {
	if c.Config.Game.Seed == 0 {
		return nil
	}
	return dice.NewSeededRNG(c.Config.Game.Seed)
}

// corners resolves corner flags over the configured corners.
func (c *CLI) corners(topRight, bottomRight, bottomLeft string) board.Corners {
	g := c.Config.Game
	return board.NewCorners(
		firstNonEmpty(topRight, g.TopRight),
		firstNonEmpty(bottomRight, g.BottomRight),
		firstNonEmpty(bottomLeft, g.BottomLeft),
	)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return splitList(s)
}

// parseVizTypes parses a comma-separated visualization type list.
func parseVizTypes(s string) []string {
	if s == "" {
		return []string{pipeline.VizBoard}
	}
	return splitList(s)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
