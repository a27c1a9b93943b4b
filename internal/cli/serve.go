package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/punishboard/internal/server"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP",
		Long: `Serve the board over HTTP.

The server holds one session: the saved space list is loaded at start and
written back after every change made before the game starts. Roll
announcements are streamed to websocket clients on /api/events.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			st, err := c.store(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv, err := server.New(ctx, server.Options{
				Store:           st,
				Runner:          runner,
				Logger:          c.Logger,
				TileSize:        c.Config.Game.TileSize,
				AnnounceDelay:   c.Config.Game.AnnounceDelay.Duration,
				ReadTimeout:     c.Config.Server.ReadTimeout.Duration,
				WriteTimeout:    c.Config.Server.WriteTimeout.Duration,
				ShutdownTimeout: c.Config.Server.ShutdownTimeout.Duration,
				RNG:             c.seededRNG(),
			})
			if err != nil {
				return err
			}
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}
