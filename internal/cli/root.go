// Package cli implements the punishboard command-line interface.
//
// # Commands
//
//   - space: edit the saved list of board spaces (add, rm, mv, ls, clear)
//   - check: report whether the saved list can start a game
//   - render: write the board as SVG, PNG, PDF, JSON, text or a Graphviz ring
//   - play: roll the die and walk the token in the terminal
//   - serve: run the HTTP API with a websocket announcement stream
//   - cache: manage the rendered artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Otherwise the
// level comes from the config file. Loggers are passed through
// context.Context.
//
// # Example
//
//	func main() {
//	    ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	    defer cancel()
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"
)

// Execute builds the command tree and runs it with ctx. Logs go to stderr.
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}
