package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/punishboard/pkg/errors"
	"github.com/matzehuels/punishboard/pkg/session"
)

// spaceCommand creates the command group that edits the pre-game list.
func (c *CLI) spaceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "space",
		Aliases: []string{"spaces"},
		Short:   "Edit the list of board spaces",
		Long: `Edit the list of board spaces.

The list is saved after every change and read again by 'play', 'serve' and
'render'. Spaces can be referred to by their name or their 1-based position;
an exact name match wins over a position. A board needs a non-zero number of spaces divisible by 4.`,
	}

	cmd.AddCommand(c.spaceAddCommand())
	cmd.AddCommand(c.spaceRemoveCommand())
	cmd.AddCommand(c.spaceMoveCommand())
	cmd.AddCommand(c.spaceListCommand())
	cmd.AddCommand(c.spaceClearCommand())

	return cmd
}

func (c *CLI) spaceAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME...",
		Short: "Append spaces to the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editSpaces(cmd.Context(), func(s *session.Session) error {
				for _, name := range args {
					e, err := s.Add(name)
					if err != nil {
						return err
					}
					printSuccess("Added %s", StyleValue.Render(e.Name))
				}
				return nil
			})
		},
	}
}

func (c *CLI) spaceRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm SPACE",
		Aliases: []string{"remove"},
		Short:   "Remove a space by position or name",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editSpaces(cmd.Context(), func(s *session.Session) error {
				e, err := resolveSpace(s, args[0])
				if err != nil {
					return err
				}
				if err := s.Remove(e.ID); err != nil {
					return err
				}
				printSuccess("Removed %s", StyleValue.Render(e.Name))
				return nil
			})
		},
	}
}

func (c *CLI) spaceMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "mv SPACE POSITION",
		Aliases: []string{"move"},
		Short:   "Move a space to a 1-based position",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := strconv.Atoi(args[1])
			if err != nil || to < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "invalid position %q", args[1])
			}
			return c.editSpaces(cmd.Context(), func(s *session.Session) error {
				e, err := resolveSpace(s, args[0])
				if err != nil {
					return err
				}
				if err := s.Move(e.ID, to-1); err != nil {
					return err
				}
				printSuccess("Moved %s to position %d", StyleValue.Render(e.Name), min(to, len(s.Entries())))
				return nil
			})
		},
	}
}

func (c *CLI) spaceListCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Show the list of spaces",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeFn, err := c.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(s.Names())
			}

			entries := s.Entries()
			if len(entries) == 0 {
				printInfo("No spaces yet")
				printNextStep("Add one", appName+" space add \"Do 10 push-ups\"")
				return nil
			}
			for i, e := range entries {
				printSpace(i+1, e.Name)
			}
			printNewline()
			printReadiness(s)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the names as a JSON array")
	return cmd
}

func (c *CLI) spaceClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editSpaces(cmd.Context(), func(s *session.Session) error {
				n := len(s.Entries())
				if _, err := s.Replace(nil); err != nil {
					return err
				}
				printSuccess("Removed %d spaces", n)
				return nil
			})
		},
	}
}

// openSession loads the saved list into a fresh session. The returned
// function closes the store.
func (c *CLI) openSession(ctx context.Context) (*session.Session, func(), error) {
	st, err := c.store(ctx)
	if err != nil {
		return nil, nil, err
	}
	s, err := c.newSession(ctx, st)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return s, func() { st.Close() }, nil
}

// editSpaces applies f to the saved list and saves the result. Nothing is
// saved when f fails.
func (c *CLI) editSpaces(ctx context.Context, f func(*session.Session) error) error {
	st, err := c.store(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	s, err := c.newSession(ctx, st)
	if err != nil {
		return err
	}
	if err := f(s); err != nil {
		return err
	}
	if err := st.Save(ctx, s.Names()); err != nil {
		return fmt.Errorf("save space list: %w", err)
	}
	printReadiness(s)
	return nil
}

// resolveSpace finds an entry by exact name, 1-based position or ID.
func resolveSpace(s *session.Session, ref string) (session.Entry, error) {
	entries := s.Entries()
	for _, e := range entries {
		if e.Name == ref {
			return e, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(entries) {
		return entries[n-1], nil
	}
	if e, ok := s.Lookup(ref); ok {
		return e, nil
	}
	return session.Entry{}, errors.New(errors.ErrCodeSpaceNotFound, "no board space %q", ref)
}

// printReadiness reports whether the list can start a game.
func printReadiness(s *session.Session) {
	n := len(s.Entries())
	if ok, reason := s.Check(); !ok {
		printWarning("%s", reason)
		return
	}
	printDetail("%d spaces, ready for a %d-tile board", n, n+4)
}
