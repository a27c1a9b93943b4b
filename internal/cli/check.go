package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/punishboard/pkg/errors"
)

// checkCommand creates the check command that validates the saved list.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check whether the saved spaces can start a game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeFn, err := c.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			names := s.Names()
			if err := errors.ValidateSpaceList(names); err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}
			split := len(names) / 4
			printSuccess("Ready to play")
			printKeyValue("spaces", strconv.Itoa(len(names)))
			printKeyValue("tiles", strconv.Itoa(len(names)+4))
			printKeyValue("per side", strconv.Itoa(split))
			printNewline()
			printNextStep("Play", appName+" play --name \"Friday Night\"")
			return nil
		},
	}
}
