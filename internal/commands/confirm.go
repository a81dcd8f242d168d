package commands

import (
	"github.com/betterhyq/promptt/input"
	"github.com/spf13/cobra"
)

// ConfirmCmd creates the confirm command
func ConfirmCmd() *cobra.Command {
	var initial bool

	cmd := &cobra.Command{
		Use:   "confirm <message>",
		Short: "Ask a yes/no question",
		Long: `Ask a yes/no question. The exit status is 0 for yes and 1 for no.

Examples:
  promptt confirm "Deploy to production?" && make deploy
  promptt confirm "Run migrations?" --default`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			ok, err := input.Confirm(input.ConfirmOptions{Message: args[0], Initial: initial}, s.in, s.prompts)
			if err != nil {
				return err
			}
			if !ok {
				s.log.Debug("Confirmation declined")
				return ErrDeclined
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&initial, "default", false, "Answer used when the reply is empty")

	return cmd
}
