package commands

import (
	"errors"
	"fmt"

	"github.com/betterhyq/promptt"
	"github.com/betterhyq/promptt/input"
	"github.com/spf13/cobra"
)

// ErrDeclined is returned by confirm when the answer is no. It maps to exit
// status 1 without an error message.
var ErrDeclined = errors.New("declined")

// RootCmd creates and returns the root command for the promptt CLI
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promptt",
		Short: "Interactive prompts for shell scripts",
		Long: `promptt asks questions on the terminal and prints the answers.

Use it to:
• Run a questionnaire file and collect the answers as YAML
• Offer a one-off menu from a script
• Ask for a yes/no confirmation and branch on the exit status

Select menus read arrow keys when stdin is a terminal and fall back to
a typed number or name otherwise.`,
		Version:       promptt.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().String("interactive", "auto", "Key input for select menus: auto, always or never")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "promptt v%s\n", promptt.Version)
		},
	})

	return cmd
}

// ExitCode maps the error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, input.ErrAborted):
		return 130
	default:
		return 1
	}
}

// Silent reports whether err should exit without a message. An aborted
// prompt has already drawn its own cross.
func Silent(err error) bool {
	return errors.Is(err, ErrDeclined) || errors.Is(err, input.ErrAborted)
}
