package commands

import (
	"fmt"

	"github.com/betterhyq/promptt/input"
	"github.com/spf13/cobra"
)

// SelectCmd creates the select command
func SelectCmd() *cobra.Command {
	var (
		initial int
		hint    string
	)

	cmd := &cobra.Command{
		Use:   "select <message> <choice>...",
		Short: "Pick one entry from a menu",
		Long: `Show a menu and print the value of the chosen entry.

A choice is either a title or title=value. On a terminal the arrow keys
move the highlight; otherwise type the entry's number or name.

Examples:
  promptt select "Database" PostgreSQL SQLite
  promptt select "Region" "Europe=eu-west-1" "US East=us-east-1" --initial 2`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			choices := make([]input.Choice, 0, len(args)-1)
			for _, arg := range args[1:] {
				choices = append(choices, parseChoiceArg(arg))
			}

			opts := input.SelectOptions{
				Message:  args[0],
				Choices:  choices,
				Hint:     hint,
				Terminal: s.term,
			}
			if cmd.Flags().Changed("initial") {
				idx := initial - 1
				opts.Initial = &idx
			}

			value, err := input.Select(opts, s.in, s.prompts)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(s.out, value)
			return err
		},
	}

	cmd.Flags().IntVar(&initial, "initial", 1, "Number of the entry highlighted first")
	cmd.Flags().StringVar(&hint, "hint", "", "Hint shown under the menu")

	return cmd
}
