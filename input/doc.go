// Package input provides interactive terminal prompts.
//
// # Overview
//
// Each prompt writes a question, reads the answer and returns a typed value:
//
//   - Text, Password and Invisible return a string
//   - Number returns a float64, rounded and clamped as configured
//   - Confirm and Toggle return a bool
//   - List returns the answer split on a separator
//   - Select returns the value of one entry from a menu of choices
//
// Prompt runs a list of Questions in order and collects the answers by name.
//
// # Usage
//
//	answers, err := input.Prompt([]input.Question{
//	    {Name: "name", Type: input.KindText, Message: "Project name"},
//	    {Name: "db", Type: input.KindSelect, Message: "Database", Choices: []input.Choice{
//	        input.NewChoice("PostgreSQL", "postgres"),
//	        input.NewChoice("SQLite", "sqlite"),
//	    }},
//	}, os.Stdin, os.Stdout, input.WithTerminal(terminal.NewStd(os.Stdin)))
//
// # Select Modes
//
// Select uses raw byte input when its Terminal reports a TTY: arrow keys move
// the highlight over enabled choices and Return submits. Without a TTY it
// prints a numbered menu and reads one line, which may be a number, a title
// or a value.
//
// # Styling
//
// The package uses lipgloss for consistent terminal styling:
//   - Messages are bold
//   - Hints, delimiters and disabled choices are gray
//   - Choice numbers and the highlighted choice are cyan
//   - Finished prompts show a green tick, aborted ones a red cross
package input
