package commands

import (
	"fmt"
	"io"

	"github.com/betterhyq/promptt/input"
	"github.com/betterhyq/promptt/internal/config"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// RunCmd creates the run command
func RunCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Ask the questions in a questionnaire file",
		Long: `Ask every question in a questionnaire file and print the answers.

The file holds a questions list in YAML, JSON or TOML. Each question has a
name, a type (text, password, invisible, number, confirm, toggle, select or
list) and a message. Questions without a type are skipped.

Examples:
  promptt run setup.yaml                # Answers as YAML on stdout
  promptt run setup.yaml --format plain # One name=value line per answer
  promptt run setup.yaml --format table # Aligned name and answer columns
  promptt run setup.yaml > answers.yaml # Prompts stay on the terminal`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "yaml", "plain", "table":
			default:
				return fmt.Errorf("unknown format %q (want yaml, plain or table)", format)
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			questions, err := config.LoadQuestionnaire(args[0])
			if err != nil {
				return err
			}
			if s.settings.Verbose {
				s.printer.Info(fmt.Sprintf("Loaded %d questions from %s", len(questions), args[0]))
				for _, q := range questions {
					s.printer.Step(questionSummary(q))
				}
			}

			answers, err := input.NewSequencer(s.options()...).Run(questions, s.in, s.prompts)
			if err != nil {
				return err
			}

			if err := writeAnswers(s.out, answers, format); err != nil {
				return err
			}
			if s.settings.Verbose {
				s.printer.Success(fmt.Sprintf("Collected %d answers", answers.Len()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Answer format: yaml, plain or table")

	return cmd
}

// questionSummary is the verbose listing line for one question.
func questionSummary(q input.Question) string {
	if q.Type == "" {
		return q.Name + " (skipped)"
	}
	return fmt.Sprintf("%s (%s)", q.Name, q.Type)
}

// writeAnswers prints answers in question order.
func writeAnswers(w io.Writer, answers *input.Answers, format string) error {
	switch format {
	case "plain":
		for _, name := range answers.Names() {
			v, _ := answers.Get(name)
			if _, err := fmt.Fprintf(w, "%s=%s\n", name, v); err != nil {
				return err
			}
		}
		return nil

	case "table":
		var data [][]string
		for _, name := range answers.Names() {
			v, _ := answers.Get(name)
			data = append(data, []string{name, v.String()})
		}

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"NAME", "ANSWER"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetNoWhiteSpace(true)
		table.SetTablePadding("    ")
		table.AppendBulk(data)
		table.Render()
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(answers); err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}
	return enc.Close()
}
