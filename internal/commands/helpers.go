package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/betterhyq/promptt/input"
	"github.com/betterhyq/promptt/internal/config"
	"github.com/betterhyq/promptt/logger"
	"github.com/betterhyq/promptt/output"
	"github.com/betterhyq/promptt/terminal"
	"github.com/spf13/cobra"
)

// session is what a command needs to ask questions: resolved settings, the
// streams and the terminal behind stdin. Prompts and status lines go to
// stderr so stdout carries only answers.
type session struct {
	settings config.Settings
	printer  *output.Printer
	log      logger.Logger
	term     terminal.Terminal

	in      io.Reader
	out     io.Writer
	prompts io.Writer
}

func newSession(cmd *cobra.Command) (*session, error) {
	v := config.NewViper()
	for _, name := range []string{"verbose", "interactive"} {
		if err := v.BindPFlag(name, cmd.Flag(name)); err != nil {
			return nil, fmt.Errorf("binding --%s: %w", name, err)
		}
	}

	settings, err := config.LoadSettings(v)
	if err != nil {
		return nil, err
	}

	s := &session{
		settings: settings,
		printer:  output.New(cmd.ErrOrStderr()),
		log:      logger.NewSilentLogger(),
		in:       cmd.InOrStdin(),
		out:      cmd.OutOrStdout(),
		prompts:  cmd.ErrOrStderr(),
	}
	s.printer.SetVerbose(settings.Verbose)
	if settings.Verbose {
		s.log = logger.NewLogger(settings.LogLevel, cmd.ErrOrStderr())
	}

	s.term, err = terminalFor(settings.Interactive, s.in)
	if err != nil {
		return nil, err
	}
	s.printer.Verbose(fmt.Sprintf("Interactive mode %s, terminal input %t", settings.Interactive, s.term.IsTerminal()))

	return s, nil
}

// options configures a sequencer for this session.
func (s *session) options() []input.Option {
	return []input.Option{input.WithTerminal(s.term), input.WithLogger(s.log)}
}

// terminalFor picks the terminal select menus consult. Only a real file
// can be a TTY; anything else reads lines.
func terminalFor(mode config.Interactive, in io.Reader) (terminal.Terminal, error) {
	if mode == config.InteractiveNever {
		return terminal.LineOnly(), nil
	}

	f, ok := in.(*os.File)
	if !ok {
		if mode == config.InteractiveAlways {
			return nil, errors.New("--interactive=always needs a terminal on stdin")
		}
		return terminal.LineOnly(), nil
	}

	std := terminal.NewStd(f)
	if mode == config.InteractiveAlways && !std.IsTerminal() {
		return nil, errors.New("--interactive=always needs a terminal on stdin")
	}
	return std, nil
}

// parseChoiceArg turns "title=value" into a choice. Without "=" the title
// doubles as the value.
func parseChoiceArg(arg string) input.Choice {
	title, value, found := strings.Cut(arg, "=")
	title = strings.TrimSpace(title)
	if !found {
		return input.NewChoice(title, title)
	}
	return input.NewChoice(title, strings.TrimSpace(value))
}
