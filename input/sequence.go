package input

import (
	"fmt"
	"io"

	"github.com/betterhyq/promptt/logger"
	"github.com/betterhyq/promptt/terminal"
)

// Sequencer runs questions one after another against a single input stream.
type Sequencer struct {
	terminal terminal.Terminal
	log      logger.Logger
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithTerminal sets the terminal select questions use to decide between raw
// key input and line input. Without it every select is line-based.
func WithTerminal(t terminal.Terminal) Option {
	return func(s *Sequencer) {
		s.terminal = t
	}
}

// WithLogger traces each question dispatched. The default logs nothing.
func WithLogger(l logger.Logger) Option {
	return func(s *Sequencer) {
		s.log = l
	}
}

// NewSequencer returns a Sequencer with the given options applied.
func NewSequencer(opts ...Option) *Sequencer {
	s := &Sequencer{
		terminal: terminal.LineOnly(),
		log:      logger.NewSilentLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Prompt runs questions with a new Sequencer. See Sequencer.Run.
func Prompt(questions []Question, r io.Reader, w io.Writer, opts ...Option) (*Answers, error) {
	return NewSequencer(opts...).Run(questions, r, w)
}

// Run asks each question in order and collects the answers by name.
//
// Questions with an empty Type are skipped. A question without a message,
// an unknown type or any prompt error stops the run and returns that error;
// nothing is retried.
func (s *Sequencer) Run(questions []Question, r io.Reader, w io.Writer) (*Answers, error) {
	in := lineReader(r)
	answers := NewAnswers()

	for i, q := range questions {
		log := s.log.WithFields(logger.F("question", q.Name), logger.F("index", i))

		if q.Type == "" {
			log.Debug("Skipping question without a type")
			continue
		}
		if q.Message == "" {
			err := &ValidationError{Message: fmt.Sprintf("question %q: prompt message is required", q.Name)}
			log.Warn("Question rejected", logger.F("error", err))
			return nil, err
		}

		log.Debug("Asking question", logger.F("type", q.Type))
		value, err := s.Ask(q, in, w)
		if err != nil {
			log.Warn("Question failed", logger.F("error", err))
			return nil, err
		}

		answers.Set(q.Name, value)
	}

	return answers, nil
}

// Ask runs the prompt for a single question and wraps its result.
func (s *Sequencer) Ask(q Question, r io.Reader, w io.Writer) (Value, error) {
	in := lineReader(r)

	switch q.Type {
	case KindText, KindPassword, KindInvisible:
		opts := TextOptions{Message: q.Message, Initial: q.InitialText, Style: q.Style}
		switch q.Type {
		case KindPassword:
			opts.Style = StylePassword
		case KindInvisible:
			opts.Style = StyleInvisible
		}
		v, err := Text(opts, in, w)
		return NewString(v), err

	case KindNumber:
		v, err := Number(NumberOptions{
			Message: q.Message,
			Initial: q.InitialNumber,
			Min:     q.Min,
			Max:     q.Max,
			Float:   q.Float,
			Round:   q.Round,
		}, in, w)
		return NewFloat(v), err

	case KindConfirm:
		v, err := Confirm(ConfirmOptions{Message: q.Message, Initial: q.InitialBool}, in, w)
		return NewBool(v), err

	case KindToggle:
		v, err := Toggle(ToggleOptions{
			Message:  q.Message,
			Initial:  q.InitialBool,
			Active:   q.Active,
			Inactive: q.Inactive,
		}, in, w)
		return NewBool(v), err

	case KindSelect:
		v, err := Select(SelectOptions{
			Message:  q.Message,
			Choices:  q.Choices,
			Initial:  q.InitialIndex,
			Hint:     q.Hint,
			Terminal: s.terminal,
		}, in, w)
		return NewString(v), err

	case KindList:
		v, err := List(ListOptions{Message: q.Message, Initial: q.InitialText, Separator: q.Separator}, in, w)
		return NewList(v), err

	default:
		return Value{}, fmt.Errorf("%w: prompt type %q is not defined", ErrUnknownType, q.Type)
	}
}
