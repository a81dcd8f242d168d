package config

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/betterhyq/promptt/input"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// questionSpec is one entry of the questions list in a questionnaire file.
// Initial is loosely typed and converted according to Type.
type questionSpec struct {
	Name      string   `mapstructure:"name"`
	Type      string   `mapstructure:"type"`
	Message   string   `mapstructure:"message"`
	Initial   any      `mapstructure:"initial"`
	Choices   []any    `mapstructure:"choices"`
	Hint      string   `mapstructure:"hint"`
	Style     string   `mapstructure:"style"`
	Separator string   `mapstructure:"separator"`
	Float     bool     `mapstructure:"float"`
	Round     *int     `mapstructure:"round"`
	Min       *float64 `mapstructure:"min"`
	Max       *float64 `mapstructure:"max"`
	Active    string   `mapstructure:"active"`
	Inactive  string   `mapstructure:"inactive"`
}

// LoadQuestionnaire reads the questions list from a YAML, JSON or TOML file.
//
// A questionnaire looks like:
//
//	questions:
//	  - name: project
//	    type: text
//	    message: Project name
//	    initial: myapp
//	  - name: database
//	    type: select
//	    message: Database
//	    initial: sqlite
//	    choices:
//	      - PostgreSQL
//	      - title: SQLite
//	        value: sqlite
//	        description: Single file, no server
func LoadQuestionnaire(path string) ([]input.Question, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading questionnaire %s: %w", path, err)
	}

	var entries []questionSpec
	if err := v.UnmarshalKey("questions", &entries); err != nil {
		return nil, fmt.Errorf("parsing questionnaire %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("questionnaire %s has no questions", path)
	}

	questions := make([]input.Question, 0, len(entries))
	for i, entry := range entries {
		q, err := entry.question()
		if err != nil {
			return nil, fmt.Errorf("question %d (%s): %w", i+1, entry.Name, err)
		}
		questions = append(questions, q)
	}

	return questions, nil
}

func (s questionSpec) question() (input.Question, error) {
	q := input.Question{
		Name:      s.Name,
		Type:      input.Kind(strings.ToLower(strings.TrimSpace(s.Type))),
		Message:   s.Message,
		Hint:      s.Hint,
		Separator: s.Separator,
		Float:     s.Float,
		Round:     s.Round,
		Min:       s.Min,
		Max:       s.Max,
		Active:    s.Active,
		Inactive:  s.Inactive,
	}

	if q.Type != "" && !knownKind(q.Type) {
		return q, unknownKind(q.Type)
	}

	style, ok := input.ParseInputStyle(strings.ToLower(s.Style))
	if !ok {
		return q, fmt.Errorf("unknown style %q", s.Style)
	}
	q.Style = style

	for _, raw := range s.Choices {
		c, err := parseChoice(raw)
		if err != nil {
			return q, err
		}
		q.Choices = append(q.Choices, c)
	}

	if s.Initial == nil {
		return q, nil
	}
	if err := s.applyInitial(&q); err != nil {
		return q, fmt.Errorf("initial: %w", err)
	}
	return q, nil
}

func (s questionSpec) applyInitial(q *input.Question) error {
	switch q.Type {
	case input.KindNumber:
		n, err := cast.ToFloat64E(s.Initial)
		if err != nil {
			return err
		}
		q.InitialNumber = &n

	case input.KindConfirm, input.KindToggle:
		b, err := cast.ToBoolE(s.Initial)
		if err != nil {
			return err
		}
		q.InitialBool = b

	case input.KindSelect:
		idx, err := choiceIndex(q.Choices, s.Initial)
		if err != nil {
			return err
		}
		q.InitialIndex = &idx

	case input.KindList:
		if items, ok := s.Initial.([]any); ok {
			parts, err := cast.ToStringSliceE(items)
			if err != nil {
				return err
			}
			sep := q.Separator
			if sep == "" {
				sep = ","
			}
			q.InitialText = strings.Join(parts, sep)
			return nil
		}
		fallthrough

	default:
		text, err := cast.ToStringE(s.Initial)
		if err != nil {
			return err
		}
		q.InitialText = text
	}
	return nil
}

// parseChoice accepts either a bare title or a mapping with title, value,
// description and disabled keys. A missing value defaults to the title.
func parseChoice(raw any) (input.Choice, error) {
	if m, ok := raw.(map[string]any); ok {
		return choiceFromMap(m)
	}
	if m, ok := raw.(map[any]any); ok {
		return choiceFromMap(cast.ToStringMap(m))
	}

	title, err := cast.ToStringE(raw)
	if err != nil {
		return input.Choice{}, fmt.Errorf("choice: %w", err)
	}
	return input.NewChoice(title, title), nil
}

func choiceFromMap(m map[string]any) (input.Choice, error) {
	c := input.Choice{
		Title:       cast.ToString(m["title"]),
		Value:       cast.ToString(m["value"]),
		Description: cast.ToString(m["description"]),
		Disabled:    cast.ToBool(m["disabled"]),
	}
	if c.Title == "" {
		return c, fmt.Errorf("choice %v has no title", m)
	}
	if c.Value == "" {
		c.Value = c.Title
	}
	return c, nil
}

// choiceIndex resolves a select initial given as a 0-based index or as the
// value or title of a choice.
func choiceIndex(choices []input.Choice, initial any) (int, error) {
	if idx, err := cast.ToIntE(initial); err == nil {
		if idx < 0 || idx >= len(choices) {
			return 0, fmt.Errorf("index %d out of range for %d choices", idx, len(choices))
		}
		return idx, nil
	}

	want := cast.ToString(initial)
	for i, c := range choices {
		if strings.EqualFold(c.Value, want) || strings.EqualFold(c.Title, want) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q matches no choice", want)
}

func knownKind(k input.Kind) bool {
	for _, known := range input.Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// unknownKind reports a type no runner handles, suggesting the closest
// known type when it is a likely typo.
func unknownKind(k input.Kind) error {
	best, score := input.Kind(""), len(k)
	for _, known := range input.Kinds {
		if d := levenshtein.ComputeDistance(string(k), string(known)); d < score {
			best, score = known, d
		}
	}

	if best != "" && score <= 2 {
		return fmt.Errorf("%w: prompt type %q is not defined (did you mean %q?)", input.ErrUnknownType, k, best)
	}
	return fmt.Errorf("%w: prompt type %q is not defined", input.ErrUnknownType, k)
}
