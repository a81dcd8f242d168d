package input

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultRound is the number of decimals kept when NumberOptions.Round is nil.
const DefaultRound = 2

// NumberOptions configures a number prompt.
type NumberOptions struct {
	Message string
	// Initial is returned when the answer is left empty; nil means 0.
	Initial *float64
	Min     *float64
	Max     *float64
	// Float accepts decimals; otherwise only integers parse.
	Float bool
	// Round is the number of decimals kept. Nil selects DefaultRound, zero
	// rounds to a whole number and a negative value keeps full precision.
	Round *int
	// ErrorMessage replaces DefaultErrorMessage when the answer doesn't parse.
	ErrorMessage string
}

// Number asks for a number. The parsed answer is rounded to the configured
// precision and then clamped into [Min, Max] where those are set.
func Number(opts NumberOptions, r io.Reader, w io.Writer) (float64, error) {
	in := lineReader(r)

	initial := ""
	if opts.Initial != nil {
		initial = hintStyle.Render(opts.format(*opts.Initial))
	}
	if _, err := fmt.Fprint(w, questionLine(opts.Message, initial)); err != nil {
		return 0, err
	}

	line, err := readLine(in)
	if err != nil {
		return 0, err
	}

	value, err := opts.parse(strings.TrimSpace(line))
	if err != nil {
		return 0, err
	}

	if _, err := fmt.Fprintln(w, answerLine(stateDone, opts.Message, opts.format(value))); err != nil {
		return 0, err
	}
	return value, nil
}

func (o NumberOptions) parse(raw string) (float64, error) {
	if raw == "" {
		if o.Initial != nil {
			return *o.Initial, nil
		}
		return 0, nil
	}

	var value float64
	if o.Float {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, o.invalid()
		}
		value = v
	} else {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, o.invalid()
		}
		value = float64(v)
	}

	value = roundTo(value, o.precision())
	if o.Min != nil {
		value = math.Max(value, *o.Min)
	}
	if o.Max != nil {
		value = math.Min(value, *o.Max)
	}
	return value, nil
}

func (o NumberOptions) invalid() error {
	msg := o.ErrorMessage
	if msg == "" {
		msg = DefaultErrorMessage
	}
	return &ValidationError{Message: msg}
}

func (o NumberOptions) precision() int {
	if o.Round == nil {
		return DefaultRound
	}
	return *o.Round
}

func (o NumberOptions) format(v float64) string {
	if !o.Float {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', o.precision(), 64)
}

// roundTo rounds v to places decimals; negative places leaves v untouched.
func roundTo(v float64, places int) float64 {
	if places < 0 {
		return v
	}
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
