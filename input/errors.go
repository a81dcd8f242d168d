package input

import "errors"

var (
	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSelection means the resolved choice is out of range or disabled.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrUnknownType is returned for a question type that has no runner.
	ErrUnknownType = errors.New("unknown question type")

	// ErrAborted is returned when the user aborts an interactive prompt.
	ErrAborted = errors.New("prompt aborted")
)

// DefaultErrorMessage is shown when an answer can't be parsed.
const DefaultErrorMessage = "Please Enter A Valid Value"

// ValidationError reports an answer or question that failed validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrInvalidInput) true for validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
