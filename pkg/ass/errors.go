package ass

import (
	"errors"
	"fmt"
)

// Sentinel parse failures. Callers match them with errors.Is; the *Error
// wrapper carries the offending line number.
var (
	ErrInvalid           = errors.New(".ass file is invalid")
	ErrMissingScriptInfo = errors.New("missing [Script Info] header")
	ErrMissingFormat     = errors.New("missing format for styles")
	ErrInvalidStyle      = errors.New("style is invalid")
	ErrInvalidEventType  = errors.New("event type is invalid")
	ErrInvalidEvent      = errors.New("event is invalid")
)

// Error is a parse failure annotated with the 1-based source line.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func errorAt(line int, err error) *Error {
	return &Error{Line: line, Err: err}
}
