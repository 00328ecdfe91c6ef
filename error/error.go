// Package error holds the typed errors returned when a bag is built from
// caller-supplied data. Bag operations themselves never fail.
package error

type ErrorType int

const (
	UnknownError ErrorType = iota
	ZeroCountError
)

type Error struct {
	Message string
	Type    ErrorType
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on Type. A target with an empty Message matches any error of
// the same Type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	if !ok {
		return false
	}

	if t.Message == "" {
		return e.Type == t.Type
	}

	return (e.Type == t.Type) && (e.Message == t.Message)
}

func New(errorType ErrorType, reason string) *Error {
	error := &Error{}

	switch errorType {
	case ZeroCountError:
		error.Message = "go-multiset: Count is zero: " + reason
	default:
		error.Message = "go-multiset: Unknown error: " + reason
	}

	error.Type = errorType

	return error
}
