package access

import "fmt"

// BadRequestError marks failures caused by the caller: missing fields,
// malformed timestamps, unknown permission slugs. Handlers report these with
// a 400 and the message verbatim; anything else stays a server error with no
// detail disclosed.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func badRequestf(format string, args ...any) error {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}
