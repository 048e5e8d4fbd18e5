package web

// Error is used to pass an error during the request through the application
// with web specific context.
type Error struct {
	Err    error
	Status int
	Fields map[string]string
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when repository or handler code encounters expected
// errors.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

// Error implements the error interface. It uses the default message of the
// wrapped error. This is what will be shown in the service's logs.
func (e *Error) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the inner error so errors.Is and errors.As can reach
// sentinel errors wrapped with a status code.
func (e *Error) Unwrap() error {
	return e.Err
}
