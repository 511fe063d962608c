package models

import "errors"

// ErrMalformedID is returned when a path identifier is not a valid discussion id.
var ErrMalformedID = errors.New("malformed discussion id")

// StoreError wraps any failure coming back from the database layer.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err for op. A nil err stays nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// ErrorUnauthorized is raised when a write route runs without a signed-in user.
type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

// ErrorBadRequest is raised when a submitted payload cannot be decoded.
type ErrorBadRequest struct {
	Err error
}

func (e ErrorBadRequest) Error() string {
	return e.Err.Error()
}

func (e ErrorBadRequest) Unwrap() error {
	return e.Err
}
