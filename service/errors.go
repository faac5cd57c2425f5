package service

import (
	"errors"

	"github.com/ncobase/microservicio/ecode"
)

// Error kinds returned by the services. Handlers match them with errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid")
)

// Error carries the client facing message of a business error.
type Error struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(resource string, id int64) error {
	return &Error{Kind: ErrNotFound, Message: ecode.NotExist(resource, id)}
}

func conflict(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

func invalid(fields map[string]string) error {
	return &Error{Kind: ErrInvalid, Message: ecode.MsgInvalidInput, Fields: fields}
}

// FieldErrors returns the per-field messages of a validation error.
func FieldErrors(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
