// Package fault defines the error taxonomy shared by every boundary:
// validation failures, rejected admin credentials and store failures.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies an error for presentation at a boundary.
type Kind string

const (
	// Unknown is reported for errors that carry no classification.
	Unknown Kind = ""
	// Validation marks a client-side precondition violation.
	Validation Kind = "validation"
	// InvalidCredential marks a wrong admin password.
	InvalidCredential Kind = "invalid_credential"
	// Store marks any failure reported by the store adapter.
	Store Kind = "store"
)

// ErrNotFound is wrapped by store adapters when the addressed record does not exist.
var ErrNotFound = errors.New("not found")

// Error is a classified error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Validationf returns a Validation error with a formatted message.
func Validationf(format string, args ...any) error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

// Credential returns an InvalidCredential error.
func Credential(message string) error {
	return &Error{Kind: InvalidCredential, Message: message}
}

// StoreErr wraps err as a Store error. A nil err yields nil.
func StoreErr(message string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: Store, Message: message, Err: err}
}

// KindOf returns the Kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unknown
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
