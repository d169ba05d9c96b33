package media

import (
	"errors"
	"fmt"
)

// Kind categorizes service errors so the transport layer can map each
// category to a distinct status code without inspecting messages.
type Kind int

const (
	// KindStorage covers object store failures unrelated to
	// existence: connectivity, credentials, missing bucket.
	KindStorage Kind = iota

	// KindNotFound means the requested key has no object in the store.
	KindNotFound

	// KindPermissionDenied means the requester is not the owner
	// segment of the key.
	KindPermissionDenied

	// KindInvalidInput covers malformed user ids and filenames,
	// rejected before reaching the store.
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindStorage:
		return "storage"
	case KindNotFound:
		return "not_found"
	case KindPermissionDenied:
		return "permission_denied"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error is the typed error returned by the Service. Message is safe to
// expose to clients; Err carries the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a typed service error.
func NewError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the Kind of err, or KindStorage when err is not a
// service error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// IsNotFound reports whether err is a KindNotFound service error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

// IsPermissionDenied reports whether err is a KindPermissionDenied
// service error.
func IsPermissionDenied(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindPermissionDenied
}
