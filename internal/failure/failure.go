// Package failure defines the error kinds shared by the credential store and
// the request dispatcher.
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// NoCredential means no API key could be obtained.
	NoCredential Kind = iota + 1
	// ConfigRead means the configuration store exists but could not be read.
	ConfigRead
	// Transport covers DNS, TLS, timeout and other network faults.
	Transport
	// HTTPStatus means the provider answered with a non-2xx status.
	HTTPStatus
	// MalformedResponse means an expected response field was missing.
	MalformedResponse
)

func (k Kind) String() string {
	switch k {
	case NoCredential:
		return "no credential"
	case ConfigRead:
		return "config read error"
	case Transport:
		return "transport error"
	case HTTPStatus:
		return "http status"
	case MalformedResponse:
		return "malformed response"
	default:
		return "unknown"
	}
}

// Error is a classified failure. Field is set for MalformedResponse and
// StatusCode for HTTPStatus.
type Error struct {
	Kind       Kind
	Field      string
	StatusCode int
	Msg        string
	Err        error
}

func (e *Error) Error() string {
	var s string
	switch e.Kind {
	case HTTPStatus:
		s = fmt.Sprintf("%s %d", e.Kind, e.StatusCode)
	case MalformedResponse:
		s = fmt.Sprintf("%s: missing %q", e.Kind, e.Field)
	default:
		s = e.Kind.String()
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a failure of the given kind wrapping err.
func New(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Status returns an HTTPStatus failure for code.
func Status(code int, msg string) *Error {
	return &Error{Kind: HTTPStatus, StatusCode: code, Msg: msg}
}

// Missing returns a MalformedResponse failure naming field.
func Missing(field string) *Error {
	return &Error{Kind: MalformedResponse, Field: field}
}

// KindOf reports the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// Is reports whether err carries a failure of kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
