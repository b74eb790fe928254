// Package browsererr defines the error taxonomy surfaced at the
// pipeline's hard boundaries (spec.md §7): URL parsing and HTTP
// response framing. Every other stage is error-tolerant and recovers
// silently rather than producing one of these.
package browsererr

import "fmt"

// Kind classifies why a boundary call failed.
type Kind int

const (
	// Other is the zero value so a zero-valued Error never silently
	// claims to be Network/UnexpectedInput/InvalidUI.
	Other Kind = iota
	Network
	UnexpectedInput
	InvalidUI
)

func (k Kind) String() string {
	switch k {
	case Network:
		return "network"
	case UnexpectedInput:
		return "unexpected-input"
	case InvalidUI:
		return "invalid-ui"
	default:
		return "other"
	}
}

// Error wraps a Kind and message, mirroring the taxonomy the original
// saba shell used (Error::Network(String), Error::UnexpectedInput(String),
// Error::InvalidUI(String)) but collapsed into a single Go type with a
// Kind tag rather than a sum type.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New constructs an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a *Error of the given kind, for use with
// errors.Is-style call sites.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
