package fdk

import "fmt"

// Kind tags the origin of an Error, deciding both how it is logged and how
// it is mapped onto the response envelope's outer/logical status pair.
type Kind int

const (
	// InvalidInput means the handler (or the pipeline on its behalf)
	// rejected the decoded request value.
	InvalidInput Kind = iota
	// BadRequest means the inbound request itself was malformed.
	BadRequest
	// Initialization means the function container failed to bootstrap;
	// the process exits non-zero before ever serving a request.
	Initialization
	// Coercion means a codec failed to decode or encode a value.
	Coercion
	// IO means a read or write against the connection failed.
	IO
	// Server means the HTTP transport layer itself failed.
	Server
	// Other is a catch-all for unclassified runtime failures, notably
	// buffer pool exhaustion.
	Other
	// User is returned verbatim by a handler that wants to signal a
	// client-facing failure without the pipeline reclassifying it.
	User
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case BadRequest:
		return "BadRequest"
	case Initialization:
		return "Initialization"
	case Coercion:
		return "Coercion"
	case IO:
		return "IO"
	case Server:
		return "Server"
	case Other:
		return "Other"
	case User:
		return "User"
	default:
		return "Unknown"
	}
}

// Error is the tagged-variant error every pipeline stage produces on
// failure. It carries no stack trace or wrapped chain by design: it is
// scoped to a single request and consumed by the envelope builder or, for
// Initialization failures, logged at startup.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsUserError reports whether e originates from the caller's request
// rather than from the runtime itself. User-error kinds map to a 4xx
// logical status with a 200 outer status; all other kinds are runtime-
// compromising and map to a 500 logical status with a 502 outer status.
func (e *Error) IsUserError() bool {
	switch e.Kind {
	case InvalidInput, BadRequest, Coercion, User:
		return true
	default:
		return false
	}
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidInput builds an InvalidInput error from a cause.
func NewInvalidInput(cause interface{}) *Error {
	return newError(InvalidInput, "%v", cause)
}

// NewBadRequest builds a BadRequest error from a cause.
func NewBadRequest(cause interface{}) *Error {
	return newError(BadRequest, "%v", cause)
}

// NewInitialization builds an Initialization error from a cause.
func NewInitialization(cause interface{}) *Error {
	return newError(Initialization, "%v", cause)
}

// NewCoercion builds a Coercion error from a cause.
func NewCoercion(cause interface{}) *Error {
	return newError(Coercion, "%v", cause)
}

// NewIO builds an IO error from a cause.
func NewIO(cause interface{}) *Error {
	return newError(IO, "%v", cause)
}

// NewServer builds a Server error from a cause.
func NewServer(cause interface{}) *Error {
	return newError(Server, "%v", cause)
}

// NewOther builds an Other error from a cause.
func NewOther(cause interface{}) *Error {
	return newError(Other, "%v", cause)
}

// NewUserError builds a User error, the only kind a handler can return
// that the pipeline passes through unchanged instead of re-wrapping as
// InvalidInput.
func NewUserError(message string) *Error {
	return newError(User, "%s", message)
}

// asHandlerError converts an arbitrary error returned from outside this package
// into an *Error, applying the pipeline's automatic lifting rules: a
// *Error already carrying the User kind passes through unchanged, and
// every other handler error is re-wrapped as InvalidInput so it surfaces
// to the caller as a 4xx.
func asHandlerError(err error) *Error {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*Error); ok && fe.Kind == User {
		return fe
	}
	return NewInvalidInput(err)
}
