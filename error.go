package petite

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Code is the closed set of error kinds a handler can report. Each kind maps onto exactly one HTTP status.
type Code int

const (
	CodeUnknown  Code = 0
	CodeInvalid  Code = http.StatusBadRequest          // malformed or unsupported request
	CodeNotFound Code = http.StatusNotFound            // well-formed request for an absent resource
	CodeInternal Code = http.StatusInternalServerError // any external failure
)

// Error describes an error together with the kind of response it should produce.
type Error struct {
	code Code
	err  error
}

// NewError inits a new error given the error code.
func NewError(c Code, underlying error) *Error {
	return &Error{c, underlying}
}

// Invalid reports a malformed or unsupported request.
func Invalid(reason string) *Error {
	return NewError(CodeInvalid, errors.New(reason))
}

// NotFound reports that the request names a resource that does not exist.
func NotFound(what string) *Error {
	return NewError(CodeNotFound, errors.Newf("%s not found", what))
}

// Internal marks err as an internal failure. The message is logged but never sent to the client. Internal
// returns nil when err is nil.
func Internal(err error) error {
	if err == nil {
		return nil
	}

	return NewError(CodeInternal, err)
}

func (e *Error) Code() Code { return e.code }
func (e *Error) Unwrap() error { return e.err }
func (e *Error) Error() string {
	status := http.StatusText(int(e.Code()))
	if status == "" {
		status = "Unknown"
	}

	if e.err == nil {
		return status
	}

	return fmt.Sprintf("%s: %s", status, e.err.Error())
}

// CodeOf returns the code of the first [*Error] in err's chain. Errors that carry no code are external failures
// and report [CodeInternal]; a nil error reports [CodeUnknown].
func CodeOf(err error) Code {
	if err == nil {
		return CodeUnknown
	}

	if perr, ok := asError(err); ok && perr.Code() != CodeUnknown {
		return perr.Code()
	}

	return CodeInternal
}

// asError uses errors.As to unwrap any error and look for a *Error.
func asError(err error) (*Error, bool) {
	var perr *Error
	ok := errors.As(err, &perr)
	return perr, ok
}
