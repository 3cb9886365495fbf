package header

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrMalformedHead          = errors.New("malformed head")
	ErrMalformedHeaderLine    = errors.New("malformed header line")
	ErrMissingMandatoryHeader = errors.New("missing mandatory header")
)

// Error carries the exact diagnostic text shown to callers. Kind is one of
// the sentinel errors above and is what errors.Is matches against.
type Error struct {
	Kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.Kind }

// Status is the HTTP status a transport should answer with when it decides
// to surface this error to the client.
func (e *Error) Status() int { return http.StatusBadRequest }

func malformedHead() error {
	return &Error{
		Kind: ErrMalformedHead,
		msg:  "a valid response must contain at least one line in the head",
	}
}

func malformedHeaderLine(line string) error {
	return &Error{
		Kind: ErrMalformedHeaderLine,
		msg:  fmt.Sprintf("invalid HTTP header: \"%s\"", line),
	}
}

func missingMandatory(name string, known []string) error {
	return &Error{
		Kind: ErrMissingMandatoryHeader,
		msg:  fmt.Sprintf("header \"%s\" is mandatory, not found among %s", name, formatNames(known)),
	}
}

func formatNames(names []string) string {
	return "[" + strings.Join(names, ", ") + "]"
}
