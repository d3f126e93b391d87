package quote

import (
	"errors"
	"fmt"
)

// Kind classifies a tool failure for the caller.
type Kind string

const (
	KindInvalidSymbol       Kind = "invalid_symbol"
	KindUpstreamUnavailable Kind = "upstream_unavailable"
	KindUpstreamMalformed   Kind = "upstream_malformed"
)

// Error is the typed failure returned to tool callers.
type Error struct {
	Kind    Kind   `json:"errorKind"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

func Invalidf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidSymbol, Message: fmt.Sprintf(format, args...)}
}

func Unavailablef(format string, args ...any) *Error {
	return &Error{Kind: KindUpstreamUnavailable, Message: fmt.Sprintf(format, args...)}
}

func Malformedf(format string, args ...any) *Error {
	return &Error{Kind: KindUpstreamMalformed, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind carried by err, or "" when err is not a *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
