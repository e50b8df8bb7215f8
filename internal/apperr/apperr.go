// Package apperr defines the application error taxonomy and a generic
// classifier for failures of the completion API, independent of any
// particular HTTP client library.
package apperr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Kind tags an Error with its place in the taxonomy. Exactly one kind is
// assigned per failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindAPIKey
	KindRateLimit
	KindAPI
	KindNetwork
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindAPIKey:
		return "api_key"
	case KindRateLimit:
		return "rate_limit"
	case KindAPI:
		return "api"
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a tagged application error. Err holds the original cause when
// there is one; it is never swallowed.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a tagged error without a cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a tagged error carrying the original cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation is shorthand for a KindValidation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf reports the taxonomy kind of err. Errors that are not tagged
// report KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsFatal reports whether err should end an interactive session. Only an
// invalid or missing credential is fatal; every other kind is retryable
// by the caller.
func IsFatal(err error) bool {
	return KindOf(err) == KindAPIKey
}

// networkSignatures are message substrings that identify transport-level
// failures across client libraries.
var networkSignatures = []string{
	"connection refused",
	"connection reset",
	"no such host",
	"network is unreachable",
	"timeout",
	"deadline exceeded",
	"eof",
}

// Classify maps an upstream failure to exactly one Error. status is the
// HTTP status code when the API answered (0 otherwise), upstreamMsg the
// API-reported error message, err the transport error. Checks run in
// order: auth rejection, rate limiting, any other API-reported status,
// transport signatures, then the catch-all.
func Classify(status int, upstreamMsg string, err error) *Error {
	switch {
	case status == http.StatusUnauthorized:
		return Wrap(KindAPIKey, "API key rejected: check your credentials", err)
	case status == http.StatusTooManyRequests:
		return Wrap(KindRateLimit, "rate limit exceeded: retry after a delay", err)
	case status != 0:
		msg := fmt.Sprintf("API returned status %d", status)
		if upstreamMsg != "" {
			msg = fmt.Sprintf("API returned status %d: %s", status, upstreamMsg)
		}
		return Wrap(KindAPI, msg, err)
	}

	if err != nil {
		if isNetworkError(err) {
			return Wrap(KindNetwork, "network error: could not reach the API", err)
		}
		return Wrap(KindUnknown, "unexpected error", err)
	}

	return New(KindUnknown, "unexpected error")
}

func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, sig := range networkSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}
