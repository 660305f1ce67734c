// Package apierror classifies failures from the Figma and completion APIs
// into a small set of kinds that callers can pattern-match on. Every kind
// is terminal for a pipeline run; classification exists for reporting, not
// for retry decisions.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the category of an API or configuration failure.
type Kind int

const (
	// KindUnknown is the zero value for unclassified errors.
	KindUnknown Kind = iota

	// KindConfigurationMissing indicates a required setting was absent at startup.
	KindConfigurationMissing

	// KindAuthentication indicates the API rejected the supplied credentials (401/403).
	KindAuthentication

	// KindNotFound indicates the requested resource does not exist (404).
	KindNotFound

	// KindRateLimited indicates the API throttled the request (429).
	KindRateLimited

	// KindNetworkOrServer covers transport failures and all other non-2xx responses.
	KindNetworkOrServer

	// KindMalformedOutput indicates the model response could not be parsed
	// into the expected shape.
	KindMalformedOutput
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindConfigurationMissing:
		return "configuration missing"
	case KindAuthentication:
		return "authentication failure"
	case KindNotFound:
		return "not found"
	case KindRateLimited:
		return "rate limited"
	case KindNetworkOrServer:
		return "network or server failure"
	case KindMalformedOutput:
		return "malformed model output"
	default:
		return "unknown"
	}
}

// Error wraps an underlying error with a classification Kind.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// New wraps err with the given kind.
func New(kind Kind, err error) error {
	return &Error{Kind: kind, err: err}
}

// Newf wraps a formatted error with the given kind.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, err: fmt.Errorf(format, args...)}
}

// KindOf returns the classification of err, or KindUnknown if err carries none.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsConfigurationMissing reports whether err is a missing-configuration failure.
func IsConfigurationMissing(err error) bool {
	return KindOf(err) == KindConfigurationMissing
}

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool {
	return KindOf(err) == KindAuthentication
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsRateLimited reports whether err is a rate-limit failure.
func IsRateLimited(err error) bool {
	return KindOf(err) == KindRateLimited
}

// IsMalformedOutput reports whether err is a malformed-model-output failure.
func IsMalformedOutput(err error) bool {
	return KindOf(err) == KindMalformedOutput
}

// FromStatusCode classifies a non-2xx HTTP response into an Error.
// The body is truncated so upstream log lines stay readable.
func FromStatusCode(statusCode int, body []byte) error {
	bodyStr := string(body)
	if len(bodyStr) > 200 {
		bodyStr = bodyStr[:200] + "..."
	}

	err := fmt.Errorf("API request failed with status %d: %s", statusCode, bodyStr)

	switch {
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return New(KindAuthentication, err)
	case statusCode == http.StatusNotFound:
		return New(KindNotFound, err)
	case statusCode == http.StatusTooManyRequests:
		return New(KindRateLimited, err)
	default:
		return New(KindNetworkOrServer, err)
	}
}
