package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrUnavailable indicates a transport-level failure: the request
	// never produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized corresponds to 401 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound corresponds to 404 responses.
	ErrNotFound = errors.New("not found")
)

// Error is a non-2xx API response. Fields carries the server-provided
// field-level error map when the response body contained one
// ({"errors": {...}}); otherwise it is empty.
type Error struct {
	Status int
	Fields map[string][]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api: unexpected status %d", e.Status)
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], ", ")))
	}
	return fmt.Sprintf("api: status %d (%s)", e.Status, strings.Join(parts, "; "))
}

// Unwrap maps well-known statuses onto sentinel errors so callers can
// use errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// FieldErrors extracts the field-error map from err if it wraps an
// *Error; otherwise it returns nil. Views use it to attach messages to
// individual form fields.
func FieldErrors(err error) map[string][]string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Fields
	}
	return nil
}
