package explorer

import (
	"errors"
	"fmt"
)

var (
	// ErrNotExecuted is returned by Result when a lazy fetch was never run.
	ErrNotExecuted = errors.New("fetch not executed")
	// ErrInvalidHeight is returned for negative block heights.
	ErrInvalidHeight = errors.New("invalid block height")
	// ErrEmptyQuery is returned when a search has nothing to look for.
	ErrEmptyQuery = errors.New("empty search query")
)

// RequestError wraps a transport failure: DNS, dial, timeout, cancellation.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("explorer request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// APIError is a non-2xx answer from the explorer API.
type APIError struct {
	URL  string
	Code int
	Body string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("explorer API %s: status %d", e.URL, e.Code)
	}
	return fmt.Sprintf("explorer API %s: status %d: %s", e.URL, e.Code, e.Body)
}

// DecodeError means the API answered 2xx with a body that is not JSON.
type DecodeError struct {
	URL  string
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("explorer API %s: malformed response %q", e.URL, e.Body)
}

// truncate keeps error bodies readable in logs and terminal output.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
