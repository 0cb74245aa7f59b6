package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Status is the lifecycle state of a Fetch.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Fetch is the result of a single explorer request. Eager fetches are executed
// by the endpoint method that created them; lazy fetches stay idle until
// Execute is called.
//
// The body is kept raw: the client never parses responses, callers decode
// with Decode or As when they need typed data.
type Fetch struct {
	client *Client
	url    string

	mu     sync.RWMutex
	status Status
	data   json.RawMessage
	code   int
	err    error
}

func newFetch(c *Client, url string) *Fetch {
	return &Fetch{client: c, url: url, status: StatusIdle}
}

// failedFetch builds a Fetch that never reached the network.
func failedFetch(c *Client, url string, err error) *Fetch {
	c.log.Error("explorer request rejected", zap.String("url", url), zap.Error(err))
	return &Fetch{client: c, url: url, status: StatusError, err: err}
}

// Execute performs the request and records its outcome. Calling it again
// issues a new request and overwrites the previous result.
func (f *Fetch) Execute(ctx context.Context) error {
	f.mu.Lock()
	f.status = StatusPending
	f.mu.Unlock()

	data, code, err := f.client.get(ctx, f.url)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.code = code
	if err != nil {
		f.status = StatusError
		f.data = nil
		f.err = err
		f.client.log.Error("explorer request failed",
			zap.String("url", f.url),
			zap.Int("status_code", code),
			zap.Error(err),
		)
		return err
	}
	f.status = StatusSuccess
	f.data = data
	f.err = nil
	f.client.log.Debug("explorer request", zap.String("url", f.url), zap.Int("bytes", len(data)))
	return nil
}

// URL returns the fully built request URL.
func (f *Fetch) URL() string { return f.url }

// Status returns the current lifecycle state.
func (f *Fetch) Status() Status {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status
}

// Data returns the raw response body, nil unless the fetch succeeded.
func (f *Fetch) Data() json.RawMessage {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.data
}

// Err returns the failure cause, nil unless the fetch is in StatusError.
func (f *Fetch) Err() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.err
}

// StatusCode returns the HTTP status code, 0 when no response was received.
func (f *Fetch) StatusCode() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.code
}

// Result returns the success or error variant of the fetch.
func (f *Fetch) Result() (json.RawMessage, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	switch f.status {
	case StatusSuccess:
		return f.data, nil
	case StatusError:
		return nil, f.err
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotExecuted, f.status)
	}
}

// Decode unmarshals the response body into v.
func (f *Fetch) Decode(v any) error {
	data, err := f.Result()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", f.url, err)
	}
	return nil
}

// As decodes a fetch into a value of type T.
func As[T any](f *Fetch) (T, error) {
	var v T
	err := f.Decode(&v)
	return v, err
}
