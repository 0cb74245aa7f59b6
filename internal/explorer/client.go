// Package explorer is a thin client for the Celenium explorer REST API.
//
// Every endpoint method builds a URL, hands it to the fetch primitive and
// returns the resulting *Fetch. Bodies are passed through unparsed. Failures
// are logged on the client's logger and kept on the Fetch so callers can
// inspect them; nothing is retried, cached or de-duplicated.
package explorer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Client issues GET requests against a base API address such as
// https://api-mainnet.celenium.io/v1.
type Client struct {
	baseURL string
	http    *resty.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the diagnostic logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithHTTPClient swaps the underlying transport. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc)
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.http.SetHeader("User-Agent", ua)
	}
}

// New creates a client for baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    resty.New().SetTimeout(defaultTimeout),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.SetHeader("Accept", "application/json")
	c.http.SetLogger(c.log.Sugar())
	return c
}

// BaseURL returns the API address requests are built on.
func (c *Client) BaseURL() string { return c.baseURL }

// eager builds and runs a fetch. The returned Fetch carries any error.
func (c *Client) eager(ctx context.Context, rawURL string) *Fetch {
	f := newFetch(c, rawURL)
	_ = f.Execute(ctx)
	return f
}

// lazy builds a fetch and runs it only if nothing has triggered it yet.
// Every call builds a fresh Fetch, so in practice it always runs and
// behaves like eager; the check matters only for the status contract.
func (c *Client) lazy(ctx context.Context, rawURL string) *Fetch {
	f := newFetch(c, rawURL)
	if f.Status() == StatusIdle {
		_ = f.Execute(ctx)
	}
	return f
}

// get is the fetch primitive: one GET, no retries.
func (c *Client) get(ctx context.Context, rawURL string) (json.RawMessage, int, error) {
	resp, err := c.http.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		code := 0
		if resp != nil {
			code = resp.StatusCode()
		}
		return nil, code, &RequestError{URL: rawURL, Err: err}
	}

	body := resp.Body()
	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, resp.StatusCode(), &APIError{
			URL:  rawURL,
			Code: resp.StatusCode(),
			Body: truncate(strings.TrimSpace(string(body)), 200),
		}
	}
	if !json.Valid(body) {
		return nil, resp.StatusCode(), &DecodeError{URL: rawURL, Body: truncate(string(body), 80)}
	}
	return json.RawMessage(body), resp.StatusCode(), nil
}

// endpoint joins the base address with path segments.
func (c *Client) endpoint(segments ...string) string {
	return c.baseURL + "/" + strings.Join(segments, "/")
}

// withQuery appends q to u. Empty values produce no "?".
func withQuery(u string, q url.Values) string {
	if len(q) == 0 {
		return u
	}
	return u + "?" + q.Encode()
}

func heightSegment(height int64) string {
	return strconv.FormatInt(height, 10)
}
