package explorer

import (
	"context"
	"fmt"
	"net/url"
)

// Namespaces lists namespaces, optionally filtered by message type.
func (c *Client) Namespaces(ctx context.Context, p Params) *Fetch {
	q := url.Values{}
	p.addPaging(q)
	p.addSort(q)
	p.addMsgType(q)
	return c.eager(ctx, withQuery(c.endpoint("namespace"), q))
}

// NamespacesCount returns the total number of namespaces.
func (c *Client) NamespacesCount(ctx context.Context) *Fetch {
	return c.eager(ctx, c.endpoint("namespace", "count"))
}

// ActiveNamespaces lists recently active namespaces.
func (c *Client) ActiveNamespaces(ctx context.Context) *Fetch {
	return c.eager(ctx, c.endpoint("namespace", "active"))
}

// NamespaceByHash fetches the blob addressed by ref. Unlike the other
// endpoints its path segments are percent-encoded: namespace hashes and
// commitments are base64 and may carry '/', '+' or '='.
func (c *Client) NamespaceByHash(ctx context.Context, ref NamespaceRef) *Fetch {
	u := c.endpoint(
		"namespace_by_hash",
		url.PathEscape(ref.Hash),
		heightSegment(ref.Height),
		url.PathEscape(ref.Commitment),
	)
	if ref.Height < 0 {
		return failedFetch(c, u, fmt.Errorf("%w: %d", ErrInvalidHeight, ref.Height))
	}
	return c.eager(ctx, u)
}
