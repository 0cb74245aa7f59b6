package explorer

import (
	"context"
	"fmt"
	"net/url"
)

// Blocks lists the latest blocks with stats, newest first.
func (c *Client) Blocks(ctx context.Context, p Params) *Fetch {
	q := url.Values{}
	q.Set("stats", "true")
	q.Set("sort", SortDesc)
	p.addPaging(q)
	return c.eager(ctx, withQuery(c.endpoint("block"), q))
}

// BlockByHeight fetches one block with stats.
func (c *Client) BlockByHeight(ctx context.Context, height int64) *Fetch {
	u := c.endpoint("block", heightSegment(height)) + "?stats=true"
	if height < 0 {
		return failedFetch(c, u, fmt.Errorf("%w: %d", ErrInvalidHeight, height))
	}
	return c.eager(ctx, u)
}

// BlockNamespaces lists the namespace messages included in a block.
func (c *Client) BlockNamespaces(ctx context.Context, height int64, p Params) *Fetch {
	q := url.Values{}
	p.addPaging(q)
	p.addSort(q)
	u := withQuery(c.endpoint("block", heightSegment(height), "namespace"), q)
	if height < 0 {
		return failedFetch(c, u, fmt.Errorf("%w: %d", ErrInvalidHeight, height))
	}
	return c.lazy(ctx, u)
}

// BlockNamespacesCount counts the namespace messages in a block.
func (c *Client) BlockNamespacesCount(ctx context.Context, height int64) *Fetch {
	u := c.endpoint("block", heightSegment(height), "namespace", "count")
	if height < 0 {
		return failedFetch(c, u, fmt.Errorf("%w: %d", ErrInvalidHeight, height))
	}
	return c.lazy(ctx, u)
}
