package explorer

import "context"

// Head fetches the current chain tip state.
func (c *Client) Head(ctx context.Context) *Fetch {
	return c.eager(ctx, c.endpoint("head"))
}
