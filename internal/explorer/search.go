package explorer

import (
	"context"
	"strings"
)

var targetEscaper = strings.NewReplacer(" ", "%20", "#", "%23", "\t", "%09", "\n", "%0A", "\r", "%0D")

// Search looks up a block, tx, address or namespace by free text. The query
// is interpolated into the URL as given, except for the characters that
// cannot appear in a request target.
func (c *Client) Search(ctx context.Context, query string) *Fetch {
	u := c.endpoint("search") + "?query=" + targetEscaper.Replace(query)
	if strings.TrimSpace(query) == "" {
		return failedFetch(c, u, ErrEmptyQuery)
	}
	return c.eager(ctx, u)
}
