package explorer

import (
	"net/url"
	"strconv"
)

// Sort orders for list endpoints.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Params are the optional list parameters. Zero values are not sent, which
// leaves the server default in place.
type Params struct {
	Limit   int
	Offset  int
	Sort    string
	MsgType string
}

func (p Params) addPaging(q url.Values) {
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
}

func (p Params) addSort(q url.Values) {
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
}

func (p Params) addMsgType(q url.Values) {
	if p.MsgType != "" {
		q.Set("msg_type", p.MsgType)
	}
}

// NamespaceRef addresses a blob of a namespace at a height.
type NamespaceRef struct {
	Hash       string
	Height     int64
	Commitment string
}
