package gdata

import "net/url"

// ChannelSearch requests a collection of channels by free-text query.
type ChannelSearch struct {
	// Query is the free-text search term, sent as q.
	Query string
	// Alt selects the representation, e.g. "atom".
	Alt string
	// Strict rejects requests with unrecognized parameters upstream.
	Strict bool

	Paging Paging
}

// URL builds the channels feed URL.
func (s *ChannelSearch) URL() string {
	u := baseURL + "channels"

	params := url.Values{}
	params.Set("q", s.Query)
	params.Set("alt", s.Alt)
	if s.Strict {
		params.Set("strict", "true")
	}
	addPaging(params, s.Paging)

	return u + queryString(params)
}
