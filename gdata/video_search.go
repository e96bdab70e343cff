package gdata

import (
	"net/url"
	"strconv"
)

// VideoSearch requests a collection of videos by free-text query,
// category/tag browse path, or both.
type VideoSearch struct {
	// Query is the free-text search term, sent as vq.
	Query string
	// Categories and Tags become "/-/"-prefixed path tokens,
	// categories first.
	Categories []string
	Tags       []string
	// OrderBy selects the result ordering (relevance, viewCount,
	// published, rating).
	OrderBy string
	// Author restricts results to one uploader.
	Author string
	// Racy is sent verbatim; the protocol accepts "include" and
	// "exclude".
	Racy string
	// Format restricts results to entries carrying the given variant.
	Format Format
	// Time restricts standard ordering windows (today, this_week,
	// this_month, all_time).
	Time string

	Paging Paging
}

// URL builds the videos feed URL for the search.
func (s *VideoSearch) URL() string {
	u := baseURL + "videos" + pathTokens(s.Categories, s.Tags)

	params := url.Values{}
	params.Set("vq", s.Query)
	params.Set("orderby", s.OrderBy)
	params.Set("author", s.Author)
	params.Set("racy", s.Racy)
	params.Set("time", s.Time)
	if code := s.Format.Code(); code != 0 {
		params.Set("format", strconv.Itoa(code))
	}
	addPaging(params, s.Paging)

	return u + queryString(params)
}
