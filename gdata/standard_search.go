package gdata

import "net/url"

// StandardFeedID names one of the platform's precomputed video feeds.
type StandardFeedID string

// The enumerated standard feeds.
const (
	TopRated         StandardFeedID = "top_rated"
	TopFavorites     StandardFeedID = "top_favorites"
	MostViewed       StandardFeedID = "most_viewed"
	MostPopular      StandardFeedID = "most_popular"
	MostRecent       StandardFeedID = "most_recent"
	MostDiscussed    StandardFeedID = "most_discussed"
	MostLinked       StandardFeedID = "most_linked"
	MostResponded    StandardFeedID = "most_responded"
	RecentlyFeatured StandardFeedID = "recently_featured"
	WatchOnMobile    StandardFeedID = "watch_on_mobile"
)

// StandardSearch requests one of the standard video feeds.
type StandardSearch struct {
	Feed StandardFeedID
	// Time restricts the feed window (today, this_week, this_month,
	// all_time).
	Time string

	Paging Paging
}

// URL builds the standard feed URL.
func (s *StandardSearch) URL() string {
	u := baseURL + "standardfeeds/" + string(s.Feed)

	params := url.Values{}
	params.Set("time", s.Time)
	addPaging(params, s.Paging)

	return u + queryString(params)
}
