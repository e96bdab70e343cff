package gdata

import "net/url"

// UserFeedKind selects which of a user's feeds to request. The kind is
// an explicit field rather than the protocol's historical marker-value
// dispatch.
type UserFeedKind int

const (
	// UserUploads requests the user's uploaded videos.
	UserUploads UserFeedKind = iota
	// UserFavorites requests the user's favorited videos.
	UserFavorites
	// UserPlaylists requests the user's playlists.
	UserPlaylists
)

func (k UserFeedKind) String() string {
	switch k {
	case UserFavorites:
		return "favorites"
	case UserPlaylists:
		return "playlists"
	default:
		return "uploads"
	}
}

// UserSearch requests one of a user's feeds: uploads (videos),
// favorites (videos) or playlists.
type UserSearch struct {
	// User is the account name. Required.
	User string
	// Kind selects the feed; the zero value is UserUploads.
	Kind UserFeedKind
	// OrderBy selects the result ordering.
	OrderBy string
	// Time restricts the window.
	Time string

	Paging Paging
}

// URL builds the user feed URL.
func (s *UserSearch) URL() string {
	u := baseURL + "users/" + url.PathEscape(s.User) + "/" + s.Kind.String()

	params := url.Values{}
	params.Set("orderby", s.OrderBy)
	params.Set("time", s.Time)
	addPaging(params, s.Paging)

	return u + queryString(params)
}
