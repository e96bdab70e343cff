package gdata

import (
	"net/url"
	"strconv"
)

// embeddableFormatCode is the fixed format filter sent when a caller
// restricts a playlist's videos to embeddable variants.
const embeddableFormatCode = 5

// PlaylistVideoSearch requests the videos of one playlist, or a single
// video within it when VideoID is set.
type PlaylistVideoSearch struct {
	// PlaylistID is the bare playlist id. Required.
	PlaylistID string
	// VideoID, when set together with PlaylistID, short-circuits the
	// request to the single playlist entry
	// playlists/<playlist_id>/<video_id> with no query parameters.
	VideoID string
	// Categories and Tags become "/-/"-prefixed path tokens.
	Categories []string
	Tags       []string
	// OrderBy selects the result ordering.
	OrderBy string
	// OnlyEmbeddable restricts results to embeddable variants.
	OnlyEmbeddable bool

	Paging Paging
}

// URL builds the playlist videos feed URL.
func (s *PlaylistVideoSearch) URL() string {
	u := baseURL + "playlists/" + url.PathEscape(s.PlaylistID)

	// Single-item fetch: no further parameters apply.
	if s.VideoID != "" {
		return u + "/" + url.PathEscape(s.VideoID)
	}

	u += pathTokens(s.Categories, s.Tags)

	params := url.Values{}
	params.Set("orderby", s.OrderBy)
	if s.OnlyEmbeddable {
		params.Set("format", strconv.Itoa(embeddableFormatCode))
	}
	addPaging(params, s.Paging)

	return u + queryString(params)
}
