package gdata

import (
	"net/url"
	"strconv"
	"strings"
)

// baseURL is the root of the feed API. Every request kind builds on it.
const baseURL = "http://gdata.youtube.com/feeds/api/"

// Get-by-id URL templates. Bare identifiers expand against these;
// absolute URLs pass through verbatim.
const (
	videoEntryURL    = "http://gdata.youtube.com/feeds/videos/"
	playlistEntryURL = "http://gdata.youtube.com/feeds/playlists/"
	channelEntryURL  = "http://gdata.youtube.com/feeds/api/channels/"
)

// VideoEntryURL expands a video id or URL into the single-entry feed URL.
func VideoEntryURL(idOrURL string) string {
	if isAbsolute(idOrURL) {
		return idOrURL
	}
	return videoEntryURL + url.PathEscape(idOrURL)
}

// PlaylistEntryURL expands a playlist id or URL into the single-entry
// feed URL.
func PlaylistEntryURL(idOrURL string) string {
	if isAbsolute(idOrURL) {
		return idOrURL
	}
	return playlistEntryURL + url.PathEscape(idOrURL)
}

// ChannelEntryURL expands a channel id or URL into the single-entry feed
// URL. Channel entries require the v=2 representation.
func ChannelEntryURL(idOrURL string) string {
	if isAbsolute(idOrURL) {
		return idOrURL
	}
	return channelEntryURL + url.PathEscape(idOrURL) + "?v=2"
}

func isAbsolute(s string) bool {
	return strings.HasPrefix(s, "http")
}

// queryString encodes the parameters as "?k=v&...", omitting keys with
// empty values. Keys come out in alphabetical order, so built URLs are
// deterministic. Returns "" when nothing survives.
func queryString(params url.Values) string {
	for k, vs := range params {
		keep := vs[:0]
		for _, v := range vs {
			if v != "" {
				keep = append(keep, v)
			}
		}
		if len(keep) == 0 {
			delete(params, k)
		} else {
			params[k] = keep
		}
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// addPaging resolves the paging request into start-index/max-results.
// A zero Paging adds nothing, so default fetches build bare URLs.
func addPaging(params url.Values, p Paging) {
	if p.isZero() {
		return
	}
	offset, maxResults := p.Resolve()
	params.Set("start-index", strconv.Itoa(offset))
	params.Set("max-results", strconv.Itoa(maxResults))
}

// pathTokens renders categories then tags as the "/-/" browse path:
// each token URL-escaped and "/"-delimited, with a trailing slash.
// Returns "" when both lists are empty.
func pathTokens(categories, tags []string) string {
	if len(categories) == 0 && len(tags) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("/-/")
	for _, c := range categories {
		sb.WriteString(url.PathEscape(c))
		sb.WriteString("/")
	}
	for _, t := range tags {
		sb.WriteString(url.PathEscape(t))
		sb.WriteString("/")
	}
	return sb.String()
}
