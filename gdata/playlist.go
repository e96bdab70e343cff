package gdata

import (
	"strings"
	"time"
)

// Playlist is one playlist entry parsed from a feed document.
type Playlist struct {
	// ID is the entry's identity URL.
	ID string

	PublishedAt time.Time
	UpdatedAt   time.Time

	Categories []Category
	Keywords   []string

	Title       string
	Description string
	HTMLContent string

	Author *Author

	// VideosLink is the URL of the playlist's videos feed.
	VideosLink string
	// CountHint is the feed-reported number of entries in the playlist,
	// 0 when the feed carries no hint.
	CountHint int
}

// UniqueID returns the bare playlist id, extracted from the identity
// URL's trailing segment after "playlists/". Empty when the marker is
// absent.
func (p *Playlist) UniqueID() string {
	return trailingSegment(p.ID, "playlists/")
}

// MaxPage returns the last page number when the playlist's videos are
// fetched perPage at a time. Non-positive perPage falls back to 10.
func (p *Playlist) MaxPage(perPage int) int {
	if perPage <= 0 {
		perPage = 10
	}
	pages := p.CountHint / perPage
	if p.CountHint%perPage != 0 {
		pages++
	}
	return pages
}

// trailingSegment returns everything after the first occurrence of
// marker, or "" when marker is absent.
func trailingSegment(s, marker string) string {
	i := strings.Index(s, marker)
	if i < 0 {
		return ""
	}
	return s[i+len(marker):]
}
