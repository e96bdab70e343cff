package gdata

import (
	"fmt"
	"strings"
	"time"
)

// Video is one video entry parsed from a feed document.
type Video struct {
	// ID is the entry's identity URL.
	ID string
	// PlaylistID is the video's membership id inside a playlist feed.
	// Empty outside playlist feeds.
	PlaylistID string

	PublishedAt time.Time
	UpdatedAt   time.Time

	Categories []Category
	// Keywords are the entry's keyword terms in document order.
	Keywords []string

	Title       string
	Description string
	// HTMLContent is the entry's HTML description block.
	HTMLContent string

	Author *Author

	// Position is the video's position within its playlist, 0 when the
	// feed reports none.
	Position int
	// Duration is the video length in seconds.
	Duration int

	// MediaContent lists the playable media variants in document order.
	MediaContent []Content
	// PlayerURL is the watch page URL.
	PlayerURL  string
	Thumbnails []Thumbnail

	Rating *Rating
	// ViewCount is 0 when the feed reports no statistics.
	ViewCount int

	// NoEmbed reports that embedding is disabled for this video.
	NoEmbed bool
	// Racy reports that the feed flags this video's content.
	Racy bool

	// Where is the recording location, nil when the entry carries none.
	Where *GeoPosition
}

// UniqueID returns the bare video id, extracted from the identity URL's
// trailing segment after "videos/". Empty when the marker is absent.
func (v *Video) UniqueID() string {
	return trailingSegment(v.ID, "videos/")
}

// EmbedURL returns the player URL rewritten for embedding.
func (v *Video) EmbedURL() string {
	return strings.Replace(v.PlayerURL, "watch?v=", "v/", 1)
}

// EmbedHTML returns the classic object/embed markup for the video.
// Non-positive dimensions fall back to 425x350.
func (v *Video) EmbedHTML(width, height int) string {
	if width <= 0 {
		width = 425
	}
	if height <= 0 {
		height = 350
	}
	src := v.EmbedURL()
	return fmt.Sprintf(`<object width="%d" height="%d">
  <param name="movie" value="%s"></param>
  <param name="wmode" value="transparent"></param>
  <embed src="%s" type="application/x-shockwave-flash"
   wmode="transparent" width="%d" height="%d"></embed>
</object>`, width, height, src, src, width, height)
}
