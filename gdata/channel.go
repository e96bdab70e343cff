package gdata

import "time"

// Channel is one channel entry parsed from a feed document. Channel
// entries carry categories but no keyword terms.
type Channel struct {
	// ID is the entry's identity URL.
	ID string

	UpdatedAt time.Time

	Categories []Category

	Title   string
	Summary string

	Author *Author

	// VideosLink is the URL of the channel's uploads feed.
	VideosLink string
	// CountHint is the feed-reported number of entries in the uploads
	// feed, 0 when the feed carries no hint.
	CountHint int
}
