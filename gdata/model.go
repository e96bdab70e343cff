// Package gdata implements the legacy GData XML feed protocol: typed
// entity records, the query URL builders that request feeds, and the
// parsers that turn feed documents back into those records.
//
// The package performs no network I/O. Builders are pure functions from
// request parameters to a URL string, and parsers consume document bytes
// already retrieved by a transport.
package gdata

import "time"

// Category classifies an entry. Only <category> elements whose scheme
// ends in the category classification suffix become a Category; keyword
// schemes become plain strings instead.
type Category struct {
	// Term is the machine-readable category term.
	Term string
	// Label is the human-readable category label.
	Label string
}

// Author identifies the account that published an entry.
type Author struct {
	Name string
	// URI is the author's profile feed URL.
	URI string
}

// Thumbnail is one preview image of a video.
type Thumbnail struct {
	URL    string
	Width  int
	Height int
	// Time is the offset the frame was taken from, as the raw
	// HH:MM:SS text reported by the feed. It is not reparsed.
	Time string
}

// Content is one playable media variant of a video.
type Content struct {
	URL string
	// Format is the named encoding variant decoded from the feed's
	// numeric format code.
	Format Format
	// Duration is the variant length in seconds.
	Duration int
	MimeType string
	// Default reports whether the feed marks this variant as the
	// default stream.
	Default bool
}

// Rating aggregates viewer ratings for a video. A rating is either fully
// populated or absent from the parsed entry.
type Rating struct {
	Min        int
	Max        int
	RaterCount int
	Average    float64
}

// GeoPosition is the recording location attached to a video entry.
type GeoPosition struct {
	Latitude  float64
	Longitude float64
}

// SearchResponse wraps the entries of a collection document together with
// the feed-level pagination metadata the document reports. The reported
// counts always reflect the feed, not the number of surviving items.
type SearchResponse[T any] struct {
	// FeedID uniquely identifies the feed document.
	FeedID string
	// UpdatedAt is when the feed was last updated upstream.
	UpdatedAt time.Time
	// TotalResultCount is the feed-reported total number of results.
	TotalResultCount int
	// Offset is the feed-reported 1-based start index.
	Offset int
	// MaxResultCount is the feed-reported page size.
	MaxResultCount int
	// Items holds the parsed entries in document order. Entries that
	// lack a structurally required child are skipped.
	Items []T
}
