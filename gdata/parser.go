package gdata

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedFeed reports a structurally malformed document: a missing
// or misnamed top-level element, or a collection feed lacking mandatory
// feed-level fields. Entry-level problems never produce this error;
// incomplete entries are dropped instead.
var ErrMalformedFeed = errors.New("gdata: malformed feed document")

// Scheme URI suffixes that partition <category> elements into real
// categories and plain keywords.
const (
	categorySchemeSuffix = "/categories.cat"
	keywordSchemeSuffix  = "/keywords.cat"
)

type schemeClass int

const (
	schemeUnknown schemeClass = iota
	schemeCategory
	schemeKeyword
)

// classifyScheme decides whether a <category> scheme URI denotes a real
// category, a keyword, or neither (in which case the element is dropped).
func classifyScheme(scheme string) schemeClass {
	switch {
	case strings.HasSuffix(scheme, categorySchemeSuffix):
		return schemeCategory
	case strings.HasSuffix(scheme, keywordSchemeSuffix):
		return schemeKeyword
	default:
		return schemeUnknown
	}
}

// Wire structs. Numeric and date values decode as strings so a malformed
// value coerces to its default instead of failing the whole document.
// Elements that only matter by presence decode into *xmlPresence.

type xmlEntry struct {
	XMLName     xml.Name       `xml:"entry"`
	ID          string         `xml:"id"`
	Published   string         `xml:"published"`
	Updated     string         `xml:"updated"`
	Categories  []xmlCategory  `xml:"category"`
	Title       string         `xml:"title"`
	Content     string         `xml:"content"`
	Summary     string         `xml:"summary"`
	Author      *xmlAuthor     `xml:"author"`
	Group       *xmlMediaGroup `xml:"http://search.yahoo.com/mrss/ group"`
	Rating      *xmlRating     `xml:"http://schemas.google.com/g/2005 rating"`
	MediaRating *xmlPresence   `xml:"http://search.yahoo.com/mrss/ rating"`
	Statistics  *xmlStatistics `xml:"http://gdata.youtube.com/schemas/2007 statistics"`
	Position    string         `xml:"http://gdata.youtube.com/schemas/2007 position"`
	NoEmbed     *xmlPresence   `xml:"http://gdata.youtube.com/schemas/2007 noembed"`
	Where       *xmlWhere      `xml:"http://www.georss.org/georss where"`
	FeedLink    *xmlFeedLink   `xml:"http://schemas.google.com/g/2005 feedLink"`
}

type xmlPresence struct{}

type xmlCategory struct {
	Scheme string `xml:"scheme,attr"`
	Term   string `xml:"term,attr"`
	Label  string `xml:"label,attr"`
}

type xmlAuthor struct {
	Name string `xml:"name"`
	URI  string `xml:"uri"`
}

type xmlMediaGroup struct {
	Description string            `xml:"description"`
	Duration    *xmlDuration      `xml:"http://gdata.youtube.com/schemas/2007 duration"`
	Contents    []xmlMediaContent `xml:"content"`
	Player      *xmlPlayer        `xml:"player"`
	Thumbnails  []xmlThumbnail    `xml:"thumbnail"`
}

type xmlDuration struct {
	Seconds string `xml:"seconds,attr"`
}

type xmlMediaContent struct {
	URL       string `xml:"url,attr"`
	Format    string `xml:"format,attr"`
	Duration  string `xml:"duration,attr"`
	Type      string `xml:"type,attr"`
	IsDefault string `xml:"isDefault,attr"`
}

type xmlPlayer struct {
	URL string `xml:"url,attr"`
}

type xmlThumbnail struct {
	URL    string `xml:"url,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Time   string `xml:"time,attr"`
}

type xmlRating struct {
	Min       string `xml:"min,attr"`
	Max       string `xml:"max,attr"`
	NumRaters string `xml:"numRaters,attr"`
	Average   string `xml:"average,attr"`
}

type xmlStatistics struct {
	ViewCount string `xml:"viewCount,attr"`
}

type xmlWhere struct {
	Pos string `xml:"Point>pos"`
}

type xmlFeedLink struct {
	Href      string `xml:"href,attr"`
	CountHint string `xml:"countHint,attr"`
}

type xmlFeed struct {
	XMLName      xml.Name   `xml:"feed"`
	ID           string     `xml:"id"`
	Updated      string     `xml:"updated"`
	TotalResults *string    `xml:"http://a9.com/-/spec/opensearchrss/1.0/ totalResults"`
	StartIndex   *string    `xml:"http://a9.com/-/spec/opensearchrss/1.0/ startIndex"`
	ItemsPerPage *string    `xml:"http://a9.com/-/spec/opensearchrss/1.0/ itemsPerPage"`
	PlaylistID   string     `xml:"http://gdata.youtube.com/schemas/2007 playlistId"`
	Entries      []xmlEntry `xml:"entry"`
}

// entryConv turns one decoded entry into a typed record. ok is false
// when the entry lacks a structurally required child; such entries are
// dropped from collections and reported as nil from single-entry parses.
type entryConv[T any] func(e *xmlEntry) (*T, bool)

// parseSingle parses a single-entry document through conv. A document
// whose root is not <entry> is a hard failure; an incomplete entry
// yields (nil, nil).
func parseSingle[T any](data []byte, conv entryConv[T]) (*T, error) {
	var e xmlEntry
	if err := xml.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}
	v, ok := conv(&e)
	if !ok {
		return nil, nil
	}
	return v, nil
}

// decodeFeed parses a collection document and checks the mandatory
// feed-level fields.
func decodeFeed(data []byte) (*xmlFeed, error) {
	var f xmlFeed
	if err := xml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}
	if f.ID == "" {
		return nil, fmt.Errorf("%w: missing feed id", ErrMalformedFeed)
	}
	if _, err := time.Parse(time.RFC3339, f.Updated); err != nil {
		return nil, fmt.Errorf("%w: bad feed updated timestamp %q", ErrMalformedFeed, f.Updated)
	}
	if f.TotalResults == nil || f.StartIndex == nil || f.ItemsPerPage == nil {
		return nil, fmt.Errorf("%w: missing pagination counters", ErrMalformedFeed)
	}
	return &f, nil
}

// collectionFromFeed converts every entry through conv, skipping the
// incomplete ones. The feed-reported counts pass through untouched.
func collectionFromFeed[T any](f *xmlFeed, conv entryConv[T]) *SearchResponse[T] {
	resp := &SearchResponse[T]{
		FeedID:           f.ID,
		UpdatedAt:        timeOr(f.Updated),
		TotalResultCount: intOr(*f.TotalResults, 0),
		Offset:           intOr(*f.StartIndex, 0),
		MaxResultCount:   intOr(*f.ItemsPerPage, 0),
	}
	for i := range f.Entries {
		if v, ok := conv(&f.Entries[i]); ok {
			resp.Items = append(resp.Items, *v)
		}
	}
	return resp
}

// ParseVideo parses a single-video document. It returns (nil, nil) when
// the entry is not a playable video (no media group or player URL).
func ParseVideo(data []byte) (*Video, error) {
	return parseSingle(data, func(e *xmlEntry) (*Video, bool) {
		return videoFromEntry(e, "")
	})
}

// ParsePlaylistVideo parses a single-video document fetched from within
// a playlist, stamping the video with the playlist id.
func ParsePlaylistVideo(data []byte, playlistID string) (*Video, error) {
	return parseSingle(data, func(e *xmlEntry) (*Video, bool) {
		return videoFromEntry(e, playlistID)
	})
}

// ParseVideoFeed parses a video collection document.
func ParseVideoFeed(data []byte) (*SearchResponse[Video], error) {
	f, err := decodeFeed(data)
	if err != nil {
		return nil, err
	}
	return collectionFromFeed(f, func(e *xmlEntry) (*Video, bool) {
		return videoFromEntry(e, "")
	}), nil
}

// ParsePlaylistVideoFeed parses a playlist's video collection document.
// The feed-level yt:playlistId is stamped on every video.
func ParsePlaylistVideoFeed(data []byte) (*SearchResponse[Video], error) {
	f, err := decodeFeed(data)
	if err != nil {
		return nil, err
	}
	return collectionFromFeed(f, func(e *xmlEntry) (*Video, bool) {
		return videoFromEntry(e, f.PlaylistID)
	}), nil
}

// ParsePlaylist parses a single-playlist document. It returns (nil, nil)
// when the entry lacks its mandatory fields.
func ParsePlaylist(data []byte) (*Playlist, error) {
	return parseSingle(data, playlistFromEntry)
}

// ParsePlaylistFeed parses a playlist collection document.
func ParsePlaylistFeed(data []byte) (*SearchResponse[Playlist], error) {
	f, err := decodeFeed(data)
	if err != nil {
		return nil, err
	}
	return collectionFromFeed(f, playlistFromEntry), nil
}

// ParseChannel parses a single-channel document. It returns (nil, nil)
// when the entry lacks its mandatory fields.
func ParseChannel(data []byte) (*Channel, error) {
	return parseSingle(data, channelFromEntry)
}

// ParseChannelFeed parses a channel collection document.
func ParseChannelFeed(data []byte) (*SearchResponse[Channel], error) {
	f, err := decodeFeed(data)
	if err != nil {
		return nil, err
	}
	return collectionFromFeed(f, channelFromEntry), nil
}

// videoFromEntry maps one entry to a Video. A video must carry an id, a
// media group and a player URL; anything else degrades to its default.
func videoFromEntry(e *xmlEntry, playlistID string) (*Video, bool) {
	if e.ID == "" || e.Group == nil || e.Group.Player == nil || e.Group.Player.URL == "" {
		return nil, false
	}

	categories, keywords := partitionCategories(e.Categories)

	v := &Video{
		ID:          e.ID,
		PlaylistID:  playlistID,
		PublishedAt: timeOr(e.Published),
		UpdatedAt:   timeOr(e.Updated),
		Categories:  categories,
		Keywords:    keywords,
		Title:       e.Title,
		Description: e.Group.Description,
		HTMLContent: e.Content,
		Author:      authorFrom(e.Author),
		Position:    intOr(e.Position, 0),
		PlayerURL:   e.Group.Player.URL,
		Rating:      ratingFrom(e.Rating),
		NoEmbed:     e.NoEmbed != nil,
		Racy:        e.MediaRating != nil,
		Where:       geoFrom(e.Where),
	}

	if e.Group.Duration != nil {
		v.Duration = intOr(e.Group.Duration.Seconds, 0)
	}
	if e.Statistics != nil {
		v.ViewCount = intOr(e.Statistics.ViewCount, 0)
	}

	for _, c := range e.Group.Contents {
		v.MediaContent = append(v.MediaContent, Content{
			URL:      c.URL,
			Format:   FormatByCode(intOr(c.Format, 0)),
			Duration: intOr(c.Duration, 0),
			MimeType: c.Type,
			Default:  c.IsDefault == "true",
		})
	}
	for _, t := range e.Group.Thumbnails {
		v.Thumbnails = append(v.Thumbnails, Thumbnail{
			URL:    t.URL,
			Width:  intOr(t.Width, 0),
			Height: intOr(t.Height, 0),
			Time:   t.Time,
		})
	}

	return v, true
}

// playlistFromEntry maps one entry to a Playlist. Playlists require an
// id and both timestamps.
func playlistFromEntry(e *xmlEntry) (*Playlist, bool) {
	if e.ID == "" {
		return nil, false
	}
	published := timeOr(e.Published)
	updated := timeOr(e.Updated)
	if published.IsZero() || updated.IsZero() {
		return nil, false
	}

	categories, keywords := partitionCategories(e.Categories)

	p := &Playlist{
		ID:          e.ID,
		PublishedAt: published,
		UpdatedAt:   updated,
		Categories:  categories,
		Keywords:    keywords,
		Title:       e.Title,
		Description: e.Summary,
		HTMLContent: e.Content,
		Author:      authorFrom(e.Author),
	}
	if e.FeedLink != nil {
		p.VideosLink = e.FeedLink.Href
		p.CountHint = intOr(e.FeedLink.CountHint, 0)
	}
	return p, true
}

// channelFromEntry maps one entry to a Channel. Channels require an id
// and an updated timestamp, and keep categories only.
func channelFromEntry(e *xmlEntry) (*Channel, bool) {
	if e.ID == "" {
		return nil, false
	}
	updated := timeOr(e.Updated)
	if updated.IsZero() {
		return nil, false
	}

	categories, _ := partitionCategories(e.Categories)

	c := &Channel{
		ID:         e.ID,
		UpdatedAt:  updated,
		Categories: categories,
		Title:      e.Title,
		Summary:    e.Summary,
		Author:     authorFrom(e.Author),
	}
	if e.FeedLink != nil {
		c.VideosLink = e.FeedLink.Href
		c.CountHint = intOr(e.FeedLink.CountHint, 0)
	}
	return c, true
}

// partitionCategories splits <category> elements into categories and
// keywords by scheme suffix; elements matching neither are dropped.
func partitionCategories(elems []xmlCategory) ([]Category, []string) {
	var categories []Category
	var keywords []string
	for _, c := range elems {
		switch classifyScheme(c.Scheme) {
		case schemeCategory:
			categories = append(categories, Category{Term: c.Term, Label: c.Label})
		case schemeKeyword:
			keywords = append(keywords, c.Term)
		}
	}
	return categories, keywords
}

func authorFrom(a *xmlAuthor) *Author {
	if a == nil {
		return nil
	}
	return &Author{Name: a.Name, URI: a.URI}
}

// ratingFrom builds a Rating only when all four attributes parse; a
// partial rating element counts as absent.
func ratingFrom(r *xmlRating) *Rating {
	if r == nil {
		return nil
	}
	min, err1 := strconv.Atoi(strings.TrimSpace(r.Min))
	max, err2 := strconv.Atoi(strings.TrimSpace(r.Max))
	raters, err3 := strconv.Atoi(strings.TrimSpace(r.NumRaters))
	avg, err4 := strconv.ParseFloat(strings.TrimSpace(r.Average), 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return nil
	}
	return &Rating{Min: min, Max: max, RaterCount: raters, Average: avg}
}

// geoFrom splits the two-token "lat lon" position text. Anything else
// counts as no position.
func geoFrom(w *xmlWhere) *GeoPosition {
	if w == nil {
		return nil
	}
	tokens := strings.Fields(w.Pos)
	if len(tokens) != 2 {
		return nil
	}
	lat, err1 := strconv.ParseFloat(tokens[0], 64)
	lon, err2 := strconv.ParseFloat(tokens[1], 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &GeoPosition{Latitude: lat, Longitude: lon}
}

// intOr coerces numeric text, falling back to def on anything
// unparseable.
func intOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// timeOr parses an ISO-8601 instant, returning the zero time on
// absent or malformed input.
func timeOr(s string) time.Time {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}
