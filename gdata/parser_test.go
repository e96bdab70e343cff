package gdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVideo(t *testing.T) {
	v, err := ParseVideo([]byte(SampleVideoEntry))
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.Equal(t, "http://gdata.youtube.com/feeds/videos/AbC123dEfGH", v.ID)
	assert.Equal(t, "AbC123dEfGH", v.UniqueID())
	assert.Equal(t, time.Date(2008, 5, 30, 9, 46, 36, 0, time.UTC), v.PublishedAt)
	assert.Equal(t, time.Date(2008, 6, 14, 13, 22, 3, 0, time.UTC), v.UpdatedAt)

	// One category, one keyword, one dropped scheme.
	require.Len(t, v.Categories, 1)
	assert.Equal(t, Category{Term: "Music", Label: "Music"}, v.Categories[0])
	assert.Equal(t, []string{"acoustic"}, v.Keywords)

	assert.Equal(t, "Acoustic Cover", v.Title)
	assert.Equal(t, "An acoustic cover recorded at home.", v.Description)
	assert.Equal(t, "<div>Acoustic cover session</div>", v.HTMLContent)

	require.NotNil(t, v.Author)
	assert.Equal(t, "liz", v.Author.Name)
	assert.Equal(t, "http://gdata.youtube.com/feeds/users/liz", v.Author.URI)

	assert.Equal(t, 195, v.Duration)
	assert.Equal(t, 3, v.Position)
	assert.Equal(t, "http://www.youtube.com/watch?v=AbC123dEfGH", v.PlayerURL)

	require.Len(t, v.MediaContent, 2)
	assert.Equal(t, FormatMobile, v.MediaContent[0].Format)
	assert.Equal(t, "video/3gpp", v.MediaContent[0].MimeType)
	assert.True(t, v.MediaContent[0].Default)
	assert.Equal(t, FormatSDFlash, v.MediaContent[1].Format)
	assert.False(t, v.MediaContent[1].Default)

	require.Len(t, v.Thumbnails, 2)
	assert.Equal(t, 130, v.Thumbnails[0].Width)
	assert.Equal(t, 97, v.Thumbnails[0].Height)
	assert.Equal(t, "00:01:37.500", v.Thumbnails[0].Time)

	require.NotNil(t, v.Rating)
	assert.Equal(t, 1, v.Rating.Min)
	assert.Equal(t, 5, v.Rating.Max)
	assert.Equal(t, 362, v.Rating.RaterCount)
	assert.InDelta(t, 4.53, v.Rating.Average, 1e-9)

	assert.Equal(t, 38912, v.ViewCount)
	assert.False(t, v.NoEmbed)
	assert.True(t, v.Racy)

	require.NotNil(t, v.Where)
	assert.InDelta(t, 37.398529, v.Where.Latitude, 1e-9)
	assert.InDelta(t, -122.082397, v.Where.Longitude, 1e-9)
}

func TestParseVideoWithoutMediaGroup(t *testing.T) {
	v, err := ParseVideo([]byte(SampleVideoEntryNoMedia))
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestParseVideoLenientCoercion(t *testing.T) {
	v, err := ParseVideo([]byte(SampleVideoEntryBadNumbers))
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.Equal(t, 0, v.Duration)
	assert.Equal(t, 0, v.ViewCount)
	assert.True(t, v.PublishedAt.IsZero())
	require.Len(t, v.MediaContent, 1)
	assert.Equal(t, FormatUnknown, v.MediaContent[0].Format)
	assert.Equal(t, 0, v.MediaContent[0].Duration)
	// A partial rating counts as absent.
	assert.Nil(t, v.Rating)
}

func TestParseVideoFeed(t *testing.T) {
	res, err := ParseVideoFeed([]byte(SampleVideoFeed))
	require.NoError(t, err)

	assert.Equal(t, "http://gdata.youtube.com/feeds/api/videos?vq=acoustic", res.FeedID)
	assert.Equal(t, time.Date(2008, 7, 4, 19, 51, 6, 0, time.UTC), res.UpdatedAt)
	assert.Equal(t, 1, res.Offset)
	assert.Equal(t, 25, res.MaxResultCount)

	// The entry without a media group is skipped, but the feed-reported
	// total is untouched.
	assert.Equal(t, 24, res.TotalResultCount)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "http://gdata.youtube.com/feeds/videos/AbC123dEfGH", res.Items[0].ID)
	assert.Equal(t, "http://gdata.youtube.com/feeds/videos/XyZ987wVuTS", res.Items[1].ID)
}

func TestParseVideoFeedStructuralFailures(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing pagination counters", SampleVideoFeedNoCounters},
		{"misnamed root element", `<resource/>`},
		{"not xml at all", `{"items": []}`},
		{
			"missing feed id",
			`<feed xmlns="http://www.w3.org/2005/Atom" xmlns:openSearch="http://a9.com/-/spec/opensearchrss/1.0/">
			  <updated>2008-07-04T19:51:06.000Z</updated>
			  <openSearch:totalResults>0</openSearch:totalResults>
			  <openSearch:startIndex>1</openSearch:startIndex>
			  <openSearch:itemsPerPage>25</openSearch:itemsPerPage>
			</feed>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseVideoFeed([]byte(tt.data))
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrMalformedFeed)
		})
	}
}

func TestParseSingleRejectsCollectionDocument(t *testing.T) {
	v, err := ParseVideo([]byte(SampleVideoFeed))
	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrMalformedFeed)
}

func TestParsePlaylist(t *testing.T) {
	p, err := ParsePlaylist([]byte(SamplePlaylistEntry))
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "http://gdata.youtube.com/feeds/playlists/ZTUVgYoeN_o", p.ID)
	assert.Equal(t, "ZTUVgYoeN_o", p.UniqueID())
	assert.Equal(t, time.Date(2007, 11, 4, 17, 30, 27, 0, time.UTC), p.PublishedAt)
	assert.Equal(t, "Road Trip Mix", p.Title)
	assert.Equal(t, "Songs for the road.", p.Description)
	assert.Equal(t, "<p>Songs for the road.</p>", p.HTMLContent)
	assert.Equal(t, []string{"mix"}, p.Keywords)
	require.NotNil(t, p.Author)
	assert.Equal(t, "liz", p.Author.Name)
	assert.Equal(t, "http://gdata.youtube.com/feeds/api/playlists/ZTUVgYoeN_o", p.VideosLink)
	assert.Equal(t, 25, p.CountHint)
}

func TestParsePlaylistMissingTimestamps(t *testing.T) {
	const entry = `<entry xmlns="http://www.w3.org/2005/Atom">
	  <id>http://gdata.youtube.com/feeds/playlists/ZTUVgYoeN_o</id>
	  <title>Road Trip Mix</title>
	</entry>`

	p, err := ParsePlaylist([]byte(entry))
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestParsePlaylistFeed(t *testing.T) {
	res, err := ParsePlaylistFeed([]byte(SamplePlaylistFeed))
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalResultCount)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "ZTUVgYoeN_o", res.Items[0].UniqueID())
	assert.Equal(t, 8, res.Items[1].CountHint)
}

func TestParsePlaylistVideoFeed(t *testing.T) {
	res, err := ParsePlaylistVideoFeed([]byte(SamplePlaylistVideoFeed))
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "ZTUVgYoeN_o", res.Items[0].PlaylistID)
	assert.Equal(t, 1, res.Items[0].Position)
}

func TestParsePlaylistVideo(t *testing.T) {
	v, err := ParsePlaylistVideo([]byte(SampleVideoEntry), "ZTUVgYoeN_o")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "ZTUVgYoeN_o", v.PlaylistID)
}

func TestParseChannel(t *testing.T) {
	c, err := ParseChannel([]byte(SampleChannelEntry))
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, "http://gdata.youtube.com/feeds/api/channels/UC_x5XG1OV2P6uZZ5FSM9Ttw", c.ID)
	assert.Equal(t, time.Date(2008, 7, 2, 7, 26, 31, 0, time.UTC), c.UpdatedAt)
	// channeltypes.cat matches neither suffix and is dropped.
	require.Len(t, c.Categories, 1)
	assert.Equal(t, "Comedy", c.Categories[0].Term)
	assert.Equal(t, "liz's channel", c.Title)
	assert.Equal(t, "Weekly uploads, mostly covers.", c.Summary)
	assert.Equal(t, "http://gdata.youtube.com/feeds/api/users/liz/uploads", c.VideosLink)
	assert.Equal(t, 87, c.CountHint)
}

func TestParseChannelMissingUpdated(t *testing.T) {
	const entry = `<entry xmlns="http://www.w3.org/2005/Atom">
	  <id>http://gdata.youtube.com/feeds/api/channels/UCabc</id>
	  <title>ghost channel</title>
	</entry>`

	c, err := ParseChannel([]byte(entry))
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestParseChannelFeed(t *testing.T) {
	res, err := ParseChannelFeed([]byte(SampleChannelFeed))
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalResultCount)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 87, res.Items[0].CountHint)
}

func TestClassifyScheme(t *testing.T) {
	tests := []struct {
		scheme string
		want   schemeClass
	}{
		{"http://gdata.youtube.com/schemas/2007/categories.cat", schemeCategory},
		{"http://gdata.youtube.com/schemas/2007/keywords.cat", schemeKeyword},
		{"http://schemas.google.com/g/2005#kind", schemeUnknown},
		{"", schemeUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyScheme(tt.scheme), "scheme %q", tt.scheme)
	}
}
