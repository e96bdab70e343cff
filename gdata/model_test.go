package gdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideoUniqueID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"entry identity url", "http://gdata.youtube.com/feeds/videos/AbC123dEfGH", "AbC123dEfGH"},
		{"api identity url", "http://gdata.youtube.com/feeds/api/videos/AbC123dEfGH", "AbC123dEfGH"},
		{"no marker", "http://example.com/something/else", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Video{ID: tt.id}
			assert.Equal(t, tt.want, v.UniqueID())
		})
	}
}

func TestVideoEmbedURL(t *testing.T) {
	v := &Video{PlayerURL: "http://www.youtube.com/watch?v=AbC123dEfGH"}
	assert.Equal(t, "http://www.youtube.com/v/AbC123dEfGH", v.EmbedURL())

	// Already an embed URL, left alone.
	v = &Video{PlayerURL: "http://www.youtube.com/v/AbC123dEfGH"}
	assert.Equal(t, "http://www.youtube.com/v/AbC123dEfGH", v.EmbedURL())
}

func TestVideoEmbedHTML(t *testing.T) {
	v := &Video{PlayerURL: "http://www.youtube.com/watch?v=AbC123dEfGH"}

	html := v.EmbedHTML(0, 0)
	assert.Contains(t, html, `width="425" height="350"`)
	assert.Contains(t, html, `value="http://www.youtube.com/v/AbC123dEfGH"`)
	assert.Contains(t, html, `src="http://www.youtube.com/v/AbC123dEfGH"`)

	html = v.EmbedHTML(640, 480)
	assert.Contains(t, html, `width="640" height="480"`)
}

func TestPlaylistUniqueID(t *testing.T) {
	p := &Playlist{ID: "http://gdata.youtube.com/feeds/playlists/ZTUVgYoeN_o"}
	assert.Equal(t, "ZTUVgYoeN_o", p.UniqueID())

	p = &Playlist{ID: "http://example.com/other"}
	assert.Equal(t, "", p.UniqueID())
}

func TestPlaylistMaxPage(t *testing.T) {
	tests := []struct {
		name      string
		countHint int
		perPage   int
		want      int
	}{
		{"exact multiple", 20, 10, 2},
		{"partial last page", 25, 10, 3},
		{"single page", 7, 10, 1},
		{"empty playlist", 0, 10, 0},
		{"zero per page falls back to 10", 25, 0, 3},
		{"negative per page falls back to 10", 25, -5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Playlist{CountHint: tt.countHint}
			assert.Equal(t, tt.want, p.MaxPage(tt.perPage))
		})
	}
}
