package ytg

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"

	"ytg/config"
	"ytg/gdata"
	"ytg/retry"
	"ytg/transport"
)

// ErrKindMismatch reports a request routed to the wrong operation, e.g.
// a playlists user search passed to UserVideos.
var ErrKindMismatch = errors.New("ytg: request kind does not match this operation")

// Client retrieves and parses feed documents. Every call performs one
// fetch and one parse; the client keeps no state between calls and is
// safe for concurrent use.
type Client struct {
	fetcher transport.Fetcher
	log     zerolog.Logger
}

// New creates a client with an HTTP fetcher built from cfg. A nil cfg
// uses the defaults.
func New(cfg *config.Config) *Client {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := zerolog.Nop()
	if cfg.Debug {
		log = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}
	fetcher := transport.New(&transport.Config{
		Timeout:           cfg.Timeout,
		UserAgent:         cfg.UserAgent,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Retry: retry.Config{
			MaxRetries:     cfg.MaxRetries,
			InitialBackoff: cfg.InitialBackoff,
			MaxBackoff:     cfg.MaxBackoff,
			Multiplier:     cfg.BackoffMultiplier,
			JitterFraction: 0.2,
		},
		Logger: log,
	})
	return &Client{fetcher: fetcher, log: log}
}

// NewWithFetcher creates a client over a custom fetch capability.
func NewWithFetcher(f transport.Fetcher) *Client {
	return &Client{fetcher: f, log: zerolog.Nop()}
}

// SetLogger replaces the client's logger. Call before use.
func (c *Client) SetLogger(log zerolog.Logger) {
	c.log = log
}

// Videos retrieves a page of videos matching a free-text, category or
// tag search.
func (c *Client) Videos(ctx context.Context, s *gdata.VideoSearch) (*gdata.SearchResponse[gdata.Video], error) {
	return c.videoFeed(ctx, s.URL())
}

// StandardFeed retrieves a page of one of the platform's standard video
// feeds.
func (c *Client) StandardFeed(ctx context.Context, s *gdata.StandardSearch) (*gdata.SearchResponse[gdata.Video], error) {
	return c.videoFeed(ctx, s.URL())
}

// UserVideos retrieves a page of a user's uploads or favorites feed.
// For the playlists feed use UserPlaylists.
func (c *Client) UserVideos(ctx context.Context, s *gdata.UserSearch) (*gdata.SearchResponse[gdata.Video], error) {
	if s.Kind == gdata.UserPlaylists {
		return nil, ErrKindMismatch
	}
	return c.videoFeed(ctx, s.URL())
}

// UserPlaylists retrieves a page of the playlists a user has created.
func (c *Client) UserPlaylists(ctx context.Context, user string, p gdata.Paging) (*gdata.SearchResponse[gdata.Playlist], error) {
	s := &gdata.UserSearch{User: user, Kind: gdata.UserPlaylists, Paging: p}
	data, err := c.fetch(ctx, s.URL())
	if err != nil {
		return nil, err
	}
	return gdata.ParsePlaylistFeed(data)
}

// PlaylistVideos retrieves a page of the videos in a playlist. For a
// single video within a playlist use PlaylistVideo.
func (c *Client) PlaylistVideos(ctx context.Context, s *gdata.PlaylistVideoSearch) (*gdata.SearchResponse[gdata.Video], error) {
	if s.VideoID != "" {
		return nil, ErrKindMismatch
	}
	data, err := c.fetch(ctx, s.URL())
	if err != nil {
		return nil, err
	}
	return gdata.ParsePlaylistVideoFeed(data)
}

// PlaylistVideo retrieves one video by its membership id within a
// playlist. It returns (nil, nil) when the entry is not a playable
// video.
func (c *Client) PlaylistVideo(ctx context.Context, playlistID, videoID string) (*gdata.Video, error) {
	s := &gdata.PlaylistVideoSearch{PlaylistID: playlistID, VideoID: videoID}
	data, err := c.fetch(ctx, s.URL())
	if err != nil {
		return nil, err
	}
	return gdata.ParsePlaylistVideo(data, playlistID)
}

// Channels retrieves a page of channels matching a free-text search.
func (c *Client) Channels(ctx context.Context, s *gdata.ChannelSearch) (*gdata.SearchResponse[gdata.Channel], error) {
	data, err := c.fetch(ctx, s.URL())
	if err != nil {
		return nil, err
	}
	return gdata.ParseChannelFeed(data)
}

// Video retrieves a single video by bare id or full feed URL. It
// returns (nil, nil) when the entry is not a playable video.
func (c *Client) Video(ctx context.Context, idOrURL string) (*gdata.Video, error) {
	data, err := c.fetch(ctx, gdata.VideoEntryURL(idOrURL))
	if err != nil {
		return nil, err
	}
	return gdata.ParseVideo(data)
}

// Playlist retrieves a single playlist by bare id or full feed URL.
func (c *Client) Playlist(ctx context.Context, idOrURL string) (*gdata.Playlist, error) {
	data, err := c.fetch(ctx, gdata.PlaylistEntryURL(idOrURL))
	if err != nil {
		return nil, err
	}
	return gdata.ParsePlaylist(data)
}

// Channel retrieves a single channel by bare id or full feed URL.
func (c *Client) Channel(ctx context.Context, idOrURL string) (*gdata.Channel, error) {
	data, err := c.fetch(ctx, gdata.ChannelEntryURL(idOrURL))
	if err != nil {
		return nil, err
	}
	return gdata.ParseChannel(data)
}

func (c *Client) videoFeed(ctx context.Context, url string) (*gdata.SearchResponse[gdata.Video], error) {
	data, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return gdata.ParseVideoFeed(data)
}

// fetch performs the one blocking fetch of a call. Transport errors
// propagate unchanged.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	c.log.Debug().Str("url", url).Msg("submitting request")
	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}
