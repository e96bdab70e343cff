// Package ytg is a client library for the legacy video platform's XML
// data feeds. It builds feed query URLs from high-level request options
// and parses retrieved feed documents into typed records for videos,
// playlists and channels.
//
// Overview
//
// The client exposes one list/get pair per entity kind:
//
//   - Videos, StandardFeed, UserVideos, PlaylistVideos: paged video collections
//   - UserPlaylists: paged playlist collections
//   - Channels: paged channel collections
//   - Video, Playlist, Channel, PlaylistVideo: single entities by id or URL
//
// Quick Start
//
// Search videos:
//
//	ctx := context.Background()
//	client := ytg.New(nil)
//	res, err := client.Videos(ctx, &gdata.VideoSearch{
//		Query:  "benny lava",
//		Paging: gdata.Paging{Page: 2, PerPage: 10},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, v := range res.Items {
//		fmt.Println(v.Title)
//	}
//
// Fetch one playlist and page through its videos:
//
//	pl, err := client.Playlist(ctx, "ZTUVgYoeN_o")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for page := 1; page <= pl.MaxPage(25); page++ {
//		res, err := client.PlaylistVideos(ctx, &gdata.PlaylistVideoSearch{
//			PlaylistID: pl.UniqueID(),
//			Paging:     gdata.Paging{Page: page},
//		})
//		...
//	}
//
// Configuration
//
// ytg loads transport settings from multiple sources:
//
//   1. Environment variables (highest priority)
//   2. Config file (ytg.json or ~/.config/ytg/ytg.json)
//   3. Default values (lowest priority)
//
// Environment variables:
//
//   - YTG_TIMEOUT: Timeout for one feed fetch
//   - YTG_USER_AGENT: User agent for outgoing requests
//   - YTG_MAX_RETRIES: Maximum retry attempts
//   - YTG_INITIAL_BACKOFF: Initial retry backoff duration
//   - YTG_MAX_BACKOFF: Maximum retry backoff duration
//   - YTG_REQUESTS_PER_SECOND: Outgoing request rate cap (0 disables)
//   - YTG_DEBUG: Log every submitted request URL (true/false)
//
// Error Handling
//
// All operations return errors that implement standard Go error handling.
//
// Checking for sentinel errors:
//
//	if errors.Is(err, ytg.ErrNotFound) {
//		fmt.Println("no such feed")
//	}
//
// Extracting wrapped error details:
//
//	var fetchErr *ytg.FetchError
//	if errors.As(err, &fetchErr) {
//		fmt.Printf("fetching %s failed: %v\n", fetchErr.URL, fetchErr.Err)
//	}
//
// Single-entity lookups return (nil, nil) when the feed answers with an
// entry that is not a complete record of that kind, e.g. a video entry
// with no media group. Collection lookups silently skip such entries
// while keeping the feed-reported result counts.
//
// Advanced Usage
//
// For more control, use the sub-packages directly:
//
//   - gdata: request URL builders, entity models, feed parsers
//   - transport: the fetch capability and its HTTP implementation
//   - config: configuration management
//   - retry: exponential backoff retry logic
//
// Example building and parsing by hand:
//
//	s := &gdata.UserSearch{User: "liz", Kind: gdata.UserPlaylists}
//	body, err := fetcher.Fetch(ctx, s.URL())
//	...
//	res, err := gdata.ParsePlaylistFeed([]byte(body))
package ytg
