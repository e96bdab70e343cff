package gdata

// Sample feed documents used by tests here and in dependent packages.

// SampleVideoEntry is a complete single-video document. Its three
// <category> elements cover the classification cases: a real category,
// a keyword, and a scheme that matches neither.
const SampleVideoEntry = `<?xml version="1.0" encoding="UTF-8"?>
<entry xmlns="http://www.w3.org/2005/Atom"
    xmlns:media="http://search.yahoo.com/mrss/"
    xmlns:yt="http://gdata.youtube.com/schemas/2007"
    xmlns:gd="http://schemas.google.com/g/2005"
    xmlns:georss="http://www.georss.org/georss"
    xmlns:gml="http://www.opengis.net/gml">
  <id>http://gdata.youtube.com/feeds/videos/AbC123dEfGH</id>
  <published>2008-05-30T09:46:36.000Z</published>
  <updated>2008-06-14T13:22:03.000Z</updated>
  <category scheme="http://gdata.youtube.com/schemas/2007/categories.cat" term="Music" label="Music"/>
  <category scheme="http://gdata.youtube.com/schemas/2007/keywords.cat" term="acoustic"/>
  <category scheme="http://schemas.google.com/g/2005#kind" term="http://gdata.youtube.com/schemas/2007#video"/>
  <title>Acoustic Cover</title>
  <content type="html">&lt;div&gt;Acoustic cover session&lt;/div&gt;</content>
  <author>
    <name>liz</name>
    <uri>http://gdata.youtube.com/feeds/users/liz</uri>
  </author>
  <media:group>
    <media:description>An acoustic cover recorded at home.</media:description>
    <yt:duration seconds="195"/>
    <media:content url="rtsp://rtsp.youtube.com/AbC123dEfGH/video.3gp" yt:format="1" duration="195" type="video/3gpp" isDefault="true"/>
    <media:content url="http://www.youtube.com/v/AbC123dEfGH" yt:format="5" duration="195" type="application/x-shockwave-flash"/>
    <media:player url="http://www.youtube.com/watch?v=AbC123dEfGH"/>
    <media:thumbnail url="http://img.youtube.com/vi/AbC123dEfGH/1.jpg" height="97" width="130" time="00:01:37.500"/>
    <media:thumbnail url="http://img.youtube.com/vi/AbC123dEfGH/0.jpg" height="240" width="320" time="00:03:15"/>
  </media:group>
  <gd:rating min="1" max="5" numRaters="362" average="4.53"/>
  <yt:statistics viewCount="38912" favoriteCount="240"/>
  <yt:position>3</yt:position>
  <media:rating scheme="urn:simple">adult</media:rating>
  <georss:where>
    <gml:Point>
      <gml:pos>37.398529 -122.082397</gml:pos>
    </gml:Point>
  </georss:where>
</entry>`

// SampleVideoEntryNoMedia is a video entry without a media group; it
// must parse to nothing rather than fail.
const SampleVideoEntryNoMedia = `<?xml version="1.0" encoding="UTF-8"?>
<entry xmlns="http://www.w3.org/2005/Atom"
    xmlns:yt="http://gdata.youtube.com/schemas/2007">
  <id>http://gdata.youtube.com/feeds/videos/NoMedia0000</id>
  <published>2008-05-30T09:46:36.000Z</published>
  <updated>2008-06-14T13:22:03.000Z</updated>
  <title>Removed Video</title>
</entry>`

// SampleVideoEntryBadNumbers carries malformed numeric attributes that
// must coerce to their defaults.
const SampleVideoEntryBadNumbers = `<?xml version="1.0" encoding="UTF-8"?>
<entry xmlns="http://www.w3.org/2005/Atom"
    xmlns:media="http://search.yahoo.com/mrss/"
    xmlns:yt="http://gdata.youtube.com/schemas/2007"
    xmlns:gd="http://schemas.google.com/g/2005">
  <id>http://gdata.youtube.com/feeds/videos/BadNums0000</id>
  <title>Odd Metadata</title>
  <media:group>
    <yt:duration seconds="n/a"/>
    <media:content url="http://www.youtube.com/v/BadNums0000" yt:format="99" duration="" type="application/x-shockwave-flash"/>
    <media:player url="http://www.youtube.com/watch?v=BadNums0000"/>
  </media:group>
  <gd:rating min="1" max="5" numRaters="" average="4.2"/>
  <yt:statistics viewCount="lots"/>
</entry>`

// SampleVideoFeed is a collection of three video entries, the second of
// which lacks a media group and must be skipped. The feed-level counts
// report 24 total results.
const SampleVideoFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
    xmlns:media="http://search.yahoo.com/mrss/"
    xmlns:yt="http://gdata.youtube.com/schemas/2007"
    xmlns:gd="http://schemas.google.com/g/2005"
    xmlns:openSearch="http://a9.com/-/spec/opensearchrss/1.0/">
  <id>http://gdata.youtube.com/feeds/api/videos?vq=acoustic</id>
  <updated>2008-07-04T19:51:06.000Z</updated>
  <openSearch:totalResults>24</openSearch:totalResults>
  <openSearch:startIndex>1</openSearch:startIndex>
  <openSearch:itemsPerPage>25</openSearch:itemsPerPage>
  <entry>
    <id>http://gdata.youtube.com/feeds/videos/AbC123dEfGH</id>
    <published>2008-05-30T09:46:36.000Z</published>
    <updated>2008-06-14T13:22:03.000Z</updated>
    <title>Acoustic Cover</title>
    <media:group>
      <media:description>An acoustic cover recorded at home.</media:description>
      <yt:duration seconds="195"/>
      <media:content url="http://www.youtube.com/v/AbC123dEfGH" yt:format="5" duration="195" type="application/x-shockwave-flash" isDefault="true"/>
      <media:player url="http://www.youtube.com/watch?v=AbC123dEfGH"/>
    </media:group>
    <yt:statistics viewCount="38912"/>
  </entry>
  <entry>
    <id>http://gdata.youtube.com/feeds/videos/NoMedia0000</id>
    <published>2008-05-30T09:46:36.000Z</published>
    <updated>2008-06-14T13:22:03.000Z</updated>
    <title>Removed Video</title>
  </entry>
  <entry>
    <id>http://gdata.youtube.com/feeds/videos/XyZ987wVuTS</id>
    <published>2008-06-01T11:02:19.000Z</published>
    <updated>2008-06-20T08:15:44.000Z</updated>
    <title>Live Session</title>
    <media:group>
      <media:description>Live session, one take.</media:description>
      <yt:duration seconds="241"/>
      <media:content url="http://www.youtube.com/v/XyZ987wVuTS" yt:format="5" duration="241" type="application/x-shockwave-flash" isDefault="true"/>
      <media:player url="http://www.youtube.com/watch?v=XyZ987wVuTS"/>
    </media:group>
    <yt:statistics viewCount="1204"/>
  </entry>
</feed>`

// SampleVideoFeedNoCounters lacks the mandatory pagination counters and
// must be a hard parse failure.
const SampleVideoFeedNoCounters = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <id>http://gdata.youtube.com/feeds/api/videos?vq=acoustic</id>
  <updated>2008-07-04T19:51:06.000Z</updated>
</feed>`

// SamplePlaylistEntry is a complete single-playlist document.
const SamplePlaylistEntry = `<?xml version="1.0" encoding="UTF-8"?>
<entry xmlns="http://www.w3.org/2005/Atom"
    xmlns:gd="http://schemas.google.com/g/2005">
  <id>http://gdata.youtube.com/feeds/playlists/ZTUVgYoeN_o</id>
  <published>2007-11-04T17:30:27.000Z</published>
  <updated>2008-07-02T07:26:31.000Z</updated>
  <category scheme="http://gdata.youtube.com/schemas/2007/categories.cat" term="Music" label="Music"/>
  <category scheme="http://gdata.youtube.com/schemas/2007/keywords.cat" term="mix"/>
  <title>Road Trip Mix</title>
  <summary>Songs for the road.</summary>
  <content type="html">&lt;p&gt;Songs for the road.&lt;/p&gt;</content>
  <author>
    <name>liz</name>
    <uri>http://gdata.youtube.com/feeds/users/liz</uri>
  </author>
  <gd:feedLink href="http://gdata.youtube.com/feeds/api/playlists/ZTUVgYoeN_o" countHint="25"/>
</entry>`

// SamplePlaylistFeed is a collection of two playlists.
const SamplePlaylistFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
    xmlns:gd="http://schemas.google.com/g/2005"
    xmlns:openSearch="http://a9.com/-/spec/opensearchrss/1.0/">
  <id>http://gdata.youtube.com/feeds/api/users/liz/playlists</id>
  <updated>2008-07-02T07:26:31.000Z</updated>
  <openSearch:totalResults>2</openSearch:totalResults>
  <openSearch:startIndex>1</openSearch:startIndex>
  <openSearch:itemsPerPage>25</openSearch:itemsPerPage>
  <entry>
    <id>http://gdata.youtube.com/feeds/playlists/ZTUVgYoeN_o</id>
    <published>2007-11-04T17:30:27.000Z</published>
    <updated>2008-07-02T07:26:31.000Z</updated>
    <title>Road Trip Mix</title>
    <summary>Songs for the road.</summary>
    <gd:feedLink href="http://gdata.youtube.com/feeds/api/playlists/ZTUVgYoeN_o" countHint="25"/>
  </entry>
  <entry>
    <id>http://gdata.youtube.com/feeds/playlists/Qq0XvXwXwXw</id>
    <published>2008-01-12T20:11:05.000Z</published>
    <updated>2008-06-30T23:12:40.000Z</updated>
    <title>Covers</title>
    <summary>Covers worth keeping.</summary>
    <gd:feedLink href="http://gdata.youtube.com/feeds/api/playlists/Qq0XvXwXwXw" countHint="8"/>
  </entry>
</feed>`

// SamplePlaylistVideoFeed is a playlist's video collection carrying the
// feed-level playlist id that gets stamped on every video.
const SamplePlaylistVideoFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
    xmlns:media="http://search.yahoo.com/mrss/"
    xmlns:yt="http://gdata.youtube.com/schemas/2007"
    xmlns:openSearch="http://a9.com/-/spec/opensearchrss/1.0/">
  <id>http://gdata.youtube.com/feeds/api/playlists/ZTUVgYoeN_o</id>
  <updated>2008-07-02T07:26:31.000Z</updated>
  <openSearch:totalResults>25</openSearch:totalResults>
  <openSearch:startIndex>1</openSearch:startIndex>
  <openSearch:itemsPerPage>25</openSearch:itemsPerPage>
  <yt:playlistId>ZTUVgYoeN_o</yt:playlistId>
  <entry>
    <id>http://gdata.youtube.com/feeds/videos/AbC123dEfGH</id>
    <title>Acoustic Cover</title>
    <media:group>
      <yt:duration seconds="195"/>
      <media:content url="http://www.youtube.com/v/AbC123dEfGH" yt:format="5" duration="195" type="application/x-shockwave-flash" isDefault="true"/>
      <media:player url="http://www.youtube.com/watch?v=AbC123dEfGH"/>
    </media:group>
    <yt:position>1</yt:position>
  </entry>
</feed>`

// SampleChannelEntry is a complete single-channel document.
const SampleChannelEntry = `<?xml version="1.0" encoding="UTF-8"?>
<entry xmlns="http://www.w3.org/2005/Atom"
    xmlns:gd="http://schemas.google.com/g/2005">
  <id>http://gdata.youtube.com/feeds/api/channels/UC_x5XG1OV2P6uZZ5FSM9Ttw</id>
  <updated>2008-07-02T07:26:31.000Z</updated>
  <category scheme="http://gdata.youtube.com/schemas/2007/channeltypes.cat" term="Comedians" label="Comedians"/>
  <category scheme="http://gdata.youtube.com/schemas/2007/categories.cat" term="Comedy" label="Comedy"/>
  <title>liz's channel</title>
  <summary>Weekly uploads, mostly covers.</summary>
  <author>
    <name>liz</name>
    <uri>http://gdata.youtube.com/feeds/users/liz</uri>
  </author>
  <gd:feedLink href="http://gdata.youtube.com/feeds/api/users/liz/uploads" countHint="87"/>
</entry>`

// SampleChannelFeed is a collection of one channel.
const SampleChannelFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
    xmlns:gd="http://schemas.google.com/g/2005"
    xmlns:openSearch="http://a9.com/-/spec/opensearchrss/1.0/">
  <id>http://gdata.youtube.com/feeds/api/channels?q=covers</id>
  <updated>2008-07-02T07:26:31.000Z</updated>
  <openSearch:totalResults>1</openSearch:totalResults>
  <openSearch:startIndex>1</openSearch:startIndex>
  <openSearch:itemsPerPage>25</openSearch:itemsPerPage>
  <entry>
    <id>http://gdata.youtube.com/feeds/api/channels/UC_x5XG1OV2P6uZZ5FSM9Ttw</id>
    <updated>2008-07-02T07:26:31.000Z</updated>
    <title>liz's channel</title>
    <summary>Weekly uploads, mostly covers.</summary>
    <gd:feedLink href="http://gdata.youtube.com/feeds/api/users/liz/uploads" countHint="87"/>
  </entry>
</feed>`
