package gdata

import "strconv"

// Format names a video encoding/quality variant. The feed reports
// variants as numeric codes; unrecognized codes decode to FormatUnknown
// rather than failing the parse.
type Format int

const (
	// FormatUnknown is the explicit fallback for unrecognized codes.
	FormatUnknown Format = iota
	// FormatMobile is the RTSP 3GP stream for mobile devices.
	FormatMobile
	// FormatSDFlash is the embeddable SWF player stream.
	FormatSDFlash
	// FormatSDStream is the standard-definition RTSP MPEG-4 stream.
	FormatSDStream
	// FormatSDProgressive is the standard-definition progressive MP4.
	FormatSDProgressive
	// FormatHD is the high-definition stream.
	FormatHD
)

// formatByCode is the fixed code -> variant lookup table.
var formatByCode = map[int]Format{
	1: FormatMobile,
	5: FormatSDFlash,
	6: FormatSDStream,
	7: FormatSDProgressive,
	8: FormatHD,
}

// codeByFormat is the reverse of formatByCode, used when a request
// builder emits a format filter.
var codeByFormat = map[Format]int{
	FormatMobile:        1,
	FormatSDFlash:       5,
	FormatSDStream:      6,
	FormatSDProgressive: 7,
	FormatHD:            8,
}

// FormatByCode decodes a feed format code. Unrecognized codes map to
// FormatUnknown.
func FormatByCode(code int) Format {
	if f, ok := formatByCode[code]; ok {
		return f
	}
	return FormatUnknown
}

// Code returns the numeric feed code for the format, 0 for
// FormatUnknown.
func (f Format) Code() int {
	return codeByFormat[f]
}

func (f Format) String() string {
	switch f {
	case FormatMobile:
		return "mobile"
	case FormatSDFlash:
		return "sd-flash"
	case FormatSDStream:
		return "sd-stream"
	case FormatSDProgressive:
		return "sd-progressive"
	case FormatHD:
		return "hd"
	default:
		return "unknown(" + strconv.Itoa(int(f)) + ")"
	}
}
