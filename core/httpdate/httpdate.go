// Package httpdate converts between Unix-second instants and the textual
// HTTP-date forms of RFC 7231 §7.1.1.1. It always produces the preferred
// RFC 1123 GMT form and accepts all three historic grammars on input.
//
// Parsed calendar fields are interpreted as UTC. The zone abbreviation
// carried by the first two grammars (typically GMT) is honored at offset
// zero; the asctime grammar carries no zone and is read as UTC.
package httpdate

import "time"

// rfc1123GMT is the preferred form with a literal GMT suffix. time.RFC1123
// would render the zone name of the instant (UTC for Unix seconds), which
// is not valid on the wire.
const rfc1123GMT = "Mon, 02 Jan 2006 15:04:05 GMT"

// The three accepted grammars, in the order RFC 7231 lists them.
var parseLayouts = [...]string{
	time.RFC1123, // Sun, 06 Nov 1994 08:49:37 GMT
	time.RFC850,  // Sunday, 06-Nov-94 08:49:37 GMT
	time.ANSIC,   // Sun Nov  6 08:49:37 1994
}

// Format renders instant (Unix seconds) in the preferred RFC 1123 GMT form
// using UTC calendar fields. The empty string is the documented failure
// sentinel for an unconvertible instant; no int64 second count triggers it
// on this platform.
func Format(instant int64) string {
	return time.Unix(instant, 0).UTC().Format(rfc1123GMT)
}

// AppendFormat appends the preferred form of instant to dst and returns the
// extended slice.
func AppendFormat(dst []byte, instant int64) []byte {
	return time.Unix(instant, 0).UTC().AppendFormat(dst, rfc1123GMT)
}

// Parse converts an HTTP-date to Unix seconds. The three grammars are tried
// in order and each attempt parses the original text fresh; the whole input
// must match. The second result distinguishes a malformed input from a
// legitimately zero instant.
func Parse(text string) (int64, bool) {
	if text == "" {
		return 0, false
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.Unix(), true
		}
	}
	return 0, false
}

// ParseInstant is the sentinel-style wrapper around Parse: zero on failure.
// Callers that must tell the epoch instant from a parse failure use Parse.
func ParseInstant(text string) int64 {
	instant, _ := Parse(text)
	return instant
}

// Now formats the current wall-clock time.
func Now() string {
	return Format(time.Now().Unix())
}
