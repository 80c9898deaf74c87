package formatting

import (
	"regexp"
	"strconv"
)

// leadingTimeRe finds the first HH:MM (or HH.MM) inside a free-form
// time field like "9:00-10:20".
var leadingTimeRe = regexp.MustCompile(`([01]?\d|2[0-3])[:.]([0-5]\d)`)

// ValidEntryTime reports whether a manually entered time field
// contains at least one parseable HH:MM.
func ValidEntryTime(s string) bool {
	return leadingTimeRe.MatchString(s)
}

// ParseTimeToMinutes returns minutes since midnight for the leading
// time in s, or 0 when nothing parses. Unparsable entries therefore
// sort as earliest; the stable sort keeps their relative input order.
func ParseTimeToMinutes(s string) int {
	m := leadingTimeRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	return h*60 + min
}
