package decode

import (
	"regexp"
	"strconv"
)

var i4Pattern = regexp.MustCompile(`<i4>\s*(-?\d+)\s*</i4>`)

// Coerce classifies a raw trimmed value span. A span carrying an <i4>
// wrapper parses to a signed int; anything else passes through as the
// literal string. Ampersand-style escapes are NOT decoded; they pass
// through verbatim, matching what the kiosk frontend has always received.
func Coerce(span string) any {
	if m := i4Pattern.FindStringSubmatch(span); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return span
}
