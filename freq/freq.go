// Package freq classifies ARFCN/SSB frequency values found in radio
// network configuration exports.
package freq

import (
	"regexp"
	"strconv"
	"strings"
)

// N77 band boundaries, inclusive.
const (
	N77Min = 646600
	N77Max = 660000
)

var (
	leadingRE = regexp.MustCompile(`^\d+`)
	// Frequency tokens are runs of at least five digits; shorter runs are
	// bandwidth/offset fields of a composite reference, never a carrier.
	tokenRE = regexp.MustCompile(`\d{5,}`)
)

// Parse interprets a raw cell value as an integer frequency. It accepts
// plain integers, float renderings such as "646600.0" and composite ids
// such as "652000-30-20-0-1" (leading token). The second return is false
// when no frequency can be extracted; Parse never fails hard.
func Parse(v string) (int, bool) {
	s := strings.TrimSpace(v)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	if m := leadingRE.FindString(s); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n, true
		}
	}
	return 0, false
}

// IsN77 reports whether the value parses to a frequency inside the N77
// band [646600, 660000].
func IsN77(v string) bool {
	n, ok := Parse(v)
	return ok && n >= N77Min && n <= N77Max
}

// Embedded extracts every frequency token embedded in a composite
// reference string (e.g. a gUtranFreqRef pointing at several
// GUtranSyncSignalFrequency instances). Tokens keep their exact textual
// form so callers can compare them against configured values as strings.
func Embedded(v string) map[string]bool {
	out := map[string]bool{}
	for _, tok := range tokenRE.FindAllString(v, -1) {
		out[tok] = true
	}
	return out
}
