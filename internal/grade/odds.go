package grade

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Odds sheets are free text with no guaranteed schema, so both parsers
// degrade to ok=false instead of returning errors; one malformed row must
// never block grading of the rest of the week.

var (
	spreadRe    = regexp.MustCompile(`(.+?)\s*([-+]?\d+\.?\d*)`)
	overUnderRe = regexp.MustCompile(`(\d+\.?\d*)`)
)

// ParseSpread extracts the favored-team token and the handicap magnitude from
// a spread string such as "KC -3.5". The sign is discarded; the magnitude is
// always the absolute value of the first number found.
func ParseSpread(s string) (team string, magnitude float64, ok bool) {
	m := spreadRe.FindStringSubmatch(s)
	if m == nil {
		return "", 0, false
	}
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return "", 0, false
	}
	return strings.TrimSpace(m[1]), math.Abs(v), true
}

// ParseOverUnder extracts the total threshold from a string such as
// "O/U 52.5". The first decimal number wins.
func ParseOverUnder(s string) (float64, bool) {
	m := overUnderRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
