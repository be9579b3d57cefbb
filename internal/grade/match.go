package grade

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mconley/parlayleague/pkg/model/v1model"
)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// cityWords are stripped so common multi-word city variants collapse to the
// same key ("SF 49ers" vs "San Francisco 49ers"). Order matters: "saint"
// must go before "san".
var cityWords = []string{"saint", "new", "los", "san"}

// NormalizeTeam lowercases a team name, strips everything that is not a
// letter or digit, and removes the city filler words.
func NormalizeTeam(name string) string {
	s := nonAlnumRe.ReplaceAllString(strings.ToLower(name), "")
	for _, w := range cityWords {
		s = strings.ReplaceAll(s, w, "")
	}
	return s
}

// MatchResult finds the externally reported result for a slate game. A
// candidate matches when its home and away names each refer to the game's
// teams per teamsMatch. The first candidate in provider order wins; ties
// between genuinely ambiguous short names are an accepted approximation.
// Returns nil when nothing matches.
func MatchResult(game v1model.Game, results []v1model.GameResult) *v1model.GameResult {
	for i := range results {
		if teamsMatch(game.Home, results[i].Home) && teamsMatch(game.Away, results[i].Away) {
			return &results[i]
		}
	}
	return nil
}

// teamsMatch reports whether two team names refer to the same team: either
// the normalized forms are mutual substrings, or one opens with an initials
// abbreviation of the other ("SF 49ers" against "San Francisco 49ers").
func teamsMatch(a, b string) bool {
	na, nb := NormalizeTeam(a), NormalizeTeam(b)
	if na != "" && nb != "" && mutualSubstring(na, nb) {
		return true
	}
	return abbreviates(a, b) || abbreviates(b, a)
}

// abbreviates reports whether short's first word is an initials abbreviation
// of full ("SF" for "San Francisco...") and the remainder of short, if any,
// appears in full ("49ers"). Single-letter abbreviations are rejected as too
// ambiguous.
func abbreviates(short, full string) bool {
	words := strings.Fields(short)
	if len(words) == 0 {
		return false
	}
	abbr := strings.ToLower(words[0])
	if len(abbr) < 2 || !strings.HasPrefix(initials(full), abbr) {
		return false
	}
	rest := NormalizeTeam(strings.Join(words[1:], " "))
	return rest == "" || strings.Contains(NormalizeTeam(full), rest)
}

func mutualSubstring(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
