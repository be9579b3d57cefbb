package grade

import (
	"github.com/mconley/parlayleague/pkg/model/v1model"
)

// Evaluate grades a single pick against a matched result. A nil result or an
// unparseable odds string grades the pick incorrect; it never errors. Pushes
// (exact covers and exact totals) are losses: all comparisons are strict.
func Evaluate(pick v1model.Pick, game v1model.Game, result *v1model.GameResult) bool {
	if result == nil {
		return false
	}

	scoreDiff := result.HomeScore - result.AwayScore

	switch pick.Type {
	case v1model.PickSpread:
		team, magnitude, ok := ParseSpread(game.Spread)
		if !ok {
			return false
		}
		if favoredIsHome(team, game.Home) {
			return float64(scoreDiff) > magnitude
		}
		return float64(scoreDiff) < -magnitude

	case v1model.PickOver:
		threshold, ok := ParseOverUnder(game.OverUnder)
		if !ok {
			return false
		}
		return float64(result.HomeScore+result.AwayScore) > threshold

	case v1model.PickUnder:
		threshold, ok := ParseOverUnder(game.OverUnder)
		if !ok {
			return false
		}
		return float64(result.HomeScore+result.AwayScore) < threshold
	}

	return false
}

// favoredIsHome decides whether the spread token names the home team. Odds
// sheets abbreviate ("KC" for "Kansas City Chiefs", "ALA" for "Alabama"), so
// the comparison accepts the same abbreviation forms the result matcher does.
func favoredIsHome(token string, home string) bool {
	return token == home || teamsMatch(token, home)
}
