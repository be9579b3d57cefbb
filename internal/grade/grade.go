package grade

import (
	"sort"

	"github.com/mconley/parlayleague/pkg/model/v1model"
)

// League grades every submission against an immutable snapshot of the slate
// and the fetched results. It is a pure function: callers own the snapshot,
// and nothing here mutates it. A pick whose game id is missing from the
// slate is skipped silently, which caps that user's correct count below a
// perfect parlay.
func League(subs []v1model.Submission, games []v1model.Game, results []v1model.GameResult) map[string]v1model.UserVerdict {
	byID := make(map[int]v1model.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	verdicts := make(map[string]v1model.UserVerdict, len(subs))
	for _, sub := range subs {
		verdict := v1model.UserVerdict{
			Username: sub.Username,
			Total:    len(sub.Picks),
		}
		for _, pick := range sub.Picks {
			game, found := byID[pick.GameID]
			if !found {
				continue
			}
			result := MatchResult(game, results)
			correct := Evaluate(pick, game, result)
			if correct {
				verdict.Correct++
			}
			verdict.Picks = append(verdict.Picks, v1model.PickVerdict{
				Pick:    pick,
				Game:    game,
				Result:  result,
				Correct: correct,
			})
		}
		verdict.Winner = verdict.Correct == v1model.ParlaySize
		verdicts[sub.Username] = verdict
	}
	return verdicts
}

// Winners lists the users who swept their parlay, sorted by name.
func Winners(verdicts map[string]v1model.UserVerdict) []string {
	winners := []string{}
	for name, v := range verdicts {
		if v.Winner {
			winners = append(winners, name)
		}
	}
	sort.Strings(winners)
	return winners
}
