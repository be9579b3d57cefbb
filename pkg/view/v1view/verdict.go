package v1view

import (
	"sort"

	"github.com/mconley/parlayleague/pkg/model/v1model"
)

type PickVerdict struct {
	GameID    int    `json:"gameId"`
	PickType  string `json:"pickType"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	Matched   bool   `json:"matched"`
	Correct   bool   `json:"correct"`
	HomeScore *int   `json:"homeScore,omitempty"`
	AwayScore *int   `json:"awayScore,omitempty"`
}

type UserVerdict struct {
	Username string        `json:"username"`
	Correct  int           `json:"correct"`
	Total    int           `json:"total"`
	Winner   bool          `json:"winner"`
	Picks    []PickVerdict `json:"picks"`
}

type Results struct {
	Week     int           `json:"week"`
	Winners  []string      `json:"winners"`
	Verdicts []UserVerdict `json:"verdicts"`
}

// NewResults flattens the grading output into a stable, display-ready shape,
// ordered by username.
func NewResults(week int, winners []string, verdicts map[string]v1model.UserVerdict) Results {
	out := Results{Week: week, Winners: winners, Verdicts: []UserVerdict{}}

	names := make([]string, 0, len(verdicts))
	for name := range verdicts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := verdicts[name]
		uv := UserVerdict{
			Username: v.Username,
			Correct:  v.Correct,
			Total:    v.Total,
			Winner:   v.Winner,
			Picks:    []PickVerdict{},
		}
		for _, pv := range v.Picks {
			view := PickVerdict{
				GameID:   pv.Pick.GameID,
				PickType: string(pv.Pick.Type),
				Home:     pv.Game.Home,
				Away:     pv.Game.Away,
				Matched:  pv.Result != nil,
				Correct:  pv.Correct,
			}
			if pv.Result != nil {
				home, away := pv.Result.HomeScore, pv.Result.AwayScore
				view.HomeScore = &home
				view.AwayScore = &away
			}
			uv.Picks = append(uv.Picks, view)
		}
		out.Verdicts = append(out.Verdicts, uv)
	}
	return out
}
