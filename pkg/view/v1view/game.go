package v1view

import "github.com/mconley/parlayleague/pkg/model/v1model"

type Game struct {
	ID        int    `json:"id"`
	League    string `json:"league"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	Spread    string `json:"spread"`
	OverUnder string `json:"over_under"`
	Time      string `json:"time"`
}

func NewGame(g v1model.Game) Game {
	return Game{
		ID:        g.ID,
		League:    g.League,
		Home:      g.Home,
		Away:      g.Away,
		Spread:    g.Spread,
		OverUnder: g.OverUnder,
		Time:      g.Time,
	}
}

type Pick struct {
	GameID   int    `json:"gameId"`
	PickType string `json:"pickType"`
}

type Submission struct {
	Username string `json:"username"`
	Picks    []Pick `json:"picks"`
}

func NewSubmission(s v1model.Submission) Submission {
	sub := Submission{Username: s.Username, Picks: []Pick{}}
	for _, p := range s.Picks {
		sub.Picks = append(sub.Picks, Pick{GameID: p.GameID, PickType: string(p.Type)})
	}
	return sub
}
