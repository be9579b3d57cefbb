package v1request

import (
	"errors"

	"github.com/mconley/parlayleague/pkg/model/v1model"
)

type GameList struct {
	Games []Game `json:"games"`
}

type Game struct {
	League    string `json:"league"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	Spread    string `json:"spread"`
	OverUnder string `json:"over_under"`
	Time      string `json:"time"`
}

func (g Game) Validate() error {
	if g.Home == "" || g.Away == "" {
		return errors.New("game is missing a team name")
	}
	return nil
}

// ToModel assigns 1-based ids by position, the same way the CSV upload does.
func (g GameList) ToModel() ([]v1model.Game, error) {
	var games []v1model.Game
	for i, game := range g.Games {
		if err := game.Validate(); err != nil {
			return nil, err
		}
		games = append(games, v1model.Game{
			ID:        i + 1,
			League:    game.League,
			Home:      game.Home,
			Away:      game.Away,
			Spread:    game.Spread,
			OverUnder: game.OverUnder,
			Time:      game.Time,
		})
	}
	return games, nil
}
