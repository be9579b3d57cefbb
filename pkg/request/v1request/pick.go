package v1request

import (
	"errors"
	"fmt"

	"github.com/mconley/parlayleague/pkg/model/v1model"
)

type PickSet struct {
	Username string `json:"username"`
	Picks    []Pick `json:"picks"`
}

type Pick struct {
	GameID   int    `json:"gameId"`
	PickType string `json:"pickType"`
}

// Validate enforces the parlay shape: a name, exactly three picks, known pick
// types, and no repeated (game, type) pair. Two different pick types on the
// same game are fine.
func (p PickSet) Validate() error {
	if p.Username == "" {
		return errors.New("username is required")
	}
	if len(p.Picks) != v1model.ParlaySize {
		return fmt.Errorf("a parlay is exactly %d picks, got %d", v1model.ParlaySize, len(p.Picks))
	}
	seen := make(map[Pick]bool, len(p.Picks))
	for _, pick := range p.Picks {
		if !v1model.PickType(pick.PickType).Valid() {
			return fmt.Errorf("unknown pick type %q", pick.PickType)
		}
		if seen[pick] {
			return fmt.Errorf("duplicate pick on game %d (%s)", pick.GameID, pick.PickType)
		}
		seen[pick] = true
	}
	return nil
}

func (p PickSet) ToModel() (v1model.Submission, error) {
	if err := p.Validate(); err != nil {
		return v1model.Submission{}, err
	}
	sub := v1model.Submission{Username: p.Username}
	for _, pick := range p.Picks {
		sub.Picks = append(sub.Picks, v1model.Pick{
			GameID: pick.GameID,
			Type:   v1model.PickType(pick.PickType),
		})
	}
	return sub, nil
}
