package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mconley/parlayleague/pkg/model/v1model"
)

func TestNormalizeTeam(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"San Francisco 49ers", "francisco49ers"},
		{"SF 49ers", "sf49ers"},
		{"New Orleans Saints", "orleanss"},
		{"Los Angeles Rams", "angelesrams"},
		{"Los Angeles Chargers", "angeleschargers"},
		{"Kansas City Chiefs", "kansascitychiefs"},
		{"  BUFFALO bills  ", "buffalobills"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTeam(tt.in), "NormalizeTeam(%q)", tt.in)
	}
}

func TestTeamsMatchAbbreviations(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"SF 49ers", "San Francisco 49ers", true},
		{"San Francisco 49ers", "SF 49ers", true},
		{"LA Rams", "Los Angeles Rams", true},
		{"KC", "Kansas City Chiefs", true},
		{"Alabama", "Alabama Crimson Tide", true},
		{"SF 49ers", "Seattle Seahawks", false},
		{"Dallas Cowboys", "Denver Broncos", false},
		{"KC", "Buffalo Bills", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, teamsMatch(tt.a, tt.b), "teamsMatch(%q, %q)", tt.a, tt.b)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"San Francisco 49ers", "sf4"},
		{"Kansas City Chiefs", "kcc"},
		{"Équipe Montréal", "ém"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, initials(tt.in), "initials(%q)", tt.in)
	}
}

func TestMatchResultNameVariants(t *testing.T) {
	game := v1model.Game{
		ID:   1,
		Home: "SF 49ers",
		Away: "Dallas Cowboys",
	}
	results := []v1model.GameResult{
		{Home: "Kansas City Chiefs", Away: "Buffalo Bills", HomeScore: 27, AwayScore: 20, Completed: true},
		{Home: "San Francisco 49ers", Away: "Dallas Cowboys", HomeScore: 30, AwayScore: 10, Completed: true},
	}

	got := MatchResult(game, results)
	assert.NotNil(t, got)
	assert.Equal(t, 30, got.HomeScore)
}

func TestMatchResultCaseAndPunctuation(t *testing.T) {
	game := v1model.Game{Home: "kansas-city CHIEFS!", Away: "Buffalo Bills"}
	results := []v1model.GameResult{
		{Home: "Kansas City Chiefs", Away: "Buffalo Bills"},
	}
	assert.NotNil(t, MatchResult(game, results))
}

func TestMatchResultBothSidesMustMatch(t *testing.T) {
	game := v1model.Game{Home: "Kansas City Chiefs", Away: "Buffalo Bills"}
	results := []v1model.GameResult{
		{Home: "Kansas City Chiefs", Away: "Denver Broncos"},
	}
	assert.Nil(t, MatchResult(game, results))
}

func TestMatchResultNoCandidates(t *testing.T) {
	game := v1model.Game{Home: "Alabama", Away: "Georgia"}
	assert.Nil(t, MatchResult(game, nil))
}

func TestMatchResultFirstCandidateWins(t *testing.T) {
	game := v1model.Game{Home: "Alabama", Away: "Georgia"}
	results := []v1model.GameResult{
		{Home: "Alabama", Away: "Georgia", HomeScore: 21, AwayScore: 17},
		{Home: "Alabama", Away: "Georgia", HomeScore: 3, AwayScore: 0},
	}
	got := MatchResult(game, results)
	assert.NotNil(t, got)
	assert.Equal(t, 21, got.HomeScore)
}
