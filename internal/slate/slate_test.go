package slate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mconley/parlayleague/pkg/model/v1model"
)

const sampleSheet = `League, Home Team, Away Team, Spread, Over/Under, Time
NFL, Kansas City Chiefs, Buffalo Bills, KC -3.5, O/U 52.5, Sun 1:00 PM
NCAAF, Alabama, Georgia, ALA -2.5, O/U 55, Sat 7:00 PM
`

func TestParseAssignsSequentialIDs(t *testing.T) {
	games, err := Parse(strings.NewReader(sampleSheet))
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, v1model.Game{
		ID:        1,
		League:    "NFL",
		Home:      "Kansas City Chiefs",
		Away:      "Buffalo Bills",
		Spread:    "KC -3.5",
		OverUnder: "O/U 52.5",
		Time:      "Sun 1:00 PM",
	}, games[0])
	assert.Equal(t, 2, games[1].ID)
	assert.Equal(t, "NCAAF", games[1].League)
}

func TestParseSkipsBlankTrailingLines(t *testing.T) {
	games, err := Parse(strings.NewReader(sampleSheet + "\n\n"))
	require.NoError(t, err)
	assert.Len(t, games, 2)
}

func TestParseHeaderOnly(t *testing.T) {
	games, err := Parse(strings.NewReader("League, Home Team, Away Team, Spread, Over/Under, Time\n"))
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestParseEmptyInput(t *testing.T) {
	games, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestParseShortRowYieldsEmptyFields(t *testing.T) {
	sheet := "League, Home Team, Away Team, Spread, Over/Under, Time\nNFL, Kansas City Chiefs, Buffalo Bills\n"
	games, err := Parse(strings.NewReader(sheet))
	require.NoError(t, err)
	require.Len(t, games, 1)

	assert.Equal(t, "Kansas City Chiefs", games[0].Home)
	assert.Empty(t, games[0].Spread)
	assert.Empty(t, games[0].Time)
}

func TestParseTrimsWhitespace(t *testing.T) {
	sheet := "h\n  NFL ,  Kansas City Chiefs ,Buffalo Bills,KC -3.5 , O/U 52.5,Sun 1:00 PM  \n"
	games, err := Parse(strings.NewReader(sheet))
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "NFL", games[0].League)
	assert.Equal(t, "KC -3.5", games[0].Spread)
	assert.Equal(t, "Sun 1:00 PM", games[0].Time)
}
