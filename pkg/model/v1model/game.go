package v1model

type PickType string

const (
	PickSpread PickType = "spread"
	PickOver   PickType = "over"
	PickUnder  PickType = "under"
)

func (t PickType) Valid() bool {
	switch t {
	case PickSpread, PickOver, PickUnder:
		return true
	}
	return false
}

// Game is one row of the weekly slate. Spread and OverUnder are kept as the
// free text the odds sheet carried ("KC -3.5", "O/U 52.5"); parsing happens
// at grading time.
type Game struct {
	ID        int    `db:"id"`
	League    string `db:"league"`
	Home      string `db:"home"`
	Away      string `db:"away"`
	Spread    string `db:"spread"`
	OverUnder string `db:"over_under"`
	Time      string `db:"game_time"`
}

type Pick struct {
	GameID int      `db:"game_id"`
	Type   PickType `db:"pick_type"`
}

// Submission is one user's parlay: exactly three picks, in the order they
// were chosen. Resubmitting under the same name replaces the old entry.
type Submission struct {
	Username string
	Picks    []Pick
}

// ParlaySize is the number of picks in a parlay; a perfect week hits all of
// them.
const ParlaySize = 3
