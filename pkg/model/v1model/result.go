package v1model

// GameResult is a final (or in-progress) score reported by an external
// provider. Team names are the provider's own and are matched back to slate
// games by fuzzy comparison, not by id.
type GameResult struct {
	Home      string
	Away      string
	HomeScore int
	AwayScore int
	Completed bool
}

// PickVerdict is derived at grading time and never stored. Result is nil when
// no external result could be matched to the pick's game.
type PickVerdict struct {
	Pick    Pick
	Game    Game
	Result  *GameResult
	Correct bool
}

type UserVerdict struct {
	Username string
	Correct  int
	Total    int
	Winner   bool
	Picks    []PickVerdict
}
