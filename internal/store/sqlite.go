package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mconley/parlayleague/pkg/model/v1model"
)

// ErrUnknownGame is returned when a submitted pick references a game that is
// not on the current slate.
var ErrUnknownGame = errors.New("pick references an unknown game")

const schema = `
CREATE TABLE IF NOT EXISTS games (
    id INTEGER PRIMARY KEY,
    league TEXT NOT NULL DEFAULT '',
    home TEXT NOT NULL DEFAULT '',
    away TEXT NOT NULL DEFAULT '',
    spread TEXT NOT NULL DEFAULT '',
    over_under TEXT NOT NULL DEFAULT '',
    game_time TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS picks (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    game_id INTEGER NOT NULL,
    pick_type TEXT NOT NULL CHECK (pick_type IN ('spread', 'over', 'under')),
    slot INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_picks_username ON picks(username);

CREATE TABLE IF NOT EXISTS config (
    name TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

INSERT OR IGNORE INTO config (name, value) VALUES ('isLocked', '0');
INSERT OR IGNORE INTO config (name, value) VALUES ('week', '1');
`

// The default slate shown before an odds sheet has been uploaded.
var sampleSlate = []v1model.Game{
	{ID: 1, League: "NFL", Home: "Kansas City Chiefs", Away: "Buffalo Bills", Spread: "KC -3.5", OverUnder: "O/U 52.5", Time: "Sun 1:00 PM"},
	{ID: 2, League: "NFL", Home: "San Francisco 49ers", Away: "Dallas Cowboys", Spread: "SF -6", OverUnder: "O/U 48.5", Time: "Sun 4:25 PM"},
	{ID: 3, League: "NCAAF", Home: "Alabama", Away: "Georgia", Spread: "ALA -2.5", OverUnder: "O/U 55", Time: "Sat 7:00 PM"},
	{ID: 4, League: "NFL", Home: "Philadelphia Eagles", Away: "New York Giants", Spread: "PHI -10", OverUnder: "O/U 45", Time: "Sun 1:00 PM"},
	{ID: 5, League: "NCAAF", Home: "Michigan", Away: "Ohio State", Spread: "OSU -3", OverUnder: "O/U 50.5", Time: "Sat 12:00 PM"},
}

// SQLite holds the league's week state in an in-process, memory-only
// database. Nothing survives a restart; the league runs one week at a time
// and a new upload replaces the slate wholesale.
type SQLite struct {
	db *sqlx.DB
}

func NewSQLite() (*SQLite, error) {
	// A uniquely named shared-cache memory DB: every pooled connection must
	// see the same database, and separate store instances must not.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.seedSlate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) seedSlate() error {
	var count int
	if err := s.db.Get(&count, `SELECT COUNT(*) FROM games`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.ReplaceGames(context.Background(), sampleSlate)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Games(ctx context.Context) ([]v1model.Game, error) {
	var games []v1model.Game
	err := s.db.SelectContext(ctx, &games,
		`SELECT id, league, home, away, spread, over_under, game_time FROM games ORDER BY id`)
	return games, err
}

// ReplaceGames swaps the slate wholesale. Existing submissions are kept;
// picks that reference ids missing from the new slate are skipped at grading
// time.
func (s *SQLite) ReplaceGames(ctx context.Context, games []v1model.Game) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return err
	}

	stmt, err := tx.PrepareNamedContext(ctx,
		`INSERT INTO games (id, league, home, away, spread, over_under, game_time)
		 VALUES (:id, :league, :home, :away, :spread, :over_under, :game_time)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, game := range games {
		if _, err := stmt.ExecContext(ctx, game); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SaveSubmission stores a user's parlay, replacing any earlier submission
// under the same name.
func (s *SQLite) SaveSubmission(ctx context.Context, sub v1model.Submission) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, pick := range sub.Picks {
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			`SELECT EXISTS(SELECT 1 FROM games WHERE id = ?)`, pick.GameID); err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("game %d: %w", pick.GameID, ErrUnknownGame)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM picks WHERE username = ?`, sub.Username); err != nil {
		return err
	}

	stmt, err := tx.PreparexContext(ctx,
		`INSERT INTO picks (id, username, game_id, pick_type, slot) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for slot, pick := range sub.Picks {
		if _, err := stmt.ExecContext(ctx, uuid.NewString(), sub.Username, pick.GameID, string(pick.Type), slot); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLite) Submissions(ctx context.Context) ([]v1model.Submission, error) {
	return submissions(ctx, s.db)
}

// Snapshot reads the slate and all submissions in a single transaction so
// grading runs against a consistent view even if a submission lands
// mid-grade.
func (s *SQLite) Snapshot(ctx context.Context) ([]v1model.Game, []v1model.Submission, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	var games []v1model.Game
	if err := tx.SelectContext(ctx, &games,
		`SELECT id, league, home, away, spread, over_under, game_time FROM games ORDER BY id`); err != nil {
		return nil, nil, err
	}

	subs, err := submissions(ctx, tx)
	if err != nil {
		return nil, nil, err
	}
	return games, subs, tx.Commit()
}

type queryer interface {
	QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
}

func submissions(ctx context.Context, q queryer) ([]v1model.Submission, error) {
	rows, err := q.QueryxContext(ctx,
		`SELECT username, game_id, pick_type FROM picks ORDER BY username, slot`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []v1model.Submission
	for rows.Next() {
		var username, pickType string
		var gameID int
		if err := rows.Scan(&username, &gameID, &pickType); err != nil {
			return nil, err
		}
		pick := v1model.Pick{GameID: gameID, Type: v1model.PickType(pickType)}
		if len(subs) > 0 && subs[len(subs)-1].Username == username {
			last := &subs[len(subs)-1]
			last.Picks = append(last.Picks, pick)
			continue
		}
		subs = append(subs, v1model.Submission{Username: username, Picks: []v1model.Pick{pick}})
	}
	return subs, rows.Err()
}

func (s *SQLite) Locked(ctx context.Context) (bool, error) {
	v, err := s.getConfig(ctx, "isLocked")
	if err != nil {
		return false, err
	}
	return v == "1", nil
}

func (s *SQLite) SetLocked(ctx context.Context, locked bool) error {
	v := "0"
	if locked {
		v = "1"
	}
	return s.setConfig(ctx, "isLocked", v)
}

func (s *SQLite) Week(ctx context.Context) (int, error) {
	v, err := s.getConfig(ctx, "week")
	if err != nil {
		return 0, err
	}
	week, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("bad week value %q: %w", v, err)
	}
	return week, nil
}

func (s *SQLite) SetWeek(ctx context.Context, week int) error {
	return s.setConfig(ctx, "week", strconv.Itoa(week))
}

func (s *SQLite) getConfig(ctx context.Context, name string) (string, error) {
	var v string
	err := s.db.GetContext(ctx, &v, `SELECT value FROM config WHERE name = ?`, name)
	return v, err
}

func (s *SQLite) setConfig(ctx context.Context, name, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO config (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`, name, value)
	return err
}
