package slate

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mconley/parlayleague/pkg/model/v1model"
)

// Column order of an uploaded odds sheet. The first row is a header and is
// always skipped.
const (
	colLeague = iota
	colHome
	colAway
	colSpread
	colOverUnder
	colTime
)

// Parse reads a weekly odds sheet and returns the slate with 1-based ids
// assigned by row position. Blank rows are skipped, fields are trimmed, and
// short rows yield empty fields rather than an error; only an unreadable
// stream fails.
func Parse(r io.Reader) ([]v1model.Game, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read slate: %w", err)
	}
	if len(records) > 0 {
		records = records[1:] // header
	}

	var games []v1model.Game
	for _, rec := range records {
		if blank(rec) {
			continue
		}
		games = append(games, v1model.Game{
			ID:        len(games) + 1,
			League:    field(rec, colLeague),
			Home:      field(rec, colHome),
			Away:      field(rec, colAway),
			Spread:    field(rec, colSpread),
			OverUnder: field(rec, colOverUnder),
			Time:      field(rec, colTime),
		})
	}
	return games, nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
