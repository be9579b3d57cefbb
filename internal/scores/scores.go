// Package scores fetches final scores from external providers and normalizes
// them to the GameResult shape the grader consumes. Fetch failures are loud:
// a week with no results is categorically different from a week of 0-0 ties,
// and callers must be able to tell them apart.
package scores

import (
	"context"
	"net/http"
	"time"

	"github.com/mconley/parlayleague/pkg/model/v1model"
)

// Provider is the external collaborator that reports game results. The core
// does not care which provider backs it.
type Provider interface {
	Fetch(ctx context.Context) ([]v1model.GameResult, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
