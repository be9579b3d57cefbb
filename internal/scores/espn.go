package scores

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/mconley/parlayleague/pkg/model/v1model"
)

const defaultESPNBaseURL = "https://site.api.espn.com"

var espnScoreboards = []string{
	"football/nfl",
	"football/college-football",
}

// ESPN fetches the public scoreboard feed. It is free and needs no key, but
// the schema is unofficial and can change without notice, so decoding is
// deliberately tolerant: events that do not carry the expected shape are
// dropped rather than failing the whole fetch.
type ESPN struct {
	baseURL    string
	httpClient *http.Client
}

func NewESPN(baseURL string) *ESPN {
	if baseURL == "" {
		baseURL = defaultESPNBaseURL
	}
	return &ESPN{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: newHTTPClient(),
	}
}

type espnScoreboard struct {
	Events []struct {
		ID     string `json:"id"`
		Status struct {
			Type struct {
				Completed   bool   `json:"completed"`
				Description string `json:"description"`
			} `json:"type"`
		} `json:"status"`
		Competitions []struct {
			Competitors []struct {
				HomeAway string `json:"homeAway"`
				Score    string `json:"score"`
				Team     struct {
					DisplayName string `json:"displayName"`
				} `json:"team"`
			} `json:"competitors"`
		} `json:"competitions"`
	} `json:"events"`
}

func (p *ESPN) Fetch(ctx context.Context) ([]v1model.GameResult, error) {
	var results []v1model.GameResult
	for _, board := range espnScoreboards {
		sb, err := p.fetchScoreboard(ctx, board)
		if err != nil {
			return nil, fmt.Errorf("fetch %s scoreboard: %w", board, err)
		}
		results = append(results, flattenScoreboard(sb)...)
	}
	return results, nil
}

func (p *ESPN) fetchScoreboard(ctx context.Context, board string) (*espnScoreboard, error) {
	u := fmt.Sprintf("%s/apis/site/v2/sports/%s/scoreboard", p.baseURL, board)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var sb espnScoreboard
	if err := json.NewDecoder(resp.Body).Decode(&sb); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &sb, nil
}

func flattenScoreboard(sb *espnScoreboard) []v1model.GameResult {
	var results []v1model.GameResult
	for _, event := range sb.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		var home, away string
		var homeScore, awayScore int
		for _, c := range event.Competitions[0].Competitors {
			switch c.HomeAway {
			case "home":
				home = c.Team.DisplayName
				homeScore = parseScore(c.Score)
			case "away":
				away = c.Team.DisplayName
				awayScore = parseScore(c.Score)
			}
		}
		if home == "" || away == "" {
			continue
		}
		results = append(results, v1model.GameResult{
			Home:      home,
			Away:      away,
			HomeScore: homeScore,
			AwayScore: awayScore,
			Completed: event.Status.Type.Completed,
		})
	}
	return results
}

func parseScore(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
