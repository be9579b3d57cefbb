package scores

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const espnNFLBody = `{
  "events": [
    {
      "id": "401671789",
      "status": {"type": {"completed": true, "description": "Final"}},
      "competitions": [
        {
          "competitors": [
            {"homeAway": "home", "score": "31", "team": {"displayName": "San Francisco 49ers"}},
            {"homeAway": "away", "score": "17", "team": {"displayName": "Dallas Cowboys"}}
          ]
        }
      ]
    },
    {
      "id": "401671790",
      "status": {"type": {"completed": false, "description": "Scheduled"}},
      "competitions": []
    }
  ]
}`

const espnCFBBody = `{
  "events": [
    {
      "id": "401628455",
      "status": {"type": {"completed": true, "description": "Final"}},
      "competitions": [
        {
          "competitors": [
            {"homeAway": "home", "score": "28", "team": {"displayName": "Alabama Crimson Tide"}},
            {"homeAway": "away", "score": "24", "team": {"displayName": "Georgia Bulldogs"}}
          ]
        }
      ]
    }
  ]
}`

func newESPNServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, "gone fishing", status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/apis/site/v2/sports/football/nfl/scoreboard":
			fmt.Fprint(w, espnNFLBody)
		case "/apis/site/v2/sports/football/college-football/scoreboard":
			fmt.Fprint(w, espnCFBBody)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestESPNFetch(t *testing.T) {
	srv := newESPNServer(t, http.StatusOK)
	defer srv.Close()

	p := NewESPN(srv.URL)
	results, err := p.Fetch(context.Background())
	require.NoError(t, err)

	// The shapeless scheduled event is dropped; both boards contribute.
	require.Len(t, results, 2)
	assert.Equal(t, "San Francisco 49ers", results[0].Home)
	assert.Equal(t, 31, results[0].HomeScore)
	assert.Equal(t, 17, results[0].AwayScore)
	assert.True(t, results[0].Completed)
	assert.Equal(t, "Alabama Crimson Tide", results[1].Home)
	assert.Equal(t, "Georgia Bulldogs", results[1].Away)
}

func TestESPNFetchPropagatesProviderErrors(t *testing.T) {
	srv := newESPNServer(t, http.StatusServiceUnavailable)
	defer srv.Close()

	p := NewESPN(srv.URL)
	_, err := p.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
