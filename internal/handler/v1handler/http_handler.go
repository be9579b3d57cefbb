package v1handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mconley/parlayleague/internal/config"
	"github.com/mconley/parlayleague/internal/grade"
	"github.com/mconley/parlayleague/internal/scores"
	"github.com/mconley/parlayleague/internal/slate"
	"github.com/mconley/parlayleague/internal/store"
	"github.com/mconley/parlayleague/pkg/request/v1request"
	"github.com/mconley/parlayleague/pkg/view/v1view"
)

func New(cfg *config.Config, st *store.SQLite, provider scores.Provider) *HttpHandler {
	h := &HttpHandler{
		config: cfg,
		store:  st,
		scores: provider,
	}
	h.init()
	return h
}

type HttpHandler struct {
	config *config.Config
	r      *mux.Router
	store  *store.SQLite
	scores scores.Provider
}

func (h *HttpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.r.ServeHTTP(w, r)
}

func (h *HttpHandler) init() {
	h.r = mux.NewRouter()
	h.r.Use(Logging)

	h.r.HandleFunc("/api/games", h.getGamesHandler).Methods("GET")
	h.r.HandleFunc("/api/games", h.saveGamesHandler).Methods("POST")
	h.r.HandleFunc("/api/games/csv", h.uploadSlateHandler).Methods("POST")
	h.r.HandleFunc("/api/picks", h.getPicksHandler).Methods("GET")
	h.r.HandleFunc("/api/picks", h.savePicksHandler).Methods("PUT")
	h.r.HandleFunc("/api/lock", h.getLockHandler).Methods("GET")
	h.r.HandleFunc("/api/lock", h.lockHandler).Methods("POST")
	h.r.HandleFunc("/api/unlock", h.unlockHandler).Methods("POST")
	h.r.HandleFunc("/api/week", h.getWeekHandler).Methods("GET")
	h.r.HandleFunc("/api/week", h.setWeekHandler).Methods("PUT")
	h.r.HandleFunc("/api/results", h.resultsHandler).Methods("GET")
}

func (h *HttpHandler) getGamesHandler(w http.ResponseWriter, r *http.Request) {
	games, err := h.store.Games(r.Context())
	if err != nil {
		http.Error(w, "Failed to get games", http.StatusInternalServerError)
		return
	}
	vGames := make([]v1view.Game, 0, len(games))
	for _, game := range games {
		vGames = append(vGames, v1view.NewGame(game))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vGames)
}

func (h *HttpHandler) saveGamesHandler(w http.ResponseWriter, r *http.Request) {
	var payload v1request.GameList
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	games, err := payload.ToModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.ReplaceGames(r.Context(), games); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "Games saved successfully!",
	})
}

func (h *HttpHandler) uploadSlateHandler(w http.ResponseWriter, r *http.Request) {
	games, err := slate.Parse(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(games) == 0 {
		http.Error(w, "Slate contains no games", http.StatusBadRequest)
		return
	}

	if err := h.store.ReplaceGames(r.Context(), games); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "Games saved successfully!",
		"games":  len(games),
	})
}

func (h *HttpHandler) getPicksHandler(w http.ResponseWriter, r *http.Request) {
	subs, err := h.store.Submissions(r.Context())
	if err != nil {
		http.Error(w, "Failed to get picks", http.StatusInternalServerError)
		return
	}
	vSubs := make([]v1view.Submission, 0, len(subs))
	for _, sub := range subs {
		vSubs = append(vSubs, v1view.NewSubmission(sub))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vSubs)
}

func (h *HttpHandler) savePicksHandler(w http.ResponseWriter, r *http.Request) {
	locked, err := h.store.Locked(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if locked {
		http.Error(w, "Picks are locked for this week", http.StatusForbidden)
		return
	}

	var payload v1request.PickSet
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sub, err := payload.ToModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.SaveSubmission(r.Context(), sub); err != nil {
		if errors.Is(err, store.ErrUnknownGame) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "Picks saved successfully!",
	})
}

func (h *HttpHandler) getLockHandler(w http.ResponseWriter, r *http.Request) {
	locked, err := h.store.Locked(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"locked": locked})
}

func (h *HttpHandler) lockHandler(w http.ResponseWriter, r *http.Request) {
	h.setLock(w, r, true, "Picks locked successfully!")
}

func (h *HttpHandler) unlockHandler(w http.ResponseWriter, r *http.Request) {
	h.setLock(w, r, false, "Picks unlocked successfully!")
}

func (h *HttpHandler) setLock(w http.ResponseWriter, r *http.Request, locked bool, status string) {
	if err := h.store.SetLocked(r.Context(), locked); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}

func (h *HttpHandler) getWeekHandler(w http.ResponseWriter, r *http.Request) {
	week, err := h.store.Week(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"week": week})
}

func (h *HttpHandler) setWeekHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Week int `json:"week"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Week < 1 {
		http.Error(w, "Week must be at least 1: "+strconv.Itoa(payload.Week), http.StatusBadRequest)
		return
	}
	if err := h.store.SetWeek(r.Context(), payload.Week); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "Week updated successfully!"})
}

// resultsHandler fetches external results, grades the league against a
// consistent snapshot, and reports winners. A provider failure is surfaced as
// 502 rather than graded as a week of 0-0 games.
func (h *HttpHandler) resultsHandler(w http.ResponseWriter, r *http.Request) {
	games, subs, err := h.store.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	week, err := h.store.Week(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	results, err := h.scores.Fetch(r.Context())
	if err != nil {
		slog.Error("results fetch failed", "error", err)
		http.Error(w, "Results unavailable, try again later", http.StatusBadGateway)
		return
	}

	verdicts := grade.League(subs, games, results)
	winners := grade.Winners(verdicts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v1view.NewResults(week, winners, verdicts))
}
