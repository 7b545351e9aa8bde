// Package httpapi is a thin HTTP driver wrapping the core tick loop: it
// builds a World, seeds a PRNG, ticks one game to completion per request,
// and returns the resulting event tag feed — the "host loop" described in
// spec.md §6, kept entirely outside internal/sim.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/baseball-sim/sim-core/config"
	"github.com/baseball-sim/sim-core/internal/entities"
	"github.com/baseball-sim/sim-core/internal/rng"
	"github.com/baseball-sim/sim-core/internal/sim"
	"github.com/baseball-sim/sim-core/internal/weather"
	"github.com/baseball-sim/sim-core/store"
)

// Server is the HTTP driver: router, config, and an optional persistence
// store (snapshot/event-feed saves are skipped entirely when nil).
type Server struct {
	config     *config.Config
	store      *store.Store
	router     *mux.Router
	httpServer *http.Server

	mu    sync.RWMutex
	games map[uuid.UUID][]string
}

// NewServer builds a Server with routes registered and middleware applied.
// st may be nil — persistence is an optional extra, not required for the
// core request/response path.
func NewServer(cfg *config.Config, st *store.Store) *Server {
	s := &Server{
		config: cfg,
		store:  st,
		router: mux.NewRouter(),
		games:  make(map[uuid.UUID][]string),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/games", s.startGameHandler).Methods(http.MethodPost)
	s.router.HandleFunc("/games/{id}/events", s.gameEventsHandler).Methods(http.MethodGet)
}

// handler wraps s.router with the teacher's request-logging and CORS
// middleware (main.go's loggingMiddleware, upgraded to gorilla/handlers and
// rs/cors per SPEC_FULL.md's DOMAIN STACK).
func (s *Server) handler() http.Handler {
	logged := handlers.LoggingHandler(logWriter{}, s.router)
	return cors.Default().Handler(logged)
}

// logWriter adapts the charmbracelet logger used elsewhere in the driver
// layer to the io.Writer gorilla/handlers.LoggingHandler expects.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	logAccess(string(p))
	return len(p), nil
}

// Start binds and serves the HTTP API.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains in-flight requests and closes the store.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.store != nil {
		s.store.Close()
	}
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"time":   time.Now().UTC(),
	})
}

// startGameRequest is the minimal input needed to stand up a World and play
// one game — full roster ingestion is explicitly out of core scope
// (spec.md §1), so this endpoint generates its two teams the same way the
// original implementation's demo driver does (World.GenTeam).
type startGameRequest struct {
	SeedA           uint64  `json:"seed_a"`
	SeedB           uint64  `json:"seed_b"`
	Day             int     `json:"day"`
	SeasonRuleset   uint8   `json:"season_ruleset"`
	WeatherOverride *int    `json:"weather_override,omitempty"`
	HomeTeamName    string  `json:"home_team_name"`
	AwayTeamName    string  `json:"away_team_name"`
}

type startGameResponse struct {
	GameID    uuid.UUID `json:"game_id"`
	HomeScore float64   `json:"home_score"`
	AwayScore float64   `json:"away_score"`
	Events    []string  `json:"events"`
}

func (s *Server) startGameHandler(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SeasonRuleset == 0 {
		req.SeasonRuleset = 14
	}
	if req.HomeTeamName == "" {
		req.HomeTeamName = "Home"
	}
	if req.AwayTeamName == "" {
		req.AwayTeamName = "Away"
	}

	source := rng.New(req.SeedA, req.SeedB)
	world := entities.New(req.SeasonRuleset)
	homeID := world.GenTeam(source, req.HomeTeamName, "H")
	awayID := world.GenTeam(source, req.AwayTeamName, "A")

	var override *weather.Weather
	if req.WeatherOverride != nil {
		w := weather.Weather(*req.WeatherOverride)
		override = &w
	}

	game := sim.NewGame(homeID, awayID, req.Day, override, world, source)
	events := sim.RunGame(game, world, source)

	tags := make([]string, len(events))
	for i, e := range events {
		tags[i] = string(e.Kind)
	}

	s.mu.Lock()
	s.games[game.ID] = tags
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.AppendGameEvents(r.Context(), game.ID, tags); err != nil {
			logAccess(fmt.Sprintf("httpapi: failed to persist game %s: %v", game.ID, err))
		}
	}

	writeJSON(w, http.StatusOK, startGameResponse{
		GameID:    game.ID,
		HomeScore: game.HomeTeam.Score,
		AwayScore: game.AwayTeam.Score,
		Events:    tags,
	})
}

func (s *Server) gameEventsHandler(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid game id", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	tags, ok := s.games[id]
	s.mu.RUnlock()

	if !ok && s.store != nil {
		tags, err = s.store.LoadGameEvents(r.Context(), id)
		ok = err == nil && len(tags) > 0
	}

	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"game_id": id, "events": tags})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
