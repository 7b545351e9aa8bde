package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/baseball-sim/sim-core/config"
)

func newTestServer() *Server {
	return NewServer(&config.Config{Port: "0"}, nil)
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", body["status"])
	}
}

func TestGameEventsHandlerNotFound(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/games/00000000-0000-0000-0000-000000000000/events", nil)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestStartGameHandlerPlaysFullGame(t *testing.T) {
	s := newTestServer()
	body := `{"seed_a": 69, "seed_b": 420, "day": 1}`
	req := httptest.NewRequest(http.MethodPost, "/games", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var resp startGameResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(resp.Events) == 0 {
		t.Error("expected a non-empty event tag feed")
	}
	if resp.Events[len(resp.Events)-1] != "gameOver" {
		t.Errorf("last event = %q, want gameOver", resp.Events[len(resp.Events)-1])
	}
}
