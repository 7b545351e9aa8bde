// Package store persists World snapshots and per-game event feeds to
// Postgres. It is an external collaborator per spec.md §6 ("may be
// persisted externally") — never imported by internal/sim or any other
// core package, only by httpapi and cmd/simulate.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baseball-sim/sim-core/internal/entities"
)

// dbPool is the slice of *pgxpool.Pool this package actually calls,
// narrowed to an interface so tests can substitute pgxmock's pool double
// (see simulation/database.go's equivalent reliance on *pgxpool.Pool, here
// made swappable for table-driven SQL tests).
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Store wraps a pgx connection pool with the snapshot/event-feed schema this
// package owns.
type Store struct {
	pool dbPool
}

// Open connects to dsn and verifies the connection with a short-lived ping,
// mirroring main.go's dial-then-ping bootstrap.
func Open(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: failed to create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the worlds/game_events tables if they don't already
// exist, matching the teacher's create-table-if-missing style in
// storeSimulationMetadata.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const worldsTable = `
		CREATE TABLE IF NOT EXISTS worlds (
			label      TEXT PRIMARY KEY,
			snapshot   JSONB NOT NULL,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`
	if _, err := s.pool.Exec(ctx, worldsTable); err != nil {
		return fmt.Errorf("store: failed to create worlds table: %w", err)
	}

	const eventsTable = `
		CREATE TABLE IF NOT EXISTS game_events (
			game_id    UUID NOT NULL,
			seq        INTEGER NOT NULL,
			tag        TEXT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			PRIMARY KEY (game_id, seq)
		)
	`
	if _, err := s.pool.Exec(ctx, eventsTable); err != nil {
		return fmt.Errorf("store: failed to create game_events table: %w", err)
	}
	return nil
}

// worldSnapshot is the JSONB payload shape for a worlds row. entities.World
// carries no json tags (it's never serialized inside the core), so this
// package owns the wire shape independently.
type worldSnapshot struct {
	Players       map[uuid.UUID]*entities.Player `json:"players"`
	Teams         map[uuid.UUID]*entities.Team   `json:"teams"`
	Stadiums      map[uuid.UUID]*entities.Stadium `json:"stadiums"`
	Hall          []uuid.UUID                    `json:"hall"`
	SeasonRuleset uint8                           `json:"season_ruleset"`
}

// SaveWorldSnapshot upserts world under label.
func (s *Store) SaveWorldSnapshot(ctx context.Context, label string, world *entities.World) error {
	snap := worldSnapshot{
		Players:       world.Players,
		Teams:         world.Teams,
		Stadiums:      world.Stadiums,
		Hall:          world.Hall,
		SeasonRuleset: world.SeasonRuleset,
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("store: failed to marshal world snapshot: %w", err)
	}

	const query = `
		INSERT INTO worlds (label, snapshot, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (label) DO UPDATE SET
			snapshot = EXCLUDED.snapshot,
			updated_at = NOW()
	`
	if _, err := s.pool.Exec(ctx, query, label, payload); err != nil {
		return fmt.Errorf("store: failed to save world snapshot %q: %w", label, err)
	}
	return nil
}

// LoadWorldSnapshot reads back the world stored under label.
func (s *Store) LoadWorldSnapshot(ctx context.Context, label string) (*entities.World, error) {
	const query = `SELECT snapshot FROM worlds WHERE label = $1`

	var payload []byte
	if err := s.pool.QueryRow(ctx, query, label).Scan(&payload); err != nil {
		return nil, fmt.Errorf("store: failed to load world snapshot %q: %w", label, err)
	}

	var snap worldSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("store: failed to unmarshal world snapshot %q: %w", label, err)
	}

	world := entities.New(snap.SeasonRuleset)
	world.Players = snap.Players
	world.Teams = snap.Teams
	world.Stadiums = snap.Stadiums
	world.Hall = snap.Hall
	return world, nil
}

// AppendGameEvents persists a completed game's ordered tag feed, one row per
// tick, mirroring storeSimulationResult's one-row-per-result pattern.
func (s *Store) AppendGameEvents(ctx context.Context, gameID uuid.UUID, tags []string) error {
	batch := make([][]any, len(tags))
	for i, tag := range tags {
		batch[i] = []any{gameID, i, tag}
	}

	const query = `
		INSERT INTO game_events (game_id, seq, tag)
		VALUES ($1, $2, $3)
		ON CONFLICT (game_id, seq) DO UPDATE SET tag = EXCLUDED.tag
	`
	for _, row := range batch {
		if _, err := s.pool.Exec(ctx, query, row...); err != nil {
			return fmt.Errorf("store: failed to append game event %v: %w", row, err)
		}
	}
	return nil
}

// LoadGameEvents returns gameID's tag feed in tick order.
func (s *Store) LoadGameEvents(ctx context.Context, gameID uuid.UUID) ([]string, error) {
	const query = `SELECT tag FROM game_events WHERE game_id = $1 ORDER BY seq ASC`

	rows, err := s.pool.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("store: failed to load game events for %s: %w", gameID, err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("store: failed to scan game event row: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: error iterating game events for %s: %w", gameID, err)
	}
	return tags, nil
}
