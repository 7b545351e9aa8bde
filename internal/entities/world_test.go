package entities

import (
	"testing"

	"github.com/google/uuid"

	"github.com/baseball-sim/sim-core/internal/rng"
)

func TestGenTeamRosterSizes(t *testing.T) {
	w := New(14)
	r := rng.New(37, 396396396396)
	teamID := w.GenTeam(r, "Moist Talkers", "💧")

	team := w.Team(teamID)
	if len(team.Lineup) != 9 {
		t.Errorf("lineup size = %d, want 9", len(team.Lineup))
	}
	if len(team.Rotation) != 5 {
		t.Errorf("rotation size = %d, want 5", len(team.Rotation))
	}
	if len(team.Shadows) != 11 {
		t.Errorf("shadows size = %d, want 11", len(team.Shadows))
	}
	if len(w.Players) != 25 {
		t.Errorf("world should hold 25 players after GenTeam, got %d", len(w.Players))
	}
}

func TestReplacePlayerOrphansToHall(t *testing.T) {
	w := New(14)
	r := rng.New(1, 2)
	teamID := w.GenTeam(r, "Lovers", "💜")
	oldID := w.Team(teamID).Lineup[0]
	newID := w.GenPlayer(r, teamID)

	w.ReplacePlayer(oldID, newID)

	if w.Team(teamID).Lineup[0] != newID {
		t.Error("new player should occupy the old lineup slot")
	}
	if w.Player(oldID).Team != nil {
		t.Error("orphaned player should have no team")
	}
	found := false
	for _, id := range w.Hall {
		if id == oldID {
			found = true
		}
	}
	if !found {
		t.Error("orphaned player should be in the hall")
	}
}

func TestPlayerPanicsOnMissingID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Player to panic for a nonexistent id")
		}
	}()
	w := New(14)
	w.Player(uuid.Nil)
}
