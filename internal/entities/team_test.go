package entities

import (
	"testing"

	"github.com/google/uuid"

	"github.com/baseball-sim/sim-core/internal/mods"
	"github.com/baseball-sim/sim-core/internal/rng"
)

func newTestTeam(lineupN, rotationN int) *Team {
	t := &Team{ID: uuid.New(), Mods: mods.NewSet()}
	for i := 0; i < lineupN; i++ {
		t.Lineup = append(t.Lineup, uuid.New())
	}
	for i := 0; i < rotationN; i++ {
		t.Rotation = append(t.Rotation, uuid.New())
	}
	return t
}

func TestReverbLineupPreservesRotation(t *testing.T) {
	team := newTestTeam(9, 5)
	rotationBefore := append([]uuid.UUID(nil), team.Rotation...)

	r := rng.New(7, 8)
	changes := team.RollReverbChanges(r, ReverbLineup, nil)
	team.ApplyReverbChanges(ReverbLineup, changes)

	for i, id := range team.Rotation {
		if id != rotationBefore[i] {
			t.Fatalf("ReverbLineup must not touch rotation, slot %d changed", i)
		}
	}
	if len(team.Lineup) != 9 {
		t.Fatalf("lineup length changed: %d", len(team.Lineup))
	}
}

func TestReverbRotationPreservesLineup(t *testing.T) {
	team := newTestTeam(9, 5)
	lineupBefore := append([]uuid.UUID(nil), team.Lineup...)

	r := rng.New(3, 4)
	changes := team.RollReverbChanges(r, ReverbRotation, nil)
	team.ApplyReverbChanges(ReverbRotation, changes)

	for i, id := range team.Lineup {
		if id != lineupBefore[i] {
			t.Fatalf("ReverbRotation must not touch lineup, slot %d changed", i)
		}
	}
}

func TestReverbAllIsAPermutation(t *testing.T) {
	team := newTestTeam(9, 5)
	before := append(append([]uuid.UUID(nil), team.Lineup...), team.Rotation...)

	r := rng.New(11, 22)
	changes := team.RollReverbChanges(r, ReverbAll, nil)
	team.ApplyReverbChanges(ReverbAll, changes)

	after := append(append([]uuid.UUID(nil), team.Lineup...), team.Rotation...)

	seen := make(map[uuid.UUID]bool, len(after))
	for _, id := range after {
		seen[id] = true
	}
	for _, id := range before {
		if !seen[id] {
			t.Fatalf("player %s lost after full reverb", id)
		}
	}
}
