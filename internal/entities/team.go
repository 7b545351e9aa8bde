package entities

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/baseball-sim/sim-core/internal/mods"
	"github.com/baseball-sim/sim-core/internal/rng"
)

// ReverbType selects which reverb.rs permutation roll/apply to use.
type ReverbType uint8

const (
	ReverbAll ReverbType = iota
	ReverbPartial
	ReverbLineup
	ReverbRotation
)

// Team owns a lineup, rotation, and shadow bench of player ids.
type Team struct {
	ID    uuid.UUID
	Name  string
	Emoji string

	Lineup   []uuid.UUID
	Rotation []uuid.UUID
	Shadows  []uuid.UUID

	Wins               int16
	Losses             int16
	PostseasonWins     int16
	PostseasonLosses   int16
	Partying           bool
	Fate               int

	Mods *mods.Set
}

// replacePlayer swaps id for newID wherever it appears across lineup,
// rotation, or shadows. Panics if id is not found anywhere on the team — a
// fatal invariant breach, matching the source's panic-on-missing behavior.
func (t *Team) replacePlayer(id, newID uuid.UUID) {
	if idx := indexOf(t.Lineup, id); idx >= 0 {
		t.Lineup[idx] = newID
		return
	}
	if idx := indexOf(t.Rotation, id); idx >= 0 {
		t.Rotation[idx] = newID
		return
	}
	if idx := indexOf(t.Shadows, id); idx >= 0 {
		t.Shadows[idx] = newID
		return
	}
	panic(fmt.Sprintf("entities: player %s not found on team %s", id, t.ID))
}

func indexOf(ids []uuid.UUID, target uuid.UUID) int {
	for i, id := range ids {
		if id == target {
			return i
		}
	}
	return -1
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func removeInt(xs []int, x int) []int {
	out := xs[:0]
	for _, v := range xs {
		if v != x {
			out = append(out, v)
		}
	}
	return out
}

// RollReverbChanges computes the permutation (or swap-pair list, for
// ReverbPartial) that ApplyReverbChanges will later use. gravityPlayers is a
// set of combined lineup+rotation indices (lineup first, then rotation)
// immune to being moved.
func (t *Team) RollReverbChanges(r *rng.Source, reverbType ReverbType, gravityPlayers []int) []int {
	lineupLen := len(t.Lineup)
	rotationLen := len(t.Rotation)
	length := lineupLen + rotationLen

	var changes []int

	switch reverbType {
	case ReverbAll:
		var playersRem []int
		for i := 0; i < length; i++ {
			if !containsInt(gravityPlayers, i) {
				playersRem = append(playersRem, i)
			}
		}
		for i := 0; i < length; i++ {
			var oldI int
			if i < rotationLen {
				oldI = i + lineupLen
			} else {
				oldI = i - rotationLen
			}
			if containsInt(gravityPlayers, oldI) {
				if i < lineupLen {
					changes = append(changes, i+rotationLen)
				} else {
					changes = append(changes, i-lineupLen)
				}
			} else {
				remIdx := int(r.Next() * float64(len(playersRem)))
				idx := playersRem[remIdx]
				playersRem = removeInt(playersRem, idx)
				changes = append(changes, idx)
			}
		}

	case ReverbPartial:
		for i := 0; i < 3; i++ {
			roll1 := int(r.Next() * float64(length))
			roll2 := int(r.Next() * float64(length))
			idx1 := roll1
			if roll1 < rotationLen {
				idx1 = lineupLen + roll1
			} else {
				idx1 = roll1 - rotationLen
			}
			idx2 := roll2
			if roll2 < rotationLen {
				idx2 = lineupLen + roll2
			} else {
				idx2 = roll2 - rotationLen
			}
			if !containsInt(gravityPlayers, idx1) && !containsInt(gravityPlayers, idx2) {
				changes = append(changes, idx1, idx2)
			}
		}

	case ReverbLineup:
		var playersRem []int
		for i := 0; i < lineupLen; i++ {
			if !containsInt(gravityPlayers, i) {
				playersRem = append(playersRem, i)
			}
		}
		for i := 0; i < lineupLen; i++ {
			if containsInt(gravityPlayers, i) {
				changes = append(changes, i)
			} else {
				remIdx := int(r.Next() * float64(len(playersRem)))
				idx := playersRem[remIdx]
				playersRem = removeInt(playersRem, idx)
				changes = append(changes, idx)
			}
		}

	case ReverbRotation:
		var playersRem []int
		for i := 0; i < rotationLen; i++ {
			if !containsInt(gravityPlayers, i+lineupLen) {
				playersRem = append(playersRem, i)
			}
		}
		for i := 0; i < rotationLen; i++ {
			if containsInt(gravityPlayers, i+lineupLen) {
				changes = append(changes, i)
			} else {
				remIdx := int(r.Next() * float64(len(playersRem)))
				idx := playersRem[remIdx]
				playersRem = removeInt(playersRem, idx)
				changes = append(changes, idx)
			}
		}

	default:
		panic("entities: unknown reverb type")
	}

	return changes
}

// ApplyReverbChanges installs the permutation computed by RollReverbChanges.
func (t *Team) ApplyReverbChanges(reverbType ReverbType, changes []int) {
	lineupLen := len(t.Lineup)
	rotationLen := len(t.Rotation)
	length := lineupLen + rotationLen

	var result []uuid.UUID

	switch reverbType {
	case ReverbAll:
		for i := rotationLen; i < length; i++ {
			slot := changes[i]
			if slot < lineupLen {
				result = append(result, t.Lineup[slot])
			} else {
				result = append(result, t.Rotation[slot-lineupLen])
			}
		}
		for i := 0; i < rotationLen; i++ {
			slot := changes[i]
			if slot < lineupLen {
				result = append(result, t.Lineup[slot])
			} else {
				result = append(result, t.Rotation[slot-lineupLen])
			}
		}

	case ReverbPartial:
		for i := 0; i < rotationLen; i++ {
			result = append(result, t.Rotation[i])
		}
		for i := 0; i < lineupLen; i++ {
			result = append(result, t.Lineup[i])
		}
		for i := 0; i+1 < len(changes); i += 2 {
			slot1, slot2 := changes[i], changes[i+1]
			result[slot1], result[slot2] = result[slot2], result[slot1]
		}

	case ReverbLineup:
		for i := 0; i < lineupLen; i++ {
			result = append(result, t.Lineup[changes[i]])
		}
		for i := 0; i < rotationLen; i++ {
			result = append(result, t.Rotation[i])
		}

	case ReverbRotation:
		for i := 0; i < lineupLen; i++ {
			result = append(result, t.Lineup[i])
		}
		for i := 0; i < rotationLen; i++ {
			result = append(result, t.Rotation[changes[i]])
		}

	default:
		panic("entities: unknown reverb type")
	}

	for i := 0; i < length; i++ {
		if i < lineupLen {
			t.Lineup[i] = result[i]
		} else {
			t.Rotation[i-lineupLen] = result[i]
		}
	}
}
