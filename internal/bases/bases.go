// Package bases implements the ordered baserunner set shared by every game
// in flight. All operations are deterministic and synchronous; nothing here
// draws randomness directly (callers pass in rolls already drawn from
// rng.Source).
package bases

import "github.com/google/uuid"

// Runner is a single baserunner occupying a base.
type Runner struct {
	ID   uuid.UUID
	Base int
}

// Baserunners is an ordered set of runners, at most one per base.
type Baserunners struct {
	runners []Runner
}

// New returns an empty Baserunners set.
func New() *Baserunners {
	return &Baserunners{}
}

// Occupied reports whether any runner currently sits on base.
func (b *Baserunners) Occupied(base int) bool {
	for _, r := range b.runners {
		if r.Base == base {
			return true
		}
	}
	return false
}

// CanAdvance reports whether the base directly ahead of base is free.
func (b *Baserunners) CanAdvance(base int) bool {
	return !b.Occupied(base + 1)
}

// At returns the runner id on base, if any.
func (b *Baserunners) At(base int) (uuid.UUID, bool) {
	for _, r := range b.runners {
		if r.Base == base {
			return r.ID, true
		}
	}
	return uuid.Nil, false
}

// Contains reports whether id is currently on base.
func (b *Baserunners) Contains(id uuid.UUID) bool {
	for _, r := range b.runners {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Advance moves the runner currently on base forward by one, if any.
func (b *Baserunners) Advance(base int) {
	for i := range b.runners {
		if b.runners[i].Base == base {
			b.runners[i].Base++
			return
		}
	}
}

// Remove takes the runner off base and returns its id.
func (b *Baserunners) Remove(base int) (uuid.UUID, bool) {
	for i, r := range b.runners {
		if r.Base == base {
			id := r.ID
			b.runners = append(b.runners[:i], b.runners[i+1:]...)
			return id, true
		}
	}
	return uuid.Nil, false
}

// AdvanceAll adds amount to every runner's base.
func (b *Baserunners) AdvanceAll(amount int) {
	for i := range b.runners {
		b.runners[i].Base += amount
	}
}

// Walk force-advances runners to accommodate a new runner landing at base 0:
// count the contiguous run of occupied bases starting at 0, then advance
// those runners back-to-front so none collide.
func (b *Baserunners) Walk() {
	numOccupied := 0
	for i := 0; i < 5; i++ {
		if b.Occupied(i) {
			numOccupied++
		} else {
			break
		}
	}

	for i := numOccupied - 1; i >= 0; i-- {
		b.Advance(i)
	}
}

// AdvanceIf advances each runner that CanAdvance and for whom f returns true.
// Implemented index-based (not via a mutable iterator) since occupancy reads
// and writes interleave as the loop progresses.
func (b *Baserunners) AdvanceIf(f func(r Runner) bool) {
	for i := 0; i < len(b.runners); i++ {
		if b.CanAdvance(b.runners[i].Base) {
			if f(b.runners[i]) {
				b.runners[i].Base++
			}
		}
	}
}

// Add places a new runner at base.
func (b *Baserunners) Add(base int, id uuid.UUID) {
	b.runners = append(b.runners, Runner{ID: id, Base: base})
}

// Empty reports whether no runners are on base.
func (b *Baserunners) Empty() bool {
	return len(b.runners) == 0
}

// Len returns the number of runners currently on base.
func (b *Baserunners) Len() int {
	return len(b.runners)
}

// PickRunner chooses the runner at index floor(roll*n) and returns its base.
func (b *Baserunners) PickRunner(roll float64) int {
	switch len(b.runners) {
	case 0:
		panic("bases: PickRunner called with no runners on base")
	case 1:
		return b.runners[0].Base
	default:
		idx := int(roll * float64(len(b.runners)))
		return b.runners[idx].Base
	}
}

// PickRunnerFC selects the fielder's-choice victim: base 1 if occupied (then
// base 2 if that's also occupied), else base 0.
func (b *Baserunners) PickRunnerFC() int {
	if b.Occupied(1) {
		if b.Occupied(2) {
			return 2
		}
		return 1
	}
	return 0
}

// Clear removes every runner.
func (b *Baserunners) Clear() {
	b.runners = nil
}

// Iter returns a copy of the current runners, in insertion order.
func (b *Baserunners) Iter() []Runner {
	out := make([]Runner, len(b.runners))
	copy(out, b.runners)
	return out
}
