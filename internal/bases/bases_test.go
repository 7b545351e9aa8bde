package bases

import (
	"testing"

	"github.com/google/uuid"
)

func TestWalkPushesContiguousChainForward(t *testing.T) {
	tests := []struct {
		name     string
		occupied []int // bases occupied before the walk, runner ids match index
		want     map[int]bool
	}{
		{
			name:     "empty bases",
			occupied: nil,
			want:     map[int]bool{0: false, 1: false, 2: false},
		},
		{
			name:     "runner on first only",
			occupied: []int{0},
			want:     map[int]bool{0: false, 1: true, 2: false},
		},
		{
			name:     "runners on first and second",
			occupied: []int{0, 1},
			want:     map[int]bool{0: false, 1: true, 2: true},
		},
		{
			name:     "gap stops the chain",
			occupied: []int{0, 2},
			want:     map[int]bool{0: false, 1: true, 2: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			for _, base := range tt.occupied {
				b.Add(base, uuid.New())
			}
			b.Walk()
			for base, want := range tt.want {
				if got := b.Occupied(base); got != want {
					t.Errorf("Occupied(%d) = %v, want %v", base, got, want)
				}
			}
		})
	}
}

func TestAdvanceIfRespectsCanAdvance(t *testing.T) {
	b := New()
	r0, r1 := uuid.New(), uuid.New()
	b.Add(0, r0)
	b.Add(1, r1)

	var seen []uuid.UUID
	b.AdvanceIf(func(r Runner) bool {
		seen = append(seen, r.ID)
		return true
	})

	// r0 is examined first while base 1 is still occupied, so it holds;
	// r1 then advances to 2.
	if !b.Occupied(0) || b.Occupied(1) || !b.Occupied(2) {
		t.Fatalf("expected runner on 0 to hold and runner on 1 to advance to 2")
	}
	if len(seen) != 1 || seen[0] != r1 {
		t.Fatalf("expected predicate invoked only for the runner that can advance, got %d calls", len(seen))
	}
}

func TestPickRunnerFC(t *testing.T) {
	tests := []struct {
		name     string
		occupied []int
		want     int
	}{
		{"none occupied", nil, 0},
		{"only first", []int{0}, 0},
		{"second occupied", []int{1}, 1},
		{"second and third occupied", []int{1, 2}, 2},
		{"all occupied", []int{0, 1, 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			for _, base := range tt.occupied {
				b.Add(base, uuid.New())
			}
			if got := b.PickRunnerFC(); got != tt.want {
				t.Errorf("PickRunnerFC() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPickRunnerSingleRunnerIgnoresRoll(t *testing.T) {
	b := New()
	b.Add(2, uuid.New())
	if got := b.PickRunner(0.99); got != 2 {
		t.Errorf("PickRunner with single runner = %d, want 2", got)
	}
}

func TestRemoveAndContains(t *testing.T) {
	b := New()
	id := uuid.New()
	b.Add(1, id)

	if !b.Contains(id) {
		t.Fatal("expected Contains true before remove")
	}
	got, ok := b.Remove(1)
	if !ok || got != id {
		t.Fatalf("Remove(1) = (%v, %v), want (%v, true)", got, ok, id)
	}
	if b.Contains(id) {
		t.Fatal("expected Contains false after remove")
	}
}

func TestAdvanceAll(t *testing.T) {
	b := New()
	b.Add(0, uuid.New())
	b.Add(1, uuid.New())
	b.AdvanceAll(3)
	if b.Occupied(0) || b.Occupied(1) {
		t.Fatal("bases 0/1 should be vacated after advancing all by 3")
	}
	if !b.Occupied(3) || !b.Occupied(4) {
		t.Fatal("runners should have landed on bases 3 and 4")
	}
}
