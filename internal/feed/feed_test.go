package feed

import "testing"

func TestHasStopsAfterLimitHalfInnings(t *testing.T) {
	e := New()
	e.Add("baseHit")
	e.Add(inningSwitchTag)
	e.Add("strikeOut")
	e.Add(inningSwitchTag)
	e.Add("ball")

	if !e.Has("strikeOut", 1) {
		t.Error("strikeOut should be visible within 1 half-inning back")
	}
	if e.Has("baseHit", 1) {
		t.Error("baseHit is beyond the 1-half-inning window and should not be visible")
	}
	if !e.Has("baseHit", -1) {
		t.Error("limit=-1 should disable the cutoff entirely")
	}
}

func TestCountWithinWindow(t *testing.T) {
	e := New()
	e.Add("strike")
	e.Add("strike")
	e.Add(inningSwitchTag)
	e.Add("strike")

	if got := e.Count("strike", 0); got != 1 {
		t.Errorf("Count(strike, 0) = %d, want 1", got)
	}
	if got := e.Count("strike", 1); got != 3 {
		t.Errorf("Count(strike, 1) = %d, want 3", got)
	}
}

func TestStreakMultipleDoesNotStopOnForeignTag(t *testing.T) {
	e := New()
	e.Add("baseHit")
	e.Add("ball")
	e.Add("baseHit")

	got := e.StreakMultiple([]string{"baseHit"}, -1)
	if got != 2 {
		t.Errorf("StreakMultiple should count through foreign tags, got %d want 2", got)
	}
}

func TestLastPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Last to panic on empty feed")
		}
	}()
	New().Last()
}
