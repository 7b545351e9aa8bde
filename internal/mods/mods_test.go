package mods

import "testing"

func TestAddRejectsDuplicates(t *testing.T) {
	s := NewSet()
	s.Add(Wired, Game)
	s.Add(Wired, Game)
	if got := len(s.List()); got != 1 {
		t.Fatalf("expected 1 mod after duplicate add, got %d", got)
	}
}

func TestAddAllowsSameModDifferentLifetime(t *testing.T) {
	s := NewSet()
	s.Add(Wired, Game)
	s.Add(Wired, Season)
	if got := len(s.List()); got != 2 {
		t.Fatalf("expected 2 mods for same tag with different lifetimes, got %d", got)
	}
}

func TestRemoveDeletesOnlyTarget(t *testing.T) {
	s := NewSet()
	s.Add(Wired, Game)
	s.Add(Tired, Game)
	s.Remove(Wired)

	if s.Has(Wired) {
		t.Error("expected Wired removed")
	}
	if !s.Has(Tired) {
		t.Error("expected Tired to remain: Remove must keep everything except the target")
	}
}

func TestClearByLifetime(t *testing.T) {
	s := NewSet()
	s.Add(Wired, Game)
	s.Add(Unstable, Season)
	s.Add(RedHot, Permanent)

	s.ClearGame()
	if s.Has(Wired) {
		t.Error("ClearGame should purge Game-lifetime mods")
	}
	if !s.Has(Unstable) || !s.Has(RedHot) {
		t.Error("ClearGame must not touch other lifetimes")
	}

	s.ClearSeason()
	if s.Has(Unstable) {
		t.Error("ClearSeason should purge Season-lifetime mods")
	}
	if !s.Has(RedHot) {
		t.Error("ClearSeason must not touch Permanent mods")
	}
}
