package entities

import (
	"testing"

	"github.com/baseball-sim/sim-core/internal/mods"
	"github.com/baseball-sim/sim-core/internal/rng"
)

func TestNewPlayerAttributesInUnitRange(t *testing.T) {
	p := NewPlayer(rng.New(69, 420))
	attrs := []float64{
		p.Buoyancy, p.Divinity, p.Martyrdom, p.Moxie, p.Musclitude,
		p.Patheticism, p.Thwackability, p.Tragicness, p.Coldness,
		p.Overpowerment, p.Ruthlessness, p.Shakespearianism, p.Suppression,
		p.Unthwackability, p.BaseThirst, p.Continuation, p.GroundFriction,
		p.Indulgence, p.Laserlikeness, p.Anticapitalism, p.Chasiness,
		p.Omniscience, p.Tenaciousness, p.Watchfulness, p.Pressurization,
		p.Cinnamon,
	}
	for i, a := range attrs {
		if a < 0.0 || a >= 1.0 {
			t.Errorf("attribute %d out of [0,1): %v", i, a)
		}
	}
}

func TestVibesZeroWhenScattered(t *testing.T) {
	p := NewPlayer(rng.New(1, 2))
	p.ScatteredLetters = 1
	if v := p.Vibes(10); v != 0.0 {
		t.Errorf("Vibes with scattered letters = %v, want 0", v)
	}
}

func TestBoostSubtractsNegativeSenseAttrs(t *testing.T) {
	p := NewPlayer(rng.New(1, 2))
	beforePath := p.Patheticism
	beforeTrag := p.Tragicness
	beforeBuoy := p.Buoyancy

	boosts := make([]float64, 25)
	boosts[5] = 0.1 // patheticism slot
	boosts[7] = 0.2 // tragicness slot
	boosts[0] = 0.3 // buoyancy slot
	p.Boost(boosts)

	if p.Patheticism != beforePath-0.1 {
		t.Errorf("Patheticism should be decremented by boost, got %v want %v", p.Patheticism, beforePath-0.1)
	}
	if p.Tragicness != beforeTrag-0.2 {
		t.Errorf("Tragicness should be decremented by boost, got %v want %v", p.Tragicness, beforeTrag-0.2)
	}
	if p.Buoyancy != beforeBuoy+0.3 {
		t.Errorf("Buoyancy should be incremented by boost, got %v want %v", p.Buoyancy, beforeBuoy+0.3)
	}
}

func TestAddLegendaryItemGrantsBadge(t *testing.T) {
	p := NewPlayer(rng.New(1, 2))
	p.AddLegendaryItem(NightVisionGoggles)
	if !p.Mods.Has(mods.NightVision) {
		t.Error("NightVisionGoggles should grant the NightVision badge")
	}

	p.RemoveLegendaryItem()
	if p.Mods.Has(mods.NightVision) {
		t.Error("RemoveLegendaryItem should strip the granted badge")
	}
	if p.LegendaryItem != nil {
		t.Error("RemoveLegendaryItem should clear the equipped item")
	}
}

func TestGetRunValue(t *testing.T) {
	p := NewPlayer(rng.New(1, 2))
	if got := p.GetRunValue(); got != 0.0 {
		t.Errorf("baseline run value = %v, want 0", got)
	}
	p.Mods.Add(mods.Wired, mods.Game)
	if got := p.GetRunValue(); got != 0.5 {
		t.Errorf("Wired run value = %v, want 0.5", got)
	}
}
