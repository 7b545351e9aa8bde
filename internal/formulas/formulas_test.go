package formulas

import (
	"testing"

	"github.com/baseball-sim/sim-core/internal/entities"
	"github.com/baseball-sim/sim-core/internal/mods"
	"github.com/baseball-sim/sim-core/internal/rng"
	"github.com/baseball-sim/sim-core/internal/weather"
)

func neutralPlayer() *entities.Player {
	return entities.NewPlayer(rng.New(1, 2))
}

func neutralCtx() Context {
	return NewContext(14, 1, weather.Sun)
}

func TestForSeasonFallsBackTo14(t *testing.T) {
	c11 := ForSeason(11)
	c14 := ForSeason(14)
	if c11 != c14 {
		t.Error("season 11 should fall back to the season-14 coefficient table")
	}
}

func TestForSeasonPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected ForSeason to panic for season 30")
		}
	}()
	ForSeason(30)
}

func TestStrikeThresholdCapped(t *testing.T) {
	pitcher := neutralPlayer()
	pitcher.Ruthlessness = 1.0
	batter := neutralPlayer()
	batter.Musclitude = 1.0

	got := StrikeThreshold(pitcher, batter, false, neutralCtx())
	if got > 0.86 {
		t.Errorf("strike threshold = %v, want capped at 0.86", got)
	}
}

func TestStrikeThresholdFlinchRaisesFloor(t *testing.T) {
	pitcher := neutralPlayer()
	batter := neutralPlayer()
	ctx := neutralCtx()

	flinch := StrikeThreshold(pitcher, batter, true, ctx)
	normal := StrikeThreshold(pitcher, batter, false, ctx)
	if flinch <= normal {
		t.Errorf("flinch threshold (%v) should exceed normal (%v)", flinch, normal)
	}
}

func TestSwingThresholdBallIsClamped(t *testing.T) {
	pitcher := neutralPlayer()
	batter := neutralPlayer()
	got := SwingThreshold(pitcher, batter, false, neutralCtx())
	if got < 0.1 || got > 0.95 {
		t.Errorf("swing_if_ball = %v, want within [0.1, 0.95]", got)
	}
}

func TestOutThresholdAllZeroAttrs(t *testing.T) {
	pitcher := neutralPlayer()
	batter := neutralPlayer()
	defender := neutralPlayer()
	pitcher.Unthwackability, batter.Thwackability, defender.Omniscience = 0, 0, 0

	got := OutThreshold(pitcher, batter, defender, neutralCtx())
	// Zeroed attributes are read as the 0.01 clamp floor, vibe-scaled; the
	// three players share one roll, so one vibe factor covers all of them.
	v := 1 + 0.2*batter.Vibes(1)
	want := 0.311 + 0.1*0.01*v - 0.08*0.01*v - 0.064*0.01*v
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("out_threshold with zeroed attrs = %v, want %v", got, want)
	}
}

func TestFlyThresholdFloor(t *testing.T) {
	p := neutralPlayer()
	p.Buoyancy = 0
	p.Suppression = 1
	got := FlyThreshold(p, neutralCtx())
	if got < 0.01 {
		t.Errorf("fly_threshold = %v, want floor at 0.01", got)
	}
}

func TestDoublePlayThresholdFloor(t *testing.T) {
	batter := neutralPlayer()
	pitcher := neutralPlayer()
	fielder := neutralPlayer()
	pitcher.Shakespearianism = 0
	batter.Tragicness = 1
	fielder.Tenaciousness = 0

	got := DoublePlayThreshold(batter, pitcher, fielder, neutralCtx())
	if got < 0.001 {
		t.Errorf("double_play_threshold = %v, want floor at 0.001", got)
	}
}

func TestFlyoutAdvancementThresholdPiecewise(t *testing.T) {
	runner := neutralPlayer()
	runner.Indulgence = 0.5
	ctx := neutralCtx()

	base0 := FlyoutAdvancementThreshold(runner, 0, ctx)
	base1 := FlyoutAdvancementThreshold(runner, 1, ctx)
	base2 := FlyoutAdvancementThreshold(runner, 2, ctx)
	base3 := FlyoutAdvancementThreshold(runner, 3, ctx)

	if base0 == base1 || base1 == base2 {
		t.Error("flyout advancement threshold should differ across base_from values")
	}
	if base3 != base2 {
		t.Errorf("flyout advancement from base 3 = %v, want %v (same formula as base 2)", base3, base2)
	}
}

func TestMultiplierRedHotBoostsThwackability(t *testing.T) {
	p := neutralPlayer()
	p.Mods.Add(mods.RedHot, mods.Game)
	ctx := neutralCtx()

	m := multiplier(entities.AttrThwackability, p.Mods, ctx)
	if m != 5.0 {
		t.Errorf("RedHot thwackability multiplier = %v, want 5.0", m)
	}
	mMoxie := multiplier(entities.AttrMoxie, p.Mods, ctx)
	if mMoxie != 3.0 {
		t.Errorf("RedHot moxie multiplier = %v, want 3.0", mMoxie)
	}
}

func TestMultiplierAffinityForCrowsRequiresBirdsWeather(t *testing.T) {
	p := neutralPlayer()
	p.Mods.Add(mods.AffinityForCrows, mods.Game)

	sunCtx := NewContext(14, 1, weather.Sun)
	if m := multiplier(entities.AttrRuthlessness, p.Mods, sunCtx); m != 1.0 {
		t.Errorf("AffinityForCrows should not apply outside Birds weather, got %v", m)
	}

	birdsCtx := NewContext(14, 1, weather.Birds)
	if m := multiplier(entities.AttrRuthlessness, p.Mods, birdsCtx); m != 1.5 {
		t.Errorf("AffinityForCrows in Birds weather = %v, want 1.5", m)
	}
}

func TestMultiplierNegativeSenseIsReciprocal(t *testing.T) {
	p := neutralPlayer()
	p.Mods.Add(mods.NightVision, mods.Game)
	ctx := NewContext(14, 1, weather.Eclipse)

	thwack := multiplier(entities.AttrThwackability, p.Mods, ctx)
	path := multiplier(entities.AttrPatheticism, p.Mods, ctx)
	if path != 1.0/thwack {
		t.Errorf("patheticism multiplier = %v, want reciprocal of the batting bonus %v", path, 1.0/thwack)
	}
}

func TestCoeffClampsExtremeAttribute(t *testing.T) {
	p := neutralPlayer()
	p.Thwackability = 5.0
	got := coeff(p, entities.AttrThwackability, p.Thwackability, neutralCtx())
	if got > 0.99 {
		t.Errorf("coeff should clamp raw attribute to 0.99, got %v", got)
	}
}
