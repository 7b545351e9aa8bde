package sim

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/baseball-sim/sim-core/internal/entities"
	"github.com/baseball-sim/sim-core/internal/formulas"
	"github.com/baseball-sim/sim-core/internal/mods"
	"github.com/baseball-sim/sim-core/internal/rng"
	"github.com/baseball-sim/sim-core/internal/weather"
)

// phase is one stage of the fixed, ordered pipeline: a pure function of
// (game, world, rng) that either emits the tick's event or passes. The
// pipeline is an enumerated sequence, not a dynamic plugin registry — see
// spec.md §4.7 / §9.
type phase func(game *Game, world *entities.World, r *rng.Source) (Event, bool)

// phases is evaluated in order every tick; the first phase to return ok==true
// wins. If every phase passes, that's a fatal programming error: something
// about game/world state didn't match any phase's precondition.
var phases = []phase{
	inningStatePhase,
	extraWeatherPhase,
	batterStatePhase,
	weatherPhase,
	modifierPhase,
	stealingPhase,
	pitchPhase,
}

// Tick runs the pipeline once, returning the single event this tick emits.
// Panics if no phase emits an event — the pipeline guarantees exactly one
// event per tick by construction.
func Tick(game *Game, world *entities.World, r *rng.Source) Event {
	for _, p := range phases {
		if event, ok := p(game, world, r); ok {
			return event
		}
	}
	panic(fmt.Sprintf("sim: no phase produced an event for %s", game))
}

// inningStatePhase ends the half-inning (or the game) once three outs are
// recorded.
func inningStatePhase(game *Game, world *entities.World, r *rng.Source) (Event, bool) {
	if game.Outs < 3 {
		return Event{}, false
	}

	diff := game.AwayTeam.Score - game.HomeTeam.Score
	lead := 0
	switch {
	case diff > 0.01:
		lead = 1
	case diff < -0.01:
		lead = -1
	}

	if game.Inning >= 9 && (lead == -1 || (!game.Top && lead == 1)) {
		return Event{Kind: KindGameOver}, true
	}

	if game.Top {
		return Event{Kind: KindInningSwitch, Inning: game.Inning, Top: false}, true
	}
	return Event{Kind: KindInningSwitch, Inning: game.Inning + 1, Top: true}, true
}

// extraWeatherPhase runs the Salmon reversal check at the start of a half
// inning that followed a half in which somebody scored.
func extraWeatherPhase(game *Game, world *entities.World, r *rng.Source) (Event, bool) {
	if game.Weather != weather.Salmon {
		return Event{}, false
	}

	awayScored := absF(game.LinescoreAway[len(game.LinescoreAway)-1]) > 0.01
	homeScored := false
	if !game.Top {
		homeScored = absF(game.LinescoreHome[len(game.LinescoreHome)-1]) > 0.01
	}

	if game.Events.Len() == 0 || game.Events.Last() != string(KindInningSwitch) || (!awayScored && !homeScored) {
		return Event{}, false
	}

	if r.Next() >= 0.1375 {
		return Event{}, false
	}

	if r.Next() >= 0.675 {
		return Event{Kind: KindSalmon}, true
	}

	if awayScored && homeScored {
		if r.Next() < 0.2 {
			return Event{Kind: KindSalmon, AwayRunsLost: true, HomeRunsLost: true}, true
		}
		homeLost := r.Next() < 0.5
		return Event{Kind: KindSalmon, AwayRunsLost: !homeLost, HomeRunsLost: homeLost}, true
	}
	if awayScored {
		return Event{Kind: KindSalmon, AwayRunsLost: true}, true
	}
	return Event{Kind: KindSalmon, HomeRunsLost: true}, true
}

// batterStatePhase assigns the next batter when none is at the plate:
// Reverberating lets the previous batter re-bat with probability ~0.2;
// Shelled skips the at-bat entirely.
func batterStatePhase(game *Game, world *entities.World, r *rng.Source) (Event, bool) {
	bt := game.BattingTeam()
	if bt.Batter != nil {
		return Event{}, false
	}

	team := world.Team(bt.ID)
	idx := bt.BatterIndex

	firstBatter := game.Events.Len() == 0 ||
		(idx == 0 && game.Inning == 1 && game.Events.Last() == string(KindInningSwitch))
	inningBegin := !firstBatter && game.Events.Last() == string(KindInningSwitch)

	prevIdx := 0
	if !firstBatter {
		prevIdx = mod(idx-1, len(team.Lineup))
	}
	prev := team.Lineup[prevIdx]

	if !firstBatter && !inningBegin && world.Player(prev).Mods.Has(mods.Reverberating) && r.Next() < 0.2 {
		return Event{Kind: KindBatterUp, Batter: prev, Reverberating: true}, true
	}

	batter := team.Lineup[mod(idx, len(team.Lineup))]
	if world.Player(batter).Mods.Has(mods.Shelled) {
		return Event{Kind: KindShelled, Batter: batter}, true
	}
	return Event{Kind: KindBatterUp, Batter: batter, Reverberating: false}, true
}

// modifierPhase handles Electric strike/ball zaps and DebtU/RefinancedDebt
// hit-by-pitches.
func modifierPhase(game *Game, world *entities.World, r *rng.Source) (Event, bool) {
	batter := world.Player(*game.BattingTeam().Batter)
	pitcher := world.Player(game.PitchingTeam().Pitcher)

	switch {
	case batter.Mods.Has(mods.Electric) && game.Strikes > 0 && r.Next() < 0.2:
		return Event{Kind: KindZap, BatterFlag: true}, true
	case pitcher.Mods.Has(mods.Electric) && game.Balls > 0 && r.Next() < 0.2:
		return Event{Kind: KindZap, BatterFlag: false}, true
	case pitcher.Mods.Has(mods.DebtU) && !batter.Mods.Has(mods.Unstable) && r.Next() < 0.02:
		return Event{Kind: KindHitByPitch, Target: *game.BattingTeam().Batter, HBPType: 0}, true
	case pitcher.Mods.Has(mods.RefinancedDebt) && !batter.Mods.Has(mods.Flickering) && r.Next() < 0.02:
		return Event{Kind: KindHitByPitch, Target: *game.BattingTeam().Batter, HBPType: 1}, true
	}
	return Event{}, false
}

// stealingPhase walks occupied bases from highest to lowest, attempting a
// steal on the first runner whose successor base is empty.
func stealingPhase(game *Game, world *entities.World, r *rng.Source) (Event, bool) {
	ctx := pitchContext(game, world)
	stealDefenderID := game.PickFielder(world, r.Next())
	stealDefender := world.Player(stealDefenderID)

	for base := 3; base >= 0; base-- {
		runnerID, ok := game.Runners.At(base)
		if !ok || !game.Runners.CanAdvance(base) {
			continue
		}
		runner := world.Player(runnerID)

		if r.Next() >= formulas.StealAttemptThreshold(runner, stealDefender, ctx) {
			return Event{}, false
		}
		if r.Next() < formulas.StealSuccessThreshold(runner, stealDefender, ctx) {
			return Event{Kind: KindBaseSteal, Runner: runnerID, BaseFrom: base, BaseTo: base + 1}, true
		}
		return Event{Kind: KindCaughtStealing, Runner: runnerID, BaseFrom: base}, true
	}
	return Event{}, false
}

// pitchPhase is the pipeline's terminal phase: it always emits, via the
// pitch outcome resolver in pitch.go.
func pitchPhase(game *Game, world *entities.World, r *rng.Source) (Event, bool) {
	return DoPitch(world, game, r), true
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// pollForMod collects the player ids across both teams carrying m.
// onlyCurrent restricts pitchers to the active starter rather than the
// whole rotation.
func pollForMod(game *Game, world *entities.World, m mods.Mod, onlyCurrent bool) []uuid.UUID {
	var out []uuid.UUID

	home := world.Team(game.HomeTeam.ID)
	away := world.Team(game.AwayTeam.ID)

	out = append(out, home.Lineup...)
	if onlyCurrent {
		out = append(out, game.HomeTeam.Pitcher)
	} else {
		out = append(out, home.Rotation...)
	}
	out = append(out, away.Lineup...)
	if onlyCurrent {
		out = append(out, game.AwayTeam.Pitcher)
	} else {
		out = append(out, away.Rotation...)
	}

	filtered := out[:0]
	for _, id := range out {
		if world.Player(id).Mods.Has(m) {
			filtered = append(filtered, id)
		}
	}
	return filtered
}

// rollRandomBoosts draws a 26-length boost vector, each entry independently
// uniform in [0, threshold) (threshold may be negative, as for Soundproof's
// decreases).
func rollRandomBoosts(r *rng.Source, threshold float64) []float64 {
	boosts := make([]float64, 26)
	for i := range boosts {
		boosts[i] = r.Next() * threshold
	}
	return boosts
}

// weatherPhase is the per-tick trigger logic for every supernatural weather
// condition. Probabilities marked "estimate" in the source are named
// constants here (see the const block below) rather than inline literals,
// per spec.md §9's open question about adjustability.
func weatherPhase(game *Game, world *entities.World, r *rng.Source) (Event, bool) {
	switch game.Weather {
	case weather.Sun:
		return Event{}, false

	case weather.Eclipse:
		return eclipseTick(game, world, r)

	case weather.Peanuts:
		if r.Next() < peanutChance {
			target := game.PickPlayerWeighted(world, r.Next(), notOnBaseWeight(game), true)
			return Event{Kind: KindPeanut, Target: target, Yummy: false}, true
		}
		return Event{}, false

	case weather.Birds:
		if r.Next() < birdsChance {
			return Event{Kind: KindBirds}, true
		}
		for _, player := range pollForMod(game, world, mods.Shelled, false) {
			if r.Next() < peckedFreeChance {
				return Event{Kind: KindPeckedFree, Target: player}, true
			}
		}
		return Event{}, false

	case weather.Feedback:
		return feedbackTick(game, world, r)

	case weather.Reverb:
		return reverbTick(game, world, r)

	case weather.Blooddrain:
		return blooddrainTick(game, world, r)

	case weather.Sun2:
		return sunBlackHoleTick(game, KindSun2, r)

	case weather.BlackHole:
		return sunBlackHoleTick(game, KindBlackHole, r)

	case weather.Salmon:
		return Event{}, false

	case weather.PolarityPlus, weather.PolarityMinus:
		if r.Next() < polarityChance {
			return Event{Kind: KindPolaritySwitch}, true
		}
		return Event{}, false

	case weather.SunPointOne, weather.SumSun:
		return Event{}, false

	case weather.Night:
		return nightTick(game, world, r)
	}
	return Event{}, false
}

// Estimated weather-trigger probabilities. Named here, per spec.md §9, so
// they stay adjustable without hunting through weatherPhase's branches.
const (
	eclipseChainIncinChance = 0.002
	eclipseIncinChance      = 0.00045
	peanutChance            = 0.0006
	birdsChance             = 0.003
	peckedFreeChance        = 0.00015
	feedbackFlickerChance   = 0.02
	feedbackBaseChance      = 0.0001
	feedbackIsBatterChance  = 9.0 / 14.0
	reverbChance            = 0.00003
	reverbTypeAllCut        = 0.09
	reverbTypePartialCut    = 0.55
	reverbTypeLineupCut     = 0.95
	blooddrainChance        = 0.00065
	polarityChance          = 0.035
	nightChance             = 0.01
	soundproofDecrease      = -0.05
)

func notOnBaseWeight(game *Game) func(uuid.UUID) float64 {
	return func(id uuid.UUID) float64 {
		if game.Runners.Contains(id) {
			return 0.0
		}
		return 1.0
	}
}

func eclipseTick(game *Game, world *entities.World, r *rng.Source) (Event, bool) {
	incinRoll := r.Next()
	target := game.PickPlayerWeighted(world, r.Next(), notOnBaseWeight(game), true)

	if world.Player(target).Mods.Has(mods.Unstable) && incinRoll < eclipseChainIncinChance {
		if world.Player(target).Mods.Has(mods.Fireproof) {
			return Event{Kind: KindFireproof, Target: target}, true
		}
		targetTeam := *world.Player(target).Team
		chainTarget := game.PickPlayerWeighted(world, r.Next(), func(id uuid.UUID) float64 {
			if world.Player(id).Team != nil && *world.Player(id).Team == targetTeam {
				return 0.0
			}
			return 1.0
		}, false)
		replacement := entities.NewPlayer(r)

		var chain *uuid.UUID
		if !world.Player(chainTarget).Mods.Has(mods.Stable) {
			c := chainTarget
			chain = &c
		}
		return Event{Kind: KindIncinerationWithChain, Target: target, Replacement: replacement, Chain: chain}, true
	}

	if incinRoll < eclipseIncinChance {
		if world.Player(target).Mods.Has(mods.Fireproof) {
			return Event{Kind: KindFireproof, Target: target}, true
		}
		replacement := entities.NewPlayer(r)
		return Event{Kind: KindIncineration, Target: target, Replacement: replacement}, true
	}
	return Event{}, false
}

func feedbackTick(game *Game, world *entities.World, r *rng.Source) (Event, bool) {
	isBatter := r.Next() < feedbackIsBatterChance
	feedbackRoll := r.Next()
	batter := *game.BattingTeam().Batter
	pitcher := game.PitchingTeam().Pitcher

	var target1, target2 uuid.UUID
	haveTargets := false

	switch {
	case isBatter && world.Player(batter).Mods.Has(mods.Flickering) && feedbackRoll < feedbackFlickerChance:
		target1, target2 = batter, game.PickFielder(world, r.Next())
		haveTargets = true
	case !isBatter && world.Player(pitcher).Mods.Has(mods.Flickering) && feedbackRoll < feedbackFlickerChance:
		rotation := world.Team(game.BattingTeam().ID).Rotation
		idx := int(r.Next() * float64(len(rotation)))
		if idx >= len(rotation) {
			idx = len(rotation) - 1
		}
		target1, target2 = pitcher, rotation[idx]
		haveTargets = true
	case feedbackRoll < feedbackBaseChance:
		if isBatter {
			target1, target2 = batter, game.PickFielder(world, r.Next())
		} else {
			rotation := world.Team(game.BattingTeam().ID).Rotation
			idx := int(r.Next() * float64(len(rotation)))
			if idx >= len(rotation) {
				idx = len(rotation) - 1
			}
			target1, target2 = pitcher, rotation[idx]
		}
		haveTargets = true
	}

	if !haveTargets {
		return Event{}, false
	}

	if world.Player(target1).Mods.Has(mods.Soundproof) {
		return Event{Kind: KindSoundproof, Resists: target1, Tangled: target2, Decreases: rollRandomBoosts(r, soundproofDecrease)}, true
	}
	if world.Player(target2).Mods.Has(mods.Soundproof) {
		return Event{Kind: KindSoundproof, Resists: target2, Tangled: target1, Decreases: rollRandomBoosts(r, soundproofDecrease)}, true
	}
	return Event{Kind: KindFeedback, Target: target1, Target2: target2}, true
}

func reverbTick(game *Game, world *entities.World, r *rng.Source) (Event, bool) {
	if r.Next() >= reverbChance {
		return Event{}, false
	}

	typeRoll := r.Next()
	var reverbType entities.ReverbType
	switch {
	case typeRoll < reverbTypeAllCut:
		reverbType = entities.ReverbAll
	case typeRoll < reverbTypePartialCut:
		reverbType = entities.ReverbPartial
	case typeRoll < reverbTypeLineupCut:
		reverbType = entities.ReverbLineup
	default:
		reverbType = entities.ReverbRotation
	}

	teamID := game.HomeTeam.ID
	if r.Next() < 0.5 {
		teamID = game.AwayTeam.ID
	}

	team := world.Team(teamID)
	var gravityPlayers []int
	for i, id := range team.Lineup {
		if world.Player(id).Mods.Has(mods.Gravity) {
			gravityPlayers = append(gravityPlayers, i)
		}
	}
	for i, id := range team.Rotation {
		if world.Player(id).Mods.Has(mods.Gravity) {
			gravityPlayers = append(gravityPlayers, i+len(team.Lineup))
		}
	}

	changes := team.RollReverbChanges(r, reverbType, gravityPlayers)
	return Event{Kind: KindReverb, ReverbType: reverbType, Team: teamID, Changes: changes}, true
}

func blooddrainTick(game *Game, world *entities.World, r *rng.Source) (Event, bool) {
	if r.Next() >= blooddrainChance {
		return Event{}, false
	}

	fieldingDrains := r.Next() < 0.5
	isAtBat := r.Next() < 0.5
	stat := int(r.Next() * 4.0)
	if stat > 3 {
		stat = 3
	}

	if isAtBat {
		drainer, target := game.PitchingTeam().Pitcher, *game.BattingTeam().Batter
		if !fieldingDrains {
			drainer, target = target, drainer
		}
		return Event{Kind: KindBlooddrain, Drainer: drainer, Target: target, Stat: stat}, true
	}

	fielder := game.PickFielder(world, r.Next())
	batter := *game.BattingTeam().Batter
	hitter := batter
	if !game.Runners.Empty() {
		hitter = game.PickPlayerWeighted(world, r.Next(), func(id uuid.UUID) float64 {
			if id == batter || game.Runners.Contains(id) {
				return 1.0
			}
			return 0.0
		}, true)
	}

	drainer, target := fielder, hitter
	if !fieldingDrains {
		drainer, target = hitter, fielder
	}
	return Event{Kind: KindBlooddrain, Drainer: drainer, Target: target, Stat: stat}, true
}

func sunBlackHoleTick(game *Game, kind Kind, r *rng.Source) (Event, bool) {
	if game.HomeTeam.Score-10.0 >= -0.001 {
		return Event{Kind: kind, HomeTeam: true}, true
	}
	if game.AwayTeam.Score-10.0 >= -0.001 {
		return Event{Kind: kind, HomeTeam: false}, true
	}
	return Event{}, false
}

func nightTick(game *Game, world *entities.World, r *rng.Source) (Event, bool) {
	if r.Next() >= nightChance {
		return Event{}, false
	}

	isBatter := r.Next() < 0.5
	var shadows []uuid.UUID
	if isBatter {
		shadows = world.Team(game.BattingTeam().ID).Shadows
	} else {
		shadows = world.Team(game.PitchingTeam().ID).Shadows
	}

	idx := int(r.Next() * float64(len(shadows)))
	if idx >= len(shadows) {
		idx = len(shadows) - 1
	}
	replacement := shadows[idx]
	boosts := rollRandomBoosts(r, 0.2)
	return Event{Kind: KindNightShift, BatterFlag: isBatter, Target: replacement, ReplacementIdx: idx, Boosts: boosts}, true
}
