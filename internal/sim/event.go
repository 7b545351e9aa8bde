package sim

import (
	"github.com/google/uuid"

	"github.com/baseball-sim/sim-core/internal/bases"
	"github.com/baseball-sim/sim-core/internal/entities"
	"github.com/baseball-sim/sim-core/internal/mods"
	"github.com/baseball-sim/sim-core/internal/weather"
)

// Kind tags an Event's variant. It doubles as the feed string recorded by
// Apply and as the externally-observable trace §4.8 promises callers.
type Kind string

const (
	KindBatterUp              Kind = "batterUp"
	KindInningSwitch          Kind = "inningSwitch"
	KindGameOver              Kind = "gameOver"
	KindBall                  Kind = "ball"
	KindStrike                Kind = "strike"
	KindFoul                  Kind = "foul"
	KindStrikeout             Kind = "strikeOut"
	KindWalk                  Kind = "walk"
	KindHomeRun               Kind = "homeRun"
	KindBaseHit               Kind = "baseHit"
	KindGroundOut             Kind = "groundOut"
	KindFlyout                Kind = "flyout"
	KindDoublePlay            Kind = "doublePlay"
	KindFieldersChoice        Kind = "fieldersChoice"
	KindBaseSteal             Kind = "baseSteal"
	KindCaughtStealing        Kind = "caughtStealing"
	KindIncineration          Kind = "incineration"
	KindPeanut                Kind = "peanut"
	KindBirds                 Kind = "birds"
	KindFeedback              Kind = "feedback"
	KindReverb                Kind = "reverb"
	KindBlooddrain            Kind = "blooddrain"
	KindSun2                  Kind = "sun2"
	KindBlackHole             Kind = "blackHole"
	KindSalmon                Kind = "salmon"
	KindPolaritySwitch        Kind = "polaritySwitch"
	KindNightShift            Kind = "nightShift"
	KindFireproof             Kind = "fireproof"
	KindSoundproof            Kind = "soundproof"
	KindShelled               Kind = "shelled"
	KindHitByPitch            Kind = "hitByPitch"
	KindIncinerationWithChain Kind = "incinerationWithChain"
	KindPeckedFree            Kind = "peckedFree"
	KindZap                   Kind = "zap"
)

// Event is a tagged union of every state transition the pipeline can emit,
// translated as one struct with a discriminant (Kind) plus the sparse set
// of payload fields each variant actually reads. Field comments note which
// Kind(s) populate them; an Event built by the pipeline only ever sets the
// fields its own Kind needs.
type Event struct {
	Kind Kind

	Batter        uuid.UUID // BatterUp, Shelled
	Reverberating bool      // BatterUp

	Inning int  // InningSwitch
	Top    bool // InningSwitch

	Bases        int               // BaseHit: 1=single, 2=double, 3=triple
	RunnersAfter *bases.Baserunners // BaseHit, GroundOut, Flyout, DoublePlay, FieldersChoice
	Fielder      uuid.UUID         // GroundOut, Flyout

	Runner   uuid.UUID // BaseSteal, CaughtStealing
	BaseFrom int       // BaseSteal, CaughtStealing
	BaseTo   int       // BaseSteal

	Target      uuid.UUID       // Incineration, IncinerationWithChain, Fireproof, Peanut, Feedback (target1), HitByPitch, PeckedFree (as Player), NightShift (replacement)
	Target2     uuid.UUID       // Feedback (target2)
	Replacement *entities.Player // Incineration, IncinerationWithChain
	Chain       *uuid.UUID      // IncinerationWithChain
	Yummy       bool            // Peanut

	ReverbType entities.ReverbType // Reverb
	Team       uuid.UUID           // Reverb
	Changes    []int               // Reverb

	Drainer uuid.UUID // Blooddrain
	Stat    int       // Blooddrain

	HomeTeam     bool // Sun2, BlackHole
	HomeRunsLost bool // Salmon
	AwayRunsLost bool // Salmon

	ReplacementIdx int       // NightShift
	Boosts         []float64 // NightShift
	Decreases      []float64 // Soundproof
	Resists        uuid.UUID // Soundproof
	Tangled        uuid.UUID // Soundproof

	HBPType    int  // HitByPitch: 0=Unstable, 1=Flickering
	BatterFlag bool // NightShift, Zap: true if the batting side is affected
}

// Apply mutates game and world according to e's Kind, after recording e's
// tag in the game's feed — matching the source's unconditional tag append
// before the per-variant dispatch.
func (e Event) Apply(game *Game, world *entities.World) {
	game.Events.Add(string(e.Kind))

	switch e.Kind {
	case KindBatterUp:
		bt := game.BattingTeam()
		if e.Reverberating {
			bt.BatterIndex--
		}
		batter := e.Batter
		bt.Batter = &batter

	case KindInningSwitch:
		if game.Weather == weather.Salmon {
			if game.Top {
				runsAway := game.AwayTeam.Score - game.LinescoreAway[0]
				game.LinescoreAway = append(game.LinescoreAway, runsAway)
				game.LinescoreAway[0] += runsAway
			} else {
				runsHome := game.HomeTeam.Score - game.LinescoreHome[0]
				game.LinescoreHome = append(game.LinescoreHome, runsHome)
				game.LinescoreHome[0] += runsHome
			}
		}
		game.Inning = e.Inning
		game.Top = e.Top
		game.Outs = 0
		game.Balls = 0
		game.Strikes = 0
		game.ScoringPlaysInning = 0
		game.Runners = bases.New()

	case KindGameOver:
		// terminal; no mutation.

	case KindBall:
		game.Balls++

	case KindStrike:
		game.Strikes++

	case KindFoul:
		game.Strikes++
		if max := game.MaxStrikes(world) - 1; game.Strikes > max {
			game.Strikes = max
		}

	case KindStrikeout:
		bt := game.BattingTeam()
		world.Player(*bt.Batter).Feed.Add(string(e.Kind))
		game.Outs++
		game.EndPA()

	case KindWalk:
		bt := game.BattingTeam()
		world.Player(*bt.Batter).Feed.Add(string(e.Kind))
		game.Runners.Walk()
		game.Runners.Add(0, *bt.Batter)
		game.BaseSweep(world)
		game.EndPA()

	case KindHomeRun:
		bt := game.BattingTeam()
		batter := *bt.Batter
		world.Player(batter).Feed.Add(string(e.Kind))
		upgradeSpicy(game, world)
		noRunnersOn := game.Runners.Empty()
		game.Runners.AdvanceAll(game.NBases(world))
		bt.Score += game.RunValue() + world.Player(batter).GetRunValue()
		game.BaseSweep(world)
		if noRunnersOn {
			game.ScoringPlaysInning++
		}
		game.EndPA()

	case KindBaseHit:
		bt := game.BattingTeam()
		batter := *bt.Batter
		world.Player(batter).Feed.Add(string(e.Kind))
		upgradeSpicy(game, world)
		game.Runners = e.RunnersAfter
		game.BaseSweep(world)
		game.Runners.Add(e.Bases-1, batter)
		game.EndPA()

	case KindGroundOut:
		bt := game.BattingTeam()
		world.Player(*bt.Batter).Feed.Add(string(e.Kind))
		downgradeSpicy(game, world)
		game.Outs++
		game.Runners = e.RunnersAfter
		game.BaseSweep(world)
		game.EndPA()

	case KindFlyout:
		bt := game.BattingTeam()
		world.Player(*bt.Batter).Feed.Add(string(e.Kind))
		downgradeSpicy(game, world)
		game.Outs++
		game.Runners = e.RunnersAfter
		game.BaseSweep(world)
		game.EndPA()

	case KindDoublePlay:
		bt := game.BattingTeam()
		world.Player(*bt.Batter).Feed.Add(string(e.Kind))
		downgradeSpicy(game, world)
		game.Outs += 2
		game.Runners = e.RunnersAfter
		game.BaseSweep(world)
		game.EndPA()

	case KindFieldersChoice:
		bt := game.BattingTeam()
		batter := *bt.Batter
		world.Player(batter).Feed.Add(string(e.Kind))
		downgradeSpicy(game, world)
		game.Outs++
		game.Runners = e.RunnersAfter
		game.Runners.Add(0, batter)
		game.BaseSweep(world)
		game.EndPA()

	case KindBaseSteal:
		game.Runners.Advance(e.BaseFrom)
		game.BaseSweep(world)

	case KindCaughtStealing:
		game.Runners.Remove(e.BaseFrom)
		game.Outs++

	case KindIncineration:
		applyIncineration(game, world, e.Target, e.Replacement)

	case KindIncinerationWithChain:
		applyIncineration(game, world, e.Target, e.Replacement)
		if e.Chain != nil {
			world.Player(*e.Chain).Mods.Add(mods.Unstable, mods.Week)
		}

	case KindPeanut:
		coeff := -0.2
		if e.Yummy {
			coeff = 0.2
		}
		boosts := make([]float64, 26)
		for i := range boosts {
			boosts[i] = coeff
		}
		world.Player(e.Target).Boost(boosts)

	case KindBirds:
		// no-op.

	case KindFeedback:
		bt := game.BattingTeam()
		pt := game.PitchingTeam()
		if bt.Batter != nil {
			if *bt.Batter == e.Target {
				target2 := e.Target2
				bt.Batter = &target2
			} else {
				pt.Pitcher = e.Target2
			}
		}
		world.Swap(e.Target, e.Target2)

	case KindReverb:
		world.Team(e.Team).ApplyReverbChanges(e.ReverbType, e.Changes)
		bt := game.BattingTeam()
		pt := game.PitchingTeam()
		if bt.ID == e.Team && e.ReverbType != entities.ReverbRotation {
			wt := world.Team(e.Team)
			newBatter := wt.Lineup[bt.BatterIndex%len(wt.Lineup)]
			bt.Batter = &newBatter
		} else if pt.ID == e.Team && e.ReverbType != entities.ReverbLineup {
			pt.Pitcher = world.Team(e.Team).Rotation[0]
		} else if bt.ID == e.Team && e.ReverbType != entities.ReverbLineup {
			bt.Pitcher = world.Team(e.Team).Rotation[0]
		}

	case KindBlooddrain:
		boosts := statGroupBoosts(e.Stat, 0.1)
		world.Player(e.Drainer).Boost(boosts)
		decreases := statGroupBoosts(e.Stat, -0.1)
		world.Player(e.Target).Boost(decreases)

	case KindSun2, KindBlackHole:
		if e.HomeTeam {
			game.HomeTeam.Score -= 10
		} else {
			game.AwayTeam.Score -= 10
		}

	case KindSalmon:
		limit := 2
		if game.Top {
			limit = 3
		}
		if !game.Events.Has("salmon", limit) {
			game.SalmonResetsInning = 0
		}
		if e.AwayRunsLost {
			idx := len(game.LinescoreAway) - 1 - game.SalmonResetsInning
			game.AwayTeam.Score -= game.LinescoreAway[idx]
		}
		if e.HomeRunsLost {
			idx := len(game.LinescoreHome) - 1 - game.SalmonResetsInning
			game.HomeTeam.Score -= game.LinescoreHome[idx]
		}
		if !game.Top {
			game.Top = true
		} else {
			game.Inning--
		}
		game.SalmonResetsInning++

	case KindPolaritySwitch:
		game.Polarity = !game.Polarity

	case KindNightShift:
		if e.BatterFlag {
			bt := game.BattingTeam()
			activeBatter := *bt.Batter
			team := world.Team(bt.ID)
			activeOrder := bt.BatterIndex % len(team.Lineup)
			team.Lineup[activeOrder] = e.Target
			team.Shadows[e.ReplacementIdx] = activeBatter
			world.Player(e.Target).Boost(e.Boosts)
			bt.Batter = &e.Target
		} else {
			pt := game.PitchingTeam()
			activePitcher := pt.Pitcher
			team := world.Team(pt.ID)
			team.Rotation[0] = e.Target
			team.Shadows[e.ReplacementIdx] = activePitcher
			world.Player(e.Target).Boost(e.Boosts)
			pt.Pitcher = e.Target
		}

	case KindFireproof:
		// no-op; the target resisted, nothing to mutate.

	case KindSoundproof:
		world.Player(e.Tangled).Boost(e.Decreases)

	case KindShelled:
		game.BattingTeam().BatterIndex++

	case KindHitByPitch:
		bt := game.BattingTeam()
		effect := mods.Flickering
		if e.HBPType == 0 {
			effect = mods.Unstable
		}
		world.Player(e.Target).Mods.Add(effect, mods.Week)
		game.Runners.Walk()
		game.Runners.Add(0, *bt.Batter)
		game.BaseSweep(world)
		game.EndPA()

	case KindPeckedFree:
		world.Player(e.Target).Mods.Remove(mods.Shelled)
		world.Player(e.Target).Mods.Add(mods.Superallergic, mods.Permanent)

	case KindZap:
		if e.BatterFlag {
			game.Strikes--
		} else {
			game.Balls--
		}
	}
}

// applyIncineration installs replacement on target's team in target's
// place, redirecting the current batter/pitcher pointer if either points at
// target. Preserved exactly as the source structures it: if a batter is
// currently assigned, only the batter side is checked, even when target is
// actually the pitcher — a pitcher redirect only happens when no batter is
// assigned this tick.
func applyIncineration(game *Game, world *entities.World, target uuid.UUID, replacement *entities.Player) {
	replacementID := world.AddRolledPlayer(replacement, *world.Player(target).Team)
	bt := game.BattingTeam()
	if bt.Batter != nil {
		if *bt.Batter == target {
			bt.Batter = &replacementID
		}
	} else if target == game.PitchingTeam().Pitcher {
		game.PitchingTeam().Pitcher = replacementID
	}
	world.ReplacePlayer(target, replacementID)
}

// statGroupBoosts builds a 26-length boost vector with amount applied to
// the attribute group stat selects: 0=pitching, 1=batting, 2=defense,
// 3=baserunning. Any other value yields an all-zero vector, matching the
// source's catch-all.
func statGroupBoosts(stat int, amount float64) []float64 {
	boosts := make([]float64, 26)
	var lo, hi int
	switch stat {
	case 0:
		lo, hi = 8, 14
	case 1:
		lo, hi = 0, 8
	case 2:
		lo, hi = 19, 24
	case 3:
		lo, hi = 14, 19
	default:
		return boosts
	}
	for i := lo; i < hi; i++ {
		boosts[i] = amount
	}
	return boosts
}

func upgradeSpicy(game *Game, world *entities.World) {
	batter := world.Player(*game.BattingTeam().Batter)
	if batter.Mods.Has(mods.Spicy) && batter.Feed.StreakMultiple([]string{"baseHit", "homeRun"}, -1) == 1 {
		batter.Mods.Add(mods.HeatingUp, mods.Permanent)
	} else if batter.Mods.Has(mods.HeatingUp) {
		batter.Mods.Remove(mods.HeatingUp)
		batter.Mods.Add(mods.RedHot, mods.Permanent)
	}
}

func downgradeSpicy(game *Game, world *entities.World) {
	batter := world.Player(*game.BattingTeam().Batter)
	if batter.Mods.Has(mods.RedHot) {
		batter.Mods.Remove(mods.RedHot)
	} else if batter.Mods.Has(mods.HeatingUp) {
		batter.Mods.Remove(mods.HeatingUp)
	}
}
