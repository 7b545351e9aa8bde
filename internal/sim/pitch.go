package sim

import (
	"github.com/google/uuid"

	"github.com/baseball-sim/sim-core/internal/bases"
	"github.com/baseball-sim/sim-core/internal/entities"
	"github.com/baseball-sim/sim-core/internal/formulas"
	"github.com/baseball-sim/sim-core/internal/mods"
	"github.com/baseball-sim/sim-core/internal/rng"
)

// pitchOutcomeKind distinguishes the possible results of doPitch, before
// they're turned into a game Event (which also needs the already-installed
// runner layout, not just the outcome).
type pitchOutcomeKind int

const (
	outcomeBall pitchOutcomeKind = iota
	outcomeStrikeSwinging
	outcomeStrikeLooking
	outcomeFoul
	outcomeGroundOut
	outcomeFlyout
	outcomeDoublePlay
	outcomeFieldersChoice
	outcomeHomeRun
	outcomeTriple
	outcomeDouble
	outcomeSingle
)

// pitchOutcome is doPitch's return value: a kind plus whichever payload
// that kind needs.
type pitchOutcome struct {
	kind pitchOutcomeKind

	fielder          uuid.UUID
	advancingRunners []uuid.UUID
	runnerOut        int
}

func pitchContext(game *Game, world *entities.World) formulas.Context {
	return formulas.NewContext(world.SeasonRuleset, game.Day, game.Weather)
}

// DoPitch resolves one pitch against the current batter and turns the
// result into the Event the pipeline's Pitch phase emits.
func DoPitch(world *entities.World, game *Game, r *rng.Source) Event {
	return doPitch(world, game, r).toEvent(game, world)
}

// doPitch resolves one pitch: the exactly-ordered roll sequence specified
// in §4.6. Roll order is a correctness invariant — every roll is drawn even
// when its result goes unused, since skipping a draw desyncs every
// subsequent roll in the game from a byte-faithful replay.
func doPitch(world *entities.World, game *Game, r *rng.Source) pitchOutcome {
	ctx := pitchContext(game, world)
	pitcher := world.Player(game.PitchingTeam().Pitcher)
	batter := world.Player(*game.BattingTeam().Batter)

	isFlinching := game.Strikes == 0 && batter.Mods.Has(mods.Flinch)

	isStrike := r.Next() < formulas.StrikeThreshold(pitcher, batter, isFlinching, ctx)

	doesSwing := false
	if !isFlinching {
		doesSwing = r.Next() < formulas.SwingThreshold(pitcher, batter, isStrike, ctx)
	}

	if !doesSwing {
		if isStrike {
			return pitchOutcome{kind: outcomeStrikeLooking}
		}
		return pitchOutcome{kind: outcomeBall}
	}

	doesContact := r.Next() < formulas.ContactThreshold(pitcher, batter, isStrike, ctx)
	if !doesContact {
		return pitchOutcome{kind: outcomeStrikeSwinging}
	}

	isFoul := r.Next() < formulas.FoulThreshold(batter, ctx)
	if isFoul {
		return pitchOutcome{kind: outcomeFoul}
	}

	outDefenderID := game.PickFielder(world, r.Next())
	outDefender := world.Player(outDefenderID)

	// Preserved verbatim: the source's comparison is '>', not '<' — see
	// formulas.OutThreshold's doc comment.
	isOut := r.Next() > formulas.OutThreshold(pitcher, batter, outDefender, ctx)
	if isOut {
		return resolveOut(world, game, r, ctx, pitcher, batter, outDefenderID, outDefender)
	}

	isHR := r.Next() < formulas.HRThreshold(pitcher, batter, ctx)
	if isHR {
		return pitchOutcome{kind: outcomeHomeRun}
	}

	hitDefenderID := game.PickFielder(world, r.Next())
	hitDefender := world.Player(hitDefenderID)
	doubleRoll := r.Next()
	tripleRoll := r.Next()

	var advancing []uuid.UUID
	for _, runner := range game.Runners.Iter() {
		p := world.Player(runner.ID)
		if r.Next() < formulas.HitAdvancementThreshold(p, hitDefender, ctx) {
			advancing = append(advancing, runner.ID)
		}
	}

	if tripleRoll < formulas.TripleThreshold(pitcher, batter, hitDefender, ctx) {
		return pitchOutcome{kind: outcomeTriple, advancingRunners: advancing}
	}
	if doubleRoll < formulas.DoubleThreshold(pitcher, batter, hitDefender, ctx) {
		return pitchOutcome{kind: outcomeDouble, advancingRunners: advancing}
	}
	return pitchOutcome{kind: outcomeSingle, advancingRunners: advancing}
}

// resolveOut handles the fly/ground branch once the pitch has already been
// ruled an out. fly_defender is deliberately re-read from outDefenderID,
// not the freshly-picked flyDefenderID — a known anomaly in the source
// (open question: whether the fresh pick was ever meant to be used).
func resolveOut(world *entities.World, game *Game, r *rng.Source, ctx formulas.Context, pitcher, batter *entities.Player, outDefenderID uuid.UUID, outDefender *entities.Player) pitchOutcome {
	flyDefenderID := game.PickFielder(world, r.Next())
	flyDefender := world.Player(outDefenderID)

	isFly := r.Next() < formulas.FlyThreshold(flyDefender, ctx)
	if isFly {
		var advancing []uuid.UUID
		for _, runner := range game.Runners.Iter() {
			p := world.Player(runner.ID)
			if r.Next() < formulas.FlyoutAdvancementThreshold(p, runner.Base, ctx) {
				advancing = append(advancing, runner.ID)
			}
		}
		return pitchOutcome{kind: outcomeFlyout, fielder: flyDefenderID, advancingRunners: advancing}
	}

	groundDefenderID := game.PickFielder(world, r.Next())

	if !game.Runners.Empty() {
		dpRoll := r.Next()
		if game.Runners.Occupied(0) {
			if game.Outs < 2 && dpRoll < formulas.DoublePlayThreshold(batter, pitcher, outDefender, ctx) {
				return pitchOutcome{kind: outcomeDoublePlay, runnerOut: game.Runners.PickRunner(r.Next())}
			}

			sacRoll := r.Next()
			if sacRoll < formulas.GroundoutSacrificeThreshold(batter, ctx) {
				var advancing []uuid.UUID
				for _, runner := range game.Runners.Iter() {
					p := world.Player(runner.ID)
					if r.Next() < formulas.GroundoutAdvancementThreshold(p, outDefender, ctx) {
						advancing = append(advancing, runner.ID)
					}
				}
				return pitchOutcome{kind: outcomeGroundOut, fielder: groundDefenderID, advancingRunners: advancing}
			}
			return pitchOutcome{kind: outcomeFieldersChoice, runnerOut: game.Runners.PickRunnerFC()}
		}

		var advancing []uuid.UUID
		for _, runner := range game.Runners.Iter() {
			p := world.Player(runner.ID)
			if r.Next() < formulas.GroundoutAdvancementThreshold(p, outDefender, ctx) {
				advancing = append(advancing, runner.ID)
			}
		}
		return pitchOutcome{kind: outcomeGroundOut, fielder: groundDefenderID, advancingRunners: advancing}
	}

	return pitchOutcome{kind: outcomeGroundOut, fielder: groundDefenderID}
}

// toEvent turns a resolved pitch outcome into the Event the Pitch phase
// emits, computing runners_after where the outcome calls for it. Unlike
// max_balls in the traced source (a bare literal 4), MaxBalls here reads the
// batting team's WalkInThePark mod — see spec.md §3's three-ball-walk badge.
func (o pitchOutcome) toEvent(game *Game, world *entities.World) Event {
	switch o.kind {
	case outcomeBall:
		if game.Balls+1 < game.MaxBalls(world) {
			return Event{Kind: KindBall}
		}
		return Event{Kind: KindWalk}

	case outcomeStrikeSwinging, outcomeStrikeLooking:
		if game.Strikes+1 >= game.MaxStrikes(world) {
			return Event{Kind: KindStrikeout}
		}
		return Event{Kind: KindStrike}

	case outcomeFoul:
		return Event{Kind: KindFoul}

	case outcomeGroundOut:
		runners := cloneAdvanceIf(game.Runners, o.advancingRunners)
		return Event{Kind: KindGroundOut, Fielder: o.fielder, RunnersAfter: runners}

	case outcomeFlyout:
		runners := cloneAdvanceIf(game.Runners, o.advancingRunners)
		return Event{Kind: KindFlyout, Fielder: o.fielder, RunnersAfter: runners}

	case outcomeDoublePlay:
		runners := cloneOf(game.Runners)
		runners.Remove(o.runnerOut)
		runners.AdvanceAll(1)
		return Event{Kind: KindDoublePlay, RunnersAfter: runners}

	case outcomeFieldersChoice:
		runners := cloneOf(game.Runners)
		runners.Remove(o.runnerOut)
		runners.AdvanceAll(1)
		return Event{Kind: KindFieldersChoice, RunnersAfter: runners}

	case outcomeHomeRun:
		return Event{Kind: KindHomeRun}

	case outcomeTriple:
		runners := cloneOf(game.Runners)
		runners.AdvanceAll(3)
		applyAdvanceIf(runners, o.advancingRunners)
		return Event{Kind: KindBaseHit, Bases: 3, RunnersAfter: runners}

	case outcomeDouble:
		runners := cloneOf(game.Runners)
		runners.AdvanceAll(2)
		applyAdvanceIf(runners, o.advancingRunners)
		return Event{Kind: KindBaseHit, Bases: 2, RunnersAfter: runners}

	case outcomeSingle:
		runners := cloneOf(game.Runners)
		runners.AdvanceAll(1)
		applyAdvanceIf(runners, o.advancingRunners)
		return Event{Kind: KindBaseHit, Bases: 1, RunnersAfter: runners}
	}

	panic("sim: unhandled pitch outcome")
}

func cloneOf(b *bases.Baserunners) *bases.Baserunners {
	clone := bases.New()
	for _, r := range b.Iter() {
		clone.Add(r.Base, r.ID)
	}
	return clone
}

func applyAdvanceIf(b *bases.Baserunners, advancing []uuid.UUID) {
	set := make(map[uuid.UUID]bool, len(advancing))
	for _, id := range advancing {
		set[id] = true
	}
	b.AdvanceIf(func(r bases.Runner) bool { return set[r.ID] })
}

func cloneAdvanceIf(b *bases.Baserunners, advancing []uuid.UUID) *bases.Baserunners {
	clone := cloneOf(b)
	applyAdvanceIf(clone, advancing)
	return clone
}
