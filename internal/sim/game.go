// Package sim implements the per-tick phase pipeline, the pitch outcome
// resolver, and the event algebra that together turn a World and a PRNG
// stream into a deterministic sequence of game events.
package sim

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/baseball-sim/sim-core/internal/bases"
	"github.com/baseball-sim/sim-core/internal/entities"
	"github.com/baseball-sim/sim-core/internal/feed"
	"github.com/baseball-sim/sim-core/internal/mods"
	"github.com/baseball-sim/sim-core/internal/rng"
	"github.com/baseball-sim/sim-core/internal/weather"
)

// GameTeam is one side's in-game scoreboard record: who's pitching, who's
// batting (if anyone, mid-plate-appearance), and where the lineup currently
// stands.
type GameTeam struct {
	ID           uuid.UUID
	Pitcher      uuid.UUID
	Batter       *uuid.UUID
	BatterIndex  int
	Score        float64
}

// Game is one ballgame's full mutable state. Every mutation during a tick
// passes through Event.Apply on a borrowed *Game and *entities.World; Game
// itself never reaches into the PRNG.
type Game struct {
	ID uuid.UUID

	Weather weather.Weather
	Day     int

	Inning int
	Top    bool

	Balls, Strikes, Outs int

	Polarity bool

	ScoringPlaysInning int
	SalmonResetsInning int

	Events *feed.Events

	HomeTeam GameTeam
	AwayTeam GameTeam

	Runners *bases.Baserunners

	LinescoreHome []float64
	LinescoreAway []float64
}

// NewGame constructs a fresh game between homeID and awayID on day, starting
// each team's current pitcher at the front of its rotation. weatherOverride,
// if non-nil, bypasses the season-indexed weather draw.
func NewGame(homeID, awayID uuid.UUID, day int, weatherOverride *weather.Weather, world *entities.World, r *rng.Source) *Game {
	w := weather.Weather(0)
	if weatherOverride != nil {
		w = *weatherOverride
	} else {
		w = weather.Sample(r, world.SeasonRuleset)
	}

	home := world.Team(homeID)
	away := world.Team(awayID)

	return &Game{
		ID:      uuid.New(),
		Weather: w,
		Day:     day,
		Inning:  1,
		Top:     true,

		Events: feed.New(),

		HomeTeam: GameTeam{ID: homeID, Pitcher: home.Rotation[0]},
		AwayTeam: GameTeam{ID: awayID, Pitcher: away.Rotation[0]},

		Runners: bases.New(),

		LinescoreHome: []float64{0},
		LinescoreAway: []float64{0},
	}
}

// BattingTeam returns the team currently at bat: away in the top half, home
// in the bottom.
func (g *Game) BattingTeam() *GameTeam {
	if g.Top {
		return &g.AwayTeam
	}
	return &g.HomeTeam
}

// PitchingTeam returns the team currently in the field.
func (g *Game) PitchingTeam() *GameTeam {
	if g.Top {
		return &g.HomeTeam
	}
	return &g.AwayTeam
}

// MaxBalls is 4, unless the batting team carries WalkInThePark (walk at
// balls==2, i.e. a 3-ball max).
func (g *Game) MaxBalls(world *entities.World) int {
	if world.Team(g.BattingTeam().ID).Mods.Has(mods.WalkInThePark) {
		return 3
	}
	return 4
}

// MaxStrikes is 3, unless the current batter carries FourthStrike.
func (g *Game) MaxStrikes(world *entities.World) int {
	batter := g.BattingTeam().Batter
	if batter != nil && world.Player(*batter).Mods.Has(mods.FourthStrike) {
		return 4
	}
	return 3
}

// NBases is 5 if the batting team carries FifthBase, else 4. Home plate is
// index NBases-1, i.e. a runner at base NBases-1 has scored.
func (g *Game) NBases(world *entities.World) int {
	if world.Team(g.BattingTeam().ID).Mods.Has(mods.FifthBase) {
		return 5
	}
	return 4
}

// RunValue is the per-run credit for this tick: polarity flips its sign,
// SunPointOne scales it by inning/10, SumSun adds the inning's scoring-play
// count. See spec §4.9.
func (g *Game) RunValue() float64 {
	polarityCoeff := 1.0
	if g.Polarity {
		polarityCoeff = -1.0
	}
	sunPointOne := 1.0
	if g.Weather == weather.SunPointOne {
		sunPointOne = float64(g.Inning) / 10.0
	}
	sumSun := 0.0
	if g.Weather == weather.SumSun {
		sumSun = float64(g.ScoringPlaysInning)
	}
	return polarityCoeff*sunPointOne + sumSun
}

// BaseSweep removes every runner who has crossed home (base >= NBases-1),
// crediting the batting team's score with this tick's run value plus the
// runner's own Wired/Tired contribution, and bumping ScoringPlaysInning once
// per runner swept.
func (g *Game) BaseSweep(world *entities.World) {
	last := g.NBases(world) - 1
	bt := g.BattingTeam()
	runValue := g.RunValue()

	for _, r := range g.Runners.Iter() {
		if r.Base >= last {
			g.Runners.Remove(r.Base)
			bt.Score += runValue + world.Player(r.ID).GetRunValue()
			g.ScoringPlaysInning++
		}
	}
}

// EndPA clears the current batter, resets the count, and advances the
// batting team past this plate appearance.
func (g *Game) EndPA() {
	bt := g.BattingTeam()
	bt.Batter = nil
	bt.BatterIndex++
	g.Balls = 0
	g.Strikes = 0
}

// PickFielder chooses a uniform-random member of the pitching team's
// lineup — the nine players fielding behind the current pitcher.
func (g *Game) PickFielder(world *entities.World, roll float64) uuid.UUID {
	lineup := world.Team(g.PitchingTeam().ID).Lineup
	idx := int(roll * float64(len(lineup)))
	if idx >= len(lineup) {
		idx = len(lineup) - 1
	}
	return lineup[idx]
}

// activePlayers returns the current on-field roster for both teams: each
// lineup plus each current pitcher. This is the pool weather events like
// Eclipse incineration draw from when restricted to players presently in
// the game, as opposed to a team's full bench.
func (g *Game) activePlayers(world *entities.World) []uuid.UUID {
	var out []uuid.UUID
	out = append(out, world.Team(g.HomeTeam.ID).Lineup...)
	out = append(out, world.Team(g.AwayTeam.ID).Lineup...)
	out = append(out, g.HomeTeam.Pitcher, g.AwayTeam.Pitcher)
	return out
}

// fullRosters returns every player on either team's lineup, rotation, or
// shadows — the wider pool a chain-incineration target is drawn from.
func (g *Game) fullRosters(world *entities.World) []uuid.UUID {
	var out []uuid.UUID
	for _, teamID := range []uuid.UUID{g.HomeTeam.ID, g.AwayTeam.ID} {
		t := world.Team(teamID)
		out = append(out, t.Lineup...)
		out = append(out, t.Rotation...)
		out = append(out, t.Shadows...)
	}
	return out
}

// PickPlayerWeighted draws a weighted-random player id from a pool, either
// restricted to the active lineups/pitchers (onlyActive) or the full
// rosters of both teams. weight assigns each candidate a non-negative
// weight; a candidate weighted 0 can never be picked. Panics if every
// candidate in the pool weighs 0 — a fatal invariant breach, matching the
// "no phase produces an event" class of error.
func (g *Game) PickPlayerWeighted(world *entities.World, roll float64, weight func(uuid.UUID) float64, onlyActive bool) uuid.UUID {
	pool := g.fullRosters(world)
	if onlyActive {
		pool = g.activePlayers(world)
	}

	total := 0.0
	weights := make([]float64, len(pool))
	for i, id := range pool {
		w := weight(id)
		weights[i] = w
		total += w
	}
	if total <= 0 {
		panic("sim: PickPlayerWeighted called with an entirely zero-weight pool")
	}

	target := roll * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if target < acc {
			return pool[i]
		}
	}
	return pool[len(pool)-1]
}

func (g *Game) String() string {
	return fmt.Sprintf("Game{inning=%d top=%v balls=%d strikes=%d outs=%d}", g.Inning, g.Top, g.Balls, g.Strikes, g.Outs)
}
