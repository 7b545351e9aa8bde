package entities

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/baseball-sim/sim-core/internal/mods"
	"github.com/baseball-sim/sim-core/internal/rng"
)

// Stadium is a minimal ballpark identity; richer park context lives in the
// optional internal/stadium package consulted by formulas.
type Stadium struct {
	ID   uuid.UUID
	Name string
}

// World owns every player, team, and stadium, plus a hall of orphaned
// players and the season ruleset in effect.
type World struct {
	Players  map[uuid.UUID]*Player
	Teams    map[uuid.UUID]*Team
	Stadiums map[uuid.UUID]*Stadium
	Hall     []uuid.UUID

	SeasonRuleset uint8
}

// New returns an empty World for the given season ruleset.
func New(seasonRuleset uint8) *World {
	return &World{
		Players:       make(map[uuid.UUID]*Player),
		Teams:         make(map[uuid.UUID]*Team),
		Stadiums:      make(map[uuid.UUID]*Stadium),
		SeasonRuleset: seasonRuleset,
	}
}

// Player looks up a player by id. It panics if id is absent — a fatal
// invariant breach per the error-handling design (team/player lookup with a
// nonexistent id never happens against an already-validated world).
func (w *World) Player(id uuid.UUID) *Player {
	p, ok := w.Players[id]
	if !ok {
		panic(fmt.Sprintf("entities: no such player %s", id))
	}
	return p
}

// Team looks up a team by id. Panics if absent, see Player.
func (w *World) Team(id uuid.UUID) *Team {
	t, ok := w.Teams[id]
	if !ok {
		panic(fmt.Sprintf("entities: no such team %s", id))
	}
	return t
}

// InsertPlayer adds or replaces a player in the world.
func (w *World) InsertPlayer(p *Player) {
	w.Players[p.ID] = p
}

// InsertTeam adds or replaces a team in the world.
func (w *World) InsertTeam(t *Team) {
	w.Teams[t.ID] = t
}

// ReplacePlayer retires playerID to the hall and installs newPlayerID in its
// slot on the same team.
func (w *World) ReplacePlayer(playerID, newPlayerID uuid.UUID) {
	player := w.Player(playerID)
	teamID := *player.Team
	player.Team = nil
	w.Hall = append(w.Hall, playerID)
	w.Team(teamID).replacePlayer(playerID, newPlayerID)
}

// Swap exchanges two players between their respective teams.
func (w *World) Swap(player1ID, player2ID uuid.UUID) {
	teamID1 := *w.Player(player1ID).Team
	teamID2 := *w.Player(player2ID).Team

	id2 := teamID2
	w.Player(player1ID).Team = &id2
	id1 := teamID1
	w.Player(player2ID).Team = &id1

	w.Team(teamID1).replacePlayer(player1ID, player2ID)
	w.Team(teamID2).replacePlayer(player2ID, player1ID)
}

// SwapHall moves player1 to the hall (team-less) and installs player2 into
// player1's old roster slot.
func (w *World) SwapHall(player1ID, player2ID uuid.UUID) {
	teamID1 := *w.Player(player1ID).Team
	w.Player(player1ID).Team = nil
	id1 := teamID1
	w.Player(player2ID).Team = &id1
	w.Team(teamID1).replacePlayer(player1ID, player2ID)
}

// GenTeam rolls a fresh 9-player lineup, 5-player rotation, and 11-player
// shadow bench, inserts the team, and returns its id.
func (w *World) GenTeam(r *rng.Source, name, emoji string) uuid.UUID {
	id := uuid.New()
	team := &Team{
		ID:     id,
		Emoji:  emoji,
		Name:   name,
		Fate:   100,
		Mods:   mods.NewSet(),
	}

	for i := 0; i < 9; i++ {
		team.Lineup = append(team.Lineup, w.GenPlayer(r, id))
	}
	for i := 0; i < 5; i++ {
		team.Rotation = append(team.Rotation, w.GenPlayer(r, id))
	}
	for i := 0; i < 11; i++ {
		team.Shadows = append(team.Shadows, w.GenPlayer(r, id))
	}

	w.InsertTeam(team)
	return id
}

// GenPlayer rolls a fresh player's attributes, assigns it to team, and burns
// the extra draws the original implementation spends on interview-style
// flavor rolls (soul, allergy, fate, ritual, blood, coffee, and two name
// rolls) so callers drawing further randomness stay RNG-stream compatible.
func (w *World) GenPlayer(r *rng.Source, team uuid.UUID) uuid.UUID {
	const interviewRolls = 6 + 2

	player := NewPlayer(r)
	id := player.ID
	player.Name = fmt.Sprintf("Player %s", player.ID.String()[:8])

	for i := 0; i < interviewRolls; i++ {
		r.Next()
	}

	t := team
	player.Team = &t
	w.InsertPlayer(player)
	return id
}

// AddRolledPlayer inserts an already-rolled player onto team, assigning it a
// default name.
func (w *World) AddRolledPlayer(player *Player, team uuid.UUID) uuid.UUID {
	id := player.ID
	player.Name = fmt.Sprintf("Player %s", player.ID.String()[:8])
	t := team
	player.Team = &t
	w.InsertPlayer(player)
	return id
}

// RandomHallPlayer returns a uniformly chosen id from the hall.
func (w *World) RandomHallPlayer(r *rng.Source) uuid.UUID {
	return w.Hall[r.Index(len(w.Hall))]
}

// ClearGame purges every player's Game-lifetime mods.
func (w *World) ClearGame() {
	for _, p := range w.Players {
		p.Mods.ClearGame()
	}
}

// ClearWeekly purges every player's Week-lifetime mods.
func (w *World) ClearWeekly() {
	for _, p := range w.Players {
		p.Mods.ClearWeekly()
	}
}

// ClearSeason purges every player's Season-lifetime mods.
func (w *World) ClearSeason() {
	for _, p := range w.Players {
		p.Mods.ClearSeason()
	}
}
