package entities

import (
	"math"

	"github.com/google/uuid"

	"github.com/baseball-sim/sim-core/internal/feed"
	"github.com/baseball-sim/sim-core/internal/mods"
	"github.com/baseball-sim/sim-core/internal/rng"
)

// LegendaryItem is a unique equippable that grants fixed attribute offsets
// and, for a few items, a bonus badge.
type LegendaryItem int

const (
	DialTone LegendaryItem = iota
	LiteralArmCannon
	VibeCheck
	BangersAndSmash
	GrapplingHook
	Mushroom
	NightVisionGoggles
	ShrinkRay
	TheIffeyJr
	ActualAirplane
)

// Player is one of the 26-attribute roster entities.
type Player struct {
	ID            uuid.UUID
	Name          string
	Mods          *mods.Set
	LegendaryItem *LegendaryItem
	Team          *uuid.UUID

	Feed            *feed.Events
	SweptOn         *int
	ScatteredLetters int

	Buoyancy      float64
	Divinity      float64
	Martyrdom     float64
	Moxie         float64
	Musclitude    float64
	Patheticism   float64
	Thwackability float64
	Tragicness    float64

	Coldness         float64
	Overpowerment    float64
	Ruthlessness     float64
	Shakespearianism float64
	Suppression      float64
	Unthwackability  float64

	BaseThirst     float64
	Continuation   float64
	GroundFriction float64
	Indulgence     float64
	Laserlikeness  float64

	Anticapitalism float64
	Chasiness      float64
	Omniscience    float64
	Tenaciousness  float64
	Watchfulness   float64

	Pressurization float64
	Cinnamon       float64
}

// NewPlayer rolls a fresh player's 26 attributes from r, in the exact order
// required for RNG-stream compatibility with the rest of the simulator.
func NewPlayer(r *rng.Source) *Player {
	return &Player{
		ID:   uuid.New(),
		Name: "",
		Mods: mods.NewSet(),
		Feed: feed.New(),

		Thwackability: r.Next(),
		Moxie:         r.Next(),
		Divinity:      r.Next(),
		Musclitude:    r.Next(),
		Patheticism:   r.Next(),
		Buoyancy:      r.Next(),
		BaseThirst:    r.Next(),
		Laserlikeness: r.Next(),
		GroundFriction: r.Next(),
		Continuation:  r.Next(),
		Indulgence:    r.Next(),
		Martyrdom:     r.Next(),
		Tragicness:    r.Next(),
		Shakespearianism: r.Next(),
		Suppression:   r.Next(),
		Unthwackability: r.Next(),
		Coldness:      r.Next(),
		Overpowerment: r.Next(),
		Ruthlessness:  r.Next(),
		Omniscience:   r.Next(),
		Tenaciousness: r.Next(),
		Watchfulness:  r.Next(),
		Anticapitalism: r.Next(),
		Chasiness:     r.Next(),
		Pressurization: r.Next(),
		Cinnamon:      r.Next(),
	}
}

// Vibes returns the sinusoidal daily vibe value, or 0 if the player has
// scattered letters.
func (p *Player) Vibes(day int) float64 {
	if p.ScatteredLetters > 0 {
		return 0.0
	}
	freq := 6.0 + math.Round(10.0*p.Buoyancy)
	sinPhase := math.Sin(math.Pi * ((2.0/freq)*float64(day) + 0.5))
	return 0.5 * ((sinPhase-1.0)*p.Pressurization + (sinPhase+1.0)*p.Cinnamon)
}

// Boost applies a fixed-order vector of per-attribute deltas. boosts must
// have length 25 (no pressurization slot) or 26 (pressurization included).
// Patheticism and Tragicness are subtracted, matching their negative sense.
func (p *Player) Boost(boosts []float64) {
	p.Buoyancy += boosts[0]
	p.Divinity += boosts[1]
	p.Martyrdom += boosts[2]
	p.Moxie += boosts[3]
	p.Musclitude += boosts[4]
	p.Patheticism -= boosts[5]
	p.Thwackability += boosts[6]
	p.Tragicness -= boosts[7]

	p.Coldness += boosts[8]
	p.Overpowerment += boosts[9]
	p.Ruthlessness += boosts[10]
	p.Shakespearianism += boosts[11]
	p.Suppression += boosts[12]
	p.Unthwackability += boosts[13]

	p.BaseThirst += boosts[14]
	p.Continuation += boosts[15]
	p.GroundFriction += boosts[16]
	p.Indulgence += boosts[17]
	p.Laserlikeness += boosts[18]

	p.Anticapitalism += boosts[19]
	p.Chasiness += boosts[20]
	p.Omniscience += boosts[21]
	p.Tenaciousness += boosts[22]
	p.Watchfulness += boosts[23]

	if len(boosts) == 25 {
		p.Cinnamon += boosts[24]
	} else {
		p.Pressurization += boosts[24]
		p.Cinnamon += boosts[25]
	}
}

// AddLegendaryItem equips item, attaching any badge side effect it grants.
func (p *Player) AddLegendaryItem(item LegendaryItem) {
	switch item {
	case NightVisionGoggles:
		p.Mods.Add(mods.NightVision, mods.LegendaryItem)
	case TheIffeyJr:
		p.Mods.Add(mods.Minimized, mods.LegendaryItem)
	case ActualAirplane:
		p.Mods.Add(mods.Blaserunning, mods.LegendaryItem)
	}
	it := item
	p.LegendaryItem = &it
}

// RemoveLegendaryItem unequips the current item and purges any badge it granted.
func (p *Player) RemoveLegendaryItem() {
	p.Mods.ClearLegendaryItem()
	p.LegendaryItem = nil
}

// GetRunValue returns the player's individual run-value contribution:
// Wired runners are worth +0.5, Tired runners -0.5, everyone else 0.
func (p *Player) GetRunValue() float64 {
	switch {
	case p.Mods.Has(mods.Wired):
		return 0.5
	case p.Mods.Has(mods.Tired):
		return -0.5
	default:
		return 0.0
	}
}

// ItemBonus returns the fixed per-attribute offset p's equipped legendary
// item grants for attr, or 0 if no item is equipped or it doesn't touch attr.
func (p *Player) ItemBonus(attr Attr) float64 {
	return legendaryItemBonus(p.LegendaryItem, attr)
}

// legendaryItemBonus returns the fixed per-attribute offset a legendary item
// grants for attr, or 0 if the item doesn't touch it.
func legendaryItemBonus(item *LegendaryItem, attr Attr) float64 {
	if item == nil {
		return 0
	}
	switch *item {
	case DialTone, VibeCheck, BangersAndSmash:
		if attr.IsNegative() {
			return -0.2
		}
		if attr.IsBatting() {
			return 0.2
		}
	case LiteralArmCannon:
		if attr.IsPitching() {
			return 0.08
		}
		if attr.IsDefense() {
			return 0.23
		}
	case GrapplingHook:
		if attr.IsDefense() || attr.IsRunning() {
			return 0.6
		}
	case Mushroom:
		switch attr {
		case AttrDivinity, AttrMusclitude:
			return 0.6
		case AttrCinnamon:
			return 0.4
		case AttrGroundFriction:
			return -0.1
		}
		if attr.IsRunning() {
			return -0.4
		}
	case ShrinkRay:
		switch attr {
		case AttrMoxie:
			return 0.1
		case AttrGroundFriction:
			return 0.175
		case AttrMusclitude:
			return -0.07
		case AttrDivinity:
			return -0.05
		}
		if attr.IsRunning() {
			return 0.2
		}
	case TheIffeyJr:
		if attr.IsNegative() {
			return 0.51
		}
		if attr.IsBatting() || attr.IsRunning() {
			return -0.51
		}
	}
	return 0
}
