// Package weather enumerates the supernatural weather conditions a game can
// be played under and samples a season-indexed distribution for callers that
// don't pin a specific weather via override.
package weather

import "github.com/baseball-sim/sim-core/internal/rng"

// Weather is one of the fixed set of conditions a game is played under for
// its entire duration.
type Weather int

const (
	Sun Weather = iota
	Eclipse
	Peanuts
	Birds
	Feedback
	Reverb
	Blooddrain
	Sun2
	BlackHole
	Salmon
	PolarityPlus
	PolarityMinus
	SunPointOne
	SumSun
	Night
)

// entry pairs a weather with its own sampling weight within a season table;
// Sample accumulates the weights.
type entry struct {
	w      Weather
	weight float64
}

// table is a season-indexed weather distribution, ordered for cumulative
// sampling. Weights need not sum to 1; Sample normalizes against the total.
var table = map[uint8][]entry{
	14: {
		{Sun, 0.15}, {Eclipse, 0.05}, {Peanuts, 0.1}, {Birds, 0.1},
		{Feedback, 0.05}, {Reverb, 0.03}, {Blooddrain, 0.05}, {Sun2, 0.02},
		{BlackHole, 0.02}, {Salmon, 0.03}, {PolarityPlus, 0.02}, {PolarityMinus, 0.02},
		{Night, 0.06},
	},
}

// Sample draws a weather from season's distribution table, falling back to
// the season-14 table for an unlisted season. The draw is a single uniform
// roll consumed from r; callers that want a fixed weather should bypass
// Sample entirely rather than discard its draw, to preserve the RNG stream.
func Sample(r *rng.Source, season uint8) Weather {
	entries, ok := table[season]
	if !ok {
		entries = table[14]
	}

	total := 0.0
	for _, e := range entries {
		total += e.weight
	}

	roll := r.Next() * total
	cum := 0.0
	for _, e := range entries {
		cum += e.weight
		if roll < cum {
			return e.w
		}
	}
	return entries[len(entries)-1].w
}

// String names a weather for logging and event payloads.
func (w Weather) String() string {
	switch w {
	case Sun:
		return "Sun"
	case Eclipse:
		return "Eclipse"
	case Peanuts:
		return "Peanuts"
	case Birds:
		return "Birds"
	case Feedback:
		return "Feedback"
	case Reverb:
		return "Reverb"
	case Blooddrain:
		return "Blooddrain"
	case Sun2:
		return "Sun 2"
	case BlackHole:
		return "Black Hole"
	case Salmon:
		return "Salmon Cannons"
	case PolarityPlus:
		return "Polarity +"
	case PolarityMinus:
		return "Polarity -"
	case SunPointOne:
		return "Sun 0.1"
	case SumSun:
		return "Sum Sun"
	case Night:
		return "Night"
	default:
		return "Unknown"
	}
}
