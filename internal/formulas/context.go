package formulas

import (
	"github.com/baseball-sim/sim-core/internal/entities"
	"github.com/baseball-sim/sim-core/internal/mods"
	"github.com/baseball-sim/sim-core/internal/stadium"
	"github.com/baseball-sim/sim-core/internal/umpire"
	"github.com/baseball-sim/sim-core/internal/weather"
)

// Context carries everything a threshold formula needs beyond the players
// themselves: the season's coefficient table, the day (for Growth and
// vibes), the game's weather (for Birds/Eclipse multipliers), and the
// optional ballpark/umpire supplements. Stadium and Umpire default to
// neutral, so every spec.md formula behaves exactly as documented when a
// caller builds a Context with NewContext and never touches them.
type Context struct {
	Season  uint8
	Day     int
	Weather weather.Weather
	Stadium stadium.Stadium
	Umpire  umpire.Tendencies

	coeffs Coefficients
}

// NewContext builds a Context for season, day, and weather, with neutral
// ballpark/umpire supplements.
func NewContext(season uint8, day int, w weather.Weather) Context {
	return Context{
		Season:  season,
		Day:     day,
		Weather: w,
		Stadium: stadium.Stadium{Factors: stadium.DefaultParkFactors()},
		Umpire:  umpire.DefaultUmpireTendencies(),
		coeffs:  ForSeason(season),
	}
}

func (c Context) coefficients() Coefficients {
	return c.coeffs
}

// multiplier applies the stacking bonus rules from spec.md §4.5: Growth,
// AffinityForCrows-in-Birds, RedHot, and NightVision-in-Eclipse, then
// reciprocates the result for negative-sense attrs and Buoyancy.
func multiplier(attr entities.Attr, set *mods.Set, ctx Context) float64 {
	m := 1.0

	if set.Has(mods.Growth) {
		m += minF(ctx.coefficients().GrowthCap, float64(ctx.Day)/ctx.coefficients().GrowthDayDivisor*ctx.coefficients().GrowthCap)
	}
	if ctx.Weather == weather.Birds && attr.IsPitching() && set.Has(mods.AffinityForCrows) {
		m += 0.5
	}
	if set.Has(mods.RedHot) {
		switch attr {
		case entities.AttrThwackability:
			m += 4.0
		case entities.AttrMoxie:
			m += 2.0
		}
	}
	if ctx.Weather == weather.Eclipse && attr.IsBatting() && set.Has(mods.NightVision) {
		m += 0.5
	}

	if attr.IsNegative() || attr == entities.AttrBuoyancy {
		return 1.0 / m
	}
	return m
}

// coeff reads one attribute through the full item+multiplier pipeline:
// coeff(attr) = clamp(raw + item_bonus, 0.01, 0.99) * multiplier(attr, mods, ctx).
func coeff(p *entities.Player, attr entities.Attr, raw float64, ctx Context) float64 {
	val := clamp(raw+p.ItemBonus(attr), 0.01, 0.99)
	return val * multiplier(attr, p.Mods, ctx)
}

// vibeless attrs never scale with the daily vibes sinusoid, regardless of
// use site.
func vibeless(attr entities.Attr) bool {
	switch attr {
	case entities.AttrBuoyancy, entities.AttrSuppression, entities.AttrTenaciousness, entities.AttrTragicness:
		return true
	default:
		return false
	}
}

// attrAt reads attr through coeff, then applies the (1+0.2*vibes) site
// scaling unless attr is always vibeless or the call site opts out (ground
// friction in the triple formula, patheticism in the ball-contact formula,
// martyrdom in the sacrifice formula — per spec.md §4.5).
func attrAt(p *entities.Player, attr entities.Attr, raw float64, ctx Context, skipVibes bool) float64 {
	val := coeff(p, attr, raw, ctx)
	if !skipVibes && !vibeless(attr) {
		val *= 1 + 0.2*p.Vibes(ctx.Day)
	}
	return val
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
