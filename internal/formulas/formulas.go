// Package formulas implements the pure threshold functions that the pitch
// outcome resolver rolls against, plus the item/multiplier/vibe pipeline
// every attribute read passes through first.
package formulas

import (
	"math"

	"github.com/baseball-sim/sim-core/internal/entities"
)

// StrikeThreshold is the probability a pitch is a strike.
func StrikeThreshold(pitcher, batter *entities.Player, flinch bool, ctx Context) float64 {
	c := ctx.coefficients()
	fwd := ctx.Stadium.Factors.Forwardness

	ruth := attrAt(pitcher, entities.AttrRuthlessness, pitcher.Ruthlessness, ctx, false)
	musc := attrAt(batter, entities.AttrMusclitude, batter.Musclitude, ctx, false)

	constant := c.StrikeConstNormal
	if flinch {
		constant = c.StrikeConstFlinch
	}

	val := constant + c.StrikeRuth*ruth + c.StrikeFwd*fwd + c.StrikeMusc*musc
	val += ctx.Umpire.Adjustment()
	return minF(val, c.StrikeCap)
}

// SwingThreshold is the probability a batter swings, given whether the pitch
// was a strike.
func SwingThreshold(pitcher, batter *entities.Player, isStrike bool, ctx Context) float64 {
	c := ctx.coefficients()
	visc := ctx.Stadium.Factors.Viscosity

	if isStrike {
		div := attrAt(batter, entities.AttrDivinity, batter.Divinity, ctx, false)
		musc := attrAt(batter, entities.AttrMusclitude, batter.Musclitude, ctx, false)
		path := attrAt(batter, entities.AttrPatheticism, batter.Patheticism, ctx, false)
		thwack := attrAt(batter, entities.AttrThwackability, batter.Thwackability, ctx, false)
		ruth := attrAt(pitcher, entities.AttrRuthlessness, pitcher.Ruthlessness, ctx, false)

		combined := (div + musc + (1.0 - path) + thwack) / 4.0
		return c.SwingStrikeBase + c.SwingStrikeComb*combined - c.SwingStrikeRuth*ruth + c.SwingStrikeVisc*(visc-0.5)
	}

	ruth := attrAt(batter, entities.AttrRuthlessness, batter.Ruthlessness, ctx, false)
	moxie := attrAt(batter, entities.AttrMoxie, batter.Moxie, ctx, false)
	path := attrAt(batter, entities.AttrPatheticism, batter.Patheticism, ctx, false)

	combined := (c.SwingBallRuth*ruth - c.SwingBallMoxie*moxie + c.SwingBallPath*path + c.SwingBallVisc*visc) / c.SwingBallDivisor
	return clamp(math.Pow(combined, c.SwingBallExp), c.SwingBallFloor, c.SwingBallCap)
}

// ContactThreshold is the probability a swing makes contact.
func ContactThreshold(pitcher, batter *entities.Player, isStrike bool, ctx Context) float64 {
	c := ctx.coefficients()
	ruth := attrAt(pitcher, entities.AttrRuthlessness, pitcher.Ruthlessness, ctx, false)
	bp := ctx.Stadium.Factors.Fortification + 3*ctx.Stadium.Factors.Viscosity - 6*ctx.Stadium.Factors.Forwardness

	if isStrike {
		div := attrAt(batter, entities.AttrDivinity, batter.Divinity, ctx, false)
		musc := attrAt(batter, entities.AttrMusclitude, batter.Musclitude, ctx, false)
		thwack := attrAt(batter, entities.AttrThwackability, batter.Thwackability, ctx, false)
		path := attrAt(batter, entities.AttrPatheticism, batter.Patheticism, ctx, false)

		combined := (div + musc + thwack - path) / 2.0
		val := c.ContactStrikeBase - c.ContactStrikeRuth*ruth + c.ContactStrikeBp*bp + c.ContactStrikeCombCoef*math.Pow(combined, c.ContactStrikeCombExp)
		return minF(val, c.ContactStrikeCap)
	}

	path := attrAt(batter, entities.AttrPatheticism, batter.Patheticism, ctx, true)
	val := c.ContactBallBase - c.ContactBallRuth*ruth + c.ContactBallPath*math.Pow(1.0-path, c.ContactBallPathExp) + c.ContactBallBp*bp
	return minF(val, c.ContactBallCap)
}

// FoulThreshold is the probability contact goes foul.
func FoulThreshold(batter *entities.Player, ctx Context) float64 {
	c := ctx.coefficients()
	fwd := ctx.Stadium.Factors.Forwardness
	obt := ctx.Stadium.Factors.Obtuseness

	musc := attrAt(batter, entities.AttrMusclitude, batter.Musclitude, ctx, false)
	thwack := attrAt(batter, entities.AttrThwackability, batter.Thwackability, ctx, false)
	div := attrAt(batter, entities.AttrDivinity, batter.Divinity, ctx, false)

	batterSum := (musc + thwack + div) / 3.0
	return c.FoulBase + c.FoulFwd*fwd - c.FoulObt*obt + c.FoulBatter*batterSum
}

// OutThreshold is compared with the source's literal '>' (not '<'): the out
// branch is taken when the roll *exceeds* this threshold. See the pitch
// resolver for the comparison itself; preserving it here would be
// misleading, since this function only returns the threshold value.
func OutThreshold(pitcher, batter, defender *entities.Player, ctx Context) float64 {
	c := ctx.coefficients()
	bp := ctx.Stadium.Factors.Grandiosity + ctx.Stadium.Factors.Obtuseness - ctx.Stadium.Factors.Ominousness -
		ctx.Stadium.Factors.Inconvenience - ctx.Stadium.Factors.Viscosity + ctx.Stadium.Factors.Forwardness

	thwack := attrAt(batter, entities.AttrThwackability, batter.Thwackability, ctx, false)
	unthwack := attrAt(pitcher, entities.AttrUnthwackability, pitcher.Unthwackability, ctx, false)
	omni := attrAt(defender, entities.AttrOmniscience, defender.Omniscience, ctx, false)

	return c.OutBase + c.OutThwack*thwack - c.OutUnthwack*unthwack - c.OutOmni*omni + c.OutBp*bp
}

// FlyThreshold is the probability a batted-out ball is a fly ball rather
// than a ground ball. p is a fielder, matching the pitch resolver's call
// site (a known oddity: named "batter" in the original source, and invoked
// with the out defender rather than the freshly picked fly defender — see
// resolveOut).
func FlyThreshold(p *entities.Player, ctx Context) float64 {
	c := ctx.coefficients()
	buoy := attrAt(p, entities.AttrBuoyancy, p.Buoyancy, ctx, false)
	supp := attrAt(p, entities.AttrSuppression, p.Suppression, ctx, false)
	return maxF(c.FlyFloor, c.FlyBase+c.FlyBuoy*buoy-c.FlySupp*supp)
}

// HRThreshold is the probability a ball in the air clears the fence.
func HRThreshold(pitcher, batter *entities.Player, ctx Context) float64 {
	c := ctx.coefficients()
	bp := 0.4*ctx.Stadium.Factors.Grandiosity + 0.2*ctx.Stadium.Factors.Fortification +
		0.08*ctx.Stadium.Factors.Viscosity + 0.08*ctx.Stadium.Factors.Ominousness - 0.24*ctx.Stadium.Factors.Forwardness

	div := attrAt(batter, entities.AttrDivinity, batter.Divinity, ctx, false)
	opw := attrAt(pitcher, entities.AttrOverpowerment, pitcher.Overpowerment, ctx, false)
	supp := attrAt(pitcher, entities.AttrSuppression, pitcher.Suppression, ctx, false)
	opwSupp := (10.0*opw + supp) / 11.0

	return c.HrBase + c.HrDiv*div - c.HrOpwSupp*opwSupp - c.HrBp*bp
}

// TripleThreshold is the probability a ball in play goes for a triple.
func TripleThreshold(pitcher, batter, fielder *entities.Player, ctx Context) float64 {
	c := ctx.coefficients()
	bp := ctx.Stadium.Factors.Forwardness + ctx.Stadium.Factors.Grandiosity + ctx.Stadium.Factors.Obtuseness -
		ctx.Stadium.Factors.Ominousness - ctx.Stadium.Factors.Viscosity

	gf := attrAt(batter, entities.AttrGroundFriction, batter.GroundFriction, ctx, true)
	opw := attrAt(pitcher, entities.AttrOverpowerment, pitcher.Overpowerment, ctx, false)
	chase := attrAt(fielder, entities.AttrChasiness, fielder.Chasiness, ctx, false)

	return c.TripleBase + c.TripleGf*gf - c.TripleOpw*opw - c.TripleChase*chase + c.TripleBp*bp
}

// DoubleThreshold is the probability a ball in play goes for a double.
func DoubleThreshold(pitcher, batter, fielder *entities.Player, ctx Context) float64 {
	c := ctx.coefficients()
	bp := ctx.Stadium.Factors.Forwardness - ctx.Stadium.Factors.Elongation - ctx.Stadium.Factors.Ominousness - ctx.Stadium.Factors.Viscosity

	musc := attrAt(batter, entities.AttrMusclitude, batter.Musclitude, ctx, false)
	opw := attrAt(pitcher, entities.AttrOverpowerment, pitcher.Overpowerment, ctx, false)
	chase := attrAt(fielder, entities.AttrChasiness, fielder.Chasiness, ctx, false)

	return c.DoubleBase + c.DoubleMusc*musc - c.DoubleOpw*opw - c.DoubleChase*chase + c.DoubleBp*bp
}

// StealAttemptThreshold is the probability a runner attempts a steal.
func StealAttemptThreshold(_, _ *entities.Player, ctx Context) float64 {
	return ctx.coefficients().StealAttempt
}

// StealSuccessThreshold is the probability an attempted steal succeeds.
func StealSuccessThreshold(_, _ *entities.Player, ctx Context) float64 {
	return ctx.coefficients().StealSuccess
}

// HitAdvancementThreshold is the probability a given baserunner advances an
// extra base on a hit.
func HitAdvancementThreshold(runner, fielder *entities.Player, ctx Context) float64 {
	c := ctx.coefficients()
	tenac := attrAt(fielder, entities.AttrTenaciousness, fielder.Tenaciousness, ctx, false)
	cont := attrAt(runner, entities.AttrContinuation, runner.Continuation, ctx, false)
	return clamp(0.7-c.HitAdvTenacCoef*tenac+c.HitAdvContCoef*cont, c.HitAdvFloor, c.HitAdvCap)
}

// GroundoutSacrificeThreshold is the probability a groundout with a runner
// on is played as a sacrifice rather than a fielder's choice.
func GroundoutSacrificeThreshold(batter *entities.Player, ctx Context) float64 {
	c := ctx.coefficients()
	mart := attrAt(batter, entities.AttrMartyrdom, batter.Martyrdom, ctx, true)
	return c.GroundSacBase + c.GroundSacMart*mart
}

// GroundoutAdvancementThreshold is the probability a given baserunner
// advances on a groundout.
func GroundoutAdvancementThreshold(runner, fielder *entities.Player, ctx Context) float64 {
	c := ctx.coefficients()
	incon := ctx.Stadium.Factors.Inconvenience
	elong := ctx.Stadium.Factors.Elongation

	indulg := attrAt(runner, entities.AttrIndulgence, runner.Indulgence, ctx, false)
	tenac := attrAt(fielder, entities.AttrTenaciousness, fielder.Tenaciousness, ctx, false)

	return c.GroundAdvBase + c.GroundAdvIndulg*indulg - c.GroundAdvTenac*tenac - c.GroundAdvIncon*(incon-0.5) - c.GroundAdvElong*(elong-0.5)
}

// DoublePlayThreshold is the probability a groundout with the right runners
// on turns into a double play.
func DoublePlayThreshold(batter, pitcher, fielder *entities.Player, ctx Context) float64 {
	c := ctx.coefficients()
	elong := ctx.Stadium.Factors.Elongation

	shakes := attrAt(pitcher, entities.AttrShakespearianism, pitcher.Shakespearianism, ctx, false)
	trag := attrAt(batter, entities.AttrTragicness, batter.Tragicness, ctx, false)
	tenac := attrAt(fielder, entities.AttrTenaciousness, fielder.Tenaciousness, ctx, false)

	val := c.DpBase + c.DpShakes*shakes - c.DpTrag*(1.0-trag) + c.DpTenac*tenac - c.DpElong*(elong-0.5)
	return maxF(c.DpFloor, val)
}

// FlyoutAdvancementThreshold is the probability a runner on baseFrom tags up
// and advances on a flyout. baseFrom 2 and 3 share one formula; any other
// value returns 0, matching the source's catch-all.
func FlyoutAdvancementThreshold(runner *entities.Player, baseFrom int, ctx Context) float64 {
	c := ctx.coefficients()
	elong := ctx.Stadium.Factors.Elongation
	incon := ctx.Stadium.Factors.Inconvenience
	indulg := attrAt(runner, entities.AttrIndulgence, runner.Indulgence, ctx, false)

	switch baseFrom {
	case 0:
		factor := c.FlyAdv0C1*indulg - c.FlyAdv0C2*math.Pow(indulg, 2) + c.FlyAdv0C4*math.Pow(indulg, 4)
		return c.FlyAdv0Base + factor - c.FlyAdv0Elong*elong - c.FlyAdv0Incon*incon
	case 1:
		factor := c.FlyAdv1C1*indulg + c.FlyAdv1C2*math.Pow(indulg, 2)
		return c.FlyAdv1Base + factor - c.FlyAdv1Elong*elong - c.FlyAdv1Incon*incon
	case 2, 3:
		return c.FlyAdv2Base + c.FlyAdv2Coef*indulg - c.FlyAdv2Elong*elong - c.FlyAdv2Incon*incon
	default:
		return 0.0
	}
}
