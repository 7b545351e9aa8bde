package formulas

import "fmt"

// Coefficients holds every magic number a threshold formula reads. Season 14
// is the canonical table; other seasons dispatch through ForSeason(season)
// and fall back to season 14 until a documented per-season variant exists.
type Coefficients struct {
	StrikeConstFlinch float64
	StrikeConstNormal float64
	StrikeRuth        float64
	StrikeFwd         float64
	StrikeMusc        float64
	StrikeCap         float64

	SwingStrikeBase  float64
	SwingStrikeComb  float64
	SwingStrikeRuth  float64
	SwingStrikeVisc  float64
	SwingBallRuth    float64
	SwingBallMoxie   float64
	SwingBallPath    float64
	SwingBallVisc    float64
	SwingBallDivisor float64
	SwingBallExp     float64
	SwingBallFloor   float64
	SwingBallCap     float64

	ContactStrikeBase     float64
	ContactStrikeRuth     float64
	ContactStrikeBp       float64
	ContactStrikeCombExp  float64
	ContactStrikeCombCoef float64
	ContactStrikeCap      float64

	ContactBallBase    float64
	ContactBallRuth    float64
	ContactBallPathExp float64
	ContactBallPath    float64
	ContactBallBp      float64
	ContactBallCap     float64

	FoulBase    float64
	FoulFwd     float64
	FoulObt     float64
	FoulBatter  float64

	OutBase    float64
	OutThwack  float64
	OutUnthwack float64
	OutOmni    float64
	OutBp      float64

	FlyBase  float64
	FlyBuoy  float64
	FlySupp  float64
	FlyFloor float64

	HrBase    float64
	HrDiv     float64
	HrOpwSupp float64
	HrBp      float64

	TripleBase  float64
	TripleGf    float64
	TripleOpw   float64
	TripleChase float64
	TripleBp    float64

	DoubleBase  float64
	DoubleMusc  float64
	DoubleOpw   float64
	DoubleChase float64
	DoubleBp    float64

	HitAdvTenacCoef float64
	HitAdvContCoef  float64
	HitAdvFloor     float64
	HitAdvCap       float64

	GroundSacBase float64
	GroundSacMart float64

	GroundAdvBase   float64
	GroundAdvIndulg float64
	GroundAdvTenac  float64
	GroundAdvIncon  float64
	GroundAdvElong  float64

	DpBase   float64
	DpShakes float64
	DpTrag   float64
	DpTenac  float64
	DpElong  float64
	DpFloor  float64

	FlyAdv0Base, FlyAdv0C1, FlyAdv0C2, FlyAdv0C4, FlyAdv0Elong, FlyAdv0Incon float64
	FlyAdv1Base, FlyAdv1C1, FlyAdv1C2, FlyAdv1Elong, FlyAdv1Incon           float64
	FlyAdv2Base, FlyAdv2Coef, FlyAdv2Elong, FlyAdv2Incon                    float64

	StealAttempt float64
	StealSuccess float64

	GrowthCap        float64
	GrowthDayDivisor float64
}

// season14 is the canonical coefficient table: spec.md's "canonical formulas
// (season-14 ruleset)".
var season14 = Coefficients{
	StrikeConstFlinch: 0.4,
	StrikeConstNormal: 0.2,
	StrikeRuth:        0.285,
	StrikeFwd:         0.2,
	StrikeMusc:        0.1,
	StrikeCap:         0.86,

	SwingStrikeBase:  0.7,
	SwingStrikeComb:  0.35,
	SwingStrikeRuth:  0.4,
	SwingStrikeVisc:  0.2,
	SwingBallRuth:    12.0,
	SwingBallMoxie:   5.0,
	SwingBallPath:    5.0,
	SwingBallVisc:    4.0,
	SwingBallDivisor: 20.0,
	SwingBallExp:     1.5,
	SwingBallFloor:   0.1,
	SwingBallCap:     0.95,

	ContactStrikeBase:     0.78,
	ContactStrikeRuth:     0.08,
	ContactStrikeBp:       0.16,
	ContactStrikeCombExp:  1.2,
	ContactStrikeCombCoef: 0.17,
	ContactStrikeCap:      0.925,

	ContactBallBase:    0.4,
	ContactBallRuth:    0.1,
	ContactBallPathExp: 1.5,
	ContactBallPath:    0.35,
	ContactBallBp:      0.14,
	ContactBallCap:     1.0,

	FoulBase:   0.25,
	FoulFwd:    0.1,
	FoulObt:    0.1,
	FoulBatter: 0.1,

	OutBase:     0.311,
	OutThwack:   0.1,
	OutUnthwack: 0.08,
	OutOmni:     0.064,
	OutBp:       0.02,

	FlyBase:  0.18,
	FlyBuoy:  0.3,
	FlySupp:  0.16,
	FlyFloor: 0.01,

	HrBase:    0.12,
	HrDiv:     0.16,
	HrOpwSupp: 0.08,
	HrBp:      0.18,

	TripleBase:  0.045,
	TripleGf:    0.2,
	TripleOpw:   0.04,
	TripleChase: 0.05,
	TripleBp:    0.1,

	DoubleBase:  0.160,
	DoubleMusc:  0.2,
	DoubleOpw:   0.04,
	DoubleChase: 0.08,
	DoubleBp:    1.0,

	HitAdvTenacCoef: 1.0,
	HitAdvContCoef:  0.6,
	HitAdvFloor:     0.01,
	HitAdvCap:       0.95,

	GroundSacBase: 0.05,
	GroundSacMart: 0.25,

	GroundAdvBase:   0.5,
	GroundAdvIndulg: 0.35,
	GroundAdvTenac:  0.15,
	GroundAdvIncon:  0.15,
	GroundAdvElong:  0.15,

	DpBase:   -0.05,
	DpShakes: 0.4,
	DpTrag:   0.18,
	DpTenac:  0.1,
	DpElong:  0.16,
	DpFloor:  0.001,

	FlyAdv0Base: -0.085, FlyAdv0C1: 0.36, FlyAdv0C2: 0.38, FlyAdv0C4: 0.24, FlyAdv0Elong: 0.1, FlyAdv0Incon: 0.1,
	FlyAdv1Base: 0.045, FlyAdv1C1: 0.065, FlyAdv1C2: 0.3, FlyAdv1Elong: 0.1, FlyAdv1Incon: 0.1,
	FlyAdv2Base: 0.45, FlyAdv2Coef: 0.35, FlyAdv2Elong: 0.1, FlyAdv2Incon: 0.1,

	StealAttempt: 0.05,
	StealSuccess: 0.8,

	GrowthCap:        0.05,
	GrowthDayDivisor: 99.0,
}

// seasons dispatches season ruleset to its coefficient table. Every entry
// 11..23 resolves (each currently to season14) per the "deep configurability
// by season ruleset" note; anything outside that range is a fatal caller
// error, matching the world's season_ruleset invariant.
var seasons = map[uint8]Coefficients{
	11: season14, 12: season14, 13: season14, 14: season14, 15: season14,
	16: season14, 17: season14, 18: season14, 19: season14, 20: season14,
	21: season14, 22: season14, 23: season14,
}

// ForSeason returns the coefficient table for a season ruleset. It panics
// for a ruleset outside 11..23: an out-of-range season is a configuration
// bug the caller must fix, not a recoverable runtime condition.
func ForSeason(season uint8) Coefficients {
	c, ok := seasons[season]
	if !ok {
		panic(fmt.Sprintf("formulas: unsupported season ruleset %d", season))
	}
	return c
}
