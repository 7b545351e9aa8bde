// Package stadium models the ballpark stat centers that the formulas package
// otherwise treats as flat 0.5 defaults. It is an optional context input:
// every formula behaves identically to the bare-default spec behavior when
// callers pass DefaultParkFactors.
package stadium

// ParkFactors holds the "ballpark stat center" terms formulas read directly.
// spec.md §4.5 treats every one of these as a flat 0.5 default for now.
type ParkFactors struct {
	Forwardness   float64
	Viscosity     float64
	Obtuseness    float64
	Grandiosity   float64
	Fortification float64
	Ominousness   float64
	Inconvenience float64
	Elongation    float64
}

// DefaultParkFactors returns every term at its documented 0.5 center.
func DefaultParkFactors() ParkFactors {
	return ParkFactors{
		Forwardness:   0.5,
		Viscosity:     0.5,
		Obtuseness:    0.5,
		Grandiosity:   0.5,
		Fortification: 0.5,
		Ominousness:   0.5,
		Inconvenience: 0.5,
		Elongation:    0.5,
	}
}

// Stadium is a ballpark's identity plus its formula-facing park factors.
type Stadium struct {
	Name    string
	Factors ParkFactors
}
