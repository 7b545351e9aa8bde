package entities

// Attr identifies one of a player's 26 numeric attributes. The discriminant
// values are load-bearing: classification by group is done with range
// checks against Attr's underlying int, mirroring the original enum's
// ordinal layout.
type Attr uint8

const (
	AttrBuoyancy Attr = iota
	AttrDivinity
	AttrMartyrdom
	AttrMoxie
	AttrMusclitude
	AttrPatheticism
	AttrThwackability
	AttrTragicness

	AttrColdness
	AttrOverpowerment
	AttrRuthlessness
	AttrShakespearianism
	AttrSuppression
	AttrUnthwackability

	AttrBaseThirst
	AttrContinuation
	AttrGroundFriction
	AttrIndulgence
	AttrLaserlikeness

	AttrAnticapitalism
	AttrChasiness
	AttrOmniscience
	AttrTenaciousness
	AttrWatchfulness

	AttrPressurization
	AttrCinnamon
)

// IsBatting reports whether a is one of the 8 batting attributes.
func (a Attr) IsBatting() bool { return a < 8 }

// IsPitching reports whether a is one of the 6 pitching attributes.
func (a Attr) IsPitching() bool { return a > 7 && a < 14 }

// IsRunning reports whether a is one of the 5 baserunning attributes.
func (a Attr) IsRunning() bool { return a > 13 && a < 19 }

// IsDefense reports whether a is one of the 5 defensive attributes.
func (a Attr) IsDefense() bool { return a > 18 && a < 24 }

// IsVibes reports whether a is one of the 2 vibe attributes.
func (a Attr) IsVibes() bool { return a > 23 }

// IsNegative reports whether lower values of a are better.
func (a Attr) IsNegative() bool {
	return a == AttrPatheticism || a == AttrTragicness
}
