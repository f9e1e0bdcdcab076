package hamilton

import (
	"time"

	"github.com/soniakeys/meeus/julian"
)

// J2000JD is the Julian date of the J2000 reference epoch.
const J2000JD = 2451545.0

// JulianDate returns the Julian date of the given civil time.
func JulianDate(dt time.Time) float64 {
	return julian.TimeToJD(dt)
}

// SecondsSinceJ2000 returns the seconds elapsed between the J2000 epoch and
// the given civil time.
func SecondsSinceJ2000(dt time.Time) float64 {
	return (julian.TimeToJD(dt) - J2000JD) * 86400
}

// UpdateSpan advances the orbital state from one civil time to another. A span
// ending before it starts propagates backwards.
func (o *Orbit) UpdateSpan(from, to time.Time) {
	o.Update((julian.TimeToJD(to) - julian.TimeToJD(from)) * 86400)
}
