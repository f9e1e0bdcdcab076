package hamilton

import (
	"fmt"
	"math"
)

// PositionAngle names which element is the active position angle of an orbit.
// Exactly one element tracks the satellite position per classification; the
// others are frozen orientation parameters or meaningless for that geometry.
type PositionAngle uint8

const (
	// AngleTrueAnomoly is the active angle for all non circular orbits.
	AngleTrueAnomoly PositionAngle = iota
	// AngleArgumentLatitude is the active angle for circular inclined orbits.
	AngleArgumentLatitude
	// AngleTrueLongitude is the active angle for circular equatorial orbits.
	AngleTrueLongitude
)

func (p PositionAngle) String() string {
	switch p {
	case AngleArgumentLatitude:
		return "argument of latitude"
	case AngleTrueLongitude:
		return "true longitude"
	default:
		return "true anomoly"
	}
}

func activePositionAngle(c OrbitClassification) PositionAngle {
	switch c {
	case OrbitCircularEquatorial:
		return AngleTrueLongitude
	case OrbitCircularInclined:
		return AngleArgumentLatitude
	default:
		return AngleTrueAnomoly
	}
}

// DeltaTimeAnomoly is the result of propagating an orbit anomaly through a
// time offset. For circular orbits EccentricAnomoly carries the new active
// longitude/latitude angle and MeanAnomoly is unused.
type DeltaTimeAnomoly struct {
	MeanAnomoly       float64
	EccentricAnomoly  float64
	NumberRevolutions int
}

// Orbit stores and mutates an orbital state as Keplerian elements, along with
// derived quantities cached at construction. An invalid element set is
// absorbing: Update is a no-op and the time queries return sentinels.
type Orbit struct {
	elements         KeplerianElements
	classification   OrbitClassification
	positionAngle    PositionAngle
	eccentricAnomoly float64
	meanRadialPeriod float64
	period           float64
	radius           float64
	meanAnomoly      float64
}

// NewOrbitFromKeplerian creates an orbit from the given Keplerian elements,
// classifying it and deriving the cached anomalies and periods eagerly.
func NewOrbitFromKeplerian(elements KeplerianElements) *Orbit {
	o := Orbit{elements: elements}
	o.classification = ClassifyOrbit(elements)
	o.positionAngle = activePositionAngle(o.classification)
	if o.classification == OrbitInvalid {
		o.period = math.Inf(1)
		return &o
	}
	o.eccentricAnomoly = TrueToEccentricAnomoly(elements.TrueAnomoly, elements.Eccentricity)
	o.meanRadialPeriod = CalculateMeanRadialPeriod(elements)
	if elements.IsClosed() {
		o.period = 2 * math.Pi * o.meanRadialPeriod
	} else {
		o.period = math.Inf(1)
	}
	o.radius = CalculateRadius(elements)
	o.meanAnomoly = EccentricToMeanAnomoly(o.eccentricAnomoly, elements.Eccentricity)
	return &o
}

// NewOrbitFromNewtonian creates an orbit from a position (m) and velocity (m/s)
// state vector about a central body of gravitational parameter μ (m³/s²).
func NewOrbitFromNewtonian(R, V []float64, μ float64) *Orbit {
	return NewOrbitFromKeplerian(Newtonian2Kepler(R, V, μ))
}

// Elements returns the current Keplerian elements.
func (o *Orbit) Elements() KeplerianElements { return o.elements }

// Classification returns the orbit classification, fixed at construction.
func (o *Orbit) Classification() OrbitClassification { return o.classification }

// ActivePositionAngle returns which element tracks the satellite position.
func (o *Orbit) ActivePositionAngle() PositionAngle { return o.positionAngle }

// EccentricAnomoly returns the current eccentric (or parabolic, or hyperbolic) anomoly (rad).
func (o *Orbit) EccentricAnomoly() float64 { return o.eccentricAnomoly }

// MeanRadialPeriod returns the time to traverse one radian of mean anomaly (s).
func (o *Orbit) MeanRadialPeriod() float64 { return o.meanRadialPeriod }

// Period returns the orbital period (s), +Inf if the orbit is not closed.
func (o *Orbit) Period() float64 { return o.period }

// Radius returns the current radius (m).
func (o *Orbit) Radius() float64 { return o.radius }

// MeanAnomoly returns the current mean anomoly (rad).
func (o *Orbit) MeanAnomoly() float64 { return o.meanAnomoly }

// activeAngle returns the value of the active position angle.
func (o *Orbit) activeAngle() float64 {
	switch o.positionAngle {
	case AngleTrueLongitude:
		return o.elements.TrueLongitude
	case AngleArgumentLatitude:
		return o.elements.ArgumentLatitude
	default:
		return o.elements.TrueAnomoly
	}
}

// setActiveAngle writes the active position angle.
func (o *Orbit) setActiveAngle(angle float64) {
	switch o.positionAngle {
	case AngleTrueLongitude:
		o.elements.TrueLongitude = angle
	case AngleArgumentLatitude:
		o.elements.ArgumentLatitude = angle
	default:
		o.elements.TrueAnomoly = angle
	}
}

// AnomolyFromDeltaTime returns the anomalies reached after the given time
// offset (s) from the current state, without mutating the orbit. An invalid
// orbit, or a Kepler inversion failure, returns the zero result.
func (o *Orbit) AnomolyFromDeltaTime(Δt float64) DeltaTimeAnomoly {
	rslt, _ := o.anomolyFromDeltaTime(Δt)
	return rslt
}

func (o *Orbit) anomolyFromDeltaTime(Δt float64) (DeltaTimeAnomoly, bool) {
	e := o.elements.Eccentricity
	switch {
	case o.classification == OrbitInvalid:
		return DeltaTimeAnomoly{}, false

	case o.elements.IsCircular():
		// The angular rate is constant: advance the active angle directly.
		// The revolution count comes from the raw offset, the angle from the
		// within-period remainder.
		angle := wrapTwoPi(o.activeAngle() + math.Mod(Δt, o.period)/o.meanRadialPeriod)
		return DeltaTimeAnomoly{
			EccentricAnomoly:  angle,
			NumberRevolutions: int(math.Floor(Δt / o.period)),
		}, true

	case o.elements.IsClosed():
		// Elliptical: invert Kepler's equation at the advanced mean anomoly.
		Mtotal := o.meanAnomoly + Δt/o.meanRadialPeriod
		revs := int(math.Floor(Mtotal / (2 * math.Pi)))
		M := wrapTwoPi(Mtotal)
		E, err := MeanToEccentricAnomoly(M, e)
		if err != nil {
			return DeltaTimeAnomoly{}, false
		}
		return DeltaTimeAnomoly{MeanAnomoly: M, EccentricAnomoly: E, NumberRevolutions: revs}, true

	case o.classification == OrbitHyperbolic:
		// Non periodic: no wrapping, no revolution count.
		M := o.meanAnomoly + Δt/o.meanRadialPeriod
		H, err := MeanToEccentricAnomoly(M, e)
		if err != nil {
			return DeltaTimeAnomoly{}, false
		}
		return DeltaTimeAnomoly{MeanAnomoly: M, EccentricAnomoly: H}, true

	default:
		// Parabolic: closed form solution of Barker's equation.
		A := 1.5 * (Δt/o.meanRadialPeriod - o.meanAnomoly)
		B := math.Cbrt(A + math.Sqrt(A*A+1))
		E := 2 * math.Atan(B-1/B)
		return DeltaTimeAnomoly{
			MeanAnomoly:      EccentricToMeanAnomoly(E, e),
			EccentricAnomoly: E,
		}, true
	}
}

// Update advances the orbital state by the given time offset (s). All cached
// quantities are left mutually consistent with the new anomaly; if the orbit
// is invalid or the propagation fails to converge, nothing is updated.
func (o *Orbit) Update(Δt float64) {
	anomoly, ok := o.anomolyFromDeltaTime(Δt)
	if !ok {
		return
	}
	if o.elements.IsCircular() {
		o.setActiveAngle(anomoly.EccentricAnomoly)
		return
	}
	o.meanAnomoly = anomoly.MeanAnomoly
	o.eccentricAnomoly = anomoly.EccentricAnomoly
	o.elements.TrueAnomoly = EccentricToTrueAnomoly(o.eccentricAnomoly, o.elements.Eccentricity)
	o.radius = CalculateRadius(o.elements)
}

// DeltaTimeFromTrueAnomoly returns the time offset (s) from the current state
// at which the given true anomoly (rad) is reached, without mutating the
// orbit. Negative offsets identify anomalies behind the current position.
// Returns +Inf for an invalid orbit, or for a hyperbolic trajectory queried
// outside its asymptotic cone.
func (o *Orbit) DeltaTimeFromTrueAnomoly(ν float64) float64 {
	e := o.elements.Eccentricity
	switch {
	case o.classification == OrbitInvalid:
		return math.Inf(1)

	case o.elements.IsCircular():
		return o.meanRadialPeriod * ν

	case o.elements.IsClosed():
		Δν := ν - o.elements.TrueAnomoly
		polarity := sign(Δν)
		fullRevolutions := math.Floor(polarity * Δν / (2 * math.Pi))
		νEnd := ν - polarity*fullRevolutions*2*math.Pi
		MEnd := EccentricToMeanAnomoly(TrueToEccentricAnomoly(νEnd, e), e)
		return o.meanRadialPeriod * (2*math.Pi*fullRevolutions + (MEnd - o.meanAnomoly))

	default:
		if o.classification == OrbitHyperbolic {
			// Anomalies beyond the asymptotes are never reached.
			criticalAngle := math.Acos(1 / e)
			if ν > math.Pi-criticalAngle || ν < -math.Pi+criticalAngle {
				return math.Inf(1)
			}
		}
		MEnd := EccentricToMeanAnomoly(TrueToEccentricAnomoly(ν, e), e)
		return o.meanRadialPeriod * (MEnd - o.meanAnomoly)
	}
}

// OrbitField enumerates the scalar quantities of an orbit which can be read
// through Value. This replaces dynamic field-by-name lookup with a closed set.
type OrbitField uint8

const (
	FieldSemiParameter OrbitField = iota
	FieldSemiMajorAxis
	FieldEccentricity
	FieldInclination
	FieldNode
	FieldArgumentPerigee
	FieldTrueAnomoly
	FieldTrueLongitude
	FieldTrueLongitudeOfPeriapsis
	FieldArgumentLatitude
	FieldGravitationalParameter
	FieldPeriod
	FieldEccentricAnomoly
	FieldMeanRadialPeriod
	FieldRadius
	FieldMeanAnomoly
)

func (f OrbitField) String() string {
	switch f {
	case FieldSemiParameter:
		return "SemiParameter"
	case FieldSemiMajorAxis:
		return "SemiMajorAxis"
	case FieldEccentricity:
		return "Eccentricity"
	case FieldInclination:
		return "Inclination"
	case FieldNode:
		return "Node"
	case FieldArgumentPerigee:
		return "ArgumentPerigee"
	case FieldTrueAnomoly:
		return "TrueAnomoly"
	case FieldTrueLongitude:
		return "TrueLongitude"
	case FieldTrueLongitudeOfPeriapsis:
		return "TrueLongitudeOfPeriapsis"
	case FieldArgumentLatitude:
		return "ArgumentLatitude"
	case FieldGravitationalParameter:
		return "GravitationalParameter"
	case FieldPeriod:
		return "Period"
	case FieldEccentricAnomoly:
		return "EccentricAnomoly"
	case FieldMeanRadialPeriod:
		return "MeanRadialPeriod"
	case FieldRadius:
		return "Radius"
	case FieldMeanAnomoly:
		return "MeanAnomoly"
	default:
		return "Unknown"
	}
}

// Value returns the current value of the given orbit field.
func (o *Orbit) Value(f OrbitField) (float64, error) {
	switch f {
	case FieldSemiParameter:
		return o.elements.SemiParameter, nil
	case FieldSemiMajorAxis:
		return o.elements.SemiMajorAxis, nil
	case FieldEccentricity:
		return o.elements.Eccentricity, nil
	case FieldInclination:
		return o.elements.Inclination, nil
	case FieldNode:
		return o.elements.Node, nil
	case FieldArgumentPerigee:
		return o.elements.ArgumentPerigee, nil
	case FieldTrueAnomoly:
		return o.elements.TrueAnomoly, nil
	case FieldTrueLongitude:
		return o.elements.TrueLongitude, nil
	case FieldTrueLongitudeOfPeriapsis:
		return o.elements.TrueLongitudeOfPeriapsis, nil
	case FieldArgumentLatitude:
		return o.elements.ArgumentLatitude, nil
	case FieldGravitationalParameter:
		return o.elements.GravitationalParameter, nil
	case FieldPeriod:
		return o.period, nil
	case FieldEccentricAnomoly:
		return o.eccentricAnomoly, nil
	case FieldMeanRadialPeriod:
		return o.meanRadialPeriod, nil
	case FieldRadius:
		return o.radius, nil
	case FieldMeanAnomoly:
		return o.meanAnomoly, nil
	default:
		return 0, fmt.Errorf("unknown orbit field %d", f)
	}
}

// String implements the stringer interface.
func (o Orbit) String() string {
	k := o.elements
	switch o.positionAngle {
	case AngleTrueLongitude:
		return fmt.Sprintf("a=%.1f e=%.6f i=%.3f λ=%.3f [%s]", k.SemiMajorAxis, k.Eccentricity, Rad2deg(k.Inclination), Rad2deg(k.TrueLongitude), o.classification)
	case AngleArgumentLatitude:
		return fmt.Sprintf("a=%.1f e=%.6f i=%.3f Ω=%.3f u=%.3f [%s]", k.SemiMajorAxis, k.Eccentricity, Rad2deg(k.Inclination), Rad2deg(k.Node), Rad2deg(k.ArgumentLatitude), o.classification)
	default:
		return fmt.Sprintf("a=%.1f e=%.6f i=%.3f Ω=%.3f ω=%.3f ν=%.3f [%s]", k.SemiMajorAxis, k.Eccentricity, Rad2deg(k.Inclination), Rad2deg(k.Node), Rad2deg(k.ArgumentPerigee), Rad2deg(k.TrueAnomoly), o.classification)
	}
}
