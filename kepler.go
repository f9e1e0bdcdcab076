package hamilton

import "math"

// OrbitClassification identifies the geometry of a two body orbit.
type OrbitClassification uint8

const (
	// OrbitInvalid flags a non physical element set (SemiMajorAxis <= 0).
	OrbitInvalid OrbitClassification = iota
	// OrbitCircularEquatorial is a circular orbit lying in the equatorial plane.
	OrbitCircularEquatorial
	// OrbitCircularInclined is a circular orbit out of the equatorial plane.
	OrbitCircularInclined
	// OrbitEllipticalEquatorial is an elliptical orbit lying in the equatorial plane.
	OrbitEllipticalEquatorial
	// OrbitEllipticalInclined is an elliptical orbit out of the equatorial plane.
	OrbitEllipticalInclined
	// OrbitParabolic is an escape trajectory with eccentricity exactly one.
	OrbitParabolic
	// OrbitHyperbolic is an escape trajectory with eccentricity above one.
	OrbitHyperbolic
)

func (c OrbitClassification) String() string {
	switch c {
	case OrbitCircularEquatorial:
		return "circular equatorial"
	case OrbitCircularInclined:
		return "circular inclined"
	case OrbitEllipticalEquatorial:
		return "elliptical equatorial"
	case OrbitEllipticalInclined:
		return "elliptical inclined"
	case OrbitParabolic:
		return "parabolic"
	case OrbitHyperbolic:
		return "hyperbolic"
	default:
		return "invalid"
	}
}

// KeplerianElements defines a two body orbit.
// All angles are in radians, lengths in meters, times in seconds.
// Node and ArgumentPerigee are undefined for equatorial orbits, and TrueAnomoly
// for circular ones: the degenerate substitutes (TrueLongitudeOfPeriapsis,
// ArgumentLatitude, TrueLongitude) take over per classification.
type KeplerianElements struct {
	// SemiParameter is the conic size parameter p (m), finite even for parabolas.
	SemiParameter float64
	// SemiMajorAxis is signed: positive for closed orbits, +Inf for parabolas,
	// negative for hyperbolas (m).
	SemiMajorAxis float64
	// Eccentricity is 0 for circles, (0,1) for ellipses, 1 for parabolas, >1 for hyperbolas.
	Eccentricity float64
	// Inclination is the tilt of the orbital plane from the reference pole, [0,π] (rad).
	Inclination float64
	// Node is the right ascension of the ascending node, [0,2π) (rad).
	Node float64
	// ArgumentPerigee is measured from the ascending node in the direction of motion (rad).
	ArgumentPerigee float64
	// TrueAnomoly locates the satellite relative to periapsis (rad).
	TrueAnomoly float64
	// TrueLongitudeOfPeriapsis substitutes for elliptical equatorial orbits (rad).
	TrueLongitudeOfPeriapsis float64
	// ArgumentLatitude substitutes for circular inclined orbits (rad).
	ArgumentLatitude float64
	// TrueLongitude substitutes for circular equatorial orbits (rad).
	TrueLongitude float64
	// GravitationalParameter is μ of the central body (m³/s²).
	GravitationalParameter float64
}

// IsValid returns whether the element set describes a physical orbit.
func (k KeplerianElements) IsValid() bool {
	return ClassifyOrbit(k) != OrbitInvalid
}

// IsClosed returns whether the orbit is periodic.
func (k KeplerianElements) IsClosed() bool {
	return k.Eccentricity < 1
}

// IsCircular returns whether the orbit is circular in any plane.
// The comparison is exact, not tolerance based: near circular orbits classify
// as elliptical. Use ClassifyOrbitWithin for a tolerance aware classification.
func (k KeplerianElements) IsCircular() bool {
	return k.Eccentricity == 0
}

// IsParabolic returns whether the orbit is parabolic in any plane.
func (k KeplerianElements) IsParabolic() bool {
	return k.Eccentricity == 1
}

// IsHyperbolic returns whether the orbit is hyperbolic in any plane.
func (k KeplerianElements) IsHyperbolic() bool {
	return k.Eccentricity > 1
}

// IsEquatorial returns whether the orbit lies exactly in the equatorial plane.
func (k KeplerianElements) IsEquatorial() bool {
	return k.Inclination == 0
}

// ClassifyOrbit returns the classification of the given element set. It is total:
// every finite input maps to exactly one classification. The eccentricity and
// inclination comparisons are exact floating point equality, so boundary orbits
// (e.g. e = 1e-15) classify as their non degenerate neighbour.
// The escape trajectories are recognised before the degenerate axis guard:
// a hyperbolic orbit carries a negative semi major axis by the energy sign
// convention, and a parabolic one an infinite axis, so neither is a sentinel.
func ClassifyOrbit(k KeplerianElements) OrbitClassification {
	if k.IsHyperbolic() {
		return OrbitHyperbolic
	} else if k.IsParabolic() {
		return OrbitParabolic
	}
	if k.SemiMajorAxis <= 0 {
		return OrbitInvalid
	}
	if k.Eccentricity > 0 {
		if k.IsEquatorial() {
			return OrbitEllipticalEquatorial
		}
		return OrbitEllipticalInclined
	}
	if k.IsEquatorial() {
		return OrbitCircularEquatorial
	}
	return OrbitCircularInclined
}

// ClassifyOrbitWithin is the tolerance parameterized variant of ClassifyOrbit:
// eccentricities within eccTol of 0 (resp. 1) count as circular (resp. parabolic),
// and inclinations within inclTol of 0 count as equatorial. ClassifyOrbit remains
// the behaviour of record; this is an additive convenience for near boundary orbits.
func ClassifyOrbitWithin(k KeplerianElements, eccTol, inclTol float64) OrbitClassification {
	if k.Eccentricity > 1+eccTol {
		return OrbitHyperbolic
	} else if math.Abs(k.Eccentricity-1) <= eccTol {
		return OrbitParabolic
	}
	if k.SemiMajorAxis <= 0 {
		return OrbitInvalid
	}
	equatorial := math.Abs(k.Inclination) <= inclTol
	if k.Eccentricity > eccTol {
		if equatorial {
			return OrbitEllipticalEquatorial
		}
		return OrbitEllipticalInclined
	}
	if equatorial {
		return OrbitCircularEquatorial
	}
	return OrbitCircularInclined
}

// CalculatePeriod returns the period of the orbit in seconds, or +Inf if the
// orbit is not both valid and closed.
func CalculatePeriod(k KeplerianElements) float64 {
	if k.IsValid() && k.IsClosed() {
		return 2 * math.Pi * math.Sqrt(math.Pow(k.SemiMajorAxis, 3)/k.GravitationalParameter)
	}
	return math.Inf(1)
}

// CalculateMeanRadialPeriod returns the time to traverse one radian of mean
// anomaly in seconds.
func CalculateMeanRadialPeriod(k KeplerianElements) float64 {
	if k.IsClosed() {
		return math.Sqrt(math.Pow(k.SemiMajorAxis, 3) / k.GravitationalParameter)
	} else if k.IsHyperbolic() {
		return math.Sqrt(-math.Pow(k.SemiMajorAxis, 3) / k.GravitationalParameter)
	}
	return 2 * math.Sqrt(math.Pow(k.SemiParameter, 3)/k.GravitationalParameter)
}

// CalculateRadius returns the instantaneous radius of the orbit in meters,
// relative to the orbital barycentre.
func CalculateRadius(k KeplerianElements) float64 {
	return k.SemiParameter / (1 + k.Eccentricity*math.Cos(k.TrueAnomoly))
}

// EphemerisState is an instantaneous Newtonian state.
type EphemerisState struct {
	Pos       []float64 // m
	Vel       []float64 // m/s
	LightTime float64   // s
}

// Newtonian2Kepler computes the Keplerian elements from a position and velocity
// state vector, assuming a two body problem. From Vallado's RV2COE, Algorithm 9.
// A zero position or velocity returns the zero element set, which classifies as
// invalid.
func Newtonian2Kepler(R, V []float64, μ float64) KeplerianElements {
	r := norm(R)
	v := norm(V)
	if r == 0 || v == 0 {
		return KeplerianElements{}
	}

	var k KeplerianElements
	k.GravitationalParameter = μ

	hVec := cross(R, V)
	h := norm(hVec)
	nVec := cross([]float64{0, 0, 1}, hVec)
	n := norm(nVec)
	rDotV := dot(R, V)
	eVec := make([]float64, 3)
	for i := 0; i < 3; i++ {
		eVec[i] = ((v*v-μ/r)*R[i] - rDotV*V[i]) / μ
	}
	ξ := 0.5*v*v - μ/r

	k.Eccentricity = norm(eVec)
	if k.Eccentricity == 1 {
		// Parabola: the semi major axis is unbounded.
		k.SemiParameter = h * h / μ
		k.SemiMajorAxis = math.Inf(1)
	} else {
		k.SemiMajorAxis = -μ / (2 * ξ)
		k.SemiParameter = k.SemiMajorAxis * (1 - k.Eccentricity*k.Eccentricity)
	}

	k.Inclination = math.Acos(hVec[2] / h)

	if n > 0 {
		k.Node = math.Acos(nVec[0] / n)
		if nVec[1] < 0 {
			k.Node = 2*math.Pi - k.Node
		}

		k.ArgumentPerigee = math.Acos(dot(nVec, eVec) / (k.Eccentricity * n))
		if math.IsNaN(k.ArgumentPerigee) {
			k.ArgumentPerigee = 0
		}
		if eVec[2] < 0 {
			k.ArgumentPerigee = 2*math.Pi - k.ArgumentPerigee
		}

		// Special case parameter - circular inclined.
		k.ArgumentLatitude = math.Acos(dot(nVec, R) / (n * r))
		if R[2] < 0 {
			k.ArgumentLatitude = 2*math.Pi - k.ArgumentLatitude
		}
	}

	if k.Eccentricity > 0 {
		cosν := dot(eVec, R) / (k.Eccentricity * r)
		if math.Abs(cosν) > 1 {
			// Rounding pushed the ratio out of acos domain.
			cosν = sign(cosν)
		}
		k.TrueAnomoly = math.Acos(cosν)
		if rDotV < 0 {
			k.TrueAnomoly = 2*math.Pi - k.TrueAnomoly
		}

		// Special case parameter - elliptical equatorial.
		k.TrueLongitudeOfPeriapsis = math.Acos(eVec[0] / k.Eccentricity)
		if eVec[1] < 0 {
			k.TrueLongitudeOfPeriapsis = 2*math.Pi - k.TrueLongitudeOfPeriapsis
		}
	}

	// Special case parameter - circular equatorial.
	k.TrueLongitude = math.Acos(R[0] / r)
	if R[1] < 0 {
		k.TrueLongitude = 2*math.Pi - k.TrueLongitude
	}

	return k
}

// Kepler2Newtonian converts Keplerian elements to position and velocity state
// vectors, assuming a two body, aberration free problem. From Vallado's COE2RV,
// Algorithm 10. Invalid elements return the zero state.
func Kepler2Newtonian(k KeplerianElements) EphemerisState {
	classification := ClassifyOrbit(k)
	if classification == OrbitInvalid {
		return EphemerisState{}
	}

	var useAnomoly, useNode, usePerigee float64
	switch classification {
	case OrbitCircularEquatorial:
		useAnomoly = k.TrueLongitude
	case OrbitCircularInclined:
		useNode = k.Node
		useAnomoly = k.ArgumentLatitude
	case OrbitEllipticalEquatorial:
		usePerigee = k.TrueLongitudeOfPeriapsis
		useAnomoly = k.TrueAnomoly
	default:
		usePerigee = k.ArgumentPerigee
		useNode = k.Node
		useAnomoly = k.TrueAnomoly
	}

	sinν, cosν := math.Sincos(useAnomoly)
	distance := k.SemiParameter / (1 + k.Eccentricity*cosν)
	coeff := math.Sqrt(k.GravitationalParameter / k.SemiParameter)

	// Newtonian state within the orbital plane.
	posPQW := []float64{distance * cosν, distance * sinν, 0}
	velPQW := []float64{-coeff * sinν, coeff * (k.Eccentricity + cosν), 0}

	return EphemerisState{
		Pos:       PQW2ECI(k.Inclination, usePerigee, useNode, posPQW),
		Vel:       PQW2ECI(k.Inclination, usePerigee, useNode, velPQW),
		LightTime: distance / SpeedLight,
	}
}
