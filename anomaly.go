package hamilton

import (
	"fmt"
	"math"
)

// CCoefficients holds the C2, C3 universal variable coefficients.
type CCoefficients struct {
	C2, C3 float64
}

// CalculateCoefficients computes the C2, C3 coefficients at the given angle.
func CalculateCoefficients(angle float64) CCoefficients {
	if angle > 1e-6 {
		sqrtAngle := math.Sqrt(angle)
		return CCoefficients{C2: (1 - math.Cos(sqrtAngle)) / angle,
			C3: (sqrtAngle - math.Sin(sqrtAngle)) / math.Pow(sqrtAngle, 3)}
	} else if angle < -1e-6 {
		sqrtAngle := math.Sqrt(-angle)
		return CCoefficients{C2: (1 - math.Cosh(sqrtAngle)) / angle,
			C3: (math.Sinh(sqrtAngle) - sqrtAngle) / math.Pow(sqrtAngle, 3)}
	}
	// Taylor series approximation truncated to 3 terms O(angle²).
	return CCoefficients{C2: 0.5 - angle/24, C3: 1/6. - angle/120}
}

// TrueToEccentricAnomoly computes the eccentric anomoly from the true anomoly
// and the eccentricity. Returns the parabolic or hyperbolic anomoly in the case
// of a non elliptic orbit.
func TrueToEccentricAnomoly(ν, e float64) float64 {
	if e < 1 {
		// Elliptical
		sinν, cosν := math.Sincos(ν)
		denom := 1 + e*cosν
		sinE := sinν * math.Sqrt(1-e*e) / denom
		cosE := (e + cosν) / denom
		return math.Atan2(sinE, cosE)
	} else if e == 1 {
		// Parabolic
		return math.Tan(0.5 * ν)
	}
	// Hyperbolic
	return math.Asinh(math.Sin(ν) * math.Sqrt(e*e-1) / (1 + e*math.Cos(ν)))
}

// EccentricToTrueAnomoly computes the true anomoly from the eccentric,
// parabolic or hyperbolic anomoly and the eccentricity.
// NOTE: the elliptical and hyperbolic branches use an acos form, which folds
// the result into [0,π]: the quadrant information the forward conversion
// carries is not recovered here.
func EccentricToTrueAnomoly(anomoly, e float64) float64 {
	if e < 1 {
		// Elliptical
		cosE := math.Cos(anomoly)
		return math.Acos((cosE - e) / (1 - e*cosE))
	} else if e == 1 {
		// Parabolic
		return 2 * math.Atan(anomoly)
	}
	// Hyperbolic
	coshH := math.Cosh(anomoly)
	return math.Acos((coshH - e) / (1 - e*coshH))
}

// EccentricToMeanAnomoly computes the mean anomoly from the eccentric,
// parabolic or hyperbolic anomoly and the eccentricity: Kepler's equation for
// ellipses, its hyperbolic analogue, and Barker's cubic for parabolas.
func EccentricToMeanAnomoly(anomoly, e float64) float64 {
	if e < 1 {
		// Elliptical
		return anomoly - e*math.Sin(anomoly)
	} else if e > 1 {
		// Hyperbolic
		return e*math.Sinh(anomoly) - anomoly
	}
	// Parabolic
	return anomoly + math.Pow(anomoly, 3)/3
}

// keplerSolverParameters drive the Kepler equation inversions below. Tighter
// than the general Newton defaults since the propagation accuracy hinges on it.
func keplerSolverParameters() NewtonParameters {
	return NewtonParameters{Tolerance: 1e-12, MaxIterations: 50, Relaxation: 1}
}

// MeanToEccentricAnomoly inverts Kepler's equation: it computes the eccentric
// (or hyperbolic, or parabolic) anomoly whose mean anomoly is the one provided.
// The elliptical and hyperbolic branches use Newtonian iteration (initial
// guesses per Vallado Algorithms 2 and 4); the parabolic branch is the closed
// form solution of Barker's equation.
func MeanToEccentricAnomoly(M, e float64) (float64, error) {
	if e == 1 {
		// Parabolic, closed form.
		A := 1.5 * M
		B := math.Cbrt(A + math.Sqrt(A*A+1))
		return B - 1/B, nil
	}
	var f, fPrime func(float64) float64
	var guess float64
	if e < 1 {
		f = func(E float64) float64 { return E - e*math.Sin(E) - M }
		fPrime = func(E float64) float64 { return 1 - e*math.Cos(E) }
		if (M > math.Pi && M < 2*math.Pi) || M < 0 {
			guess = M - e
		} else {
			guess = M + e
		}
	} else {
		f = func(H float64) float64 { return e*math.Sinh(H) - H - M }
		fPrime = func(H float64) float64 { return e*math.Cosh(H) - 1 }
		switch {
		case e < 1.6:
			if (M > math.Pi && M < 2*math.Pi) || M < 0 {
				guess = M - e
			} else {
				guess = M + e
			}
		case e < 3.6 && math.Abs(M) > math.Pi:
			guess = M - sign(M)*e
		default:
			guess = M / (e - 1)
		}
	}
	rslt := NewtonSolve(f, fPrime, guess, keplerSolverParameters())
	if rslt.Status != RootSuccess {
		return 0, fmt.Errorf("kepler equation did not converge for M=%f e=%f: %s", M, e, rslt.Status)
	}
	return rslt.X, nil
}
