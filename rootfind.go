package hamilton

import "math"

// RootStatus is the exit status of a one dimensional root search.
type RootStatus uint8

const (
	// RootOtherError is a miscellaneous unclassified error.
	RootOtherError RootStatus = iota
	// RootSuccess means the solver converged.
	RootSuccess
	// RootMaxIterations means the solver did not converge in the allowed number of iterations.
	RootMaxIterations
	// RootIllPosed means an unstable or unsolvable problem was detected.
	RootIllPosed
	// RootInvalidParameters means one or more solver parameters are invalid.
	RootInvalidParameters
	// RootInvalidInterval means the provided bracketing interval is invalid.
	RootInvalidInterval
)

func (s RootStatus) String() string {
	switch s {
	case RootSuccess:
		return "success"
	case RootMaxIterations:
		return "max iterations exceeded"
	case RootIllPosed:
		return "ill posed"
	case RootInvalidParameters:
		return "invalid parameters"
	case RootInvalidInterval:
		return "invalid interval"
	default:
		return "other error"
	}
}

// RootResult stores the outcome of a root search.
type RootResult struct {
	X          float64
	Delta      float64
	Iterations int
	Status     RootStatus
}

// NewtonParameters configures the Newton and secant solvers.
type NewtonParameters struct {
	Tolerance     float64 // Exits successfully once |delta| < Tolerance.
	MaxIterations int
	Relaxation    float64 // Convergence assistance factor.
}

// BoundedParameters configures the bisection solver.
type BoundedParameters struct {
	Tolerance     float64
	MaxIterations int
}

// DefaultNewtonParameters returns the default Newton solver inputs.
func DefaultNewtonParameters() NewtonParameters {
	return NewtonParameters{Tolerance: 1e-8, MaxIterations: 16, Relaxation: 1}
}

// DefaultBoundedParameters returns the default bisection solver inputs.
func DefaultBoundedParameters() BoundedParameters {
	return BoundedParameters{Tolerance: 1e-8, MaxIterations: 128}
}

func (p NewtonParameters) invalid() bool {
	return p.Tolerance < 0 || p.MaxIterations < 1 || p.Relaxation < 0
}

// NewtonSolve attempts to determine the root x of f(x) = 0 using Newtonian iteration.
// NOTE: Will not check for f'(x) = 0, which will cause a convergence failure. If this
// is possible, mitigations should be built into the input function.
func NewtonSolve(f, fPrime func(float64) float64, guess float64, p NewtonParameters) RootResult {
	rslt := RootResult{X: guess}
	for it := 0; it < p.MaxIterations; it++ {
		rslt.Delta = p.Relaxation * f(rslt.X) / fPrime(rslt.X)
		if math.Abs(rslt.Delta) < p.Tolerance {
			rslt.Status = RootSuccess
			rslt.Iterations = it
			return rslt
		}
		rslt.X -= rslt.Delta
	}
	rslt.Iterations = p.MaxIterations
	if p.invalid() {
		rslt.Status = RootInvalidParameters
	} else {
		rslt.Status = RootMaxIterations
	}
	return rslt
}

// Bisect attempts to determine the root x of f(x) = 0 within [x1, x2] using the bisection method.
func Bisect(f func(float64) float64, x1, x2 float64, p BoundedParameters) RootResult {
	f1 := f(x1)
	f2 := f(x2)
	rslt := RootResult{X: 0.5 * (x1 + x2), Delta: x2 - x1}
	switch {
	case f1 == 0:
		return RootResult{X: x1, Delta: x2 - x1, Status: RootSuccess}
	case f2 == 0:
		return RootResult{X: x2, Delta: x2 - x1, Status: RootSuccess}
	case f1*f2 > 0:
		return RootResult{X: rslt.X, Delta: x2 - x1, Status: RootInvalidInterval}
	case x2-x1 <= 0:
		rslt.Status = RootInvalidInterval
		return rslt
	}
	f3 := f(rslt.X)
	for it := 0; it < p.MaxIterations; it++ {
		if f3 == 0 {
			rslt.Delta = (x2 - x1) * 0.5
			rslt.Status = RootSuccess
			rslt.Iterations = it
			return rslt
		} else if f1*f3 < 0 {
			x2 = rslt.X
			f2 = f3
		} else {
			x1 = rslt.X
			f1 = f3
		}
		rslt.X = 0.5 * (x1 + x2)
		rslt.Delta = x2 - x1
		if math.Abs(rslt.Delta) < p.Tolerance {
			rslt.Status = RootSuccess
			rslt.Iterations = it
			return rslt
		}
		f3 = f(rslt.X)
	}
	rslt.Iterations = p.MaxIterations
	if p.Tolerance < 0 || p.MaxIterations < 1 {
		rslt.Status = RootInvalidParameters
	} else {
		rslt.Status = RootMaxIterations
	}
	return rslt
}

// Secant attempts to determine the root x of f(x) = 0 using the secant method.
func Secant(f func(float64) float64, guess float64, p NewtonParameters) RootResult {
	xp := guess
	var rslt RootResult
	if xp >= 0 {
		rslt.X = xp*(1+1e-4) + 1e-4
	} else {
		rslt.X = xp*(1+1e-4) - 1e-4
	}
	yp := f(xp)
	yn := f(rslt.X)
	rslt.Delta = (rslt.X - xp) / (yn - yp) * yn * p.Relaxation
	for it := 0; it < p.MaxIterations; it++ {
		if math.Abs(rslt.Delta) < p.Tolerance {
			rslt.Iterations = it
			rslt.Status = RootSuccess
			rslt.X -= rslt.Delta
			return rslt
		}
		if yn-yp == 0 {
			rslt.Iterations = it
			rslt.Status = RootIllPosed
			rslt.X -= rslt.Delta
			return rslt
		}
		xp = rslt.X
		rslt.X -= rslt.Delta
		yp = yn
		yn = f(rslt.X)
		rslt.Delta = (rslt.X - xp) / (yn - yp) * yn * p.Relaxation
	}
	rslt.Iterations = p.MaxIterations
	if p.invalid() {
		rslt.Status = RootInvalidParameters
	} else {
		rslt.Status = RootMaxIterations
	}
	return rslt
}
