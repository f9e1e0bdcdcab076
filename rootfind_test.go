package hamilton

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestNewtonSolve(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	fPrime := func(x float64) float64 { return 2 * x }
	rslt := NewtonSolve(f, fPrime, 1, DefaultNewtonParameters())
	if rslt.Status != RootSuccess {
		t.Fatalf("status: %s", rslt.Status)
	}
	if !floats.EqualWithinAbs(rslt.X, math.Sqrt2, 1e-8) {
		t.Fatalf("x = %f", rslt.X)
	}
	if rslt.Iterations >= DefaultNewtonParameters().MaxIterations {
		t.Fatalf("took all %d iterations", rslt.Iterations)
	}
}

func TestNewtonSolveNoRoot(t *testing.T) {
	// x²+1 has no real root, the iteration never settles.
	f := func(x float64) float64 { return x*x + 1 }
	fPrime := func(x float64) float64 { return 2 * x }
	rslt := NewtonSolve(f, fPrime, 1, DefaultNewtonParameters())
	if rslt.Status != RootMaxIterations {
		t.Fatalf("status: %s", rslt.Status)
	}
}

func TestNewtonSolveInvalidParameters(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	fPrime := func(x float64) float64 { return 2 * x }
	p := NewtonParameters{Tolerance: -1, MaxIterations: 4, Relaxation: 1}
	rslt := NewtonSolve(f, fPrime, 1, p)
	if rslt.Status != RootInvalidParameters {
		t.Fatalf("status: %s", rslt.Status)
	}
}

func TestBisect(t *testing.T) {
	rslt := Bisect(math.Cos, 1, 2, DefaultBoundedParameters())
	if rslt.Status != RootSuccess {
		t.Fatalf("status: %s", rslt.Status)
	}
	if !floats.EqualWithinAbs(rslt.X, math.Pi/2, 1e-7) {
		t.Fatalf("x = %f", rslt.X)
	}
	// Exact root on a boundary.
	rslt = Bisect(func(x float64) float64 { return x }, 0, 2, DefaultBoundedParameters())
	if rslt.Status != RootSuccess || rslt.X != 0 {
		t.Fatalf("boundary root not detected: %+v", rslt)
	}
	// No sign change.
	rslt = Bisect(func(x float64) float64 { return x }, 1, 2, DefaultBoundedParameters())
	if rslt.Status != RootInvalidInterval {
		t.Fatalf("status: %s", rslt.Status)
	}
}

func TestSecant(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2 }
	rslt := Secant(f, 1.5, NewtonParameters{Tolerance: 1e-10, MaxIterations: 64, Relaxation: 1})
	if rslt.Status != RootSuccess {
		t.Fatalf("status: %s", rslt.Status)
	}
	if !floats.EqualWithinAbs(f(rslt.X), 0, 1e-8) {
		t.Fatalf("f(x) = %f at x = %f", f(rslt.X), rslt.X)
	}
	// A constant function has no secant.
	rslt = Secant(func(x float64) float64 { return 1 }, 1, DefaultNewtonParameters())
	if rslt.Status != RootIllPosed {
		t.Fatalf("status: %s", rslt.Status)
	}
}

func TestRootStatusString(t *testing.T) {
	for _, s := range []RootStatus{RootOtherError, RootSuccess, RootMaxIterations, RootIllPosed, RootInvalidParameters, RootInvalidInterval} {
		if s.String() == "" {
			t.Fatalf("empty status string for %d", s)
		}
	}
}
