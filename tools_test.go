package hamilton

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

func TestTransferType(t *testing.T) {
	if TType1.Longway() || TType3.Longway() {
		t.Fatal("types 1 and 3 are short way")
	}
	if !TType2.Longway() || !TType4.Longway() {
		t.Fatal("types 2 and 4 are long way")
	}
	assertPanic(t, func() {
		TTypeAuto.Longway()
	})
	if TType1.Revs() != 0 || TType2.Revs() != 0 || TTypeAuto.Revs() != 0 {
		t.Fatal("zero revolution types incorrect")
	}
	if TType3.Revs() != 1 || TType4.Revs() != 1 {
		t.Fatal("one revolution types incorrect")
	}
	for _, tt := range []TransferType{TTypeAuto, TType1, TType2, TType3, TType4} {
		if tt.String() == "" {
			t.Fatal("empty transfer type string")
		}
	}
}

func TestHohmann(t *testing.T) {
	// Degenerate transfer between identical circular orbits.
	r := 7e6
	vCirc := math.Sqrt(Earth.GM() / r)
	vDep, vArr, tof := Hohmann(r, vCirc, r, vCirc, Earth)
	if !floats.EqualWithinAbs(vDep, vCirc, 1e-6) || !floats.EqualWithinAbs(vArr, vCirc, 1e-6) {
		t.Fatalf("degenerate transfer speeds: %f, %f", vDep, vArr)
	}
	if !floats.EqualWithinAbs(tof.Seconds(), math.Pi*math.Sqrt(math.Pow(r, 3)/Earth.GM()), 1) {
		t.Fatalf("degenerate transfer time: %s", tof)
	}

	// LEO to GEO.
	rLEO := 6678e3
	rGEO := 42164e3
	vLEO := math.Sqrt(Earth.GM() / rLEO)
	vGEO := math.Sqrt(Earth.GM() / rGEO)
	vDep, vArr, tof = Hohmann(rLEO, vLEO, rGEO, vGEO, Earth)
	if vDep <= vLEO {
		t.Fatalf("departure %f must exceed the circular speed %f", vDep, vLEO)
	}
	if vArr >= vGEO {
		t.Fatalf("arrival %f must be below the circular speed %f", vArr, vGEO)
	}
	aTransfer := 0.5 * (rLEO + rGEO)
	expTof := math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/Earth.GM())
	if !floats.EqualWithinAbs(tof.Seconds(), expTof, 1) {
		t.Fatalf("time of flight %s, expected %f s", tof, expTof)
	}
	if tof < 5*time.Hour || tof > 6*time.Hour {
		t.Fatalf("LEO to GEO time of flight out of range: %s", tof)
	}
}

func TestLambertVallado(t *testing.T) {
	// From Vallado 4th edition, page 497, converted to SI.
	Ri := mat64.NewVector(3, []float64{15945340, 0, 0})
	Rf := mat64.NewVector(3, []float64{12214838.99, 10249467.31, 0})
	ViExp := mat64.NewVector(3, []float64{2058.913, 2915.965, 0})
	VfExp := mat64.NewVector(3, []float64{-3451.565, 910.315, 0})
	for _, dm := range []TransferType{TTypeAuto, TType1} {
		Vi, Vf, φ, err := Lambert(Ri, Rf, 76.0*time.Minute, dm, Earth)
		if err != nil {
			t.Fatalf("err %s", err)
		}
		if !mat64.EqualApprox(Vi, ViExp, 1e-5) {
			t.Logf("φ=%f", φ)
			t.Logf("\nGot %+v\nExp %+v\n", mat64.Formatted(Vi.T()), mat64.Formatted(ViExp.T()))
			t.Fatalf("[%s] incorrect Vi computed", dm)
		}
		if !mat64.EqualApprox(Vf, VfExp, 1e-5) {
			t.Logf("φ=%f", φ)
			t.Logf("\nGot %+v\nExp %+v\n", mat64.Formatted(Vf.T()), mat64.Formatted(VfExp.T()))
			t.Fatalf("[%s] incorrect Vf computed", dm)
		}
	}
	// The long way.
	ViExp = mat64.NewVector(3, []float64{-3811.158, -2003.854, 0})
	VfExp = mat64.NewVector(3, []float64{4207.569, 914.724, 0})

	Vi, Vf, φ, err := Lambert(Ri, Rf, 76.0*time.Minute, TType2, Earth)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !mat64.EqualApprox(Vi, ViExp, 1e-5) {
		t.Logf("φ=%f", φ)
		t.Logf("\nGot %+v\nExp %+v\n", mat64.Formatted(Vi.T()), mat64.Formatted(ViExp.T()))
		t.Fatalf("[%s] incorrect Vi computed", TType2)
	}
	if !mat64.EqualApprox(Vf, VfExp, 1e-5) {
		t.Logf("φ=%f", φ)
		t.Logf("\nGot %+v\nExp %+v\n", mat64.Formatted(Vf.T()), mat64.Formatted(VfExp.T()))
		t.Fatalf("[%s] incorrect Vf computed", TType2)
	}
}

func TestLambertErrors(t *testing.T) {
	// Invalid R vectors.
	Rf := mat64.NewVector(3, []float64{12214838.99, 10249467.31, 0})
	_, _, _, err := Lambert(mat64.NewVector(2, []float64{15945340, 0}), Rf, 76.0*time.Minute, TType2, Earth)
	if err == nil {
		t.Fatal("err should not be nil if the R vectors are of different dimensions")
	}
	_, _, _, err = Lambert(mat64.NewVector(2, []float64{15945340, 0}), mat64.NewVector(2, []float64{12214838.99, 10249467.31}), 76.0*time.Minute, TType2, Earth)
	if err == nil {
		t.Fatal("err should not be nil if the R vectors are not of dimension 3x1")
	}
}
