package hamilton

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestWGS84Radius(t *testing.T) {
	if !floats.EqualWithinAbs(WGS84Radius(0), WGS84SemiMajorAxis, 1e-6) {
		t.Fatalf("equatorial radius = %f", WGS84Radius(0))
	}
	if !floats.EqualWithinAbs(WGS84Radius(math.Pi/2), WGS84SemiMinorAxis, 1e-6) {
		t.Fatalf("polar radius = %f", WGS84Radius(math.Pi/2))
	}
	mid := WGS84Radius(Deg2rad(45))
	if mid >= WGS84SemiMajorAxis || mid <= WGS84SemiMinorAxis {
		t.Fatalf("mid latitude radius %f out of bounds", mid)
	}
}

func TestECEF2LLAKnownPoints(t *testing.T) {
	// On the equator at the prime meridian.
	lla := ECEF2LLA([]float64{WGS84SemiMajorAxis, 0, 0})
	if !floats.EqualWithinAbs(lla.Lat, 0, 1e-9) || !floats.EqualWithinAbs(lla.Long, 0, 1e-9) || !floats.EqualWithinAbs(lla.Alt, 0, 1e-3) {
		t.Fatalf("equatorial point: %+v", lla)
	}
	// On the north pole.
	lla = ECEF2LLA([]float64{0, 0, WGS84SemiMinorAxis})
	if !floats.EqualWithinAbs(lla.Lat, 90, 1e-6) || !floats.EqualWithinAbs(lla.Alt, 0, 1e-2) {
		t.Fatalf("polar point: %+v", lla)
	}
}

func TestLLAECEFRoundTrip(t *testing.T) {
	for _, lla := range []LLA{
		{Lat: 45, Long: 30, Alt: 1000},
		{Lat: -33.8688, Long: 151.2093, Alt: 58},
		{Lat: 78.2232, Long: 15.6267, Alt: 0},
		{Lat: 0.1, Long: 240, Alt: 35786e3},
	} {
		ecef := LLA2ECEF(lla)
		back := ECEF2LLA(ecef)
		if !floats.EqualWithinAbs(back.Lat, lla.Lat, 1e-5) {
			t.Fatalf("latitude not recovered: %+v -> %+v", lla, back)
		}
		if !floats.EqualWithinAbs(back.Long, lla.Long, 1e-9) {
			t.Fatalf("longitude not recovered: %+v -> %+v", lla, back)
		}
		if !floats.EqualWithinAbs(back.Alt, lla.Alt, 1e-2) {
			t.Fatalf("altitude not recovered: %+v -> %+v", lla, back)
		}
	}
}

func TestGEO2ECEF(t *testing.T) {
	ecef := GEO2ECEF(400e3, 0, 0)
	if !vectorsEqual(ecef, []float64{Earth.Radius + 400e3, 0, 0}) {
		t.Fatalf("spherical ECEF incorrect: %+v", ecef)
	}
	if !floats.EqualWithinAbs(norm(GEO2ECEF(400e3, 0.7, 1.1)), Earth.Radius+400e3, 1e-6) {
		t.Fatal("spherical ECEF norm incorrect")
	}
}

func TestECIECEFRoundTrip(t *testing.T) {
	R := []float64{6524834, 6862875, 6448296}
	θgst := 1.234
	ecef := ECI2ECEF(R, θgst)
	if !floats.EqualWithinAbs(norm(ecef), norm(R), 1e-6) {
		t.Fatal("Earth rotation must preserve the norm")
	}
	back := ECEF2ECI(ecef, θgst)
	for i := 0; i < 3; i++ {
		if !floats.EqualWithinAbs(back[i], R[i], 1e-6) {
			t.Fatalf("ECI not recovered on axis %d: %f != %f", i, back[i], R[i])
		}
	}
	// The z axis is the rotation axis.
	if ecef[2] != R[2] {
		t.Fatal("the polar component must be unaffected")
	}
}

func TestEarthRotationRate(t *testing.T) {
	// One sidereal day sweeps 2π.
	sidereal := 2 * math.Pi / EarthRotationRate
	if !floats.EqualWithinAbs(sidereal, 86164.1, 1e-1) {
		t.Fatalf("sidereal day = %f s", sidereal)
	}
}
