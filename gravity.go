package hamilton

import "math"

// GravityAcceleration returns the gravitational acceleration (m/s²) at the
// body fixed position R (m), including the zonal harmonic perturbations of the
// central body up to degree (2 or 3 supported; anything below 2 is a pure
// point mass).
func GravityAcceleration(R []float64, body CelestialObject, degree uint8) []float64 {
	x, y, z := R[0], R[1], R[2]
	r2 := x*x + y*y + z*z
	r := math.Sqrt(r2)
	accel := make([]float64, 3)
	if r == 0 {
		return accel
	}
	r3 := r2 * r
	for i := 0; i < 3; i++ {
		accel[i] = -body.μ * R[i] / r3
	}
	if degree < 2 {
		return accel
	}
	z2 := z * z
	z3 := z2 * z
	r252 := math.Pow(r2, 5/2.)
	r272 := math.Pow(r2, 7/2.)
	accJ2 := (3 / 2.) * body.J(2) * math.Pow(body.Radius, 2) * body.μ
	accel[0] += accJ2 * (5*x*z2/r272 - x/r252)
	accel[1] += accJ2 * (5*y*z2/r272 - y/r252)
	accel[2] += accJ2 * (5*z3/r272 - 3*z/r252)
	if degree >= 3 {
		r292 := math.Pow(r2, 9/2.)
		z4 := z2 * z2
		accJ3 := body.J(3) * math.Pow(body.Radius, 3) * body.μ
		accel[0] += (5 / 2.) * accJ3 * (7*x*z3/r292 - 3*x*z/r272)
		accel[1] += (5 / 2.) * accJ3 * (7*y*z3/r292 - 3*y*z/r272)
		accel[2] += 0.5 * accJ3 * (35*z4/r292 - 30*z2/r272 + 3/r252)
	}
	return accel
}
