package hamilton

import "math"

const (
	// EarthRotationRate is the average Earth rotation rate in radians per second.
	EarthRotationRate = 7.2921150e-5

	// WGS84SemiMajorAxis is the WGS84 ellipsoid equatorial radius in meters.
	WGS84SemiMajorAxis = 6378137.0
	// WGS84SemiMinorAxis is the WGS84 ellipsoid polar radius in meters.
	WGS84SemiMinorAxis = 6356752.314245
	// WGS84Flattening is the WGS84 ellipsoid flattening.
	WGS84Flattening = 1.0 / 298.2572235630
	// WGS84EccSq is the square of the first eccentricity of the WGS84 ellipsoid.
	WGS84EccSq = 1.0 - (WGS84SemiMinorAxis/WGS84SemiMajorAxis)*(WGS84SemiMinorAxis/WGS84SemiMajorAxis)
)

// LLA is a geodetic latitude (deg), longitude (deg), altitude (m) triplet.
type LLA struct {
	Lat, Long, Alt float64
}

// WGS84Radius returns the radius of the Earth (m) at the given geodetic
// latitude (rad) assuming the WGS84 ellipsoid. Accurate to around 0.1 - 1 mm.
func WGS84Radius(geodeticLatitude float64) float64 {
	s, c := math.Sincos(geodeticLatitude)
	s2 := s * s
	c2 := c * c
	a2 := WGS84SemiMajorAxis * WGS84SemiMajorAxis
	b2 := WGS84SemiMinorAxis * WGS84SemiMinorAxis
	return math.Sqrt((a2*a2*c2 + b2*b2*s2) / (a2*c2 + b2*s2))
}

// ECEF2LLA calculates latitude (deg), longitude (deg) and altitude (m) on the
// WGS84 Earth model from a given ECEF coordinate (m), iterating towards the
// correct latitude with Bowring's method. The result is accurate to about
// 1.1 mm. Returns the zero LLA if the iteration does not converge.
func ECEF2LLA(ecef []float64) LLA {
	const tolerance = 1e-8 // Target about 1mm precision.
	const maxIter = 32

	longitude := math.Atan2(ecef[1], ecef[0])
	// Equatorial plane projected length (m).
	s := math.Sqrt(ecef[0]*ecef[0] + ecef[1]*ecef[1])

	bowring := func(β float64) float64 {
		coeff := WGS84EccSq * (1 - WGS84Flattening) / (1 - WGS84EccSq) * WGS84SemiMajorAxis
		s3 := math.Sin(β)
		s3 *= s3 * s3
		c3 := math.Cos(β)
		c3 *= c3 * c3
		return math.Atan2(ecef[2]+coeff*s3, s-WGS84EccSq*WGS84SemiMajorAxis*c3)
	}

	β := math.Atan2(ecef[2], s)
	latitude := bowring(β)
	δ := 2 * tolerance
	for it := 0; δ > tolerance; it++ {
		if it == maxIter {
			return LLA{}
		}
		β = math.Atan2((1-WGS84Flattening)*math.Sin(latitude), math.Cos(latitude))
		newLat := bowring(β)
		δ = math.Abs(newLat - latitude)
		latitude = newLat
	}

	sinLat := math.Sin(latitude)
	verticalPrime := WGS84SemiMajorAxis / math.Sqrt(1-WGS84EccSq*sinLat*sinLat)
	altitude := s*math.Cos(latitude) + (ecef[2]+WGS84EccSq*verticalPrime*sinLat)*sinLat - verticalPrime

	// Latitude is signed, longitude follows the [0,360) convention.
	return LLA{Lat: latitude / deg2rad, Long: Rad2deg(longitude), Alt: altitude}
}

// LLA2ECEF calculates the Earth centred, Earth fixed coordinates (m) of the
// given geodetic latitude (deg), longitude (deg) and altitude (m) on the
// WGS84 ellipsoid.
func LLA2ECEF(lla LLA) []float64 {
	sLat, cLat := math.Sincos(Deg2rad(lla.Lat))
	sLong, cLong := math.Sincos(Deg2rad(lla.Long))
	azimuthal := WGS84SemiMajorAxis / math.Sqrt(1-WGS84EccSq*sLat*sLat)
	inclined := azimuthal * (1 - WGS84EccSq)
	return []float64{
		(azimuthal + lla.Alt) * cLat * cLong,
		(azimuthal + lla.Alt) * cLat * sLong,
		(inclined + lla.Alt) * sLat,
	}
}

// GEO2ECEF converts the provided parameters (in m and radians) to the ECEF
// vector on a spherical Earth. Note that the first parameter is the altitude,
// not the radius from the center of the body!
func GEO2ECEF(altitude, latitude, longitude float64) []float64 {
	sLong, cLong := math.Sincos(longitude)
	sLat, cLat := math.Sincos(latitude)
	r := altitude + Earth.Radius
	return []float64{r * cLat * cLong, r * cLat * sLong, r * sLat}
}

// ECI2ECEF converts the provided ECI vector to ECEF for the θgst given in radians.
func ECI2ECEF(R []float64, θgst float64) []float64 {
	return MxV33(R3(θgst), R)
}

// ECEF2ECI converts the provided ECEF vector to ECI for the θgst given in radians.
func ECEF2ECI(R []float64, θgst float64) []float64 {
	return ECI2ECEF(R, -θgst)
}
