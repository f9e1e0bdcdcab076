package hamilton

import (
	"fmt"
	"strings"
)

// CelestialObject defines a celestial object. All values are SI: meters for
// lengths, m³/s² for the gravitational parameter.
type CelestialObject struct {
	Name   string
	Radius float64 // Equatorial radius (m)
	a      float64 // Semi major axis of the heliocentric orbit (m)
	μ      float64 // Gravitational parameter (m³/s²)
	SOI    float64 // Sphere of influence with respect to the Sun (m)
	J2     float64
	J3     float64
	J4     float64
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (c CelestialObject) GM() float64 {
	return c.μ
}

// J returns the perturbing J_n factor for the provided n.
func (c CelestialObject) J(n uint8) float64 {
	switch n {
	case 2:
		return c.J2
	case 3:
		return c.J3
	case 4:
		return c.J4
	default:
		return 0.0
	}
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c *CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.a == b.a && c.μ == b.μ && c.SOI == b.SOI && c.J2 == b.J2
}

// CelestialObjectFromString returns the object from its name. Bodies loaded
// through the configuration catalog take precedence over the built in set.
func CelestialObjectFromString(name string) (CelestialObject, error) {
	if body, found := catalogBody(name); found {
		return body, nil
	}
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "pluto":
		return Pluto, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined celestial object '%s'", name)
	}
}

/* Definitions */

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 695700e3, -1, 1.32712440017987e20, -1, 0, 0, 0}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", 6051.8e3, 108208601e3, 3.24858599e14, 0.616e9, 0.000027, 0, 0}

// Earth is home.
var Earth = CelestialObject{"Earth", 6378136.3, 149598023e3, 3.986004418e14, 924645e3, 1082.6269e-6, -2.5324e-6, -1.6204e-6}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3396.19e3, 227939282.5616e3, 4.28283100e13, 576000e3, 1964e-6, 36e-6, -18e-6}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 71492e3, 778298361e3, 1.266865361e17, 48.2e9, 0.01475, 0, -0.00058}

// Saturn floats and that's really cool.
var Saturn = CelestialObject{"Saturn", 60268e3, 1429394133e3, 3.7931208e16, 54.5e9, 0.01645, 0, -0.001}

// Uranus is no joke.
var Uranus = CelestialObject{"Uranus", 25559e3, 2875038615e3, 5.7939513e15, 51.9e9, 0.012, 0, 0}

// Pluto is not a planet and had that down ranking coming. It should have stayed in its lane.
var Pluto = CelestialObject{"Pluto", 1151e3, 5915799000e3, 9e11, 3.08e9, 0, 0, 0}
