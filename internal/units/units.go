// Package units converts values between the internal SI display units
// and a presentation unit system. Conversion is a pure linear scale and
// never feeds back into the analysis.
package units

import (
	"fmt"
	"strings"
)

// System is a presentation unit system
type System string

const (
	SI       System = "SI"
	Imperial System = "Imperial"
)

// Quantity identifies what a value measures
type Quantity string

const (
	Length      Quantity = "length"      // m / ft
	Section     Quantity = "section"     // m / in
	Force       Quantity = "force"       // kN / kips
	Moment      Quantity = "moment"      // kN·m / k-ft
	Distributed Quantity = "distributed" // kN/m / k/ft
	Stress      Quantity = "stress"      // MPa / ksi
	Deflection  Quantity = "deflection"  // mm / in
	Area        Quantity = "area"        // m² / in²
	Inertia     Quantity = "inertia"     // m⁴ / in⁴
	Modulus     Quantity = "modulus"     // GPa / ksi
)

var symbols = map[System]map[Quantity]string{
	SI: {
		Length:      "m",
		Section:     "m",
		Force:       "kN",
		Moment:      "kN·m",
		Distributed: "kN/m",
		Stress:      "MPa",
		Deflection:  "mm",
		Area:        "m²",
		Inertia:     "m⁴",
		Modulus:     "GPa",
	},
	Imperial: {
		Length:      "ft",
		Section:     "in",
		Force:       "kips",
		Moment:      "k-ft",
		Distributed: "k/ft",
		Stress:      "ksi",
		Deflection:  "in",
		Area:        "in²",
		Inertia:     "in⁴",
		Modulus:     "ksi",
	},
}

// Imperial value per SI value
var factors = map[Quantity]float64{
	Length:      3.28084,
	Section:     39.3701,
	Force:       0.224809,
	Moment:      0.737562,
	Distributed: 0.0685218,
	Stress:      0.145038,
	Deflection:  0.0393701,
	Area:        1550.0031,
	Inertia:     2402509.61,
	Modulus:     145.038,
}

// ParseSystem maps a name to a unit system, case-insensitively.
// An empty name selects SI.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(name) {
	case "", "si", "metric":
		return SI, nil
	case "imperial", "us":
		return Imperial, nil
	}
	return "", fmt.Errorf("unknown unit system %q", name)
}

// ToDisplay converts an SI value into the given system
func ToDisplay(v float64, q Quantity, s System) float64 {
	if s != Imperial {
		return v
	}
	return v * factors[q]
}

// FromDisplay converts a value in the given system back to SI
func FromDisplay(v float64, q Quantity, s System) float64 {
	if s != Imperial {
		return v
	}
	return v / factors[q]
}

// Symbol returns the unit symbol for q in the given system
func Symbol(q Quantity, s System) string {
	if s != Imperial {
		s = SI
	}
	return symbols[s][q]
}

// Format renders v converted into s with its unit symbol
func Format(v float64, q Quantity, s System, prec int) string {
	return fmt.Sprintf("%.*f %s", prec, ToDisplay(v, q, s), Symbol(q, s))
}
