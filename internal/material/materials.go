package material

import (
	"fmt"
	"sort"
)

// Material holds the elastic and strength properties used by the analysis.
type Material struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	E             float64 `json:"e"`              // Elastic modulus (GPa)
	YieldStrength float64 `json:"yield_strength"` // Yield strength (MPa)
}

// Default is the material used when none is specified
const Default = "steel"

// Catalog of supported materials keyed by name
var Catalog = map[string]Material{
	"steel": {
		Key:           "steel",
		Name:          "Structural Steel (A36)",
		E:             200,
		YieldStrength: 250,
	},
	"steel-a992": {
		Key:           "steel-a992",
		Name:          "High-Strength Steel (A992)",
		E:             200,
		YieldStrength: 345,
	},
	"stainless": {
		Key:           "stainless",
		Name:          "Stainless Steel (304)",
		E:             193,
		YieldStrength: 215,
	},
	"aluminum": {
		Key:           "aluminum",
		Name:          "Aluminum (6061-T6)",
		E:             69,
		YieldStrength: 276,
	},
	"timber": {
		Key:           "timber",
		Name:          "Timber (Douglas Fir)",
		E:             12.4,
		YieldStrength: 40,
	},
	"concrete": {
		Key:           "concrete",
		Name:          "Concrete (C30)",
		E:             30,
		YieldStrength: 30,
	},
}

// Lookup returns the catalog entry for name
func Lookup(name string) (Material, error) {
	if name == "" {
		name = Default
	}
	m, ok := Catalog[name]
	if !ok {
		return Material{}, fmt.Errorf("unknown material %q (available: %v)", name, Keys())
	}
	return m, nil
}

// Keys returns the catalog keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(Catalog))
	for k := range Catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ModulusPa returns E in Pa
func (m Material) ModulusPa() float64 {
	return m.E * 1e9
}

// YieldPa returns the yield strength in Pa
func (m Material) YieldPa() float64 {
	return m.YieldStrength * 1e6
}
