package beam

import (
	"math"
)

// evaluateSafety fills in stress, allowable stress, actual factor of
// safety and the safety status from the peak moment
func evaluateSafety(cfg Config, result *Result) {
	sy := cfg.Material.YieldPa()
	I, c := cfg.Section.I, cfg.Section.C

	// σ = M·c/I (Pa)
	stress := math.Abs(result.MaxMoment) * 1000 * c / I

	divisor := stress
	if divisor == 0 {
		divisor = 1
	}
	fos := sy / divisor

	result.MaxStress = stress / 1e6
	result.AllowableStress = sy / cfg.FactorOfSafety / 1e6
	result.ActualFOS = fos
	result.Status = classify(fos, cfg.FactorOfSafety)
}

func classify(actual, required float64) SafetyStatus {
	switch {
	case actual < required:
		return Failure
	case actual < required*WarningMargin:
		return Warning
	default:
		return Safe
	}
}

// estimateDeflection returns a worst-case midspan or tip deflection (mm)
// from the total load alone. Fixed-fixed beams use the simply-supported
// bound.
func estimateDeflection(cfg Config, totalForce float64) float64 {
	L := cfg.Length
	EI := cfg.Material.ModulusPa() * cfg.Section.I

	var defl float64
	switch cfg.Support {
	case Cantilever:
		defl = totalForce * math.Pow(L, 3) / (3 * EI)
	default:
		defl = 5 * totalForce * math.Pow(L, 3) / (384 * EI)
	}

	return defl * 1000
}
