// Package beam computes the static response of a single-span beam:
// support reactions, shear and moment diagrams, bending stress, factor of
// safety and a worst-case deflection estimate.
//
// Inputs are in display units (m, kN, kN/m, GPa, MPa). All internal
// accumulation happens in N, m and Pa, and results are reported in kN,
// kN·m, MPa and mm.
package beam

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/load"
	"github.com/alexiusacademia/gobeam/internal/material"
	"github.com/alexiusacademia/gobeam/internal/section"
)

// Support identifies the boundary conditions of the span
type Support string

const (
	SimplySupported Support = "simply-supported"
	Cantilever      Support = "cantilever"  // fixed at x = 0, free at x = L
	FixedFixed      Support = "fixed-fixed" // fixed at both ends
)

// Supports lists the supported boundary conditions
var Supports = []Support{SimplySupported, Cantilever, FixedFixed}

// ParseSupport maps a name to a support type
func ParseSupport(name string) (Support, error) {
	for _, s := range Supports {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown support type %q", name)
}

// DefaultResolution is the number of intervals the span is divided into
// when sampling the diagrams
const DefaultResolution = 150

// WarningMargin scales the required factor of safety to give the upper
// bound of the warning band
const WarningMargin = 1.2

// ErrNoLoads is returned when there is nothing to analyze
var ErrNoLoads = errors.New("add at least one load to run analysis")

// Config describes the beam being analyzed
type Config struct {
	Length         float64 // Span L (m)
	Support        Support
	Material       material.Material
	SectionType    section.Shape
	Section        section.Properties
	FactorOfSafety float64 // Required factor of safety
}

// Reactions holds the support reactions
type Reactions struct {
	R1 float64 `json:"r1"` // Left support force (kN)
	R2 float64 `json:"r2"` // Right support force (kN)
	M1 float64 `json:"m1"` // Left fixing moment, hogging positive (kN·m)
	M2 float64 `json:"m2"` // Right fixing moment for fixed-fixed beams (kN·m)
}

// Sample is a diagram value at a position along the span
type Sample struct {
	X     float64 `json:"x"`     // m
	Value float64 `json:"value"` // kN or kN·m
}

// SafetyStatus classifies the actual factor of safety
type SafetyStatus string

const (
	Safe    SafetyStatus = "safe"
	Warning SafetyStatus = "warning"
	Failure SafetyStatus = "failure"
)

// Result holds the results of a beam analysis
type Result struct {
	Reactions Reactions `json:"reactions"`

	// Diagrams, Resolution+1 samples each
	Shear  []Sample `json:"shear"`  // kN
	Moment []Sample `json:"moment"` // kN·m

	// Peak internal forces. The signed value with the largest magnitude
	// is kept, along with where it occurs.
	MaxShear    float64 `json:"max_shear"`     // kN
	MaxShearAt  float64 `json:"max_shear_at"`  // m
	MaxMoment   float64 `json:"max_moment"`    // kN·m
	MaxMomentAt float64 `json:"max_moment_at"` // m

	TotalLoad float64 `json:"total_load"` // Sum of applied vertical loads (kN)

	// Stress and safety
	MaxStress       float64      `json:"max_stress"`       // MPa
	AllowableStress float64      `json:"allowable_stress"` // MPa
	ActualFOS       float64      `json:"actual_fos"`
	Status          SafetyStatus `json:"status"`

	// MaxDeflection is a worst-case bound from the total applied load,
	// not the deflection of the actual load pattern (mm).
	MaxDeflection float64 `json:"max_deflection"`
}

type options struct {
	resolution int
}

// Option configures an analysis
type Option func(*options)

// WithResolution sets the number of diagram intervals.
// Values below 1 fall back to DefaultResolution.
func WithResolution(n int) Option {
	return func(o *options) {
		o.resolution = n
	}
}

// Analyze runs the static analysis of the beam under the given loads.
// It holds no state and may be called concurrently.
func Analyze(cfg Config, loads []load.Load, opts ...Option) (*Result, error) {
	o := options{resolution: DefaultResolution}
	for _, opt := range opts {
		opt(&o)
	}
	if o.resolution < 1 {
		o.resolution = DefaultResolution
	}

	if len(loads) == 0 {
		return nil, ErrNoLoads
	}

	sum, err := sumLoads(loads)
	if err != nil {
		return nil, err
	}

	r, err := solveReactions(cfg, loads, sum)
	if err != nil {
		return nil, err
	}

	d, err := sampleDiagrams(cfg, loads, r, o.resolution)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Reactions: Reactions{
			R1: r.r1 / 1000,
			R2: r.r2 / 1000,
			M1: r.m1 / 1000,
			M2: r.m2 / 1000,
		},
		Shear:       d.shear,
		Moment:      d.moment,
		MaxShear:    d.maxShear,
		MaxShearAt:  d.maxShearAt,
		MaxMoment:   d.maxMoment,
		MaxMomentAt: d.maxMomentAt,
		TotalLoad:   sum.force / 1000,
	}

	evaluateSafety(cfg, result)
	result.MaxDeflection = estimateDeflection(cfg, sum.force)

	return result, nil
}
