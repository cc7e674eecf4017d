// Package project reads beam definitions from YAML (or JSON) files and
// turns them into analysis inputs.
package project

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/load"
	"github.com/alexiusacademia/gobeam/internal/material"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/alexiusacademia/gobeam/internal/units"
)

// DefaultFactorOfSafety is used when a file does not set one
const DefaultFactorOfSafety = 1.5

// Governing selects the NSCP combination with the largest peak moment
const Governing = "governing"

// File is a beam definition as written on disk.
// Values are in the unit system named by Units (SI when empty).
type File struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Units       string `yaml:"units,omitempty" json:"units,omitempty"`

	Length         float64 `yaml:"length" json:"length"`
	Support        string  `yaml:"support" json:"support"`
	Material       string  `yaml:"material,omitempty" json:"material,omitempty"`
	FactorOfSafety float64 `yaml:"factor_of_safety,omitempty" json:"factor_of_safety,omitempty"`
	Resolution     int     `yaml:"resolution,omitempty" json:"resolution,omitempty"`

	// Combination is an NSCP load combination ID or "governing".
	// Empty analyzes the loads as given.
	Combination string `yaml:"combination,omitempty" json:"combination,omitempty"`

	Section SectionSpec `yaml:"section" json:"section"`
	Loads   []LoadSpec  `yaml:"loads" json:"loads"`
}

// SectionSpec names the cross-section shape and its dimensions
type SectionSpec struct {
	Type               string `yaml:"type" json:"type"`
	section.Dimensions `yaml:",inline"`
}

// LoadSpec is a single load entry. Which fields apply depends on Type.
type LoadSpec struct {
	Type string `yaml:"type" json:"type"`
	ID   string `yaml:"id,omitempty" json:"id,omitempty"`
	Case string `yaml:"case,omitempty" json:"case,omitempty"` // dead when empty

	// point
	Position  float64 `yaml:"position,omitempty" json:"position,omitempty"`
	Magnitude float64 `yaml:"magnitude,omitempty" json:"magnitude,omitempty"` // also udl

	// udl, triangular
	Start          float64 `yaml:"start,omitempty" json:"start,omitempty"`
	End            float64 `yaml:"end,omitempty" json:"end,omitempty"`
	StartMagnitude float64 `yaml:"start_magnitude,omitempty" json:"start_magnitude,omitempty"`
	EndMagnitude   float64 `yaml:"end_magnitude,omitempty" json:"end_magnitude,omitempty"`
}

// Model is a validated analysis input built from a File
type Model struct {
	Name       string
	System     units.System
	Config     beam.Config
	Dimensions section.Dimensions // SI
	Loads      []load.Load        // SI, unfactored
	Cases      []nscp.CaseLoad    // Loads tagged with their load case
	Resolution int

	Combination string
}

// ValidationError represents an invalid beam definition
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// LoadFromFile loads a beam definition from a YAML or JSON file
func LoadFromFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a beam definition
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the fields that do not depend on unit conversion
func (f *File) Validate() error {
	if _, err := units.ParseSystem(f.Units); err != nil {
		return &ValidationError{"units", err.Error()}
	}
	if f.Length <= 0 {
		return &ValidationError{"length", "must be positive"}
	}
	if _, err := beam.ParseSupport(f.Support); err != nil {
		return &ValidationError{"support", err.Error()}
	}
	if _, err := material.Lookup(f.Material); err != nil {
		return &ValidationError{"material", err.Error()}
	}
	if f.FactorOfSafety < 0 {
		return &ValidationError{"factor_of_safety", "must be positive"}
	}
	if f.Resolution < 0 {
		return &ValidationError{"resolution", "must not be negative"}
	}
	if f.Section.Type != "" {
		if _, err := section.ParseShape(f.Section.Type); err != nil {
			return &ValidationError{"section.type", err.Error()}
		}
	}
	if f.Combination != "" && f.Combination != Governing {
		if _, err := nscp.FindCombination(f.Combination); err != nil {
			return &ValidationError{"combination", err.Error()}
		}
	}

	seen := make(map[string]bool)
	for i, ls := range f.Loads {
		switch load.Kind(ls.Type) {
		case load.KindPoint, load.KindUDL, load.KindTriangular:
		default:
			return &ValidationError{fmt.Sprintf("loads[%d].type", i), fmt.Sprintf("unknown load type %q", ls.Type)}
		}
		if _, err := nscp.ParseLoadCase(ls.Case); err != nil {
			return &ValidationError{fmt.Sprintf("loads[%d].case", i), err.Error()}
		}
		if ls.ID == "" {
			continue
		}
		if seen[ls.ID] {
			return &ValidationError{fmt.Sprintf("loads[%d].id", i), fmt.Sprintf("duplicate id %q", ls.ID)}
		}
		seen[ls.ID] = true
	}

	return nil
}

// Build converts the definition to SI, applies defaults and checks every
// load against the span. Loads without an id get a generated one.
func (f *File) Build(log *zap.Logger) (*Model, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	sys, _ := units.ParseSystem(f.Units)
	support, _ := beam.ParseSupport(f.Support)
	mat, _ := material.Lookup(f.Material)

	shape := section.Rectangle
	if f.Section.Type != "" {
		shape, _ = section.ParseShape(f.Section.Type)
	}

	fos := f.FactorOfSafety
	if fos == 0 {
		fos = DefaultFactorOfSafety
	}

	resolution := f.Resolution
	if resolution == 0 {
		resolution = beam.DefaultResolution
	}

	length := units.FromDisplay(f.Length, units.Length, sys)
	dims := sectionToSI(f.Section.Dimensions, sys)
	props := section.Compute(shape, dims)

	log.Debug("Section properties",
		zap.String("type", string(shape)),
		zap.Float64("area", props.Area),
		zap.Float64("inertia", props.I),
		zap.Float64("c", props.C))

	loads := make([]load.Load, 0, len(f.Loads))
	cases := make([]nscp.CaseLoad, 0, len(f.Loads))
	for i, ls := range f.Loads {
		l := ls.toLoad(sys)
		if err := l.Validate(length); err != nil {
			return nil, fmt.Errorf("loads[%d]: %w", i, err)
		}
		c, _ := nscp.ParseLoadCase(ls.Case)
		log.Debug("Load added",
			zap.String("id", l.Identifier()),
			zap.String("type", string(l.Kind())),
			zap.String("case", string(c)))
		loads = append(loads, l)
		cases = append(cases, nscp.CaseLoad{Case: c, Load: l})
	}

	return &Model{
		Name:       f.Name,
		System:     sys,
		Dimensions: dims,
		Config: beam.Config{
			Length:         length,
			Support:        support,
			Material:       mat,
			SectionType:    shape,
			Section:        props,
			FactorOfSafety: fos,
		},
		Loads:       loads,
		Cases:       cases,
		Resolution:  resolution,
		Combination: f.Combination,
	}, nil
}

// Analyze runs the analysis, applying the model's load combination.
// The returned combination is nil when the loads were used as given.
func (m *Model) Analyze(opts ...beam.Option) (*beam.Result, *nscp.LoadCombination, error) {
	opts = append([]beam.Option{beam.WithResolution(m.Resolution)}, opts...)

	switch m.Combination {
	case "":
		res, err := beam.Analyze(m.Config, m.Loads, opts...)
		return res, nil, err

	case Governing:
		combo, res, err := nscp.Governing(m.Config, m.Cases, nscp.LoadCombinations, opts...)
		if err != nil {
			return nil, nil, err
		}
		return res, &combo, nil

	default:
		combo, err := nscp.FindCombination(m.Combination)
		if err != nil {
			return nil, nil, err
		}
		res, err := beam.Analyze(m.Config, combo.FactoredLoads(m.Cases), opts...)
		if err != nil {
			return nil, nil, err
		}
		return res, &combo, nil
	}
}

func (ls LoadSpec) toLoad(sys units.System) load.Load {
	id := ls.ID
	if id == "" {
		id = uuid.NewString()
	}

	pos := func(v float64) float64 { return units.FromDisplay(v, units.Length, sys) }
	dist := func(v float64) float64 { return units.FromDisplay(v, units.Distributed, sys) }

	switch load.Kind(ls.Type) {
	case load.KindUDL:
		return load.UDL{
			ID:        id,
			Start:     pos(ls.Start),
			End:       pos(ls.End),
			Magnitude: dist(ls.Magnitude),
		}
	case load.KindTriangular:
		return load.Triangular{
			ID:             id,
			Start:          pos(ls.Start),
			End:            pos(ls.End),
			StartMagnitude: dist(ls.StartMagnitude),
			EndMagnitude:   dist(ls.EndMagnitude),
		}
	default:
		return load.Point{
			ID:        id,
			Position:  pos(ls.Position),
			Magnitude: units.FromDisplay(ls.Magnitude, units.Force, sys),
		}
	}
}

func sectionToSI(d section.Dimensions, sys units.System) section.Dimensions {
	conv := func(v float64) float64 { return units.FromDisplay(v, units.Section, sys) }
	return section.Dimensions{
		Width:           conv(d.Width),
		Height:          conv(d.Height),
		Diameter:        conv(d.Diameter),
		OuterDiameter:   conv(d.OuterDiameter),
		InnerDiameter:   conv(d.InnerDiameter),
		FlangeWidth:     conv(d.FlangeWidth),
		FlangeThickness: conv(d.FlangeThickness),
		WebHeight:       conv(d.WebHeight),
		WebThickness:    conv(d.WebThickness),
	}
}
