package nscp

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/load"
)

// LoadCase identifies the source of a load
type LoadCase string

const (
	Dead       LoadCase = "dead"       // D
	Live       LoadCase = "live"       // L
	Roof       LoadCase = "roof"       // Lr
	Wind       LoadCase = "wind"       // W
	Earthquake LoadCase = "earthquake" // E
	Rain       LoadCase = "rain"       // R
)

// ParseLoadCase maps a name to a load case. An empty name is dead load.
func ParseLoadCase(name string) (LoadCase, error) {
	switch c := LoadCase(name); c {
	case "":
		return Dead, nil
	case Dead, Live, Roof, Wind, Earthquake, Rain:
		return c, nil
	}
	return "", fmt.Errorf("unknown load case %q", name)
}

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// Factor returns the load factor applied to case c
func (lc LoadCombination) Factor(c LoadCase) float64 {
	switch c {
	case Dead:
		return lc.Dead
	case Live:
		return lc.Live
	case Roof:
		return lc.Roof
	case Wind:
		return lc.Wind
	case Earthquake:
		return lc.Earthquake
	case Rain:
		return lc.Rain
	}
	return 0
}

// FindCombination returns the basic combination with the given ID
func FindCombination(id string) (LoadCombination, error) {
	for _, lc := range LoadCombinations {
		if lc.ID == id {
			return lc, nil
		}
	}
	return LoadCombination{}, fmt.Errorf("unknown load combination %q", id)
}

// CaseLoad is an unfactored load tagged with its load case
type CaseLoad struct {
	Case LoadCase
	Load load.Load
}

// FactoredLoads scales every load by its case factor.
// Loads whose factor is zero do not take part in the combination.
func (lc LoadCombination) FactoredLoads(loads []CaseLoad) []load.Load {
	var out []load.Load
	for _, cl := range loads {
		f := lc.Factor(cl.Case)
		if f == 0 {
			continue
		}
		out = append(out, load.Scale(cl.Load, f))
	}
	return out
}

// Governing analyzes the beam under every combination and returns the
// one producing the largest peak moment magnitude. Combinations that
// leave no loads on the beam are skipped.
func Governing(cfg beam.Config, loads []CaseLoad, combinations []LoadCombination, opts ...beam.Option) (LoadCombination, *beam.Result, error) {
	var (
		governing LoadCombination
		best      *beam.Result
	)

	for _, combo := range combinations {
		factored := combo.FactoredLoads(loads)
		if len(factored) == 0 {
			continue
		}

		res, err := beam.Analyze(cfg, factored, opts...)
		if err != nil {
			return governing, nil, fmt.Errorf("combination %s: %w", combo.ID, err)
		}
		if best == nil || math.Abs(res.MaxMoment) > math.Abs(best.MaxMoment) {
			governing, best = combo, res
		}
	}

	if best == nil {
		return governing, nil, beam.ErrNoLoads
	}
	return governing, best, nil
}
