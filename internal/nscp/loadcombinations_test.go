package nscp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/load"
	"github.com/alexiusacademia/gobeam/internal/material"
	"github.com/alexiusacademia/gobeam/internal/section"
)

func TestParseLoadCase(t *testing.T) {
	c, err := ParseLoadCase("")
	require.NoError(t, err)
	assert.Equal(t, Dead, c)

	c, err = ParseLoadCase("wind")
	require.NoError(t, err)
	assert.Equal(t, Wind, c)

	_, err = ParseLoadCase("snow")
	assert.Error(t, err)
}

func TestFactor(t *testing.T) {
	lc, err := FindCombination("2")
	require.NoError(t, err)

	assert.Equal(t, 1.2, lc.Factor(Dead))
	assert.Equal(t, 1.6, lc.Factor(Live))
	assert.Equal(t, 0.5, lc.Factor(Rain))
	assert.Zero(t, lc.Factor(Wind))
	assert.Zero(t, lc.Factor(LoadCase("snow")))

	_, err = FindCombination("99")
	assert.Error(t, err)
}

func TestFactoredLoads(t *testing.T) {
	loads := []CaseLoad{
		{Dead, load.UDL{ID: "d", Start: 0, End: 4, Magnitude: 10}},
		{Live, load.Point{ID: "l", Position: 2, Magnitude: 5}},
		{Wind, load.Point{ID: "w", Position: 1, Magnitude: 3}},
	}

	lc, err := FindCombination("2")
	require.NoError(t, err)

	got := lc.FactoredLoads(loads)
	require.Len(t, got, 2, "wind has no factor in combination 2")
	assert.InDelta(t, 12, got[0].(load.UDL).Magnitude, 1e-12)
	assert.InDelta(t, 8, got[1].(load.Point).Magnitude, 1e-12)

	// Inputs are not modified
	assert.Equal(t, 10.0, loads[0].Load.(load.UDL).Magnitude)
}

func testConfig() beam.Config {
	return beam.Config{
		Length:         4,
		Support:        beam.SimplySupported,
		Material:       material.Catalog["steel"],
		SectionType:    section.Rectangle,
		Section:        section.Compute(section.Rectangle, section.Dimensions{Width: 0.2, Height: 0.4}),
		FactorOfSafety: 1.5,
	}
}

func TestGoverning(t *testing.T) {
	loads := []CaseLoad{
		{Dead, load.UDL{ID: "d", Start: 0, End: 4, Magnitude: 10}},
		{Live, load.UDL{ID: "l", Start: 0, End: 4, Magnitude: 10}},
	}

	combo, res, err := Governing(testConfig(), loads, LoadCombinations)
	require.NoError(t, err)

	// 1.2D + 1.6L = 28 kN/m beats 1.4D = 14 kN/m
	assert.Equal(t, "2", combo.ID)
	assert.InDelta(t, 28*16.0/8, res.MaxMoment, 1e-9)
}

func TestGoverningDeadOnly(t *testing.T) {
	loads := []CaseLoad{
		{Dead, load.Point{ID: "d", Position: 2, Magnitude: 10}},
	}

	combo, res, err := Governing(testConfig(), loads, LoadCombinations)
	require.NoError(t, err)
	assert.Equal(t, "1", combo.ID)
	assert.InDelta(t, 14, res.TotalLoad, 1e-9)
}

func TestGoverningNoLoads(t *testing.T) {
	loads := []CaseLoad{{Roof, load.Point{ID: "r", Position: 2, Magnitude: 10}}}

	// Only combination 1 is offered and it has no roof factor
	_, _, err := Governing(testConfig(), loads, LoadCombinations[:1])
	assert.ErrorIs(t, err, beam.ErrNoLoads)
}
