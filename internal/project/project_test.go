package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/load"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/alexiusacademia/gobeam/internal/units"
)

const joistYAML = `
name: Floor joist
length: 6
support: simply-supported
material: steel
factor_of_safety: 2
section:
  type: i-beam
  flange_width: 0.15
  flange_thickness: 0.012
  web_height: 0.3
  web_thickness: 0.008
loads:
  - {type: point, id: p1, position: 3, magnitude: 10}
  - {type: udl, id: u1, start: 0, end: 6, magnitude: 2}
  - {type: triangular, start: 1, end: 4, start_magnitude: 0, end_magnitude: 5}
`

func TestParseAndBuild(t *testing.T) {
	f, err := Parse([]byte(joistYAML))
	require.NoError(t, err)
	assert.Equal(t, "Floor joist", f.Name)
	assert.Equal(t, 0.15, f.Section.FlangeWidth)

	m, err := f.Build(zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, units.SI, m.System)
	assert.Equal(t, 6.0, m.Config.Length)
	assert.Equal(t, beam.SimplySupported, m.Config.Support)
	assert.Equal(t, "steel", m.Config.Material.Key)
	assert.Equal(t, 2.0, m.Config.FactorOfSafety)
	assert.Equal(t, section.IBeam, m.Config.SectionType)
	assert.Equal(t, section.Compute(section.IBeam, f.Section.Dimensions), m.Config.Section)
	assert.Equal(t, beam.DefaultResolution, m.Resolution)

	require.Len(t, m.Loads, 3)
	assert.Equal(t, load.Point{ID: "p1", Position: 3, Magnitude: 10}, m.Loads[0])
	assert.Equal(t, load.UDL{ID: "u1", Start: 0, End: 6, Magnitude: 2}, m.Loads[1])

	tri, ok := m.Loads[2].(load.Triangular)
	require.True(t, ok)
	_, err = uuid.Parse(tri.ID)
	assert.NoError(t, err, "missing ids are generated")
	assert.Equal(t, 5.0, tri.EndMagnitude)
}

func TestParseJSON(t *testing.T) {
	data := `{"length": 3, "support": "cantilever", ` +
		`"section": {"type": "circle", "diameter": 0.05}, ` +
		`"loads": [{"type": "point", "position": 3, "magnitude": 1}]}`

	f, err := Parse([]byte(data))
	require.NoError(t, err)

	m, err := f.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, beam.Cantilever, m.Config.Support)
	assert.Equal(t, DefaultFactorOfSafety, m.Config.FactorOfSafety)
	assert.Equal(t, "steel", m.Config.Material.Key)
	assert.Equal(t, 0.025, m.Config.Section.C)
}

func TestBuildImperial(t *testing.T) {
	data := `
units: imperial
length: 20
support: simply-supported
section: {type: rectangle, width: 4, height: 8}
loads:
  - {type: point, id: p, position: 10, magnitude: 5}
  - {type: udl, id: u, start: 0, end: 20, magnitude: 0.5}
`
	f, err := Parse([]byte(data))
	require.NoError(t, err)
	m, err := f.Build(nil)
	require.NoError(t, err)

	assert.Equal(t, units.Imperial, m.System)
	assert.InDelta(t, 20/3.28084, m.Config.Length, 1e-9)
	assert.InDelta(t, 8/39.3701, m.Dimensions.Height, 1e-9)

	p := m.Loads[0].(load.Point)
	assert.InDelta(t, 10/3.28084, p.Position, 1e-9)
	assert.InDelta(t, 5/0.224809, p.Magnitude, 1e-9)

	u := m.Loads[1].(load.UDL)
	assert.InDelta(t, m.Config.Length, u.End, 1e-12)
	assert.InDelta(t, 0.5/0.0685218, u.Magnitude, 1e-9)
}

func TestValidate(t *testing.T) {
	base := func() File {
		return File{
			Length:  5,
			Support: "fixed-fixed",
			Loads:   []LoadSpec{{Type: "point", ID: "a", Position: 1, Magnitude: 1}},
		}
	}

	tests := []struct {
		name  string
		edit  func(*File)
		field string
	}{
		{"zero length", func(f *File) { f.Length = 0 }, "length"},
		{"bad support", func(f *File) { f.Support = "propped" }, "support"},
		{"bad material", func(f *File) { f.Material = "cheese" }, "material"},
		{"negative fos", func(f *File) { f.FactorOfSafety = -1 }, "factor_of_safety"},
		{"negative resolution", func(f *File) { f.Resolution = -5 }, "resolution"},
		{"bad units", func(f *File) { f.Units = "cubits" }, "units"},
		{"bad section", func(f *File) { f.Section.Type = "hexagon" }, "section.type"},
		{"bad load type", func(f *File) { f.Loads[0].Type = "moment" }, "loads[0].type"},
		{"bad load case", func(f *File) { f.Loads[0].Case = "snow" }, "loads[0].case"},
		{"bad combination", func(f *File) { f.Combination = "12" }, "combination"},
		{"duplicate id", func(f *File) {
			f.Loads = append(f.Loads, LoadSpec{Type: "point", ID: "a"})
		}, "loads[1].id"},
	}

	f := base()
	require.NoError(t, f.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base()
			tt.edit(&f)
			err := f.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestBuildRejectsLoadOutsideSpan(t *testing.T) {
	f := File{
		Length:  4,
		Support: "simply-supported",
		Loads:   []LoadSpec{{Type: "udl", ID: "long", Start: 0, End: 5, Magnitude: 1}},
	}
	_, err := f.Build(nil)

	var lerr *load.ValidationError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "long", lerr.ID)
}

func TestBuildAllowsNoLoads(t *testing.T) {
	f := File{Length: 4, Support: "cantilever"}
	m, err := f.Build(nil)
	require.NoError(t, err)
	assert.Empty(t, m.Loads)

	_, err = beam.Analyze(m.Config, m.Loads)
	assert.ErrorIs(t, err, beam.ErrNoLoads)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "joist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(joistYAML), 0o644))

	f, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Loads, 3)

	_, err = LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("length: -1\nsupport: cantilever\n"), 0o644))
	_, err = LoadFromFile(bad)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

const combinedYAML = `
length: 4
support: simply-supported
section: {type: rectangle, width: 0.2, height: 0.4}
loads:
  - {type: udl, id: d, start: 0, end: 4, magnitude: 10}
  - {type: udl, id: l, case: live, start: 0, end: 4, magnitude: 10}
`

func TestModelAnalyzeUnfactored(t *testing.T) {
	f, err := Parse([]byte(combinedYAML))
	require.NoError(t, err)
	m, err := f.Build(nil)
	require.NoError(t, err)

	require.Len(t, m.Cases, 2)
	assert.Equal(t, nscp.Dead, m.Cases[0].Case)
	assert.Equal(t, nscp.Live, m.Cases[1].Case)

	res, combo, err := m.Analyze()
	require.NoError(t, err)
	assert.Nil(t, combo)
	assert.InDelta(t, 80, res.TotalLoad, 1e-9)
	assert.Len(t, res.Shear, beam.DefaultResolution+1)
}

func TestModelAnalyzeCombination(t *testing.T) {
	f, err := Parse([]byte(combinedYAML))
	require.NoError(t, err)
	f.Combination = "1"
	m, err := f.Build(nil)
	require.NoError(t, err)

	res, combo, err := m.Analyze()
	require.NoError(t, err)
	require.NotNil(t, combo)
	assert.Equal(t, "1.4D", combo.Description)
	assert.InDelta(t, 1.4*40, res.TotalLoad, 1e-9)
}

func TestModelAnalyzeGoverning(t *testing.T) {
	f, err := Parse([]byte(combinedYAML))
	require.NoError(t, err)
	f.Combination = Governing
	m, err := f.Build(nil)
	require.NoError(t, err)

	res, combo, err := m.Analyze(beam.WithResolution(40))
	require.NoError(t, err)
	require.NotNil(t, combo)
	assert.Equal(t, "2", combo.ID)
	assert.InDelta(t, 28*16.0/8, res.MaxMoment, 1e-9)
	assert.Len(t, res.Moment, 41, "explicit options win over the model resolution")
}
