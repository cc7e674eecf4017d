package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/units"
)

// Series is a diagram ready for plotting, already in display units
type Series struct {
	Title      string
	ValueLabel string
	XLabel     string
	Points     plotter.XYs
	Line       color.Color
	Fill       color.Color
}

var (
	shearLine  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	shearFill  = color.RGBA{R: 100, G: 149, B: 237, A: 120}
	momentLine = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	momentFill = color.RGBA{R: 237, G: 100, B: 100, A: 120}
)

// NewShearSeries converts the shear diagram of res into sys
func NewShearSeries(res *beam.Result, sys units.System) Series {
	return newSeries("Shear Force Diagram", "Shear", res.Shear, units.Force, sys, shearLine, shearFill)
}

// NewMomentSeries converts the moment diagram of res into sys
func NewMomentSeries(res *beam.Result, sys units.System) Series {
	return newSeries("Bending Moment Diagram", "Moment", res.Moment, units.Moment, sys, momentLine, momentFill)
}

func newSeries(title, name string, samples []beam.Sample, q units.Quantity, sys units.System, line, fill color.Color) Series {
	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i] = plotter.XY{
			X: units.ToDisplay(s.X, units.Length, sys),
			Y: units.ToDisplay(s.Value, q, sys),
		}
	}
	return Series{
		Title:      title,
		ValueLabel: fmt.Sprintf("%s (%s)", name, units.Symbol(q, sys)),
		XLabel:     fmt.Sprintf("x (%s)", units.Symbol(units.Length, sys)),
		Points:     pts,
		Line:       line,
		Fill:       fill,
	}
}

// NewPlot builds a filled diagram plot for s
func NewPlot(s Series) (*plot.Plot, error) {
	if len(s.Points) == 0 {
		return nil, fmt.Errorf("%s: no points to plot", s.Title)
	}

	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.ValueLabel
	p.Add(plotter.NewGrid())

	first, last := s.Points[0], s.Points[len(s.Points)-1]

	// Close the diagram on the axis so it can be filled
	area := make(plotter.XYs, 0, len(s.Points)+2)
	area = append(area, plotter.XY{X: first.X, Y: 0})
	area = append(area, s.Points...)
	area = append(area, plotter.XY{X: last.X, Y: 0})

	poly, err := plotter.NewPolygon(area)
	if err != nil {
		return nil, err
	}
	poly.Color = s.Fill
	poly.LineStyle.Width = 0
	p.Add(poly)

	line, err := plotter.NewLine(s.Points)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = s.Line
	p.Add(line)

	// Beam axis
	axis, err := plotter.NewLine(plotter.XYs{{X: first.X, Y: 0}, {X: last.X, Y: 0}})
	if err != nil {
		return nil, err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Black
	p.Add(axis)

	// Mark and label the peak
	peak := first
	for _, pt := range s.Points {
		if math.Abs(pt.Y) > math.Abs(peak.Y) {
			peak = pt
		}
	}
	marker, err := plotter.NewScatter(plotter.XYs{peak})
	if err != nil {
		return nil, err
	}
	marker.GlyphStyle.Color = s.Line
	marker.GlyphStyle.Radius = vg.Points(4)
	marker.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marker)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{peak},
		Labels: []string{fmt.Sprintf("%.2f", peak.Y)},
	})
	if err != nil {
		return nil, err
	}
	p.Add(lbl)

	return p, nil
}

// ExportSeries saves a single diagram to filename (png, svg or pdf)
func ExportSeries(s Series, filename string) error {
	p, err := NewPlot(s)
	if err != nil {
		return err
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}

// ExportDiagrams writes the shear and moment diagrams next to filename,
// as <name>-shear<ext> and <name>-moment<ext>. Unsupported or missing
// extensions fall back to png. It returns the written paths.
func ExportDiagrams(res *beam.Result, sys units.System, filename string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	switch ext {
	case ".png", ".svg", ".pdf":
	default:
		base = filename
		ext = ".png"
	}

	series := []struct {
		suffix string
		s      Series
	}{
		{"-shear", NewShearSeries(res, sys)},
		{"-moment", NewMomentSeries(res, sys)},
	}

	var written []string
	for _, it := range series {
		path := base + it.suffix + ext
		if err := ExportSeries(it.s, path); err != nil {
			return written, fmt.Errorf("export %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
