package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/load"
	"github.com/alexiusacademia/gobeam/internal/units"
)

// Chart dimensions in characters
const (
	ChartWidth  = 60
	ChartHeight = 12
)

// DrawShearChart plots the shear diagram as ASCII art
func DrawShearChart(res *beam.Result, sys units.System) string {
	return drawChart(res.Shear, units.Force, sys, "SHEAR FORCE DIAGRAM")
}

// DrawMomentChart plots the bending moment diagram as ASCII art
func DrawMomentChart(res *beam.Result, sys units.System) string {
	return drawChart(res.Moment, units.Moment, sys, "BENDING MOMENT DIAGRAM")
}

func drawChart(samples []beam.Sample, q units.Quantity, sys units.System, title string) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  " + title + "\n")
	sb.WriteString("  " + strings.Repeat("─", utf8.RuneCountInString(title)) + "\n\n")

	if len(samples) == 0 {
		sb.WriteString("  (no data)\n")
		return sb.String()
	}

	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = units.ToDisplay(s.Value, q, sys)
	}

	span := units.ToDisplay(samples[len(samples)-1].X, units.Length, sys)
	caption := fmt.Sprintf("%s vs x, 0 to %.2f %s", units.Symbol(q, sys), span, units.Symbol(units.Length, sys))

	sb.WriteString(asciigraph.Plot(values,
		asciigraph.Height(ChartHeight),
		asciigraph.Width(ChartWidth),
		asciigraph.Precision(2),
		asciigraph.Offset(4),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n")

	return sb.String()
}

// DrawBeamSchematic draws a one-line sketch of the beam with its supports
// and load positions, followed by a legend
func DrawBeamSchematic(length float64, support beam.Support, loads []load.Load, sys units.System) string {
	const width = ChartWidth

	col := func(x float64) int {
		c := int(math.Round(x / length * float64(width-1)))
		return max(0, min(width-1, c))
	}

	loadRow := []rune(strings.Repeat(" ", width))
	for _, l := range loads {
		switch ld := l.(type) {
		case load.Point:
			loadRow[col(ld.Position)] = '↓'
		case load.UDL:
			for c := col(ld.Start); c <= col(ld.End); c++ {
				loadRow[c] = '▼'
			}
		case load.Triangular:
			for c := col(ld.Start); c <= col(ld.End); c++ {
				loadRow[c] = '▽'
			}
		}
	}

	beamRow := []rune(strings.Repeat("═", width))
	supportRow := []rune(strings.Repeat(" ", width))
	switch support {
	case beam.SimplySupported:
		supportRow[0], supportRow[width-1] = '△', '○'
	case beam.Cantilever:
		beamRow[0] = '▌'
	case beam.FixedFixed:
		beamRow[0], beamRow[width-1] = '▌', '▐'
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  BEAM (%s)\n", support))
	sb.WriteString("  " + strings.TrimRight(string(loadRow), " ") + "\n")
	sb.WriteString("  " + string(beamRow) + "\n")
	if row := strings.TrimRight(string(supportRow), " "); row != "" {
		sb.WriteString("  " + row + "\n")
	}
	sb.WriteString(fmt.Sprintf("  0%s%.2f %s\n",
		strings.Repeat(" ", width-6),
		units.ToDisplay(length, units.Length, sys),
		units.Symbol(units.Length, sys)))

	sb.WriteString("\n  Loads:\n")
	for _, line := range describeLoads(loads, sys) {
		sb.WriteString("    " + line + "\n")
	}

	return sb.String()
}

func describeLoads(loads []load.Load, sys units.System) []string {
	lu := units.Symbol(units.Length, sys)
	lines := make([]string, 0, len(loads))

	sorted := make([]load.Load, len(loads))
	copy(sorted, loads)
	sort.SliceStable(sorted, func(i, j int) bool {
		return startOf(sorted[i]) < startOf(sorted[j])
	})

	for _, l := range sorted {
		switch ld := l.(type) {
		case load.Point:
			lines = append(lines, fmt.Sprintf("↓ %-10s %s at %.2f %s", ld.ID,
				units.Format(ld.Magnitude, units.Force, sys, 2),
				units.ToDisplay(ld.Position, units.Length, sys), lu))
		case load.UDL:
			lines = append(lines, fmt.Sprintf("▼ %-10s %s from %.2f to %.2f %s", ld.ID,
				units.Format(ld.Magnitude, units.Distributed, sys, 2),
				units.ToDisplay(ld.Start, units.Length, sys),
				units.ToDisplay(ld.End, units.Length, sys), lu))
		case load.Triangular:
			lines = append(lines, fmt.Sprintf("▽ %-10s %.2f → %s from %.2f to %.2f %s", ld.ID,
				units.ToDisplay(ld.StartMagnitude, units.Distributed, sys),
				units.Format(ld.EndMagnitude, units.Distributed, sys, 2),
				units.ToDisplay(ld.Start, units.Length, sys),
				units.ToDisplay(ld.End, units.Length, sys), lu))
		}
	}
	return lines
}

func startOf(l load.Load) float64 {
	switch ld := l.(type) {
	case load.Point:
		return ld.Position
	case load.UDL:
		return ld.Start
	case load.Triangular:
		return ld.Start
	}
	return 0
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes
func pad(s string, n int) string {
	if d := n - utf8.RuneCountInString(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
