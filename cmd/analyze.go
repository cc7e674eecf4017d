package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/alexiusacademia/gobeam/internal/project"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/alexiusacademia/gobeam/internal/units"
)

var (
	analyzeFile        string
	analyzeUnits       string
	analyzeResolution  int
	analyzeShowDiagram bool
	analyzeExportFile  string
	analyzeJSON        bool
	analyzeCombination string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a beam defined in a YAML or JSON file",
	Long: `Compute reactions, shear and moment diagrams, bending stress,
factor of safety and a deflection estimate for a single-span beam.

The beam is defined in a YAML (or JSON) file:

  name: Floor joist
  units: SI
  length: 6
  support: simply-supported   # cantilever, fixed-fixed
  material: steel
  factor_of_safety: 1.5
  section:
    type: i-beam              # rectangle, circle, hollow-circle
    flange_width: 0.15
    flange_thickness: 0.012
    web_height: 0.3
    web_thickness: 0.008
  loads:
    - {type: point, position: 3, magnitude: 10}
    - {type: udl, start: 0, end: 6, magnitude: 2, case: live}
    - {type: triangular, start: 1, end: 4, start_magnitude: 0, end_magnitude: 5}

Each load may name its load case (dead, live, roof, wind, earthquake,
rain); loads without one are dead load. Setting "combination" in the file
or with --combination factors the loads by an NSCP 2015 basic load
combination (1 to 7), or by whichever combination governs the peak
moment when set to "governing".

Notes:
  - Fixed-fixed beams replace distributed loads by their resultant when
    computing fixing moments (approximation).
  - The deflection is a worst-case bound from the total load.

Examples:
  gobeam analyze -f joist.yaml
  gobeam analyze -f joist.yaml --units imperial --diagram
  gobeam analyze -f joist.yaml -o diagrams/joist.png
  gobeam analyze -f joist.yaml --combination governing
  gobeam analyze -f joist.yaml --json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to beam definition file [required]")
	analyzeCmd.MarkFlagRequired("file")

	analyzeCmd.Flags().StringVarP(&analyzeUnits, "units", "u", "", "Output unit system: SI or Imperial (default: the file's units)")
	analyzeCmd.Flags().IntVar(&analyzeResolution, "resolution", 0, "Number of diagram intervals (default: file value or 150)")
	analyzeCmd.Flags().StringVarP(&analyzeCombination, "combination", "c", "", "NSCP load combination ID (1-7) or \"governing\"")

	// Diagram options
	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII beam, shear and moment diagrams")
	analyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export shear and moment diagrams (png, svg, pdf)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full result as JSON (SI units)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	f, err := project.LoadFromFile(analyzeFile)
	if err != nil {
		return fmt.Errorf("loading beam: %w", err)
	}

	model, err := f.Build(logger)
	if err != nil {
		return fmt.Errorf("loading beam: %w", err)
	}
	if analyzeResolution > 0 {
		model.Resolution = analyzeResolution
	}
	if analyzeCombination != "" {
		if analyzeCombination != project.Governing {
			if _, err := nscp.FindCombination(analyzeCombination); err != nil {
				return err
			}
		}
		model.Combination = analyzeCombination
	}

	sys := model.System
	if analyzeUnits != "" {
		if sys, err = units.ParseSystem(analyzeUnits); err != nil {
			return err
		}
	}

	logger.Debug("Running analysis",
		zap.String("file", analyzeFile),
		zap.String("support", string(model.Config.Support)),
		zap.Int("loads", len(model.Loads)),
		zap.Int("resolution", model.Resolution),
		zap.String("combination", model.Combination))

	result, combo, err := model.Analyze()
	if err != nil {
		return err
	}

	logger.Debug("Analysis complete",
		zap.Float64("max_moment", result.MaxMoment),
		zap.Float64("actual_fos", result.ActualFOS),
		zap.String("status", string(result.Status)))

	out := cmd.OutOrStdout()

	if analyzeJSON {
		return writeJSON(out, model, combo, result)
	}

	printAnalysis(out, model, combo, result, sys)

	if analyzeShowDiagram {
		fmt.Fprintln(out, diagram.DrawBeamSchematic(model.Config.Length, model.Config.Support, model.Loads, sys))
		fmt.Fprintln(out, diagram.DrawShearChart(result, sys))
		fmt.Fprintln(out, diagram.DrawMomentChart(result, sys))
	}

	if analyzeExportFile != "" {
		paths, err := diagram.ExportDiagrams(result, sys, analyzeExportFile)
		if err != nil {
			return fmt.Errorf("exporting diagrams: %w", err)
		}
		for _, p := range paths {
			fmt.Fprintf(out, "Diagram exported to: %s\n", p)
		}
	}

	return nil
}

type jsonReport struct {
	Name           string             `json:"name,omitempty"`
	Length         float64            `json:"length"`
	Support        beam.Support       `json:"support"`
	Material       string             `json:"material"`
	SectionType    section.Shape      `json:"section_type"`
	Section        section.Properties `json:"section"`
	FactorOfSafety float64            `json:"factor_of_safety"`
	Combination    *jsonCombination   `json:"combination,omitempty"`
	Result         *beam.Result       `json:"result"`
}

type jsonCombination struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

func writeJSON(w io.Writer, m *project.Model, combo *nscp.LoadCombination, res *beam.Result) error {
	report := jsonReport{
		Name:           m.Name,
		Length:         m.Config.Length,
		Support:        m.Config.Support,
		Material:       m.Config.Material.Key,
		SectionType:    m.Config.SectionType,
		Section:        m.Config.Section,
		FactorOfSafety: m.Config.FactorOfSafety,
		Result:         res,
	}
	if combo != nil {
		report.Combination = &jsonCombination{combo.ID, combo.Description}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func printAnalysis(out io.Writer, m *project.Model, combo *nscp.LoadCombination, res *beam.Result, sys units.System) {
	cfg := m.Config
	u := func(q units.Quantity) string { return units.Symbol(q, sys) }
	v := func(x float64, q units.Quantity) float64 { return units.ToDisplay(x, q, sys) }

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "                 BEAM STATIC ANALYSIS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	if m.Name != "" {
		fmt.Fprintf(out, "  Beam: %s\n\n", m.Name)
	}

	// Input summary
	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.3f %s\n", v(cfg.Length, units.Length), u(units.Length))
	fmt.Fprintf(w, "  Support:\t%s\n", cfg.Support)
	fmt.Fprintf(w, "  Material:\t%s\n", cfg.Material.Name)
	fmt.Fprintf(w, "  Elastic modulus (E):\t%.1f %s\n", v(cfg.Material.E, units.Modulus), u(units.Modulus))
	fmt.Fprintf(w, "  Yield strength (Fy):\t%.1f %s\n", v(cfg.Material.YieldStrength, units.Stress), u(units.Stress))
	fmt.Fprintf(w, "  Required FOS:\t%.2f\n", cfg.FactorOfSafety)
	fmt.Fprintf(w, "  Loads:\t%d\n", len(m.Loads))
	if combo != nil {
		label := "  Load combination:"
		if m.Combination == project.Governing {
			label = "  Governing combination:"
		}
		fmt.Fprintf(w, "%s\t%s (%s)\n", label, combo.ID, combo.Description)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "SECTION PROPERTIES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type:\t%s\n", cfg.SectionType)
	fmt.Fprintf(w, "  Area (A):\t%.6g %s\n", v(cfg.Section.Area, units.Area), u(units.Area))
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.6g %s\n", v(cfg.Section.I, units.Inertia), u(units.Inertia))
	fmt.Fprintf(w, "  Extreme fibre (c):\t%.4g %s\n", v(cfg.Section.C, units.Section), u(units.Section))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "REACTIONS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total applied load:\t%.3f %s\n", v(res.TotalLoad, units.Force), u(units.Force))
	fmt.Fprintf(w, "  R1 (left):\t%.3f %s\n", v(res.Reactions.R1, units.Force), u(units.Force))
	if cfg.Support != beam.Cantilever {
		fmt.Fprintf(w, "  R2 (right):\t%.3f %s\n", v(res.Reactions.R2, units.Force), u(units.Force))
	}
	if cfg.Support != beam.SimplySupported {
		fmt.Fprintf(w, "  M1 (left fixing moment):\t%.3f %s\n", v(res.Reactions.M1, units.Moment), u(units.Moment))
	}
	if cfg.Support == beam.FixedFixed {
		fmt.Fprintf(w, "  M2 (right fixing moment):\t%.3f %s\n", v(res.Reactions.M2, units.Moment), u(units.Moment))
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "INTERNAL FORCES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max shear (V):\t%.3f %s at x = %.3f %s\n",
		v(res.MaxShear, units.Force), u(units.Force), v(res.MaxShearAt, units.Length), u(units.Length))
	fmt.Fprintf(w, "  Max moment (M):\t%.3f %s at x = %.3f %s\n",
		v(res.MaxMoment, units.Moment), u(units.Moment), v(res.MaxMomentAt, units.Length), u(units.Length))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "STRESS & SAFETY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bending stress (σ = Mc/I):\t%.2f %s\n", v(res.MaxStress, units.Stress), u(units.Stress))
	fmt.Fprintf(w, "  Allowable stress (Fy/FOS):\t%.2f %s\n", v(res.AllowableStress, units.Stress), u(units.Stress))
	fmt.Fprintf(w, "  Actual FOS:\t%.2f\n", res.ActualFOS)
	fmt.Fprintf(w, "  Max deflection (estimate):\t%.3f %s\n", v(res.MaxDeflection, units.Deflection), u(units.Deflection))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("STATUS: "+statusLabel(res.Status), []string{
		fmt.Sprintf("Actual FOS %.2f vs required %.2f", res.ActualFOS, cfg.FactorOfSafety),
		fmt.Sprintf("σ = %.2f %s", v(res.MaxStress, units.Stress), u(units.Stress)),
	}))
	fmt.Fprintln(out)
}

func statusLabel(s beam.SafetyStatus) string {
	switch s {
	case beam.Safe:
		return "SAFE ✓"
	case beam.Warning:
		return "WARNING ⚠ (within 20% of required FOS)"
	default:
		return "FAILURE ✗ (below required FOS)"
	}
}
