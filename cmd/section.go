package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/alexiusacademia/gobeam/internal/units"
)

var (
	sectionType  string
	sectionUnits string
	sectionDims  section.Dimensions
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Compute cross-section properties",
	Long: `Compute the area, second moment of area and extreme fibre
distance of a cross-section.

Supported types and their dimensions:
  rectangle      --width --height
  circle         --diameter
  hollow-circle  --outer-diameter --inner-diameter
  i-beam         --flange-width --flange-thickness --web-height --web-thickness

Missing dimensions fall back to nominal values.

Examples:
  gobeam section --type rectangle --width 0.1 --height 0.2
  gobeam section --type i-beam --flange-width 0.15 --flange-thickness 0.012 \
    --web-height 0.3 --web-thickness 0.008
  gobeam section --type circle --diameter 2 --units imperial`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionType, "type", "t", string(section.Rectangle), "Section type")
	sectionCmd.Flags().StringVarP(&sectionUnits, "units", "u", "SI", "Unit system of the dimensions: SI (m) or Imperial (in)")

	sectionCmd.Flags().Float64VarP(&sectionDims.Width, "width", "b", 0, "Width")
	sectionCmd.Flags().Float64Var(&sectionDims.Height, "height", 0, "Height")
	sectionCmd.Flags().Float64VarP(&sectionDims.Diameter, "diameter", "d", 0, "Diameter")
	sectionCmd.Flags().Float64Var(&sectionDims.OuterDiameter, "outer-diameter", 0, "Outer diameter")
	sectionCmd.Flags().Float64Var(&sectionDims.InnerDiameter, "inner-diameter", 0, "Inner diameter")
	sectionCmd.Flags().Float64Var(&sectionDims.FlangeWidth, "flange-width", 0, "Flange width")
	sectionCmd.Flags().Float64Var(&sectionDims.FlangeThickness, "flange-thickness", 0, "Flange thickness")
	sectionCmd.Flags().Float64Var(&sectionDims.WebHeight, "web-height", 0, "Web height")
	sectionCmd.Flags().Float64Var(&sectionDims.WebThickness, "web-thickness", 0, "Web thickness")
}

func runSection(cmd *cobra.Command, args []string) error {
	shape, err := section.ParseShape(sectionType)
	if err != nil {
		return err
	}
	sys, err := units.ParseSystem(sectionUnits)
	if err != nil {
		return err
	}

	conv := func(x float64) float64 { return units.FromDisplay(x, units.Section, sys) }
	dims := section.Dimensions{
		Width:           conv(sectionDims.Width),
		Height:          conv(sectionDims.Height),
		Diameter:        conv(sectionDims.Diameter),
		OuterDiameter:   conv(sectionDims.OuterDiameter),
		InnerDiameter:   conv(sectionDims.InnerDiameter),
		FlangeWidth:     conv(sectionDims.FlangeWidth),
		FlangeThickness: conv(sectionDims.FlangeThickness),
		WebHeight:       conv(sectionDims.WebHeight),
		WebThickness:    conv(sectionDims.WebThickness),
	}
	props := section.Compute(shape, dims)

	v := func(x float64, q units.Quantity) string { return units.Format(x, q, sys, 6) }

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "SECTION PROPERTIES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type:\t%s\n", shape)
	fmt.Fprintf(w, "  Area (A):\t%s\n", v(props.Area, units.Area))
	fmt.Fprintf(w, "  Moment of inertia (I):\t%s\n", units.Format(props.I, units.Inertia, sys, 9))
	fmt.Fprintf(w, "  Extreme fibre (c):\t%s\n", v(props.C, units.Section))
	fmt.Fprintf(w, "  Section modulus (S = I/c):\t%.9f %s³\n",
		units.ToDisplay(props.I, units.Inertia, sys)/units.ToDisplay(props.C, units.Section, sys),
		units.Symbol(units.Section, sys))
	w.Flush()
	fmt.Fprintln(out)

	return nil
}
