package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/material"
	"github.com/alexiusacademia/gobeam/internal/units"
)

var materialsUnits string

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the available materials",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := units.ParseSystem(materialsUnits)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "MATERIALS:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Key\tName\tE (%s)\tFy (%s)\n", units.Symbol(units.Modulus, sys), units.Symbol(units.Stress, sys))
		fmt.Fprintf(w, "  ───\t────\t──────\t───────\n")
		for _, k := range material.Keys() {
			m := material.Catalog[k]
			fmt.Fprintf(w, "  %s\t%s\t%.1f\t%.1f\n", m.Key, m.Name,
				units.ToDisplay(m.E, units.Modulus, sys),
				units.ToDisplay(m.YieldStrength, units.Stress, sys))
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
	materialsCmd.Flags().StringVarP(&materialsUnits, "units", "u", "SI", "Unit system: SI or Imperial")
}
