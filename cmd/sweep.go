package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshell/internal/diagram"
	"github.com/alexiusacademia/goshell/internal/report"
	"github.com/alexiusacademia/goshell/internal/shell"
	"github.com/alexiusacademia/goshell/internal/units"
)

var (
	// Sweep inputs, in the selected unit system
	sweepHeight    float64
	sweepClearance float64
	sweepMin       float64
	sweepMax       float64
	sweepSamples   int
	sweepUnits     string

	// Output options
	sweepASCII     bool
	sweepChartFile string
	sweepXLSXFile  string
	sweepHideTable bool
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep required inner radius against beam width",
	Long: `Evaluate the required inner radius over a range of beam widths,
holding beam height and clearance fixed.

The default inspection interval is 2 in to 12 in (0.0508 m to
0.3048 m) sampled at 50 evenly spaced widths, inclusive of both
endpoints.

Examples:
  # Default sweep for a 300mm-high beam with 50mm clearance
  goshell sweep --height 0.30 --clearance 0.05

  # Terminal chart plus a PNG export, imperial units
  goshell sweep --units in --height 12 --clearance 2 --ascii --output sweep.png

  # Spreadsheet export
  goshell sweep --height 0.30 --clearance 0.05 --xlsx sweep.xlsx`,
	Run: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	// Sweep flags
	sweepCmd.Flags().Float64VarP(&sweepHeight, "height", "z", 0, "Beam height z (default 0.30 m / 12 in)")
	sweepCmd.Flags().Float64VarP(&sweepClearance, "clearance", "c", 0, "Clearance (default 0.05 m / 2 in)")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "Smallest beam width to inspect (default 0.0508 m / 2 in)")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0, "Largest beam width to inspect (default 0.3048 m / 12 in)")
	sweepCmd.Flags().IntVarP(&sweepSamples, "samples", "n", shell.DefaultSweepCount, "Number of width samples")

	// Options
	sweepCmd.Flags().StringVarP(&sweepUnits, "units", "u", "m", "Unit system for inputs and outputs (m or in)")
	sweepCmd.Flags().BoolVarP(&sweepASCII, "ascii", "a", false, "Show terminal chart")
	sweepCmd.Flags().StringVarP(&sweepChartFile, "output", "o", "", "Export chart to file (png, svg, pdf)")
	sweepCmd.Flags().StringVar(&sweepXLSXFile, "xlsx", "", "Export sweep table to an xlsx workbook")
	sweepCmd.Flags().BoolVar(&sweepHideTable, "no-table", false, "Skip printing the sweep table")
}

func runSweep(cmd *cobra.Command, args []string) {
	u, err := units.Parse(sweepUnits)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	height := baseValue(cmd, "height", sweepHeight, u, shell.DefaultBeamHeight)
	clearance := baseValue(cmd, "clearance", sweepClearance, u, shell.DefaultClearance)
	min := baseValue(cmd, "min", sweepMin, u, shell.DefaultSweepMin)
	max := baseValue(cmd, "max", sweepMax, u, shell.DefaultSweepMax)

	if height <= 0 {
		fmt.Printf("Error: beam height must be positive: %.3f\n", height)
		return
	}
	if clearance < 0 {
		fmt.Printf("Error: clearance must not be negative: %.3f\n", clearance)
		return
	}
	if min >= max {
		fmt.Printf("Error: invalid sweep interval: min=%.3f, max=%.3f\n", min, max)
		return
	}

	points := shell.SweepRadiusVsWidth(height, clearance, min, max, sweepSamples)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     REQUIRED RADIUS vs. BEAM WIDTH")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam Height (z):\t%.3f %s\n", units.FromBase(height, u), u.Label())
	fmt.Fprintf(w, "  Clearance:\t%.3f %s\n", units.FromBase(clearance, u), u.Label())
	fmt.Fprintf(w, "  Width Interval:\t%.3f – %.3f %s\n", units.FromBase(min, u), units.FromBase(max, u), u.Label())
	fmt.Fprintf(w, "  Samples:\t%d\n", len(points))
	w.Flush()
	fmt.Println()

	if !sweepHideTable {
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Beam Width (%s)\tInner Radius (%s)\n", u.Label(), u.Label())
		fmt.Fprintf(w, "  ───────────────\t────────────────\n")
		for _, p := range points {
			fmt.Fprintf(w, "  %.3f\t%.3f\n", units.FromBase(p.Width, u), units.FromBase(p.Radius, u))
		}
		w.Flush()
		fmt.Println()
	}

	if sweepASCII {
		fmt.Println(diagram.SweepASCII(points, u))
		fmt.Println()
	}

	if sweepChartFile != "" {
		if err := diagram.ExportSweepChart(points, u, sweepChartFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("Chart exported to: %s\n", sweepChartFile)
		}
	}

	if sweepXLSXFile != "" {
		if err := report.WriteSweepXLSX(sweepXLSXFile, points, u); err != nil {
			fmt.Printf("Error exporting workbook: %v\n", err)
		} else {
			fmt.Printf("Workbook exported to: %s\n", sweepXLSXFile)
		}
	}
}
