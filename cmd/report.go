package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshell/internal/report"
	"github.com/alexiusacademia/goshell/internal/shell"
	"github.com/alexiusacademia/goshell/internal/units"
)

var (
	// Geometry inputs, in the selected unit system
	reportWidth       float64
	reportLength      float64
	reportHeight      float64
	reportClearance   float64
	reportShellHeight float64
	reportThickness   float64
	reportUnits       string

	// Output options
	reportPDFFile  string
	reportXLSXFile string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a design report (PDF, XLSX)",
	Long: `Size the shell and write a design report: the input parameters,
the required inner radius, and the required-radius-vs-width sweep
table over the default inspection interval.

Examples:
  # PDF report for the default beam
  goshell report --output shell-report.pdf

  # Imperial inputs, both formats
  goshell report --units in --width 6 --height 12 --clearance 2 \
      --output report.pdf --xlsx report.xlsx`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	// Geometry flags
	reportCmd.Flags().Float64VarP(&reportWidth, "width", "x", 0, "Beam width x (default 0.15 m / 6 in)")
	reportCmd.Flags().Float64VarP(&reportLength, "length", "y", 0, "Beam length y (default 0.30 m / 12 in)")
	reportCmd.Flags().Float64VarP(&reportHeight, "height", "z", 0, "Beam height z (default 0.30 m / 12 in)")
	reportCmd.Flags().Float64VarP(&reportClearance, "clearance", "c", 0, "Clearance (default 0.05 m / 2 in)")
	reportCmd.Flags().Float64Var(&reportShellHeight, "shell-height", 0, "Shell height (default 0.60 m / 24 in)")
	reportCmd.Flags().Float64VarP(&reportThickness, "thickness", "t", 0, "Shell wall thickness (default 0.05 m / 2 in)")
	reportCmd.Flags().StringVarP(&reportUnits, "units", "u", "m", "Unit system for inputs and outputs (m or in)")

	// Output
	reportCmd.Flags().StringVarP(&reportPDFFile, "output", "o", "shell-report.pdf", "Output PDF file")
	reportCmd.Flags().StringVar(&reportXLSXFile, "xlsx", "", "Also export an xlsx workbook")
}

func runReport(cmd *cobra.Command, args []string) {
	u, err := units.Parse(reportUnits)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	b, s := gatherParameters(cmd, u,
		reportWidth, reportLength, reportHeight,
		reportClearance, reportShellHeight, reportThickness)

	result, err := shell.Design(b, s)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	sweep := shell.SweepRadiusVsWidth(b.Height, s.Clearance, shell.DefaultSweepMin, shell.DefaultSweepMax, shell.DefaultSweepCount)

	summary := report.Summary{
		Unit:           u.Label(),
		BeamWidth:      units.FromBase(b.Width, u),
		BeamLength:     units.FromBase(b.Length, u),
		BeamHeight:     units.FromBase(b.Height, u),
		Clearance:      units.FromBase(s.Clearance, u),
		ShellHeight:    units.FromBase(s.Height, u),
		ShellThickness: units.FromBase(s.Thickness, u),
		HalfDiagonal:   units.FromBase(result.HalfDiagonal, u),
		InnerRadius:    units.FromBase(result.InnerRadius, u),
		OuterRadius:    units.FromBase(result.OuterRadius, u),
	}

	if err := report.WritePDF(reportPDFFile, summary, sweep, u); err != nil {
		fmt.Printf("Error writing PDF: %v\n", err)
		return
	}
	fmt.Printf("Report exported to: %s\n", reportPDFFile)

	if reportXLSXFile != "" {
		if err := report.WriteXLSX(reportXLSXFile, summary, sweep, u); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
			return
		}
		fmt.Printf("Workbook exported to: %s\n", reportXLSXFile)
	}
}
