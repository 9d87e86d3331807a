package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshell/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "goshell",
	Short: "Half-Cylinder Concrete Shell Sizing Tool",
	Long: `goshell - Go Concrete Shell Sizer

A CLI tool for sizing a half-cylindrical concrete shell around a
rectangular beam.

Given the beam dimensions and a safety clearance, this tool computes
the minimum inner radius of the shell required to clear the beam's
farthest corner, and can:
  - Print a sizing summary with a plan-view sketch
  - Sweep required radius against beam width (table, chart, xlsx)
  - Export the 3D scene (shell surfaces, back wall, beam) as STL
  - Generate a PDF design report

All geometry is computed in SI meters; inputs and outputs may use
meters or inches.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goshell v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Concrete Shell Sizer                                 ║")
		fmt.Printf("  ║   %s ©  %s                                ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for sizing a half-cylindrical concrete shell")
		fmt.Println("  around a rectangular beam.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Minimum inner radius from beam size and clearance")
		fmt.Println("    • Required radius vs. beam width sweep with charts")
		fmt.Println("    • 3D scene export (binary STL)")
		fmt.Println("    • PDF and XLSX design reports")
		fmt.Println()
		fmt.Println("  Use 'goshell --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
