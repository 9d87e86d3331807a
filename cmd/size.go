package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshell/internal/diagram"
	"github.com/alexiusacademia/goshell/internal/shell"
	"github.com/alexiusacademia/goshell/internal/units"
)

var (
	// Sizing inputs, in the selected unit system
	sizeWidth       float64
	sizeLength      float64
	sizeHeight      float64
	sizeClearance   float64
	sizeShellHeight float64
	sizeThickness   float64
	sizeUnits       string

	// Options
	sizeSketch bool
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Compute the required inner radius of the shell",
	Long: `Compute the minimum inner radius of a half-cylindrical shell
required to clear the beam's farthest corner plus a safety clearance:

  a = sqrt(width² + (height/2)²) + clearance

The beam sits flush against the shell's flat back wall, centered on
the shell axis. Unset flags use the built-in defaults (0.15 × 0.30 ×
0.30 m beam, 0.05 m clearance, 0.60 m shell height, 0.05 m wall).

Examples:
  # Size the shell for a 150x300x300mm beam with 50mm clearance
  goshell size --width 0.15 --length 0.30 --height 0.30 --clearance 0.05

  # Imperial input, with a plan-view sketch
  goshell size --units in --width 6 --length 12 --height 12 --clearance 2 --sketch`,
	Run: runSize,
}

func init() {
	rootCmd.AddCommand(sizeCmd)

	// Geometry flags
	sizeCmd.Flags().Float64VarP(&sizeWidth, "width", "x", 0, "Beam width x (default 0.15 m / 6 in)")
	sizeCmd.Flags().Float64VarP(&sizeLength, "length", "y", 0, "Beam length y (default 0.30 m / 12 in)")
	sizeCmd.Flags().Float64VarP(&sizeHeight, "height", "z", 0, "Beam height z (default 0.30 m / 12 in)")
	sizeCmd.Flags().Float64VarP(&sizeClearance, "clearance", "c", 0, "Clearance to the farthest beam corner (default 0.05 m / 2 in)")
	sizeCmd.Flags().Float64Var(&sizeShellHeight, "shell-height", 0, "Shell height (default 0.60 m / 24 in)")
	sizeCmd.Flags().Float64VarP(&sizeThickness, "thickness", "t", 0, "Shell wall thickness (default 0.05 m / 2 in)")

	// Options
	sizeCmd.Flags().StringVarP(&sizeUnits, "units", "u", "m", "Unit system for inputs and outputs (m or in)")
	sizeCmd.Flags().BoolVar(&sizeSketch, "sketch", false, "Show ASCII plan-view sketch")
}

func runSize(cmd *cobra.Command, args []string) {
	u, err := units.Parse(sizeUnits)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	b, s := gatherParameters(cmd, u,
		sizeWidth, sizeLength, sizeHeight,
		sizeClearance, sizeShellHeight, sizeThickness)

	result, err := shell.Design(b, s)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     HALF-CYLINDER CONCRETE SHELL SIZING")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam Width (x):\t%.3f %s\n", units.FromBase(b.Width, u), u.Label())
	fmt.Fprintf(w, "  Beam Length (y):\t%.3f %s\n", units.FromBase(b.Length, u), u.Label())
	fmt.Fprintf(w, "  Beam Height (z):\t%.3f %s\n", units.FromBase(b.Height, u), u.Label())
	fmt.Fprintf(w, "  Clearance:\t%.3f %s\n", units.FromBase(s.Clearance, u), u.Label())
	fmt.Fprintf(w, "  Shell Height:\t%.3f %s\n", units.FromBase(s.Height, u), u.Label())
	fmt.Fprintf(w, "  Shell Thickness:\t%.3f %s\n", units.FromBase(s.Thickness, u), u.Label())
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Half-diagonal footprint:\t%.3f %s\n", units.FromBase(result.HalfDiagonal, u), u.Label())
	fmt.Fprintf(w, "  Margin over beam width:\t%.3f %s\n", units.FromBase(result.Margin, u), u.Label())
	fmt.Fprintf(w, "  Outer radius (b = a + t):\t%.3f %s\n", units.FromBase(result.OuterRadius, u), u.Label())
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  REQUIRED INNER RADIUS a = %.3f %s     \n", units.FromBase(result.InnerRadius, u), u.Label())
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
	fmt.Println("  The half-cylinder should have at least this inner radius to")
	fmt.Println("  fit the beam with the specified clearance.")
	fmt.Println()

	if sizeSketch {
		fmt.Println(diagram.DrawPlanSketch(b, s, result))
	}
}

// gatherParameters converts the six dimension flags to base-unit
// beam and shell parameters, applying the built-in defaults for
// flags left unset.
func gatherParameters(cmd *cobra.Command, u units.Unit, width, length, height, clearance, shellHeight, thickness float64) (shell.Beam, shell.Shell) {
	b := shell.Beam{
		Width:  baseValue(cmd, "width", width, u, shell.DefaultBeamWidth),
		Length: baseValue(cmd, "length", length, u, shell.DefaultBeamLength),
		Height: baseValue(cmd, "height", height, u, shell.DefaultBeamHeight),
	}
	s := shell.Shell{
		Clearance: baseValue(cmd, "clearance", clearance, u, shell.DefaultClearance),
		Height:    baseValue(cmd, "shell-height", shellHeight, u, shell.DefaultShellHeight),
		Thickness: baseValue(cmd, "thickness", thickness, u, shell.DefaultShellThickness),
	}
	return b, s
}
