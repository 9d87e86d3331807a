package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshell/internal/mesh"
	"github.com/alexiusacademia/goshell/internal/shell"
	"github.com/alexiusacademia/goshell/internal/units"
)

var (
	// Geometry inputs, in the selected unit system
	meshWidth       float64
	meshLength      float64
	meshHeight      float64
	meshClearance   float64
	meshShellHeight float64
	meshThickness   float64
	meshUnits       string

	// Sampling and output
	meshAngular   int
	meshElevation int
	meshOutFile   string
)

var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Export the 3D scene as a binary STL file",
	Long: `Build the display geometry of the sized shell and export it as a
binary STL file. The scene holds four bodies:
  - Inner shell surface (radius a, beam clearance)
  - Outer shell surface (radius a + thickness)
  - Flat back wall spanning the outer diameter
  - The beam, flush against the back wall

The half-cylinder spans 180°, sampled on a uniform angle/elevation
grid (default 100 × 30).

Examples:
  # Default beam, write shell.stl
  goshell mesh

  # Finer sampling, custom file
  goshell mesh --angular 200 --elevation 60 --output out/shell.stl`,
	Run: runMesh,
}

func init() {
	rootCmd.AddCommand(meshCmd)

	// Geometry flags
	meshCmd.Flags().Float64VarP(&meshWidth, "width", "x", 0, "Beam width x (default 0.15 m / 6 in)")
	meshCmd.Flags().Float64VarP(&meshLength, "length", "y", 0, "Beam length y (default 0.30 m / 12 in)")
	meshCmd.Flags().Float64VarP(&meshHeight, "height", "z", 0, "Beam height z (default 0.30 m / 12 in)")
	meshCmd.Flags().Float64VarP(&meshClearance, "clearance", "c", 0, "Clearance (default 0.05 m / 2 in)")
	meshCmd.Flags().Float64Var(&meshShellHeight, "shell-height", 0, "Shell height (default 0.60 m / 24 in)")
	meshCmd.Flags().Float64VarP(&meshThickness, "thickness", "t", 0, "Shell wall thickness (default 0.05 m / 2 in)")
	meshCmd.Flags().StringVarP(&meshUnits, "units", "u", "m", "Unit system for inputs (m or in)")

	// Sampling flags
	meshCmd.Flags().IntVar(&meshAngular, "angular", shell.DefaultAngularSamples, "Angular samples over the half circle")
	meshCmd.Flags().IntVar(&meshElevation, "elevation", shell.DefaultElevationSamples, "Elevation samples over the shell height")

	// Output
	meshCmd.Flags().StringVarP(&meshOutFile, "output", "o", "shell.stl", "Output STL file")
}

func runMesh(cmd *cobra.Command, args []string) {
	u, err := units.Parse(meshUnits)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if meshAngular < 2 || meshElevation < 2 {
		fmt.Printf("Error: sampling resolutions must be at least 2: angular=%d, elevation=%d\n", meshAngular, meshElevation)
		return
	}

	b, s := gatherParameters(cmd, u,
		meshWidth, meshLength, meshHeight,
		meshClearance, meshShellHeight, meshThickness)

	result, err := shell.Design(b, s)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	inner, outer := shell.BuildShellSurfaces(result.InnerRadius, result.OuterRadius, s.Height, meshAngular, meshElevation)
	back := shell.BuildBackPlane(result.OuterRadius, s.Height, meshElevation)
	beam := shell.BuildBeamSolid(b.Width, b.Length, b.Height)

	scene := mesh.SceneTriangles(inner, outer, back, beam)
	if err := mesh.CreateSTL(meshOutFile, scene); err != nil {
		fmt.Printf("Error writing STL: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("SCENE EXPORTED:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Inner radius (a):\t%.3f m\n", result.InnerRadius)
	fmt.Fprintf(w, "  Outer radius (b):\t%.3f m\n", result.OuterRadius)
	fmt.Fprintf(w, "  Grid:\t%d × %d\n", meshAngular, meshElevation)
	fmt.Fprintf(w, "  Triangles:\t%d\n", len(scene))
	fmt.Fprintf(w, "  File:\t%s\n", meshOutFile)
	w.Flush()
	fmt.Println()
}
