package shell

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SurfaceGrid is a structured quad mesh. X, Y and Z hold the
// coordinates of each grid node, indexed [row][col]; all three share
// one shape.
type SurfaceGrid struct {
	X, Y, Z [][]float64
}

// Rows returns the number of grid rows.
func (g SurfaceGrid) Rows() int {
	return len(g.X)
}

// Cols returns the number of grid columns.
func (g SurfaceGrid) Cols() int {
	if len(g.X) == 0 {
		return 0
	}
	return len(g.X[0])
}

// BuildShellSurfaces samples the inner and outer half-cylinder
// surfaces on identical angle/elevation grids. The angle spans
// [-π/2, π/2] so the flat diameter lies on the back wall x=0.
// Rows run over elevation, columns over angle.
func BuildShellSurfaces(innerRadius, outerRadius, shellHeight float64, angular, elevation int) (inner, outer SurfaceGrid) {
	inner = cylinderGrid(innerRadius, shellHeight, angular, elevation)
	outer = cylinderGrid(outerRadius, shellHeight, angular, elevation)
	return inner, outer
}

func cylinderGrid(radius, height float64, angular, elevation int) SurfaceGrid {
	g := newGrid(elevation, angular)
	for i := 0; i < elevation; i++ {
		z := linstep(0, height, elevation, i)
		for j := 0; j < angular; j++ {
			theta := linstep(-math.Pi/2, math.Pi/2, angular, j)
			g.X[i][j] = radius * math.Cos(theta)
			g.Y[i][j] = radius * math.Sin(theta)
			g.Z[i][j] = z
		}
	}
	return g
}

// BuildBackPlane builds the flat closing wall at x=0 spanning the
// outer diameter, sampled on a samples×samples grid.
func BuildBackPlane(outerRadius, shellHeight float64, samples int) SurfaceGrid {
	g := newGrid(samples, samples)
	for i := 0; i < samples; i++ {
		z := linstep(0, shellHeight, samples, i)
		for j := 0; j < samples; j++ {
			g.Y[i][j] = linstep(-outerRadius, outerRadius, samples, j)
			g.Z[i][j] = z
		}
	}
	return g
}

func newGrid(rows, cols int) SurfaceGrid {
	g := SurfaceGrid{
		X: make([][]float64, rows),
		Y: make([][]float64, rows),
		Z: make([][]float64, rows),
	}
	for i := range g.X {
		g.X[i] = make([]float64, cols)
		g.Y[i] = make([]float64, cols)
		g.Z[i] = make([]float64, cols)
	}
	return g
}

// BeamSolid is the beam in display form: 8 corner vertices and 12
// triangles indexing them, two per face.
type BeamSolid struct {
	Vertices  [8]r3.Vec
	Triangles [12][3]int
}

// beamFaces connects the fixed vertex ordering of BuildBeamSolid into
// a closed hull. Outward winding follows from the vertex layout.
var beamFaces = [12][3]int{
	{0, 2, 1}, {0, 3, 2}, // bottom, z=0
	{4, 5, 6}, {4, 6, 7}, // top
	{0, 1, 5}, {0, 5, 4}, // side y=-length/2
	{3, 6, 2}, {3, 7, 6}, // side y=+length/2
	{0, 7, 3}, {0, 4, 7}, // back, x=0
	{1, 2, 6}, {1, 6, 5}, // front, x=width
}

// BuildBeamSolid places the beam flush against the back wall: one
// face at x=0, centered on y=0, resting on z=0.
func BuildBeamSolid(width, length, height float64) BeamSolid {
	l2 := length / 2
	return BeamSolid{
		Vertices: [8]r3.Vec{
			{X: 0, Y: -l2, Z: 0},
			{X: width, Y: -l2, Z: 0},
			{X: width, Y: l2, Z: 0},
			{X: 0, Y: l2, Z: 0},
			{X: 0, Y: -l2, Z: height},
			{X: width, Y: -l2, Z: height},
			{X: width, Y: l2, Z: height},
			{X: 0, Y: l2, Z: height},
		},
		Triangles: beamFaces,
	}
}

// SweepPoint pairs a beam width with the inner radius it requires.
type SweepPoint struct {
	Width  float64
	Radius float64
}

// SweepRadiusVsWidth evaluates the required inner radius over an
// inclusive range of beam widths, height and clearance held fixed.
// Points are ordered by increasing width.
func SweepRadiusVsWidth(height, clearance, widthMin, widthMax float64, samples int) []SweepPoint {
	if samples < 2 {
		samples = 2
	}
	pts := make([]SweepPoint, samples)
	for i := range pts {
		w := linstep(widthMin, widthMax, samples, i)
		pts[i] = SweepPoint{Width: w, Radius: InnerRadius(w, height, clearance)}
	}
	return pts
}

// linstep returns the i-th of n evenly spaced samples in [lo, hi],
// inclusive of both endpoints.
func linstep(lo, hi float64, n, i int) float64 {
	if n <= 1 {
		return lo
	}
	return lo + (hi-lo)*float64(i)/float64(n-1)
}
