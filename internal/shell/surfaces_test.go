package shell

import (
	"fmt"
	"math"
	"testing"
)

func TestBuildShellSurfacesShape(t *testing.T) {
	inner, outer := BuildShellSurfaces(0.26, 0.31, 0.60, 100, 30)

	for name, g := range map[string]SurfaceGrid{"inner": inner, "outer": outer} {
		if g.Rows() != 30 || g.Cols() != 100 {
			t.Errorf("%s grid shape = %d×%d, want 30×100", name, g.Rows(), g.Cols())
		}
		if len(g.Y) != len(g.X) || len(g.Z) != len(g.X) {
			t.Errorf("%s grid: X/Y/Z row counts differ", name)
		}
		for i := range g.X {
			if len(g.Y[i]) != len(g.X[i]) || len(g.Z[i]) != len(g.X[i]) {
				t.Fatalf("%s grid row %d: X/Y/Z column counts differ", name, i)
			}
		}
	}

	// Inner and outer share the same sampling.
	if inner.Rows() != outer.Rows() || inner.Cols() != outer.Cols() {
		t.Errorf("inner and outer grids differ: %d×%d vs %d×%d",
			inner.Rows(), inner.Cols(), outer.Rows(), outer.Cols())
	}
}

func TestBuildShellSurfacesGeometry(t *testing.T) {
	const (
		radius = 0.26
		height = 0.60
	)
	inner, _ := BuildShellSurfaces(radius, 0.31, height, 100, 30)

	rows, cols := inner.Rows(), inner.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d := math.Hypot(inner.X[i][j], inner.Y[i][j])
			if math.Abs(d-radius) > 1e-12 {
				t.Fatalf("node (%d,%d) at distance %v from axis, want %v", i, j, d, radius)
			}
			if inner.X[i][j] < -1e-12 {
				t.Fatalf("node (%d,%d) behind the back wall: x=%v", i, j, inner.X[i][j])
			}
		}
	}

	// The half circle starts at -π/2 (y=-r), ends at +π/2 (y=+r).
	if math.Abs(inner.Y[0][0]+radius) > 1e-12 {
		t.Errorf("first angular sample y = %v, want %v", inner.Y[0][0], -radius)
	}
	if math.Abs(inner.Y[0][cols-1]-radius) > 1e-12 {
		t.Errorf("last angular sample y = %v, want %v", inner.Y[0][cols-1], radius)
	}
	// Elevation spans [0, height].
	if inner.Z[0][0] != 0 {
		t.Errorf("first elevation = %v, want 0", inner.Z[0][0])
	}
	if math.Abs(inner.Z[rows-1][0]-height) > 1e-12 {
		t.Errorf("last elevation = %v, want %v", inner.Z[rows-1][0], height)
	}
}

func TestBuildBackPlane(t *testing.T) {
	g := BuildBackPlane(0.31, 0.60, 30)
	if g.Rows() != 30 || g.Cols() != 30 {
		t.Fatalf("back plane shape = %d×%d, want 30×30", g.Rows(), g.Cols())
	}
	for i := range g.X {
		for j := range g.X[i] {
			if g.X[i][j] != 0 {
				t.Fatalf("back plane node (%d,%d) off the x=0 plane: %v", i, j, g.X[i][j])
			}
		}
	}
	if g.Y[0][0] != -0.31 || math.Abs(g.Y[0][29]-0.31) > 1e-12 {
		t.Errorf("back plane y span = [%v, %v], want [-0.31, 0.31]", g.Y[0][0], g.Y[0][29])
	}
}

func TestBuildBeamSolid(t *testing.T) {
	s := BuildBeamSolid(0.15, 0.30, 0.30)

	if len(s.Vertices) != 8 {
		t.Fatalf("vertex count = %d, want 8", len(s.Vertices))
	}
	if len(s.Triangles) != 12 {
		t.Fatalf("triangle count = %d, want 12", len(s.Triangles))
	}

	for _, v := range s.Vertices {
		if v.X < 0 || v.X > 0.15 {
			t.Errorf("vertex x = %v outside [0, width]", v.X)
		}
		if v.Y < -0.15 || v.Y > 0.15 {
			t.Errorf("vertex y = %v outside [-length/2, length/2]", v.Y)
		}
		if v.Z < 0 || v.Z > 0.30 {
			t.Errorf("vertex z = %v outside [0, height]", v.Z)
		}
	}

	// A closed solid has every undirected edge shared by exactly two
	// triangles.
	edges := map[string]int{}
	for _, f := range s.Triangles {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			if a < 0 || a > 7 || b < 0 || b > 7 {
				t.Fatalf("face %v references vertex outside [0,8)", f)
			}
			if a > b {
				a, b = b, a
			}
			edges[fmt.Sprintf("%d-%d", a, b)]++
		}
	}
	for e, n := range edges {
		if n != 2 {
			t.Errorf("edge %s used by %d triangles, want 2", e, n)
		}
	}
}

func TestSweepRadiusVsWidth(t *testing.T) {
	const (
		height    = 0.30
		clearance = 0.05
		min       = 0.0508
		max       = 0.3048
		n         = 50
	)
	pts := SweepRadiusVsWidth(height, clearance, min, max, n)

	if len(pts) != n {
		t.Fatalf("sample count = %d, want %d", len(pts), n)
	}
	if pts[0].Width != min {
		t.Errorf("first width = %v, want %v", pts[0].Width, min)
	}
	if math.Abs(pts[n-1].Width-max) > 1e-12 {
		t.Errorf("last width = %v, want %v", pts[n-1].Width, max)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Width <= pts[i-1].Width {
			t.Fatalf("widths not strictly increasing at %d: %v <= %v", i, pts[i].Width, pts[i-1].Width)
		}
	}
	for _, p := range pts {
		want := InnerRadius(p.Width, height, clearance)
		if p.Radius != want {
			t.Errorf("radius at width %v = %v, want %v", p.Width, p.Radius, want)
		}
	}
}
