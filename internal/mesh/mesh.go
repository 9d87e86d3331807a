// Package mesh triangulates the shell display geometry and writes it
// out in binary STL format.
package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/alexiusacademia/goshell/internal/shell"
)

// Triangle is a 3D triangle defined by its three vertices.
type Triangle struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle face, following the
// right-hand rule over the vertex order. Degenerate triangles return
// the zero vector.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	n := r3.Cross(e1, e2)
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// TriangulateGrid splits each quad cell of a structured surface grid
// into two triangles. A rows×cols grid yields 2·(rows-1)·(cols-1)
// triangles.
func TriangulateGrid(g shell.SurfaceGrid) []Triangle {
	rows, cols := g.Rows(), g.Cols()
	if rows < 2 || cols < 2 {
		return nil
	}
	at := func(i, j int) r3.Vec {
		return r3.Vec{X: g.X[i][j], Y: g.Y[i][j], Z: g.Z[i][j]}
	}
	tris := make([]Triangle, 0, 2*(rows-1)*(cols-1))
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			a := at(i, j)
			b := at(i, j+1)
			c := at(i+1, j+1)
			d := at(i+1, j)
			tris = append(tris,
				Triangle{V: [3]r3.Vec{a, b, c}},
				Triangle{V: [3]r3.Vec{a, c, d}},
			)
		}
	}
	return tris
}

// SolidTriangles expands the indexed faces of a beam solid.
func SolidTriangles(s shell.BeamSolid) []Triangle {
	tris := make([]Triangle, len(s.Triangles))
	for i, f := range s.Triangles {
		tris[i] = Triangle{V: [3]r3.Vec{
			s.Vertices[f[0]],
			s.Vertices[f[1]],
			s.Vertices[f[2]],
		}}
	}
	return tris
}

// SceneTriangles assembles the full display scene: inner and outer
// shell surfaces, the flat back wall, and the beam solid.
func SceneTriangles(inner, outer, back shell.SurfaceGrid, beam shell.BeamSolid) []Triangle {
	var tris []Triangle
	tris = append(tris, TriangulateGrid(inner)...)
	tris = append(tris, TriangulateGrid(outer)...)
	tris = append(tris, TriangulateGrid(back)...)
	tris = append(tris, SolidTriangles(beam)...)
	return tris
}
