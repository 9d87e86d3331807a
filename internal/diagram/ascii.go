// Package diagram renders terminal and image views of a shell design.
package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/goshell/internal/shell"
	"github.com/alexiusacademia/goshell/internal/units"
)

// SweepASCII renders the width-to-radius sweep as a terminal chart.
func SweepASCII(points []shell.SweepPoint, u units.Unit) string {
	if len(points) == 0 {
		return ""
	}
	radii := make([]float64, len(points))
	for i, p := range points {
		radii[i] = units.FromBase(p.Radius, u)
	}
	caption := fmt.Sprintf("Required inner radius (%s) for beam widths %.2f to %.2f %s",
		u.Label(),
		units.FromBase(points[0].Width, u),
		units.FromBase(points[len(points)-1].Width, u),
		u.Label())
	return asciigraph.Plot(radii,
		asciigraph.Height(12),
		asciigraph.Width(64),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
	)
}

// DrawPlanSketch draws a plan view of the shell: back wall on the
// left, wall ring between inner and outer radius, beam footprint
// hatched inside.
func DrawPlanSketch(b shell.Beam, s shell.Shell, res *shell.Result) string {
	const (
		rows = 24 // spans the outer diameter in y
		cols = 48 // spans the outer radius in x
	)

	outer := res.OuterRadius
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  PLAN VIEW (back wall at left, beam axis at +x)\n")
	sb.WriteString("  ──────────────────────────────────────────────\n")

	for i := 0; i < rows; i++ {
		y := outer - 2*outer*(float64(i)+0.5)/float64(rows)
		sb.WriteString("  ")
		for j := 0; j < cols; j++ {
			x := outer * (float64(j) + 0.5) / float64(cols)
			d := math.Hypot(x, y)
			switch {
			case x <= b.Width && math.Abs(y) <= b.Length/2:
				sb.WriteRune('▓')
			case d >= res.InnerRadius && d <= outer:
				sb.WriteRune('░')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Shell wall\n")
	sb.WriteString("  ▓▓▓ = Beam footprint\n")
	sb.WriteString(fmt.Sprintf("  Inner radius a = %.3f m, outer radius b = %.3f m\n", res.InnerRadius, res.OuterRadius))
	sb.WriteString(fmt.Sprintf("  Clearance to farthest beam corner = %.3f m\n", s.Clearance))

	return sb.String()
}
