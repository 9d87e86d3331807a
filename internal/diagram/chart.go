package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/goshell/internal/shell"
	"github.com/alexiusacademia/goshell/internal/units"
)

// ExportSweepChart exports the width-to-radius sweep as a line and
// marker chart. The output format follows the file extension
// (.png, .svg, .pdf); anything else falls back to PNG.
func ExportSweepChart(points []shell.SweepPoint, u units.Unit, filename string) error {
	if len(points) == 0 {
		return errors.New("empty sweep")
	}

	p := plot.New()
	p.Title.Text = "Required Half-Cylinder Radius vs. Beam Width"
	p.X.Label.Text = fmt.Sprintf("Beam Width (%s)", u.Label())
	p.Y.Label.Text = fmt.Sprintf("Required Inner Radius (%s)", u.Label())
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{
			X: units.FromBase(pt.Width, u),
			Y: units.FromBase(pt.Radius, u),
		}
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 30, G: 90, B: 180, A: 255}
	p.Add(line)

	markers, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	markers.GlyphStyle.Color = color.RGBA{R: 30, G: 90, B: 180, A: 255}
	markers.GlyphStyle.Radius = vg.Points(2)
	markers.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(markers)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
