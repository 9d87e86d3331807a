package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/goshell/internal/shell"
	"github.com/alexiusacademia/goshell/internal/units"
)

// WritePDF writes a design summary followed by the width sweep table.
func WritePDF(path string, s Summary, sweep []shell.SweepPoint, u units.Unit) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Half-Cylinder Concrete Shell Design")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Design Parameters")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, r := range s.rows() {
		pdf.Cell(70, 6, r.Label)
		pdf.Cell(0, 6, fmt.Sprintf("%.3f %s", r.Value, s.Unit))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Required inner radius a = %.3f %s", s.InnerRadius, s.Unit))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 5, "The half-cylinder should have at least this inner radius to fit the beam with the specified clearance.", "", "L", false)
	pdf.Ln(6)

	if len(sweep) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Required Radius vs. Beam Width")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(45, 5, fmt.Sprintf("Beam width (%s)", s.Unit))
		pdf.Cell(45, 5, fmt.Sprintf("Inner radius (%s)", s.Unit))
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "", 10)
		for _, p := range sweep {
			pdf.Cell(45, 5, fmt.Sprintf("%.3f", units.FromBase(p.Width, u)))
			pdf.Cell(45, 5, fmt.Sprintf("%.3f", units.FromBase(p.Radius, u)))
			pdf.Ln(5)
		}
	}

	return pdf.OutputFileAndClose(path)
}
