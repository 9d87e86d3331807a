package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/goshell/internal/shell"
	"github.com/alexiusacademia/goshell/internal/units"
)

// WriteXLSX writes a workbook with a Summary sheet and a Sweep sheet.
func WriteXLSX(path string, s Summary, sweep []shell.SweepPoint, u units.Unit) error {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	header := []interface{}{"Parameter", "Value", "Unit"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range s.rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.Label, r.Value, s.Unit}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Sweep"); err != nil {
		return err
	}
	if err := writeSweepSheet(f, "Sweep", sweep, u); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// WriteSweepXLSX writes a workbook holding only the sweep table.
func WriteSweepXLSX(path string, sweep []shell.SweepPoint, u units.Unit) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Sweep"); err != nil {
		return err
	}
	if err := writeSweepSheet(f, "Sweep", sweep, u); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeSweepSheet(f *excelize.File, sheet string, sweep []shell.SweepPoint, u units.Unit) error {
	header := []interface{}{
		fmt.Sprintf("Beam width (%s)", u.Label()),
		fmt.Sprintf("Inner radius (%s)", u.Label()),
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, p := range sweep {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			units.FromBase(p.Width, u),
			units.FromBase(p.Radius, u),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
