package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/goshell/internal/shell"
	"github.com/alexiusacademia/goshell/internal/units"
)

func fixture() (Summary, []shell.SweepPoint) {
	s := Summary{
		Unit:           "m",
		BeamWidth:      0.15,
		BeamLength:     0.30,
		BeamHeight:     0.30,
		Clearance:      0.05,
		ShellHeight:    0.60,
		ShellThickness: 0.05,
		HalfDiagonal:   0.2121,
		InnerRadius:    0.2621,
		OuterRadius:    0.3121,
	}
	sweep := shell.SweepRadiusVsWidth(0.30, 0.05, shell.DefaultSweepMin, shell.DefaultSweepMax, 10)
	return s, sweep
}

func TestWritePDF(t *testing.T) {
	summary, sweep := fixture()
	file := filepath.Join(t.TempDir(), "report.pdf")

	if err := WritePDF(file, summary, sweep, units.Meter); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	info, err := os.Stat(file)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PDF file is empty")
	}
}

func TestWriteXLSX(t *testing.T) {
	summary, sweep := fixture()
	file := filepath.Join(t.TempDir(), "report.xlsx")

	if err := WriteXLSX(file, summary, sweep, units.Meter); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenFile(file)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sweep")
	if err != nil {
		t.Fatalf("read Sweep sheet: %v", err)
	}
	if len(rows) != len(sweep)+1 {
		t.Errorf("Sweep rows = %d, want %d", len(rows), len(sweep)+1)
	}

	summaryRows, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("read Summary sheet: %v", err)
	}
	if len(summaryRows) != 10 {
		t.Errorf("Summary rows = %d, want 10", len(summaryRows))
	}
}

func TestWriteSweepXLSX(t *testing.T) {
	_, sweep := fixture()
	file := filepath.Join(t.TempDir(), "sweep.xlsx")

	if err := WriteSweepXLSX(file, sweep, units.Inch); err != nil {
		t.Fatalf("WriteSweepXLSX: %v", err)
	}

	f, err := excelize.OpenFile(file)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sweep")
	if err != nil {
		t.Fatalf("read Sweep sheet: %v", err)
	}
	if len(rows) != len(sweep)+1 {
		t.Errorf("Sweep rows = %d, want %d", len(rows), len(sweep)+1)
	}
}
