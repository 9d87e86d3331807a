// Package report exports design summaries as PDF and spreadsheet
// documents.
package report

// Summary collects the inputs and sizing results of one design run,
// already converted to the display unit.
type Summary struct {
	Unit           string
	BeamWidth      float64
	BeamLength     float64
	BeamHeight     float64
	Clearance      float64
	ShellHeight    float64
	ShellThickness float64
	HalfDiagonal   float64
	InnerRadius    float64
	OuterRadius    float64
}

// rows returns the summary as ordered label/value pairs.
func (s Summary) rows() []struct {
	Label string
	Value float64
} {
	return []struct {
		Label string
		Value float64
	}{
		{"Beam width (x)", s.BeamWidth},
		{"Beam length (y)", s.BeamLength},
		{"Beam height (z)", s.BeamHeight},
		{"Clearance", s.Clearance},
		{"Shell height", s.ShellHeight},
		{"Shell thickness", s.ShellThickness},
		{"Half-diagonal footprint", s.HalfDiagonal},
		{"Required inner radius (a)", s.InnerRadius},
		{"Outer radius (b)", s.OuterRadius},
	}
}
