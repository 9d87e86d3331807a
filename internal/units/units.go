// Package units converts scalar lengths between the SI base unit
// (meters) and the imperial inch. All geometry in this tool is
// computed in meters; the unit system only governs presentation.
package units

import (
	"fmt"
	"strings"
)

// InchToMeter is the exact inch-to-meter ratio.
const InchToMeter = 0.0254

// Unit identifies a supported length unit.
type Unit string

const (
	// Meter is the base unit.
	Meter Unit = "m"
	// Inch is the alternate (imperial) unit.
	Inch Unit = "in"
)

// Parse maps a unit-system name from the CLI to a Unit.
func Parse(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "si", "meter", "meters":
		return Meter, nil
	case "in", "imperial", "inch", "inches":
		return Inch, nil
	}
	return "", fmt.Errorf("unknown unit system %q (use m or in)", s)
}

// ToBase converts a value expressed in u to meters.
func ToBase(v float64, u Unit) float64 {
	if u == Inch {
		return v * InchToMeter
	}
	return v
}

// FromBase converts a value in meters to u.
func FromBase(v float64, u Unit) float64 {
	if u == Inch {
		return v / InchToMeter
	}
	return v
}

// Label returns the unit symbol for axis titles and summaries.
func (u Unit) Label() string {
	return string(u)
}
