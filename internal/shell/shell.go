// Package shell sizes a half-cylindrical concrete shell around a
// rectangular beam. The shell stands on a flat back wall at x=0; the
// beam sits flush against that wall, centered on the shell axis. The
// governing dimension is the minimum inner radius that clears the
// beam's farthest top corner plus a safety clearance.
package shell

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goshell/internal/units"
)

// Default parameters, in meters.
const (
	DefaultBeamWidth      = 0.15
	DefaultBeamLength     = 0.30
	DefaultBeamHeight     = 0.30
	DefaultClearance      = 0.05
	DefaultShellHeight    = 0.60
	DefaultShellThickness = 0.05
)

// Sweep inspection interval (2 in to 12 in, expressed in meters) and
// sample count. Presentation constants, overridable from the CLI.
const (
	DefaultSweepMin   = 2.0 * units.InchToMeter
	DefaultSweepMax   = 12.0 * units.InchToMeter
	DefaultSweepCount = 50
)

// Surface sampling resolutions.
const (
	DefaultAngularSamples   = 100
	DefaultElevationSamples = 30
)

// Beam is a rectangular beam, dimensions in meters.
type Beam struct {
	Width  float64 // x - extent away from the back wall
	Length float64 // y - extent along the back wall
	Height float64 // z
}

// Shell holds the half-cylinder parameters, in meters.
type Shell struct {
	Clearance float64 // gap between the beam's farthest corner and the inner surface
	Height    float64
	Thickness float64 // radial wall thickness
}

// Result holds the sizing outcome, in meters.
type Result struct {
	HalfDiagonal float64 // back wall to the beam's farthest top corner
	InnerRadius  float64 // minimum inner radius a
	OuterRadius  float64 // b = a + thickness
	Margin       float64 // inner radius minus the beam width
}

// InnerRadius returns the minimum inner radius that clears the
// farthest beam corner plus the clearance:
//
//	a = sqrt(width² + (height/2)²) + clearance
//
// Total over non-negative inputs; width=0, height=0 yields clearance.
func InnerRadius(width, height, clearance float64) float64 {
	return math.Hypot(width, height/2) + clearance
}

// Design validates the parameters and sizes the shell.
func Design(b Beam, s Shell) (*Result, error) {
	if b.Width <= 0 || b.Length <= 0 || b.Height <= 0 {
		return nil, fmt.Errorf("invalid beam dimensions: width=%.3f, length=%.3f, height=%.3f", b.Width, b.Length, b.Height)
	}
	if s.Clearance < 0 {
		return nil, fmt.Errorf("clearance must not be negative: %.3f", s.Clearance)
	}
	if s.Height <= 0 || s.Thickness <= 0 {
		return nil, fmt.Errorf("invalid shell parameters: height=%.3f, thickness=%.3f", s.Height, s.Thickness)
	}

	diag := math.Hypot(b.Width, b.Height/2)
	r := &Result{
		HalfDiagonal: diag,
		InnerRadius:  diag + s.Clearance,
	}
	r.OuterRadius = r.InnerRadius + s.Thickness
	r.Margin = r.InnerRadius - b.Width
	return r, nil
}
