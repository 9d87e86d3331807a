package shell

import (
	"math"
	"testing"
)

func TestInnerRadiusKnownValue(t *testing.T) {
	// width=0.15m, height=0.30m, clearance=0.05m:
	// sqrt(0.15² + 0.15²) + 0.05 ≈ 0.2621
	got := InnerRadius(0.15, 0.30, 0.05)
	if got < 0.262 || got > 0.263 {
		t.Errorf("InnerRadius(0.15, 0.30, 0.05) = %v, want ≈0.2621", got)
	}
}

func TestInnerRadiusDegenerate(t *testing.T) {
	for _, c := range []float64{0, 0.01, 0.05, 2.5} {
		if got := InnerRadius(0, 0, c); got != c {
			t.Errorf("InnerRadius(0, 0, %v) = %v, want %v", c, got, c)
		}
	}
}

func TestInnerRadiusMonotonic(t *testing.T) {
	const step = 0.01
	prev := InnerRadius(0.05, 0.30, 0.05)
	for w := 0.05 + step; w < 0.50; w += step {
		r := InnerRadius(w, 0.30, 0.05)
		if r <= prev {
			t.Fatalf("radius not increasing in width at w=%v: %v <= %v", w, r, prev)
		}
		prev = r
	}

	prev = InnerRadius(0.15, 0.05, 0.05)
	for h := 0.05 + step; h < 0.80; h += step {
		r := InnerRadius(0.15, h, 0.05)
		if r <= prev {
			t.Fatalf("radius not increasing in height at h=%v: %v <= %v", h, r, prev)
		}
		prev = r
	}

	prev = InnerRadius(0.15, 0.30, 0)
	for c := step; c < 0.30; c += step {
		r := InnerRadius(0.15, 0.30, c)
		if r <= prev {
			t.Fatalf("radius not increasing in clearance at c=%v: %v <= %v", c, r, prev)
		}
		prev = r
	}
}

func TestDesign(t *testing.T) {
	b := Beam{Width: 0.15, Length: 0.30, Height: 0.30}
	s := Shell{Clearance: 0.05, Height: 0.60, Thickness: 0.05}

	res, err := Design(b, s)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	wantDiag := math.Hypot(0.15, 0.15)
	if math.Abs(res.HalfDiagonal-wantDiag) > 1e-12 {
		t.Errorf("HalfDiagonal = %v, want %v", res.HalfDiagonal, wantDiag)
	}
	if math.Abs(res.InnerRadius-(wantDiag+0.05)) > 1e-12 {
		t.Errorf("InnerRadius = %v, want %v", res.InnerRadius, wantDiag+0.05)
	}
	if math.Abs(res.OuterRadius-(res.InnerRadius+0.05)) > 1e-12 {
		t.Errorf("OuterRadius = %v, want inner+thickness", res.OuterRadius)
	}
	// The shell always clears the beam's own width.
	if res.InnerRadius <= b.Width {
		t.Errorf("inner radius %v does not exceed beam width %v", res.InnerRadius, b.Width)
	}
	if res.Margin <= 0 {
		t.Errorf("margin = %v, want positive", res.Margin)
	}
}

func TestDesignValidation(t *testing.T) {
	good := Beam{Width: 0.15, Length: 0.30, Height: 0.30}
	goodShell := Shell{Clearance: 0.05, Height: 0.60, Thickness: 0.05}

	cases := []struct {
		name string
		b    Beam
		s    Shell
	}{
		{"zero width", Beam{Width: 0, Length: 0.30, Height: 0.30}, goodShell},
		{"negative length", Beam{Width: 0.15, Length: -1, Height: 0.30}, goodShell},
		{"zero height", Beam{Width: 0.15, Length: 0.30, Height: 0}, goodShell},
		{"negative clearance", good, Shell{Clearance: -0.01, Height: 0.60, Thickness: 0.05}},
		{"zero shell height", good, Shell{Clearance: 0.05, Height: 0, Thickness: 0.05}},
		{"zero thickness", good, Shell{Clearance: 0.05, Height: 0.60, Thickness: 0}},
	}
	for _, c := range cases {
		if _, err := Design(c.b, c.s); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}
