package growth

import (
	"math"
	"testing"
)

func defaultCurve() Curve {
	return Curve{
		Phase1:      Phase{StartMonth: 1, EndMonth: 3, StartRate: 3.0, EndRate: 5.0},
		Phase2:      Phase{StartMonth: 4, EndMonth: 8, StartRate: 6.0, EndRate: 15.0},
		Phase3:      Phase{StartMonth: 9, EndMonth: 12, StartRate: 16.0, EndRate: 25.0},
		PlateauRate: 10.0,
	}
}

func TestRate(t *testing.T) {
	curve := defaultCurve()

	tests := []struct {
		name     string
		period   int
		expected float64
	}{
		{name: "Before phase 1", period: 0, expected: 3.0},
		{name: "Phase 1 start", period: 1, expected: 3.0},
		{name: "Phase 1 midpoint", period: 2, expected: 4.0},
		{name: "Phase 1 end carries end rate", period: 3, expected: 5.0},
		{name: "Phase 2 start", period: 4, expected: 6.0},
		{name: "Phase 2 interpolation", period: 6, expected: 10.5},
		{name: "Phase 2 end carries end rate", period: 8, expected: 15.0},
		{name: "Phase 3 start", period: 9, expected: 16.0},
		{name: "Phase 3 interpolation", period: 10, expected: 19.0},
		{name: "Phase 3 end hits plateau", period: 12, expected: 10.0},
		{name: "Well past phase 3", period: 60, expected: 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := curve.Rate(tt.period)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Rate(%d) = %v, expected %v", tt.period, got, tt.expected)
			}
		})
	}
}

// Phase boundaries are half-open: exactly at a phase's end month the curve
// must already produce the next segment's value, never the interpolation.
func TestRateBoundaryExactness(t *testing.T) {
	curve := Curve{
		Phase1:      Phase{StartMonth: 1, EndMonth: 6, StartRate: 18.0, EndRate: 22.0},
		Phase2:      Phase{StartMonth: 7, EndMonth: 12, StartRate: 22.0, EndRate: 28.0},
		Phase3:      Phase{StartMonth: 13, EndMonth: 18, StartRate: 28.0, EndRate: 30.0},
		PlateauRate: 8.0,
	}

	// Period 6 is phase1's end boundary but not yet phase2: flat carry of 22.
	if got := curve.Rate(6); got != 22.0 {
		t.Errorf("Rate(6) = %v, expected flat carry of 22.0", got)
	}
	// Period 7 is phase2's own start.
	if got := curve.Rate(7); got != 22.0 {
		t.Errorf("Rate(7) = %v, expected phase 2 start of 22.0", got)
	}
	// Period 5 is still interpolating inside phase 1.
	if got := curve.Rate(5); math.Abs(got-21.2) > 1e-9 {
		t.Errorf("Rate(5) = %v, expected interpolated 21.2", got)
	}
}

func TestRateDegeneratePhase(t *testing.T) {
	curve := Curve{
		Phase1:      Phase{StartMonth: 3, EndMonth: 3, StartRate: 5.0, EndRate: 9.0},
		Phase2:      Phase{StartMonth: 5, EndMonth: 7, StartRate: 10.0, EndRate: 12.0},
		Phase3:      Phase{StartMonth: 8, EndMonth: 10, StartRate: 13.0, EndRate: 14.0},
		PlateauRate: 2.0,
	}

	// Zero-span phase 1: period 3 falls through to the flat carry of its end
	// rate without dividing by zero.
	if got := curve.Rate(3); got != 9.0 {
		t.Errorf("Rate(3) = %v, expected 9.0 for zero-span phase", got)
	}
}
