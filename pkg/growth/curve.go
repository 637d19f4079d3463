// Package growth models the phased client growth-rate curve used by the
// projection engine: three piecewise-linear ramp phases followed by a
// plateau.
package growth

// Phase defines one ramp segment of the curve. Month boundaries are 1-based
// and half-open: the phase interpolates over [StartMonth, EndMonth) and
// carries EndRate flat until the next phase begins.
type Phase struct {
	StartMonth int
	EndMonth   int
	StartRate  float64
	EndRate    float64
}

// Curve is a three-phase growth ramp with a terminal plateau. Rates are
// percentages per period.
type Curve struct {
	Phase1      Phase
	Phase2      Phase
	Phase3      Phase
	PlateauRate float64
}

// Rate returns the growth rate (%) for the 1-based period index.
//
// Evaluation order:
//  1. before phase 1 starts: phase 1's start rate
//  2. inside a phase: linear interpolation across its span
//  3. between phases: the previous phase's end rate, carried flat
//  4. at or after phase 3's end: the plateau rate
//
// A zero-span phase returns its start rate rather than dividing by zero.
func (c Curve) Rate(periodIndex int) float64 {
	i := periodIndex

	if i < c.Phase1.StartMonth {
		return c.Phase1.StartRate
	}
	if i < c.Phase1.EndMonth {
		return c.Phase1.interpolate(i)
	}
	if i < c.Phase2.StartMonth {
		return c.Phase1.EndRate
	}
	if i < c.Phase2.EndMonth {
		return c.Phase2.interpolate(i)
	}
	if i < c.Phase3.StartMonth {
		return c.Phase2.EndRate
	}
	if i < c.Phase3.EndMonth {
		return c.Phase3.interpolate(i)
	}
	return c.PlateauRate
}

func (p Phase) interpolate(periodIndex int) float64 {
	span := float64(p.EndMonth - p.StartMonth)
	if span <= 0 {
		return p.StartRate
	}
	frac := float64(periodIndex-p.StartMonth) / span
	return p.StartRate + frac*(p.EndRate-p.StartRate)
}
