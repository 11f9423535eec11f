package kinetics

import (
	"fmt"
	"math"

	"github.com/reactionlab/ratelaw/dataset"
)

// RateBetween computes the rate constant from a single measured interval:
// an initial concentration a0 decaying to at over elapsed time t.
//
// This is the closed-form counterpart of Evaluate for the common lab exercise
// where only two concentrations are known:
//
//	zeroth: k = (a0 - at) / t
//	first:  k = ln(a0/at) / t
//	second: k = (1/at - 1/a0) / t
//
// First and Second orders require both concentrations to be strictly
// positive; every order requires t > 0.
func RateBetween(o Order, a0, at, t float64) (float64, error) {
	if t <= 0 {
		return 0, fmt.Errorf("elapsed time must be positive, got %g", t)
	}

	switch o {
	case Zeroth:
		return (a0 - at) / t, nil
	case First:
		if a0 <= 0 || at <= 0 {
			return 0, fmt.Errorf("%s-order rate requires positive concentrations, got [A]0=%g, [A]t=%g", o, a0, at)
		}

		return math.Log(a0/at) / t, nil
	case Second:
		if a0 <= 0 || at <= 0 {
			return 0, fmt.Errorf("%s-order rate requires positive concentrations, got [A]0=%g, [A]t=%g", o, a0, at)
		}

		return (1/at - 1/a0) / t, nil
	default:
		return 0, fmt.Errorf("unknown order: %d", o)
	}
}

// ConcentrationAt evaluates the order's integrated rate law at time t for a
// reaction with rate constant k and initial concentration a0.
//
// The zeroth-order law goes negative once the reactant is exhausted; it is
// clamped at zero since a negative concentration is not physical.
func (o Order) ConcentrationAt(k, a0, t float64) float64 {
	switch o {
	case Zeroth:
		c := a0 - k*t
		if c < 0 {
			c = 0
		}

		return c
	case First:
		return a0 * math.Exp(-k*t)
	case Second:
		if a0 <= 0 {
			return math.NaN()
		}

		return 1 / (k*t + 1/a0)
	default:
		return math.NaN()
	}
}

// Curve samples the order's decay curve at n evenly spaced times across
// [t0, t1], for rendering the fitted reaction progress. Returns nil when
// n < 2 or the range is inverted.
func Curve(o Order, k, a0, t0, t1 float64, n int) []dataset.Sample {
	if n < 2 || t1 < t0 {
		return nil
	}

	step := (t1 - t0) / float64(n-1)
	points := make([]dataset.Sample, n)
	for i := range points {
		t := t0 + step*float64(i)
		points[i] = dataset.Sample{Time: t, Conc: o.ConcentrationAt(k, a0, t)}
	}

	return points
}

// InitialConc recovers the fitted initial concentration [A]0 by inverting the
// order's transform at the intercept.
func (f *Fit) InitialConc() float64 {
	switch f.Order {
	case First:
		return math.Exp(f.Intercept)
	case Second:
		if f.Intercept == 0 {
			return math.NaN()
		}

		return 1 / f.Intercept
	default:
		return f.Intercept
	}
}

// Curve samples the fit's decay curve across [t0, t1] using its own rate
// constant and fitted initial concentration.
func (f *Fit) Curve(t0, t1 float64, n int) []dataset.Sample {
	return Curve(f.Order, f.RateConstant, f.InitialConc(), t0, t1, n)
}
