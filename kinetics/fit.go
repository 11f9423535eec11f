package kinetics

import (
	"errors"
	"fmt"
	"math"

	"github.com/reactionlab/ratelaw/dataset"
)

// ErrInsufficientData is returned by Evaluate when the sample set holds fewer
// than two samples, which is too few for any regression to be meaningful.
var ErrInsufficientData = errors.New("at least 2 samples are required")

// Regression holds the ordinary least-squares fit of the transformed
// concentration against time for one order.
type Regression struct {
	// Slope of the fitted line in the transformed space.
	Slope float64
	// Intercept of the fitted line (transformed concentration at t = 0).
	Intercept float64
	// RSquared is the coefficient of determination of the fit, in [0, 1].
	RSquared float64
}

// Fit is the kinetic interpretation of one order's regression result.
//
// When fewer than two samples pass the order's domain guard, or every
// admitted sample shares one time value, the fit is a zero sentinel. When
// the transformed concentration is flat, the fit is the horizontal line
// through the mean. Either way RSquared is 0, so such a fit never wins
// best-fit selection against a real one.
type Fit struct {
	// Order is the candidate reaction order this fit belongs to.
	Order Order

	Regression

	// RateConstant is the rate constant k derived from the slope with the
	// order's sign convention. Positive for a genuine decay.
	RateConstant float64
	// Equation is the fitted integrated rate equation in human-readable
	// form, e.g. "ln[A] = 0.0012 - 0.02 t".
	Equation string
	// LinearLabel names the linear plot for this order, e.g. "ln[A] vs t".
	LinearLabel string
	// Points is the number of samples that passed the order's domain guard
	// and entered the regression.
	Points int
}

// Units returns the units of the fit's rate constant.
func (f *Fit) Units() string {
	return f.Order.Units()
}

// LineAt evaluates the fitted line in the transformed space at time t. The
// presentation layer uses this to draw the regression line over any display
// range.
func (f *Fit) LineAt(t float64) float64 {
	return f.Intercept + f.Slope*t
}

// String returns a string representation of the fit.
func (f *Fit) String() string {
	return fmt.Sprintf("Fit{Order: %s, k: %.5g %s, R²: %.4f, Equation: %s}",
		f.Order, f.RateConstant, f.Units(), f.RSquared, f.Equation)
}

// Result holds the fits of all three candidate orders and the best-fitting
// order among them.
type Result struct {
	// Fits contains one fit per candidate order, indexed by Order.
	Fits [3]Fit
	// Best is the order with the maximum R². Ties are broken by the fixed
	// precedence Zeroth, then First, then Second.
	Best Order
}

// Fit returns the fit of the given order.
func (r *Result) Fit(o Order) *Fit {
	return &r.Fits[o]
}

// BestFit returns the fit of the best-fitting order.
func (r *Result) BestFit() *Fit {
	return &r.Fits[r.Best]
}

// String returns a string representation of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Best: %s, R²: %.4f, k: %.5g %s}",
		r.Best, r.BestFit().RSquared, r.BestFit().RateConstant, r.BestFit().Units())
}

// Evaluate fits all three candidate orders to the sample set and selects the
// best one by maximum R².
//
// For each order, samples failing the order's domain guard are filtered out
// of that order's regression only; the remaining samples' transformed
// concentrations are regressed against time by ordinary least squares, and R²
// is the squared Pearson correlation between time and the transformed values.
// Degenerate cases (fewer than two admitted samples, zero variance) yield a
// sentinel fit with R² = 0 rather than an error, so the comparison always
// completes over all three orders.
//
// Evaluate is a pure function of the sample set: no state is kept between
// calls and concurrent invocations are independent.
//
// Example:
//
//	result, err := kinetics.Evaluate(set)
//	if err != nil {
//	    return err
//	}
//	best := result.BestFit()
//	fmt.Printf("%s order, k = %.5f %s (R² = %.4f)\n",
//	    best.Order, best.RateConstant, best.Units(), best.RSquared)
func Evaluate(set dataset.SampleSet) (*Result, error) {
	if len(set) < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrInsufficientData, len(set))
	}

	result := &Result{}
	for _, o := range evaluationOrder {
		result.Fits[o] = fitOrder(o, set)
	}

	// Strictly-greater comparison in evaluation order: on an exact tie the
	// earlier order keeps the win.
	best := Zeroth
	for _, o := range evaluationOrder[1:] {
		if result.Fits[o].RSquared > result.Fits[best].RSquared {
			best = o
		}
	}
	result.Best = best

	return result, nil
}

// fitOrder regresses one order's transformed concentration against time over
// the samples admitted by its domain guard.
func fitOrder(o Order, set dataset.SampleSet) Fit {
	fit := Fit{Order: o, LinearLabel: o.LinearLabel()}

	times := make([]float64, 0, len(set))
	ys := make([]float64, 0, len(set))
	var sumT, sumY float64
	minT, maxT := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range set {
		if !o.Admits(s.Conc) {
			continue
		}

		y := o.Transform(s.Conc)
		times = append(times, s.Time)
		ys = append(ys, y)
		sumT += s.Time
		sumY += y
		minT, maxT = math.Min(minT, s.Time), math.Max(maxT, s.Time)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	n := len(times)
	fit.Points = n
	if n < 2 {
		fit.Equation = formatEquation(o, 0, 0)
		return fit
	}

	// Degeneracy is tested on the raw columns, not on computed variances:
	// summing and centering leave floating-point residue on a constant
	// column, while min == max is exact at any scale.

	// Every admitted sample shares one time value; the slope is undefined
	// and the whole fit stays a zero sentinel.
	if minT == maxT {
		fit.Equation = formatEquation(o, 0, 0)
		return fit
	}

	meanT := sumT / float64(n)
	meanY := sumY / float64(n)

	// Flat transformed concentration: the horizontal line through the mean
	// is the exact least-squares fit, and it explains no variance, so R²
	// stays 0 instead of correlating rounding noise.
	if minY == maxY {
		fit.Regression = Regression{Slope: 0, Intercept: meanY, RSquared: 0}
		fit.Equation = formatEquation(o, meanY, 0)
		return fit
	}

	var varT, varY, cov float64
	for i := range times {
		dt := times[i] - meanT
		dy := ys[i] - meanY
		varT += dt * dt
		varY += dy * dy
		cov += dt * dy
	}

	slope := cov / varT
	intercept := meanY - slope*meanT

	// R² is the squared Pearson correlation between t and y.
	r2 := (cov * cov) / (varT * varY)
	r2 = math.Min(math.Max(r2, 0), 1)

	fit.Regression = Regression{Slope: slope, Intercept: intercept, RSquared: r2}
	fit.RateConstant = o.rateFromSlope(slope)
	fit.Equation = formatEquation(o, intercept, slope)

	return fit
}

// formatEquation renders the fitted integrated rate equation, signing the
// slope term from the actual slope: "[A] = 1.002 - 0.0099 t".
func formatEquation(o Order, intercept, slope float64) string {
	sign := "+"
	if slope < 0 {
		sign = "-"
	}

	return fmt.Sprintf("%s = %.4g %s %.4g t", o.Label(), intercept, sign, math.Abs(slope))
}
