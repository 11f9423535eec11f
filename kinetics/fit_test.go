package kinetics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reactionlab/ratelaw/dataset"
)

// makeSet builds a SampleSet from a generator over the given times.
func makeSet(t *testing.T, times []float64, conc func(t float64) float64) dataset.SampleSet {
	t.Helper()

	concs := make([]float64, len(times))
	for i, ti := range times {
		concs[i] = conc(ti)
	}

	set, err := dataset.FromColumns(times, concs)
	require.NoError(t, err)

	return set
}

var testTimes = []float64{0, 10, 20, 30, 40, 50}

func TestEvaluate_ExactZerothOrder(t *testing.T) {
	// c(t) = 1.0 - 0.01t stays positive over the whole range.
	set := makeSet(t, testTimes, func(ti float64) float64 { return 1.0 - 0.01*ti })

	result, err := Evaluate(set)
	require.NoError(t, err)

	require.Equal(t, Zeroth, result.Best)
	require.InDelta(t, 1.0, result.Fit(Zeroth).RSquared, 1e-9)
	require.InDelta(t, 0.01, result.Fit(Zeroth).RateConstant, 1e-9)
	require.InDelta(t, 1.0, result.Fit(Zeroth).Intercept, 1e-9)
	require.Equal(t, "[A] = 1 - 0.01 t", result.Fit(Zeroth).Equation)

	// The other candidates must still have been fitted.
	require.Greater(t, result.Fit(First).RSquared, 0.0)
	require.Less(t, result.Fit(First).RSquared, 1.0)
	require.Greater(t, result.Fit(Second).RSquared, 0.0)
	require.Less(t, result.Fit(Second).RSquared, 1.0)
}

func TestEvaluate_ExactFirstOrder(t *testing.T) {
	set := makeSet(t, testTimes, func(ti float64) float64 { return math.Exp(-0.01 * ti) })

	result, err := Evaluate(set)
	require.NoError(t, err)

	require.Equal(t, First, result.Best)
	require.InDelta(t, 1.0, result.Fit(First).RSquared, 1e-9)
	require.InDelta(t, 0.01, result.Fit(First).RateConstant, 1e-9)
	require.InDelta(t, 0.0, result.Fit(First).Intercept, 1e-9)
	require.Equal(t, "1/s", result.BestFit().Units())
}

func TestEvaluate_ExactSecondOrder(t *testing.T) {
	// 1/c(t) = 1 + 0.02t
	set := makeSet(t, testTimes, func(ti float64) float64 { return 1 / (1 + 0.02*ti) })

	result, err := Evaluate(set)
	require.NoError(t, err)

	require.Equal(t, Second, result.Best)
	require.InDelta(t, 1.0, result.Fit(Second).RSquared, 1e-9)
	require.InDelta(t, 0.02, result.Fit(Second).RateConstant, 1e-9)
	require.Equal(t, "1/[A] = 1 + 0.02 t", result.Fit(Second).Equation)
}

// TestEvaluate_MeasuredFirstOrderDecay runs a realistic rounded dataset: six
// concentrations read off a first-order decay with k = 0.02.
func TestEvaluate_MeasuredFirstOrderDecay(t *testing.T) {
	times := []float64{0, 10, 20, 30, 40, 50}
	concs := []float64{1.0, 0.819, 0.670, 0.549, 0.449, 0.368}

	set, err := dataset.FromColumns(times, concs)
	require.NoError(t, err)

	result, err := Evaluate(set)
	require.NoError(t, err)

	require.Equal(t, First, result.Best)
	require.Greater(t, result.BestFit().RSquared, 0.9999)
	require.InDelta(t, 0.020, result.BestFit().RateConstant, 2e-4)
	require.Equal(t, 6, result.BestFit().Points)
}

func TestEvaluate_TwoPointsPerfectFitForAllOrders(t *testing.T) {
	set, err := dataset.FromColumns([]float64{0, 10}, []float64{1.0, 0.5})
	require.NoError(t, err)

	result, err := Evaluate(set)
	require.NoError(t, err)

	// A line through two points is a perfect fit in every transform; the
	// degenerate-variance path must not zero any of them.
	for o := Zeroth; o <= Second; o++ {
		require.InDelta(t, 1.0, result.Fit(o).RSquared, 1e-12, "order %s", o)
	}

	// Tie on R²: fixed precedence picks Zeroth.
	require.Equal(t, Zeroth, result.Best)

	require.InDelta(t, 0.05, result.Fit(Zeroth).RateConstant, 1e-12)
	require.InDelta(t, math.Ln2/10, result.Fit(First).RateConstant, 1e-12)
	require.InDelta(t, 0.1, result.Fit(Second).RateConstant, 1e-12)
}

func TestEvaluate_InsufficientData(t *testing.T) {
	_, err := Evaluate(nil)
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = Evaluate(dataset.SampleSet{{Time: 0, Conc: 1.0}})
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestEvaluate_ReorderInvariance(t *testing.T) {
	times := []float64{0, 10, 20, 30, 40, 50}
	concs := []float64{1.0, 0.819, 0.670, 0.549, 0.449, 0.368}

	sorted, err := dataset.FromColumns(times, concs)
	require.NoError(t, err)

	shuffledTimes := []float64{30, 0, 50, 20, 10, 40}
	shuffledConcs := []float64{0.549, 1.0, 0.368, 0.670, 0.819, 0.449}
	shuffled, err := dataset.FromColumns(shuffledTimes, shuffledConcs)
	require.NoError(t, err)

	a, err := Evaluate(sorted)
	require.NoError(t, err)
	b, err := Evaluate(shuffled)
	require.NoError(t, err)

	// Sorting is internal and deterministic, so the results are identical.
	require.Equal(t, a, b)
}

func TestEvaluate_GuardFiltersPerModelOnly(t *testing.T) {
	// The final sample decayed to zero: inadmissible for First and Second,
	// fine for Zeroth.
	times := []float64{0, 10, 20, 30}
	concs := []float64{0.3, 0.2, 0.1, 0.0}

	set, err := dataset.FromColumns(times, concs)
	require.NoError(t, err)

	result, err := Evaluate(set)
	require.NoError(t, err)

	require.Equal(t, 4, result.Fit(Zeroth).Points)
	require.Equal(t, 3, result.Fit(First).Points)
	require.Equal(t, 3, result.Fit(Second).Points)

	// The zeroth data is exactly linear, the filtered sets are not.
	require.Equal(t, Zeroth, result.Best)
	require.InDelta(t, 1.0, result.Fit(Zeroth).RSquared, 1e-9)
}

func TestEvaluate_SentinelWhenTooFewAdmittedSamples(t *testing.T) {
	// Only one positive concentration: First and Second regress over a single
	// sample and must degrade to zero sentinels, not abort the evaluation.
	times := []float64{0, 10, 20}
	concs := []float64{0.5, 0.0, -0.1}

	set, err := dataset.FromColumns(times, concs)
	require.NoError(t, err)

	result, err := Evaluate(set)
	require.NoError(t, err)

	for _, o := range []Order{First, Second} {
		fit := result.Fit(o)
		require.Equal(t, 1, fit.Points, "order %s", o)
		require.Zero(t, fit.RSquared, "order %s", o)
		require.Zero(t, fit.Slope, "order %s", o)
		require.Zero(t, fit.RateConstant, "order %s", o)
	}

	require.Equal(t, Zeroth, result.Best)
}

func TestEvaluate_ZeroTimeVariance(t *testing.T) {
	// All measurements at the same instant: slope is undefined everywhere.
	set, err := dataset.FromColumns([]float64{5, 5, 5}, []float64{1.0, 0.8, 0.6})
	require.NoError(t, err)

	result, err := Evaluate(set)
	require.NoError(t, err)

	for o := Zeroth; o <= Second; o++ {
		require.Zero(t, result.Fit(o).RSquared, "order %s", o)
	}
	require.Equal(t, Zeroth, result.Best)
}

func TestEvaluate_ZeroConcentrationVariance(t *testing.T) {
	// Flat concentration: nothing to explain, R² must be exactly 0, not NaN
	// and not a correlation of rounding noise. Three samples catch the
	// mean-of-equal-values residue that sum-based variance leaves behind.
	set, err := dataset.FromColumns([]float64{0, 10, 20}, []float64{0.7, 0.7, 0.7})
	require.NoError(t, err)

	result, err := Evaluate(set)
	require.NoError(t, err)

	for o := Zeroth; o <= Second; o++ {
		fit := result.Fit(o)
		require.False(t, math.IsNaN(fit.RSquared), "order %s", o)
		require.Zero(t, fit.RSquared, "order %s", o)
		require.Zero(t, fit.Slope, "order %s", o)
		require.InDelta(t, o.Transform(0.7), fit.Intercept, 1e-12, "order %s", o)
	}

	require.Equal(t, Zeroth, result.Best)
}

func TestEvaluate_FlatFilteredSubset(t *testing.T) {
	// The positive concentrations are constant, so First and Second see a
	// flat transformed column after filtering out the zero sample; their R²
	// must be exactly 0 and must not outrank the real Zeroth fit.
	times := []float64{0, 10, 20, 30}
	concs := []float64{0.7, 0.7, 0.7, 0.0}

	set, err := dataset.FromColumns(times, concs)
	require.NoError(t, err)

	result, err := Evaluate(set)
	require.NoError(t, err)

	for _, o := range []Order{First, Second} {
		fit := result.Fit(o)
		require.Equal(t, 3, fit.Points, "order %s", o)
		require.Zero(t, fit.RSquared, "order %s", o)
		require.Zero(t, fit.Slope, "order %s", o)
	}

	require.Equal(t, 4, result.Fit(Zeroth).Points)
	require.Greater(t, result.Fit(Zeroth).RSquared, 0.0)
	require.Equal(t, Zeroth, result.Best)
}

func TestEvaluate_RSquaredWithinBounds(t *testing.T) {
	// Noisy but positive data: every R² must land in [0, 1].
	times := []float64{0, 5, 10, 15, 20, 25, 30}
	concs := []float64{1.0, 0.91, 0.75, 0.71, 0.55, 0.52, 0.40}

	set, err := dataset.FromColumns(times, concs)
	require.NoError(t, err)

	result, err := Evaluate(set)
	require.NoError(t, err)

	for o := Zeroth; o <= Second; o++ {
		r2 := result.Fit(o).RSquared
		require.GreaterOrEqual(t, r2, 0.0, "order %s", o)
		require.LessOrEqual(t, r2, 1.0, "order %s", o)
	}
}

func TestFit_LineAt(t *testing.T) {
	set := makeSet(t, testTimes, func(ti float64) float64 { return 1.0 - 0.01*ti })

	result, err := Evaluate(set)
	require.NoError(t, err)

	fit := result.Fit(Zeroth)
	require.InDelta(t, 1.0, fit.LineAt(0), 1e-9)
	require.InDelta(t, 0.5, fit.LineAt(50), 1e-9)
	// The caller may extend the line beyond the observed range.
	require.InDelta(t, 0.25, fit.LineAt(75), 1e-9)
}

func TestResult_Accessors(t *testing.T) {
	set := makeSet(t, testTimes, func(ti float64) float64 { return math.Exp(-0.01 * ti) })

	result, err := Evaluate(set)
	require.NoError(t, err)

	require.Equal(t, result.Fit(result.Best), result.BestFit())
	require.Equal(t, "ln[A] vs t", result.BestFit().LinearLabel)
	require.Contains(t, result.String(), "Best: first")
	require.Contains(t, result.BestFit().String(), "Order: first")
}
