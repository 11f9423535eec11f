// Package kinetics infers the kinetic order of a chemical reaction from
// time/concentration data and reports the corresponding rate constant.
//
// The engine fits the three canonical integer orders as candidate linear
// models. Each order linearizes its integrated rate equation with a known
// transform of the concentration axis:
//
//   - Zeroth:  [A]  = [A]0 - kt    (transform: identity)
//   - First:   ln[A] = ln[A]0 - kt (transform: natural log, requires [A] > 0)
//   - Second:  1/[A] = 1/[A]0 + kt (transform: reciprocal, requires [A] > 0)
//
// For each candidate, samples outside the transform's domain are filtered
// out, the transformed concentrations are regressed against time by ordinary
// least squares, and the fit quality is scored by R². The order with the
// highest R² wins; on ties the fixed precedence zeroth, first, second applies.
//
// # Basic Usage
//
//	set, _ := dataset.Parse(rawText)
//	result, err := kinetics.Evaluate(set)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	best := result.BestFit()
//	fmt.Printf("reaction is %s order: k = %.5f %s (R² = %.4f)\n",
//	    best.Order, best.RateConstant, best.Units(), best.RSquared)
//
// # Model Comparison
//
// All three candidate fits are always produced, so the caller can render a
// comparison table or the three linearized scatter plots:
//
//	for o := kinetics.Zeroth; o <= kinetics.Second; o++ {
//	    fit := result.Fit(o)
//	    fmt.Printf("%-12s R²=%.4f  %s\n", fit.LinearLabel, fit.RSquared, fit.Equation)
//	}
//
// A fit whose admitted samples are too few or degenerate carries a sentinel
// R² of 0 instead of failing the whole evaluation.
//
// # Single-Interval Calculations
//
// When only an initial and a final concentration are known, RateBetween
// computes k in closed form, and Order.ConcentrationAt / Curve evaluate the
// integrated rate law for plotting the reaction progress.
//
// Everything in this package is a pure function of its inputs: no state is
// shared between calls and results for rapid successive inputs are
// independently correct.
package kinetics
