package kinetics

import (
	"math"
	"strings"
)

// Order represents one of the three canonical integer reaction orders.
//
// Each order defines the linearizing transform of the concentration axis, the
// domain guard a sample must pass to enter that order's regression, and the
// sign convention relating the fitted slope to the rate constant.
type Order uint8

const (
	// Zeroth represents a zeroth-order reaction: [A] = [A]0 - kt.
	Zeroth Order = iota
	// First represents a first-order reaction: ln[A] = ln[A]0 - kt.
	First
	// Second represents a second-order reaction: 1/[A] = 1/[A]0 + kt.
	Second
)

// evaluationOrder fixes the precedence used by best-fit selection: when two
// orders tie on R², the earlier one wins.
var evaluationOrder = [3]Order{Zeroth, First, Second}

// orderNames maps Order to their string representations.
var orderNames = map[Order]string{
	Zeroth: "zeroth",
	First:  "first",
	Second: "second",
}

// String returns the string representation of the order.
func (o Order) String() string {
	if name, exists := orderNames[o]; exists {
		return name
	}

	return "unknown"
}

// orderFromString maps string names to Order.
var orderFromString = map[string]Order{
	"zeroth": Zeroth,
	"first":  First,
	"second": Second,
}

// OrderFromString returns the Order for a given name (case-insensitive).
// The second return value reports whether the name was recognized.
func OrderFromString(name string) (Order, bool) {
	o, exists := orderFromString[strings.ToLower(name)]

	return o, exists
}

// Label returns the transformed dependent axis label for the order.
func (o Order) Label() string {
	switch o {
	case Zeroth:
		return "[A]"
	case First:
		return "ln[A]"
	case Second:
		return "1/[A]"
	default:
		return "?"
	}
}

// LinearLabel describes the linear plot in which this order's data falls on
// a straight line, e.g. "ln[A] vs t" for a first-order reaction.
func (o Order) LinearLabel() string {
	return o.Label() + " vs t"
}

// Units returns the units of the rate constant for the order, with
// concentrations in M and time in seconds.
func (o Order) Units() string {
	switch o {
	case Zeroth:
		return "M/s"
	case First:
		return "1/s"
	case Second:
		return "1/(M·s)"
	default:
		return "?"
	}
}

// Transform applies the order's linearizing transform to a concentration.
// Callers must check Admits first; the transform of an inadmissible value is
// not meaningful.
func (o Order) Transform(conc float64) float64 {
	switch o {
	case First:
		return math.Log(conc)
	case Second:
		return 1 / conc
	default:
		return conc
	}
}

// Admits reports whether a concentration is in the order's transform domain.
// All orders require a finite value; First and Second additionally require a
// strictly positive one. Samples failing the guard are excluded from that
// order's regression only, never from the other orders'.
func (o Order) Admits(conc float64) bool {
	if math.IsNaN(conc) || math.IsInf(conc, 0) {
		return false
	}

	return o == Zeroth || conc > 0
}

// rateFromSlope converts a fitted slope into a rate constant.
//
// Zeroth and First orders negate the slope: their transformed concentration
// decreases with time for a genuine decay, so the raw slope is negative and
// k is reported positive. The Second-order transform increases with time, so
// its slope is the rate constant directly.
func (o Order) rateFromSlope(slope float64) float64 {
	if o == Second {
		return slope
	}

	return -slope
}
