package dataset

import (
	"cmp"
	"fmt"
	"slices"
)

// Sample is a single experimental observation: the concentration of the
// tracked species measured at a given time since the start of the reaction.
type Sample struct {
	// Time is the elapsed time of the measurement. Always >= 0.
	Time float64
	// Conc is the measured concentration at Time.
	Conc float64
}

// String returns a string representation of the sample.
func (s Sample) String() string {
	return fmt.Sprintf("(t=%g, [A]=%g)", s.Time, s.Conc)
}

// SampleSet is an ordered sequence of samples, sorted ascending by time.
//
// Repeated time values are allowed and preserved in input order (stable
// sort, no deduplication). A SampleSet is constructed fresh from each input;
// nothing downstream mutates it.
type SampleSet []Sample

// Times returns the time values of the set, in set order.
func (s SampleSet) Times() []float64 {
	times := make([]float64, len(s))
	for i, sample := range s {
		times[i] = sample.Time
	}

	return times
}

// Concs returns the concentration values of the set, in set order.
func (s SampleSet) Concs() []float64 {
	concs := make([]float64, len(s))
	for i, sample := range s {
		concs[i] = sample.Conc
	}

	return concs
}

// TimeRange returns the first and last time values of the set.
// Both are zero for an empty set.
func (s SampleSet) TimeRange() (start, end float64) {
	if len(s) == 0 {
		return 0, 0
	}

	return s[0].Time, s[len(s)-1].Time
}

// sortByTime orders the set ascending by time. The sort is stable so samples
// sharing a time value keep their input order.
func (s SampleSet) sortByTime() {
	slices.SortStableFunc(s, func(a, b Sample) int {
		return cmp.Compare(a.Time, b.Time)
	})
}
