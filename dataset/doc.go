// Package dataset normalizes raw experimental input into clean, time-ordered
// sample sets for kinetic analysis.
//
// Raw data arrives as pasted text, pre-split string pairs, numeric columns,
// or (possibly compressed) files; every entry point produces the same
// contract: a SampleSet sorted ascending by time whose values are all finite
// with non-negative times, or a *ParseError identifying the first defective
// row. A single bad row rejects the whole batch because it almost always
// signals a structural problem with the input (wrong delimiter, wrong column
// count) that the user should fix wholesale.
//
// # Entry Points
//
//   - Parse: raw line-oriented text with configurable delimiter/comment/header
//   - FromPairs: (time, concentration) string pairs from a table widget
//   - FromColumns: parallel numeric columns
//   - ReadFile: dataset files, transparently decompressed by extension
//
// All entry points are pure: no state is kept between calls and the returned
// SampleSet is freshly allocated.
package dataset
