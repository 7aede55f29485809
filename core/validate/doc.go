// Package validate applies bounded-sample completeness and format checks
// to a decoded record collection.
//
// The checks are deliberately a sampling pass, not an exhaustive scan: the
// first five records are inspected for required-field presence and
// day-number range, and the first three for time format. The result is a
// single descriptive string in the PASSED/FAILED shape the generation
// audit log has always recorded.
package validate
