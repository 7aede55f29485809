// Package reconcile aligns two independently produced record collections
// and reports field-level agreement.
//
// The engine keys records by the composite DayName-Period identity, builds
// a key index per side, and partitions the union of keys into
// reference-only, candidate-only, and common sets. Records sharing a
// common key are compared over a fixed field set, value for value
// including type (int 5 never equals string "5").
//
// # Result semantics
//
//   - Either side empty short-circuits to a failed result with zero
//     comparisons attempted.
//   - Per-field diff samples are capped (DefaultMaxDiffSamples); past the
//     cap only the mismatch counter advances.
//   - The match rate is matches/(matches+mismatches) and is undefined
//     ("N/A") when no comparisons happened.
//   - Overall success is a majority heuristic: matches > mismatches. It is
//     not strict equality of the two collections.
//
// # Duplicate keys
//
// By default duplicate keys within one side collapse last-write-wins,
// matching the historical behavior of the pipeline. Options.
// MultiplicityAware switches to per-key list comparison for sources that
// do not guarantee key uniqueness.
package reconcile
