package reconcile

import "fmt"

// ComparedFields is the fixed field set checked for every common key.
var ComparedFields = []string{"DayNumber", "DayName", "Period", "StartTime", "EndTime", "Type"}

// DefaultMaxDiffSamples caps how many per-field diffs a result retains.
const DefaultMaxDiffSamples = 10

// Options controls comparison behavior.
type Options struct {
	// MultiplicityAware compares sorted per-key record lists instead of
	// collapsing duplicate keys last-write-wins.
	MultiplicityAware bool

	// MaxDiffSamples overrides the retained diff sample cap.
	// Zero means DefaultMaxDiffSamples.
	MaxDiffSamples int
}

// Diff describes one field disagreement between two records sharing a key.
type Diff struct {
	// Key is the composite entity key the records share.
	Key string `json:"key"`

	// Field is the differing field name.
	Field string `json:"field"`

	// Reference is the value on the reference side (nil when absent).
	Reference any `json:"reference"`

	// Candidate is the value on the candidate side (nil when absent).
	Candidate any `json:"candidate"`
}

func (d Diff) String() string {
	return fmt.Sprintf("%s: %s ref=%v cand=%v", d.Key, d.Field, d.Reference, d.Candidate)
}

// Result is the reconciliation report for one comparison run.
type Result struct {
	// ReferenceOnly lists keys present only on the reference side, sorted.
	ReferenceOnly []string `json:"reference_only_keys"`

	// CandidateOnly lists keys present only on the candidate side, sorted.
	CandidateOnly []string `json:"candidate_only_keys"`

	// Common lists keys present on both sides, sorted.
	Common []string `json:"common_keys"`

	// Matches counts common keys whose compared fields all agree.
	Matches int `json:"matches"`

	// Mismatches counts common keys with at least one field disagreement.
	Mismatches int `json:"mismatches"`

	// Diffs holds up to MaxDiffSamples per-field disagreement samples.
	Diffs []Diff `json:"diffs"`

	// EmptyInput marks the short-circuit taken when either input
	// collection was empty; no comparisons were attempted.
	EmptyInput bool `json:"empty_input"`
}

// MatchRate returns matches/(matches+mismatches). The second return value
// is false when no comparisons happened and the rate is undefined.
func (r *Result) MatchRate() (float64, bool) {
	total := r.Matches + r.Mismatches
	if total == 0 {
		return 0, false
	}
	return float64(r.Matches) / float64(total), true
}

// MatchRateString renders the match rate for reports, "N/A" when undefined.
func (r *Result) MatchRateString() string {
	rate, ok := r.MatchRate()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", rate)
}

// Success reports whether the comparison passed overall: a majority of
// compared keys matched. An empty input always fails.
func (r *Result) Success() bool {
	return !r.EmptyInput && r.Matches > r.Mismatches
}
