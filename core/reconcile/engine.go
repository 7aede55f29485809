package reconcile

import (
	"sort"
	"strings"

	"timetable-manager/core/decode"
)

// Key returns the composite identity used to align records across the two
// collections. Missing fields substitute as the empty string, so two
// records both missing DayName and Period collide on "-".
func Key(r *decode.Record) string {
	return r.Text("DayName") + "-" + r.Text("Period")
}

// Compare reconciles a candidate record collection against a reference
// collection. It never returns an error; precondition failures (an empty
// side) surface as a failed Result with zero comparisons.
func Compare(reference, candidate []*decode.Record, opts Options) *Result {
	res := &Result{
		ReferenceOnly: []string{},
		CandidateOnly: []string{},
		Common:        []string{},
		Diffs:         []Diff{},
	}
	if len(reference) == 0 || len(candidate) == 0 {
		res.EmptyInput = true
		return res
	}

	maxSamples := opts.MaxDiffSamples
	if maxSamples <= 0 {
		maxSamples = DefaultMaxDiffSamples
	}

	refIndex := buildIndex(reference)
	candIndex := buildIndex(candidate)

	res.ReferenceOnly = keysOnlyIn(refIndex, candIndex)
	res.CandidateOnly = keysOnlyIn(candIndex, refIndex)
	for key := range refIndex {
		if _, ok := candIndex[key]; ok {
			res.Common = append(res.Common, key)
		}
	}
	sort.Strings(res.Common)

	for _, key := range res.Common {
		refGroup := refIndex[key]
		candGroup := candIndex[key]
		if opts.MultiplicityAware {
			compareGroups(res, key, refGroup, candGroup, maxSamples)
		} else {
			// Last write wins: only the final record per key counts.
			compareRecords(res, key, refGroup[len(refGroup)-1], candGroup[len(candGroup)-1], maxSamples)
		}
	}

	return res
}

// buildIndex groups records by key in iteration order.
func buildIndex(records []*decode.Record) map[string][]*decode.Record {
	index := make(map[string][]*decode.Record, len(records))
	for _, r := range records {
		k := Key(r)
		index[k] = append(index[k], r)
	}
	return index
}

// keysOnlyIn returns the sorted keys of a that are absent from b.
func keysOnlyIn(a, b map[string][]*decode.Record) []string {
	only := []string{}
	for key := range a {
		if _, ok := b[key]; !ok {
			only = append(only, key)
		}
	}
	sort.Strings(only)
	return only
}

// compareRecords compares one record pair over ComparedFields and updates
// the match/mismatch tally. A field counts as differing when its presence
// or its typed value disagrees.
func compareRecords(res *Result, key string, ref, cand *decode.Record, maxSamples int) {
	matched := true
	for _, field := range ComparedFields {
		rv, rok := ref.Get(field)
		cv, cok := cand.Get(field)
		if rok == cok && rv == cv {
			continue
		}
		matched = false
		if len(res.Diffs) < maxSamples {
			res.Diffs = append(res.Diffs, Diff{Key: key, Field: field, Reference: rv, Candidate: cv})
		}
	}
	if matched {
		res.Matches++
	} else {
		res.Mismatches++
	}
}

// compareGroups is the multiplicity-aware path: both per-key lists are
// sorted canonically and compared pairwise. Records left unpaired by a
// size difference each count as a mismatch.
func compareGroups(res *Result, key string, refGroup, candGroup []*decode.Record, maxSamples int) {
	sortCanonical(refGroup)
	sortCanonical(candGroup)

	n := len(refGroup)
	if len(candGroup) < n {
		n = len(candGroup)
	}
	for i := 0; i < n; i++ {
		compareRecords(res, key, refGroup[i], candGroup[i], maxSamples)
	}

	if extra := len(refGroup) - len(candGroup); extra != 0 {
		if extra < 0 {
			extra = -extra
		}
		res.Mismatches += extra
		if len(res.Diffs) < maxSamples {
			res.Diffs = append(res.Diffs, Diff{
				Key:       key,
				Field:     "RecordCount",
				Reference: len(refGroup),
				Candidate: len(candGroup),
			})
		}
	}
}

// sortCanonical orders a record group by the joined text of its compared
// fields, giving a stable pairing independent of source order.
func sortCanonical(group []*decode.Record) {
	sort.SliceStable(group, func(i, j int) bool {
		return canonical(group[i]) < canonical(group[j])
	})
}

func canonical(r *decode.Record) string {
	parts := make([]string, 0, len(ComparedFields))
	for _, field := range ComparedFields {
		parts = append(parts, r.Text(field))
	}
	return strings.Join(parts, "|")
}
