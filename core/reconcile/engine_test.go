package reconcile_test

import (
	"fmt"
	"testing"

	"timetable-manager/core/decode"
	"timetable-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(dayNumber int, dayName, period, start, end, typ string) *decode.Record {
	r := decode.NewRecord()
	r.Set("DayNumber", dayNumber)
	r.Set("DayName", dayName)
	r.Set("Period", period)
	r.Set("StartTime", start)
	r.Set("EndTime", end)
	r.Set("Type", typ)
	return r
}

func TestCompare_IdenticalRecords(t *testing.T) {
	ref := []*decode.Record{record(2, "TueA", "P6", "12:10", "13:00", "O")}
	cand := []*decode.Record{record(2, "TueA", "P6", "12:10", "13:00", "O")}

	res := reconcile.Compare(ref, cand, reconcile.Options{})

	assert.Equal(t, 1, res.Matches)
	assert.Equal(t, 0, res.Mismatches)
	assert.Equal(t, []string{"TueA-P6"}, res.Common)
	assert.Empty(t, res.ReferenceOnly)
	assert.Empty(t, res.CandidateOnly)
	rate, ok := res.MatchRate()
	require.True(t, ok)
	assert.Equal(t, 1.0, rate)
	assert.True(t, res.Success())
}

func TestCompare_DisjointKeys(t *testing.T) {
	ref := []*decode.Record{record(2, "TueA", "P6", "12:10", "13:00", "O")}
	cand := []*decode.Record{record(2, "TueA", "P7", "13:05", "14:00", "O")}

	res := reconcile.Compare(ref, cand, reconcile.Options{})

	assert.Equal(t, []string{"TueA-P6"}, res.ReferenceOnly)
	assert.Equal(t, []string{"TueA-P7"}, res.CandidateOnly)
	assert.Empty(t, res.Common)
	assert.Equal(t, 0, res.Matches)
	assert.Equal(t, 0, res.Mismatches)
	assert.Equal(t, "N/A", res.MatchRateString())
	assert.False(t, res.Success())
}

func TestCompare_FieldMismatch(t *testing.T) {
	ref := []*decode.Record{record(2, "TueA", "P6", "12:10", "13:00", "O")}
	cand := []*decode.Record{record(2, "TueA", "P6", "12:10", "13:05", "O")}

	res := reconcile.Compare(ref, cand, reconcile.Options{})

	assert.Equal(t, 0, res.Matches)
	assert.Equal(t, 1, res.Mismatches)
	require.Len(t, res.Diffs, 1)
	d := res.Diffs[0]
	assert.Equal(t, "TueA-P6", d.Key)
	assert.Equal(t, "EndTime", d.Field)
	assert.Contains(t, d.String(), "EndTime")
	assert.Contains(t, d.String(), "13:00")
	assert.Contains(t, d.String(), "13:05")
}

func TestCompare_IntAndStringAreDistinct(t *testing.T) {
	ref := []*decode.Record{record(5, "FriA", "P1", "08:55", "09:45", "T")}

	c := record(0, "FriA", "P1", "08:55", "09:45", "T")
	c.Set("DayNumber", "5")
	cand := []*decode.Record{c}

	res := reconcile.Compare(ref, cand, reconcile.Options{})

	assert.Equal(t, 1, res.Mismatches)
	require.Len(t, res.Diffs, 1)
	assert.Equal(t, "DayNumber", res.Diffs[0].Field)
}

func TestCompare_EmptyInputShortCircuits(t *testing.T) {
	one := []*decode.Record{record(1, "MonA", "P1", "08:55", "09:45", "T")}

	for name, pair := range map[string][2][]*decode.Record{
		"empty reference": {nil, one},
		"empty candidate": {one, nil},
		"both empty":      {nil, nil},
	} {
		t.Run(name, func(t *testing.T) {
			res := reconcile.Compare(pair[0], pair[1], reconcile.Options{})
			assert.True(t, res.EmptyInput)
			assert.False(t, res.Success())
			assert.Equal(t, 0, res.Matches+res.Mismatches)
			assert.Equal(t, "N/A", res.MatchRateString())
		})
	}
}

func TestCompare_KeysPartitionUnion(t *testing.T) {
	var ref, cand []*decode.Record
	for i := 0; i < 8; i++ {
		ref = append(ref, record(1, "MonA", fmt.Sprintf("P%d", i), "08:00", "09:00", "T"))
	}
	for i := 4; i < 12; i++ {
		cand = append(cand, record(1, "MonA", fmt.Sprintf("P%d", i), "08:00", "09:00", "T"))
	}

	res := reconcile.Compare(ref, cand, reconcile.Options{})

	seen := map[string]int{}
	for _, k := range res.ReferenceOnly {
		seen[k]++
	}
	for _, k := range res.CandidateOnly {
		seen[k]++
	}
	for _, k := range res.Common {
		seen[k]++
	}

	// Every key of either side appears in exactly one partition.
	assert.Len(t, seen, 12)
	for k, n := range seen {
		assert.Equal(t, 1, n, "key %s", k)
	}
	assert.Len(t, res.Common, 4)
}

func TestCompare_DiffSamplesCapped(t *testing.T) {
	var ref, cand []*decode.Record
	for i := 0; i < 15; i++ {
		period := fmt.Sprintf("P%d", i)
		ref = append(ref, record(1, "MonA", period, "08:00", "09:00", "T"))
		cand = append(cand, record(1, "MonA", period, "08:00", "09:30", "T"))
	}

	res := reconcile.Compare(ref, cand, reconcile.Options{})

	assert.Equal(t, 15, res.Mismatches)
	assert.Len(t, res.Diffs, reconcile.DefaultMaxDiffSamples)
}

func TestCompare_MissingKeyFieldsCollideOnDash(t *testing.T) {
	bare := decode.NewRecord()
	bare.Set("StartTime", "08:00")
	other := decode.NewRecord()
	other.Set("StartTime", "09:00")

	res := reconcile.Compare([]*decode.Record{bare}, []*decode.Record{other}, reconcile.Options{})

	assert.Equal(t, []string{"-"}, res.Common)
}

func TestCompare_DuplicateKeysLastWriteWins(t *testing.T) {
	ref := []*decode.Record{
		record(1, "MonA", "P1", "08:00", "09:00", "T"),
		record(1, "MonA", "P1", "08:55", "09:45", "T"),
	}
	cand := []*decode.Record{record(1, "MonA", "P1", "08:55", "09:45", "T")}

	res := reconcile.Compare(ref, cand, reconcile.Options{})

	// Only the later reference record is compared.
	assert.Equal(t, 1, res.Matches)
	assert.Equal(t, 0, res.Mismatches)
}

func TestCompare_MultiplicityAware(t *testing.T) {
	t.Run("Pairs duplicates regardless of order", func(t *testing.T) {
		ref := []*decode.Record{
			record(1, "MonA", "P1", "08:00", "09:00", "T"),
			record(1, "MonA", "P1", "08:55", "09:45", "T"),
		}
		cand := []*decode.Record{
			record(1, "MonA", "P1", "08:55", "09:45", "T"),
			record(1, "MonA", "P1", "08:00", "09:00", "T"),
		}

		res := reconcile.Compare(ref, cand, reconcile.Options{MultiplicityAware: true})
		assert.Equal(t, 2, res.Matches)
		assert.Equal(t, 0, res.Mismatches)
	})

	t.Run("Unpaired records count as mismatches", func(t *testing.T) {
		ref := []*decode.Record{
			record(1, "MonA", "P1", "08:00", "09:00", "T"),
			record(1, "MonA", "P1", "08:55", "09:45", "T"),
		}
		cand := []*decode.Record{record(1, "MonA", "P1", "08:00", "09:00", "T")}

		res := reconcile.Compare(ref, cand, reconcile.Options{MultiplicityAware: true})
		assert.Equal(t, 1, res.Matches)
		assert.Equal(t, 1, res.Mismatches)
		require.NotEmpty(t, res.Diffs)
		assert.Equal(t, "RecordCount", res.Diffs[len(res.Diffs)-1].Field)
	})
}
