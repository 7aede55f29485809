package validate_test

import (
	"fmt"
	"testing"

	"timetable-manager/core/decode"
	"timetable-manager/core/validate"

	"github.com/stretchr/testify/assert"
)

func entry(dayNumber int, dayName, period, start, end, typ string) *decode.Record {
	r := decode.NewRecord()
	r.Set("DayNumber", dayNumber)
	r.Set("DayName", dayName)
	r.Set("Period", period)
	r.Set("StartTime", start)
	r.Set("EndTime", end)
	r.Set("Type", typ)
	return r
}

func validEntries(n int) []*decode.Record {
	var out []*decode.Record
	for i := 0; i < n; i++ {
		out = append(out, entry(1, "MonA", fmt.Sprintf("P%d", i+1), "08:55", "09:45", "T"))
	}
	return out
}

func TestCheck_EmptyCollection(t *testing.T) {
	assert.Equal(t, "FAILED - No data generated", validate.Check(nil, validate.BellTimes()))
}

func TestCheck_Passes(t *testing.T) {
	result := validate.Check(validEntries(12), validate.BellTimes())
	assert.Equal(t, "PASSED - 12 entries validated successfully", result)
}

func TestCheck_MissingField(t *testing.T) {
	records := validEntries(3)
	short := decode.NewRecord()
	short.Set("DayNumber", 1)
	short.Set("DayName", "MonA")
	records[1] = short

	result := validate.Check(records, validate.BellTimes())
	assert.Contains(t, result, "FAILED")
	assert.Contains(t, result, "Missing field 'Period' in entry 2")
}

func TestCheck_BadTimeFormat(t *testing.T) {
	records := validEntries(3)
	records[0] = entry(1, "MonA", "P1", "8:55", "09:45", "T")

	result := validate.Check(records, validate.BellTimes())
	assert.Contains(t, result, "Invalid StartTime format in entry 1: 8:55")
}

func TestCheck_DayNumberOutOfRange(t *testing.T) {
	records := validEntries(3)
	records[2] = entry(11, "FriB", "P1", "08:55", "09:45", "T")

	result := validate.Check(records, validate.BellTimes())
	assert.Contains(t, result, "Invalid day number in entry 3: 11")
}

func TestCheck_SamplingIsBounded(t *testing.T) {
	// Defects past the sample windows are not inspected.
	records := validEntries(10)
	records[7] = entry(99, "Nowhere", "P9", "bad", "also bad", "")
	records[7].Set("StartTime", "not-a-time")

	result := validate.Check(records, validate.BellTimes())
	assert.Contains(t, result, "PASSED")
}

func TestCheck_ReportsFirstThreeIssues(t *testing.T) {
	var records []*decode.Record
	for i := 0; i < 5; i++ {
		records = append(records, decode.NewRecord())
	}

	result := validate.Check(records, validate.BellTimes())
	assert.Contains(t, result, "FAILED")
	// Six missing fields per sampled entry plus range issues, three shown.
	assert.Contains(t, result, "Missing field 'DayNumber' in entry 1")
	assert.Contains(t, result, "Missing field 'Period' in entry 1")
	assert.NotContains(t, result, "entry 2")
}

func TestCheck_NoTimeFieldsConstraint(t *testing.T) {
	r := decode.NewRecord()
	r.Set("Label", "assembly")
	result := validate.Check([]*decode.Record{r}, validate.Constraints{RequiredFields: []string{"Label"}})
	assert.Equal(t, "PASSED - 1 entries validated successfully", result)
}
