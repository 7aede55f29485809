package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"timetable-manager/core/decode"
)

const (
	// fieldSampleSize bounds the presence and day-number checks.
	fieldSampleSize = 5
	// timeSampleSize bounds the time-format checks.
	timeSampleSize = 3
	// maxReportedIssues bounds how many issue messages the result carries.
	maxReportedIssues = 3

	minDayNumber = 1
	maxDayNumber = 10
)

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Constraints names the fields a record collection must carry and which of
// them are format-checked.
type Constraints struct {
	// RequiredFields must be present on every sampled record.
	RequiredFields []string

	// TimeFields must match HH:MM on every sampled record.
	TimeFields []string

	// DayNumberField must hold an integer in [1, 10]. Empty disables the
	// range check.
	DayNumberField string
}

// BellTimes returns the constraint set for bell-times collections.
func BellTimes() Constraints {
	return Constraints{
		RequiredFields: []string{"DayNumber", "DayName", "Period", "StartTime", "EndTime", "Type"},
		TimeFields:     []string{"StartTime", "EndTime"},
		DayNumberField: "DayNumber",
	}
}

// Check validates a record collection against the constraints and returns
// a single descriptive result string. It never fails the caller: every
// outcome, including an empty collection, is reported as text.
func Check(records []*decode.Record, c Constraints) string {
	if len(records) == 0 {
		return "FAILED - No data generated"
	}

	var issues []string

	for i, rec := range sample(records, fieldSampleSize) {
		for _, field := range c.RequiredFields {
			if _, ok := rec.Get(field); !ok {
				issues = append(issues, fmt.Sprintf("Missing field '%s' in entry %d", field, i+1))
			}
		}
	}

	for i, rec := range sample(records, timeSampleSize) {
		for _, field := range c.TimeFields {
			if v := rec.Text(field); !timePattern.MatchString(v) {
				issues = append(issues, fmt.Sprintf("Invalid %s format in entry %d: %s", field, i+1, v))
			}
		}
	}

	if c.DayNumberField != "" {
		for i, rec := range sample(records, fieldSampleSize) {
			v, _ := rec.Get(c.DayNumberField)
			n := toInt(v)
			if n < minDayNumber || n > maxDayNumber {
				issues = append(issues, fmt.Sprintf("Invalid day number in entry %d: %v", i+1, n))
			}
		}
	}

	if len(issues) > 0 {
		reported := issues
		if len(reported) > maxReportedIssues {
			reported = reported[:maxReportedIssues]
		}
		return fmt.Sprintf("FAILED - %d issues: %s", len(issues), strings.Join(reported, ", "))
	}
	return fmt.Sprintf("PASSED - %d entries validated successfully", len(records))
}

func sample(records []*decode.Record, n int) []*decode.Record {
	if len(records) < n {
		return records
	}
	return records[:n]
}

// toInt folds the value types a record can hold down to an int; anything
// non-numeric becomes 0 and fails the range check.
func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case string:
		i, _ := strconv.Atoi(n)
		return i
	default:
		return 0
	}
}
