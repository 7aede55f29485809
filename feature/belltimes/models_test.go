package belltimes_test

import (
	"testing"

	"timetable-manager/core/decode"
	"timetable-manager/feature/belltimes"

	"github.com/stretchr/testify/assert"
)

func TestDayNumberFor(t *testing.T) {
	tests := []struct {
		day  string
		want int
	}{
		{"MonA", 1}, {"TueA", 2}, {"WedA", 3}, {"ThuA", 4}, {"FriA", 5},
		{"MonB", 6}, {"TueB", 7}, {"WedB", 8}, {"ThuB", 9}, {"FriB", 10},
		{"Unknown", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, belltimes.DayNumberFor(tt.day), tt.day)
	}
}

func TestClassifyPeriod(t *testing.T) {
	tests := []struct {
		name   string
		period string
		day    string
		want   string
	}{
		{"Regular teaching period", "P1", "MonA", belltimes.TypeTeaching},
		{"Assembly slot", "P0", "MonA", belltimes.TypeOther},
		{"Recess", "Recess", "WedB", belltimes.TypeRecess},
		{"Lunch", "Lunch 1", "WedB", belltimes.TypeRecess},
		{"P7 any day", "P7", "FriA", belltimes.TypeOther},
		{"P6 on Tuesday", "P6", "TueA", belltimes.TypeOther},
		{"P6 on Tuesday B", "P6", "TueB", belltimes.TypeOther},
		{"P6 elsewhere", "P6", "MonA", belltimes.TypeTeaching},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, belltimes.ClassifyPeriod(tt.period, tt.day))
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	assert.Equal(t, "09:05", belltimes.NormalizeTime("09:05:00"))
	assert.Equal(t, "09:05", belltimes.NormalizeTime("09:05"))
	assert.Equal(t, "whenever", belltimes.NormalizeTime("whenever"))
}

func TestNormalize_FillsDerivableFields(t *testing.T) {
	r := decode.NewRecord()
	r.Set("DayName", "TueA")
	r.Set("Period", "P6")
	r.Set("StartTime", "12:10:00")
	r.Set("EndTime", "13:00:00")

	belltimes.Normalize([]*decode.Record{r})

	assert.Equal(t, 2, r.Int("DayNumber"))
	assert.Equal(t, belltimes.TypeOther, r.Text("Type"))
	assert.Equal(t, "12:10", r.Text("StartTime"))
	assert.Equal(t, "13:00", r.Text("EndTime"))
}

func TestNormalize_LeavesExistingValues(t *testing.T) {
	r := decode.NewRecord()
	r.Set("DayNumber", 9)
	r.Set("DayName", "TueA")
	r.Set("Period", "P6")
	r.Set("Type", belltimes.TypeTeaching)

	belltimes.Normalize([]*decode.Record{r})

	assert.Equal(t, 9, r.Int("DayNumber"))
	assert.Equal(t, belltimes.TypeTeaching, r.Text("Type"))
}

func TestRecordRoundTrip(t *testing.T) {
	b := belltimes.BellTime{
		DayNumber: 2, DayName: "TueA", Period: "P6",
		StartTime: "12:10", EndTime: "13:00", Type: "O",
	}
	assert.Equal(t, b, belltimes.FromRecord(b.Record()))
}
