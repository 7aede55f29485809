package belltimes

import (
	"strings"

	"timetable-manager/core/decode"
)

// Period type codes used in the export.
const (
	TypeTeaching = "T"
	TypeOther    = "O"
	TypeRecess   = "R"
)

// BellTime is one timetable period on one cycle day.
type BellTime struct {
	DayNumber int    `json:"DayNumber"`
	DayName   string `json:"DayName"`
	Period    string `json:"Period"`
	StartTime string `json:"StartTime"`
	EndTime   string `json:"EndTime"`
	Type      string `json:"Type"`
}

// dayNumbers maps cycle day names onto the fortnightly 1-10 numbering the
// kiosk expects.
var dayNumbers = map[string]int{
	"MonA": 1, "MonB": 6,
	"TueA": 2, "TueB": 7,
	"WedA": 3, "WedB": 8,
	"ThuA": 4, "ThuB": 9,
	"FriA": 5, "FriB": 10,
}

// DayNumberFor returns the cycle day number for a day name, defaulting to
// 1 for unknown names.
func DayNumberFor(dayName string) int {
	if n, ok := dayNumbers[dayName]; ok {
		return n
	}
	return 1
}

// ClassifyPeriod derives the period type code from the period and day
// names: breaks are recess, P0 and the Tuesday P6 / everyday P7
// orientation slots are non-teaching, everything else teaches.
func ClassifyPeriod(period, dayName string) string {
	lower := strings.ToLower(period)
	switch {
	case period == "P0":
		return TypeOther
	case strings.Contains(lower, "recess") || strings.Contains(lower, "lunch"):
		return TypeRecess
	case period == "P7":
		return TypeOther
	case period == "P6" && (dayName == "TueA" || dayName == "TueB"):
		return TypeOther
	default:
		return TypeTeaching
	}
}

// NormalizeTime truncates HH:MM:SS times to the HH:MM form used in the
// export; anything else passes through unchanged.
func NormalizeTime(t string) string {
	if len(t) == 8 && t[2] == ':' && t[5] == ':' {
		return t[:5]
	}
	return t
}

// FromRecord projects a decoded record onto the fixed BellTime shape.
// Unknown members are dropped here; callers that care about them keep the
// record.
func FromRecord(r *decode.Record) BellTime {
	return BellTime{
		DayNumber: r.Int("DayNumber"),
		DayName:   r.Text("DayName"),
		Period:    r.Text("Period"),
		StartTime: r.Text("StartTime"),
		EndTime:   r.Text("EndTime"),
		Type:      r.Text("Type"),
	}
}

// Record converts a BellTime back into the record shape the reconcile
// engine consumes.
func (b BellTime) Record() *decode.Record {
	r := decode.NewRecord()
	r.Set("DayNumber", b.DayNumber)
	r.Set("DayName", b.DayName)
	r.Set("Period", b.Period)
	r.Set("StartTime", b.StartTime)
	r.Set("EndTime", b.EndTime)
	r.Set("Type", b.Type)
	return r
}

// Normalize fills derivable gaps on records coming from sources that do
// not carry the full field set: a missing DayNumber is derived from the
// day name, a missing Type from the period classification, and times are
// truncated to HH:MM.
func Normalize(records []*decode.Record) {
	for _, r := range records {
		if _, ok := r.Get("DayNumber"); !ok {
			r.Set("DayNumber", DayNumberFor(r.Text("DayName")))
		}
		if _, ok := r.Get("Type"); !ok {
			r.Set("Type", ClassifyPeriod(r.Text("Period"), r.Text("DayName")))
		}
		for _, field := range []string{"StartTime", "EndTime"} {
			if v, ok := r.Get(field); ok {
				if s, isString := v.(string); isString {
					r.Set(field, NormalizeTime(s))
				}
			}
		}
	}
}
