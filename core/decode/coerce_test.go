package decode_test

import (
	"testing"

	"timetable-manager/core/decode"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		span string
		want any
	}{
		{"Integer wrapper", "<i4>5</i4>", 5},
		{"Negative integer", "<i4>-3</i4>", -3},
		{"Padded integer", "<i4> 42 </i4>", 42},
		{"Plain text", "TueA", "TueA"},
		{"Digits without wrapper stay text", "5", "5"},
		{"Time stays text", "12:10", "12:10"},
		{"Escapes pass through", "Design &amp; Technology", "Design &amp; Technology"},
		{"Empty span", "", ""},
		{"Broken wrapper stays text", "<i4>x</i4>", "<i4>x</i4>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decode.Coerce(tt.span))
		})
	}
}

func TestCoerce_TypesAreDistinct(t *testing.T) {
	// int 5 and string "5" must never compare equal downstream.
	assert.NotEqual(t, decode.Coerce("<i4>5</i4>"), decode.Coerce("5"))
}

func TestRecord_Accessors(t *testing.T) {
	r := decode.NewRecord()
	r.Set("DayNumber", 2)
	r.Set("DayName", "TueA")

	assert.Equal(t, 2, r.Int("DayNumber"))
	assert.Equal(t, "2", r.Text("DayNumber"))
	assert.Equal(t, 0, r.Int("DayName"))
	assert.Equal(t, "", r.Text("Missing"))
	assert.Equal(t, 2, r.Len())
}
