// Package decode implements a line-oriented scanner for the legacy tagged
// timetable export format: a single <array> region containing <struct>
// blocks of named members, where member values may span multiple lines and
// may carry an <i4> integer wrapper.
//
// The scanner is deliberately not a tree parser. The source data is not
// schema-valid XML and the upstream system has shipped malformed exports
// before, so decoding never fails: structurally broken elements are dropped
// and scanning continues with the next element.
//
// # Record shape
//
// Each emitted Record is an ordered map from member name to value. Values
// are either int (from an <i4> wrapper) or string; the two are distinct for
// equality purposes. Structs that accumulate fewer than MinStructMembers
// members are discarded rather than emitted.
//
// # Usage
//
//	records := decode.Decode(rawText)
//	for _, r := range records {
//	    day, _ := r.Get("DayName")
//	    ...
//	}
//
// By default only the first <array> region in the text is decoded; a later
// region can be selected through Options.Region.
package decode
