package decode

import "strings"

// MinStructMembers is the minimum member count for a struct to be emitted
// as a record. Shorter structs are header/padding noise in the export and
// are discarded silently.
const MinStructMembers = 6

const (
	arrayOpen   = "<array>"
	arrayClose  = "</array>"
	structOpen  = "<struct>"
	structClose = "</struct>"
	nameOpen    = "<name>"
	nameClose   = "</name>"
	valueOpen   = "<value>"
	valueClose  = "</value>"
)

// state is the explicit scan state driving the decode loop.
type state int

const (
	stateOutside state = iota
	stateInArray
	stateInStruct
	stateAwaitingValue
	stateInMultilineValue
)

// Options controls decoding behavior.
type Options struct {
	// Region selects which <array> region of the text to decode, 0-based.
	// The exports observed so far only ever carry one region, so the
	// default of 0 matches historical behavior; regions other than the
	// selected one are skipped entirely.
	Region int
}

// Decode scans text and returns every well-formed record from the first
// <array> region, in document order.
func Decode(text string) []*Record {
	return DecodeWithOptions(text, Options{})
}

// DecodeWithOptions is Decode with an explicit region selector.
//
// Decoding never fails: unterminated structs are dropped, close markers
// without a matching open are ignored, and a struct with fewer than
// MinStructMembers members yields no record.
func DecodeWithOptions(text string, opts Options) []*Record {
	var (
		records []*Record
		cur     *Record
		member  string
		span    []string
		st      = stateOutside
		region  = -1
		skip    bool
	)

	for _, line := range strings.Split(text, "\n") {
		switch st {
		case stateOutside:
			if skip {
				if strings.Contains(line, arrayClose) {
					skip = false
				}
				continue
			}
			if strings.Contains(line, arrayOpen) {
				region++
				if region == opts.Region {
					st = stateInArray
				} else {
					skip = true
				}
			}

		case stateInArray:
			switch {
			case strings.Contains(line, arrayClose):
				// Selected region is done; nothing after it is tracked.
				return records
			case strings.Contains(line, structOpen):
				cur = NewRecord()
				st = stateInStruct
			}

		case stateInStruct, stateAwaitingValue:
			switch {
			case strings.Contains(line, structClose):
				// A pending member with no value is simply dropped.
				if cur.Len() >= MinStructMembers {
					records = append(records, cur)
				}
				cur = nil
				member = ""
				st = stateInArray
			case strings.Contains(line, arrayClose):
				// Unterminated struct at region end: discard.
				return records
			case strings.Contains(line, nameOpen) && strings.Contains(line, nameClose):
				member = between(line, nameOpen, nameClose)
				st = stateAwaitingValue
			case st == stateAwaitingValue && strings.Contains(line, valueOpen):
				rest := after(line, valueOpen)
				if end := strings.Index(rest, valueClose); end >= 0 {
					cur.Set(member, Coerce(strings.TrimSpace(rest[:end])))
					member = ""
					st = stateInStruct
				} else {
					span = span[:0]
					span = append(span, rest)
					st = stateInMultilineValue
				}
			}

		case stateInMultilineValue:
			// Embedded sub-markers are content until the close marker.
			if end := strings.Index(line, valueClose); end >= 0 {
				span = append(span, line[:end])
				cur.Set(member, Coerce(strings.TrimSpace(strings.Join(span, "\n"))))
				member = ""
				span = nil
				st = stateInStruct
			} else {
				span = append(span, line)
			}
		}
	}

	// End of input while a struct or region was still open: whatever was
	// accumulated is incomplete and is not emitted.
	return records
}

// between extracts the text between the first occurrence of open and the
// following occurrence of close.
func between(line, open, close string) string {
	rest := after(line, open)
	if end := strings.Index(rest, close); end >= 0 {
		return rest[:end]
	}
	return rest
}

// after returns the text following the first occurrence of marker.
func after(line, marker string) string {
	if i := strings.Index(line, marker); i >= 0 {
		return line[i+len(marker):]
	}
	return line
}
