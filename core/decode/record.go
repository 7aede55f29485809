package decode

import "fmt"

// Record is one decoded struct: an ordered mapping from member name to
// value. Values are int or string depending on coercion.
type Record struct {
	names  []string
	values map[string]any
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set stores a member value. A duplicate name keeps its original position
// but takes the new value (last write wins).
func (r *Record) Set(name string, value any) {
	if _, seen := r.values[name]; !seen {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Get returns the value for a member name.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Text returns the member value rendered as a string, or "" if the member
// is absent. Integer values render in decimal.
func (r *Record) Text(name string) string {
	v, ok := r.values[name]
	if !ok {
		return ""
	}
	if s, isString := v.(string); isString {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Int returns the member value as an int. String and missing members
// return 0; only genuinely integer-typed values survive.
func (r *Record) Int(name string) int {
	if n, ok := r.values[name].(int); ok {
		return n
	}
	return 0
}

// Len returns the number of members.
func (r *Record) Len() int {
	return len(r.names)
}

// Names returns the member names in insertion order.
func (r *Record) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
