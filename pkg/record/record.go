package record

import (
	"bytes"
	"encoding/json"
)

// Entry is one validated field value.
type Entry struct {
	Name  string
	Value any
}

// Record is a validated mapping from field name to value, ordered as the
// fields appear in the schema. Only fields present in the input are included.
type Record struct {
	entries []Entry
}

// Len returns the number of fields in the record.
func (r Record) Len() int { return len(r.entries) }

// Get returns the value of field name.
func (r Record) Get(name string) (any, bool) {
	for _, e := range r.entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return nil, false
}

// Names returns field names in schema order.
func (r Record) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the record's entries in schema order.
func (r Record) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Map returns the record as a plain map. Order is lost.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.entries))
	for _, e := range r.entries {
		m[e.Name] = e.Value
	}
	return m
}

// MarshalJSON encodes the record as a JSON object with keys in schema order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
