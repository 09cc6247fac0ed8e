package record

import (
	"fmt"
	"strings"
)

// FieldSpec describes one field of a record.
type FieldSpec struct {
	Name     string
	Kind     Kind
	Required bool
}

// Required returns a spec for a field that must be present.
func Required(name string, kind Kind) FieldSpec {
	return FieldSpec{Name: name, Kind: kind, Required: true}
}

// Optional returns a spec for a field that may be absent.
func Optional(name string, kind Kind) FieldSpec {
	return FieldSpec{Name: name, Kind: kind}
}

func (f FieldSpec) String() string {
	if f.Required {
		return f.Name + ":" + f.Kind.String()
	}
	return f.Name + "?:" + f.Kind.String()
}

// Schema is an ordered, immutable set of field specs with unique names.
// A Schema is safe for concurrent use.
type Schema struct {
	fields []FieldSpec
	index  map[string]int
}

// NewSchema builds a schema from fields, preserving their order.
// It fails if a name is empty or repeated, or if a kind is not valid.
func NewSchema(fields ...FieldSpec) (*Schema, error) {
	s := &Schema{
		fields: make([]FieldSpec, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("%w: field #%d", ErrEmptyFieldName, i)
		}
		if !f.Kind.Valid() {
			return nil, fmt.Errorf("%w: field %q has kind %s", ErrUnknownKind, f.Name, f.Kind)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error.
// Intended for package-level schema declarations.
func MustSchema(fields ...FieldSpec) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}

// Fields returns a copy of the field specs in declaration order.
func (s *Schema) Fields() []FieldSpec {
	if s == nil {
		return nil
	}
	out := make([]FieldSpec, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a field spec by name.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	if s == nil {
		return FieldSpec{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i], true
}

// Validate checks input against the schema. See the package-level Validate.
func (s *Schema) Validate(input map[string]any) Result {
	return Validate(s, input)
}

func (s *Schema) String() string {
	parts := make([]string, 0, s.Len())
	for _, f := range s.Fields() {
		parts = append(parts, f.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
