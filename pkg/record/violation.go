package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ViolationKind is the reason a field failed validation.
type ViolationKind uint8

const (
	MissingRequiredField ViolationKind = iota + 1
	TypeMismatch
)

func (k ViolationKind) String() string {
	switch k {
	case MissingRequiredField:
		return "missing_required_field"
	case TypeMismatch:
		return "type_mismatch"
	default:
		return fmt.Sprintf("violation(%d)", uint8(k))
	}
}

func (k ViolationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Violation is a single reason a record failed validation, tied to one field.
type Violation struct {
	Field string
	Kind  ViolationKind
	// Expected is the declared kind of the field.
	Expected Kind
	// Actual is the kind found in the input. KindUnknown for missing fields
	// and for values outside the closed set of kinds.
	Actual Kind
}

// Message returns a human-readable description of the violation.
func (v Violation) Message() string {
	switch v.Kind {
	case MissingRequiredField:
		return "is required"
	case TypeMismatch:
		return fmt.Sprintf("expected %s, got %s", v.Expected, v.Actual)
	default:
		return "is invalid"
	}
}

// TranslationKey returns an i18n key for the violation.
func (v Violation) TranslationKey() string {
	return "record." + v.Kind.String()
}

// TranslationValues returns the values to interpolate into a translated message.
func (v Violation) TranslationValues() map[string]any {
	values := map[string]any{"field": v.Field}
	if v.Kind == TypeMismatch {
		values["expected"] = v.Expected.String()
		values["actual"] = v.Actual.String()
	}
	return values
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message()
}

type violationJSON struct {
	Field    string        `json:"field"`
	Kind     ViolationKind `json:"kind"`
	Expected string        `json:"expected"`
	Actual   string        `json:"actual,omitempty"`
	Message  string        `json:"message"`
}

// MarshalJSON encodes the violation with kinds as names. Actual is omitted
// for missing fields.
func (v Violation) MarshalJSON() ([]byte, error) {
	out := violationJSON{
		Field:    v.Field,
		Kind:     v.Kind,
		Expected: v.Expected.String(),
		Message:  v.Message(),
	}
	if v.Kind == TypeMismatch {
		out.Actual = v.Actual.String()
	}
	return json.Marshal(out)
}

// Violations is an ordered list of violations. It implements error so a
// failed Result can be returned up a call chain.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "record validation failed"
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return "record validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any violation refers to field.
func (vs Violations) Has(field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Get returns the violations for field in order.
func (vs Violations) Get(field string) []Violation {
	var out []Violation
	for _, v := range vs {
		if v.Field == field {
			out = append(out, v)
		}
	}
	return out
}

// Fields returns the distinct violating field names in order of first appearance.
func (vs Violations) Fields() []string {
	var fields []string
	seen := make(map[string]bool, len(vs))
	for _, v := range vs {
		if !seen[v.Field] {
			fields = append(fields, v.Field)
			seen[v.Field] = true
		}
	}
	return fields
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// Details groups violation messages by field, in the shape HTTP error
// payloads use.
func (vs Violations) Details() map[string][]string {
	if len(vs) == 0 {
		return nil
	}
	out := make(map[string][]string, len(vs))
	for _, v := range vs {
		out[v.Field] = append(out[v.Field], v.Message())
	}
	return out
}

// AsViolations extracts Violations from err, or returns nil.
func AsViolations(err error) Violations {
	if err == nil {
		return nil
	}
	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}
	return nil
}

// IsViolation reports whether err carries record violations.
func IsViolation(err error) bool {
	var vs Violations
	return err != nil && errors.As(err, &vs)
}
