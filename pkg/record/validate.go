package record

// Result is the outcome of a validation: either a Record or a non-empty list
// of Violations, never both.
type Result struct {
	record     Record
	violations Violations
}

// OK reports whether validation succeeded.
func (r Result) OK() bool { return len(r.violations) == 0 }

// Record returns the validated record. It is empty when validation failed.
func (r Result) Record() Record { return r.record }

// Violations returns the violations in schema order, or nil on success.
func (r Result) Violations() Violations {
	if len(r.violations) == 0 {
		return nil
	}
	out := make(Violations, len(r.violations))
	copy(out, r.violations)
	return out
}

// Err returns the violations as an error, or nil on success.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return r.Violations()
}

// Validate checks input against schema, field by field in schema order.
//
// A required field that is absent yields a MissingRequiredField violation.
// An absent optional field is skipped. A present field whose runtime kind
// differs from the declared kind yields a TypeMismatch violation; otherwise
// its value is copied into the output record. Keys in input that the schema
// does not declare are ignored.
//
// Validate never fails: it always returns a Result. A nil schema accepts any
// input and yields an empty record.
func Validate(schema *Schema, input map[string]any) Result {
	var (
		entries    []Entry
		violations Violations
	)
	for _, f := range schema.Fields() {
		value, present := input[f.Name]
		if !present {
			if f.Required {
				violations = append(violations, Violation{
					Field:    f.Name,
					Kind:     MissingRequiredField,
					Expected: f.Kind,
				})
			}
			continue
		}

		actual, _ := KindOf(value)
		if actual != f.Kind {
			violations = append(violations, Violation{
				Field:    f.Name,
				Kind:     TypeMismatch,
				Expected: f.Kind,
				Actual:   actual,
			})
			continue
		}

		if len(violations) == 0 {
			entries = append(entries, Entry{Name: f.Name, Value: value})
		}
	}

	if len(violations) > 0 {
		return Result{violations: violations}
	}
	return Result{record: Record{entries: entries}}
}
