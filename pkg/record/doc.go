// Package record validates loosely typed records against declared schemas.
//
// A record is a string-keyed map whose values are of unknown type, typically
// the result of decoding JSON. A Schema is an ordered list of FieldSpec
// values, each naming a field, its primitive Kind and whether the field is
// required. Validate walks the schema in order and produces a Result that is
// either a validated Record or a list of Violations, never both.
//
// # Kinds
//
// The set of kinds is closed: integer, float, text, boolean and null. The
// kind of an input value is discriminated with KindOf. Go integer types and
// integral json.Number literals are integers; float32, float64 and other
// numeric json.Number literals are floats. An integer never satisfies a float
// field, nor the other way round. Maps, slices and other composite values
// have no kind and always mismatch.
//
// # Usage
//
//	var userSchema = record.MustSchema(
//		record.Required("id", record.KindInteger),
//		record.Required("nome", record.KindText),
//		record.Optional("email", record.KindText),
//	)
//
//	input, err := record.DecodeJSON(r.Body)
//	if err != nil {
//		return err
//	}
//	res := userSchema.Validate(input)
//	if !res.OK() {
//		for _, v := range res.Violations() {
//			log.Printf("%s: %s", v.Field, v.Message())
//		}
//		return res.Err()
//	}
//	email, ok := res.Record().Get("email")
//
// # Violations
//
// Validation failures are values, not errors: Validate always returns a
// Result. Result.Err exposes the failure as a Violations error for callers
// that prefer error returns, and AsViolations recovers it with errors.As.
// Each Violation carries a translation key ("record.missing_required_field",
// "record.type_mismatch") and interpolation values for i18n.
//
// # Schema documents
//
// Schemas can be read from JSON or YAML documents of the form
//
//	fields:
//	  - name: id
//	    kind: integer
//	    required: true
//	  - name: email
//	    kind: text
//
// using ParseJSON, ParseYAML or LoadFile. Documents go through NewSchema, so
// empty or duplicate names and unknown kinds are rejected at load time.
//
// Schemas are immutable once built and safe for concurrent use.
package record
