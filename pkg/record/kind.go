package record

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the primitive kind of a field value.
type Kind uint8

const (
	// KindUnknown is reported for values outside the closed set of kinds,
	// such as maps, slices or structs. It is never valid in a schema.
	KindUnknown Kind = iota
	KindInteger
	KindFloat
	KindText
	KindBoolean
	KindNull
)

var kindNames = [...]string{
	KindUnknown: "unknown",
	KindInteger: "integer",
	KindFloat:   "float",
	KindText:    "text",
	KindBoolean: "boolean",
	KindNull:    "null",
}

// kindAliases maps accepted spellings in schema documents to kinds.
var kindAliases = map[string]Kind{
	"integer": KindInteger,
	"int":     KindInteger,
	"float":   KindFloat,
	"number":  KindFloat,
	"double":  KindFloat,
	"text":    KindText,
	"string":  KindText,
	"boolean": KindBoolean,
	"bool":    KindBoolean,
	"null":    KindNull,
}

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k may be declared in a schema.
func (k Kind) Valid() bool {
	return k >= KindInteger && k <= KindNull
}

// ParseKind parses a kind name. Matching is case-insensitive and accepts
// the aliases int, number, double, string and bool.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// KindOf discriminates the runtime kind of v. The second return value is
// false when v does not belong to any kind.
//
// json.Number is classified by its literal: literals without a fraction or
// exponent are integers, whatever their magnitude; others are floats.
func KindOf(v any) (Kind, bool) {
	switch n := v.(type) {
	case nil:
		return KindNull, true
	case bool:
		return KindBoolean, true
	case string:
		return KindText, true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return KindInteger, true
	case float32, float64:
		return KindFloat, true
	case json.Number:
		if _, err := n.Int64(); err == nil {
			return KindInteger, true
		}
		if _, err := n.Float64(); err != nil {
			return KindUnknown, false
		}
		if strings.ContainsAny(n.String(), ".eE") {
			return KindFloat, true
		}
		return KindInteger, true
	default:
		return KindUnknown, false
	}
}
