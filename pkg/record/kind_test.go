package record_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	type custom struct{ A int }
	str := "x"

	tests := []struct {
		name   string
		value  any
		want   record.Kind
		wantOK bool
	}{
		{"nil", nil, record.KindNull, true},
		{"bool", true, record.KindBoolean, true},
		{"string", "Yudi", record.KindText, true},
		{"empty string", "", record.KindText, true},
		{"int", 24, record.KindInteger, true},
		{"int8", int8(-1), record.KindInteger, true},
		{"int64", int64(1 << 40), record.KindInteger, true},
		{"uint32", uint32(7), record.KindInteger, true},
		{"uint64", uint64(7), record.KindInteger, true},
		{"float32", float32(1.5), record.KindFloat, true},
		{"float64", 3.0, record.KindFloat, true},
		{"json integer", json.Number("101"), record.KindInteger, true},
		{"json negative integer", json.Number("-3"), record.KindInteger, true},
		{"json decimal", json.Number("1.5"), record.KindFloat, true},
		{"json decimal with zero fraction", json.Number("1.0"), record.KindFloat, true},
		{"json exponent", json.Number("1e3"), record.KindFloat, true},
		{"json integer beyond int64", json.Number("18446744073709551615"), record.KindInteger, true},
		{"json negative integer beyond int64", json.Number("-99999999999999999999"), record.KindInteger, true},
		{"json large decimal", json.Number("18446744073709551615.5"), record.KindFloat, true},
		{"json garbage", json.Number("abc"), record.KindUnknown, false},
		{"slice", []any{1, 2}, record.KindUnknown, false},
		{"map", map[string]any{"a": 1}, record.KindUnknown, false},
		{"struct", custom{A: 1}, record.KindUnknown, false},
		{"pointer", &str, record.KindUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := record.KindOf(tt.value)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	t.Run("canonical names and aliases", func(t *testing.T) {
		t.Parallel()
		cases := map[string]record.Kind{
			"integer": record.KindInteger,
			"int":     record.KindInteger,
			"float":   record.KindFloat,
			"number":  record.KindFloat,
			"double":  record.KindFloat,
			"text":    record.KindText,
			"string":  record.KindText,
			"boolean": record.KindBoolean,
			"bool":    record.KindBoolean,
			"null":    record.KindNull,
			" Text ":  record.KindText,
			"BOOLEAN": record.KindBoolean,
		}
		for in, want := range cases {
			got, err := record.ParseKind(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		_, err := record.ParseKind("undefined")
		assert.ErrorIs(t, err, record.ErrUnknownKind)
	})
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "integer", record.KindInteger.String())
	assert.Equal(t, "null", record.KindNull.String())
	assert.Equal(t, "unknown", record.KindUnknown.String())
	assert.Equal(t, "kind(42)", record.Kind(42).String())

	assert.False(t, record.KindUnknown.Valid())
	assert.True(t, record.KindNull.Valid())
	assert.False(t, record.Kind(42).Valid())
}

func TestKind_Text(t *testing.T) {
	t.Parallel()

	b, err := record.KindFloat.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "float", string(b))

	_, err = record.KindUnknown.MarshalText()
	assert.ErrorIs(t, err, record.ErrUnknownKind)

	var k record.Kind
	require.NoError(t, k.UnmarshalText([]byte("string")))
	assert.Equal(t, record.KindText, k)
	assert.ErrorIs(t, k.UnmarshalText([]byte("any")), record.ErrUnknownKind)
}
