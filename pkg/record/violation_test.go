package record_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

func TestViolation(t *testing.T) {
	t.Parallel()

	missing := record.Violation{Field: "id", Kind: record.MissingRequiredField, Expected: record.KindInteger}
	mismatch := record.Violation{Field: "id", Kind: record.TypeMismatch, Expected: record.KindInteger, Actual: record.KindText}

	t.Run("messages", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "is required", missing.Message())
		assert.Equal(t, "expected integer, got text", mismatch.Message())
		assert.Equal(t, "id: expected integer, got text", mismatch.String())
	})

	t.Run("translation metadata", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "record.missing_required_field", missing.TranslationKey())
		assert.Equal(t, map[string]any{"field": "id"}, missing.TranslationValues())

		assert.Equal(t, "record.type_mismatch", mismatch.TranslationKey())
		assert.Equal(t, map[string]any{
			"field":    "id",
			"expected": "integer",
			"actual":   "text",
		}, mismatch.TranslationValues())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		b, err := json.Marshal(record.Violations{missing, mismatch})
		require.NoError(t, err)
		assert.JSONEq(t, `[
			{"field":"id","kind":"missing_required_field","expected":"integer","message":"is required"},
			{"field":"id","kind":"type_mismatch","expected":"integer","actual":"text","message":"expected integer, got text"}
		]`, string(b))

		composite := record.Violation{Field: "tags", Kind: record.TypeMismatch, Expected: record.KindText}
		b, err = json.Marshal(composite)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"actual":"unknown"`)
	})

	t.Run("kind text", func(t *testing.T) {
		t.Parallel()
		b, err := json.Marshal(struct {
			Kind record.ViolationKind `json:"kind"`
		}{record.TypeMismatch})
		require.NoError(t, err)
		assert.JSONEq(t, `{"kind":"type_mismatch"}`, string(b))
		assert.Equal(t, "violation(9)", record.ViolationKind(9).String())
	})
}

func TestViolations(t *testing.T) {
	t.Parallel()

	vs := record.Violations{
		{Field: "id", Kind: record.MissingRequiredField, Expected: record.KindInteger},
		{Field: "email", Kind: record.TypeMismatch, Expected: record.KindText, Actual: record.KindBoolean},
	}

	t.Run("error message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "record validation failed", record.Violations{}.Error())
		assert.Equal(t, "record validation failed: id: is required; email: expected text, got boolean", vs.Error())
	})

	t.Run("lookups", func(t *testing.T) {
		t.Parallel()
		assert.True(t, vs.Has("email"))
		assert.False(t, vs.Has("nome"))
		assert.Len(t, vs.Get("id"), 1)
		assert.Empty(t, vs.Get("nome"))
		assert.Equal(t, []string{"id", "email"}, vs.Fields())
		assert.False(t, vs.IsEmpty())
		assert.True(t, record.Violations(nil).IsEmpty())
	})

	t.Run("details", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, map[string][]string{
			"id":    {"is required"},
			"email": {"expected text, got boolean"},
		}, vs.Details())
		assert.Nil(t, record.Violations(nil).Details())
	})

	t.Run("extraction through wrapping", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("create user: %w", vs)
		assert.True(t, record.IsViolation(wrapped))
		assert.Equal(t, vs, record.AsViolations(wrapped))

		assert.False(t, record.IsViolation(errors.New("boom")))
		assert.Nil(t, record.AsViolations(errors.New("boom")))
		assert.Nil(t, record.AsViolations(nil))
	})
}
