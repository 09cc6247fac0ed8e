package record_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

func TestNewSchema(t *testing.T) {
	t.Parallel()

	t.Run("keeps declaration order", func(t *testing.T) {
		t.Parallel()
		s, err := record.NewSchema(
			record.Required("id", record.KindInteger),
			record.Required("nome", record.KindText),
			record.Optional("email", record.KindText),
		)
		require.NoError(t, err)
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []record.FieldSpec{
			{Name: "id", Kind: record.KindInteger, Required: true},
			{Name: "nome", Kind: record.KindText, Required: true},
			{Name: "email", Kind: record.KindText},
		}, s.Fields())
		assert.Equal(t, "{id:integer, nome:text, email?:text}", s.String())
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		t.Parallel()
		_, err := record.NewSchema(
			record.Required("id", record.KindInteger),
			record.Optional("id", record.KindText),
		)
		assert.ErrorIs(t, err, record.ErrDuplicateField)
	})

	t.Run("rejects empty names", func(t *testing.T) {
		t.Parallel()
		_, err := record.NewSchema(record.Required("  ", record.KindText))
		assert.ErrorIs(t, err, record.ErrEmptyFieldName)
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		t.Parallel()
		_, err := record.NewSchema(record.FieldSpec{Name: "x"})
		assert.ErrorIs(t, err, record.ErrUnknownKind)
	})

	t.Run("must schema panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			record.MustSchema(record.Required("a", record.KindText), record.Required("a", record.KindText))
		})
	})

	t.Run("fields returns a copy", func(t *testing.T) {
		t.Parallel()
		s := record.MustSchema(record.Required("id", record.KindInteger))
		fields := s.Fields()
		fields[0].Required = false

		f, ok := s.Field("id")
		require.True(t, ok)
		assert.True(t, f.Required)

		_, ok = s.Field("missing")
		assert.False(t, ok)
	})
}

const usuarioYAML = `
fields:
  - name: id
    kind: integer
    required: true
  - name: nome
    kind: string
    required: true
  - name: email
    kind: text
`

const usuarioJSON = `{"fields":[
  {"name":"id","kind":"integer","required":true},
  {"name":"nome","kind":"text","required":true},
  {"name":"email","kind":"text"}
]}`

func TestParse(t *testing.T) {
	t.Parallel()

	want := record.MustSchema(
		record.Required("id", record.KindInteger),
		record.Required("nome", record.KindText),
		record.Optional("email", record.KindText),
	)

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		s, err := record.ParseYAML([]byte(usuarioYAML))
		require.NoError(t, err)
		assert.Equal(t, want.Fields(), s.Fields())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		s, err := record.ParseJSON([]byte(usuarioJSON))
		require.NoError(t, err)
		assert.Equal(t, want.Fields(), s.Fields())
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()
		_, err := record.ParseJSON([]byte(`{"fields":[{"name":"id","kind":"uuid"}]}`))
		assert.ErrorIs(t, err, record.ErrUnknownKind)

		_, err = record.ParseYAML([]byte("fields:\n  - name: id\n    kind: uuid\n"))
		assert.ErrorIs(t, err, record.ErrUnknownKind)
	})

	t.Run("yaml null kind", func(t *testing.T) {
		t.Parallel()
		s, err := record.ParseYAML([]byte("fields:\n  - name: a\n    kind: null\n  - name: b\n    kind: ~\n"))
		require.NoError(t, err)
		for _, f := range s.Fields() {
			assert.Equal(t, record.KindNull, f.Kind, f.Name)
		}
	})

	t.Run("json null kind", func(t *testing.T) {
		t.Parallel()
		s, err := record.ParseJSON([]byte(`{"fields":[{"name":"a","kind":null},{"name":"b","kind":"null","required":true}]}`))
		require.NoError(t, err)
		for _, f := range s.Fields() {
			assert.Equal(t, record.KindNull, f.Kind, f.Name)
		}

		fromYAML, err := record.ParseYAML([]byte("fields:\n  - name: a\n    kind: null\n  - name: b\n    kind: null\n    required: true\n"))
		require.NoError(t, err)
		assert.Equal(t, fromYAML.Fields(), s.Fields())
	})

	t.Run("json unknown field key", func(t *testing.T) {
		t.Parallel()
		_, err := record.ParseJSON([]byte(`{"fields":[{"name":"a","kind":"text","optional":true}]}`))
		assert.ErrorIs(t, err, record.ErrInvalidSchema)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()
		_, err := record.ParseJSON([]byte(`{"fields":[]} {"fields":[]}`))
		assert.ErrorIs(t, err, record.ErrInvalidSchema)

		_, err = record.ParseJSON([]byte("{\"fields\":[]}\n"))
		assert.NoError(t, err)
	})

	t.Run("yaml unknown field key", func(t *testing.T) {
		t.Parallel()
		_, err := record.ParseYAML([]byte("fields:\n  - name: a\n    kind: text\n    optional: true\n"))
		assert.ErrorIs(t, err, record.ErrInvalidSchema)
	})

	t.Run("missing kind", func(t *testing.T) {
		t.Parallel()
		_, err := record.ParseJSON([]byte(`{"fields":[{"name":"id"}]}`))
		assert.ErrorIs(t, err, record.ErrUnknownKind)
	})

	t.Run("duplicate field", func(t *testing.T) {
		t.Parallel()
		_, err := record.ParseJSON([]byte(`{"fields":[{"name":"id","kind":"int"},{"name":"id","kind":"text"}]}`))
		assert.ErrorIs(t, err, record.ErrDuplicateField)
	})

	t.Run("unknown keys rejected", func(t *testing.T) {
		t.Parallel()
		_, err := record.ParseJSON([]byte(`{"fields":[],"strict":true}`))
		assert.ErrorIs(t, err, record.ErrInvalidSchema)

		_, err = record.ParseYAML([]byte("fields: []\nstrict: true\n"))
		assert.ErrorIs(t, err, record.ErrInvalidSchema)
	})

	t.Run("malformed documents", func(t *testing.T) {
		t.Parallel()
		_, err := record.ParseJSON([]byte(`{"fields":`))
		assert.ErrorIs(t, err, record.ErrInvalidSchema)

		_, err = record.ParseYAML([]byte(""))
		assert.ErrorIs(t, err, record.ErrInvalidSchema)
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()
		_, err := record.Parse(record.Format("toml"), []byte(""))
		assert.ErrorIs(t, err, record.ErrUnsupportedFormat)
	})
}

func TestSchema_Encoding(t *testing.T) {
	t.Parallel()

	s := record.MustSchema(
		record.Required("id", record.KindInteger),
		record.Optional("score", record.KindFloat),
	)

	t.Run("json shape", func(t *testing.T) {
		t.Parallel()
		b, err := json.Marshal(s)
		require.NoError(t, err)
		assert.JSONEq(t, `{"fields":[{"name":"id","kind":"integer","required":true},{"name":"score","kind":"float"}]}`, string(b))

		var decoded record.Schema
		require.NoError(t, json.Unmarshal(b, &decoded))
		assert.Equal(t, s.Fields(), decoded.Fields())
	})

	t.Run("yaml shape", func(t *testing.T) {
		t.Parallel()
		b, err := yaml.Marshal(s)
		require.NoError(t, err)
		assert.Contains(t, string(b), "kind: integer")
		assert.Contains(t, string(b), "required: true")

		var decoded record.Schema
		require.NoError(t, yaml.Unmarshal(b, &decoded))
		assert.Equal(t, s.Fields(), decoded.Fields())
	})

	t.Run("embedded in a document", func(t *testing.T) {
		t.Parallel()
		var doc struct {
			Schema *record.Schema `json:"schema"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"schema":`+usuarioJSON+`}`), &doc))
		require.NotNil(t, doc.Schema)
		assert.Equal(t, 3, doc.Schema.Len())
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "usuario.yml")
	jsonPath := filepath.Join(dir, "usuario.json")
	txtPath := filepath.Join(dir, "usuario.txt")
	require.NoError(t, os.WriteFile(yamlPath, []byte(usuarioYAML), 0o600))
	require.NoError(t, os.WriteFile(jsonPath, []byte(usuarioJSON), 0o600))
	require.NoError(t, os.WriteFile(txtPath, []byte(usuarioJSON), 0o600))

	fromYAML, err := record.LoadFile(yamlPath)
	require.NoError(t, err)
	fromJSON, err := record.LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, fromYAML.Fields(), fromJSON.Fields())

	_, err = record.LoadFile(txtPath)
	assert.ErrorIs(t, err, record.ErrUnsupportedFormat)

	_, err = record.LoadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("keeps numbers", func(t *testing.T) {
		t.Parallel()
		m, err := record.DecodeJSON(strings.NewReader(`{"id": 1, "score": 1.0}`))
		require.NoError(t, err)
		assert.Equal(t, json.Number("1"), m["id"])
		assert.Equal(t, json.Number("1.0"), m["score"])
	})

	t.Run("rejects non objects", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{`[1,2]`, `null`, `"x"`, ``, `{"a":1} {"b":2}`} {
			_, err := record.DecodeJSON(strings.NewReader(in))
			assert.ErrorIs(t, err, record.ErrInvalidRecord, in)
		}
	})
}
