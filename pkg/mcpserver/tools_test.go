package mcpserver_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/mcpserver"
	"github.com/dmitrymomot/recordkit/pkg/record"
	"github.com/dmitrymomot/recordkit/pkg/registry"
)

func newServer(t *testing.T) *mcpserver.Server {
	t.Helper()
	reg := registry.New(registry.NewMemoryStore())
	require.NoError(t, reg.Put(context.Background(), "usuario", record.MustSchema(
		record.Required("id", record.KindInteger),
		record.Optional("email", record.KindText),
	)))
	return mcpserver.New(reg, "test", nil)
}

func call(t *testing.T, s *mcpserver.Server, tool string, args map[string]any) (string, bool) {
	t.Helper()
	res, err := s.Call(context.Background(), tool, args)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func TestCall_UnknownTool(t *testing.T) {
	t.Parallel()
	_, err := newServer(t).Call(context.Background(), "drop_schemas", nil)
	assert.Error(t, err)
}

func TestTools(t *testing.T) {
	t.Parallel()
	s := newServer(t)

	t.Run("list_schemas", func(t *testing.T) {
		t.Parallel()
		out, isErr := call(t, s, "list_schemas", nil)
		assert.False(t, isErr)
		assert.JSONEq(t, `{"schemas":["usuario"]}`, out)
	})

	t.Run("get_schema", func(t *testing.T) {
		t.Parallel()
		out, isErr := call(t, s, "get_schema", map[string]any{"name": "usuario"})
		assert.False(t, isErr)
		assert.JSONEq(t, `{"fields":[{"name":"id","kind":"integer","required":true},{"name":"email","kind":"text"}]}`, out)

		out, isErr = call(t, s, "get_schema", map[string]any{"name": "pedido"})
		assert.True(t, isErr)
		assert.Contains(t, out, "schema not found")
	})

	t.Run("validate_record accepted", func(t *testing.T) {
		t.Parallel()
		out, isErr := call(t, s, "validate_record", map[string]any{"name": "usuario", "record": `{"id":1,"nome":"Yudi"}`})
		assert.False(t, isErr)
		assert.JSONEq(t, `{"valid":true,"record":{"id":1}}`, out)
	})

	t.Run("validate_record rejected", func(t *testing.T) {
		t.Parallel()
		out, isErr := call(t, s, "validate_record", map[string]any{"name": "usuario", "record": `{"nome":"Yudi"}`})
		assert.False(t, isErr)
		assert.JSONEq(t, `{"valid":false,"violations":[{"field":"id","kind":"missing_required_field","expected":"integer","message":"is required"}]}`, out)
	})

	t.Run("validate_record bad input", func(t *testing.T) {
		t.Parallel()
		_, isErr := call(t, s, "validate_record", map[string]any{"name": "usuario", "record": `[1]`})
		assert.True(t, isErr)
		_, isErr = call(t, s, "validate_record", map[string]any{"name": "usuario"})
		assert.True(t, isErr)
	})

	t.Run("check_schema", func(t *testing.T) {
		t.Parallel()
		out, isErr := call(t, s, "check_schema", map[string]any{
			"document": "fields:\n  - name: id\n    kind: int\n",
			"format":   "YAML",
		})
		assert.False(t, isErr)
		assert.JSONEq(t, `{"valid":true,"schema":{"fields":[{"name":"id","kind":"integer"}]}}`, out)

		out, isErr = call(t, s, "check_schema", map[string]any{"document": `{"fields":[{"name":"id","kind":"uuid"}]}`})
		assert.True(t, isErr)
		assert.Contains(t, out, "uuid")
	})
}
