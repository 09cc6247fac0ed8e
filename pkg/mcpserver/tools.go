package mcpserver

import (
	"context"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/record"
)

var errMissingArgument = errors.New("missing argument")

type validationPayload struct {
	Valid      bool              `json:"valid"`
	Record     *record.Record    `json:"record,omitempty"`
	Violations record.Violations `json:"violations,omitempty"`
}

func (s *Server) registerTools() {
	s.addTool(mcp.NewTool("list_schemas",
		mcp.WithDescription("List the names of all stored record schemas"),
	), s.handleListSchemas)

	s.addTool(mcp.NewTool("get_schema",
		mcp.WithDescription("Return a stored record schema: its fields with kind (integer, float, text, boolean, null) and whether each is required"),
		mcp.WithString("name", mcp.Description("Schema name"), mcp.Required()),
	), s.handleGetSchema)

	s.addTool(mcp.NewTool("validate_record",
		mcp.WithDescription("Validate a JSON object against a stored schema. Returns the accepted record, or the violations explaining why it was rejected."),
		mcp.WithString("name", mcp.Description("Schema name"), mcp.Required()),
		mcp.WithString("record", mcp.Description("The record as a JSON object"), mcp.Required()),
	), s.handleValidateRecord)

	s.addTool(mcp.NewTool("check_schema",
		mcp.WithDescription("Parse a schema document without storing it and report whether it is valid"),
		mcp.WithString("document", mcp.Description("Schema document text"), mcp.Required()),
		mcp.WithString("format", mcp.Description("json or yaml (default json)")),
	), s.handleCheckSchema)
}

func stringArg(req mcp.CallToolRequest, name string) (string, error) {
	v, _ := req.GetArguments()[name].(string)
	if v == "" {
		return "", errors.Join(errMissingArgument, errors.New(name))
	}
	return v, nil
}

func (s *Server) handleListSchemas(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.reg.List(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "list schemas", logger.Error(err))
		return errorResult(err), nil
	}
	if names == nil {
		names = []string{}
	}
	return jsonResult(map[string][]string{"schemas": names})
}

func (s *Server) handleGetSchema(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := stringArg(req, "name")
	if err != nil {
		return errorResult(err), nil
	}
	schema, err := s.reg.Get(ctx, name)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(schema)
}

func (s *Server) handleValidateRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := stringArg(req, "name")
	if err != nil {
		return errorResult(err), nil
	}
	raw, err := stringArg(req, "record")
	if err != nil {
		return errorResult(err), nil
	}
	in, err := record.DecodeJSON(strings.NewReader(raw))
	if err != nil {
		return errorResult(err), nil
	}
	res, err := s.reg.Validate(ctx, name, in)
	if err != nil {
		return errorResult(err), nil
	}
	if !res.OK() {
		return jsonResult(validationPayload{Violations: res.Violations()})
	}
	rec := res.Record()
	return jsonResult(validationPayload{Valid: true, Record: &rec})
}

func (s *Server) handleCheckSchema(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := stringArg(req, "document")
	if err != nil {
		return errorResult(err), nil
	}
	format := record.FormatJSON
	if f, _ := req.GetArguments()["format"].(string); f != "" {
		format = record.Format(strings.ToLower(f))
	}
	schema, err := record.Parse(format, []byte(doc))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(map[string]any{"valid": true, "schema": schema})
}
