package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/registry"
)

// Server wraps an MCP server bound to a registry.
type Server struct {
	mcp   *server.MCPServer
	reg   *registry.Registry
	log   *slog.Logger
	tools map[string]server.ToolHandlerFunc
}

// New builds the server and registers the tools.
func New(reg *registry.Registry, version string, log *slog.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	s := &Server{
		reg:   reg,
		log:   log.With(logger.Component("mcp")),
		mcp:   server.NewMCPServer("recordkit", version, server.WithToolCapabilities(false)),
		tools: make(map[string]server.ToolHandlerFunc),
	}
	s.registerTools()
	return s
}

// MCP returns the underlying server, e.g. for a non-stdio transport.
func (s *Server) MCP() *server.MCPServer { return s.mcp }

// ServeStdio serves the tools on stdin/stdout until the process is
// interrupted.
func (s *Server) ServeStdio() error {
	s.log.Info("serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) addTool(tool mcp.Tool, h server.ToolHandlerFunc) {
	s.mcp.AddTool(tool, h)
	s.tools[tool.Name] = h
}

// Call invokes a registered tool directly, bypassing the transport.
func (s *Server) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	h, ok := s.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return h(ctx, req)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: text}},
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(b)), nil
}

func errorResult(err error) *mcp.CallToolResult {
	res := textResult(err.Error())
	res.IsError = true
	return res
}
