// Package mcpserver exposes the tool router as MCP tools.
package mcpserver

import (
	"context"

	"github.com/effective-security/xlog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cast"
	"yfmcp/internal/tools"
)

// Name is the server name reported during MCP initialization.
const Name = "Yahoo Finance MCP Server"

var logger = xlog.NewPackageLogger("yfmcp", "mcpserver")

// Dispatcher runs named operations. *tools.Router implements it.
type Dispatcher interface {
	Definitions() []tools.Definition
	Dispatch(ctx context.Context, req tools.Request) tools.Result
}

// New returns an MCP server with one tool per operation of d.
func New(d Dispatcher, version string) *server.MCPServer {
	s := server.NewMCPServer(Name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for _, def := range d.Definitions() {
		s.AddTool(Tool(def), Handler(d, def.Name))
	}
	logger.KV(xlog.DEBUG, "status", "tools_registered", "count", len(d.Definitions()))
	return s
}

// Tool converts an operation definition into an MCP tool schema.
func Tool(def tools.Definition) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
	for _, p := range def.Params {
		props := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			props = append(props, mcp.Required())
		}

		switch p.Type {
		case "integer":
			if p.Default != nil {
				props = append(props, mcp.DefaultNumber(cast.ToFloat64(p.Default)))
			}
			opts = append(opts, mcp.WithNumber(p.Name, props...))
		default:
			if p.Default != nil {
				props = append(props, mcp.DefaultString(cast.ToString(p.Default)))
			}
			if len(p.Enum) > 0 {
				props = append(props, mcp.Enum(p.Enum...))
			}
			opts = append(opts, mcp.WithString(p.Name, props...))
		}
	}
	return mcp.NewTool(def.Name, opts...)
}

// Handler returns the MCP handler for the named operation.
func Handler(d Dispatcher, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res := d.Dispatch(ctx, tools.Request{Name: name, Args: req.GetArguments()})
		return CallToolResult(res), nil
	}
}

// CallToolResult converts a router result. Grouped results become one text
// content per group; failures keep their message and set isError.
func CallToolResult(res tools.Result) *mcp.CallToolResult {
	if res.IsError() {
		return mcp.NewToolResultError(res.Text)
	}
	if len(res.Groups) == 0 {
		return mcp.NewToolResultText(res.Text)
	}
	content := make([]mcp.Content, 0, len(res.Groups))
	for _, g := range res.Groups {
		content = append(content, mcp.NewTextContent(g))
	}
	return &mcp.CallToolResult{Content: content}
}
