// Package mcpserve exposes client methods as MCP tools.
package mcpserve

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wordnik/wordnik-go/internal/auth"
	"github.com/wordnik/wordnik-go/internal/endpoint"
	"github.com/wordnik/wordnik-go/internal/preset"
	"github.com/wordnik/wordnik-go/internal/schema"
	"github.com/wordnik/wordnik-go/wordnik"
)

// ServerName is reported to MCP clients.
const ServerName = "wordnik"

// Caller invokes a method by name.
type Caller interface {
	Call(ctx context.Context, name string, args []string, params map[string]any) (*wordnik.Response, error)
}

// NewServer returns an MCP server with one tool per method.
func NewServer(client Caller, methods []wordnik.Method, presets *preset.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version, server.WithToolCapabilities(false))
	s.AddTools(Tools(client, methods, presets)...)
	return s
}

// Tools builds the tool definitions and handlers. Credentials are injected
// by the client and never offered as arguments; neither are presets in
// hidden mode.
func Tools(client Caller, methods []wordnik.Method, presets *preset.Config) []server.ServerTool {
	tools := make([]server.ServerTool, 0, len(methods))
	for _, m := range methods {
		name := m.Name
		skip := func(param string) bool {
			return param == auth.APIKeyParam || param == auth.AuthTokenParam || presets.Hidden(name, param)
		}

		opts := []mcp.ToolOption{mcp.WithDescription(description(m))}
		var pathParams []string
		for _, o := range schema.Options(m.Operation, skip) {
			opts = append(opts, property(o, presets, name))
			if o.Location == endpoint.LocationPath {
				pathParams = append(pathParams, o.Name)
			}
		}

		tools = append(tools, server.ServerTool{
			Tool:    mcp.NewTool(name, opts...),
			Handler: handler(client, m, pathParams),
		})
	}
	return tools
}

func description(m wordnik.Method) string {
	desc := m.Operation.Summary
	if desc == "" {
		desc = m.Name
	}
	return fmt.Sprintf("%s (%s %s)", desc, m.Operation.Verb, m.Operation.Path)
}

func property(o schema.Option, presets *preset.Config, method string) mcp.ToolOption {
	desc := o.Description
	if len(o.EnumValues) > 0 {
		desc = strings.TrimSpace(desc + " (" + strings.Join(o.EnumValues, "|") + ")")
	}
	if v, ok := presetValue(presets, method, o.Name); ok {
		desc = strings.TrimSpace(fmt.Sprintf("%s (preset %v)", desc, v))
	} else if o.DefaultValue != nil {
		desc = strings.TrimSpace(fmt.Sprintf("%s (default %v)", desc, o.DefaultValue))
	}
	if o.IsBody() {
		desc = strings.TrimSpace(desc + " (JSON)")
	}

	props := []mcp.PropertyOption{mcp.Description(desc)}
	if o.Required || o.Location == endpoint.LocationPath {
		props = append(props, mcp.Required())
	}
	if len(o.EnumValues) > 0 {
		props = append(props, mcp.Enum(o.EnumValues...))
	}

	switch o.GoType {
	case "int", "float64":
		return mcp.WithNumber(o.Name, props...)
	case "bool":
		return mcp.WithBoolean(o.Name, props...)
	default:
		return mcp.WithString(o.Name, props...)
	}
}

func presetValue(presets *preset.Config, method, name string) (any, bool) {
	if presets == nil || presets.Mode != preset.ModeDefault {
		return nil, false
	}
	v, ok := presets.Merge(method)[name]
	return v, ok
}

func handler(client Caller, m wordnik.Method, pathParams []string) server.ToolHandlerFunc {
	bodyParam, hasBody := m.Operation.BodyParam()

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := make(map[string]any)
		for k, v := range request.GetArguments() {
			params[k] = v
		}

		args := make([]string, 0, len(pathParams))
		for _, name := range pathParams {
			v, ok := params[name]
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("missing required argument %q", name)), nil
			}
			args = append(args, fmt.Sprint(v))
			delete(params, name)
		}

		if hasBody && bodyParam.DataType != "string" {
			if raw, ok := params[bodyParam.Name].(string); ok {
				var v any
				if err := json.Unmarshal([]byte(raw), &v); err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("argument %q is not valid JSON: %v", bodyParam.Name, err)), nil
				}
				params[bodyParam.Name] = v
			}
		}

		resp, err := client.Call(ctx, m.Name, args, params)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(resp.Raw)), nil
	}
}
