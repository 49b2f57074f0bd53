package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/axpost/internal/platform"
	"github.com/mj1618/axpost/internal/version"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the platform provider.
type mcpServer struct {
	provider   *platform.Provider
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all axpost tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{provider: provider}
	s.mcp = mcpserver.NewMCPServer(
		"axpost",
		version.Version,
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		logger.Info("serving MCP", "transport", cfg.Transport)
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("serving MCP", "transport", cfg.Transport, "addr", addr)
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("post_keyboard_event",
			mcp.WithDescription("Post one synthetic key-down or key-up event to an application through the accessibility API. Targets the frontmost app unless app, pid, or system-wide is given. Returns the raw accessibility status."),
			mcp.WithString("app", mcp.Description("Target application by name")),
			mcp.WithNumber("pid", mcp.Description("Target application by process ID")),
			mcp.WithBoolean("system-wide", mcp.Description("Target the system-wide element")),
			mcp.WithString("char", mcp.Description("Character the event represents (omit to derive it from the key)")),
			mcp.WithNumber("char-code", mcp.Description("Numeric character code (0-65535)")),
			mcp.WithString("key", mcp.Description("Key name (see list_keys) or numeric key code")),
			mcp.WithNumber("key-code", mcp.Description("Numeric virtual key code (0-65535)")),
			mcp.WithString("state", mcp.Description("Key transition: down (default) or up")),
		),
		s.handlePostKeyboardEvent,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_keys",
			mcp.WithDescription("List the named virtual key codes accepted by post_keyboard_event"),
		),
		s.handleListKeys,
	)

	s.mcp.AddTool(
		mcp.NewTool("check_permissions",
			mcp.WithDescription("Report whether this process has macOS accessibility permission"),
		),
		s.handleCheckPermissions,
	)
}

func (s *mcpServer) handlePostKeyboardEvent(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := postArgsFromParams(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	req, err := parsePostRequest(a)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	result, err := executePost(s.provider, req)
	if result == nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text := toYAML(result)
	if err != nil {
		return mcp.NewToolResultError(text), nil
	}
	return mcp.NewToolResultText(text), nil
}

// postArgsFromParams reads post_keyboard_event arguments, rejecting mistyped values.
func postArgsFromParams(params map[string]interface{}) (postArgs, error) {
	var a postArgs
	var err error
	if a.App, err = StringParam(params, "app"); err != nil {
		return a, err
	}
	pid, err := OptionalIntParam(params, "pid")
	if err != nil {
		return a, err
	}
	if pid != nil {
		a.PID = *pid
	}
	if a.SystemWide, err = BoolParam(params, "system-wide"); err != nil {
		return a, err
	}
	if a.Char, err = StringParam(params, "char"); err != nil {
		return a, err
	}
	if a.CharCode, err = OptionalIntParam(params, "char-code"); err != nil {
		return a, err
	}
	if a.Key, err = StringParam(params, "key"); err != nil {
		return a, err
	}
	if a.KeyCode, err = OptionalIntParam(params, "key-code"); err != nil {
		return a, err
	}
	if a.State, err = StringParam(params, "state"); err != nil {
		return a, err
	}
	return a, nil
}

func (s *mcpServer) handleListKeys(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(toYAML(keyTable())), nil
}

func (s *mcpServer) handleCheckPermissions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()
	return mcp.NewToolResultText(toYAML(checkPermissions(s.provider))), nil
}

func toYAML(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}
