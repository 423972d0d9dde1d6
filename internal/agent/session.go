package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"kubechat/pkg/logging"
)

const logSubsystem = "ToolClient"

// protocolVersion is the MCP revision spoken during the handshake.
const protocolVersion = "2024-11-05"

// Session timeout defaults, applied when Options leaves them zero.
const (
	DefaultConnectTimeout = 30 * time.Second
	DefaultRequestTimeout = 30 * time.Second
	DefaultCallTimeout    = 60 * time.Second
)

// newStdioClient spawns the tool server subprocess and returns a client bound
// to its stdio. Tests swap this for an in-process transport.
var newStdioClient = func(command string, env []string, args ...string) (client.MCPClient, error) {
	return client.NewStdioMCPClient(command, env, args...)
}

// Options configure a Session. Command is the server invocation, argv style;
// everything else has a default.
type Options struct {
	Command []string          // tool server command and args, e.g. ["kubechat", "serve"]
	Env     map[string]string // extra environment for the server subprocess

	ClientName    string // reported during the MCP handshake
	ClientVersion string

	ConnectTimeout time.Duration // spawn + initialize
	RequestTimeout time.Duration // tools/list
	CallTimeout    time.Duration // tools/call
}

// ToolOutcome is the result of one tool dispatch. Success mirrors the MCP
// IsError flag; tool-level failures (kubectl exiting non-zero, unreachable
// clusters) land here rather than as Go errors.
type ToolOutcome struct {
	Success bool
	Text    string
}

// Session owns one connection to the tool server: a spawned subprocess, the
// MCP handshake, the discovered tool catalog, and dispatch. All parameters
// are fixed at construction.
type Session struct {
	opts Options

	mu         sync.Mutex
	client     client.MCPClient
	discovered bool
	toolCache  []mcp.Tool
}

// NewSession creates a session for the given server command. Nothing is
// spawned until Connect.
func NewSession(opts Options) *Session {
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = DefaultConnectTimeout
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = DefaultCallTimeout
	}
	if opts.ClientName == "" {
		opts.ClientName = "kubechat"
	}
	if opts.ClientVersion == "" {
		opts.ClientVersion = "dev"
	}
	return &Session{opts: opts}
}

// Connect spawns the tool server over stdio and performs the MCP initialize
// handshake. Calling Connect on an already connected session is an error;
// after Close a session may connect again.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return fmt.Errorf("session already connected")
	}
	if len(s.opts.Command) == 0 {
		return &ConnectionError{Op: "connect", cause: fmt.Errorf("no tool server command configured")}
	}

	command := s.opts.Command[0]
	args := s.opts.Command[1:]

	logging.Debug(logSubsystem, "Starting tool server: %s", strings.Join(s.opts.Command, " "))

	mcpClient, err := newStdioClient(command, envSlice(s.opts.Env), args...)
	if err != nil {
		return &ConnectionError{Op: "connect", cause: err}
	}

	initRequest := mcp.InitializeRequest{
		Params: struct {
			ProtocolVersion string                 `json:"protocolVersion"`
			Capabilities    mcp.ClientCapabilities `json:"capabilities"`
			ClientInfo      mcp.Implementation     `json:"clientInfo"`
		}{
			ProtocolVersion: protocolVersion,
			ClientInfo: mcp.Implementation{
				Name:    s.opts.ClientName,
				Version: s.opts.ClientVersion,
			},
			Capabilities: mcp.ClientCapabilities{},
		},
	}

	initCtx, cancel := context.WithTimeout(ctx, s.opts.ConnectTimeout)
	defer cancel()

	if _, err := mcpClient.Initialize(initCtx, initRequest); err != nil {
		mcpClient.Close()
		return &ConnectionError{Op: "initialize", cause: err}
	}

	logging.Debug(logSubsystem, "Tool server session established")
	s.client = mcpClient
	return nil
}

// Tools returns the server's tool catalog. The first call issues tools/list;
// later calls return the cached descriptors in the same order without a
// second wire request.
func (s *Session) Tools(ctx context.Context) ([]mcp.Tool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil, &ConnectionError{Op: "list tools"}
	}
	if s.discovered {
		return s.toolCache, nil
	}

	listCtx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()

	result, err := s.client.ListTools(listCtx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, &ConnectionError{Op: "list tools", cause: err}
	}

	s.toolCache = result.Tools
	s.discovered = true
	logging.Debug(logSubsystem, "Discovered %d tools", len(s.toolCache))
	return s.toolCache, nil
}

// Call validates the tool name and arguments against the discovered catalog,
// then dispatches the call. Unknown names and schema violations fail before
// anything reaches the server.
func (s *Session) Call(ctx context.Context, name string, args map[string]interface{}) (ToolOutcome, error) {
	tools, err := s.Tools(ctx)
	if err != nil {
		return ToolOutcome{}, err
	}

	var tool *mcp.Tool
	for i := range tools {
		if tools[i].Name == name {
			tool = &tools[i]
			break
		}
	}
	if tool == nil {
		return ToolOutcome{}, &UnknownToolError{Tool: name}
	}
	if err := ValidateArguments(*tool, args); err != nil {
		return ToolOutcome{}, err
	}

	s.mu.Lock()
	mcpClient := s.client
	callTimeout := s.opts.CallTimeout
	s.mu.Unlock()
	if mcpClient == nil {
		return ToolOutcome{}, &ConnectionError{Op: "call tool"}
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}

	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	logging.Debug(logSubsystem, "Calling tool %s", name)
	result, err := mcpClient.CallTool(callCtx, request)
	if err != nil {
		return ToolOutcome{}, &ConnectionError{Op: "call tool", cause: err}
	}

	return outcomeFromResult(result), nil
}

// Close shuts down the transport and the server subprocess. Safe to call any
// number of times; calls after the first return nil.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	err := s.client.Close()
	s.client = nil
	s.discovered = false
	s.toolCache = nil
	logging.Debug(logSubsystem, "Tool server session closed")
	return err
}

func outcomeFromResult(result *mcp.CallToolResult) ToolOutcome {
	var parts []string
	for _, content := range result.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			parts = append(parts, textContent.Text)
		}
	}
	return ToolOutcome{
		Success: !result.IsError,
		Text:    strings.Join(parts, "\n"),
	}
}

// envSlice flattens the configured environment into KEY=VALUE form, sorted
// for deterministic subprocess spawns.
func envSlice(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}
