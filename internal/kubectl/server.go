package kubectl

import (
	"github.com/mark3labs/mcp-go/server"

	"kubechat/pkg/logging"
)

// ServerName identifies this process during the MCP handshake.
const ServerName = "kubechat-tool-server"

// Server wraps an MCP server exposing the kubectl tool catalog over stdio.
type Server struct {
	mcpServer *server.MCPServer
}

// NewServer assembles the MCP server: capabilities, instructions, and the
// kubectl tools backed by the given runner.
func NewServer(version string, runner Runner) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(ServerInstructions),
	)

	mcpServer.AddTools(NewTools(runner).ServerTools()...)

	return &Server{mcpServer: mcpServer}
}

// ServeStdio serves MCP over stdin/stdout until the peer disconnects or the
// process receives SIGINT/SIGTERM. Nothing in this process may write to
// stdout while serving; logs go to stderr.
func (s *Server) ServeStdio() error {
	logging.Info(logSubsystem, "Serving kubectl tools over stdio")
	return server.ServeStdio(s.mcpServer)
}

// MCPServer exposes the underlying server for in-process clients in tests.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}
