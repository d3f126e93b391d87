// Package mcpserver exposes the stock tools over the Model Context
// Protocol. The wire protocol itself is provided by mcp-go; this package
// only registers the tool, prompt and resource handlers.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"stockmcp/internal/service"
)

// NewServer creates the stockmcp MCP server with all handlers registered.
func NewServer(version string, svc *service.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"stockmcp",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
	)
	registerTools(s, svc)
	registerPrompts(s)
	registerResources(s, svc)
	return s
}

// Serve runs the MCP server on stdio. Stdout carries the protocol, so
// nothing else may write to it while serving.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
