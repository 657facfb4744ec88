package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewInspektaMCPServer creates an MCP server with all inspekta tools and
// resources registered. workDir is where .inspekta.yaml and the record
// store live; templatePath overrides the configured template when non-empty.
func NewInspektaMCPServer(workDir, templatePath string) *server.MCPServer {
	s := server.NewMCPServer(
		"inspekta",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, workDir, templatePath)
	registerResources(s, workDir, templatePath)

	return s
}
