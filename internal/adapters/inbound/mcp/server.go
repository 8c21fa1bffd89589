package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/application"
)

// Version is reported in the MCP server handshake.
const Version = "0.1.0"

// NewBrandAuditMCPServer creates a new MCP server with all brandaudit tools
// and resources registered.
func NewBrandAuditMCPServer(detect *application.DetectService, audits *application.AuditService) *server.MCPServer {
	s := server.NewMCPServer(
		"brandaudit",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, detect, audits)
	registerResources(s, detect)

	return s
}
