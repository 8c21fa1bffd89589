package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/application"
)

const guidelinesURI = "brandaudit://guidelines"

// registerResources registers all brandaudit MCP resources on the given server.
func registerResources(s *server.MCPServer, detect *application.DetectService) {
	// 1. brandaudit://guidelines - catalog summaries
	s.AddResource(
		mcplib.NewResource(
			guidelinesURI,
			"Brand Guidelines",
			mcplib.WithResourceDescription("Summaries of every brand guideline in the catalog"),
			mcplib.WithMIMEType("application/json"),
		),
		handleGuidelinesResource(detect),
	)

	// 2. brandaudit://guidelines/{brand} - one full guideline
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			guidelinesURI+"/{brand}",
			"Brand Guideline",
			mcplib.WithTemplateDescription("Colors, typography, logo and tone rules for one brand"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleGuidelineResource(detect),
	)
}

func handleGuidelinesResource(detect *application.DetectService) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		summaries, err := detect.Guidelines(ctx)
		if err != nil {
			return nil, err
		}
		return jsonContents(guidelinesURI, summaries)
	}
}

func handleGuidelineResource(detect *application.DetectService) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		brand := templateArg(request.Params.Arguments, "brand")
		if brand == "" {
			return nil, fmt.Errorf("brand name is required")
		}

		g, err := detect.Guideline(ctx, brand)
		if err != nil {
			return nil, err
		}
		return jsonContents(request.Params.URI, g)
	}
}

// templateArg reads a URI template variable, which the server may populate
// as a string or a list of strings.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
