package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/observation"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/application"
)

const defaultHistoryLimit = 10

// registerTools registers all brandaudit MCP tools on the given server.
func registerTools(s *server.MCPServer, detect *application.DetectService, audits *application.AuditService) {
	// 1. brandaudit_detect_brand
	s.AddTool(
		mcplib.NewTool("brandaudit_detect_brand",
			mcplib.WithDescription("Detect which brand guideline applies to a website URL. Returns the match with confidence, or suggestions when detection is not confident."),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("Website URL, with or without scheme"),
			),
			mcplib.WithString("company_name", mcplib.Description("Optional company name hint")),
		),
		handleDetectBrand(detect),
	)

	// 2. brandaudit_suggest_brands
	s.AddTool(
		mcplib.NewTool("brandaudit_suggest_brands",
			mcplib.WithDescription("Search the guideline catalog for brands whose names resemble a query"),
			mcplib.WithString("query",
				mcplib.Required(),
				mcplib.Description("Free-text brand or company name"),
			),
		),
		handleSuggestBrands(detect),
	)

	// 3. brandaudit_analyze
	s.AddTool(
		mcplib.NewTool("brandaudit_analyze",
			mcplib.WithDescription("Audit a website observation against a brand guideline and return the compliance report"),
			mcplib.WithString("observation",
				mcplib.Required(),
				mcplib.Description("WebsiteObservation as JSON: url, elements, colors, images"),
			),
			mcplib.WithString("brand_name", mcplib.Description("Guideline to audit against; detected from the URL when omitted")),
			mcplib.WithString("url", mcplib.Description("Overrides the observation URL")),
			mcplib.WithString("company_name", mcplib.Description("Company name hint for detection")),
		),
		handleAnalyze(audits),
	)

	// 4. brandaudit_history
	s.AddTool(
		mcplib.NewTool("brandaudit_history",
			mcplib.WithDescription("List stored audits for the registrable domain of a URL, newest first"),
			mcplib.WithString("url", mcplib.Required(), mcplib.Description("Website URL or domain")),
			mcplib.WithNumber("limit", mcplib.Description("Maximum records to return (default 10)")),
		),
		handleHistory(audits),
	)
}

func handleDetectBrand(detect *application.DetectService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		hint := request.GetString("company_name", "")

		res, err := detect.DetectBrand(ctx, url, hint)
		if err != nil {
			return errorResult(fmt.Sprintf("detection failed: %v", err)), nil
		}
		return jsonResult(res)
	}
}

func handleSuggestBrands(detect *application.DetectService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		suggestions, err := detect.Suggest(ctx, query)
		if err != nil {
			return errorResult(fmt.Sprintf("suggest failed: %v", err)), nil
		}
		return jsonResult(suggestions)
	}
}

func handleAnalyze(audits *application.AuditService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("observation")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		obs, err := observation.Decode([]byte(raw))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		rec, err := audits.Audit(ctx, application.AuditRequest{
			URL:         request.GetString("url", ""),
			BrandName:   request.GetString("brand_name", ""),
			CompanyHint: request.GetString("company_name", ""),
			Observation: obs,
		})
		if err != nil {
			// The detection carries suggestions the caller can retry with.
			var nd *application.NotDetectedError
			if errors.As(err, &nd) && nd.Detection != nil {
				res, jerr := jsonResult(nd.Detection)
				if jerr != nil {
					return nil, jerr
				}
				res.IsError = true
				return res, nil
			}
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(rec)
	}
}

func handleHistory(audits *application.AuditService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		limit := request.GetInt("limit", defaultHistoryLimit)

		records, err := audits.History(ctx, url, limit)
		if err != nil {
			return errorResult(fmt.Sprintf("history failed: %v", err)), nil
		}
		return jsonResult(records)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
