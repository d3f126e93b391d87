package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"stockmcp/internal/service"
)

const searchURIPrefix = "tickers://search/"

func registerResources(s *server.MCPServer, svc *service.Service) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			searchURIPrefix+"{name}",
			"Ticker search",
			mcp.WithTemplateDescription("Find a stock ticker by company name, e.g. tickers://search/Apple"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			raw := strings.TrimPrefix(req.Params.URI, searchURIPrefix)
			name, err := url.PathUnescape(raw)
			if err != nil {
				name = raw
			}
			if name == "" {
				return nil, fmt.Errorf("company name is required")
			}
			matches := svc.SearchTickers(name, 5)
			data, err := json.MarshalIndent(matches, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("marshaling matches: %w", err)
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      req.Params.URI,
					MIMEType: "application/json",
					Text:     string(data),
				},
			}, nil
		},
	)
}
