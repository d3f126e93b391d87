package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"stockmcp/internal/history"
	"stockmcp/internal/quote"
	"stockmcp/internal/service"
)

// toolResult marshals v as JSON and returns it as MCP text content.
func toolResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(data))},
	}, nil
}

// toolError returns err to the caller as an MCP error result carrying the
// {errorKind, message} payload. Errors without a kind are reported as the
// upstream being unavailable.
func toolError(err error) (*mcp.CallToolResult, error) {
	var te *quote.Error
	if !errors.As(err, &te) {
		te = &quote.Error{Kind: quote.KindUpstreamUnavailable, Message: err.Error()}
	}
	data, merr := json.Marshal(te)
	if merr != nil {
		return nil, fmt.Errorf("marshaling error result: %w", merr)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(data))},
		IsError: true,
	}, nil
}

type historyResult struct {
	Summary history.Summary `json:"summary"`
	Closes  []quote.Bar     `json:"closes"`
}

func registerTools(s *server.MCPServer, svc *service.Service) {
	s.AddTool(
		mcp.NewTool("stock_quote",
			mcp.WithDescription("Get the latest price quote for a stock ticker, e.g. \"NVDA\"."),
			mcp.WithString("symbol", mcp.Description("Stock ticker symbol"), mcp.Required()),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			q, err := svc.GetQuote(ctx, req.GetString("symbol", ""))
			if err != nil {
				return toolError(err)
			}
			return toolResult(q)
		},
	)

	s.AddTool(
		mcp.NewTool("stock_history",
			mcp.WithDescription("Get recent daily closing prices for a stock ticker with a computed summary (range, percent change)."),
			mcp.WithString("symbol", mcp.Description("Stock ticker symbol"), mcp.Required()),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			sum, bars, err := svc.PriceHistory(ctx, req.GetString("symbol", ""))
			if err != nil {
				return toolError(err)
			}
			return toolResult(historyResult{Summary: sum, Closes: bars})
		},
	)

	s.AddTool(
		mcp.NewTool("stock_info",
			mcp.WithDescription("Get background information about a company by ticker: name, sector, industry, website, market cap."),
			mcp.WithString("symbol", mcp.Description("Stock ticker symbol"), mcp.Required()),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			p, err := svc.StockInfo(ctx, req.GetString("symbol", ""))
			if err != nil {
				return toolError(err)
			}
			return toolResult(p)
		},
	)

	s.AddTool(
		mcp.NewTool("income_statement",
			mcp.WithDescription("Get the quarterly income statement for a stock ticker: revenue, gross profit, operating income, net income."),
			mcp.WithString("symbol", mcp.Description("Stock ticker symbol"), mcp.Required()),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			st, err := svc.IncomeStatement(ctx, req.GetString("symbol", ""))
			if err != nil {
				return toolError(err)
			}
			return toolResult(st)
		},
	)

	s.AddTool(
		mcp.NewTool("ticker_search",
			mcp.WithDescription("Find stock tickers by company name, e.g. \"Procter and Gamble\"."),
			mcp.WithString("name", mcp.Description("Company name to search for"), mcp.Required()),
			mcp.WithNumber("limit", mcp.Description("Maximum number of matches (default 5)")),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			matches := svc.SearchTickers(req.GetString("name", ""), req.GetInt("limit", 5))
			return toolResult(matches)
		},
	)
}
