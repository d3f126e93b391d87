package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const stockSummaryTemplate = `You are a helpful financial assistant designed to summarise stock data.
Using the information below, summarise the pertinent points relevant to stock price movement.
Data: %s`

func registerPrompts(s *server.MCPServer) {
	s.AddPrompt(
		mcp.NewPrompt("stock_summary",
			mcp.WithPromptDescription("Prompt template for summarising stock price data."),
			mcp.WithArgument("stock_data",
				mcp.ArgumentDescription("The stock data to summarise"),
				mcp.RequiredArgument(),
			),
		),
		func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			data := req.Params.Arguments["stock_data"]
			if data == "" {
				return nil, fmt.Errorf("stock_data argument is required")
			}
			return mcp.NewGetPromptResult(
				"Summarise stock data",
				[]mcp.PromptMessage{
					mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(fmt.Sprintf(stockSummaryTemplate, data))),
				},
			), nil
		},
	)
}
