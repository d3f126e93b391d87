package cmd

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	quoteHistory bool
	quoteInfo    bool
	quoteIncome  bool
)

func init() {
	quoteCmd.Flags().BoolVar(&quoteHistory, "history", false, "print recent daily closes with a summary instead of the latest quote")
	quoteCmd.Flags().BoolVar(&quoteInfo, "info", false, "print company background information instead of the latest quote")
	quoteCmd.Flags().BoolVar(&quoteIncome, "income", false, "print the quarterly income statement instead of the latest quote")
	rootCmd.AddCommand(quoteCmd)
}

var quoteCmd = &cobra.Command{
	Use:   "quote SYMBOL",
	Short: "Fetch data for a ticker and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuote,
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// One-shot invocation: keep stdout clean for the JSON payload.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := buildService(cfg, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var out any
	switch {
	case quoteHistory:
		sum, bars, err := svc.PriceHistory(ctx, args[0])
		if err != nil {
			return err
		}
		out = struct {
			Summary any `json:"summary"`
			Closes  any `json:"closes"`
		}{sum, bars}
	case quoteInfo:
		out, err = svc.StockInfo(ctx, args[0])
	case quoteIncome:
		out, err = svc.IncomeStatement(ctx, args[0])
	default:
		out, err = svc.GetQuote(ctx, args[0])
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
