package cmd

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"stockmcp/internal/httpx"
	"stockmcp/internal/quote"
)

var dumpRange string

func init() {
	dumpCmd.Flags().StringVar(&dumpRange, "range", "1mo", "chart range to request (1d, 5d, 1mo, 3mo, 6mo, 1y, ...)")
	rootCmd.AddCommand(dumpCmd)
}

// dumpCmd prints the raw upstream chart payload for a symbol, bypassing
// normalization. Useful when the upstream schema shifts under us.
var dumpCmd = &cobra.Command{
	Use:    "dump SYMBOL",
	Short:  "Dump the raw upstream response for a ticker (debug)",
	Hidden: true,
	Args:   cobra.ExactArgs(1),
	RunE:   runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sym, err := quote.NormalizeSymbol(args[0])
	if err != nil {
		return err
	}

	hc := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("range", dumpRange)
	u := cfg.Upstream.Endpoint + "/v8/finance/chart/" + url.PathEscape(sym) + "?" + q.Encode()

	resp, err := hc.Get(cmd.Context(), u)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	fmt.Fprintf(os.Stderr, "GET %s -> %d\n", u, resp.StatusCode)
	_, err = io.Copy(os.Stdout, resp.Body)
	return err
}
