package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "stockmcp",
	Short: "MCP server for stock market data",
	Long: `stockmcp is a Model Context Protocol server exposing stock market data
tools to AI agents: latest quotes, price history, company profiles,
quarterly income statements and ticker search.

Run "stockmcp serve" to start the server on stdio, or use the one-shot
subcommands (quote, search, dump) to exercise the same data path from
the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.json (default: CONFIG_FILE env or ./config.json)")
}

// SetVersionInfo records the release identity stamped in by the build.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
