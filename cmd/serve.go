package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"stockmcp/internal/mcpserver"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Stdout carries the MCP protocol; logs go to the log file and stderr.
	logW := io.Writer(os.Stderr)
	if cfg.Server.LogFile != "" {
		f, err := os.OpenFile(cfg.Server.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logW = io.MultiWriter(f, os.Stderr)
	}
	logger := slog.New(slog.NewTextHandler(logW, nil))
	logger.Info("logging initialized", "log_file", cfg.Server.LogFile)

	svc, err := buildService(cfg, logger)
	if err != nil {
		return err
	}

	s := mcpserver.NewServer(Version, svc)
	logger.Info("serving MCP on stdio", "version", Version)
	return mcpserver.Serve(s)
}
