package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hivemcp/internal/app"
	"hivemcp/internal/config"
)

var (
	serveTransport   string
	serveHost        string
	servePort        int
	serveConfigPath  string
	serveDebug       bool
	serveWatchConfig bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hive MCP server",
	Long: `Starts the hive and serves it over one MCP transport:

  http             gin bridge: POST / (plain JSON-RPC), GET /health, /mcp, /metrics, /ws
  streamable-http  MCP streamable HTTP on /mcp
  sse              MCP server-sent events on /sse and /message
  stdio            newline-delimited JSON-RPC on stdin/stdout, exits at end of input

Configuration is read from config.yaml in --config-path (default ~/.config/hivemcp).
Flags override file values. With --watch-config, changes to logging.level and
nlp.timeout are applied without a restart.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(serveDebug, serveConfigPath)
	cfg.Version = GetVersion()
	cfg.WatchConfig = serveWatchConfig
	if cmd.Flags().Changed("transport") {
		cfg.Transport = serveTransport
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveTransport, "transport", config.TransportHTTP, "Transport: "+strings.Join(config.Transports, ", "))
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Listen host for network transports")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Listen port for network transports")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Configuration directory (default ~/.config/hivemcp)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&serveWatchConfig, "watch-config", false, "Reload config.yaml when it changes")
}
