package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/sprite-ai/tghtml/internal/api"
	"github.com/sprite-ai/tghtml/internal/config"
	"github.com/sprite-ai/tghtml/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server exposing the converter.

Endpoints:
  GET  /             Liveness probe, answers "ok"
  GET  /health       Health check
  POST /api/convert  Convert a message to HTML
  GET  /api/ws       WebSocket for repeated conversions

Settings come from the optional --config YAML file, then the PORT,
TGHTML_ADDR, TGHTML_LOG_LEVEL and TGHTML_LOG_FORMAT environment
variables, then flags.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("config", "c", "", "path to a YAML config file")
	serveCmd.Flags().StringP("addr", "a", "", "address to listen on")
	serveCmd.Flags().IntP("port", "p", 0, "port to listen on")
	serveCmd.Flags().String("log-level", "", "log level: debug, info, warn, error")
	serveCmd.Flags().String("log-format", "", "log format: text, json")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := serveConfig(cmd, os.Getenv)
	if err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	format, _ := logging.ParseFormat(cfg.LogFormat)
	logger := logging.Init(cmd.ErrOrStderr(), level, format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return api.New(cfg, logger).Run(ctx)
}

// serveConfig layers flags over the file and environment settings.
func serveConfig(cmd *cobra.Command, getenv func(string) string) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, getenv)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	return cfg, cfg.Validate()
}
