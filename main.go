package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/core"
)

func main() {
	root := &cobra.Command{
		Use:          "market-dashboard",
		Short:        "Crypto market dashboard backend",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "config.yaml", "config file path, empty to use defaults and environment only")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API",
		RunE:  runServe,
	}

	serveCmd.Flags().String("port", "", "listen port, overrides config and PORT")
	serveCmd.Flags().String("log-level", "", "log level (debug, info, warn, error), overrides config")

	root.AddCommand(serveCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Server.Port = port
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	defer logger.Sync()

	// Refuse to start without CoinGecko credentials
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := core.Setup(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if err := registry.Start(ctx); err != nil {
		return err
	}

	logger.Info("market dashboard started",
		zap.String("port", cfg.Server.Port),
		zap.String("coingecko", cfg.CoinGecko.BaseURL),
		zap.String("api_key_type", cfg.CoinGecko.APIKeyType))

	<-ctx.Done()
	logger.Info("received shutdown signal, stopping services")
	registry.Stop()

	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
