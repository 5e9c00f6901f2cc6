package main

import (
	"context"
	"memberbot/internal/config"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "memberbot",
		Short:         "Discord bot that collects membership applications",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to config file")

	root.AddCommand(runCmd())
	root.AddCommand(applicationsCmd())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("memberbot failed")
		cancel()
		os.Exit(1)
	}
}

// loadConfig reads the config file and configures the global logger from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	setupLogging(cfg.Bot)

	return cfg, nil
}

func setupLogging(cfg config.BotConfig) {
	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})
	}

	zerolog.DefaultContextLogger = &log.Logger
}
