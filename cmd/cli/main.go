package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"market-intel/internal/config"
	"market-intel/internal/logging"
)

type globalFlags struct {
	configPath string
	logLevel   string
}

func main() {
	config.LoadDotEnv()
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:           "cli",
		Short:         "Forecast series and simulate competitive scenarios",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to YAML config (scenario commands require a scenario)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")

	cmd.AddCommand(
		forecastCmd(g),
		accuracyCmd(g),
		priceWarCmd(g),
		launchCmd(g),
		promotionCmd(g),
		rankCmd(g),
	)
	return cmd
}

// setup loads the config and builds a console logger on stderr.
func (g *globalFlags) setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	logCfg := cfg.Log
	logCfg.Format = "console"
	if g.logLevel != "" {
		logCfg.Level = g.logLevel
	}
	log, err := logging.NewWithWriter(logCfg, os.Stderr)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, log, nil
}

// writeCSV creates path and hands it to write.
func writeCSV(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
