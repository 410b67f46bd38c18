package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/footstats/internal/config"
	"github.com/gyeh/footstats/internal/exitcode"
	"github.com/gyeh/footstats/internal/logging"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "footstats",
	Short: "football-data.co.uk results scraper and analyzer",
	Long: "Fetches historical match results for a catalog of leagues and seasons from football-data.co.uk, " +
		"writes a combined CSV plus one CSV per league, and reports win/draw/loss statistics.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg.ConfigPath == "" {
			return nil
		}
		if err := cfg.LoadFromFile(cfg.ConfigPath, cmd.Flags().Changed); err != nil {
			log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
			return fail(log, exitcode.ValidationError, err, "config file rejected")
		}
		return nil
	},
}

func defaultHost() string {
	if h := os.Getenv("FOOTSTATS_HOST"); h != "" {
		return h
	}
	return config.DefaultHost
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.ConfigPath, "config", "", "YAML config file (host, out_dir, timeout, leagues, seasons); flags given explicitly win")
	pf.StringVar(&cfg.LogFormat, "log-format", "auto", "Log format: text, json or auto")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	pf.StringVar(&cfg.Host, config.FlagHost, defaultHost(), "Base URL of the data host (or set FOOTSTATS_HOST)")
}
