package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gyeh/footstats/internal/analyze"
	"github.com/gyeh/footstats/internal/config"
	"github.com/gyeh/footstats/internal/csvio"
	"github.com/gyeh/footstats/internal/exitcode"
	"github.com/gyeh/footstats/internal/logging"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report result distribution, goals per league and team rankings from the combined CSV",
	RunE:  runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&cfg.InputPath, "in", filepath.Join(config.DefaultOutDir, config.CombinedFileName), "Combined matches CSV")
	f.IntVar(&cfg.TopN, "top", analyze.DefaultTopN, "Teams per ranking")
	f.StringVar(&cfg.Format, "format", "text", "Output format: text or json")
	f.StringVar(&cfg.Color, "color", "auto", "Colour output: auto, always or never")
	rootCmd.AddCommand(analyzeCmd)
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.ValidateAnalyze(); err != nil {
		return fail(log, exitcode.ValidationError, err, "config validation failed")
	}

	matches, err := csvio.ReadAll(cfg.InputPath)
	if err != nil {
		code := exitcode.AnalyzeError
		if errors.Is(err, csvio.ErrHeaderMismatch) {
			code = exitcode.ValidationError
		}
		return fail(log.With().Str("path", cfg.InputPath).Logger(), code, err, "failed to read combined dataset")
	}
	log.Debug().Int("matches", len(matches)).Str("path", cfg.InputPath).Msg("dataset loaded")

	report := analyze.Analyze(matches, cfg.TopN)
	out := cmd.OutOrStdout()
	if cfg.Format == "json" {
		err = analyze.RenderJSON(out, report)
	} else {
		err = analyze.NewTextRenderer(out, useColor(cfg.Color)).Render(report)
	}
	if err != nil {
		return fail(log, exitcode.AnalyzeError, err, "failed to render report")
	}
	return nil
}
