package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/jonathan/run-analyzer/internal/analysis"
	"github.com/jonathan/run-analyzer/internal/config"
	"github.com/jonathan/run-analyzer/internal/observability"
	"github.com/jonathan/run-analyzer/internal/rendering"
	"github.com/jonathan/run-analyzer/internal/runlog"
	"github.com/jonathan/run-analyzer/internal/schemas"
	"github.com/jonathan/run-analyzer/internal/types"
	schemafiles "github.com/jonathan/run-analyzer/schemas"
	"github.com/spf13/cobra"
)

var (
	reportConfigPath string
	reportInput      string
	reportFormat     string
	reportOut        string
	reportExtended   bool
	reportVerbose    bool
)

func init() {
	// Config file flag (processed first)
	rootCmd.Flags().StringVar(&reportConfigPath, "config", "", "Path to a JSON or YAML (.yaml/.yml) config file (values can be overridden by other flags)")

	rootCmd.Flags().StringVarP(&reportInput, "in", "i", "", "Path to run log JSON file (defaults to the tracked run)")
	rootCmd.Flags().StringVar(&reportFormat, "format", "", "Output format: text or json (default text)")
	rootCmd.Flags().StringVarP(&reportOut, "out", "o", "", "Path to also write the JSON summary (optional)")
	rootCmd.Flags().BoolVar(&reportExtended, "extended", false, "Also print monsters killed and per-level economy")
	rootCmd.Flags().BoolVarP(&reportVerbose, "verbose", "v", false, "Print load progress to stderr")
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveReportConfig(cmd)
	if err != nil {
		return err
	}

	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	if cfg.Verbose {
		logger.Printf("[LOAD] Reading run log from %s", cfg.Input)
	}

	runLog, err := runlog.Load(cfg.Input)
	if err != nil {
		return describeLoadError(err)
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRunOverview(cfg.Input, runLog)
	}

	summary := analysis.Summarize(runLog)

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case config.FormatJSON:
		err = rendering.RenderJSON(out, summary)
	default:
		err = rendering.RenderText(out, summary, rendering.TextOptions{Extended: cfg.Extended})
	}
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if cfg.Out != "" {
		if err := writeSummaryArtifact(cmd, cfg.Out, summary); err != nil {
			return err
		}
		if cfg.Verbose {
			logger.Printf("[REPORT] Summary written to %s", cfg.Out)
		}
	}

	return nil
}

// resolveReportConfig layers flags over the config file, then the
// environment, then defaults.
func resolveReportConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if reportConfigPath != "" {
		loadedCfg, err := config.LoadConfig(reportConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("in") {
		cfg.Input = reportInput
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = reportFormat
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = reportOut
	}
	if cmd.Flags().Changed("extended") {
		cfg.Extended = reportExtended
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = reportVerbose
	}

	if cfg.Input == "" {
		cfg.Input = config.InputFromEnv()
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func describeLoadError(err error) error {
	var loadErr *runlog.LoadError
	var parseErr *runlog.ParseError
	var schemaErr *runlog.SchemaError
	switch {
	case errors.As(err, &loadErr):
		return fmt.Errorf("run log not found or unreadable: %w", err)
	case errors.As(err, &parseErr):
		return fmt.Errorf("run log is malformed: %w", err)
	case errors.As(err, &schemaErr):
		return fmt.Errorf("run log is missing required fields: %w", err)
	default:
		return fmt.Errorf("failed to load run log: %w", err)
	}
}

// writeSummaryArtifact writes the JSON summary and checks it against the
// summary schema. A schema mismatch is reported but does not fail the run.
func writeSummaryArtifact(cmd *cobra.Command, path string, summary *types.RunSummary) error {
	if err := rendering.WriteSummaryFile(path, summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	schema := schemafiles.MustGet(schemafiles.RunSummaryFile)
	if err := schemas.ValidateFile(schema, path); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Generated summary does not validate against schema: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not validate summary against schema: %v\n", err)
		}
	}
	return nil
}
