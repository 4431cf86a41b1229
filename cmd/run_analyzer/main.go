// Package main provides the entry point for the run_analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "run_analyzer",
	Short: "Summarize a recorded game run",
	Long: `run_analyzer reads one recorded game-run log and prints a breakdown of encounters, decisions, health trend, ability usage, shop economy and end-state monster scaling.

With no flags it reads the tracked run at ` + "`docs/tracked-runs/asteria_camira_medium_20260202_160411.json`" + `.
Configuration can be loaded from a JSON or YAML (.yaml/.yml) file using --config. Command-line arguments override config file values.`,
	Args:          cobra.NoArgs,
	RunE:          runReport,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
