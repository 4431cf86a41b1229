package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/run-analyzer/internal/config"
	"github.com/jonathan/run-analyzer/internal/runlog"
	"github.com/jonathan/run-analyzer/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a run log against the run log schema",
	Long:  "Validates that a run log is well-formed JSON and carries every field the report reads. Prints each schema violation with its field path.",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to run log JSON file (defaults to the tracked run)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	path := validateInput
	if path == "" {
		path = config.InputFromEnv()
	}
	if path == "" {
		path = config.DefaultInput
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("run log not found or unreadable: %w", err)
	}

	if err := runlog.Validate(content); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			for _, fe := range validationErr.Errors {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "- %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("validation found %d violation(s)", len(validationErr.Errors))
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", path)
	return nil
}
