package rendering

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/run-analyzer/internal/types"
)

// RenderJSON writes summary to w as indented JSON followed by a newline
func RenderJSON(w io.Writer, summary *types.RunSummary) error {
	jsonBytes, err := marshalSummary(summary)
	if err != nil {
		return err
	}
	if _, err := w.Write(jsonBytes); err != nil {
		return &RenderError{Message: "failed to write JSON summary", Cause: err}
	}
	return nil
}

// WriteSummaryFile writes summary as JSON to path, creating parent directories
func WriteSummaryFile(path string, summary *types.RunSummary) error {
	jsonBytes, err := marshalSummary(summary)
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return &RenderError{Message: "failed to create output directory", Cause: err}
		}
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to write summary to %s", path), Cause: err}
	}
	return nil
}

func marshalSummary(summary *types.RunSummary) ([]byte, error) {
	if summary == nil {
		return nil, &RenderError{Message: "summary is nil"}
	}
	jsonBytes, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, &RenderError{Message: "failed to marshal summary to JSON", Cause: err}
	}
	return append(jsonBytes, '\n'), nil
}
