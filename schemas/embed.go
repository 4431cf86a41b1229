// Package schemas embeds the JSON Schemas for run logs and computed run summaries.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var schemaFiles embed.FS

const (
	// RunLogFile is the schema a recorded run log must satisfy
	RunLogFile = "run_log.schema.json"
	// RunSummaryFile is the schema for the JSON summary artifact
	RunSummaryFile = "run_summary.schema.json"
)

// Get returns the content of an embedded schema file by name
func Get(name string) (string, error) {
	data, err := schemaFiles.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("schema %q not embedded: %w", name, err)
	}
	return string(data), nil
}

// MustGet returns an embedded schema, panicking if it is missing.
// Only use it with the file name constants above.
func MustGet(name string) string {
	content, err := Get(name)
	if err != nil {
		panic(err)
	}
	return content
}
