package runlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/run-analyzer/internal/schemas"
	"github.com/jonathan/run-analyzer/internal/types"
	schemafiles "github.com/jonathan/run-analyzer/schemas"
)

// Load reads a run log JSON file, validates it and decodes it
func Load(path string) (*types.RunLog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return Parse(content)
}

// Parse validates and decodes run log content.
// Malformed JSON yields a ParseError, a document that does not satisfy the
// run log schema or whose fields do not decode yields a SchemaError.
func Parse(content []byte) (*types.RunLog, error) {
	if err := Validate(content); err != nil {
		return nil, err
	}

	var runLog types.RunLog
	if err := json.Unmarshal(content, &runLog); err != nil {
		return nil, &SchemaError{
			Message: "run log fields do not decode",
			Cause:   err,
		}
	}

	return &runLog, nil
}

// Validate checks run log content without decoding it into types
func Validate(content []byte) error {
	if !json.Valid(content) {
		var doc any
		return &ParseError{
			Message: "run log is not valid JSON",
			Cause:   json.Unmarshal(content, &doc),
		}
	}

	schema := schemafiles.MustGet(schemafiles.RunLogFile)
	if err := schemas.ValidateDocument(schema, content); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return &SchemaError{
				Message: "run log does not match schema",
				Cause:   err,
			}
		}
		return fmt.Errorf("failed to validate run log: %w", err)
	}

	return nil
}
