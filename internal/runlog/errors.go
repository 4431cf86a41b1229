// Package runlog loads recorded run logs from disk and checks them against the run log schema.
package runlog

import "fmt"

// LoadError represents a run log file that could not be read
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ParseError represents run log content that is not valid JSON
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// SchemaError represents a run log missing required fields or holding the wrong types
type SchemaError struct {
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}
