package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

// fixturePath returns the path to a run log fixture under testdata/run_logs
func fixturePath(name string) string {
	return filepath.Join("..", "..", "testdata", "run_logs", name)
}

// executeCommand runs rootCmd in-process with args and returns what it wrote.
// Flag values and their changed state are reset first since cobra keeps them
// on the package-level commands between runs.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	for _, name := range []string{"config", "in", "format", "out", "extended", "verbose"} {
		f := rootCmd.Flags().Lookup(name)
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	f := validateCmd.Flags().Lookup("in")
	_ = f.Value.Set(f.DefValue)
	f.Changed = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	// a nil slice would make cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
