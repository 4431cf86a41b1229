// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/run-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRunOverview outputs what was loaded from a run log before any statistics are computed.
func (p *Printer) PrintRunOverview(path string, runLog *types.RunLog) {
	if runLog == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Source:     %s\n", path))
	sb.WriteString(fmt.Sprintf("Hero:       %s\n", runLog.Run.HeroID))
	sb.WriteString(fmt.Sprintf("Difficulty: %s\n", runLog.Run.Difficulty))
	sb.WriteString(fmt.Sprintf("Decisions:  %d\n", len(runLog.Decisions)))
	sb.WriteString(fmt.Sprintf("Monsters:   %d snapshot(s)\n", runLog.Run.MonsterSnapshots.Len()))
	if len(runLog.CombatLog) > 0 {
		sb.WriteString(fmt.Sprintf("Combat log: %d bytes (not analyzed)\n", len(runLog.CombatLog)))
	}

	kinds := distinctKinds(runLog.Decisions)
	if len(kinds) > 0 {
		sb.WriteString("\nDecision kinds:\n")
		count := min(len(kinds), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", kinds[i]))
		}
		if len(kinds) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(kinds)-maxItemsToShow))
		}
	}

	p.printBox("LOADED RUN LOG", strings.TrimSuffix(sb.String(), "\n"))
}

func distinctKinds(decisions []types.Decision) []string {
	seen := make(map[string]bool)
	var kinds []string
	for _, d := range decisions {
		if !seen[d.Kind] {
			seen[d.Kind] = true
			kinds = append(kinds, d.Kind)
		}
	}
	return kinds
}

// truncate shortens line to at most width runes, ending it with "..." when cut
func truncate(line string, width int) string {
	if utf8.RuneCountInString(line) <= width {
		return line
	}
	runes := []rune(line)
	return string(runes[:width-3]) + "..."
}
