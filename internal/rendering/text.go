// Package rendering renders computed run summaries as console text or JSON.
package rendering

import (
	"bytes"
	"io"
	"text/template"

	"github.com/jonathan/run-analyzer/internal/types"
)

// reportTemplate reproduces the tracked-run breakdown layout line for line.
// Each section header is preceded by a blank line.
const reportTemplate = `--- DETAILED RUN BREAKDOWN: {{.Header.HeroID}} ({{.Header.Difficulty}}) ---
Total Encounters: {{.Header.Encounters}}
Current Level: {{.Header.CurrentLevel}}
Crystals Earned: {{.Header.CrystalsEarned}}
Crystals Spent: {{.Header.CrystalsSpent}}
Items Bought: {{.Header.ItemsBought}}

--- DECISION STATS ---
{{range .DecisionStats}}- {{.Key}}: {{.Count}}
{{end}}
--- HEALTH TREND ---
{{with .HealthTrend}}Starting HP: {{.StartingHP}}
Lowest HP: {{.LowestHP}}
Avg HP: {{.AverageHP}}
{{end}}
--- ABILITY USAGE ---
{{range .AbilityUsage}}- {{.Key}}: {{.Count}}
{{end}}
--- ECONOMY ---
Avg Item Cost: {{printf "%.2f" .Economy.AvgItemCost}}
Potions Used: {{.Economy.PotionsUsed}}
Shops Skipped: {{.Economy.ShopsSkipped}}

--- MONSTER SCALING (End State) ---
{{range .MonsterScaling}}- {{.MonsterID}}: HP {{.HP}}, ATK {{.ATK}}, DEF {{.DEF}}
{{end}}`

const extendedTemplate = `
--- MONSTERS KILLED ---
{{range .MonstersKilled}}- {{.Key}}: {{.Count}}
{{end}}
--- PER-LEVEL ECONOMY ---
{{range .LevelEconomy}}- Level {{.Level}}: earned {{.Earned}}, spent {{.Spent}}
{{end}}`

var (
	reportTmpl   = template.Must(template.New("report").Parse(reportTemplate))
	extendedTmpl = template.Must(template.New("extended").Parse(extendedTemplate))
)

// TextOptions controls which sections RenderText prints
type TextOptions struct {
	// Extended appends the monsters-killed and per-level economy sections
	Extended bool
}

// RenderText writes the report sections for summary to w.
// Nothing is written if any section fails to render.
func RenderText(w io.Writer, summary *types.RunSummary, opts TextOptions) error {
	if summary == nil {
		return &RenderError{Message: "summary is nil"}
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, summary); err != nil {
		return &TemplateError{Message: "failed to execute report template", Cause: err}
	}
	if opts.Extended {
		if err := extendedTmpl.Execute(&buf, summary); err != nil {
			return &TemplateError{Message: "failed to execute extended template", Cause: err}
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return &RenderError{Message: "failed to write report", Cause: err}
	}
	return nil
}
