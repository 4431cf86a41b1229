// Package types provides type definitions for the run log documents and the summaries computed from them.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// RunLog is one recorded game run as written by the run recorder
type RunLog struct {
	Run       Run        `json:"run"`
	Decisions []Decision `json:"decisions"`
	// CombatLog is carried through untouched; no report section reads it
	CombatLog json.RawMessage `json:"combatLog,omitempty"`
}

// Run holds the aggregate counters of a run at the moment it was recorded
type Run struct {
	HeroID                     string            `json:"heroId"`
	Difficulty                 string            `json:"difficulty"`
	Encounter                  int               `json:"encounter"`
	CurrentLevel               int               `json:"currentLevel"`
	CrystalsEarned             int               `json:"crystalsEarned"`
	CrystalsSpent              int               `json:"crystalsSpent"`
	PurchasedItems             []json.RawMessage `json:"purchasedItems"`
	HealthPotionsUsedThisLevel int               `json:"healthPotionsUsedThisLevel"`
	ShopsSkipped               int               `json:"shopsSkipped"`

	// Optional fields. Absent values leave the zero container.
	MonsterSnapshots       MonsterSnapshots `json:"monsterSnapshots"`
	MonstersKilled         OrderedCounts    `json:"monstersKilled"`
	CrystalsEarnedPerLevel map[string]int   `json:"crystalsEarnedPerLevel,omitempty"`
	CrystalsSpentPerLevel  map[string]int   `json:"crystalsSpentPerLevel,omitempty"`
}

// UnmarshalJSON reads the counters as integral numbers, so 12.0 decodes as 12
// the same way the schema accepts it as an integer.
func (r *Run) UnmarshalJSON(data []byte) error {
	doc := gjson.ParseBytes(data)
	if doc.Type == gjson.Null {
		return nil
	}
	if !doc.IsObject() {
		return fmt.Errorf("run: expected JSON object, got %s", doc.Type)
	}

	out := Run{
		HeroID:     doc.Get("heroId").String(),
		Difficulty: doc.Get("difficulty").String(),
	}
	counters := []struct {
		name string
		dst  *int
	}{
		{"encounter", &out.Encounter},
		{"currentLevel", &out.CurrentLevel},
		{"crystalsEarned", &out.CrystalsEarned},
		{"crystalsSpent", &out.CrystalsSpent},
		{"healthPotionsUsedThisLevel", &out.HealthPotionsUsedThisLevel},
		{"shopsSkipped", &out.ShopsSkipped},
	}
	for _, c := range counters {
		n, err := intValue(doc.Get(c.name))
		if err != nil {
			return fmt.Errorf("run.%s: %w", c.name, err)
		}
		*c.dst = n
	}

	doc.Get("purchasedItems").ForEach(func(_, item gjson.Result) bool {
		out.PurchasedItems = append(out.PurchasedItems, json.RawMessage(item.Raw))
		return true
	})

	if v := doc.Get("monsterSnapshots"); v.Exists() {
		if err := out.MonsterSnapshots.UnmarshalJSON([]byte(v.Raw)); err != nil {
			return fmt.Errorf("run.monsterSnapshots: %w", err)
		}
	}
	if v := doc.Get("monstersKilled"); v.Exists() {
		if err := out.MonstersKilled.UnmarshalJSON([]byte(v.Raw)); err != nil {
			return fmt.Errorf("run.monstersKilled: %w", err)
		}
	}

	var err error
	if out.CrystalsEarnedPerLevel, err = perLevel(doc.Get("crystalsEarnedPerLevel")); err != nil {
		return fmt.Errorf("run.crystalsEarnedPerLevel: %w", err)
	}
	if out.CrystalsSpentPerLevel, err = perLevel(doc.Get("crystalsSpentPerLevel")); err != nil {
		return fmt.Errorf("run.crystalsSpentPerLevel: %w", err)
	}

	*r = out
	return nil
}

func perLevel(v gjson.Result) (map[string]int, error) {
	if !v.IsObject() {
		return nil, nil
	}
	levels := make(map[string]int)
	err := decodeOrderedObject([]byte(v.Raw), func(level string, amount gjson.Result) error {
		n, err := intValue(amount)
		if err != nil {
			return fmt.Errorf("level %q: %w", level, err)
		}
		levels[level] = n
		return nil
	})
	return levels, err
}

// Decision is one recorded player or engine action
type Decision struct {
	Seq     int                        `json:"seq,omitempty"`
	At      string                     `json:"at,omitempty"`
	Kind    string                     `json:"kind"`
	Phase   string                     `json:"phase,omitempty"`
	Payload map[string]json.RawMessage `json:"payload,omitempty"`
}

// UnmarshalJSON keeps payload values raw; the typed accessors interpret them
func (d *Decision) UnmarshalJSON(data []byte) error {
	doc := gjson.ParseBytes(data)
	if doc.Type == gjson.Null {
		return nil
	}
	if !doc.IsObject() {
		return fmt.Errorf("decision: expected JSON object, got %s", doc.Type)
	}

	seq, err := intValue(doc.Get("seq"))
	if err != nil {
		return fmt.Errorf("decision seq: %w", err)
	}
	out := Decision{
		Seq:   seq,
		At:    doc.Get("at").String(),
		Kind:  doc.Get("kind").String(),
		Phase: doc.Get("phase").String(),
	}
	if payload := doc.Get("payload"); payload.IsObject() {
		out.Payload = make(map[string]json.RawMessage)
		payload.ForEach(func(key, value gjson.Result) bool {
			out.Payload[key.String()] = json.RawMessage(value.Raw)
			return true
		})
	}

	*d = out
	return nil
}

// DecisionKindCastAbility is the decision kind recorded when the hero uses an ability
const DecisionKindCastAbility = "cast_ability"

// HeroHP returns the heroHp payload value. Values that are null or not numbers
// report false. Fractional values are truncated.
func (d Decision) HeroHP() (int, bool) {
	raw, ok := d.lookup("heroHp")
	if !ok {
		return 0, false
	}
	var hp float64
	if err := json.Unmarshal(raw, &hp); err != nil {
		return 0, false
	}
	return int(hp), true
}

// AbilityID returns the abilityId payload value, or false when it is absent or null.
// Strings are returned unquoted; any other value is returned as its JSON text,
// so a numeric id 12 reads as "12".
func (d Decision) AbilityID() (string, bool) {
	raw, ok := d.lookup("abilityId")
	if !ok {
		return "", false
	}
	v := gjson.ParseBytes(raw)
	if v.Type == gjson.String {
		return v.Str, true
	}
	return v.Raw, true
}

func (d Decision) lookup(key string) (json.RawMessage, bool) {
	if d.Payload == nil {
		return nil, false
	}
	raw, ok := d.Payload[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
