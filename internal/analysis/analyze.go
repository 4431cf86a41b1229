// Package analysis computes the report statistics for a single run log.
// Every function is a pure linear scan over the decoded document.
package analysis

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/run-analyzer/internal/types"
)

// MissingAbilityID is the key ability casts without an abilityId are tallied under
const MissingAbilityID = "None"

// Summarize computes every report section for a run log
func Summarize(runLog *types.RunLog) *types.RunSummary {
	return &types.RunSummary{
		Header:         Header(&runLog.Run),
		DecisionStats:  DecisionStats(runLog.Decisions),
		HealthTrend:    HealthTrend(runLog.Decisions),
		AbilityUsage:   AbilityUsage(runLog.Decisions),
		Economy:        Economy(&runLog.Run),
		MonsterScaling: MonsterScaling(&runLog.Run),
		MonstersKilled: MonstersKilled(&runLog.Run),
		LevelEconomy:   LevelEconomy(&runLog.Run),
	}
}

// Header builds the breakdown header. Hero id and difficulty are uppercased.
func Header(run *types.Run) types.RunHeader {
	return types.RunHeader{
		HeroID:         strings.ToUpper(run.HeroID),
		Difficulty:     strings.ToUpper(run.Difficulty),
		Encounters:     run.Encounter,
		CurrentLevel:   run.CurrentLevel,
		CrystalsEarned: run.CrystalsEarned,
		CrystalsSpent:  run.CrystalsSpent,
		ItemsBought:    len(run.PurchasedItems),
	}
}

// DecisionStats counts decisions per kind, most frequent first
func DecisionStats(decisions []types.Decision) []types.KeyCount {
	kinds := newTally()
	for _, d := range decisions {
		kinds.add(d.Kind)
	}
	return kinds.byCountDesc()
}

// HealthTrend summarizes heroHp across decisions in order.
// Returns nil when no decision records heroHp.
func HealthTrend(decisions []types.Decision) *types.HealthTrend {
	var (
		trend *types.HealthTrend
		sum   int
	)

	for _, d := range decisions {
		hp, ok := d.HeroHP()
		if !ok {
			continue
		}
		if trend == nil {
			trend = &types.HealthTrend{StartingHP: hp, LowestHP: hp}
		}
		trend.Samples++
		trend.LowestHP = min(trend.LowestHP, hp)
		sum += hp
	}

	if trend != nil {
		trend.AverageHP = floorDiv(sum, trend.Samples)
	}
	return trend
}

// AbilityUsage counts cast_ability decisions per abilityId in first-cast order
func AbilityUsage(decisions []types.Decision) []types.KeyCount {
	abilities := newTally()
	for _, d := range decisions {
		if d.Kind != types.DecisionKindCastAbility {
			continue
		}
		id, ok := d.AbilityID()
		if !ok {
			id = MissingAbilityID
		}
		abilities.add(id)
	}
	return abilities.entries()
}

// Economy computes the shop summary. Average item cost is 0 when nothing was bought.
func Economy(run *types.Run) types.Economy {
	var avg float64
	if items := len(run.PurchasedItems); items > 0 {
		avg = float64(run.CrystalsSpent) / float64(items)
	}
	return types.Economy{
		AvgItemCost:  avg,
		PotionsUsed:  run.HealthPotionsUsedThisLevel,
		ShopsSkipped: run.ShopsSkipped,
	}
}

// MonsterScaling lists the end-state stat blocks in document order
func MonsterScaling(run *types.Run) []types.MonsterScaling {
	entries := run.MonsterSnapshots.Entries()
	out := make([]types.MonsterScaling, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.MonsterScaling{
			MonsterID: e.ID,
			HP:        e.Snapshot.HP,
			ATK:       e.Snapshot.ATK,
			DEF:       e.Snapshot.DEF,
		})
	}
	return out
}

// MonstersKilled lists kill counts per monster type in document order
func MonstersKilled(run *types.Run) []types.KeyCount {
	entries := run.MonstersKilled.Entries()
	out := make([]types.KeyCount, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.KeyCount{Key: e.Key, Count: e.Count})
	}
	return out
}

// LevelEconomy merges per-level crystal earnings and spending, ordered by level.
// A level present in only one of the maps reports 0 for the other.
func LevelEconomy(run *types.Run) []types.LevelEconomy {
	byLevel := make(map[int]*types.LevelEconomy)
	get := func(key string) *types.LevelEconomy {
		level, err := strconv.Atoi(key)
		if err != nil {
			return nil
		}
		le, ok := byLevel[level]
		if !ok {
			le = &types.LevelEconomy{Level: level}
			byLevel[level] = le
		}
		return le
	}

	for key, earned := range run.CrystalsEarnedPerLevel {
		if le := get(key); le != nil {
			le.Earned += earned
		}
	}
	for key, spent := range run.CrystalsSpentPerLevel {
		if le := get(key); le != nil {
			le.Spent += spent
		}
	}

	out := make([]types.LevelEconomy, 0, len(byLevel))
	for _, le := range byLevel {
		out = append(out, *le)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Level < out[j].Level
	})
	return out
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
