package types

// RunSummary is every statistic the report prints, in report order
type RunSummary struct {
	Header         RunHeader        `json:"header"`
	DecisionStats  []KeyCount       `json:"decision_stats"`
	HealthTrend    *HealthTrend     `json:"health_trend,omitempty"`
	AbilityUsage   []KeyCount       `json:"ability_usage"`
	Economy        Economy          `json:"economy"`
	MonsterScaling []MonsterScaling `json:"monster_scaling"`

	// Extended sections, printed in text form only on request
	MonstersKilled []KeyCount     `json:"monsters_killed"`
	LevelEconomy   []LevelEconomy `json:"level_economy"`
}

// RunHeader is the top block of the report
type RunHeader struct {
	HeroID         string `json:"hero_id"`
	Difficulty     string `json:"difficulty"`
	Encounters     int    `json:"encounters"`
	CurrentLevel   int    `json:"current_level"`
	CrystalsEarned int    `json:"crystals_earned"`
	CrystalsSpent  int    `json:"crystals_spent"`
	ItemsBought    int    `json:"items_bought"`
}

// KeyCount is a tallied key with its occurrence count
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// HealthTrend summarizes the heroHp values recorded on decisions
type HealthTrend struct {
	Samples    int `json:"samples"`
	StartingHP int `json:"starting_hp"`
	LowestHP   int `json:"lowest_hp"`
	// AverageHP is floored
	AverageHP int `json:"average_hp"`
}

// Economy is the shop spending summary
type Economy struct {
	AvgItemCost  float64 `json:"avg_item_cost"`
	PotionsUsed  int     `json:"potions_used"`
	ShopsSkipped int     `json:"shops_skipped"`
}

// MonsterScaling is one monster's end-of-run stat block
type MonsterScaling struct {
	MonsterID string `json:"monster_id"`
	HP        int    `json:"hp"`
	ATK       int    `json:"atk"`
	DEF       int    `json:"def"`
}

// LevelEconomy is crystals earned and spent on a single level
type LevelEconomy struct {
	Level  int `json:"level"`
	Earned int `json:"earned"`
	Spent  int `json:"spent"`
}
