package runlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/run-analyzer/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePath(name string) string {
	return filepath.Join("..", "..", "testdata", "run_logs", name)
}

func TestLoad_ValidFile(t *testing.T) {
	runLog, err := Load(fixturePath("tracked_run.json"))
	require.NoError(t, err)
	require.NotNil(t, runLog)

	assert.Equal(t, "camira", runLog.Run.HeroID)
	assert.Equal(t, "medium", runLog.Run.Difficulty)
	assert.Equal(t, 12, runLog.Run.Encounter)
	assert.Len(t, runLog.Run.PurchasedItems, 4)
	assert.Len(t, runLog.Decisions, 9)
	assert.Equal(t, 3, runLog.Run.MonsterSnapshots.Len())
	assert.Equal(t, 3, runLog.Run.MonstersKilled.Len())
	assert.NotEmpty(t, runLog.CombatLog)
}

func TestLoad_OptionalFieldsAbsent(t *testing.T) {
	runLog, err := Load(fixturePath("minimal_run.json"))
	require.NoError(t, err)

	assert.Empty(t, runLog.Run.PurchasedItems)
	assert.Equal(t, 0, runLog.Run.MonstersKilled.Len())
	assert.Nil(t, runLog.Run.CrystalsEarnedPerLevel)
	assert.Nil(t, runLog.Decisions[0].Payload)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("nonexistent_file.json")
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Equal(t, "nonexistent_file.json", loadErr.Path)
	assert.Contains(t, loadErr.Error(), "failed to read file")
	assert.True(t, os.IsNotExist(loadErr.Unwrap()))
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := Load(fixturePath("malformed.json"))
	require.Error(t, err)

	parseErr, ok := err.(*ParseError)
	require.True(t, ok, "error should be ParseError type")
	assert.Contains(t, parseErr.Error(), "not valid JSON")
}

func TestLoad_MissingRequiredRunField(t *testing.T) {
	_, err := Load(fixturePath("missing_hero.json"))
	require.Error(t, err)

	schemaErr, ok := err.(*SchemaError)
	require.True(t, ok, "error should be SchemaError type")
	assert.Contains(t, schemaErr.Error(), "heroId")

	validationErr, ok := schemaErr.Unwrap().(*schemas.ValidationError)
	require.True(t, ok, "cause should be ValidationError type")
	assert.Len(t, validationErr.Errors, 1)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "missing run",
			content: `{"decisions": []}`,
			field:   "run",
		},
		{
			name:    "missing decisions",
			content: `{"run": {"heroId": "a", "difficulty": "b", "encounter": 1, "currentLevel": 1, "crystalsEarned": 0, "crystalsSpent": 0, "purchasedItems": [], "healthPotionsUsedThisLevel": 0, "shopsSkipped": 0}}`,
			field:   "decisions",
		},
		{
			name:    "decision without kind",
			content: `{"run": {"heroId": "a", "difficulty": "b", "encounter": 1, "currentLevel": 1, "crystalsEarned": 0, "crystalsSpent": 0, "purchasedItems": [], "healthPotionsUsedThisLevel": 0, "shopsSkipped": 0}, "decisions": [{"payload": {}}]}`,
			field:   "kind",
		},
		{
			name:    "snapshot without def",
			content: `{"run": {"heroId": "a", "difficulty": "b", "encounter": 1, "currentLevel": 1, "crystalsEarned": 0, "crystalsSpent": 0, "purchasedItems": [], "healthPotionsUsedThisLevel": 0, "shopsSkipped": 0, "monsterSnapshots": {"imp": {"hp": 3, "atk": 1}}}, "decisions": []}`,
			field:   "def",
		},
		{
			name:    "shopsSkipped wrong type",
			content: `{"run": {"heroId": "a", "difficulty": "b", "encounter": 1, "currentLevel": 1, "crystalsEarned": 0, "crystalsSpent": 0, "purchasedItems": [], "healthPotionsUsedThisLevel": 0, "shopsSkipped": "none"}, "decisions": []}`,
			field:   "shopsSkipped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)

			schemaErr, ok := err.(*SchemaError)
			require.True(t, ok, "error should be SchemaError type, got %T", err)
			assert.Contains(t, schemaErr.Error(), tt.field)
		})
	}
}

func TestValidate_AcceptsNullOptionals(t *testing.T) {
	content := `{"run": {"heroId": "a", "difficulty": "b", "encounter": 1, "currentLevel": 1, "crystalsEarned": 0, "crystalsSpent": 0, "purchasedItems": [], "healthPotionsUsedThisLevel": 0, "shopsSkipped": 0, "monsterSnapshots": null}, "decisions": [{"kind": "move", "payload": null}]}`
	assert.NoError(t, Validate([]byte(content)))
}

func TestParse_IntegralFloatCounters(t *testing.T) {
	content := `{"run": {"heroId": "camira", "difficulty": "medium", "encounter": 12.0, "currentLevel": 2.0, "crystalsEarned": 150, "crystalsSpent": 40.0, "purchasedItems": [{"id": "iron_sword"}], "healthPotionsUsedThisLevel": 1, "shopsSkipped": 0.0, "monsterSnapshots": {"imp": {"hp": 30.0, "atk": 4, "def": 1}}}, "decisions": [{"seq": 1.0, "kind": "attack", "payload": {"heroHp": 80}}]}`

	runLog, err := Parse([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, 12, runLog.Run.Encounter)
	assert.Equal(t, 2, runLog.Run.CurrentLevel)
	assert.Equal(t, 40, runLog.Run.CrystalsSpent)
	assert.Equal(t, 1, runLog.Decisions[0].Seq)

	snap, ok := runLog.Run.MonsterSnapshots.Get("imp")
	require.True(t, ok)
	assert.Equal(t, 30, snap.HP)
}
