package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/epi-sim/epi-sim/sim"
)

const testScenarios = `
scenarios:
  baseline:
    healthy: 999900
    dead: 100
    immune: 0
    horizon_days: 180
    phases:
      - onset_day: 0
        r0: 2.5
  lockdown:
    healthy: 999900
    dead: 100
    immune: 0
    horizon_days: 180
    death_fraction: 0.2
    phases:
      - onset_day: 0
        r0: 2.5
      - onset_day: 21
        r0: 0.8
`

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarioConfig(t *testing.T) {
	path := writeScenarioFile(t, testScenarios)

	cfg, err := LoadScenarioConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Scenarios, 2)
	assert.Equal(t, 180, cfg.Scenarios["baseline"].HorizonDays)
}

func TestLoadScenarioConfig_UnknownFieldRejected(t *testing.T) {
	path := writeScenarioFile(t, `
scenarios:
  typo:
    healhty: 1000
`)
	_, err := LoadScenarioConfig(path)
	assert.Error(t, err, "strict decoding must reject misspelled keys")
}

func TestGetScenario_Missing(t *testing.T) {
	path := writeScenarioFile(t, testScenarios)
	_, err := GetScenario(path, "does-not-exist")
	assert.ErrorContains(t, err, "not found")
}

func TestScenarioConfig_DefaultsFillUnsetFields(t *testing.T) {
	path := writeScenarioFile(t, testScenarios)
	scenario, err := GetScenario(path, "lockdown")
	require.NoError(t, err)

	cfg := scenario.Config()
	defaults := sim.DefaultConfig()
	assert.Equal(t, 0.2, cfg.DeathFraction, "explicit value wins")
	assert.Equal(t, defaults.AsymptomaticFraction, cfg.AsymptomaticFraction, "unset fields fall back")
	assert.Equal(t, defaults.InfectiousDays, cfg.InfectiousDays)
}

func TestScenario_ScheduleAndSeed(t *testing.T) {
	path := writeScenarioFile(t, testScenarios)
	scenario, err := GetScenario(path, "lockdown")
	require.NoError(t, err)

	schedule := scenario.Schedule()
	require.NoError(t, schedule.Validate())
	assert.Equal(t, sim.Schedule{{OnsetDay: 0, R0: 2.5}, {OnsetDay: 21, R0: 0.8}}, schedule)
	assert.Equal(t, sim.SeedCounts{Healthy: 999900, Dead: 100, Immune: 0}, scenario.Seed())
}

func TestScenario_RunsEndToEnd(t *testing.T) {
	path := writeScenarioFile(t, testScenarios)
	scenario, err := GetScenario(path, "baseline")
	require.NoError(t, err)

	trajectory, err := sim.RunSimulation(scenario.Config(), scenario.Schedule(), scenario.Seed(), scenario.HorizonDays)
	require.NoError(t, err)
	assert.Len(t, trajectory, 180)
}
