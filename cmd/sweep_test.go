package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSweep(t *testing.T) {
	path := writeScenarioFile(t, testScenarios)
	cfg, err := LoadScenarioConfig(path)
	require.NoError(t, err)

	results, err := runSweep(cfg)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "baseline", results[0].name)
	assert.Equal(t, "lockdown", results[1].name)

	// The lockdown scenario must not exceed the unmitigated peak.
	assert.LessOrEqual(t, results[1].metrics.PeakHospitalizable, results[0].metrics.PeakHospitalizable)
	for _, r := range results {
		assert.Equal(t, 180, r.metrics.DaysSimulated)
		assert.Greater(t, r.metrics.FinalDead, 100.0)
	}
}

func TestRunSweep_BadScenarioAborts(t *testing.T) {
	path := writeScenarioFile(t, `
scenarios:
  broken:
    healthy: 1000
    dead: 10
    horizon_days: 0
    phases:
      - onset_day: 0
        r0: 2.5
`)
	cfg, err := LoadScenarioConfig(path)
	require.NoError(t, err)

	_, err = runSweep(cfg)
	assert.ErrorContains(t, err, "broken")
}
