package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/epi-sim/epi-sim/sim"
)

func TestParsePhases(t *testing.T) {
	schedule, err := ParsePhases([]string{"0:2.5", "21: 1.2", " 60:0.8"})
	require.NoError(t, err)
	assert.Equal(t, sim.Schedule{
		{OnsetDay: 0, R0: 2.5},
		{OnsetDay: 21, R0: 1.2},
		{OnsetDay: 60, R0: 0.8},
	}, schedule)
	require.NoError(t, schedule.Validate())
}

func TestParsePhases_DefaultsToSinglePhase(t *testing.T) {
	schedule, err := ParsePhases(nil)
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, 0, schedule[0].OnsetDay)
}

func TestParsePhases_Malformed(t *testing.T) {
	_, err := ParsePhases([]string{"21"})
	assert.ErrorContains(t, err, "onset:R0")

	_, err = ParsePhases([]string{"x:2.5"})
	assert.ErrorContains(t, err, "onset day")

	_, err = ParsePhases([]string{"21:fast"})
	assert.ErrorContains(t, err, "R0")
}
