package cmd

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/epi-sim/epi-sim/sim"
)

func TestWriteTrajectoryCSV(t *testing.T) {
	trajectory, err := sim.RunSimulation(sim.DefaultConfig(),
		sim.Schedule{{OnsetDay: 0, R0: 2.5}},
		sim.SeedCounts{Healthy: 999900, Dead: 100}, 5)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "trajectory.csv")
	require.NoError(t, WriteTrajectoryCSV(path, trajectory))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6, "header plus one row per day")
	assert.Equal(t, append([]string{"day"}, sim.StateNames()...), records[0])
	assert.Equal(t, "0", records[1][0])
	assert.Equal(t, "4", records[5][0])
}
