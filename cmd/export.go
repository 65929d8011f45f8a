package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	sim "github.com/epi-sim/epi-sim/sim"
)

// WriteTrajectoryCSV writes one row per simulated day with a column per
// health state, for downstream plotting.
func WriteTrajectoryCSV(path string, trajectory []sim.Population) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := append([]string{"day"}, sim.StateNames()...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for day, pop := range trajectory {
		record := make([]string, 0, sim.NumStates+1)
		record = append(record, strconv.Itoa(day))
		for _, count := range pop {
			record = append(record, strconv.FormatFloat(count, 'f', 3, 64))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing csv row %d: %w", day, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
