// Tracks run-wide summary statistics for final reporting.

package sim

import (
	"fmt"
	"time"
)

// Metrics aggregates statistics about one simulation run for final
// reporting. Populated by the day loop; head-count units throughout.
type Metrics struct {
	DaysSimulated         int     // days actually stepped (== horizon unless early stop)
	PeakHospitalizable    float64 // largest Hospitalizable count seen
	PeakHospitalizableDay int     // day index of that peak
	FinalDead             float64 // Dead count on the last simulated day
	FinalImmune           float64 // Immune count on the last simulated day
	FinalDeathRate        float64 // Dead / (Total - Dead) on the last day
	MaxConservationDrift  float64 // worst relative deviation of the daily total
	MaxRowDrift           float64 // worst row-sum deviation across all matrices
}

func (m *Metrics) record(day int, counts Population, total float64) {
	m.DaysSimulated = day + 1
	if counts[Hospitalizable] > m.PeakHospitalizable {
		m.PeakHospitalizable = counts[Hospitalizable]
		m.PeakHospitalizableDay = day
	}
	m.FinalDead = counts[Dead]
	m.FinalImmune = counts[Immune]
	if alive := total - counts[Dead]; alive > 0 {
		m.FinalDeathRate = counts[Dead] / alive
	}
}

// Print displays the aggregated metrics at the end of a run.
func (m *Metrics) Print(elapsed time.Duration) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Days Simulated       : %d\n", m.DaysSimulated)
	fmt.Printf("Peak Hospitalizable  : %.0f (day %d)\n", m.PeakHospitalizable, m.PeakHospitalizableDay)
	fmt.Printf("Final Dead           : %.0f\n", m.FinalDead)
	fmt.Printf("Final Immune         : %.0f\n", m.FinalImmune)
	fmt.Printf("Final Death Rate     : %.4f%%\n", m.FinalDeathRate*100)
	fmt.Printf("Max Conservation Drift : %.2e\n", m.MaxConservationDrift)
	fmt.Printf("Wall Clock           : %v\n", elapsed)
}
