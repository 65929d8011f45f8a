package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	sim "github.com/epi-sim/epi-sim/sim"
)

// sweepResult is one scenario's summary line.
type sweepResult struct {
	name    string
	metrics sim.Metrics
}

// runSweep simulates every scenario concurrently and returns the summaries
// sorted by name. Each run is a pure function of its immutable config, so
// the goroutines share nothing mutable.
func runSweep(cfg *ScenarioConfig) ([]sweepResult, error) {
	var g errgroup.Group
	resultCh := make(chan sweepResult, len(cfg.Scenarios))

	for name, scenario := range cfg.Scenarios {
		name, scenario := name, scenario // per-iteration copies; go directive predates Go 1.22 loopvar semantics
		g.Go(func() error {
			s, err := sim.NewSimulator(scenario.Config(), scenario.Schedule(), scenario.Seed(), scenario.HorizonDays)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", name, err)
			}
			if _, err := s.Run(); err != nil {
				return fmt.Errorf("scenario %q: %w", name, err)
			}
			resultCh <- sweepResult{name: name, metrics: *s.Metrics}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(resultCh)

	results := make([]sweepResult, 0, len(cfg.Scenarios))
	for r := range resultCh {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].name < results[j].name })
	return results, nil
}

// sweepCmd runs every scenario in the scenario file and prints a comparison.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run all scenarios in the scenario file and compare outcomes",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := LoadScenarioConfig(scenarioFile)
		if err != nil {
			logrus.Fatalf("Could not load scenario file %s: %v", scenarioFile, err)
		}
		if len(cfg.Scenarios) == 0 {
			logrus.Fatalf("Scenario file %s contains no scenarios", scenarioFile)
		}

		startTime := time.Now()
		results, err := runSweep(cfg)
		if err != nil {
			logrus.Fatalf("Sweep aborted: %v", err)
		}

		fmt.Println("=== Scenario Sweep ===")
		for _, r := range results {
			fmt.Printf("%-24s peak hospitalizable %.0f (day %d), final dead %.0f, death rate %.4f%%\n",
				r.name, r.metrics.PeakHospitalizable, r.metrics.PeakHospitalizableDay,
				r.metrics.FinalDead, r.metrics.FinalDeathRate*100)
		}
		logrus.Infof("Sweep of %d scenarios finished in %v", len(results), time.Since(startTime))
	},
}

func init() {
	sweepCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	sweepCmd.Flags().StringVar(&scenarioFile, "scenario-file", "scenarios.yaml", "YAML file with named scenario presets")

	rootCmd.AddCommand(sweepCmd)
}
