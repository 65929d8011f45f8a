package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/epi-sim/epi-sim/sim"
)

var (
	// CLI flags for the simulation run
	logLevel     string   // Log verbosity level
	horizonDays  int      // Total simulation horizon (in days)
	healthySeed  float64  // Observed Healthy head-count at day 0
	deadSeed     float64  // Observed Dead head-count at day 0
	immuneSeed   float64  // Observed Immune head-count at day 0
	phaseSpecs   []string // Policy phases as onset:R0 pairs
	outputPath   string   // Optional CSV destination for the trajectory
	scenarioFile string   // YAML file with named scenario presets
	scenarioName string   // Preset to load from the scenario file

	// CLI flags for epidemiological parameter overrides
	asymptomaticFraction float64 // Share of carriers who never develop symptoms
	hospitalizedFraction float64 // Share of symptomatic cases requiring hospitalization
	deathFraction        float64 // Share of hospitalized cases that die
	infectiousDays       float64 // Infectious period used to calibrate R0
	incubationDays       float64 // Mean carrier days before symptom onset
	asymptomaticDays     float64 // Mean carrier days before silent recovery
	symptomaticDays      float64 // Mean symptomatic days before hospitalization or recovery
	hospitalizedDays     float64 // Mean hospital days before death or recovery
	quietThreshold       float64 // Infectious fraction below which a day counts as quiet
	quietDays            int     // Consecutive quiet days before an early stop (0 = run full horizon)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "episim",
	Short: "Markov-chain simulator for epidemic policy scenarios",
}

// runCmd executes one simulation using parameters from CLI flags or a
// scenario preset.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one epidemic scenario",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := configFromFlags()
		schedule, err := ParsePhases(phaseSpecs)
		if err != nil {
			logrus.Fatalf("Invalid --phase value: %v", err)
		}
		seed := sim.SeedCounts{Healthy: healthySeed, Dead: deadSeed, Immune: immuneSeed}
		horizon := horizonDays

		if scenarioName != "" {
			scenario, err := GetScenario(scenarioFile, scenarioName)
			if err != nil {
				logrus.Fatalf("Could not load scenario %q from %s: %v", scenarioName, scenarioFile, err)
			}
			logrus.Infof("Using preset scenario %v", scenarioName)
			cfg, schedule, seed, horizon = scenario.Config(), scenario.Schedule(), scenario.Seed(), scenario.HorizonDays
		}

		logrus.Infof("Starting simulation with %.0f healthy, %.0f dead, %.0f immune, horizon=%d days, %d policy phases",
			seed.Healthy, seed.Dead, seed.Immune, horizon, len(schedule))

		startTime := time.Now() // Get current time (start)

		s, err := sim.NewSimulator(cfg, schedule, seed, horizon)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		trajectory, err := s.Run()
		if err != nil {
			logrus.Fatalf("Simulation aborted: %v", err)
		}
		s.Metrics.Print(time.Since(startTime))

		if outputPath != "" {
			if err := WriteTrajectoryCSV(outputPath, trajectory); err != nil {
				logrus.Fatalf("Could not write trajectory: %v", err)
			}
			logrus.Infof("Trajectory written to %s", outputPath)
		}

		logrus.Info("Simulation complete.")
	},
}

// ParsePhases converts repeated onset:R0 flag values into a policy
// schedule. An empty list falls back to a single no-measures phase.
func ParsePhases(specs []string) (sim.Schedule, error) {
	if len(specs) == 0 {
		return sim.Schedule{{OnsetDay: 0, R0: 2.5}}, nil
	}
	schedule := make(sim.Schedule, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("phase %q is not of the form onset:R0", spec)
		}
		onset, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("phase %q has a bad onset day: %w", spec, err)
		}
		r0, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("phase %q has a bad R0: %w", spec, err)
		}
		schedule = append(schedule, sim.Phase{OnsetDay: onset, R0: r0})
	}
	return schedule, nil
}

// configFromFlags assembles the epidemiological constants from the
// override flags; defaults mirror sim.DefaultConfig.
func configFromFlags() sim.Config {
	return sim.Config{
		AsymptomaticFraction: asymptomaticFraction,
		HospitalizedFraction: hospitalizedFraction,
		DeathFraction:        deathFraction,
		InfectiousDays:       infectiousDays,
		IncubationDays:       incubationDays,
		AsymptomaticDays:     asymptomaticDays,
		SymptomaticDays:      symptomaticDays,
		HospitalizedDays:     hospitalizedDays,
		QuietThreshold:       quietThreshold,
		QuietDays:            quietDays,
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := sim.DefaultConfig()

	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&horizonDays, "horizon", 365, "Total simulation horizon (in days)")

	// Observed seed counts
	runCmd.Flags().Float64Var(&healthySeed, "healthy", 999900, "Observed healthy head-count at day 0")
	runCmd.Flags().Float64Var(&deadSeed, "dead", 100, "Observed dead head-count at day 0")
	runCmd.Flags().Float64Var(&immuneSeed, "immune", 0, "Observed immune head-count at day 0")

	// Policy schedule
	runCmd.Flags().StringArrayVar(&phaseSpecs, "phase", nil, "Policy phase as onset:R0 (repeatable, onsets increasing)")

	// Epidemiological parameters
	runCmd.Flags().Float64Var(&asymptomaticFraction, "asymptomatic-fraction", defaults.AsymptomaticFraction, "Share of carriers who never develop symptoms")
	runCmd.Flags().Float64Var(&hospitalizedFraction, "hospitalized-fraction", defaults.HospitalizedFraction, "Share of symptomatic cases requiring hospitalization")
	runCmd.Flags().Float64Var(&deathFraction, "death-fraction", defaults.DeathFraction, "Share of hospitalized cases that die")
	runCmd.Flags().Float64Var(&infectiousDays, "infectious-days", defaults.InfectiousDays, "Infectious period length used to calibrate R0")
	runCmd.Flags().Float64Var(&incubationDays, "incubation-days", defaults.IncubationDays, "Mean carrier days before symptom onset")
	runCmd.Flags().Float64Var(&asymptomaticDays, "asymptomatic-days", defaults.AsymptomaticDays, "Mean carrier days before silent recovery")
	runCmd.Flags().Float64Var(&symptomaticDays, "symptomatic-days", defaults.SymptomaticDays, "Mean symptomatic days before hospitalization or recovery")
	runCmd.Flags().Float64Var(&hospitalizedDays, "hospitalized-days", defaults.HospitalizedDays, "Mean hospital days before death or recovery")
	runCmd.Flags().Float64Var(&quietThreshold, "quiet-threshold", 0, "Infectious fraction below which a day counts as quiet")
	runCmd.Flags().IntVar(&quietDays, "quiet-days", 0, "Consecutive quiet days before stopping early (0 disables)")

	// Scenario presets and output
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "scenarios.yaml", "YAML file with named scenario presets")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Scenario preset to run (overrides the other flags)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "CSV file to write the trajectory to")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
