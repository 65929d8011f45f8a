package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/epi-sim/epi-sim/sim"
)

// PhaseSpec is one policy phase entry in a scenario file.
type PhaseSpec struct {
	OnsetDay int     `yaml:"onset_day"`
	R0       float64 `yaml:"r0"`
}

// Scenario describes one named preset in a scenario file. Epidemiological
// fields left at zero fall back to the study defaults.
type Scenario struct {
	Healthy     float64     `yaml:"healthy"`
	Dead        float64     `yaml:"dead"`
	Immune      float64     `yaml:"immune"`
	HorizonDays int         `yaml:"horizon_days"`
	Phases      []PhaseSpec `yaml:"phases"`

	AsymptomaticFraction float64 `yaml:"asymptomatic_fraction"`
	HospitalizedFraction float64 `yaml:"hospitalized_fraction"`
	DeathFraction        float64 `yaml:"death_fraction"`
	InfectiousDays       float64 `yaml:"infectious_days"`
	IncubationDays       float64 `yaml:"incubation_days"`
	AsymptomaticDays     float64 `yaml:"asymptomatic_days"`
	SymptomaticDays      float64 `yaml:"symptomatic_days"`
	HospitalizedDays     float64 `yaml:"hospitalized_days"`
	QuietThreshold       float64 `yaml:"quiet_threshold"`
	QuietDays            int     `yaml:"quiet_days"`
}

// ScenarioConfig represents the full scenario file structure.
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// LoadScenarioConfig parses a scenario YAML file with strict field
// checking, so typos in keys cause errors instead of silent defaults.
func LoadScenarioConfig(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var cfg ScenarioConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	return &cfg, nil
}

// GetScenario loads path and returns the named preset.
func GetScenario(path, name string) (Scenario, error) {
	cfg, err := LoadScenarioConfig(path)
	if err != nil {
		return Scenario{}, err
	}
	scenario, ok := cfg.Scenarios[name]
	if !ok {
		return Scenario{}, fmt.Errorf("scenario %q not found in %s", name, path)
	}
	return scenario, nil
}

// Config assembles the epidemiological constants, filling unset fields
// from the study defaults.
func (s Scenario) Config() sim.Config {
	cfg := sim.DefaultConfig()
	override := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	override(&cfg.AsymptomaticFraction, s.AsymptomaticFraction)
	override(&cfg.HospitalizedFraction, s.HospitalizedFraction)
	override(&cfg.DeathFraction, s.DeathFraction)
	override(&cfg.InfectiousDays, s.InfectiousDays)
	override(&cfg.IncubationDays, s.IncubationDays)
	override(&cfg.AsymptomaticDays, s.AsymptomaticDays)
	override(&cfg.SymptomaticDays, s.SymptomaticDays)
	override(&cfg.HospitalizedDays, s.HospitalizedDays)
	cfg.QuietThreshold = s.QuietThreshold
	cfg.QuietDays = s.QuietDays
	return cfg
}

// Schedule converts the phase entries into a policy schedule.
func (s Scenario) Schedule() sim.Schedule {
	schedule := make(sim.Schedule, 0, len(s.Phases))
	for _, p := range s.Phases {
		schedule = append(schedule, sim.Phase{OnsetDay: p.OnsetDay, R0: p.R0})
	}
	return schedule
}

// Seed returns the observed head-counts of the scenario.
func (s Scenario) Seed() sim.SeedCounts {
	return sim.SeedCounts{Healthy: s.Healthy, Dead: s.Dead, Immune: s.Immune}
}
