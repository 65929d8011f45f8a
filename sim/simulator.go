// sim/simulator.go
package sim

import (
	"math"

	"github.com/sirupsen/logrus"
)

// conservationEpsilon is the relative tolerance on the daily population
// total before drift is reported.
const conservationEpsilon = 1e-6

// Simulator owns the day-by-day state machine of one run: the current
// population fractions, the policy schedule, and the accumulated
// trajectory. It reads only immutable configuration, so independent
// simulators may run concurrently without locking.
type Simulator struct {
	Day     int
	Horizon int
	// Total head-count; fractions are scaled by it when recording.
	Total float64
	// Current population as fractions of Total, for numerical stability
	// across long horizons.
	Current  Population
	Schedule Schedule
	Builder  Builder
	Config   Config
	// Trajectory has one head-count vector per simulated day.
	Trajectory []Population
	Metrics    *Metrics

	quietStreak int
}

// NewSimulator validates the whole configuration eagerly and prepares a
// run: rates are derived, the schedule is checked, and the seed counts are
// back-derived into the initial population vector. Any violation surfaces
// here as a *ConfigError; Run itself cannot fail on user input.
func NewSimulator(cfg Config, schedule Schedule, seed SeedCounts, horizon int) (*Simulator, error) {
	if horizon <= 0 {
		return nil, configErrorf("horizon must be positive, got %d days", horizon)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	rates, err := DeriveRates(cfg)
	if err != nil {
		return nil, err
	}
	initial, err := DeriveSeed(seed, cfg)
	if err != nil {
		return nil, err
	}

	return &Simulator{
		Horizon:    horizon,
		Total:      initial.Total(),
		Current:    initial.Normalize(),
		Schedule:   schedule,
		Builder:    Builder{Rates: rates, InfectiousDays: cfg.InfectiousDays},
		Config:     cfg,
		Trajectory: make([]Population, 0, horizon),
		Metrics:    &Metrics{},
	}, nil
}

// Run steps the simulation to the horizon and returns the trajectory: one
// head-count vector per day. The run is atomic; on error no partial
// trajectory is returned. Conservation drift is logged, never fatal.
func (s *Simulator) Run() ([]Population, error) {
	for s.Day = 0; s.Day < s.Horizon; s.Day++ {
		phase := s.Schedule.ActivePhase(s.Day)
		m, err := s.Builder.Build(s.Current, phase.R0)
		if err != nil {
			return nil, err
		}
		if drift := m.MaxRowDrift(); drift > s.Metrics.MaxRowDrift {
			s.Metrics.MaxRowDrift = drift
			if drift > conservationEpsilon {
				logrus.Warnf("[day %03d] transition matrix row sums drift by %.3e", s.Day, drift)
			}
		}

		s.Current = m.Apply(s.Current)
		counts := s.Current.Scale(s.Total)
		s.Trajectory = append(s.Trajectory, counts)
		s.Metrics.record(s.Day, counts, s.Total)
		s.checkConservation()

		logrus.Infof("[day %03d] R0=%.2f %v", s.Day, phase.R0, counts)

		if s.quiescent() {
			logrus.Infof("[day %03d] infectious fraction below %v for %d days, stopping early",
				s.Day, s.Config.QuietThreshold, s.Config.QuietDays)
			break
		}
	}
	logrus.Infof("[day %03d] Simulation ended", s.Day)
	return s.Trajectory, nil
}

// checkConservation compares the fraction total against 1. The transition
// matrices are row-stochastic, so any deviation is floating-point
// accumulation; it is reported, not repaired.
func (s *Simulator) checkConservation() {
	drift := math.Abs(s.Current.Total() - 1)
	if drift > s.Metrics.MaxConservationDrift {
		s.Metrics.MaxConservationDrift = drift
	}
	if drift > conservationEpsilon {
		logrus.Warnf("[day %03d] population conservation drift %.3e exceeds %.0e", s.Day, drift, conservationEpsilon)
	}
}

// quiescent reports whether the optional early stop triggered: the
// infectious fraction stayed below QuietThreshold for QuietDays
// consecutive days. Disabled when QuietDays is 0.
func (s *Simulator) quiescent() bool {
	if s.Config.QuietDays == 0 {
		return false
	}
	if s.Current.Infectious() < s.Config.QuietThreshold {
		s.quietStreak++
	} else {
		s.quietStreak = 0
	}
	return s.quietStreak >= s.Config.QuietDays
}

// RunSimulation is the single-call entry point: it builds a Simulator from
// the given configuration and runs it to the horizon.
func RunSimulation(cfg Config, schedule Schedule, seed SeedCounts, horizon int) ([]Population, error) {
	s, err := NewSimulator(cfg, schedule, seed, horizon)
	if err != nil {
		return nil, err
	}
	return s.Run()
}
