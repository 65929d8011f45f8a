package sim

// Config holds the epidemiological constants for one simulation run. It is
// built once, validated eagerly, and never mutated afterwards, so it can be
// shared freely across concurrent scenario runs.
type Config struct {
	// Fractions from epidemiological studies.
	AsymptomaticFraction float64 // share of carriers who never develop symptoms
	HospitalizedFraction float64 // share of symptomatic cases requiring hospitalization
	DeathFraction        float64 // share of hospitalized cases that die

	// Mean sojourn durations in days.
	InfectiousDays   float64 // infectious period length used to calibrate R0
	IncubationDays   float64 // carrier time before symptom onset
	AsymptomaticDays float64 // carrier time before silent recovery
	SymptomaticDays  float64 // symptomatic time before hospitalization or recovery
	HospitalizedDays float64 // hospital time before death or recovery

	// Optional early stop: end the run once the infectious fraction stays
	// below QuietThreshold for QuietDays consecutive days. Zero values
	// disable it and the trajectory always spans the full horizon.
	QuietThreshold float64
	QuietDays      int
}

// DefaultConfig returns the study-derived baseline parameters.
func DefaultConfig() Config {
	return Config{
		AsymptomaticFraction: 0.3,
		HospitalizedFraction: 0.12,
		DeathFraction:        0.25,
		InfectiousDays:       8,
		IncubationDays:       5,
		AsymptomaticDays:     8,
		SymptomaticDays:      6,
		HospitalizedDays:     10,
	}
}

// Validate checks every constant a run depends on. Returns a *ConfigError
// naming the violated constraint, or nil.
func (c Config) Validate() error {
	fractions := []struct {
		name  string
		value float64
	}{
		{"asymptomatic fraction", c.AsymptomaticFraction},
		{"hospitalized fraction", c.HospitalizedFraction},
		{"death fraction", c.DeathFraction},
	}
	for _, f := range fractions {
		if f.value < 0 || f.value > 1 {
			return configErrorf("%s must be in [0, 1], got %v", f.name, f.value)
		}
	}

	durations := []struct {
		name  string
		value float64
	}{
		{"infectious days", c.InfectiousDays},
		{"incubation days", c.IncubationDays},
		{"asymptomatic days", c.AsymptomaticDays},
		{"symptomatic days", c.SymptomaticDays},
		{"hospitalized days", c.HospitalizedDays},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return configErrorf("%s must be positive, got %v", d.name, d.value)
		}
	}

	if c.QuietThreshold < 0 {
		return configErrorf("quiet threshold must be non-negative, got %v", c.QuietThreshold)
	}
	if c.QuietDays < 0 {
		return configErrorf("quiet days must be non-negative, got %d", c.QuietDays)
	}

	// Same-day exit probabilities must leave room for the diagonal self-loop,
	// otherwise the 1-day step is too coarse for these parameters.
	if _, err := DeriveRates(c); err != nil {
		return err
	}
	return nil
}

// Phase is one contact-reduction regime of the policy schedule.
type Phase struct {
	OnsetDay int     // first simulated day the phase applies
	R0       float64 // reproduction number while the phase is active
}

// Schedule is the ordered list of policy phases for a run. Phases only
// tighten over time in this model; onsets must be strictly increasing and
// the first phase must start at day 0.
type Schedule []Phase

// Validate returns a *ConfigError if the schedule cannot drive a run.
func (s Schedule) Validate() error {
	if len(s) == 0 {
		return configErrorf("policy schedule must contain at least one phase")
	}
	if s[0].OnsetDay != 0 {
		return configErrorf("first policy phase must start at day 0, got day %d", s[0].OnsetDay)
	}
	for i, p := range s {
		if p.R0 < 0 {
			return configErrorf("phase %d has negative R0: %v", i, p.R0)
		}
		if i > 0 && p.OnsetDay <= s[i-1].OnsetDay {
			return configErrorf("phase onsets must be strictly increasing, got day %d after day %d",
				p.OnsetDay, s[i-1].OnsetDay)
		}
	}
	return nil
}

// ActivePhase returns the last phase whose onset is <= day. The phase index
// is non-decreasing as the day advances.
func (s Schedule) ActivePhase(day int) Phase {
	active := s[0]
	for _, p := range s[1:] {
		if p.OnsetDay > day {
			break
		}
		active = p
	}
	return active
}

// SeedCounts are the observed head-counts at the start of a run. The
// unobserved compartments in between are back-derived (see DeriveSeed).
type SeedCounts struct {
	Healthy float64
	Dead    float64
	Immune  float64
}

// Validate returns a *ConfigError if the counts cannot seed a run.
func (s SeedCounts) Validate() error {
	if s.Healthy < 0 || s.Dead < 0 || s.Immune < 0 {
		return configErrorf("seed counts must be non-negative, got healthy=%v dead=%v immune=%v",
			s.Healthy, s.Dead, s.Immune)
	}
	if s.Healthy+s.Dead+s.Immune == 0 {
		return configErrorf("seed population is empty")
	}
	return nil
}
