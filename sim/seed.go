package sim

// DeriveSeed builds the initial head-count population vector from the
// observed Healthy, Dead and Immune counts. The unobserved upstream
// compartments are back-computed from the study ratios, working up the
// severity chain:
//
//	Hospitalizable = Dead * (1-d)/d          d = death fraction
//	Symptomatic    = Hospitalizable * (1-h)/h  h = hospitalized fraction
//	Carrier        = Symptomatic * (1-p)/p     p = 1 - asymptomatic fraction
//
// This assumes the epidemic's compartment ratios already sit at their
// asymptotic proportions at the observation instant. That is a modeling
// approximation inherited from the source study, not a calibrated inverse;
// it is kept as-is rather than replaced with a fitting procedure.
//
// Any ratio of exactly 0 would divide by zero and yields a *ConfigError.
func DeriveSeed(seed SeedCounts, cfg Config) (Population, error) {
	if err := seed.Validate(); err != nil {
		return Population{}, err
	}

	d := cfg.DeathFraction
	h := cfg.HospitalizedFraction
	p := 1 - cfg.AsymptomaticFraction
	if d == 0 {
		return Population{}, configErrorf("death fraction is 0, cannot back-derive hospitalizable count")
	}
	if h == 0 {
		return Population{}, configErrorf("hospitalized fraction is 0, cannot back-derive symptomatic count")
	}
	if p == 0 {
		return Population{}, configErrorf("every carrier is asymptomatic, cannot back-derive carrier count")
	}

	var pop Population
	pop[Healthy] = seed.Healthy
	pop[Dead] = seed.Dead
	pop[Immune] = seed.Immune
	pop[Hospitalizable] = seed.Dead * (1 - d) / d
	pop[Symptomatic] = pop[Hospitalizable] * (1 - h) / h
	pop[Carrier] = pop[Symptomatic] * (1 - p) / p
	return pop, nil
}
