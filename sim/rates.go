package sim

// Rates are the six fixed per-day transition probabilities derived from the
// study fractions and mean sojourn durations. The Healthy->Carrier rate is
// not among them: it depends on the day's population mix and is recomputed
// by the matrix builder every step.
type Rates struct {
	CarrierToSymptomatic        float64
	CarrierToImmune             float64
	SymptomaticToHospitalizable float64
	SymptomaticToImmune         float64
	HospitalizableToDead        float64
	HospitalizableToImmune      float64
}

// DeriveRates converts the configured fractions and durations into per-day
// exit probabilities. Each rate is the overall probability of eventually
// exiting towards that destination times 1/(mean days spent in the state
// before that exit). Pure and deterministic.
//
// The two exits of each transient state must sum below 1 over one day; the
// residual probability is the diagonal self-loop. A violation means the
// 1-day step length is too coarse for the given durations and yields a
// *ConfigError.
func DeriveRates(cfg Config) (Rates, error) {
	r := Rates{
		CarrierToSymptomatic:        (1 - cfg.AsymptomaticFraction) / cfg.IncubationDays,
		CarrierToImmune:             cfg.AsymptomaticFraction / cfg.AsymptomaticDays,
		SymptomaticToHospitalizable: cfg.HospitalizedFraction / cfg.SymptomaticDays,
		SymptomaticToImmune:         (1 - cfg.HospitalizedFraction) / cfg.SymptomaticDays,
		HospitalizableToDead:        cfg.DeathFraction / cfg.HospitalizedDays,
		HospitalizableToImmune:      (1 - cfg.DeathFraction) / cfg.HospitalizedDays,
	}

	exits := []struct {
		origin State
		sum    float64
	}{
		{Carrier, r.CarrierToSymptomatic + r.CarrierToImmune},
		{Symptomatic, r.SymptomaticToHospitalizable + r.SymptomaticToImmune},
		{Hospitalizable, r.HospitalizableToDead + r.HospitalizableToImmune},
	}
	for _, e := range exits {
		if e.sum >= 1 {
			return Rates{}, configErrorf(
				"daily exit probabilities from %s sum to %v, must stay below 1 (durations too short for a 1-day step)",
				e.origin, e.sum)
		}
	}
	return r, nil
}
