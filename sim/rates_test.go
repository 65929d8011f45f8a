package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRates_Arithmetic(t *testing.T) {
	cfg := Config{
		AsymptomaticFraction: 0.3,
		HospitalizedFraction: 0.12,
		DeathFraction:        0.25,
		InfectiousDays:       8,
		IncubationDays:       5,
		AsymptomaticDays:     8,
		SymptomaticDays:      6,
		HospitalizedDays:     10,
	}
	r, err := DeriveRates(cfg)
	require.NoError(t, err)

	assert.InDelta(t, 0.7/5, r.CarrierToSymptomatic, 1e-12)
	assert.InDelta(t, 0.3/8, r.CarrierToImmune, 1e-12)
	assert.InDelta(t, 0.12/6, r.SymptomaticToHospitalizable, 1e-12)
	assert.InDelta(t, 0.88/6, r.SymptomaticToImmune, 1e-12)
	assert.InDelta(t, 0.25/10, r.HospitalizableToDead, 1e-12)
	assert.InDelta(t, 0.75/10, r.HospitalizableToImmune, 1e-12)
}

func TestDeriveRates_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	a, err := DeriveRates(cfg)
	require.NoError(t, err)
	b, err := DeriveRates(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDeriveRates_ExitSumAtOne(t *testing.T) {
	// Half the carriers leave towards each destination every day: the
	// daily exits sum to exactly 1 and leave no diagonal mass.
	cfg := DefaultConfig()
	cfg.AsymptomaticFraction = 0.5
	cfg.IncubationDays = 1
	cfg.AsymptomaticDays = 1

	_, err := DeriveRates(cfg)
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "Carrier")
}

func TestDeriveRates_ExitSumPastOne(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HospitalizedDays = 0.5

	_, err := DeriveRates(cfg)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "Hospitalizable")
}
