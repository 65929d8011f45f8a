package sim

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Matrix is a one-day transition matrix over the six health states. Entry
// (i, j) is the probability of moving from state i to state j within one
// day. Rows sum to 1; only a fixed sparse set of off-diagonal entries is
// ever non-zero.
type Matrix [NumStates][NumStates]float64

// Builder assembles per-day transition matrices from the immutable derived
// rates. The reproduction number varies by policy phase and the
// Healthy->Carrier entry varies with the population mix, so Build is called
// once per simulated day.
type Builder struct {
	Rates          Rates
	InfectiousDays float64
}

// Build returns the transition matrix for the current population mix under
// the given reproduction number.
//
// The force of infection is r0/InfectiousDays scaled by the infectious
// fraction of the contact pool. Dead is excluded from the pool; if everyone
// is dead the force is 0 by convention.
func (b Builder) Build(pop Population, r0 float64) (Matrix, error) {
	for i, x := range pop {
		if x < 0 {
			return Matrix{}, stateErrorf("population entry %s is negative: %v", State(i), x)
		}
	}
	if r0 < 0 {
		return Matrix{}, stateErrorf("reproduction number is negative: %v", r0)
	}

	hc := 0.0
	if pool := pop.Total() - pop[Dead]; pool > 0 {
		hc = r0 / b.InfectiousDays * pop.Infectious() / pool
	}
	if hc > 1 {
		// R0/InfectiousDays above 1 with a saturated infectious pool; the
		// whole healthy compartment turns over in a single day.
		logrus.Debugf("force of infection %v capped at 1", hc)
		hc = 1
	}

	r := b.Rates
	var m Matrix
	m[Healthy][Healthy] = 1 - hc
	m[Healthy][Carrier] = hc
	m[Carrier][Carrier] = 1 - r.CarrierToSymptomatic - r.CarrierToImmune
	m[Carrier][Symptomatic] = r.CarrierToSymptomatic
	m[Carrier][Immune] = r.CarrierToImmune
	m[Symptomatic][Symptomatic] = 1 - r.SymptomaticToHospitalizable - r.SymptomaticToImmune
	m[Symptomatic][Hospitalizable] = r.SymptomaticToHospitalizable
	m[Symptomatic][Immune] = r.SymptomaticToImmune
	m[Hospitalizable][Hospitalizable] = 1 - r.HospitalizableToDead - r.HospitalizableToImmune
	m[Hospitalizable][Dead] = r.HospitalizableToDead
	m[Hospitalizable][Immune] = r.HospitalizableToImmune
	m[Dead][Dead] = 1
	m[Immune][Immune] = 1
	return m, nil
}

// Apply advances the population by one day: out[j] = sum_i pop[i]*m[i][j].
// A fixed-size product; no linear-algebra dependency is warranted for a
// 6x6 system.
func (m Matrix) Apply(pop Population) Population {
	var out Population
	for i := 0; i < NumStates; i++ {
		if pop[i] == 0 {
			continue
		}
		for j := 0; j < NumStates; j++ {
			out[j] += pop[i] * m[i][j]
		}
	}
	return out
}

// RowSums returns the per-row probability totals.
func (m Matrix) RowSums() [NumStates]float64 {
	var sums [NumStates]float64
	for i := 0; i < NumStates; i++ {
		for j := 0; j < NumStates; j++ {
			sums[i] += m[i][j]
		}
	}
	return sums
}

// MaxRowDrift returns the largest deviation of any row sum from 1.
func (m Matrix) MaxRowDrift() float64 {
	var drift float64
	for _, sum := range m.RowSums() {
		drift = math.Max(drift, math.Abs(sum-1))
	}
	return drift
}
