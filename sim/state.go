package sim

import "fmt"

// State is one of the six mutually exclusive health compartments.
type State int

const (
	Healthy State = iota
	Carrier
	Symptomatic
	Hospitalizable
	Dead
	Immune

	// NumStates is the fixed compartment count; Population and Matrix are
	// sized by it at compile time.
	NumStates = 6
)

func (s State) String() string {
	return [...]string{"Healthy", "Carrier", "Symptomatic", "Hospitalizable", "Dead", "Immune"}[s]
}

// StateNames lists the compartments in canonical order, for report headers.
func StateNames() []string {
	names := make([]string, NumStates)
	for s := State(0); s < NumStates; s++ {
		names[s] = s.String()
	}
	return names
}

// Population is a vector of compartment sizes in canonical state order.
// Entries are fractions of the total during simulation and head-counts in
// the recorded trajectory; the sum is invariant across steps either way.
type Population [NumStates]float64

// PopulationFromSlice converts a raw slice, rejecting wrong dimensionality
// and negative entries.
func PopulationFromSlice(v []float64) (Population, error) {
	var p Population
	if len(v) != NumStates {
		return p, stateErrorf("population vector must have %d entries, got %d", NumStates, len(v))
	}
	for i, x := range v {
		if x < 0 {
			return p, stateErrorf("population entry %s is negative: %v", State(i), x)
		}
		p[i] = x
	}
	return p, nil
}

// Total returns the sum over all compartments.
func (p Population) Total() float64 {
	var sum float64
	for _, x := range p {
		sum += x
	}
	return sum
}

// Infectious returns the contagious mass: Carrier + Symptomatic + Hospitalizable.
func (p Population) Infectious() float64 {
	return p[Carrier] + p[Symptomatic] + p[Hospitalizable]
}

// Normalize returns the vector scaled to sum to 1. The zero vector is
// returned unchanged.
func (p Population) Normalize() Population {
	total := p.Total()
	if total == 0 {
		return p
	}
	return p.Scale(1 / total)
}

// Scale returns the vector with every entry multiplied by f.
func (p Population) Scale(f float64) Population {
	var out Population
	for i, x := range p {
		out[i] = x * f
	}
	return out
}

func (p Population) String() string {
	return fmt.Sprintf("[H=%.1f C=%.1f S=%.1f X=%.1f D=%.1f I=%.1f]",
		p[Healthy], p[Carrier], p[Symptomatic], p[Hospitalizable], p[Dead], p[Immune])
}
