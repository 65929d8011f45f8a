// Package sim provides the core discrete-time Markov chain engine for the
// epidemic scenario simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - state.go: the six health compartments and the population vector
//   - matrix.go: per-day transition matrix construction and application
//   - simulator.go: the day loop, policy phase selection, and trajectory
//
// # Model
//
// The population is split into six compartments (Healthy, Carrier,
// Symptomatic, Hospitalizable, Dead, Immune). Each simulated day a 6x6
// row-stochastic transition matrix is built from the derived per-day exit
// rates (rates.go) and the active policy phase's reproduction number, then
// applied to the current population fractions. Dead and Immune are absorbing.
//
// All validation is eager: DeriveRates, DeriveSeed and NewSimulator reject
// bad configuration before the first day is stepped. The day loop itself is
// deterministic and has no recoverable failure modes; floating-point drift
// is watched and logged, never fatal.
package sim
