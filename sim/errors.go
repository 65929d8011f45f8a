package sim

import "fmt"

// ConfigError reports invalid epidemiological input: probabilities outside
// [0,1], durations that make same-day exit probabilities sum past 1, or a
// zero ratio in seed back-derivation. It is raised eagerly, before the first
// simulated day, and is never retried.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// StateError reports a population vector or reproduction number that
// violates a core invariant by the time it reaches the matrix builder.
// Configuration is validated up front, so a StateError means the caller has
// a programming error, not a bad input file.
type StateError struct {
	msg string
}

func (e *StateError) Error() string { return e.msg }

func stateErrorf(format string, args ...any) *StateError {
	return &StateError{msg: fmt.Sprintf(format, args...)}
}
