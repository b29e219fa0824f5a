package cpwroute

import (
	"errors"
	"fmt"
)

// Sentinel errors. Configuration problems are reported through ConfigError
// instead so the offending field is visible to the caller.
var (
	// ErrNoDirectRoute is returned by the simple strategy when no 0-, 1- or
	// 2-segment axis-aligned connection satisfies both endpoint directions.
	// The pathfinder strategy treats the same condition as a cue to search.
	ErrNoDirectRoute = errors.New("cpwroute: no direct route between points")

	// ErrSearchExhausted is returned when the A* frontier empties or the
	// iteration cap is hit without reaching the goal. Retrying with the same
	// inputs is deterministic and would fail identically.
	ErrSearchExhausted = errors.New("cpwroute: no obstacle-free path found")

	// ErrUnknownPin is returned when a pin reference does not resolve.
	ErrUnknownPin = errors.New("cpwroute: no such component or pin")
)

// ConfigError describes an invalid routing configuration. It names the
// offending field and its value so the caller can correct the design
// without re-deriving internal state.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cpwroute: invalid %s = %v: %s", e.Field, e.Value, e.Reason)
}

func configErrorf(field string, value any, format string, args ...any) error {
	return &ConfigError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}
