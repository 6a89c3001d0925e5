package regioncurves

import "fmt"

// ConfigError wraps a configuration validation failure from one of the
// pipeline's stage configs. Returned only from NewEngine/Configure, never
// from Compute — Compute reports stage failures as StageError and an empty
// result as NoClosedRegionsError.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("regioncurves: invalid configuration: %v", e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }

// StageError identifies which pipeline stage produced a fatal error during
// Compute, so callers can distinguish configuration mistakes, malformed
// input bundles, and geometric failures without parsing message text.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("regioncurves: %s stage: %v", e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// NoClosedRegionsError reports that every stage ran cleanly but produced
// zero closed regions (Sec 8: "all curves have <min_num_points"). Partial
// holds the fully-built open-region poses and diagnostics so callers don't
// lose that work; Compute itself returns a zero RegionResult alongside
// this error, per Go convention of ignoring the value on error.
type NoClosedRegionsError struct {
	Partial RegionResult
}

func (e *NoClosedRegionsError) Error() string {
	return "regioncurves: no closed regions produced"
}
