package regioncurves

// Config returns the engine's current configuration.
func (e *Engine) Config() Config { return e.cfg }

// Configure validates and swaps in a new configuration. It must not be
// called concurrently with Compute.
func (e *Engine) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return &ConfigError{Err: err}
	}
	e.cfg = cfg
	return nil
}
