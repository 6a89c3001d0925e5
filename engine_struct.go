package regioncurves

import "github.com/sirupsen/logrus"

// Engine runs the six-stage region-curve pipeline against bundles handed
// to Compute. It owns no resources between calls beyond its (immutable
// until Configure) config, its logger, and the diagnostic window counter —
// Sec 5 requires the core to be single-threaded and synchronous. The
// constructor is fallible rather than panicking so callers can distinguish
// a configuration mistake from a runtime failure.
type Engine struct {
	cfg    Config
	logger *logrus.Logger

	// windowCounter is advanced by the number of bundles on every Compute
	// call (Sec 5: "a per-call window counter used to name diagnostic
	// windows"); each bundle's window index is the counter's value at the
	// start of the call plus the bundle's position in it, so every
	// diagnostic window name is unique across calls. The engine never opens
	// the window itself, it only hands the name back to the caller.
	windowCounter int
}

// NewEngine validates cfg and returns a ready-to-use Engine. A nil logger
// defaults to logrus's standard logger.
func NewEngine(cfg Config, logger *logrus.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Engine{cfg: cfg, logger: logger}, nil
}
