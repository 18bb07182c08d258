package pdfengine

import "sync"

// Process-wide engine. Most hosts should prefer wiring a single Engine via
// New at their composition root; this layer exists for hosts that want the
// classic lazy singleton surface.

var (
	defaultMu     sync.Mutex
	defaultEngine *Engine
	defaultConfig Config
)

// SetDefaultConfig sets the configuration used the next time Instance
// initializes the process-wide engine. It has no effect on an engine that is
// already live; call Shutdown first to apply a new configuration.
func SetDefaultConfig(cfg Config) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConfig = cfg
}

// Instance returns the process-wide engine, initializing it on first use.
// Initialization happens at most once per live instance even when many
// goroutines race here: the guard makes the first initializer's work
// happen-before every later return.
func Instance() (*Engine, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultEngine != nil {
		return defaultEngine, nil
	}
	e, err := New(defaultConfig)
	if err != nil {
		return nil, err
	}
	defaultEngine = e
	return e, nil
}

// Shutdown destroys the process-wide engine and clears the reference, so the
// next Instance call initializes a fresh engine. Restart after Shutdown is a
// supported operation, not an accident of the implementation. Calling
// Shutdown twice, or before any Instance call, is a no-op; the native
// destroy runs exactly once per live engine.
//
// Operations racing with Shutdown on other goroutines are serialized by the
// engine guard but have no ordering guarantee against it: avoiding that race
// is the caller's responsibility.
func Shutdown() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultEngine == nil {
		return
	}
	_ = defaultEngine.Close()
	defaultEngine = nil
}
