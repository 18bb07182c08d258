package pdfengine

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
)

// Config expresses the knobs for constructing an Engine.
type Config struct {
	// Binding selects the engine implementation. Nil selects the portable
	// pure-Go binding; use NativeBinding() for pdfium when built in.
	Binding Binding

	// Logger receives operational logs. Nil keeps the library silent.
	Logger *slog.Logger
}

// Engine owns the native engine's lifecycle and serializes every native
// interaction through one coarse guard. The guard is deliberately one lock
// for the whole engine rather than per document: the native engine is not
// reentrant even across unrelated handles, so finer-grained locking would be
// unsafe, not just pointless.
//
// Concurrency: all methods are safe to call from multiple goroutines and
// block for the full duration of the native call. There is no cancellation
// once a native call has started and no fairness guarantee among waiters.
type Engine struct {
	mu      sync.Mutex
	binding Binding
	log     *slog.Logger
	closed  bool
}

// New initializes the native engine and returns the handle owning it. The
// caller (normally the composition root) wires exactly one Engine per process
// and must Close it when done; the Instance/Shutdown pair layers the
// process-wide convenience lifecycle on top of this.
func New(cfg Config) (*Engine, error) {
	b := cfg.Binding
	if b == nil {
		b = PortableBinding()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Engine{binding: b, log: log}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := b.Init(); err != nil {
		return nil, &Error{Op: "New", Err: err}
	}
	e.log.Debug("engine initialized")
	return e, nil
}

// withBinding runs fn while holding the guard. On failure the native error
// code is fetched under the same acquisition as the failing call, so a
// concurrent operation on another goroutine can never overwrite the code
// between failure and query.
func (e *Engine) withBinding(op string, sentinel error, fn func(Binding) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return &Error{Op: op, Err: ErrEngineClosed}
	}
	if err := fn(e.binding); err != nil {
		code := ErrorCode(e.binding.LastErrorCode())
		e.log.Warn("engine operation failed",
			"op", op, "code", int(code), "cause", code.Description())
		return &Error{Op: op, Code: code, Err: fmt.Errorf("%w: %w", sentinel, err)}
	}
	return nil
}

// OpenReader opens a document for page access. minDim and maxDim bound the
// page raster dimensions handed to the reader; both must be positive and
// minDim must not exceed maxDim (equal bounds are accepted). The document is
// opened under the guard; the returned reader keeps serializing through it.
func (e *Engine) OpenReader(src Source, password string, minDim, maxDim int) (*Reader, error) {
	if err := validateSource("source", src); err != nil {
		return nil, err
	}
	if err := validatePositive("minDim", minDim); err != nil {
		return nil, err
	}
	if err := validatePositive("maxDim", maxDim); err != nil {
		return nil, err
	}
	if err := validateOrdered("minDim", "maxDim", minDim, maxDim); err != nil {
		return nil, err
	}

	var doc BoundDocument
	err := e.withBinding("OpenReader", ErrDocumentOpen, func(b Binding) error {
		d, err := b.Open(src, password)
		if err != nil {
			return err
		}
		doc = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Debug("document opened", "source", src.String())
	r := &Reader{engine: e, doc: doc, minDim: minDim, maxDim: maxDim}
	runtime.SetFinalizer(r, func(r *Reader) { _ = r.Close() })
	return r, nil
}

// LastErrorDescription queries the engine's most recent error code under the
// guard and returns its fixed description. The engine retains only the single
// most recent code, so call this promptly after a failure; the *Error
// returned by every failing operation already carries the same code fetched
// atomically with the failure, which is the race-free way to get it.
func (e *Engine) LastErrorDescription() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return CodeUnknown.Description()
	}
	return ErrorCode(e.binding.LastErrorCode()).Description()
}

// Close destroys the native engine. It is idempotent: only the first call
// reaches the native destroy. Callers must not run Close concurrently with an
// in-flight operation they still need; the guard prevents overlap inside the
// engine but operations started after Close fail with ErrEngineClosed.
func (e *Engine) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.binding.Destroy()
	e.closed = true
	e.log.Debug("engine destroyed")
	return nil
}
