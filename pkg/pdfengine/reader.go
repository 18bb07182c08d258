package pdfengine

import (
	"fmt"
	"runtime"
)

// Reader provides page access to one open document. Every method serializes
// through the owning engine's guard. A reader must be Closed when done; a
// finalizer backstops leaked readers, but releases the native handle at an
// unpredictable time.
type Reader struct {
	engine *Engine
	doc    BoundDocument
	minDim int
	maxDim int
	closed bool // guarded by engine.mu
}

// Dimensions returns the raster bounds the reader was opened with.
func (r *Reader) Dimensions() (minDim, maxDim int) {
	return r.minDim, r.maxDim
}

// PageCount returns the number of pages in the open document.
func (r *Reader) PageCount() (int, error) {
	r.engine.mu.Lock()
	defer r.engine.mu.Unlock()
	if r.engine.closed {
		return 0, &Error{Op: "Reader.PageCount", Err: ErrEngineClosed}
	}
	if r.closed {
		return 0, &Error{Op: "Reader.PageCount", Err: ErrReaderClosed}
	}
	n, err := r.doc.PageCount()
	if err != nil {
		code := ErrorCode(r.engine.binding.LastErrorCode())
		return 0, &Error{Op: "Reader.PageCount", Code: code, Err: fmt.Errorf("%w: %w", ErrRead, err)}
	}
	return n, nil
}

// Close releases the document handle. It is idempotent. If the engine was
// already shut down the native handle is gone with it, so Close only clears
// local state.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}
	r.engine.mu.Lock()
	defer r.engine.mu.Unlock()
	if r.closed {
		return nil
	}
	runtime.SetFinalizer(r, nil)
	r.closed = true
	if r.engine.closed {
		return nil
	}
	return r.doc.Close()
}
