package pdfengine

import (
	"errors"
	"fmt"

	"github.com/sealdoc/pdfengine-go/internal/bindings"
)

var (
	// ErrInvalidArgument reports a precondition failure detected before any
	// native interaction. The message names the offending parameter.
	ErrInvalidArgument = errors.New("pdfengine: invalid argument")

	// ErrDocumentOpen reports that the engine rejected opening or parsing a
	// source (missing file, bad format, wrong password, unsupported security
	// scheme, licensing restriction).
	ErrDocumentOpen = errors.New("pdfengine: could not open document")

	// ErrEdit reports that the engine rejected a merge, split, unlock, or
	// image-conversion operation.
	ErrEdit = errors.New("pdfengine: edit operation failed")

	// ErrRead reports a failing page-access operation on an open reader.
	ErrRead = errors.New("pdfengine: read operation failed")

	// ErrEngineClosed reports use of an engine after Close/Shutdown.
	ErrEngineClosed = errors.New("pdfengine: engine has been shut down")

	// ErrReaderClosed reports use of a reader after Close.
	ErrReaderClosed = errors.New("pdfengine: reader is closed")

	// ErrNotBuilt reports that the native binding was not linked into this
	// binary (build with -tags pdfium).
	ErrNotBuilt = errors.New("pdfengine: native binding not built")

	// ErrUnsupported reports an operation the selected binding cannot do.
	ErrUnsupported = errors.New("pdfengine: operation not supported by this binding")
)

// Error wraps a failing operation. For native-origin failures Code carries
// the engine's error code, fetched under the same guard acquisition as the
// failing call so a concurrent operation can never overwrite it in between.
type Error struct {
	Op   string
	Code ErrorCode
	Err  error
}

func (e *Error) Error() string {
	if e.Code != CodeSuccess {
		return fmt.Sprintf("pdfengine.%s: %v (%s)", e.Op, e.Err, e.Code.Description())
	}
	return fmt.Sprintf("pdfengine.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// remapError converts bindings layer errors to public API errors.
func remapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bindings.ErrNotBuilt):
		return ErrNotBuilt
	case errors.Is(err, bindings.ErrUnsupported):
		return ErrUnsupported
	}
	return err
}
