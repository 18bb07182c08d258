package bindings

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// Native error codes shared by every binding implementation. The values match
// the FPDF_ERR_* constants reported by the native engine; the pure-Go binding
// maps its own failures onto the same vocabulary so callers see one table.
const (
	CodeSuccess  = 0
	CodeUnknown  = 1
	CodeFile     = 2
	CodeFormat   = 3
	CodePassword = 4
	CodeSecurity = 5
	CodePage     = 6
	CodeLicense  = 1001
)

var (
	// ErrNotBuilt reports that the native pdfium binding was not linked into
	// the current binary. Build with -tags pdfium to enable it.
	ErrNotBuilt = errors.New("pdfengine/internal/bindings: pdfium binding not built (build with -tags pdfium)")

	// ErrUnsupported signals an operation the selected binding cannot perform.
	ErrUnsupported = errors.New("pdfengine/internal/bindings: operation not supported by this binding")
)

// Source locates a document either on disk or in memory. Exactly one of Path
// and Data is set; the facade validates this before anything lands here.
type Source struct {
	Path string
	Data []byte
}

// Reader returns a seekable view of the source plus a close function. For
// in-memory sources the close function is a no-op.
func (s Source) Reader() (io.ReadSeeker, func() error, error) {
	if len(s.Data) > 0 {
		return bytes.NewReader(s.Data), func() error { return nil }, nil
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// Image is one encoded page image for document import. Width and Height of
// zero mean "derive the page size from the encoded bytes".
type Image struct {
	Data   []byte
	Width  int
	Height int
}

// Document is an open native document handle. Callers must serialize every
// method through the same guard that serializes Binding calls; the handle is
// only valid while the binding that produced it stays initialized.
type Document interface {
	PageCount() (int, error)
	Close() error
}

// Binding is the engine contract the facade drives. Implementations are not
// safe for concurrent use, including LastErrorCode; the facade wraps every
// call in its global guard.
type Binding interface {
	Init() error
	Destroy()
	LastErrorCode() int
	Open(src Source, password string) (Document, error)
	Merge(a, b Source) ([]byte, error)
	Split(src Source, pageFrom, pageTo int) ([]byte, error)
	Unlock(src Source, password string) ([]byte, error)
	ImportImages(images []Image) ([]byte, error)
}
