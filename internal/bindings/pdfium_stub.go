//go:build !pdfium || !cgo

package bindings

// NewPDFium reports that the native binding is not linked into this binary.
// Build with -tags pdfium (and cgo enabled, pdfium headers and library on the
// search path) to get the real implementation.
func NewPDFium() (*PDFium, error) {
	return nil, ErrNotBuilt
}

// PDFium is a placeholder in non-native builds so callers can name the type.
type PDFium struct{}

func (*PDFium) Init() error        { return ErrNotBuilt }
func (*PDFium) Destroy()           {}
func (*PDFium) LastErrorCode() int { return CodeUnknown }

func (*PDFium) Open(Source, string) (Document, error)  { return nil, ErrNotBuilt }
func (*PDFium) Merge(Source, Source) ([]byte, error)   { return nil, ErrNotBuilt }
func (*PDFium) Split(Source, int, int) ([]byte, error) { return nil, ErrNotBuilt }
func (*PDFium) Unlock(Source, string) ([]byte, error)  { return nil, ErrNotBuilt }
func (*PDFium) ImportImages([]Image) ([]byte, error)   { return nil, ErrNotBuilt }
