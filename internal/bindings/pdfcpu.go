package bindings

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	// Decoders consulted when an image descriptor carries no dimensions and
	// the page size must come from the encoded bytes.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// PDFCPU is the portable binding backed by the pure-Go pdfcpu library. It is
// always available, needs no native init, and keeps the last-error contract of
// the native engine by classifying pdfcpu failures onto the shared code table.
//
// Like every Binding, it is not safe for concurrent use: LastErrorCode reads
// state written by the most recent failing call.
type PDFCPU struct {
	lastCode int
	inited   bool
}

// NewPDFCPU returns an uninitialized portable binding.
func NewPDFCPU() *PDFCPU {
	return &PDFCPU{}
}

func (b *PDFCPU) Init() error {
	b.inited = true
	b.lastCode = CodeSuccess
	return nil
}

func (b *PDFCPU) Destroy() {
	b.inited = false
}

func (b *PDFCPU) LastErrorCode() int {
	return b.lastCode
}

func (b *PDFCPU) ok() {
	b.lastCode = CodeSuccess
}

// fail records the classified code for the failing call and passes the error
// through unchanged.
func (b *PDFCPU) fail(err error, fallback int) error {
	b.lastCode = classify(err, fallback)
	return err
}

// classify maps a pdfcpu or filesystem error onto the shared code table.
// pdfcpu does not export stable sentinels for password or corruption failures
// across versions, so those two classes are matched on message content.
func classify(err error, fallback int) int {
	if err == nil {
		return CodeSuccess
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return CodeFile
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "password"):
		return CodePassword
	case strings.Contains(msg, "unsupported encryption"), strings.Contains(msg, "security handler"):
		return CodeSecurity
	case strings.Contains(msg, "page"):
		return CodePage
	}
	return fallback
}

func (b *PDFCPU) configuration(password string) *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}
	return conf
}

type pdfcpuDocument struct {
	pages    int
	closeSrc func() error
	closed   bool
}

func (d *pdfcpuDocument) PageCount() (int, error) {
	if d.closed {
		return 0, errors.New("bindings: document is closed")
	}
	return d.pages, nil
}

func (d *pdfcpuDocument) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.closeSrc()
}

// Open validates the document structure and caches its page count. The
// returned handle holds the underlying file open for path sources.
func (b *PDFCPU) Open(src Source, password string) (Document, error) {
	rs, closeSrc, err := src.Reader()
	if err != nil {
		return nil, b.fail(err, CodeFile)
	}
	conf := b.configuration(password)
	if err := api.Validate(rs, conf); err != nil {
		_ = closeSrc()
		return nil, b.fail(err, CodeFormat)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		_ = closeSrc()
		return nil, b.fail(err, CodeFile)
	}
	pages, err := api.PageCount(rs, conf)
	if err != nil {
		_ = closeSrc()
		return nil, b.fail(err, CodeFormat)
	}
	b.ok()
	return &pdfcpuDocument{pages: pages, closeSrc: closeSrc}, nil
}

// Merge appends all pages of the second source after the first and returns
// the combined document.
func (b *PDFCPU) Merge(first, second Source) ([]byte, error) {
	ra, closeA, err := first.Reader()
	if err != nil {
		return nil, b.fail(err, CodeFile)
	}
	defer func() { _ = closeA() }()
	rb, closeB, err := second.Reader()
	if err != nil {
		return nil, b.fail(err, CodeFile)
	}
	defer func() { _ = closeB() }()

	var buf bytes.Buffer
	if err := api.MergeRaw([]io.ReadSeeker{ra, rb}, &buf, false, b.configuration("")); err != nil {
		return nil, b.fail(err, CodeFormat)
	}
	b.ok()
	return buf.Bytes(), nil
}

// Split extracts the inclusive zero-based page range [pageFrom, pageTo] into
// a new document. pdfcpu numbers pages from one, hence the shift.
func (b *PDFCPU) Split(src Source, pageFrom, pageTo int) ([]byte, error) {
	rs, closeSrc, err := src.Reader()
	if err != nil {
		return nil, b.fail(err, CodeFile)
	}
	defer func() { _ = closeSrc() }()

	selection := []string{fmt.Sprintf("%d-%d", pageFrom+1, pageTo+1)}
	var buf bytes.Buffer
	if err := api.Trim(rs, &buf, selection, b.configuration("")); err != nil {
		return nil, b.fail(err, CodePage)
	}
	b.ok()
	return buf.Bytes(), nil
}

// Unlock removes document-level access restrictions, trying without a
// password when none is supplied.
func (b *PDFCPU) Unlock(src Source, password string) ([]byte, error) {
	rs, closeSrc, err := src.Reader()
	if err != nil {
		return nil, b.fail(err, CodeFile)
	}
	defer func() { _ = closeSrc() }()

	var buf bytes.Buffer
	if err := api.Decrypt(rs, &buf, b.configuration(password)); err != nil {
		return nil, b.fail(err, CodeFormat)
	}
	b.ok()
	return buf.Bytes(), nil
}

// ImportImages builds one document whose pages are the given images in input
// order. Descriptors without dimensions must at least decode to a config so
// the page size can be derived.
func (b *PDFCPU) ImportImages(images []Image) ([]byte, error) {
	readers := make([]io.Reader, 0, len(images))
	for i, img := range images {
		if img.Width == 0 || img.Height == 0 {
			if _, _, err := image.DecodeConfig(bytes.NewReader(img.Data)); err != nil {
				return nil, b.fail(fmt.Errorf("image %d: %w", i, err), CodeFormat)
			}
		}
		readers = append(readers, bytes.NewReader(img.Data))
	}

	var buf bytes.Buffer
	if err := api.ImportImages(nil, &buf, readers, nil, b.configuration("")); err != nil {
		return nil, b.fail(err, CodeFormat)
	}
	b.ok()
	return buf.Bytes(), nil
}
