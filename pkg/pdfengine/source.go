package pdfengine

import (
	"fmt"

	"github.com/sealdoc/pdfengine-go/internal/bindings"
)

// Source identifies where a document comes from: a filesystem path or an
// in-memory buffer. The two representations are mutually exclusive; the zero
// Source is invalid and rejected by every operation.
type Source struct {
	path string
	data []byte
}

// PathSource references a document on disk.
func PathSource(path string) Source {
	return Source{path: path}
}

// BytesSource references an in-memory document.
func BytesSource(data []byte) Source {
	return Source{data: data}
}

// Path returns the filesystem path, or "" for in-memory sources.
func (s Source) Path() string {
	return s.path
}

// Bytes returns the in-memory document, or nil for path sources.
func (s Source) Bytes() []byte {
	return s.data
}

func (s Source) isZero() bool {
	return s.path == "" && len(s.data) == 0
}

func (s Source) String() string {
	if s.path != "" {
		return s.path
	}
	return fmt.Sprintf("<%d bytes>", len(s.data))
}

func (s Source) toBindings() bindings.Source {
	return bindings.Source{Path: s.path, Data: s.data}
}

// ImageDescriptor carries one encoded image destined to become a document
// page, together with its pixel dimensions. Zero dimensions mean "derive the
// size from the encoded bytes".
type ImageDescriptor struct {
	Data   []byte
	Width  int
	Height int
}
