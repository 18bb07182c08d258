package pdfengine

import "github.com/sealdoc/pdfengine-go/internal/bindings"

// Binding is the engine contract the facade drives: lifecycle, last-error
// query, and the document operations. Implementations are assumed
// non-reentrant; the facade serializes every call through its guard, so a
// Binding never needs its own locking.
type Binding interface {
	Init() error
	Destroy()
	LastErrorCode() int
	Open(src Source, password string) (BoundDocument, error)
	Merge(a, b Source) ([]byte, error)
	Split(src Source, pageFrom, pageTo int) ([]byte, error)
	Unlock(src Source, password string) ([]byte, error)
	ImportImages(images []ImageDescriptor) ([]byte, error)
}

// BoundDocument is an open document handle produced by a Binding. It is only
// valid while the binding stays initialized and must be used under the same
// guard as the binding itself.
type BoundDocument interface {
	PageCount() (int, error)
	Close() error
}

// bindingAdapter bridges the public Source/ImageDescriptor types with the
// internal bindings layer. The adapter keeps the exported API free of
// internal types without duplicating any engine logic.
type bindingAdapter struct {
	inner bindings.Binding
}

func (a bindingAdapter) Init() error        { return a.inner.Init() }
func (a bindingAdapter) Destroy()           { a.inner.Destroy() }
func (a bindingAdapter) LastErrorCode() int { return a.inner.LastErrorCode() }

func (a bindingAdapter) Open(src Source, password string) (BoundDocument, error) {
	doc, err := a.inner.Open(src.toBindings(), password)
	if err != nil {
		return nil, remapError(err)
	}
	return doc, nil
}

func (a bindingAdapter) Merge(first, second Source) ([]byte, error) {
	out, err := a.inner.Merge(first.toBindings(), second.toBindings())
	return out, remapError(err)
}

func (a bindingAdapter) Split(src Source, pageFrom, pageTo int) ([]byte, error) {
	out, err := a.inner.Split(src.toBindings(), pageFrom, pageTo)
	return out, remapError(err)
}

func (a bindingAdapter) Unlock(src Source, password string) ([]byte, error) {
	out, err := a.inner.Unlock(src.toBindings(), password)
	return out, remapError(err)
}

func (a bindingAdapter) ImportImages(images []ImageDescriptor) ([]byte, error) {
	imgs := make([]bindings.Image, len(images))
	for i, img := range images {
		imgs[i] = bindings.Image{Data: img.Data, Width: img.Width, Height: img.Height}
	}
	out, err := a.inner.ImportImages(imgs)
	return out, remapError(err)
}

// PortableBinding returns the pure-Go engine. It is always available and is
// the default when Config.Binding is nil.
func PortableBinding() Binding {
	return bindingAdapter{inner: bindings.NewPDFCPU()}
}

// NativeBinding returns the pdfium-backed engine. It fails with ErrNotBuilt
// unless the binary was built with the pdfium tag and cgo.
func NativeBinding() (Binding, error) {
	inner, err := bindings.NewPDFium()
	if err != nil {
		return nil, remapError(err)
	}
	return bindingAdapter{inner: inner}, nil
}
