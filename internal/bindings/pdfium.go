//go:build pdfium && cgo

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}/../../third_party/pdfium/public
#cgo LDFLAGS: -lpdfium

#include <stdlib.h>
#include "fpdfview.h"
#include "fpdf_edit.h"
#include "fpdf_ppo.h"
#include "fpdf_save.h"
#include "pdfium_shim.h"
*/
import "C"

import (
	"bytes"
	"fmt"
	"sync"
	"unsafe"
)

// PDFium is the cgo binding to the native pdfium engine. The native library
// keeps process-global state (init flag, last error), so only one PDFium
// value should exist per process and every call must be serialized by the
// facade's guard.
type PDFium struct {
	inited bool
}

// NewPDFium returns the native binding. Only available when built with the
// pdfium tag; the stub variant reports ErrNotBuilt otherwise.
func NewPDFium() (*PDFium, error) {
	return &PDFium{}, nil
}

func (b *PDFium) Init() error {
	if !b.inited {
		C.FPDF_InitLibrary()
		b.inited = true
	}
	return nil
}

func (b *PDFium) Destroy() {
	if b.inited {
		C.FPDF_DestroyLibrary()
		b.inited = false
	}
}

func (b *PDFium) LastErrorCode() int {
	return int(C.FPDF_GetLastError())
}

// nativeDocument pairs the FPDF handle with the C copy of an in-memory
// source, which must stay alive for the document's lifetime.
type nativeDocument struct {
	doc C.FPDF_DOCUMENT
	buf unsafe.Pointer
}

func (d *nativeDocument) PageCount() (int, error) {
	if d.doc == nil {
		return 0, fmt.Errorf("bindings: document is closed")
	}
	return int(C.FPDF_GetPageCount(d.doc)), nil
}

func (d *nativeDocument) Close() error {
	if d.doc != nil {
		C.FPDF_CloseDocument(d.doc)
		d.doc = nil
	}
	if d.buf != nil {
		C.free(d.buf)
		d.buf = nil
	}
	return nil
}

// load opens a source with the native engine. The caller owns the returned
// document and must Close it to release the handle and any pinned buffer.
func (b *PDFium) load(src Source, password string) (*nativeDocument, error) {
	var cpw *C.char
	if password != "" {
		cpw = C.CString(password)
		defer C.free(unsafe.Pointer(cpw))
	}

	if len(src.Data) > 0 {
		cbuf := C.CBytes(src.Data)
		doc := C.FPDF_LoadMemDocument(cbuf, C.int(len(src.Data)), cpw)
		if doc == nil {
			C.free(cbuf)
			return nil, fmt.Errorf("pdfium: load from memory failed")
		}
		return &nativeDocument{doc: doc, buf: cbuf}, nil
	}

	cpath := C.CString(src.Path)
	defer C.free(unsafe.Pointer(cpath))
	doc := C.FPDF_LoadDocument(cpath, cpw)
	if doc == nil {
		return nil, fmt.Errorf("pdfium: load %q failed", src.Path)
	}
	return &nativeDocument{doc: doc}, nil
}

func (b *PDFium) Open(src Source, password string) (Document, error) {
	return b.load(src, password)
}

func (b *PDFium) Merge(first, second Source) ([]byte, error) {
	da, err := b.load(first, "")
	if err != nil {
		return nil, err
	}
	defer func() { _ = da.Close() }()
	db, err := b.load(second, "")
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	dest := C.FPDF_CreateNewDocument()
	if dest == nil {
		return nil, fmt.Errorf("pdfium: create destination failed")
	}
	defer C.FPDF_CloseDocument(dest)

	if C.FPDF_ImportPages(dest, da.doc, nil, 0) == 0 {
		return nil, fmt.Errorf("pdfium: import pages of first source failed")
	}
	at := C.FPDF_GetPageCount(dest)
	if C.FPDF_ImportPages(dest, db.doc, nil, at) == 0 {
		return nil, fmt.Errorf("pdfium: import pages of second source failed")
	}
	return saveCopy(dest, C.FPDF_NO_INCREMENTAL)
}

func (b *PDFium) Split(src Source, pageFrom, pageTo int) ([]byte, error) {
	doc, err := b.load(src, "")
	if err != nil {
		return nil, err
	}
	defer func() { _ = doc.Close() }()

	dest := C.FPDF_CreateNewDocument()
	if dest == nil {
		return nil, fmt.Errorf("pdfium: create destination failed")
	}
	defer C.FPDF_CloseDocument(dest)

	// pdfium page ranges are one-based and inclusive.
	crange := C.CString(fmt.Sprintf("%d-%d", pageFrom+1, pageTo+1))
	defer C.free(unsafe.Pointer(crange))
	if C.FPDF_ImportPages(dest, doc.doc, crange, 0) == 0 {
		return nil, fmt.Errorf("pdfium: import page range %d-%d failed", pageFrom, pageTo)
	}
	return saveCopy(dest, C.FPDF_NO_INCREMENTAL)
}

func (b *PDFium) Unlock(src Source, password string) ([]byte, error) {
	doc, err := b.load(src, password)
	if err != nil {
		return nil, err
	}
	defer func() { _ = doc.Close() }()
	return saveCopy(doc.doc, C.FPDF_REMOVE_SECURITY)
}

// ImportImages is not wired for the native engine yet: pdfium needs per-codec
// page-object plumbing (FPDFImageObj_*) that the portable binding covers in
// the meantime.
func (b *PDFium) ImportImages([]Image) ([]byte, error) {
	return nil, ErrUnsupported
}

// Write-callback registry. FPDF_SaveAsCopy hands the shim struct back to
// goWriteBlock, which resolves the destination buffer by handle. Same scheme
// as any cgo layer that must not pass Go pointers through C.
var (
	writeMu  sync.Mutex
	writeSeq uintptr
	writers  = map[uintptr]*bytes.Buffer{}
)

func newWriter() (uintptr, *bytes.Buffer) {
	writeMu.Lock()
	defer writeMu.Unlock()
	writeSeq++
	buf := &bytes.Buffer{}
	writers[writeSeq] = buf
	return writeSeq, buf
}

func freeWriter(h uintptr) {
	writeMu.Lock()
	defer writeMu.Unlock()
	delete(writers, h)
}

//export goWriteBlock
func goWriteBlock(fw *C.FPDF_FILEWRITE, data unsafe.Pointer, size C.ulong) C.int {
	shim := (*C.pdfengine_filewrite)(unsafe.Pointer(fw))
	writeMu.Lock()
	buf := writers[uintptr(shim.handle)]
	writeMu.Unlock()
	if buf == nil {
		return 0
	}
	buf.Write(C.GoBytes(data, C.int(size)))
	return 1
}

func saveCopy(doc C.FPDF_DOCUMENT, flags C.FPDF_DWORD) ([]byte, error) {
	h, buf := newWriter()
	defer freeWriter(h)

	var shim C.pdfengine_filewrite
	C.pdfengine_filewrite_init(&shim, C.uintptr_t(h))
	if C.FPDF_SaveAsCopy(doc, &shim.fw, flags) == 0 {
		return nil, fmt.Errorf("pdfium: save failed")
	}
	return buf.Bytes(), nil
}
