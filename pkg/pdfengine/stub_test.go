package pdfengine_test

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sealdoc/pdfengine-go/pkg/pdfengine"
)

// stubBinding instruments the engine contract for tests. It models a
// document as a byte string where every byte is one page, which makes merge
// and split observable without real documents. enter/leave track whether two
// goroutines ever overlap inside the binding; the facade's guard must keep
// that count at zero.
type stubBinding struct {
	inits    atomic.Int32
	destroys atomic.Int32
	calls    atomic.Int32
	inflight atomic.Int32
	overlaps atomic.Int32
	lastCode atomic.Int32

	// failCode, when nonzero, makes every document operation fail and
	// become the binding's last error code.
	failCode int

	// delay widens the window inside each call so overlap, if the guard
	// were broken, would actually be observed.
	delay time.Duration
}

func (s *stubBinding) enter() {
	s.calls.Add(1)
	if s.inflight.Add(1) != 1 {
		s.overlaps.Add(1)
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

func (s *stubBinding) leave() {
	s.inflight.Add(-1)
}

func (s *stubBinding) fail() error {
	s.lastCode.Store(int32(s.failCode))
	return fmt.Errorf("stub: forced failure (code %d)", s.failCode)
}

func (s *stubBinding) Init() error {
	s.enter()
	defer s.leave()
	s.inits.Add(1)
	return nil
}

func (s *stubBinding) Destroy() {
	s.enter()
	defer s.leave()
	s.destroys.Add(1)
}

func (s *stubBinding) LastErrorCode() int {
	s.enter()
	defer s.leave()
	return int(s.lastCode.Load())
}

func (s *stubBinding) Open(src pdfengine.Source, _ string) (pdfengine.BoundDocument, error) {
	s.enter()
	defer s.leave()
	if s.failCode != 0 {
		return nil, s.fail()
	}
	s.lastCode.Store(0)
	return &stubDocument{stub: s, pages: src.Bytes()}, nil
}

func (s *stubBinding) Merge(first, second pdfengine.Source) ([]byte, error) {
	s.enter()
	defer s.leave()
	if s.failCode != 0 {
		return nil, s.fail()
	}
	s.lastCode.Store(0)
	out := append([]byte{}, first.Bytes()...)
	return append(out, second.Bytes()...), nil
}

func (s *stubBinding) Split(src pdfengine.Source, pageFrom, pageTo int) ([]byte, error) {
	s.enter()
	defer s.leave()
	if s.failCode != 0 {
		return nil, s.fail()
	}
	pages := src.Bytes()
	if pageTo >= len(pages) {
		s.lastCode.Store(int32(pdfengine.CodePage))
		return nil, fmt.Errorf("stub: page %d out of range", pageTo)
	}
	s.lastCode.Store(0)
	return append([]byte{}, pages[pageFrom:pageTo+1]...), nil
}

func (s *stubBinding) Unlock(src pdfengine.Source, _ string) ([]byte, error) {
	s.enter()
	defer s.leave()
	if s.failCode != 0 {
		return nil, s.fail()
	}
	s.lastCode.Store(0)
	return append([]byte{}, src.Bytes()...), nil
}

func (s *stubBinding) ImportImages(images []pdfengine.ImageDescriptor) ([]byte, error) {
	s.enter()
	defer s.leave()
	if s.failCode != 0 {
		return nil, s.fail()
	}
	s.lastCode.Store(0)
	out := make([]byte, len(images))
	for i := range images {
		out[i] = byte(i + 1)
	}
	return out, nil
}

type stubDocument struct {
	stub   *stubBinding
	pages  []byte
	closed bool
}

func (d *stubDocument) PageCount() (int, error) {
	d.stub.enter()
	defer d.stub.leave()
	if d.closed {
		return 0, fmt.Errorf("stub: document closed")
	}
	return len(d.pages), nil
}

func (d *stubDocument) Close() error {
	d.stub.enter()
	defer d.stub.leave()
	d.closed = true
	return nil
}
