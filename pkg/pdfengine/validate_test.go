package pdfengine_test

import (
	"errors"
	"testing"

	"github.com/sealdoc/pdfengine-go/pkg/pdfengine"
)

// Every invalid input must fail with ErrInvalidArgument before any native
// interaction: after New's single Init, the binding call counter must not
// move.
func TestValidationFailsBeforeNativeInteraction(t *testing.T) {
	valid := pdfengine.BytesSource([]byte{1, 2, 3})
	empty := pdfengine.Source{}
	img := pdfengine.ImageDescriptor{Data: []byte{0xFF}, Width: 10, Height: 10}

	cases := []struct {
		name string
		call func(e *pdfengine.Engine) error
	}{
		{"open empty source", func(e *pdfengine.Engine) error {
			_, err := e.OpenReader(empty, "", 1, 1)
			return err
		}},
		{"open zero minDim", func(e *pdfengine.Engine) error {
			_, err := e.OpenReader(valid, "", 0, 100)
			return err
		}},
		{"open zero maxDim", func(e *pdfengine.Engine) error {
			_, err := e.OpenReader(valid, "", 1, 0)
			return err
		}},
		{"open misordered dims", func(e *pdfengine.Engine) error {
			_, err := e.OpenReader(valid, "", 200, 100)
			return err
		}},
		{"merge empty first", func(e *pdfengine.Engine) error {
			_, err := e.Merge(empty, valid)
			return err
		}},
		{"merge empty second", func(e *pdfengine.Engine) error {
			_, err := e.Merge(valid, empty)
			return err
		}},
		{"split negative from", func(e *pdfengine.Engine) error {
			_, err := e.Split(valid, -1, 2)
			return err
		}},
		{"split negative to", func(e *pdfengine.Engine) error {
			_, err := e.Split(valid, 0, -2)
			return err
		}},
		{"split misordered range", func(e *pdfengine.Engine) error {
			_, err := e.Split(valid, 2, 1)
			return err
		}},
		{"unlock empty source", func(e *pdfengine.Engine) error {
			_, err := e.Unlock(empty, "pw")
			return err
		}},
		{"no images", func(e *pdfengine.Engine) error {
			_, err := e.ImagesToDocument(nil)
			return err
		}},
		{"image without bytes", func(e *pdfengine.Engine) error {
			_, err := e.ImagesToDocument([]pdfengine.ImageDescriptor{img, {Width: 1, Height: 1}})
			return err
		}},
		{"image negative width", func(e *pdfengine.Engine) error {
			_, err := e.ImagesToDocument([]pdfengine.ImageDescriptor{{Data: []byte{1}, Width: -1}})
			return err
		}},
		{"image negative height", func(e *pdfengine.Engine) error {
			_, err := e.ImagesToDocument([]pdfengine.ImageDescriptor{{Data: []byte{1}, Height: -7}})
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubBinding{}
			e, err := pdfengine.New(pdfengine.Config{Binding: stub})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			defer func() { _ = e.Close() }()
			callsAfterInit := stub.calls.Load()

			err = tc.call(e)
			if !errors.Is(err, pdfengine.ErrInvalidArgument) {
				t.Fatalf("got %v, want ErrInvalidArgument", err)
			}
			if got := stub.calls.Load(); got != callsAfterInit {
				t.Fatalf("binding touched %d times during validation failure", got-callsAfterInit)
			}
		})
	}
}

// Inclusive boundaries are accepted: equal dimensions, equal page indices,
// and page index zero.
func TestValidationBoundaries(t *testing.T) {
	stub := &stubBinding{}
	e, err := pdfengine.New(pdfengine.Config{Binding: stub})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = e.Close() }()

	doc := pdfengine.BytesSource([]byte{1, 2, 3})

	r, err := e.OpenReader(doc, "", 640, 640)
	if err != nil {
		t.Fatalf("OpenReader with equal dims: %v", err)
	}
	_ = r.Close()

	out, err := e.Split(doc, 0, 0)
	if err != nil {
		t.Fatalf("Split with from == to == 0: %v", err)
	}
	if len(out) != 1 || out[0] != 1 {
		t.Fatalf("Split(0,0) = %v, want first page only", out)
	}

	if _, err := e.Split(doc, 2, 2); err != nil {
		t.Fatalf("Split with from == to: %v", err)
	}
}
