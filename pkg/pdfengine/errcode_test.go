package pdfengine_test

import (
	"testing"

	"github.com/sealdoc/pdfengine-go/pkg/pdfengine"
)

func TestErrorCodeDescriptions(t *testing.T) {
	cases := []struct {
		code pdfengine.ErrorCode
		want string
	}{
		{pdfengine.CodeSuccess, "no error"},
		{pdfengine.CodeUnknown, "unknown error"},
		{pdfengine.CodeFile, "file not found or could not be opened"},
		{pdfengine.CodeFormat, "file not in the expected format or corrupted"},
		{pdfengine.CodePassword, "password required or incorrect password"},
		{pdfengine.CodeSecurity, "unsupported security scheme"},
		{pdfengine.CodePage, "page not found or content error"},
		{pdfengine.CodeLicense, "operation blocked by licensing restriction"},
		// Codes outside the table fall back rather than failing the lookup.
		{pdfengine.ErrorCode(7), "unknown error"},
		{pdfengine.ErrorCode(-1), "unknown error"},
		{pdfengine.ErrorCode(9999), "unknown error"},
	}

	for _, tc := range cases {
		if got := tc.code.Description(); got != tc.want {
			t.Errorf("code %d: got %q, want %q", int(tc.code), got, tc.want)
		}
	}
}

func TestLastErrorDescriptionPerCode(t *testing.T) {
	codes := []pdfengine.ErrorCode{
		pdfengine.CodeSuccess,
		pdfengine.CodeUnknown,
		pdfengine.CodeFile,
		pdfengine.CodeFormat,
		pdfengine.CodePassword,
		pdfengine.CodeSecurity,
		pdfengine.CodePage,
		pdfengine.CodeLicense,
		pdfengine.ErrorCode(42),
	}

	for _, code := range codes {
		stub := &stubBinding{failCode: int(code)}
		e, err := pdfengine.New(pdfengine.Config{Binding: stub})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if code != pdfengine.CodeSuccess {
			if _, err := e.Merge(pdfengine.BytesSource([]byte{1}), pdfengine.BytesSource([]byte{2})); err == nil {
				t.Fatalf("code %d: expected Merge to fail", int(code))
			}
		}
		if got, want := e.LastErrorDescription(), code.Description(); got != want {
			t.Errorf("code %d: got %q, want %q", int(code), got, want)
		}
		_ = e.Close()
	}
}
