package pdfengine

import "github.com/sealdoc/pdfengine-go/internal/bindings"

// ErrorCode is a native engine error code. The engine retains only the code
// of the most recent failing call, so a code is meaningful only when fetched
// adjacent to the failure; the facade does that for every failing operation.
type ErrorCode int

const (
	CodeSuccess  ErrorCode = bindings.CodeSuccess
	CodeUnknown  ErrorCode = bindings.CodeUnknown
	CodeFile     ErrorCode = bindings.CodeFile
	CodeFormat   ErrorCode = bindings.CodeFormat
	CodePassword ErrorCode = bindings.CodePassword
	CodeSecurity ErrorCode = bindings.CodeSecurity
	CodePage     ErrorCode = bindings.CodePage
	CodeLicense  ErrorCode = bindings.CodeLicense
)

// Description returns the fixed human-readable meaning of the code. The table
// is total: codes outside it, including CodeUnknown itself, report the
// unknown-error description rather than failing the lookup.
func (c ErrorCode) Description() string {
	switch c {
	case CodeSuccess:
		return "no error"
	case CodeFile:
		return "file not found or could not be opened"
	case CodeFormat:
		return "file not in the expected format or corrupted"
	case CodePassword:
		return "password required or incorrect password"
	case CodeSecurity:
		return "unsupported security scheme"
	case CodePage:
		return "page not found or content error"
	case CodeLicense:
		return "operation blocked by licensing restriction"
	default:
		return "unknown error"
	}
}
