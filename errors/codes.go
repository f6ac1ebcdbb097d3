// Package errors provides the error taxonomy for commitcheck.
// It extends Go's standard error handling with structured error codes so that
// every rejection reason and runtime failure is distinguishable by callers.
package errors

// ErrorCode represents a specific error condition in commitcheck.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Input errors.

	// CodeMissingInput indicates no commit message source was provided.
	CodeMissingInput ErrorCode = "MISSING_INPUT"

	// CodeReadFailed indicates the commit message source could not be read.
	CodeReadFailed ErrorCode = "READ_FAILED"

	// Validation errors.

	// CodeStructuralMismatch indicates the message does not match the tag grammar.
	CodeStructuralMismatch ErrorCode = "STRUCTURAL_MISMATCH"

	// CodeInvalidCategory indicates the extracted category is not a known category code.
	CodeInvalidCategory ErrorCode = "INVALID_CATEGORY"

	// CodeInvalidSequence indicates the extracted sequence is not exactly two digits.
	CodeInvalidSequence ErrorCode = "INVALID_SEQUENCE"

	// Configuration errors.

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// String returns the code as a plain string.
func (c ErrorCode) String() string {
	return string(c)
}

// IsValidation reports whether the code describes a commit message rejection
// rather than a runtime failure.
func (c ErrorCode) IsValidation() bool {
	switch c {
	case CodeMissingInput, CodeStructuralMismatch, CodeInvalidCategory, CodeInvalidSequence:
		return true
	default:
		return false
	}
}
