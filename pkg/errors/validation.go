package errors

import (
	"strings"
	"unicode"
)

// ValidateSequenceInput validates raw sequence text before code lookup.
// It rejects input that could never resolve to residues, keeping the
// per-code lookup errors for genuinely unknown codes.
//
// The validation rules are intentionally conservative:
//   - No empty input (an empty peptide is expressed as an empty slice,
//     not an empty string)
//   - No control characters or null bytes
//   - Maximum length of 10000 characters
func ValidateSequenceInput(seq string) error {
	if seq == "" {
		return New(ErrCodeInvalidSequence, "sequence cannot be empty")
	}

	const maxSequenceLength = 10000
	if len(seq) > maxSequenceLength {
		return New(ErrCodeInvalidSequence, "sequence too long (max %d characters)", maxSequenceLength)
	}

	for _, r := range seq {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidSequence, "sequence contains invalid control characters")
		}
	}

	return nil
}

// ValidatePosition validates a 1-based residue position against a
// sequence length.
func ValidatePosition(pos, length int) error {
	if pos < 1 || pos > length {
		return New(ErrCodeInvalidPosition, "position %d out of range [1, %d]", pos, length)
	}
	return nil
}

// ValidateOutputPath validates a file path destined for os.Create.
// It prevents path traversal out of the working tree and ensures a
// reasonable path length.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidInput, "path contains null bytes")
	}

	return nil
}
