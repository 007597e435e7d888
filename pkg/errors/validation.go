package errors

import "unicode"

// MaxPlaintextLength caps user-supplied plaintext. The engine itself has no
// limit, but unbounded input makes no sense for a per-character toy cipher
// and the API should not accept megabytes of it.
const MaxPlaintextLength = 10000

// ValidatePlaintext validates user-supplied plaintext before it reaches the
// cipher core.
//
// The validation rules are intentionally conservative:
//   - No empty input
//   - Maximum length of MaxPlaintextLength characters
//   - No control characters (tabs and newlines included - plaintext is a
//     single line of text)
//
// The core transforms any string; these limits are a driver-boundary
// policy, not an engine invariant.
func ValidatePlaintext(text string) error {
	if text == "" {
		return New(ErrCodeInvalidInput, "plaintext cannot be empty")
	}

	if len(text) > MaxPlaintextLength {
		return New(ErrCodeInvalidInput, "plaintext too long (max %d characters)", MaxPlaintextLength)
	}

	for _, r := range text {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "plaintext contains control characters")
		}
	}

	return nil
}

// ValidateThreshold validates a pass threshold for a level. Scores are
// clamped to 0-100, so a threshold outside that range could never be met
// or never fail.
func ValidateThreshold(threshold float64) error {
	if threshold < 0 || threshold > 100 {
		return New(ErrCodeInvalidLevel, "pass threshold must be within 0-100, got %v", threshold)
	}
	return nil
}
