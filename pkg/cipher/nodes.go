package cipher

import "fmt"

// =============================================================================
// Shift
// =============================================================================

// Shift is a Caesar shift: each letter moves key positions forward in the
// alphabet. The key may be any integer; it is normalized mod 26 when
// applied, so Shift(29) and Shift(3) transform identically.
type Shift struct {
	key int
}

// NewShift creates a shift node with the given key.
func NewShift(key int) *Shift {
	return &Shift{key: key}
}

// Key returns the raw key as supplied at construction.
func (s *Shift) Key() int { return s.key }

// Apply shifts every letter forward by the normalized key, emitting
// uppercase. Non-letters pass through verbatim.
func (s *Shift) Apply(text string) string {
	k := mod(s.key, alphabetSize)
	return mapLetters(text, func(idx int) int {
		return (idx + k) % alphabetSize
	})
}

// Describe returns a display summary of the node.
func (s *Shift) Describe() string {
	return fmt.Sprintf("Shift letters forward by %d", mod(s.key, alphabetSize))
}

// Kind returns KindShift.
func (s *Shift) Kind() Kind { return KindShift }

// =============================================================================
// Reverse
// =============================================================================

// Reverse reverses the full character sequence of the text. Unlike the
// letter ciphers it repositions every rune, spaces and punctuation
// included. Applying it twice restores the original text.
type Reverse struct{}

// NewReverse creates a reverse node.
func NewReverse() *Reverse {
	return &Reverse{}
}

// Apply returns text with its rune sequence reversed.
func (r *Reverse) Apply(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Describe returns a display summary of the node.
func (r *Reverse) Describe() string {
	return "Reverse the entire text"
}

// Kind returns KindReverse.
func (r *Reverse) Kind() Kind { return KindReverse }

// =============================================================================
// Multiply
// =============================================================================

// Multiply is a multiplicative cipher: each letter index x maps to
// (key*x) mod 26. The effective key is always coprime to 26 - construction
// runs the supplied key through NormalizeMultiplyKey - so the map is a
// bijection on the alphabet.
type Multiply struct {
	key int
}

// NewMultiply creates a multiply node. A key outside the coprime set is
// silently replaced by its deterministic fallback; use NormalizeMultiplyKey
// directly to observe the substitution.
func NewMultiply(key int) *Multiply {
	return &Multiply{key: NormalizeMultiplyKey(key)}
}

// Key returns the effective (normalized) key.
func (m *Multiply) Key() int { return m.key }

// Apply maps every letter index x to (key*x) mod 26, emitting uppercase.
// Non-letters pass through verbatim.
func (m *Multiply) Apply(text string) string {
	return mapLetters(text, func(idx int) int {
		return (m.key * idx) % alphabetSize
	})
}

// Describe returns a display summary of the node.
func (m *Multiply) Describe() string {
	return fmt.Sprintf("Multiply letter positions by %d (mod 26)", m.key)
}

// Kind returns KindMultiply.
func (m *Multiply) Kind() Kind { return KindMultiply }
