package cipher

// Kind identifies a node variant. The set is closed; switches over Kind in
// this module are exhaustive with an explicit default for forward
// compatibility.
type Kind int

const (
	// KindShift is a Caesar shift node.
	KindShift Kind = iota
	// KindReverse reverses the full character sequence.
	KindReverse
	// KindMultiply is a multiplicative (affine, no additive term) node.
	KindMultiply
	// KindPolygon derives its keys from drawn polygon geometry.
	KindPolygon
)

// String returns the lowercase name of the kind, matching the tags used in
// chain specs and API payloads.
func (k Kind) String() string {
	switch k {
	case KindShift:
		return "shift"
	case KindReverse:
		return "reverse"
	case KindMultiply:
		return "multiply"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Node is a single text transformation step. Apply is a pure, total
// function: it never fails, and characters outside the alphabetic domain
// pass through unchanged. Describe returns a human-readable summary for
// display only - it is not parseable back into a node.
type Node interface {
	Apply(text string) string
	Describe() string
	Kind() Kind
}

// letterIndex maps a letter rune to its 0-based alphabet position,
// case-folded. The second return is false for non-letters.
func letterIndex(r rune) (int, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	default:
		return 0, false
	}
}

// mapLetters rewrites every letter of text through f (a bijection on
// 0..25), emitting uppercase. Non-letters are copied verbatim.
func mapLetters(text string, f func(int) int) string {
	out := []rune(text)
	for i, r := range out {
		if idx, ok := letterIndex(r); ok {
			out[i] = rune('A' + f(idx))
		}
	}
	return string(out)
}
