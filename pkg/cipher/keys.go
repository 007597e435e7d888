package cipher

// alphabetSize is the size of the cipher alphabet.
const alphabetSize = 26

// coprimeKeys are the multipliers coprime to 26, in ascending order. Only
// these keys make the multiplicative map a bijection on the alphabet. The
// table doubles as the fallback set for key normalization and as the
// lookup table for polygon-derived multiply keys.
var coprimeKeys = [12]int{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25}

// NormalizeMultiplyKey forces a multiply key into the coprime set. Keys
// already in the set pass through unchanged; anything else is replaced by
// the fallback coprimeKeys[key mod 12]. The substitution is silent and
// deterministic - a legacy auto-correction, not a validation failure.
func NormalizeMultiplyKey(key int) int {
	for _, k := range coprimeKeys {
		if key == k {
			return key
		}
	}
	return coprimeKeys[mod(key, len(coprimeKeys))]
}

// KeyMultiplicity returns the number of distinct parameter choices for a
// node, used for key-space scoring and brute-force estimation. Unknown
// kinds get the conservative default of 2; Polygon intentionally falls into
// that default rather than getting its own multiplicity.
func KeyMultiplicity(n Node) int {
	switch n.Kind() {
	case KindShift:
		return alphabetSize
	case KindMultiply:
		return len(coprimeKeys)
	case KindReverse:
		return 2
	default:
		return 2
	}
}

// mod returns a mod m, always non-negative, for any integer a.
func mod(a, m int) int {
	return ((a % m) + m) % m
}
