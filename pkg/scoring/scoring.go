package scoring

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/askern/polycipher/pkg/cipher"
)

// Score model constants. Each additive term has a hard cap so no single
// property can dominate the total.
const (
	// BaseScore is the fixed starting credibility score.
	BaseScore = 60

	// MaxEntropyBonus caps the entropy-gain term.
	MaxEntropyBonus = 20
	// entropyWeight scales the entropy gain (in bits) into points.
	entropyWeight = 8

	// MaxDiffusionBonus caps the diffusion term.
	MaxDiffusionBonus = 12
	// diffusionWeight scales the changed-character percentage into points.
	diffusionWeight = 0.12
	// lengthMismatchDiffusion is the punitive default percentage used when
	// plaintext and ciphertext lengths differ; length-changing transforms
	// are not otherwise modeled.
	lengthMismatchDiffusion = 50

	// MaxKeySpaceBonus caps the key-space term (in points, one per bit).
	MaxKeySpaceBonus = 8

	// MinScore and MaxScore clamp the final result.
	MinScore = 0
	MaxScore = 100
)

// Penalty amounts and trigger thresholds. Penalties are independent; any
// subset can apply simultaneously.
const (
	PenaltyIdentity      = -25 // ciphertext identical to plaintext
	PenaltyReversal      = -15 // ciphertext is the exact reversal of plaintext
	PenaltyLowDiffusion  = -10 // fewer than lowDiffusionThreshold percent changed
	PenaltyUniformOutput = -5  // suspiciously flat letter distribution
	PenaltyEmptyPipeline = -40 // no nodes at all

	lowDiffusionThreshold  = 30
	uniformSpreadThreshold = 20 // stddev-to-mean percentage of letter counts
)

// Breakdown itemizes how a score was assembled. Final is the clamped sum
// of all other fields.
type Breakdown struct {
	Base      float64 `json:"base"`
	Entropy   float64 `json:"entropy"`
	Diffusion float64 `json:"diffusion"`
	KeySpace  float64 `json:"key_space"`
	Penalties float64 `json:"penalties"`
	Final     float64 `json:"final"`

	// PenaltyReasons names each triggered penalty, in evaluation order.
	PenaltyReasons []string `json:"penalty_reasons,omitempty"`
}

// Evaluate scores a plaintext/ciphertext pair together with the pipeline
// that produced it. The pipeline is only read, never mutated.
func Evaluate(plaintext, ciphertext string, p *cipher.Pipeline) Breakdown {
	b := Breakdown{Base: BaseScore}

	gain := ShannonEntropy(ciphertext) - ShannonEntropy(plaintext)
	b.Entropy = math.Min(MaxEntropyBonus, math.Max(0, gain)*entropyWeight)

	pct := DiffusionPercent(plaintext, ciphertext)
	b.Diffusion = math.Min(MaxDiffusionBonus, pct*diffusionWeight)

	var bits float64
	for _, n := range p.Nodes() {
		bits += math.Log2(float64(cipher.KeyMultiplicity(n)))
	}
	b.KeySpace = math.Min(MaxKeySpaceBonus, bits)

	addPenalty := func(amount float64, reason string) {
		b.Penalties += amount
		b.PenaltyReasons = append(b.PenaltyReasons, reason)
	}
	if ciphertext == plaintext {
		addPenalty(PenaltyIdentity, "ciphertext identical to plaintext")
	}
	if ciphertext == reverseString(plaintext) {
		addPenalty(PenaltyReversal, "ciphertext is just the plaintext reversed")
	}
	if pct < lowDiffusionThreshold {
		addPenalty(PenaltyLowDiffusion, "too few characters changed")
	}
	if isUniformLetterSpread(ciphertext) {
		addPenalty(PenaltyUniformOutput, "letter distribution suspiciously uniform")
	}
	if p.IsEmpty() {
		addPenalty(PenaltyEmptyPipeline, "pipeline has no nodes")
	}

	sum := b.Base + b.Entropy + b.Diffusion + b.KeySpace + b.Penalties
	b.Final = math.Min(MaxScore, math.Max(MinScore, sum))
	return b
}

// CheckPass reports whether a score meets a level threshold.
func CheckPass(score, threshold float64) bool {
	return score >= threshold
}

// ShannonEntropy returns the Shannon entropy, in bits, of the character
// frequency distribution of s - all characters, not letters only. The
// empty string has entropy 0.
func ShannonEntropy(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	counts := make(map[rune]int, len(runes))
	for _, r := range runes {
		counts[r]++
	}
	dist := make([]float64, 0, len(counts))
	total := float64(len(runes))
	for _, c := range counts {
		dist = append(dist, float64(c)/total)
	}
	// stat.Entropy works in nats; convert to bits.
	return stat.Entropy(dist) / math.Ln2
}

// DiffusionPercent returns the percentage (0-100) of same-index characters
// that differ between plaintext and ciphertext. When the lengths differ the
// comparison is meaningless and the punitive default of 50 is returned.
// Two empty strings have zero diffusion.
func DiffusionPercent(plaintext, ciphertext string) float64 {
	a, b := []rune(plaintext), []rune(ciphertext)
	if len(a) != len(b) {
		return lengthMismatchDiffusion
	}
	if len(a) == 0 {
		return 0
	}
	changed := 0
	for i := range a {
		if a[i] != b[i] {
			changed++
		}
	}
	return float64(changed) / float64(len(a)) * 100
}

// isUniformLetterSpread reports whether the letter counts of s are so close
// together that the output looks like a flat distribution - a property real
// monoalphabetic ciphertext of natural language never has. Texts with fewer
// than two distinct letters are never flagged.
func isUniformLetterSpread(s string) bool {
	var counts [26]float64
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			counts[r-'A']++
		case r >= 'a' && r <= 'z':
			counts[r-'a']++
		}
	}
	present := make([]float64, 0, 26)
	for _, c := range counts {
		if c > 0 {
			present = append(present, c)
		}
	}
	if len(present) < 2 {
		return false
	}
	mean := stat.Mean(present, nil)
	if mean == 0 {
		return false
	}
	ratio := stat.PopStdDev(present, nil) / mean * 100
	return ratio < uniformSpreadThreshold
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
