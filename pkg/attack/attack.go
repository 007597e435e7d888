package attack

import (
	"fmt"
	"math"

	"github.com/askern/polycipher/pkg/cipher"
)

// Attack model constants.
const (
	// MaxTotalPenalty caps the combined penalty of all attacks.
	MaxTotalPenalty = 50

	// MaxFrequencyPenalty caps the frequency-analysis penalty.
	MaxFrequencyPenalty = 30

	// dominationBaseline is the letter frequency considered unremarkable;
	// only the excess above it is penalized. English's most common letter
	// sits a little above 12%, so 15% leaves normal text unpunished.
	dominationBaseline = 0.15

	// guessesPerSecond is the assumed brute-force test rate.
	guessesPerSecond = 1e6
)

// Finding is the outcome of one simulated attack.
type Finding struct {
	Name        string `json:"name"`
	Penalty     int    `json:"penalty"`
	Description string `json:"description"`
}

// Report aggregates all simulated attacks. ShowAnimation is a trigger flag
// for the external UI, true iff any attack scored a penalty; it is not part
// of the core's own state.
type Report struct {
	Attacks       []Finding `json:"attacks"`
	TotalPenalty  int       `json:"total_penalty"`
	ShowAnimation bool      `json:"show_animation"`
}

// RunAttacks simulates the frequency-analysis and brute-force attacks
// against a pipeline/ciphertext pair. The pipeline is only read. The
// plaintext is accepted for interface symmetry with the scoring engine;
// the current estimators do not consult it.
func RunAttacks(plaintext, ciphertext string, p *cipher.Pipeline) Report {
	r := Report{
		Attacks: []Finding{
			frequencyAttack(ciphertext),
			bruteForceAttack(p),
		},
	}
	for _, a := range r.Attacks {
		r.TotalPenalty += a.Penalty
	}
	if r.TotalPenalty > MaxTotalPenalty {
		r.TotalPenalty = MaxTotalPenalty
	}
	r.ShowAnimation = r.TotalPenalty > 0
	return r
}

// frequencyAttack builds a letters-only histogram of the ciphertext and
// penalizes domination by the single most common letter: the further the
// top frequency sits above the baseline, the easier a frequency table
// cracks the text. Ciphertext without letters scores zero.
func frequencyAttack(ciphertext string) Finding {
	f := Finding{Name: "Frequency analysis"}

	var counts [26]int
	total := 0
	for _, r := range ciphertext {
		switch {
		case r >= 'A' && r <= 'Z':
			counts[r-'A']++
			total++
		case r >= 'a' && r <= 'z':
			counts[r-'a']++
			total++
		}
	}
	if total == 0 {
		f.Description = "no letters to analyze"
		return f
	}

	top := 0
	for _, c := range counts {
		if c > top {
			top = c
		}
	}
	topFreq := float64(top) / float64(total)
	domination := math.Max(0, topFreq-dominationBaseline)
	f.Penalty = int(math.Round(math.Min(MaxFrequencyPenalty, domination*100)))
	f.Description = fmt.Sprintf("most common letter covers %.0f%% of the ciphertext", topFreq*100)
	return f
}

// Brute-force penalty buckets by time to exhaust the key space.
var bruteForceBuckets = []struct {
	maxSeconds float64
	penalty    int
}{
	{1, 40},
	{60, 30},
	{3600, 15},
	{86400, 5},
}

// bruteForceAttack multiplies the per-node key multiplicities into a total
// combination count, prices it at the assumed guess rate, and buckets the
// elapsed time into a penalty. A pipeline that survives a day of guessing
// is not penalized at all.
func bruteForceAttack(p *cipher.Pipeline) Finding {
	combos := 1.0
	for _, n := range p.Nodes() {
		combos *= float64(cipher.KeyMultiplicity(n))
	}
	seconds := combos / guessesPerSecond

	penalty := 0
	for _, b := range bruteForceBuckets {
		if seconds < b.maxSeconds {
			penalty = b.penalty
			break
		}
	}
	return Finding{
		Name:    "Brute force",
		Penalty: penalty,
		Description: fmt.Sprintf("%.0f key combinations exhausted in %s",
			combos, FormatDuration(seconds)),
	}
}

// FormatDuration renders a second count as a coarse human-readable span.
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 1:
		return "under a second"
	case seconds < 60:
		return fmt.Sprintf("%.0f seconds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.1f minutes", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%.1f hours", seconds/3600)
	default:
		return fmt.Sprintf("%.1f days", seconds/86400)
	}
}
