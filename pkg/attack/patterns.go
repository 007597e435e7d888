package attack

import "fmt"

// DetectPatterns scans ciphertext for structures a human solver spots
// immediately. It is informational only and feeds no penalty into the
// attack report.
//
// Two scans run in order:
//
//   - repeating letter pairs: every two-character substring that occurs
//     more than once anywhere in the text (overlaps count), one warning per
//     distinct pair in first-occurrence order
//   - alphabetic sequence: the first run of three characters whose codes
//     ascend by exactly one; scanning stops at the first hit
func DetectPatterns(ciphertext string) []string {
	var warnings []string

	runes := []rune(ciphertext)
	seen := map[string]int{}
	var order []string
	for i := 0; i+1 < len(runes); i++ {
		pair := string(runes[i : i+2])
		if seen[pair] == 0 {
			order = append(order, pair)
		}
		seen[pair]++
	}
	for _, pair := range order {
		if seen[pair] > 1 {
			warnings = append(warnings, fmt.Sprintf("repeating letter pair %q weakens the cipher", pair))
		}
	}

	for i := 0; i+2 < len(runes); i++ {
		if runes[i+1] == runes[i]+1 && runes[i+2] == runes[i]+2 {
			warnings = append(warnings, fmt.Sprintf("alphabetic sequence %q detected", string(runes[i:i+3])))
			break
		}
	}
	return warnings
}
