// Package attack simulates simplistic cryptanalysis against a pipeline and
// its ciphertext.
//
// Two independent estimators produce penalty points: a frequency-analysis
// attack that measures how much the most common ciphertext letter dominates
// the distribution, and a brute-force attack that prices the pipeline's
// total key space in wall-clock time at a fixed guess rate. Their sum is
// capped; a positive total sets the ShowAnimation flag, which is purely a
// signal for the external UI.
//
// DetectPatterns is a separate, non-scoring scan that flags repeating
// letter pairs and ascending alphabetic runs - the structures a human
// solver would notice first.
//
// The attacks are deliberately naive. They model how exposed a toy cipher
// looks, not whether it can actually be broken.
package attack
