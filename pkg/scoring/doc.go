// Package scoring grades a plaintext/ciphertext pair against the pipeline
// that produced it, on a 0-100 scale.
//
// The model is heuristic and additive with hard per-term caps: a fixed base
// credibility score, an entropy-gain term, a diffusion term, a key-space
// term, and a set of independently triggered penalties. It is built to give
// monotonic, explainable feedback, not to measure real cryptanalytic
// difficulty.
//
// Evaluate returns the full Breakdown so drivers can show users exactly
// where points came from and went. CheckPass compares the final score to a
// level threshold.
package scoring
