// Package cipher implements the text-transformation nodes and the pipeline
// that composes them.
//
// A Node is a single total transformation over text: letters are mapped
// within the 26-letter alphabet and emitted uppercase, every other
// character passes through verbatim (Reverse is the exception - it reverses
// the whole rune sequence, punctuation included). The node set is closed:
//
//   - Shift: Caesar shift by an integer key, normalized mod 26 at apply time
//   - Reverse: reverse the full rune sequence
//   - Multiply: multiplicative cipher, key forced coprime to 26 so the
//     letter map is always a bijection
//   - Polygon: a two-stage node whose keys are derived from the geometry of
//     a drawn polygon (see NewPolygon)
//
// A Pipeline is an ordered, mutable sequence of nodes. Encrypt folds Apply
// over the nodes in insertion order; composition is not commutative and is
// never reordered or optimized. An empty pipeline is the identity.
//
// # Key normalization
//
// Multiply keys outside the coprime set are silently corrected to a
// deterministic fallback rather than rejected - a legacy behavior kept as
// the exported NormalizeMultiplyKey so callers and tests can target it.
// Callers that need strict key enforcement must pre-validate coprimality.
//
// # Usage
//
//	p := cipher.NewPipeline()
//	p.AddNode(cipher.NewShift(3))
//	p.AddNode(cipher.NewReverse())
//	out := p.Encrypt("HELLO, WORLD")
package cipher
