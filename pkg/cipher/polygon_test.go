package cipher

import (
	"testing"

	"github.com/askern/polycipher/pkg/geometry"
)

var (
	// 100x100 square: convex, 4 sides, zero side variance.
	squareVerts = []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}

	// 3-4-5 right triangle scaled by 100: convex, side lengths 300/500/400.
	triangleVerts = []geometry.Point{{X: 0, Y: 0}, {X: 300, Y: 0}, {X: 0, Y: 400}}

	// Arrowhead: 4 sides with one reflex vertex, concave.
	arrowheadVerts = []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 50, Y: 30}, {X: 50, Y: 100}}
)

func TestPolygonDerivedKeys(t *testing.T) {
	tests := []struct {
		name        string
		vertices    []geometry.Point
		wantShift   int
		wantMult    int
		wantHasMult bool
	}{
		{
			// Zero variance selects coprimeKeys[0] = 1, an identity multiply.
			name:        "square",
			vertices:    squareVerts,
			wantShift:   4,
			wantMult:    1,
			wantHasMult: true,
		},
		{
			// Side lengths 300/500/400: population std dev ~81.65, so the
			// multiply index is floor(163.3) mod 12 = 7 -> key 17.
			name:        "scalene right triangle",
			vertices:    triangleVerts,
			wantShift:   3,
			wantMult:    17,
			wantHasMult: true,
		},
		{
			name:        "concave arrowhead skips multiply",
			vertices:    arrowheadVerts,
			wantShift:   4,
			wantHasMult: false,
		},
		{
			// Degenerate input: 0 sides mod 26 is 0, so the shift key falls
			// back to 3; not convex, so no multiply stage.
			name:        "no vertices",
			vertices:    nil,
			wantShift:   3,
			wantHasMult: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolygon(tt.vertices)
			if got := p.ShiftKey(); got != tt.wantShift {
				t.Errorf("ShiftKey() = %d, want %d", got, tt.wantShift)
			}
			mult, ok := p.MultiplyKey()
			if ok != tt.wantHasMult {
				t.Fatalf("MultiplyKey() active = %v, want %v", ok, tt.wantHasMult)
			}
			if ok && mult != tt.wantMult {
				t.Errorf("MultiplyKey() = %d, want %d", mult, tt.wantMult)
			}
		})
	}
}

func TestPolygonApplyTwoStage(t *testing.T) {
	// The triangle node must equal Shift(3) then Multiply(17) applied
	// manually.
	p := NewPolygon(triangleVerts)
	in := "ATTACK AT DAWN"
	want := NewMultiply(17).Apply(NewShift(3).Apply(in))
	if got := p.Apply(in); got != want {
		t.Errorf("Apply(%q) = %q, want %q", in, got, want)
	}
}

func TestPolygonConcaveSingleStage(t *testing.T) {
	p := NewPolygon(arrowheadVerts)
	in := "ATTACK AT DAWN"
	want := NewShift(4).Apply(in)
	if got := p.Apply(in); got != want {
		t.Errorf("concave Apply(%q) = %q, want shift-only %q", in, got, want)
	}
}

func TestPolygonConvexConcaveDiverge(t *testing.T) {
	// With positive side variance the convex polygon runs a second stage
	// with a non-identity key, so the two ciphertexts must differ.
	convex := NewPolygon(triangleVerts)
	concave := NewPolygon([]geometry.Point{{X: 0, Y: 0}, {X: 300, Y: 0}, {X: 200, Y: 100}, {X: 40, Y: 30}})

	in := "SAMELENGTHINPUT"
	if convex.Apply(in) == NewShift(convex.ShiftKey()).Apply(in) {
		// Guard: the convex instance genuinely has an active, non-identity
		// multiply stage, otherwise this test proves nothing.
		t.Fatal("convex polygon's multiply stage is inactive or identity")
	}
	if concave.Apply(in) != NewShift(concave.ShiftKey()).Apply(in) {
		t.Fatal("concave polygon applied more than the shift stage")
	}
}

func TestPolygonImmutableAfterConstruction(t *testing.T) {
	verts := []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
	p := NewPolygon(verts)
	before := p.Apply("HELLO")

	// Mutating the caller's slice must not change the node's behavior or
	// its frozen analysis.
	verts[0] = geometry.Point{X: 9999, Y: 9999}
	if got := p.Apply("HELLO"); got != before {
		t.Errorf("Apply changed after external mutation: %q -> %q", before, got)
	}
	if p.Analysis().Sides != 4 || !p.Analysis().Convex {
		t.Error("analysis changed after external mutation")
	}
}
