package cipher

import (
	"fmt"

	"github.com/askern/polycipher/pkg/geometry"
)

// defaultPolygonShift is the shift key used when the side count is a
// multiple of 26 (including the degenerate zero-vertex case).
const defaultPolygonShift = 3

// Polygon is a two-stage cipher node whose keys are derived from the
// geometry of a drawn polygon. The stages are fixed and not separately
// configurable:
//
//  1. a Shift whose key is the side count mod 26 (or 3 when that is 0)
//  2. if and only if the polygon is convex, a Multiply whose key is
//     selected from the coprime table by floor(sideVariance*2) mod 12
//
// Concave polygons apply stage 1 only, so a convex drawing is strictly
// stronger than a concave one with the same side count.
//
// All derived fields are computed once at construction and never change;
// redrawing the polygon produces a new node, never a mutation.
type Polygon struct {
	analysis geometry.Analysis
	shift    *Shift
	multiply *Multiply // nil when the polygon is concave
}

// NewPolygon freezes a vertex list into a polygon node. The caller is
// expected to have run geometry.Validate first; construction itself accepts
// any vertex list and derives total (zero-valued) geometry from degenerate
// input.
func NewPolygon(vertices []geometry.Point) *Polygon {
	// Freeze the vertex list: the node must stay immutable even if the
	// caller reuses its slice for the next drawing.
	verts := make([]geometry.Point, len(vertices))
	copy(verts, vertices)
	a := geometry.Analyze(verts)

	shiftKey := a.Sides % alphabetSize
	if shiftKey == 0 {
		shiftKey = defaultPolygonShift
	}

	p := &Polygon{
		analysis: a,
		shift:    NewShift(shiftKey),
	}
	if a.Convex {
		p.multiply = NewMultiply(coprimeKeys[mod(int(a.SideVariance*2), len(coprimeKeys))])
	}
	return p
}

// Apply runs the shift stage, then the multiply stage when the polygon is
// convex. Both stage keys were frozen at construction, so the result is
// deterministic per node.
func (p *Polygon) Apply(text string) string {
	out := p.shift.Apply(text)
	if p.multiply != nil {
		out = p.multiply.Apply(out)
	}
	return out
}

// Describe returns a display summary including the derived stage keys.
func (p *Polygon) Describe() string {
	if p.multiply != nil {
		return fmt.Sprintf("Polygon (%d sides, convex): shift %d then multiply %d",
			p.analysis.Sides, p.shift.Key(), p.multiply.Key())
	}
	return fmt.Sprintf("Polygon (%d sides, concave): shift %d",
		p.analysis.Sides, p.shift.Key())
}

// Kind returns KindPolygon.
func (p *Polygon) Kind() Kind { return KindPolygon }

// Analysis returns the frozen geometric introspection of the polygon.
func (p *Polygon) Analysis() geometry.Analysis { return p.analysis }

// ShiftKey returns the stage-1 key.
func (p *Polygon) ShiftKey() int { return p.shift.Key() }

// MultiplyKey returns the stage-2 key and whether the stage is active
// (false for concave polygons).
func (p *Polygon) MultiplyKey() (int, bool) {
	if p.multiply == nil {
		return 0, false
	}
	return p.multiply.Key(), true
}
