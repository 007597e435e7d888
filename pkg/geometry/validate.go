package geometry

// Validation limits for polygons drawn by the user. These are structural
// limits of the key-derivation scheme, not rendering constraints: more than
// 12 sides would exceed the coprime key table, and vertices closer than
// MinVertexDistance produce edges too short to carry meaningful variance.
const (
	// MinVertices is the smallest vertex count that forms a polygon.
	MinVertices = 3

	// MaxVertices is the largest supported vertex count.
	MaxVertices = 12

	// MinVertexDistance is the minimum allowed distance between any two
	// vertices, in screen units.
	MinVertexDistance = 15

	// MinArea is the minimum polygon area, in square screen units.
	MinArea = 100
)

// Validation reasons, one per failed check. These strings are part of the
// external contract: drivers match on them to pick user-facing messages.
const (
	ReasonTooFewVertices   = "need at least 3 vertices"
	ReasonTooManyVertices  = "too many vertices"
	ReasonVerticesTooClose = "vertices too close together"
	ReasonTooSmall         = "polygon too small"
)

// ValidationResult is the outcome of Validate. When Valid is false, Reason
// holds the machine-checkable failure string and Sides is the vertex count
// that was examined.
type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"error,omitempty"`
	Sides  int    `json:"sides"`
}

// Validate runs the structural checks on a vertex list, in order, returning
// on the first failure:
//
//  1. at least MinVertices vertices
//  2. at most MaxVertices vertices
//  3. no two vertices closer than MinVertexDistance (all-pairs scan; at
//     n <= 12 the O(n^2) cost is negligible and needs no spatial index)
//  4. area of at least MinArea
//
// Self-intersection is not checked. The minimum-distance scan is the only
// guard against degenerate shapes, so a bowtie polygon with well-separated
// vertices validates successfully.
func Validate(vertices []Point) ValidationResult {
	n := len(vertices)
	if n < MinVertices {
		return ValidationResult{Reason: ReasonTooFewVertices, Sides: n}
	}
	if n > MaxVertices {
		return ValidationResult{Reason: ReasonTooManyVertices, Sides: n}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if Distance(vertices[i], vertices[j]) < MinVertexDistance {
				return ValidationResult{Reason: ReasonVerticesTooClose, Sides: n}
			}
		}
	}
	if PolygonArea(vertices) < MinArea {
		return ValidationResult{Reason: ReasonTooSmall, Sides: n}
	}
	return ValidationResult{Valid: true, Sides: n}
}
