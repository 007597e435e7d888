package geometry

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// crossEpsilon is the tolerance for cross product comparisons.
// Values below this threshold are treated as zero (collinear edges).
const crossEpsilon = 1e-10

// Point is a 2D screen-space coordinate. Points are immutable value types;
// equality is positional.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns the vector p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Cross returns the 2D cross product of p and q treated as vectors.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Distance returns the Euclidean distance between two points.
func Distance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PolygonArea returns the unsigned area of the polygon via the shoelace
// formula, treating the vertex list as cyclic. Fewer than three vertices
// yield an area of 0.
func PolygonArea(vertices []Point) float64 {
	n := len(vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += vertices[i].X * vertices[j].Y
		area -= vertices[j].X * vertices[i].Y
	}
	return math.Abs(area) / 2
}

// IsConvex reports whether the ordered vertex list forms a convex polygon.
//
// For every consecutive vertex triple (cyclic) the cross product of the two
// edge vectors is computed; the polygon is convex iff all non-zero cross
// products share the same sign. Collinear triples (cross product within
// crossEpsilon of zero) do not break convexity. Fewer than three vertices
// are not convex by contract.
//
// This is an O(n) scan. It assumes a simple polygon; self-intersecting
// inputs may still report convex if their turn directions agree.
func IsConvex(vertices []Point) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}

	var positive, negative int
	for i := 0; i < n; i++ {
		p0 := vertices[i]
		p1 := vertices[(i+1)%n]
		p2 := vertices[(i+2)%n]

		cross := p1.Sub(p0).Cross(p2.Sub(p1))
		if cross > crossEpsilon {
			positive++
		} else if cross < -crossEpsilon {
			negative++
		}
	}
	return positive == 0 || negative == 0
}

// SideLengths returns the Euclidean length of each cyclic edge, in vertex
// order. The edge from the last vertex back to the first is included.
// Fewer than two vertices yield an empty slice.
func SideLengths(vertices []Point) []float64 {
	n := len(vertices)
	if n < 2 {
		return nil
	}
	lengths := make([]float64, n)
	for i := 0; i < n; i++ {
		lengths[i] = Distance(vertices[i], vertices[(i+1)%n])
	}
	return lengths
}

// SideVariance returns the population standard deviation of the polygon's
// edge lengths. A perfectly regular polygon has variance 0. Degenerate
// inputs (fewer than three vertices) also return 0.
func SideVariance(vertices []Point) float64 {
	if len(vertices) < 3 {
		return 0
	}
	return stat.PopStdDev(SideLengths(vertices), nil)
}

// Analysis bundles the derived geometric properties of a vertex list in one
// introspection result. It is the read-only view handed to callers that
// display polygon details or derive cipher keys.
type Analysis struct {
	Vertices     []Point   `json:"vertices"`
	Sides        int       `json:"sides"`
	Convex       bool      `json:"convex"`
	Area         float64   `json:"area"`
	SideVariance float64   `json:"side_variance"`
	SideLengths  []float64 `json:"side_lengths"`
}

// Analyze computes all derived properties of a vertex list in one pass.
func Analyze(vertices []Point) Analysis {
	return Analysis{
		Vertices:     vertices,
		Sides:        len(vertices),
		Convex:       IsConvex(vertices),
		Area:         PolygonArea(vertices),
		SideVariance: SideVariance(vertices),
		SideLengths:  SideLengths(vertices),
	}
}
