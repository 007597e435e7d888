// Package geometry provides the 2D analysis primitives behind polygon
// cipher keys: distances, shoelace areas, convexity testing, and edge-length
// statistics over ordered vertex lists.
//
// All functions are pure and total. Degenerate inputs (fewer than three
// vertices) return zero values rather than errors, because downstream key
// derivation and scoring depend on always receiving a usable number:
//
//   - PolygonArea returns 0
//   - IsConvex returns false
//   - SideVariance returns 0
//
// # Validation
//
// Validate runs the structural checks a vertex list must pass before it is
// frozen into a polygon cipher node. Checks run in a fixed order and the
// first failure wins. Self-intersection is deliberately not detected; the
// minimum-distance check between vertex pairs is the only guard against
// degenerate shapes.
//
// # Usage
//
//	verts := []geometry.Point{{0, 0}, {120, 0}, {120, 120}, {0, 120}}
//	res := geometry.Validate(verts)
//	if !res.Valid {
//	    return fmt.Errorf("bad polygon: %s", res.Reason)
//	}
//	a := geometry.Analyze(verts)
//	fmt.Println(a.Convex, a.Area, a.SideVariance)
package geometry
