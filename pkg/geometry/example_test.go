package geometry_test

import (
	"fmt"

	"github.com/askern/polycipher/pkg/geometry"
)

func ExampleValidate() {
	square := []geometry.Point{{X: 0, Y: 0}, {X: 120, Y: 0}, {X: 120, Y: 120}, {X: 0, Y: 120}}
	res := geometry.Validate(square)
	fmt.Println(res.Valid, res.Sides)

	res = geometry.Validate(square[:2])
	fmt.Println(res.Valid, res.Reason)
	// Output:
	// true 4
	// false need at least 3 vertices
}

func ExampleAnalyze() {
	square := []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
	a := geometry.Analyze(square)
	fmt.Printf("sides=%d convex=%v area=%.0f variance=%.0f\n", a.Sides, a.Convex, a.Area, a.SideVariance)
	// Output:
	// sides=4 convex=true area=10000 variance=0
}
