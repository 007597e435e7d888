package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// regularNGon builds a regular n-gon of the given circumradius centered at
// (cx, cy). All side lengths are equal, so SideVariance must be ~0.
func regularNGon(n int, cx, cy, r float64) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)}
	}
	return pts
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, 0.0, Distance(Point{2, 2}, Point{2, 2}))
}

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name     string
		vertices []Point
		want     float64
	}{
		{"empty", nil, 0},
		{"single point", []Point{{1, 1}}, 0},
		{"segment", []Point{{0, 0}, {10, 0}}, 0},
		{"unit right triangle", []Point{{0, 0}, {1, 0}, {0, 1}}, 0.5},
		{"10x10 square", []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, 100},
		{"clockwise square", []Point{{0, 10}, {10, 10}, {10, 0}, {0, 0}}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PolygonArea(tt.vertices), 1e-9)
		})
	}
}

func TestPolygonAreaSquareExact(t *testing.T) {
	// The 10x10 square sits exactly on the MinArea boundary and the
	// shoelace sum must hit it exactly, with no floating point slack.
	sq := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	require.Equal(t, 100.0, PolygonArea(sq))
	require.True(t, Validate(sq).Valid)
}

func TestIsConvex(t *testing.T) {
	tests := []struct {
		name     string
		vertices []Point
		want     bool
	}{
		{"empty", nil, false},
		{"two points", []Point{{0, 0}, {50, 0}}, false},
		{"triangle", []Point{{0, 0}, {100, 0}, {50, 80}}, true},
		{"square ccw", []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}, true},
		{"square cw", []Point{{0, 100}, {100, 100}, {100, 0}, {0, 0}}, true},
		{"arrowhead", []Point{{0, 0}, {100, 0}, {50, 30}, {50, 100}}, false},
		{"collinear midpoint", []Point{{0, 0}, {50, 0}, {100, 0}, {100, 100}, {0, 100}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConvex(tt.vertices))
		})
	}
}

func TestRegularNGons(t *testing.T) {
	// Every regular n-gon in the supported range is convex with ~0 side
	// variance.
	for n := 3; n <= 12; n++ {
		pts := regularNGon(n, 200, 200, 100)
		assert.True(t, IsConvex(pts), "n=%d", n)
		assert.InDelta(t, 0, SideVariance(pts), 1e-9, "n=%d", n)
	}
}

func TestSideLengths(t *testing.T) {
	sq := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	lengths := SideLengths(sq)
	require.Len(t, lengths, 4)
	for _, l := range lengths {
		assert.InDelta(t, 10, l, 1e-9)
	}

	assert.Nil(t, SideLengths([]Point{{0, 0}}))
}

func TestSideVariance(t *testing.T) {
	// Degenerate inputs are total and return 0.
	assert.Equal(t, 0.0, SideVariance(nil))
	assert.Equal(t, 0.0, SideVariance([]Point{{0, 0}, {100, 0}}))

	// An elongated triangle has unequal sides, hence positive variance.
	tri := []Point{{0, 0}, {300, 0}, {150, 20}}
	assert.Greater(t, SideVariance(tri), 0.0)
}

func TestAnalyze(t *testing.T) {
	sq := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	a := Analyze(sq)
	assert.Equal(t, 4, a.Sides)
	assert.True(t, a.Convex)
	assert.InDelta(t, 10000, a.Area, 1e-9)
	assert.InDelta(t, 0, a.SideVariance, 1e-9)
	assert.Len(t, a.SideLengths, 4)
}
