package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		vertices   []Point
		wantValid  bool
		wantReason string
	}{
		{
			name:       "empty",
			vertices:   nil,
			wantReason: ReasonTooFewVertices,
		},
		{
			name:       "two vertices",
			vertices:   []Point{{0, 0}, {100, 0}},
			wantReason: ReasonTooFewVertices,
		},
		{
			name:       "thirteen vertices",
			vertices:   regularNGon(13, 200, 200, 100),
			wantReason: ReasonTooManyVertices,
		},
		{
			name:       "duplicate vertex",
			vertices:   []Point{{0, 0}, {0, 0}, {100, 0}, {100, 100}},
			wantReason: ReasonVerticesTooClose,
		},
		{
			name:       "near-duplicate vertex",
			vertices:   []Point{{0, 0}, {10, 10}, {100, 0}, {100, 100}},
			wantReason: ReasonVerticesTooClose,
		},
		{
			name:       "thin polygon below minimum area",
			vertices:   []Point{{0, 0}, {40, 0}, {20, 4}},
			wantReason: ReasonTooSmall,
		},
		{
			name:      "boundary area square",
			vertices:  []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
			wantValid: true,
		},
		{
			name:      "valid pentagon",
			vertices:  regularNGon(5, 200, 200, 100),
			wantValid: true,
		},
		{
			// Self-intersection is intentionally not detected; the bowtie's
			// vertices are far apart so it passes every check.
			name:      "bowtie self-intersection passes",
			vertices:  []Point{{0, 0}, {100, 100}, {100, 0}, {0, 100}},
			wantValid: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.vertices)
			assert.Equal(t, tt.wantValid, res.Valid)
			assert.Equal(t, tt.wantReason, res.Reason)
			assert.Equal(t, len(tt.vertices), res.Sides)
		})
	}
}

func TestValidateChecksOrder(t *testing.T) {
	// A two-vertex list with duplicate points must report the vertex-count
	// failure, not the distance failure: checks run in fixed order and the
	// first failure wins.
	res := Validate([]Point{{0, 0}, {0, 0}})
	assert.Equal(t, ReasonTooFewVertices, res.Reason)
}
