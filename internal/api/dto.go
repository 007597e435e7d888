package api

import (
	"context"
	"strings"

	"github.com/askern/polycipher/pkg/cipher"
	"github.com/askern/polycipher/pkg/errors"
	"github.com/askern/polycipher/pkg/geometry"
	"github.com/askern/polycipher/pkg/observability"
)

// NodeSpec is the wire representation of one transform node.
type NodeSpec struct {
	Type     string           `json:"type"`
	Key      int              `json:"key,omitempty"`
	Vertices []geometry.Point `json:"vertices,omitempty"`
}

// buildNode constructs a cipher node from its wire representation.
// Polygon vertices are validated before the node is built, so an invalid
// polygon never reaches the pipeline.
func buildNode(ctx context.Context, spec NodeSpec) (cipher.Node, error) {
	switch strings.ToLower(spec.Type) {
	case "shift":
		return cipher.NewShift(spec.Key), nil
	case "reverse":
		return cipher.NewReverse(), nil
	case "multiply":
		return cipher.NewMultiply(spec.Key), nil
	case "polygon":
		result := geometry.Validate(spec.Vertices)
		if !result.Valid {
			observability.Engine().OnPolygonRejected(ctx, result.Reason)
			return nil, errors.New(errors.ErrCodeInvalidPolygon, "%s", result.Reason)
		}
		return cipher.NewPolygon(spec.Vertices), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidChain, "unknown node type %q", spec.Type)
	}
}

// buildPipeline constructs a pipeline from a chain of node specs.
func buildPipeline(ctx context.Context, chain []NodeSpec) (*cipher.Pipeline, error) {
	p := cipher.NewPipeline()
	for i, spec := range chain {
		node, err := buildNode(ctx, spec)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidChain, err, "chain node %d", i)
		}
		p.AddNode(node)
	}
	return p, nil
}
