package cli

import (
	"strconv"
	"strings"

	"github.com/askern/polycipher/pkg/cipher"
	"github.com/askern/polycipher/pkg/errors"
	"github.com/askern/polycipher/pkg/geometry"
)

// parseChain builds a pipeline from repeated --node flag values.
//
// Each spec is a node type with an optional colon-separated argument:
//
//	shift:3                     Caesar shift by 3
//	reverse                     reverse the text
//	multiply:7                  multiply letter positions by 7
//	polygon:0,0;300,0;0,400     derive keys from polygon vertices
func parseChain(specs []string) (*cipher.Pipeline, error) {
	p := cipher.NewPipeline()
	for _, spec := range specs {
		node, err := parseNode(spec)
		if err != nil {
			return nil, err
		}
		p.AddNode(node)
	}
	return p, nil
}

// parseNode parses a single node spec.
func parseNode(spec string) (cipher.Node, error) {
	kind, arg, hasArg := strings.Cut(spec, ":")

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "shift":
		key, err := parseKey(arg, hasArg, "shift")
		if err != nil {
			return nil, err
		}
		return cipher.NewShift(key), nil
	case "reverse":
		if hasArg {
			return nil, errors.New(errors.ErrCodeInvalidChain, "reverse takes no argument")
		}
		return cipher.NewReverse(), nil
	case "multiply":
		key, err := parseKey(arg, hasArg, "multiply")
		if err != nil {
			return nil, err
		}
		return cipher.NewMultiply(key), nil
	case "polygon":
		if !hasArg {
			return nil, errors.New(errors.ErrCodeInvalidChain, "polygon needs vertices, e.g. polygon:0,0;300,0;0,400")
		}
		vertices, err := parseVertices(arg)
		if err != nil {
			return nil, err
		}
		if result := geometry.Validate(vertices); !result.Valid {
			return nil, errors.New(errors.ErrCodeInvalidPolygon, "%s", result.Reason)
		}
		return cipher.NewPolygon(vertices), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidChain, "unknown node type %q (want shift, reverse, multiply, or polygon)", kind)
	}
}

func parseKey(arg string, hasArg bool, kind string) (int, error) {
	if !hasArg {
		return 0, errors.New(errors.ErrCodeInvalidKey, "%s needs a key, e.g. %s:3", kind, kind)
	}
	key, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidKey, "%s key %q is not an integer", kind, arg)
	}
	return key, nil
}

// parseVertices parses a semicolon-separated list of x,y pairs.
func parseVertices(arg string) ([]geometry.Point, error) {
	var vertices []geometry.Point
	for _, pair := range strings.Split(arg, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidPolygon, "vertex %q is not an x,y pair", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidPolygon, "vertex %q has a bad x coordinate", pair)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidPolygon, "vertex %q has a bad y coordinate", pair)
		}
		vertices = append(vertices, geometry.Point{X: x, Y: y})
	}
	return vertices, nil
}
