package cipher

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by [Pipeline.RemoveNode] when the index
// does not address an existing node. The legacy behavior was a silent
// no-op; failing explicitly was chosen so drivers cannot mask bookkeeping
// bugs, and callers that want the old behavior can check bounds first.
var ErrIndexOutOfRange = errors.New("node index out of range")

// Pipeline is an ordered, mutable sequence of cipher nodes. Nodes are
// applied in insertion order and the order is never normalized or
// optimized - composition here is not commutative. A pipeline owns its
// nodes exclusively; nodes are never shared between pipelines.
//
// The zero value is an empty, usable pipeline. Pipeline is not safe for
// concurrent use: the model is a single external driver per session.
type Pipeline struct {
	nodes []Node
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// AddNode appends a node to the end of the pipeline. The pipeline imposes
// no length budget - per-level node limits are a driver policy applied
// before calling the core.
func (p *Pipeline) AddNode(n Node) {
	p.nodes = append(p.nodes, n)
}

// RemoveNode removes the node at the given 0-based index.
// Returns ErrIndexOutOfRange if the index does not address a node.
func (p *Pipeline) RemoveNode(index int) error {
	if index < 0 || index >= len(p.nodes) {
		return fmt.Errorf("remove node %d of %d: %w", index, len(p.nodes), ErrIndexOutOfRange)
	}
	p.nodes = append(p.nodes[:index], p.nodes[index+1:]...)
	return nil
}

// Clear removes all nodes.
func (p *Pipeline) Clear() {
	p.nodes = nil
}

// Len returns the number of nodes.
func (p *Pipeline) Len() int { return len(p.nodes) }

// IsEmpty reports whether the pipeline has no nodes.
func (p *Pipeline) IsEmpty() bool { return len(p.nodes) == 0 }

// Nodes returns the nodes in application order. The slice is a copy; the
// nodes themselves are shared and must be treated as read-only. This is
// the introspection surface the scoring engine and attack simulator use.
func (p *Pipeline) Nodes() []Node {
	out := make([]Node, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// Encrypt folds Apply over all nodes in insertion order, seeding with
// text. An empty pipeline returns text unchanged. The same node sequence
// and input always produce the same output; there is no hidden randomness
// anywhere in the core.
func (p *Pipeline) Encrypt(text string) string {
	out := text
	for _, n := range p.nodes {
		out = n.Apply(out)
	}
	return out
}

// Describe returns one display string per node, numbered 1-based in
// application order.
func (p *Pipeline) Describe() []string {
	out := make([]string, len(p.nodes))
	for i, n := range p.nodes {
		out[i] = fmt.Sprintf("%d. %s", i+1, n.Describe())
	}
	return out
}
