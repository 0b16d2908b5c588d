package depgraph

import (
	"cmp"
	"slices"

	"github.com/decycle-go/decycle/model"
)

// Ref is a single REFERENCES edge within a slice projection, connecting two
// slice-group nodes of the same slicing.
type Ref struct {
	From *model.SimpleNode
	To   *model.SimpleNode
}

// Result is an immutable projection of a Graph onto a single slicing: the
// set of nodes carrying that slicing's type, and the REFERENCES edges
// between them after lifting every raw class-to-class edge through the
// containment tree.
//
// A Result is independent of the source Graph; it may be evaluated by
// constraints while the Graph continues to mutate.
type Result struct {
	slicingName string
	nodes       []*model.SimpleNode
	edges       []Ref
}

// newResult builds a Result, sorting nodes for deterministic iteration while
// preserving edge insertion order (consistent with the order the underlying
// edges were added to the graph).
func newResult(slicingName string, nodes []*model.SimpleNode, edges []Ref) *Result {
	sorted := slices.Clone(nodes)
	slices.SortFunc(sorted, func(a, b *model.SimpleNode) int {
		return cmp.Compare(a.Key(), b.Key())
	})
	return &Result{
		slicingName: slicingName,
		nodes:       sorted,
		edges:       slices.Clone(edges),
	}
}

// SlicingName returns the name of the slicing this projection was built for.
func (r *Result) SlicingName() string {
	if r == nil {
		return ""
	}
	return r.slicingName
}

// Nodes returns the slice-group nodes participating in this projection,
// sorted by key.
func (r *Result) Nodes() []*model.SimpleNode {
	if r == nil {
		return nil
	}
	return slices.Clone(r.nodes)
}

// Edges returns the projected REFERENCES edges in insertion order. Parallel
// edges (multiple raw edges lifting to the same pair) are retained; callers
// evaluating set membership should dedup as needed.
func (r *Result) Edges() []Ref {
	if r == nil {
		return nil
	}
	return slices.Clone(r.edges)
}
