package depgraph

import "github.com/decycle-go/decycle/model"

// SliceNodeFinder lifts an arbitrary graph node to the node that represents
// it within a single slicing, walking the containment tree when the node
// itself carries no membership in that slicing.
//
// The lift rules, in order:
//  1. A SimpleNode already carrying the slicing's type lifts to itself.
//  2. A ParentAwareNode lifts to whichever of its vals directly carries the
//     slicing's type; if none do, each val's own containment ancestry is
//     searched in declaration order.
//  3. Anything else climbs its unique CONTAINS in-edge and recurses.
//
// A node with no path to a member of the slicing is not defined in it.
type SliceNodeFinder struct {
	slicingName string
	graph       *Graph
}

// NewSliceNodeFinder builds a finder for the given slicing over g.
func NewSliceNodeFinder(slicingName string, g *Graph) *SliceNodeFinder {
	return &SliceNodeFinder{slicingName: slicingName, graph: g}
}

// Lift resolves n to its representative within the finder's slicing.
func (f *SliceNodeFinder) Lift(n model.Node) (*model.SimpleNode, bool) {
	switch v := n.(type) {
	case *model.SimpleNode:
		if v.HasType(f.slicingName) {
			return v, true
		}
		return f.liftViaContainer(n)
	case *model.ParentAwareNode:
		if val, ok := v.ValFor(f.slicingName); ok {
			return val, true
		}
		for _, val := range v.Vals() {
			if lifted, ok := f.Lift(val); ok {
				return lifted, true
			}
		}
		return nil, false
	default:
		return f.liftViaContainer(n)
	}
}

// IsDefinedAt reports whether n has a lift target within the finder's
// slicing, without constructing the result.
func (f *SliceNodeFinder) IsDefinedAt(n model.Node) bool {
	_, ok := f.Lift(n)
	return ok
}

func (f *SliceNodeFinder) liftViaContainer(n model.Node) (*model.SimpleNode, bool) {
	parents := f.graph.containsParents[n.Key()]
	if len(parents) == 0 {
		return nil, false
	}
	return f.Lift(parents[0])
}
