package slicing

import "github.com/decycle-go/decycle/model"

// Categorizer composes an ordered list of slicings and maps a class node
// to the slice node it belongs to.
type Categorizer struct {
	slicings []*Slicing
}

// NewCategorizer constructs a Categorizer over slicings, in the order they
// should be tried for every class. An empty list is valid: every class is
// then its own category (no slicing ever matches).
func NewCategorizer(slicings ...*Slicing) *Categorizer {
	cp := make([]*Slicing, len(slicings))
	copy(cp, slicings)
	return &Categorizer{slicings: cp}
}

// Slicings returns a copy of the categorizer's ordered slicing list.
func (c *Categorizer) Slicings() []*Slicing {
	out := make([]*Slicing, len(c.slicings))
	copy(out, c.slicings)
	return out
}

// SlicingNames returns the names of all configured slicings, in
// declaration order.
func (c *Categorizer) SlicingNames() []string {
	out := make([]string, len(c.slicings))
	for i, s := range c.slicings {
		out[i] = s.name
	}
	return out
}

// Categorize computes the category of n:
//
//  1. for each slicing in declaration order, find the first pattern whose
//     match succeeds on n's name;
//  2. collect the matched SimpleNodes, in slicing declaration order;
//  3. zero matches: n has no category, and Categorize returns n itself
//     (the fixed point Graph relies on to terminate its containment walk);
//  4. exactly one match: return that SimpleNode, unless its label equals
//     n's own name, in which case n IS that slice group, and the matched
//     slicing's name is folded into n's own type set instead of producing
//     a separate node;
//  5. two or more matches: return a ParentAwareNode over the ordered list.
func (c *Categorizer) Categorize(n *model.SimpleNode) model.Node {
	var matches []*model.SimpleNode
	for _, s := range c.slicings {
		label, ok := s.Match(n.Name())
		if !ok {
			continue
		}
		matches = append(matches, model.NewSimpleNode(label, s.Name()))
	}

	switch len(matches) {
	case 0:
		return n
	case 1:
		m := matches[0]
		if m.Name() != n.Name() {
			return m
		}
		types := append(n.Types(), m.Types()...)
		merged := model.NewSimpleNode(n.Name(), types...)
		if model.Equal(merged, n) {
			return n
		}
		return merged
	default:
		return model.NewParentAwareNode(matches...)
	}
}
