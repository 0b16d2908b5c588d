package model

import (
	"slices"
	"strings"
)

// ClassType is the reserved type name marking a SimpleNode as a concrete
// class leaf rather than a slice group.
const ClassType = "class"

// Kind identifies which of the two Node variants a value holds.
type Kind uint8

const (
	// KindSimple marks a *SimpleNode.
	KindSimple Kind = iota
	// KindParentAware marks a *ParentAwareNode.
	KindParentAware
)

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindParentAware:
		return "parentAware"
	default:
		return "unknown"
	}
}

// Node is implemented only by *SimpleNode and *ParentAwareNode. The
// unexported method closes the interface so no other package can introduce
// a third variant.
type Node interface {
	// Kind reports which concrete variant this Node is.
	Kind() Kind

	// Key is the value-equality key for this node: two nodes with equal
	// Key values are considered the same node wherever Node is used as a
	// set or map key.
	Key() string

	String() string

	node()
}

// SimpleNode represents either a concrete class (Name is the fully
// qualified class name, Types includes [ClassType] and the name of every
// slicing in which this node is itself a slice group) or a slice group
// (Name is the slice label, Types is the singleton set of the slicing
// name).
//
// SimpleNode is immutable after construction. Equality is the (Name,
// Types) pair; use [SimpleNode.Key] or [SimpleNode.Equal].
type SimpleNode struct {
	name  string
	types []string // sorted, de-duplicated
}

// NewSimpleNode constructs a SimpleNode. types must be non-empty; it is
// sorted and de-duplicated before storage. Panics if name is empty or
// types is empty, since both are invariants of the node model.
func NewSimpleNode(name string, types ...string) *SimpleNode {
	if name == "" {
		panic("model.NewSimpleNode: empty name")
	}
	if len(types) == 0 {
		panic("model.NewSimpleNode: empty types")
	}
	dedup := make([]string, 0, len(types))
	seen := make(map[string]struct{}, len(types))
	for _, t := range types {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		dedup = append(dedup, t)
	}
	slices.Sort(dedup)
	return &SimpleNode{name: name, types: dedup}
}

// Name returns the node's name: a class's fully-qualified name, or a slice
// label.
func (n *SimpleNode) Name() string {
	return n.name
}

// Types returns a copy of the node's type set, sorted.
func (n *SimpleNode) Types() []string {
	out := make([]string, len(n.types))
	copy(out, n.types)
	return out
}

// HasType reports whether t is one of this node's types.
func (n *SimpleNode) HasType(t string) bool {
	_, ok := slices.BinarySearch(n.types, t)
	return ok
}

// IsClass reports whether this node represents a concrete class leaf.
func (n *SimpleNode) IsClass() bool {
	return n.HasType(ClassType)
}

// Equal reports whether n and other denote the same node by value.
func (n *SimpleNode) Equal(other *SimpleNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.Key() == other.Key()
}

// Key returns the value-equality key: the name followed by the sorted type
// set, joined so that two nodes with equal (name, types) pairs produce
// equal keys and no other pair does.
func (n *SimpleNode) Key() string {
	var b strings.Builder
	b.WriteString(n.name)
	b.WriteByte('\x00')
	for i, t := range n.types {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(t)
	}
	return b.String()
}

// Kind returns [KindSimple].
func (n *SimpleNode) Kind() Kind { return KindSimple }

func (n *SimpleNode) String() string {
	return n.name + "[" + strings.Join(n.types, ",") + "]"
}

func (n *SimpleNode) node() {}

// ParentAwareNode is the image of a class under the categorizer when
// multiple slicings classify the same class. Vals holds one SimpleNode per
// matching slicing, in slicing declaration order.
//
// Invariant: vals contains distinct SimpleNodes, and for each v in vals,
// v's types are disjoint from every other val's types (each val belongs to
// a distinct slicing).
type ParentAwareNode struct {
	vals []*SimpleNode
}

// NewParentAwareNode constructs a ParentAwareNode from an ordered sequence
// of SimpleNodes. Panics if fewer than two vals are given, since a single
// matching slicing is represented directly as a SimpleNode.
func NewParentAwareNode(vals ...*SimpleNode) *ParentAwareNode {
	if len(vals) < 2 {
		panic("model.NewParentAwareNode: requires at least two vals")
	}
	cp := make([]*SimpleNode, len(vals))
	copy(cp, vals)
	return &ParentAwareNode{vals: cp}
}

// Vals returns a copy of the ordered SimpleNode sequence.
func (n *ParentAwareNode) Vals() []*SimpleNode {
	out := make([]*SimpleNode, len(n.vals))
	copy(out, n.vals)
	return out
}

// ValFor returns the SimpleNode among Vals whose types contain slicingName,
// and whether one was found. Used by the SliceNodeFinder.
func (n *ParentAwareNode) ValFor(slicingName string) (*SimpleNode, bool) {
	for _, v := range n.vals {
		if v.HasType(slicingName) {
			return v, true
		}
	}
	return nil, false
}

// Key returns the value-equality key: the concatenation of each val's key,
// in order.
func (n *ParentAwareNode) Key() string {
	var b strings.Builder
	b.WriteByte('P')
	for _, v := range n.vals {
		b.WriteByte('\x01')
		b.WriteString(v.Key())
	}
	return b.String()
}

// Kind returns [KindParentAware].
func (n *ParentAwareNode) Kind() Kind { return KindParentAware }

func (n *ParentAwareNode) String() string {
	parts := make([]string, len(n.vals))
	for i, v := range n.vals {
		parts[i] = v.String()
	}
	return "parent(" + strings.Join(parts, " + ") + ")"
}

func (n *ParentAwareNode) node() {}

// Equal reports whether a and b denote the same node by value, across both
// Node variants.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key() == b.Key()
}
