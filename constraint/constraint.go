package constraint

import (
	"fmt"
	"strings"

	"github.com/decycle-go/decycle/depgraph"
	"github.com/decycle-go/decycle/model"
)

// SliceSource is what a Constraint evaluates against: a single slicing's
// name, its member nodes, and its projected REFERENCES edges. A
// [*depgraph.Result] satisfies this directly.
type SliceSource interface {
	SlicingName() string
	Nodes() []*model.SimpleNode
	Edges() []depgraph.Ref
}

// Constraint is an architectural rule evaluated against one slicing.
type Constraint interface {
	// ID is the constraint's stable identifier, reported on every
	// violation it produces.
	ID() string
	// SlicingName names the slicing whose projection this constraint
	// evaluates against.
	SlicingName() string
	// Evaluate runs the constraint against src and returns every
	// violation found, in deterministic order.
	Evaluate(src SliceSource) []Violation
}

// Dependency is a single offending directed reference within a violation.
type Dependency struct {
	From *model.SimpleNode
	To   *model.SimpleNode
}

// Violation is a single constraint failure: the constraint that produced
// it, a human-readable description, and the offending edges that justify
// it, in presentation order.
type Violation struct {
	ConstraintID     string
	ShortDescription string
	Dependencies     []Dependency
}

// String renders the stable textual form used in reports:
// "constraintId: shortDescription: from -> to (, from -> to)*".
func (v Violation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s: ", v.ConstraintID, v.ShortDescription)
	for i, d := range v.Dependencies {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s -> %s", d.From.Name(), d.To.Name())
	}
	return b.String()
}
