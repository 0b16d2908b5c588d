package constraint

import (
	"strings"

	"github.com/decycle-go/decycle/pattern"
)

// LayerKind distinguishes a Strict layer (no references between its own
// members) from a Lenient one (within-layer references are allowed).
type LayerKind int

const (
	Strict LayerKind = iota
	Lenient
)

// Layer is a named group of slice members at a single position in a
// Layering's order. A member may be a literal slice name or a glob pattern
// (in the [pattern] package's grammar) matched against already-materialized
// slice names, letting one layer absorb a family of slices without
// enumerating them, e.g. "service.*".
type Layer struct {
	Kind    LayerKind
	Members []string
}

// render produces this layer's short-description fragment: a bare name for
// a singleton layer, bracketed for Strict, parenthesized for Lenient.
func (l Layer) render() string {
	if len(l.Members) == 1 {
		return l.Members[0]
	}
	joined := strings.Join(l.Members, ", ")
	if l.Kind == Strict {
		return "[" + joined + "]"
	}
	return "(" + joined + ")"
}

// Layering enforces a directed order over named layers of slice members: no
// reference may flow from a later layer to an earlier one, and (when Direct
// is set) no reference may skip over an intervening layer.
type Layering struct {
	id          string
	slicingName string
	layers      []Layer
	direct      bool
	matchers    [][]*pattern.Pattern // compiled Members, one slice per layer
}

// NewLayering constructs a Layering constraint over the named slicing,
// reported under id. Every layer member is compiled with [pattern.Parse];
// NewLayering panics if a member is not a valid pattern, since layers are
// part of a constraint's static definition, not runtime input.
func NewLayering(id, slicingName string, layers []Layer, direct bool) *Layering {
	matchers := make([][]*pattern.Pattern, len(layers))
	for i, layer := range layers {
		ps := make([]*pattern.Pattern, len(layer.Members))
		for j, member := range layer.Members {
			p, err := pattern.Parse(member)
			if err != nil {
				panic("constraint.NewLayering: invalid layer member " + member + ": " + err.Error())
			}
			ps[j] = p
		}
		matchers[i] = ps
	}
	return &Layering{id: id, slicingName: slicingName, layers: layers, direct: direct, matchers: matchers}
}

// ID returns the constraint's stable identifier.
func (l *Layering) ID() string { return l.id }

// SlicingName returns the slicing this constraint projects against.
func (l *Layering) SlicingName() string { return l.slicingName }

// shortDescription joins every layer's rendered form with " => ".
func (l *Layering) shortDescription() string {
	parts := make([]string, len(l.layers))
	for i, layer := range l.layers {
		parts[i] = layer.render()
	}
	return strings.Join(parts, " => ")
}

// matchLayer returns the index of the first layer (in declaration order)
// whose member patterns match name, first member-within-layer wins ties.
func (l *Layering) matchLayer(name string) (int, bool) {
	for i, ps := range l.matchers {
		for _, p := range ps {
			if _, ok := p.Match(name); ok {
				return i, true
			}
		}
	}
	return 0, false
}

// Evaluate checks every projected edge against the layer order and
// direction, in the order the edges were produced by the projection.
func (l *Layering) Evaluate(src SliceSource) []Violation {
	desc := l.shortDescription()

	var violations []Violation
	for _, e := range src.Edges() {
		u, v := e.From, e.To
		if u.Name() == v.Name() {
			continue
		}

		uIdx, uOk := l.matchLayer(u.Name())
		vIdx, vOk := l.matchLayer(v.Name())

		violated := false
		switch {
		case uOk && vOk && uIdx == vIdx:
			violated = l.layers[uIdx].Kind == Strict
		case uOk && vOk:
			if l.direct {
				violated = uIdx >= vIdx || uIdx+1 < vIdx
			} else {
				violated = uIdx > vIdx
			}
		case uOk && !vOk:
			// known source, unknown target: allowed only as last -> unknown.
			violated = uIdx != len(l.layers)-1
		case !uOk && vOk:
			// unknown source, known target: allowed only as unknown -> first.
			violated = vIdx != 0
		default:
			violated = false
		}

		if violated {
			violations = append(violations, Violation{
				ConstraintID:     l.id,
				ShortDescription: desc,
				Dependencies:     []Dependency{{From: u, To: v}},
			})
		}
	}
	return violations
}
