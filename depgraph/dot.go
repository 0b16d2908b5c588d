package depgraph

import (
	"fmt"
	"strings"
)

// ToDOT renders the projection as a Graphviz DOT digraph: one quoted node
// statement per slice-group node, sorted by key, followed by one edge
// statement per projected reference in insertion order. This is a debugging
// aid over the projection, not a generated report artifact — there is no
// styling, coloring, or layout beyond a plain digraph body.
func (r *Result) ToDOT() string {
	if r == nil {
		return "digraph decycle {\n}\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", dotQuoteID(r.slicingName))
	b.WriteString("  rankdir=\"LR\";\n")
	b.WriteString("  node [shape=box];\n")

	for _, n := range r.nodes {
		fmt.Fprintf(&b, "  %s;\n", dotQuote(n.Name()))
	}
	for _, e := range r.edges {
		fmt.Fprintf(&b, "  %s -> %s;\n", dotQuote(e.From.Name()), dotQuote(e.To.Name()))
	}

	b.WriteString("}\n")
	return b.String()
}

// dotQuote escapes and quotes a label for use as a DOT node identifier.
func dotQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// dotQuoteID produces a bare DOT identifier for a digraph name, falling back
// to a fixed name when s is empty or would not form a valid bare identifier.
func dotQuoteID(s string) string {
	if s == "" {
		return "decycle"
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
