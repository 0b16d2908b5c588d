package depgraph

import (
	"cmp"
	"slices"

	"github.com/decycle-go/decycle/model"
)

// Snapshot is a point-in-time, read-only copy of the full graph: every node
// and every edge (both CONTAINS and REFERENCES), independent of subsequent
// mutation. Used for whole-graph inspection; constraint evaluation and DOT
// export use [Result] instead.
type Snapshot struct {
	nodes []model.Node
	edges []model.Edge
}

// Nodes returns every node in the graph, sorted by key.
func (s *Snapshot) Nodes() []model.Node {
	if s == nil {
		return nil
	}
	return slices.Clone(s.nodes)
}

// Edges returns every edge in the graph (CONTAINS and REFERENCES), sorted
// for deterministic rendering.
func (s *Snapshot) Edges() []model.Edge {
	if s == nil {
		return nil
	}
	return slices.Clone(s.edges)
}

func newSnapshot(nodes map[string]model.Node, edges []model.Edge) *Snapshot {
	ns := make([]model.Node, 0, len(nodes))
	for _, n := range nodes {
		ns = append(ns, n)
	}
	slices.SortFunc(ns, func(a, b model.Node) int {
		return cmp.Compare(a.Key(), b.Key())
	})

	es := slices.Clone(edges)
	slices.SortFunc(es, func(a, b model.Edge) int {
		if c := cmp.Compare(a.From().Key(), b.From().Key()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Label(), b.Label()); c != 0 {
			return c
		}
		return cmp.Compare(a.To().Key(), b.To().Key())
	})

	return &Snapshot{nodes: ns, edges: es}
}
