package depgraph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decycle-go/decycle/model"
	"github.com/decycle-go/decycle/pattern"
	"github.com/decycle-go/decycle/slicing"
)

// TestGraph_NoSelfLoops asserts that no CONTAINS or REFERENCES edge with
// from == to ever survives insertion, regardless of how it was requested.
func TestGraph_NoSelfLoops(t *testing.T) {
	g := moduleGraph(t)
	ctx := context.Background()
	require.NoError(t, errOnly(g.Connect(ctx, "com.billing.Invoice", "com.billing.Invoice")))
	require.NoError(t, errOnly(g.Add(ctx, "com.billing.Invoice")))

	snap := g.Snapshot()
	for _, e := range snap.Edges() {
		assert.NotEqual(t, e.From().Key(), e.To().Key())
	}
}

// TestGraph_ContainmentIsATree asserts every node has at most one CONTAINS
// in-edge source (the forest property the SliceNodeFinder's "unique in-edge"
// walk depends on).
func TestGraph_ContainmentIsATree(t *testing.T) {
	g := twoModuleGraph(t)
	for key := range g.nodes {
		assert.LessOrEqual(t, len(g.containsParents[key]), 1)
	}
}

// TestGraph_ProjectionFaithfulness asserts every projected Slice edge
// corresponds to at least one raw REFERENCES edge whose endpoints lift to
// it, and that no projected node falls outside the slicing's own members.
func TestGraph_ProjectionFaithfulness(t *testing.T) {
	g := twoModuleGraph(t)
	r := g.Slice("module")

	for _, n := range r.Nodes() {
		assert.True(t, n.HasType("module"))
	}

	finder := NewSliceNodeFinder("module", g)
	for _, e := range r.Edges() {
		found := false
		for _, raw := range g.refEdge {
			from, ok1 := finder.Lift(raw.From())
			to, ok2 := finder.Lift(raw.To())
			if ok1 && ok2 && from.Key() == e.From.Key() && to.Key() == e.To.Key() {
				found = true
				break
			}
		}
		assert.True(t, found, "projected edge %v has no lifting raw edge", e)
	}
}

// TestGraph_FilterMonotonicity asserts that tightening the node filter never
// adds nodes: every node visible under a restrictive including pattern is
// also visible with no filter at all.
func TestGraph_FilterMonotonicity(t *testing.T) {
	ctx := context.Background()

	module := slicing.NewSlicing("module", mustParse(t, "com.(*).**"))
	wide := New(slicing.NewCategorizer(module), slicing.NewNodeFilter(nil, nil), slicing.NewEdgePairFilter(nil))
	require.NoError(t, errOnly(wide.Connect(ctx, "com.billing.Invoice", "com.shipping.Order")))

	narrow := New(slicing.NewCategorizer(module),
		slicing.NewNodeFilter([]*pattern.Pattern{mustParse(t, "com.billing.**")}, nil),
		slicing.NewEdgePairFilter(nil))
	require.NoError(t, errOnly(narrow.Connect(ctx, "com.billing.Invoice", "com.shipping.Order")))

	wideKeys := make(map[string]bool)
	for _, n := range wide.AllNodes() {
		wideKeys[n.Key()] = true
	}
	for _, n := range narrow.AllNodes() {
		assert.True(t, wideKeys[n.Key()], "narrow-filter node %v absent from unfiltered graph", n)
	}
}

// TestGraph_ConnectIsIdempotent asserts that repeating the same Connect call
// leaves the source class with as many connections as the first call did.
func TestGraph_ConnectIsIdempotent(t *testing.T) {
	ctx := context.Background()
	g := moduleGraph(t)

	require.NoError(t, errOnly(g.Connect(ctx, "com.billing.Invoice", "com.shipping.Order")))
	first := g.ConnectionsOf(mustNode(t, g, "com.billing.Invoice"))

	require.NoError(t, errOnly(g.Connect(ctx, "com.billing.Invoice", "com.shipping.Order")))
	second := g.ConnectionsOf(mustNode(t, g, "com.billing.Invoice"))

	assert.Equal(t, len(first), len(second))
}

func mustNode(t *testing.T, g *Graph, className string) *model.SimpleNode {
	t.Helper()
	key := modelKey(t, g, className)
	n, ok := g.nodes[key]
	require.True(t, ok)
	return n.(*model.SimpleNode)
}
