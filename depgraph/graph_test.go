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

func mustParse(t *testing.T, s string) *pattern.Pattern {
	t.Helper()
	p, err := pattern.Parse(s)
	require.NoError(t, err)
	return p
}

func moduleGraph(t *testing.T) *Graph {
	t.Helper()
	module := slicing.NewSlicing("module", mustParse(t, "com.(*).**"))
	cat := slicing.NewCategorizer(module)
	nf := slicing.NewNodeFilter(nil, nil)
	ef := slicing.NewEdgePairFilter(nil)
	return New(cat, nf, ef)
}

func TestGraph_Add_CreatesClassAndCategory(t *testing.T) {
	g := moduleGraph(t)
	ctx := context.Background()

	_, err := g.Add(ctx, "com.billing.Invoice")
	require.NoError(t, err)

	all := g.AllNodes()
	keys := make([]string, 0, len(all))
	for _, n := range all {
		keys = append(keys, n.Key())
	}
	assert.Contains(t, keys, model.NewSimpleNode("com.billing.Invoice", model.ClassType).Key())
	assert.Contains(t, keys, model.NewSimpleNode("billing", "module").Key())
}

func TestGraph_Add_IsIdempotent(t *testing.T) {
	g := moduleGraph(t)
	ctx := context.Background()

	_, err := g.Add(ctx, "com.billing.Invoice")
	require.NoError(t, err)
	_, err = g.Add(ctx, "com.billing.Invoice")
	require.NoError(t, err)

	billing := model.NewSimpleNode("billing", "module")
	assert.Len(t, g.ContentsOf(billing), 1)
}

func TestGraph_TopNodes_ExcludesCategorizedLeaves(t *testing.T) {
	g := moduleGraph(t)
	ctx := context.Background()
	_, err := g.Add(ctx, "com.billing.Invoice")
	require.NoError(t, err)

	tops := g.TopNodes()
	require.Len(t, tops, 1)
	assert.Equal(t, "billing", tops[0].(*model.SimpleNode).Name())
}

func TestGraph_Add_UncategorizedClassIsItsOwnTop(t *testing.T) {
	g := moduleGraph(t)
	ctx := context.Background()
	_, err := g.Add(ctx, "org.other.Thing")
	require.NoError(t, err)

	tops := g.TopNodes()
	require.Len(t, tops, 1)
	assert.Equal(t, model.NewSimpleNode("org.other.Thing", model.ClassType).Key(), tops[0].Key())
}

func TestGraph_Connect_RejectsSelfLoop(t *testing.T) {
	g := moduleGraph(t)
	ctx := context.Background()

	_, err := g.Connect(ctx, "com.billing.Invoice", "com.billing.Invoice")
	require.NoError(t, err)

	assert.Empty(t, g.AllNodes())
}

func TestGraph_Connect_CreatesReferenceAndBothEndpoints(t *testing.T) {
	g := moduleGraph(t)
	ctx := context.Background()

	_, err := g.Connect(ctx, "com.billing.Invoice", "com.shipping.Order")
	require.NoError(t, err)

	from := model.NewSimpleNode("com.billing.Invoice", model.ClassType)
	conns := g.ConnectionsOf(from)
	require.Len(t, conns, 1)
	assert.Equal(t, "com.shipping.Order", conns[0].(*model.SimpleNode).Name())
}

func TestGraph_Connect_HonorsEdgeFilter(t *testing.T) {
	module := slicing.NewSlicing("module", mustParse(t, "com.(*).**"))
	cat := slicing.NewCategorizer(module)
	nf := slicing.NewNodeFilter(nil, nil)
	ef := slicing.NewEdgePairFilter([]slicing.IgnoreRule{
		{From: mustParse(t, "com.billing.**"), To: mustParse(t, "com.shipping.**")},
	})
	g := New(cat, nf, ef)
	ctx := context.Background()

	_, err := g.Connect(ctx, "com.billing.Invoice", "com.shipping.Order")
	require.NoError(t, err)

	from := model.NewSimpleNode("com.billing.Invoice", model.ClassType)
	assert.Empty(t, g.ConnectionsOf(from))
}

func TestGraph_Connect_HonorsNodeFilter(t *testing.T) {
	module := slicing.NewSlicing("module", mustParse(t, "com.(*).**"))
	cat := slicing.NewCategorizer(module)
	nf := slicing.NewNodeFilter([]*pattern.Pattern{mustParse(t, "com.billing.**")}, nil)
	ef := slicing.NewEdgePairFilter(nil)
	g := New(cat, nf, ef)
	ctx := context.Background()

	_, err := g.Connect(ctx, "com.billing.Invoice", "com.shipping.Order")
	require.NoError(t, err)

	assert.Empty(t, g.AllNodes())
}

func TestGraph_New_PanicsOnNilDependency(t *testing.T) {
	nf := slicing.NewNodeFilter(nil, nil)
	ef := slicing.NewEdgePairFilter(nil)
	cat := slicing.NewCategorizer()

	assert.Panics(t, func() { New(nil, nf, ef) })
	assert.Panics(t, func() { New(cat, nil, ef) })
	assert.Panics(t, func() { New(cat, nf, nil) })
}

func TestGraph_RunID_IsStableAcrossCalls(t *testing.T) {
	g := moduleGraph(t)
	assert.Equal(t, g.RunID(), g.RunID())
}
