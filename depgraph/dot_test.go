package depgraph

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_ToDOT_RendersNodesAndEdges(t *testing.T) {
	g := twoModuleGraph(t)
	out := g.Slice("module").ToDOT()

	assert.True(t, strings.HasPrefix(out, "digraph module {\n"))
	assert.Contains(t, out, `"billing";`)
	assert.Contains(t, out, `"shipping";`)
	assert.Contains(t, out, `"billing" -> "shipping";`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestResult_ToDOT_NilResultIsEmptyDigraph(t *testing.T) {
	var r *Result
	assert.Equal(t, "digraph decycle {\n}\n", r.ToDOT())
}

func TestResult_ToDOT_EscapesQuotesInNames(t *testing.T) {
	g := moduleGraph(t)
	require.NoError(t, errOnly(g.Connect(context.Background(), `com.bil"ling.Invoice`, "com.shipping.Order")))
	out := g.Slice("module").ToDOT()
	assert.Contains(t, out, `"bil\"ling";`)
	assert.Contains(t, out, `"bil\"ling" -> "shipping";`)
	assert.NotContains(t, out, `""`)
}
