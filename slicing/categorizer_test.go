package slicing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decycle-go/decycle/model"
	"github.com/decycle-go/decycle/pattern"
)

func mustParse(t *testing.T, s string) *pattern.Pattern {
	t.Helper()
	p, err := pattern.Parse(s)
	require.NoError(t, err)
	return p
}

func classNode(name string) *model.SimpleNode {
	return model.NewSimpleNode(name, model.ClassType)
}

func TestCategorizer_NoMatch_ReturnsNodeItself(t *testing.T) {
	c := NewCategorizer()
	n := classNode("com.example.Foo")
	got := c.Categorize(n)
	assert.True(t, model.Equal(got, n))
}

func TestCategorizer_SingleMatch_ReturnsSimpleNode(t *testing.T) {
	module := NewSlicing("module", mustParse(t, "com.(*).**"))
	c := NewCategorizer(module)

	n := classNode("com.billing.Invoice")
	got := c.Categorize(n)

	sn, ok := got.(*model.SimpleNode)
	require.True(t, ok)
	assert.Equal(t, "billing", sn.Name())
	assert.True(t, sn.HasType("module"))
}

func TestCategorizer_MultipleMatches_ReturnsParentAwareNode(t *testing.T) {
	module := NewSlicing("module", mustParse(t, "com.(*).**"))
	layer := NewSlicing("layer", mustParse(t, "com.**.(*)"))
	c := NewCategorizer(module, layer)

	n := classNode("com.billing.Invoice")
	got := c.Categorize(n)

	pan, ok := got.(*model.ParentAwareNode)
	require.True(t, ok)
	require.Len(t, pan.Vals(), 2)
	assert.Equal(t, "billing", pan.Vals()[0].Name())
	assert.Equal(t, "Invoice", pan.Vals()[1].Name())
}

func TestCategorizer_DeclarationOrder_ValsFollowSlicingOrder(t *testing.T) {
	first := NewSlicing("first", mustParse(t, "com.example.**=matched-first"))
	second := NewSlicing("second", mustParse(t, "com.example.**=matched-second"))
	c := NewCategorizer(first, second)

	n := classNode("com.example.Foo")
	got := c.Categorize(n)

	pan, ok := got.(*model.ParentAwareNode)
	require.True(t, ok)
	assert.Equal(t, "matched-first", pan.Vals()[0].Name())
	assert.Equal(t, "matched-second", pan.Vals()[1].Name())
}

func TestCategorizer_SelfReferentialLabel_FoldsTypeIntoLeaf(t *testing.T) {
	// A pattern whose label equals the class's own name means the class
	// IS the slice group; the slicing name folds into the leaf's types
	// rather than producing a distinct node, preserving the fixed point.
	whole := NewSlicing("identity", mustParse(t, "com.example.Foo"))
	c := NewCategorizer(whole)

	n := classNode("com.example.Foo")
	got := c.Categorize(n)

	sn, ok := got.(*model.SimpleNode)
	require.True(t, ok)
	assert.Equal(t, "com.example.Foo", sn.Name())
	assert.True(t, sn.HasType(model.ClassType))
	assert.True(t, sn.HasType("identity"))

	// Re-categorizing the folded node reaches the fixed point.
	again := c.Categorize(sn)
	assert.True(t, model.Equal(again, sn))
}

func TestCategorizer_SlicingNames(t *testing.T) {
	c := NewCategorizer(
		NewSlicing("module", mustParse(t, "com.(*).**")),
		NewSlicing("layer", mustParse(t, "com.**.(*)")),
	)
	assert.Equal(t, []string{"module", "layer"}, c.SlicingNames())
}
