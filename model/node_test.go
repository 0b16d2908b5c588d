package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleNode_Equality(t *testing.T) {
	a := NewSimpleNode("com.example.Foo", ClassType)
	b := NewSimpleNode("com.example.Foo", ClassType)
	c := NewSimpleNode("com.example.Bar", ClassType)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.False(t, a.Equal(c))
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestSimpleNode_TypesSortedDeduped(t *testing.T) {
	n := NewSimpleNode("service", "b", "a", "a", "c")
	assert.Equal(t, []string{"a", "b", "c"}, n.Types())
}

func TestSimpleNode_HasType(t *testing.T) {
	n := NewSimpleNode("com.example.Foo", ClassType, "module")
	assert.True(t, n.HasType(ClassType))
	assert.True(t, n.HasType("module"))
	assert.False(t, n.HasType("other"))
	assert.True(t, n.IsClass())
}

func TestSimpleNode_KeyDistinguishesTypeSets(t *testing.T) {
	a := NewSimpleNode("x", "module")
	b := NewSimpleNode("x", "layer")
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestNewSimpleNode_PanicsOnEmptyName(t *testing.T) {
	assert.Panics(t, func() { NewSimpleNode("", "module") })
}

func TestNewSimpleNode_PanicsOnEmptyTypes(t *testing.T) {
	assert.Panics(t, func() { NewSimpleNode("x") })
}

func TestParentAwareNode_ValFor(t *testing.T) {
	a := NewSimpleNode("service.billing", "module")
	b := NewSimpleNode("api", "layer")
	p := NewParentAwareNode(a, b)

	v, ok := p.ValFor("module")
	require.True(t, ok)
	assert.True(t, v.Equal(a))

	v, ok = p.ValFor("layer")
	require.True(t, ok)
	assert.True(t, v.Equal(b))

	_, ok = p.ValFor("missing")
	assert.False(t, ok)
}

func TestParentAwareNode_Vals_ReturnsCopy(t *testing.T) {
	a := NewSimpleNode("service.billing", "module")
	b := NewSimpleNode("api", "layer")
	p := NewParentAwareNode(a, b)

	vals := p.Vals()
	vals[0] = NewSimpleNode("mutated", "x")

	again := p.Vals()
	assert.True(t, again[0].Equal(a))
}

func TestParentAwareNode_Key_OrderSensitive(t *testing.T) {
	a := NewSimpleNode("service.billing", "module")
	b := NewSimpleNode("api", "layer")

	p1 := NewParentAwareNode(a, b)
	p2 := NewParentAwareNode(b, a)

	assert.NotEqual(t, p1.Key(), p2.Key())
}

func TestNewParentAwareNode_PanicsOnFewerThanTwo(t *testing.T) {
	a := NewSimpleNode("x", "module")
	assert.Panics(t, func() { NewParentAwareNode(a) })
	assert.Panics(t, func() { NewParentAwareNode() })
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "simple", KindSimple.String())
	assert.Equal(t, "parentAware", KindParentAware.String())
	assert.Equal(t, "unknown", Kind(255).String())
}

func TestNode_Kind(t *testing.T) {
	var simple Node = NewSimpleNode("x", "module")
	var parent Node = NewParentAwareNode(
		NewSimpleNode("a", "module"),
		NewSimpleNode("b", "layer"),
	)
	assert.Equal(t, KindSimple, simple.Kind())
	assert.Equal(t, KindParentAware, parent.Kind())
}
