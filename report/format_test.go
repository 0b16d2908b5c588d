package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decycle-go/decycle/constraint"
	"github.com/decycle-go/decycle/model"
)

func node(name string) *model.SimpleNode {
	return model.NewSimpleNode(name, "module")
}

func TestFormat_RendersSingleDependency(t *testing.T) {
	v := constraint.Violation{
		ConstraintID:     "no-cycles",
		ShortDescription: "billing => shipping",
		Dependencies: []constraint.Dependency{
			{From: node("billing"), To: node("shipping")},
		},
	}
	assert.Equal(t, "no-cycles: billing => shipping: billing -> shipping", Format(v))
}

func TestFormat_RendersMultipleDependencies(t *testing.T) {
	v := constraint.Violation{
		ConstraintID:     "no-cycles",
		ShortDescription: "billing => shipping",
		Dependencies: []constraint.Dependency{
			{From: node("billing"), To: node("shipping")},
			{From: node("shipping"), To: node("billing")},
		},
	}
	assert.Equal(t, "no-cycles: billing => shipping: billing -> shipping, shipping -> billing", Format(v))
}

func TestFormatAll_EmptyYieldsEmptyString(t *testing.T) {
	assert.Equal(t, "", FormatAll(nil))
}

func TestFormatAll_SortsLinesDeterministically(t *testing.T) {
	violations := []constraint.Violation{
		{ConstraintID: "z-constraint", ShortDescription: "x => y",
			Dependencies: []constraint.Dependency{{From: node("x"), To: node("y")}}},
		{ConstraintID: "a-constraint", ShortDescription: "x => y",
			Dependencies: []constraint.Dependency{{From: node("x"), To: node("y")}}},
	}

	out := FormatAll(violations)
	expected := "a-constraint: x => y: x -> y\nz-constraint: x => y: x -> y"
	assert.Equal(t, expected, out)
}
