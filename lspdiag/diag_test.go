package lspdiag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decycle-go/decycle/constraint"
	"github.com/decycle-go/decycle/model"
)

func TestToDiagnostic_RendersMessageAndCode(t *testing.T) {
	v := constraint.Violation{
		ConstraintID:     "no-cycles",
		ShortDescription: "billing => shipping",
		Dependencies: []constraint.Dependency{
			{From: model.NewSimpleNode("billing", "module"), To: model.NewSimpleNode("shipping", "module")},
		},
	}

	d := ToDiagnostic(v)
	require.NotNil(t, d.Severity)
	require.NotNil(t, d.Code)
	require.NotNil(t, d.Source)
	assert.Equal(t, "decycle", *d.Source)
	assert.Equal(t, "no-cycles", d.Code.Value)
	assert.Equal(t, "no-cycles: billing => shipping: billing -> shipping", d.Message)
}

func TestToDiagnostics_EmptyYieldsEmptyNotNil(t *testing.T) {
	diags := ToDiagnostics(nil)
	assert.NotNil(t, diags)
	assert.Empty(t, diags)
}

func TestToDiagnostics_PreservesOrder(t *testing.T) {
	violations := []constraint.Violation{
		{ConstraintID: "c1", ShortDescription: "a => b"},
		{ConstraintID: "c2", ShortDescription: "a => b"},
	}
	diags := ToDiagnostics(violations)
	require.Len(t, diags, 2)
	assert.Equal(t, "c1", diags[0].Code.Value)
	assert.Equal(t, "c2", diags[1].Code.Value)
}
