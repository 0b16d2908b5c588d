package lspdiag

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/decycle-go/decycle/constraint"
	"github.com/decycle-go/decycle/report"
)

// sourceName identifies decycle as the diagnostic source, mirroring how the
// teacher's analyzer stamps a fixed Source on every published diagnostic.
const sourceName = "decycle"

// ToDiagnostic converts a single violation to an LSP Diagnostic. Violations
// carry no source-file span (decycle analyzes compiled classes, not open
// documents), so every diagnostic's Range is the document start; clients
// rely on Message and Code rather than position to locate the violation.
func ToDiagnostic(v constraint.Violation) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := sourceName
	id := v.ConstraintID

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
		Severity: &severity,
		Code:     &protocol.IntegerOrString{Value: id},
		Source:   &source,
		Message:  report.Format(v),
	}
}

// ToDiagnostics converts every violation to an LSP Diagnostic, preserving
// order. Returns an empty (non-nil) slice for an empty or nil input, so
// JSON serialization always produces "[]" rather than "null".
func ToDiagnostics(violations []constraint.Violation) []protocol.Diagnostic {
	diags := make([]protocol.Diagnostic, 0, len(violations))
	for _, v := range violations {
		diags = append(diags, ToDiagnostic(v))
	}
	return diags
}
