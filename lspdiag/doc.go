// Package lspdiag publishes constraint.Violation results as Language Server
// Protocol diagnostics, so an editor or IDE can surface architecture
// violations inline. It is a thin diagnostics-only server: no hover,
// completion, or document synchronization, since decycle analyzes compiled
// classes rather than open source documents.
package lspdiag
