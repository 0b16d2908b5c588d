// Package decycle assembles the pattern, slicing, depgraph, and constraint
// packages into a single entry point: Configuration is built from an
// ingest.Source plus include/exclude/ignore patterns, named slicings, and
// constraints, and Check walks the source and evaluates every constraint
// against its slicing's projection.
package decycle
