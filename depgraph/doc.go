// Package depgraph implements the mutable directed multigraph over class
// and slice nodes, and the read-only slice projection used by the
// constraint engine.
//
// A [Graph] is built with a categorizer and the global node/edge-pair
// filters, then populated during a single-threaded ingest phase via [Graph.Add]
// and [Graph.Connect]. [Graph.Slice] produces an immutable [Result]: a
// projected sub-graph over one slicing's nodes, safe to evaluate
// constraints against while the source Graph continues to mutate.
package depgraph
