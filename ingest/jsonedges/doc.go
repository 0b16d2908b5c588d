// Package jsonedges implements [ingest.Source] over a JSONC edge-list
// fixture: a simple, human-writable stand-in for a real bytecode reader,
// useful for tests and for driving the engine without a compiled classpath.
//
// Fixture shape:
//
//	[
//	  {"class": "com.billing.Invoice", "references": ["com.shipping.Order"]},
//	  {"class": "com.shipping.Order", "references": []}
//	]
//
// Comments and trailing commas are accepted by default (JSONC); see
// [WithStrictJSON] to require plain JSON instead.
package jsonedges
