// Package slicing classifies class names into user-named slice groups.
//
// A [Slicing] is a named, ordered list of patterns. A [Categorizer] composes
// an ordered list of slicings to map a class to the slice node(s) it
// belongs to. [NodeFilter] and [EdgePairFilter] apply the global
// include/exclude and ignore-rule configuration before nodes and edges
// reach the graph. [Registry] collects all of the above for a single
// Configuration.
package slicing
