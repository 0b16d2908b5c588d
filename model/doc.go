// Package model defines the node and edge types shared by the categorizer,
// the dependency graph, and the constraint engine.
//
// Node is a closed sum type with two variants, [SimpleNode] and
// [ParentAwareNode]. Both are immutable after construction and compare by
// value via [Node.Key], not by pointer identity.
package model
