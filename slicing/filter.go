package slicing

import (
	"github.com/decycle-go/decycle/model"
	"github.com/decycle-go/decycle/pattern"
)

// NodeFilter is the global include/exclude filter applied to every node
// before it enters a Graph.
//
// include(n) = includingMatches(n) && !excludingMatches(n). An empty
// including list accepts everything; excluding always subtracts.
//
// The filter only constrains concrete class nodes: a ParentAwareNode or a
// SimpleNode representing a slice group (anything without the
// [model.ClassType] type) is always accepted, since including/excluding
// patterns are written against class names.
type NodeFilter struct {
	including []*pattern.Pattern
	excluding []*pattern.Pattern
}

// NewNodeFilter constructs a NodeFilter from the configured including and
// excluding pattern lists.
func NewNodeFilter(including, excluding []*pattern.Pattern) *NodeFilter {
	return &NodeFilter{including: append([]*pattern.Pattern(nil), including...), excluding: append([]*pattern.Pattern(nil), excluding...)}
}

// Accept reports whether n passes the global filter.
func (f *NodeFilter) Accept(n model.Node) bool {
	sn, ok := n.(*model.SimpleNode)
	if !ok || !sn.IsClass() {
		return true
	}
	return f.AcceptName(sn.Name())
}

// AcceptName reports whether className passes the global filter.
func (f *NodeFilter) AcceptName(className string) bool {
	included := len(f.including) == 0
	for _, p := range f.including {
		if _, ok := p.Match(className); ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, p := range f.excluding {
		if _, ok := p.Match(className); ok {
			return false
		}
	}
	return true
}

// IgnoreRule is a {fromPattern, toPattern} pair applied against class-name
// pairs to suppress references before constraint evaluation.
type IgnoreRule struct {
	From *pattern.Pattern
	To   *pattern.Pattern
}

// EdgePairFilter suppresses a REFERENCES edge if any configured IgnoreRule
// matches both its endpoints.
type EdgePairFilter struct {
	rules []IgnoreRule
}

// NewEdgePairFilter constructs an EdgePairFilter from the configured ignore
// rules.
func NewEdgePairFilter(rules []IgnoreRule) *EdgePairFilter {
	return &EdgePairFilter{rules: append([]IgnoreRule(nil), rules...)}
}

// Accept reports whether the (fromName, toName) reference should be kept
// (true) or suppressed (false) by an ignore rule.
func (f *EdgePairFilter) Accept(fromName, toName string) bool {
	for _, r := range f.rules {
		_, fromOK := r.From.Match(fromName)
		if !fromOK {
			continue
		}
		if _, toOK := r.To.Match(toName); toOK {
			return false
		}
	}
	return true
}
