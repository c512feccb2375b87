package grammar

import (
	"github.com/devg1120/mib-parser/internal/types"
)

// Node is a generic parse-tree node: a rule tag, the source span the
// rule matched, and the ordered children it was built from. Nodes are
// single-owner and never escape the parse invocation that created them.
type Node struct {
	Rule     Rule
	Span     types.Span
	Children []*Node
}

// NewNode creates a node with the given rule and span.
func NewNode(rule Rule, span types.Span, children ...*Node) *Node {
	return &Node{Rule: rule, Span: span, Children: children}
}

// Text returns the exact source text this node matched.
func (n *Node) Text(source []byte) string {
	return string(source[n.Span.Start:n.Span.End])
}

// ChildRules returns the rule tags of the node's children in order.
// The reducer pattern-matches on these to pick a composite shape.
func (n *Node) ChildRules() []Rule {
	rules := make([]Rule, len(n.Children))
	for i, c := range n.Children {
		rules[i] = c.Rule
	}
	return rules
}
