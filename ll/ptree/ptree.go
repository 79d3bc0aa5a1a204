package ptree

import (
	"bytes"

	"github.com/npillmayer/gorll"
	"github.com/npillmayer/gorll/ll"
)

// Node is a node of a parse tree. For terminals, Token holds the matched input
// token and Rule is nil. For non-terminals, Rule is the rule the node has been
// expanded with and Children correspond to the right-hand side of Rule.
type Node struct {
	Symbol   *ll.Symbol
	Rule     *ll.Rule
	Token    gorll.Token
	Children []*Node
}

// NewNode creates a non-terminal node for an expansion, with room for the
// children of the rule.
func NewNode(rule *ll.Rule) *Node {
	return &Node{
		Symbol:   rule.LHS,
		Rule:     rule,
		Children: make([]*Node, len(rule.RHS())),
	}
}

// Leaf creates a terminal node.
func Leaf(sym *ll.Symbol, token gorll.Token) *Node {
	return &Node{Symbol: sym, Token: token}
}

// IsTerminal returns true for leaves representing input tokens.
func (n *Node) IsTerminal() bool {
	return n.Symbol != nil && !n.Symbol.IsNonTerminal()
}

// Child returns the leftmost child of n for the grammar symbol named name, or
// nil if there is none.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, ch := range n.Children {
		if ch != nil && ch.Symbol != nil && ch.Symbol.Name == name {
			return ch
		}
	}
	return nil
}

// Span returns the span of input covered by n. Nodes for epsilon-rules have a
// null span.
func (n *Node) Span() gorll.Span {
	if n == nil {
		return gorll.Span{}
	}
	if n.IsTerminal() {
		if n.Token == nil {
			return gorll.Span{}
		}
		return n.Token.Span()
	}
	var span gorll.Span
	for _, ch := range n.Children {
		span = span.Extend(ch.Span())
	}
	return span
}

// Leaves returns the terminal leaves of the tree, left to right.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.collect(&leaves)
	return leaves
}

func (n *Node) collect(leaves *[]*Node) {
	if n == nil {
		return
	}
	if n.IsTerminal() {
		*leaves = append(*leaves, n)
		return
	}
	for _, ch := range n.Children {
		ch.collect(leaves)
	}
}

// Tokens returns the tokens of the terminal leaves, left to right. For a tree
// returned by a successful parse this is the input, without end-of-input.
func (n *Node) Tokens() []gorll.Token {
	leaves := n.Leaves()
	tokens := make([]gorll.Token, len(leaves))
	for i, l := range leaves {
		tokens[i] = l.Token
	}
	return tokens
}

// String returns a compact representation of the tree, for example
//
//     S(a, S(a, S(), b), b)
//
func (n *Node) String() string {
	var b bytes.Buffer
	n.format(&b)
	return b.String()
}

func (n *Node) format(b *bytes.Buffer) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	b.WriteString(n.Symbol.Name)
	if n.IsTerminal() {
		return
	}
	b.WriteByte('(')
	for i, ch := range n.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		ch.format(b)
	}
	b.WriteByte(')')
}
