package ptree

import (
	"github.com/npillmayer/gorll"
)

// Listener is a type for walking a parse tree.
//
// EnterRule is called top-down for every non-terminal node before its children
// are visited. If it returns false, the children are skipped and ExitRule receives
// no values for them.
//
// ExitRule is called bottom-up with the values the children's visits have
// returned, in order of the right-hand side. Its return value is propagated to
// the parent.
//
// Terminal is called for every leaf, its return value is propagated to the parent.
type Listener interface {
	EnterRule(ctxt RuleCtxt) bool
	ExitRule(ctxt RuleCtxt, values []interface{}) interface{}
	Terminal(token gorll.Token, level int) interface{}
}

// RuleCtxt is the context of a non-terminal node during a walk.
type RuleCtxt struct {
	Node  *Node
	Level int
}

// Span returns the input span of the node.
func (ctxt RuleCtxt) Span() gorll.Span {
	return ctxt.Node.Span()
}

// Direction is the order in which children are visited.
type Direction int

// Children may be visited left to right or right to left. Values are always
// presented in order of the right-hand side.
const (
	LtoR Direction = iota
	RtoL
)

// Walk traverses the tree, calling listener for every node, and returns the
// value ExitRule has returned for the root.
func (n *Node) Walk(listener Listener, dir Direction) interface{} {
	if n == nil || listener == nil {
		return nil
	}
	return n.walk(listener, dir, 0)
}

func (n *Node) walk(listener Listener, dir Direction, level int) interface{} {
	if n.IsTerminal() {
		return listener.Terminal(n.Token, level)
	}
	ctxt := RuleCtxt{Node: n, Level: level}
	tracer().Debugf("walk: enter %s at level %d", n.Symbol, level)
	if !listener.EnterRule(ctxt) {
		return listener.ExitRule(ctxt, nil)
	}
	values := make([]interface{}, len(n.Children))
	l := len(n.Children)
	for i := 0; i < l; i++ {
		j := i
		if dir == RtoL {
			j = l - 1 - i
		}
		if ch := n.Children[j]; ch != nil {
			values[j] = ch.walk(listener, dir, level+1)
		}
	}
	return listener.ExitRule(ctxt, values)
}
