package ptree

import (
	"strings"
	"testing"

	"github.com/npillmayer/gorll"
	"github.com/npillmayer/gorll/ll"
	"github.com/npillmayer/gorll/ll/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// S ➞ a S b | ε
func anbn(t *testing.T) *ll.Grammar {
	b := ll.NewGrammarBuilder("AnBn")
	b.Terminal("a", 'a')
	b.Terminal("b", 'b')
	b.NonTerminal("S")
	b.Start("S")
	b.LHS("S").T("a").N("S").T("b").End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// buildTree creates the tree for input a^n b^n by hand, with tokens positioned
// like a slice tokenizer would do.
func buildTree(g *ll.Grammar, n int) *Node {
	a, b := g.SymbolByName("a"), g.SymbolByName("b")
	var build func(i int) *Node
	build = func(i int) *Node {
		if i == n {
			return NewNode(g.Rule(1))
		}
		node := NewNode(g.Rule(0))
		node.Children[0] = Leaf(a, scanner.MakeDefaultToken('a', "a", gorll.Span{uint64(i), uint64(i + 1)}))
		node.Children[1] = build(i + 1)
		pos := uint64(2*n - 1 - i)
		node.Children[2] = Leaf(b, scanner.MakeDefaultToken('b', "b", gorll.Span{pos, pos + 1}))
		return node
	}
	return build(0)
}

func TestTreeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.ll")
	defer teardown()
	//
	g := anbn(t)
	tree := buildTree(g, 2)
	if tree.String() != "S(a, S(a, S(), b), b)" {
		t.Errorf("unexpected tree: %s", tree)
	}
	if tree.IsTerminal() || !tree.Children[0].IsTerminal() {
		t.Errorf("expected root to be inner node and first child to be a leaf")
	}
}

func TestTreeChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.ll")
	defer teardown()
	//
	g := anbn(t)
	tree := buildTree(g, 2)
	inner := tree.Child("S")
	if inner != tree.Children[1] || inner.Child("S").String() != "S()" {
		t.Errorf("expected S child to be the inner expansion, is %s", inner)
	}
	if a := tree.Child("a"); a == nil || a.Token.Span() != (gorll.Span{0, 1}) {
		t.Errorf("expected leftmost a to be child of root, is %v", a)
	}
	if tree.Child("x") != nil || inner.Child("S").Child("a") != nil {
		t.Errorf("expected no child for missing symbols")
	}
	var null *Node
	if null.Child("S") != nil {
		t.Errorf("expected nil node to have no children")
	}
}

func TestTreeLeavesAndSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.ll")
	defer teardown()
	//
	g := anbn(t)
	tree := buildTree(g, 3)
	tokens := tree.Tokens()
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Lexeme())
	}
	if b.String() != "aaabbb" {
		t.Errorf("expected leaves to read 'aaabbb', have %q", b.String())
	}
	if tree.Span() != (gorll.Span{0, 6}) {
		t.Errorf("expected tree to span 0…6, spans %v", tree.Span())
	}
	empty := NewNode(g.Rule(1))
	if !empty.Span().IsNull() || len(empty.Leaves()) != 0 {
		t.Errorf("expected epsilon node to have no leaves and a null span")
	}
}

type counter struct {
	enter, exit int
	order       []string
}

func (c *counter) EnterRule(ctxt RuleCtxt) bool {
	c.enter++
	return true
}

func (c *counter) ExitRule(ctxt RuleCtxt, values []interface{}) interface{} {
	c.exit++
	depth := 0
	if len(values) == 3 {
		depth = values[1].(int) + 1
	}
	return depth
}

func (c *counter) Terminal(token gorll.Token, level int) interface{} {
	c.order = append(c.order, token.Lexeme())
	return nil
}

func TestTreeWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.ll")
	defer teardown()
	//
	g := anbn(t)
	tree := buildTree(g, 3)
	c := &counter{}
	depth := tree.Walk(c, LtoR)
	if depth.(int) != 3 {
		t.Errorf("expected walk to compute nesting depth 3, is %v", depth)
	}
	if c.enter != 4 || c.exit != 4 {
		t.Errorf("expected 4 rule nodes to be entered and exited, have %d/%d", c.enter, c.exit)
	}
	if strings.Join(c.order, "") != "aaabbb" {
		t.Errorf("expected terminals to be visited left to right, have %v", c.order)
	}
	c = &counter{}
	tree.Walk(c, RtoL)
	if strings.Join(c.order, "") != "bbbaaa" {
		t.Errorf("expected terminals to be visited right to left, have %v", c.order)
	}
}

func TestTreeRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.ll")
	defer teardown()
	//
	g := anbn(t)
	out, err := buildTree(g, 1).Render()
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", out)
	if !strings.Contains(out, "S ➞ ε") || !strings.Contains(out, `a "a"`) {
		t.Errorf("expected rendered tree to contain epsilon node and leaves")
	}
}
