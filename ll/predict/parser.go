package predict

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/gorll"
	"github.com/npillmayer/gorll/ll"
	"github.com/npillmayer/gorll/ll/ptree"
	"github.com/npillmayer/gorll/ll/scanner"
	"github.com/npillmayer/schuko/gconf"
)

// Parser is an LL(1)-parser type. Create and initialize one with predict.NewParser(...)
//
// A parser holds no state between calls to Parse and may be used from
// multiple goroutines.
type Parser struct {
	T *ll.Table
	G *ll.Grammar
}

// We store grammar symbols on the parse stack, together with the slot in the
// parse tree a symbol will occupy as soon as it has been produced.
type stackitem struct {
	sym    *ll.Symbol
	parent *ptree.Node // node of the expansion this symbol is a child of
	slot   int         // index of the symbol within the parent's children
}

// NewParser creates an LL(1) parser for a parse table.
func NewParser(table *ll.Table) *Parser {
	parser := &Parser{T: table}
	if table != nil {
		parser.G = table.Grammar()
	}
	return parser
}

// Parse starts a new parse, given a scanner tokenizing the input.
// It returns the parse tree for the input or a *SyntaxError.
func (p *Parser) Parse(scan scanner.Tokenizer) (*ptree.Node, error) {
	return p.ParseContext(context.Background(), scan)
}

// ParseContext is like Parse, but checks ctx before pulling a token from scan.
// If ctx is done, the parse stops and the context's error is returned.
func (p *Parser) ParseContext(ctx context.Context, scan scanner.Tokenizer) (*ptree.Node, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.T == nil || p.G == nil || scan == nil {
		tracer().Errorf("%v", ErrParserNotInitialized)
		return nil, ErrParserNotInitialized
	}
	if p.T.LeftRecursive() {
		err := fmt.Errorf("cannot parse with table for %s: %w", p.G.Name, ll.ErrLeftRecursion)
		tracer().Errorf("%v", err)
		return nil, err
	}
	stack := arraystack.New() // parser stack of stackitems
	root := &ptree.Node{Children: make([]*ptree.Node, 1)} // placeholder parent of start symbol
	stack.Push(stackitem{sym: p.G.EOF()})
	stack.Push(stackitem{sym: p.G.Start(), parent: root})
	token, err := p.pull(ctx, scan)
	if err != nil {
		return nil, err
	}
	for {
		la := p.G.Terminal(token.TokType()) // nil for undeclared token types
		top, _ := stack.Pop()
		item := top.(stackitem)
		tracer().Debugf("top = %s, lookahead = %s %q", item.sym, la, token.Lexeme())
		switch {
		case item.sym.IsEOF():
			if la != nil && la.IsEOF() {
				tracer().Infof("accepted input of %s", p.G.Name)
				return root.Children[0], nil
			}
			return nil, p.unexpected(item.sym, la, token)
		case item.sym.IsTerminal():
			if la != item.sym {
				return nil, p.unexpected(item.sym, la, token)
			}
			item.parent.Children[item.slot] = ptree.Leaf(item.sym, token)
			if token, err = p.pull(ctx, scan); err != nil {
				return nil, err
			}
		default:
			rule, ok := p.T.Lookup(item.sym, la)
			if !ok {
				return nil, p.noProduction(item.sym, la, token)
			}
			tracer().Debugf("expand %s with rule %d [%s]", item.sym, rule.Serial, rule)
			node := ptree.NewNode(rule)
			item.parent.Children[item.slot] = node
			rhs := rule.RHS()
			for i := len(rhs) - 1; i >= 0; i-- { // leftmost symbol will be on top
				stack.Push(stackitem{sym: rhs[i], parent: node, slot: i})
			}
		}
	}
}

// pull reads the next token from scan, unless ctx is done.
func (p *Parser) pull(ctx context.Context, scan scanner.Tokenizer) (gorll.Token, error) {
	if err := ctx.Err(); err != nil {
		tracer().Infof("parse of %s cancelled: %v", p.G.Name, err)
		return nil, err
	}
	token := scan.NextToken()
	if token == nil {
		stuck("tokenizer returned nil instead of a token")
		return nil, fmt.Errorf("tokenizer returned no token: %w", ErrParserStuck)
	}
	return token, nil
}

func (p *Parser) unexpected(expected, found *ll.Symbol, token gorll.Token) error {
	err := &SyntaxError{
		Code:     UnexpectedToken,
		Expected: []*ll.Symbol{expected},
		Found:    found,
		Token:    token,
		Position: token.Span().From(),
	}
	tracer().Errorf("%v", err)
	return err
}

func (p *Parser) noProduction(A, found *ll.Symbol, token gorll.Token) error {
	err := &SyntaxError{
		Code:        NoApplicableProduction,
		NonTerminal: A,
		Expected:    p.T.Row(A),
		Found:       found,
		Token:       token,
		Position:    token.Span().From(),
	}
	tracer().Errorf("%v", err)
	return err
}

func stuck(msg string) {
	tracer().Errorf("%s", msg)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(`LL(1)-parser is stuck.

Configuration flag panic-on-parser-stuck is set to true. It is aimed at helping
to debug a parser and do a post-mortem of why it got stuck. However, if this is
a production environment and you did not expect this to panic, please unset
panic-on-parser-stuck to its default (false).

` + msg)
	}
}
