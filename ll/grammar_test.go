package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/gorll/ll/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// S ➞ a S b | ε
func makeAnBn(t *testing.T) *Grammar {
	b := NewGrammarBuilder("AnBn")
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

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.ll")
	defer teardown()
	//
	g := makeAnBn(t)
	g.Dump()
	if g.TerminalCount() != 2 || g.NonTerminalCount() != 1 || len(g.Rules()) != 2 {
		t.Errorf("unexpected grammar size: %s", g)
	}
	if g.Rule(0).String() != "S ➞ a S b" || g.Rule(1).String() != "S ➞ ε" {
		t.Errorf("unexpected rules %s and %s", g.Rule(0), g.Rule(1))
	}
	if !g.Rule(1).IsEpsilon() || g.Rule(0).IsEpsilon() {
		t.Errorf("expected rule 1 and only rule 1 to be an epsilon rule")
	}
	if g.Rule(2) != nil || g.Rule(-1) != nil {
		t.Errorf("expected rules out of range to be nil")
	}
	S := g.SymbolByName("S")
	if g.Start() != S || len(g.RulesFor(S)) != 2 {
		t.Errorf("expected S to be start symbol with 2 rules")
	}
	if g.Terminal('a') != g.SymbolByName("a") || g.Terminal('z') != nil {
		t.Errorf("expected terminals to be found by token type")
	}
	eof := g.Terminal(scanner.EOF)
	if eof == nil || !eof.IsEOF() || eof != g.EOF() || g.SymbolByName(EOFName) != eof {
		t.Errorf("expected scanner.EOF to map to end-of-input marker")
	}
	names := g.EachTerminal(func(A *Symbol) interface{} { return A.Name })
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected terminals in order of registration, have %v", names)
	}
}

func TestGrammarDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Dup")
	if err := b.Terminal("a", 'a'); err != nil {
		t.Fatal(err)
	}
	if err := b.NonTerminal("a"); !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("expected duplicate name to be rejected, have %v", err)
	}
	if err := b.Terminal("x", 'a'); !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("expected duplicate token type to be rejected, have %v", err)
	}
	if err := b.Terminal(EpsilonName, 'e'); !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("expected reserved name to be rejected, have %v", err)
	}
	if err := b.Terminal("end", scanner.EOF); !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("expected EOF token type to be rejected, have %v", err)
	}
	b.NonTerminal("S")
	b.Start("S")
	b.LHS("S").T("a").End()
	_, err := b.Grammar()
	var gerr *GrammarError
	if !errors.As(err, &gerr) || gerr.Symbol != "a" || gerr.Code != ErrDuplicateSymbol {
		t.Errorf("expected first registration error to be reported, have %v", err)
	}
}

func TestGrammarUndeclared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.ll")
	defer teardown()
	//
	build := func(setup func(b *GrammarBuilder)) error {
		b := NewGrammarBuilder("Undeclared")
		b.Terminal("a", 'a')
		b.NonTerminal("S")
		setup(b)
		_, err := b.Grammar()
		return err
	}
	if err := build(func(b *GrammarBuilder) {
		b.LHS("S").T("a").End()
	}); !errors.Is(err, ErrNoStartSymbol) {
		t.Errorf("expected missing start symbol to be reported, have %v", err)
	}
	if err := build(func(b *GrammarBuilder) {
		b.Start("a")
	}); !errors.Is(err, ErrUndeclaredSymbol) {
		t.Errorf("expected terminal start symbol to be rejected, have %v", err)
	}
	if err := build(func(b *GrammarBuilder) {
		b.Start("S")
		b.LHS("S").N("X").End()
	}); !errors.Is(err, ErrUndeclaredSymbol) {
		t.Errorf("expected undeclared non-terminal to be rejected, have %v", err)
	}
	if err := build(func(b *GrammarBuilder) {
		b.Start("S")
		b.LHS("S").N("a").End()
	}); !errors.Is(err, ErrUndeclaredSymbol) {
		t.Errorf("expected terminal referenced as non-terminal to be rejected, have %v", err)
	}
	if err := build(func(b *GrammarBuilder) {
		b.Start("S")
		b.LHS("T").T("a").End()
	}); !errors.Is(err, ErrUndeclaredSymbol) {
		t.Errorf("expected undeclared left-hand side to be rejected, have %v", err)
	}
}

func TestGrammarEpsilonPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.ll")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Epsilon() on non-empty rule to panic")
		}
	}()
	b := NewGrammarBuilder("Eps")
	b.Terminal("a", 'a')
	b.LHS("S").T("a").Epsilon()
}

func TestGrammarLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Let")
	b.Terminal("let", 256)
	b.Terminal(":=", 257)
	b.Terminal("id", scanner.Ident)
	b.Terminal(";", ';')
	b.NonTerminal("S")
	b.Start("S")
	b.LHS("S").T("let").T("id").T(":=").T("id").T(";").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	for lexeme, tokval := range map[string]int{"let": 256, ":=": 257, ";": ';'} {
		if v, ok := g.Literal(lexeme); !ok || int(v) != tokval {
			t.Errorf("expected %q to be a literal with token type %d, have %d", lexeme, tokval, v)
		}
	}
	for _, lexeme := range []string{"id", "S", EOFName, "in"} {
		if _, ok := g.Literal(lexeme); ok {
			t.Errorf("expected %q not to be a literal", lexeme)
		}
	}
}

func TestGrammarBuiltTwice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("AnBn")
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
	if g2, err := b.Grammar(); err != nil || g2 != g {
		t.Errorf("expected second call to return the same grammar, have %v, %v", g2, err)
	}
	err = b.Terminal("c", 'c')
	if !errors.Is(err, ErrGrammarBuilt) {
		t.Errorf("expected ErrGrammarBuilt for late terminal, have %v", err)
	}
	var gerr *GrammarError
	if err = b.NonTerminal("T"); !errors.As(err, &gerr) || gerr.Symbol != "T" {
		t.Errorf("expected GrammarError for late non-terminal, have %v", err)
	}
	if n := b.LHS("S").T("a").End(); n != -1 {
		t.Errorf("expected late rule to be ignored, have index %d", n)
	}
	if g.TerminalCount() != 2 || g.NonTerminalCount() != 1 || len(g.Rules()) != 2 {
		t.Errorf("expected built grammar to be unchanged, have %s", g)
	}
}
