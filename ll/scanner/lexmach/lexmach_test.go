package lexmach

import (
	"errors"
	"testing"

	"github.com/npillmayer/gorll"
	"github.com/npillmayer/gorll/ll"
	"github.com/npillmayer/gorll/ll/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// S ➞ let id := E in E
// E ➞ id | num | str | E + E
func makeLetGrammar(t *testing.T) *ll.Grammar {
	b := ll.NewGrammarBuilder("Let")
	b.Terminal("let", 256)
	b.Terminal("in", 257)
	b.Terminal(":=", 258)
	b.Terminal("+", '+')
	b.Terminal("id", scanner.Ident)
	b.Terminal("num", scanner.Int)
	b.Terminal("str", scanner.String)
	b.NonTerminal("S")
	b.NonTerminal("E")
	b.Start("S")
	b.LHS("S").T("let").T("id").T(":=").N("E").T("in").N("E").End()
	b.LHS("E").T("id").End()
	b.LHS("E").T("num").End()
	b.LHS("E").T("str").End()
	b.LHS("E").N("E").T("+").N("E").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func letLexer(t *testing.T) *LMAdapter {
	LM, err := NewLMAdapter(makeLetGrammar(t),
		Token(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`, "id"),
		Token(`[0-9]+`, "num"),
		Token(`\"[^"]*\"`, "str"),
		Skip(`//[^\n]*\n?`),
		Skip(`( |\t|\n|\r)+`),
	)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}

func TestLMTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.scanner")
	defer teardown()
	//
	LM := letLexer(t)
	sc, err := LM.Scanner("let x := 12 in x + letter // c\n")
	if err != nil {
		t.Fatal(err)
	}
	expected := []struct {
		typ  gorll.TokType
		span gorll.Span
	}{
		{256, gorll.Span{0, 3}},
		{scanner.Ident, gorll.Span{4, 5}},
		{258, gorll.Span{6, 8}},
		{scanner.Int, gorll.Span{9, 11}},
		{257, gorll.Span{12, 14}},
		{scanner.Ident, gorll.Span{15, 16}},
		{'+', gorll.Span{17, 18}},
		{scanner.Ident, gorll.Span{19, 25}},
		{scanner.EOF, gorll.Span{31, 31}},
	}
	for i, exp := range expected {
		token := sc.NextToken()
		t.Logf(" %4d | %8s | @%v", token.TokType(), token.Lexeme(), token.Span())
		if token.TokType() != exp.typ || token.Span() != exp.span {
			t.Errorf("expected token #%d to be %d@%v, is %d@%v", i, exp.typ, exp.span,
				token.TokType(), token.Span())
		}
		if exp.typ == scanner.Int && token.Value() != int64(12) {
			t.Errorf("expected number token to have value 12, has %v", token.Value())
		}
	}
}

func TestLMStringValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.scanner")
	defer teardown()
	//
	LM := letLexer(t)
	sc, _ := LM.Scanner(`"a b"+1`)
	token := sc.NextToken()
	if token.TokType() != scanner.String || token.Value() != "a b" || token.Span() != (gorll.Span{0, 5}) {
		t.Errorf("expected string token with value \"a b\", have %q = %v", token.Lexeme(), token.Value())
	}
	if token = sc.NextToken(); token.TokType() != '+' || token.Value() != nil {
		t.Errorf("expected operator without value, have %q = %v", token.Lexeme(), token.Value())
	}
}

func TestLMErrorHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.scanner")
	defer teardown()
	//
	LM := letLexer(t)
	sc, _ := LM.Scanner("1 ; 2")
	var errs int
	sc.SetErrorHandler(func(error) { errs++ })
	count := 0
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		count++
	}
	if count != 2 || errs != 1 {
		t.Errorf("expected 2 tokens and 1 error, have %d tokens and %d errors", count, errs)
	}
}

func TestLMUnknownTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.scanner")
	defer teardown()
	//
	g := makeLetGrammar(t)
	if _, err := NewLMAdapter(g, Token(`[0-9]+`, "number")); !errors.Is(err, ll.ErrUndeclaredSymbol) {
		t.Errorf("expected pattern for unknown terminal to fail, have %v", err)
	}
	if _, err := NewLMAdapter(g, Token(`[A-Z]+`, "S")); !errors.Is(err, ll.ErrUndeclaredSymbol) {
		t.Errorf("expected pattern for non-terminal to fail, have %v", err)
	}
	if _, err := NewLMAdapter(nil); err == nil {
		t.Errorf("expected adapter without grammar to fail")
	}
}
