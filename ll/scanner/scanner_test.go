package scanner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/gorll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 3, 3, 5}

func TestGoTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		tokenizer := GoTokenizer(fmt.Sprintf("input #%d", i), strings.NewReader(input), nil)
		count := 0
		for token := tokenizer.NextToken(); token.TokType() != EOF; token = tokenizer.NextToken() {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

const (
	kwLet gorll.TokType = 256 + iota
	kwIn
	opAssign
	opArrow
)

var letVocabulary = Literals{
	"let": kwLet,
	"in":  kwIn,
	":=":  opAssign,
	"->":  opArrow,
	"=":   '=',
}

func TestGoTokenizerVocabulary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.scanner")
	defer teardown()
	//
	tokenizer := GoTokenizer("let", strings.NewReader("let x := y in x-> - >"), letVocabulary)
	expected := []struct {
		typ    gorll.TokType
		lexeme string
		span   gorll.Span
	}{
		{kwLet, "let", gorll.Span{0, 3}},
		{Ident, "x", gorll.Span{4, 5}},
		{opAssign, ":=", gorll.Span{6, 8}},
		{Ident, "y", gorll.Span{9, 10}},
		{kwIn, "in", gorll.Span{11, 13}},
		{Ident, "x", gorll.Span{14, 15}},
		{opArrow, "->", gorll.Span{15, 17}},
		{'-', "-", gorll.Span{18, 19}},
		{'>', ">", gorll.Span{20, 21}},
		{EOF, "", gorll.Span{21, 21}},
	}
	for i, exp := range expected {
		token := tokenizer.NextToken()
		if token.TokType() != exp.typ || token.Lexeme() != exp.lexeme || token.Span() != exp.span {
			t.Errorf("expected token #%d to be %q|%d@%v, is %q|%d@%v", i, exp.lexeme, exp.typ, exp.span,
				token.Lexeme(), token.TokType(), token.Span())
		}
	}
}

func TestGoTokenizerValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.scanner")
	defer teardown()
	//
	tokenizer := GoTokenizer("values", strings.NewReader("42 0x10 2.5 'c' \"a\\tb\" `raw` id"), nil)
	expected := []interface{}{int64(42), int64(16), 2.5, 'c', "a\tb", "raw", nil}
	for i, exp := range expected {
		token := tokenizer.NextToken()
		if token.Value() != exp {
			t.Errorf("expected token #%d %q to have value %v (%T), has %v (%T)", i, token.Lexeme(),
				exp, exp, token.Value(), token.Value())
		}
	}
}

func TestGoTokenizerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.scanner")
	defer teardown()
	//
	tokenizer := GoTokenizer("errors", strings.NewReader(`"unterminated`), nil)
	var errs []error
	tokenizer.SetErrorHandler(func(e error) { errs = append(errs, e) })
	for token := tokenizer.NextToken(); token.TokType() != EOF; token = tokenizer.NextToken() {
	}
	if len(errs) == 0 {
		t.Errorf("expected unterminated string to be reported")
	}
}

func TestSliceTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.scanner")
	defer teardown()
	//
	st := Tokens('a', 'b')
	for i, typ := range []gorll.TokType{'a', 'b', EOF, EOF} {
		token := st.NextToken()
		if token.TokType() != typ {
			t.Errorf("expected token #%d to be of type %d, is %d", i, typ, token.TokType())
		}
	}
	if st.Consumed() != 2 {
		t.Errorf("expected 2 tokens consumed, have %d", st.Consumed())
	}
	eof := st.NextToken()
	if eof.Span().From() != 2 {
		t.Errorf("expected EOF to be positioned at 2, is at %d", eof.Span().From())
	}
}

func TestSliceTokenizerStopsAtEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorll.scanner")
	defer teardown()
	//
	st := Tokens('a', EOF, 'b')
	st.NextToken()
	for i := 0; i < 3; i++ {
		if token := st.NextToken(); token.TokType() != EOF {
			t.Errorf("expected tokens behind EOF to be hidden, got %v", token)
		}
	}
}
