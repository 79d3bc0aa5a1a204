package lexmach

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/gorll"
	"github.com/npillmayer/gorll/ll"
	"github.com/npillmayer/gorll/ll/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'gorll.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gorll.scanner")
}

// Pattern binds a regular expression to a terminal of a grammar.
type Pattern struct {
	regex    string
	terminal string // empty for input to skip
}

// Token creates a pattern for input matching regex, which will be tokenized as
// the grammar's terminal with the given name.
func Token(regex string, terminal string) Pattern {
	return Pattern{regex: regex, terminal: terminal}
}

// Skip creates a pattern for input matching regex, which will be dropped
// (white space, comments).
func Skip(regex string) Pattern {
	return Pattern{regex: regex}
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner for the
// terminals of a grammar.
type LMAdapter struct {
	Lexer   *lexmachine.Lexer
	Grammar *ll.Grammar
}

// NewLMAdapter creates a lexer for the terminals of grammar g.
//
// Literal terminals, i.e. keywords and operators (see ll.Grammar.Literal), are
// matched verbatim by their name. They take precedence over patterns matching
// the same input, but not over longer matches: with a pattern for identifiers,
// "let" is a keyword and "letter" is an identifier. Terminals bound to token
// categories, e.g. identifiers or numbers, have to be matched by patterns.
//
// NewLMAdapter returns an error if a pattern names a symbol which is not a
// terminal of g, or if compiling the DFA failed.
func NewLMAdapter(g *ll.Grammar, patterns ...Pattern) (*LMAdapter, error) {
	if g == nil {
		return nil, fmt.Errorf("lexmachine adapter needs a grammar")
	}
	adapter := &LMAdapter{Lexer: lexmachine.NewLexer(), Grammar: g}
	g.EachTerminal(func(A *ll.Symbol) interface{} {
		if tokval, ok := g.Literal(A.Name); ok {
			tracer().Debugf("literal %q = %d", A.Name, tokval)
			adapter.Lexer.Add([]byte(literalRegex(A.Name)), makeToken(tokval))
		}
		return nil
	})
	for _, p := range patterns {
		if p.terminal == "" {
			adapter.Lexer.Add([]byte(p.regex), skip)
			continue
		}
		A := g.SymbolByName(p.terminal)
		if A == nil || !A.IsTerminal() || A.IsEOF() {
			err := fmt.Errorf("pattern %s for %q in grammar %s: %w", p.regex, p.terminal,
				g.Name, ll.ErrUndeclaredSymbol)
			tracer().Errorf("%v", err)
			return nil, err
		}
		adapter.Lexer.Add([]byte(p.regex), makeToken(A.TokenType()))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// literalRegex escapes the operator characters of a literal. Letters, digits and
// '_' do not need escaping (and lexmachine treats some of them as escapes).
func literalRegex(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(tokval gorll.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(tokval), string(m.Bytes), m), nil
	}
}

// Scanner creates a tokenizer for a given input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError, end: uint64(len(input))}, nil
}

// LMScanner tokenizes an input with a lexmachine DFA.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error) // error handler
	end     uint64      // length of input
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the Tokenizer interface.
//
// Input no pattern matches is reported to the error handler and skipped.
// Tokens of terminals bound to number, char or string categories carry the
// value of their lexeme (see scanner.Value).
func (lms *LMScanner) NextToken() gorll.Token {
	eof := scanner.MakeDefaultToken(scanner.EOF, "", gorll.Span{lms.end, lms.end})
	if lms.scanner == nil {
		return eof
	}
	tok, err, done := lms.scanner.Next()
	for ; err != nil; tok, err, done = lms.scanner.Next() {
		lms.Error(err)
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			lms.scanner.TC = ui.FailTC
		}
	}
	if done {
		return eof
	}
	lmtok := tok.(*lexmachine.Token)
	typ, from := gorll.TokType(lmtok.Type), uint64(lmtok.TC)
	lexeme := string(lmtok.Lexeme)
	tracer().Debugf("lexmachine token %q|%d@%d", lexeme, typ, from)
	token := scanner.MakeDefaultToken(typ, lexeme, gorll.Span{from, from + uint64(len(lexeme))})
	if token.Val, err = scanner.Value(typ, lexeme); err != nil {
		lms.Error(fmt.Errorf("%d: %w", from, err))
	}
	return token
}
