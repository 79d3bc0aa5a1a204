package scanner

import (
	"github.com/npillmayer/gorll"
)

// SliceTokenizer hands out pre-lexed tokens. After the last token it produces
// EOF tokens, positioned just behind the last token.
type SliceTokenizer struct {
	tokens []gorll.Token
	next   int
	Error  func(error)
}

var _ Tokenizer = (*SliceTokenizer)(nil)

// NewSliceTokenizer creates a tokenizer for a list of tokens. If tokens contains
// an EOF token, the tokens following it will never be produced.
func NewSliceTokenizer(tokens []gorll.Token) *SliceTokenizer {
	return &SliceTokenizer{tokens: tokens, Error: logError}
}

// Tokens creates a tokenizer for a sequence of token types, using the type of
// each token as its lexeme and its index as its position. This is mainly
// useful for tests and for token streams produced by external scanners.
func Tokens(types ...gorll.TokType) *SliceTokenizer {
	tokens := make([]gorll.Token, len(types))
	for i, typ := range types {
		tokens[i] = MakeDefaultToken(typ, string(rune(typ)), gorll.Span{uint64(i), uint64(i + 1)})
	}
	return NewSliceTokenizer(tokens)
}

// SetErrorHandler is part of the Tokenizer interface. A SliceTokenizer never reports errors.
func (st *SliceTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		st.Error = logError
		return
	}
	st.Error = h
}

// NextToken is part of the Tokenizer interface.
func (st *SliceTokenizer) NextToken() gorll.Token {
	if st.next < len(st.tokens) {
		token := st.tokens[st.next]
		if token.TokType() != EOF {
			st.next++
		}
		return token
	}
	var pos uint64
	if n := len(st.tokens); n > 0 {
		pos = st.tokens[n-1].Span().To()
	}
	return MakeDefaultToken(EOF, "", gorll.Span{pos, pos})
}

// Consumed returns the number of non-EOF tokens handed out so far.
func (st *SliceTokenizer) Consumed() int {
	return st.next
}
