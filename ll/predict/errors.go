package predict

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/npillmayer/gorll"
	"github.com/npillmayer/gorll/ll"
)

// Error codes for syntax errors.
var (
	ErrUnexpectedToken        = errors.New("unexpected token")
	ErrNoApplicableProduction = errors.New("no applicable production")
	ErrParserNotInitialized   = errors.New("LL(1)-parser not initialized")
	ErrParserStuck            = errors.New("LL(1)-parser is stuck")
)

// ErrorCode tells the kind of a syntax error.
type ErrorCode int

// A terminal on top of the parse stack may not match the lookahead, or a
// non-terminal on top of the stack may have no rule for the lookahead.
const (
	UnexpectedToken ErrorCode = iota + 1
	NoApplicableProduction
)

func (c ErrorCode) String() string {
	switch c {
	case UnexpectedToken:
		return "UnexpectedToken"
	case NoApplicableProduction:
		return "NoApplicableProduction"
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// SyntaxError is the error type returned by a failing parse.
//
// Expected holds the terminals (or end-of-input) which would have been valid at
// the error position: the terminal on top of the stack for UnexpectedToken, and
// the row of the table for non-terminal NonTerminal for NoApplicableProduction.
// Found is nil if the token type is not declared by the grammar.
type SyntaxError struct {
	Code        ErrorCode
	NonTerminal *ll.Symbol
	Expected    []*ll.Symbol
	Found       *ll.Symbol
	Token       gorll.Token
	Position    uint64
}

func (e *SyntaxError) Error() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("syntax error at %d: ", e.Position))
	if e.Code == NoApplicableProduction {
		b.WriteString(fmt.Sprintf("no rule for %s with lookahead ", e.NonTerminal))
	} else {
		b.WriteString("unexpected ")
	}
	if e.Found != nil {
		b.WriteString(e.Found.Name)
	} else if e.Token != nil {
		b.WriteString(fmt.Sprintf("token %q (type %d)", e.Token.Lexeme(), e.Token.TokType()))
	}
	b.WriteString(", expected one of ")
	b.WriteString(fmt.Sprintf("%v", e.Expected))
	return b.String()
}

// Unwrap returns ErrUnexpectedToken or ErrNoApplicableProduction.
func (e *SyntaxError) Unwrap() error {
	if e.Code == NoApplicableProduction {
		return ErrNoApplicableProduction
	}
	return ErrUnexpectedToken
}
