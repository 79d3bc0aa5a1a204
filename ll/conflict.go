package ll

import (
	"bytes"
	"errors"
	"fmt"
)

// Error codes for table construction.
var (
	ErrAmbiguousGrammar = errors.New("grammar is not LL(1)")
	ErrLeftRecursion    = errors.New("grammar is left-recursive")
)

// Conflict describes a parse table cell which is eligible for more than one rule.
// Existing is the rule kept in the cell (it has been declared earlier),
// Competing is the rule which could not be placed.
type Conflict struct {
	NonTerminal *Symbol
	Lookahead   *Symbol
	Existing    *Rule
	Competing   *Rule
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflict at (%s, %s): rule %d [%s] vs. rule %d [%s]",
		c.NonTerminal, c.Lookahead, c.Existing.Serial, c.Existing,
		c.Competing.Serial, c.Competing)
}

// AmbiguityError is returned by strict table construction if there are conflicts.
// It matches ErrAmbiguousGrammar with errors.Is.
type AmbiguityError struct {
	Grammar   string
	Conflicts []Conflict
}

func (e *AmbiguityError) Error() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("grammar %s is not LL(1): %d conflict(s)", e.Grammar, len(e.Conflicts)))
	for _, c := range e.Conflicts {
		b.WriteString("\n    ")
		b.WriteString(c.String())
	}
	return b.String()
}

// Unwrap returns ErrAmbiguousGrammar.
func (e *AmbiguityError) Unwrap() error {
	return ErrAmbiguousGrammar
}

// LeftRecursionError is returned by table construction for left-recursive grammars,
// regardless of the conflict policy. It matches ErrLeftRecursion with errors.Is.
type LeftRecursionError struct {
	Grammar      string
	NonTerminals []*Symbol
	Conflicts    []Conflict
}

func (e *LeftRecursionError) Error() string {
	return fmt.Sprintf("grammar %s is left-recursive in %v (%d conflict(s))",
		e.Grammar, e.NonTerminals, len(e.Conflicts))
}

// Unwrap returns ErrLeftRecursion.
func (e *LeftRecursionError) Unwrap() error {
	return ErrLeftRecursion
}
