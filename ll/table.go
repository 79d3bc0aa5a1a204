package ll

import (
	"github.com/npillmayer/gorll/ll/sparse"
)

// Policy decides how table construction treats conflicts.
type Policy int

// With PolicyStrict, conflicts are an error. With PolicyBestEffort, conflicts are
// reported, but the table is usable, with every conflicting cell holding the
// rule declared first.
const (
	PolicyStrict Policy = iota
	PolicyBestEffort
)

func (p Policy) String() string {
	if p == PolicyBestEffort {
		return "best-effort"
	}
	return "strict"
}

// Option configures table construction.
type Option func(*tableConfig)

type tableConfig struct {
	policy Policy
}

// Strict makes table construction fail with an *AmbiguityError if the grammar is not
// LL(1). This is the default.
func Strict() Option {
	return func(c *tableConfig) {
		c.policy = PolicyStrict
	}
}

// BestEffort lets table construction succeed for grammars which are not LL(1).
// Conflicts are still returned and traced; in every conflicting cell the rule
// declared first wins.
func BestEffort() Option {
	return func(c *tableConfig) {
		c.policy = PolicyBestEffort
	}
}

// Table is an LL(1) parse table. Rows are indexed by non-terminals, columns by
// terminals and end-of-input. A table is immutable and may be shared between
// any number of concurrently running parsers.
type Table struct {
	g             *Grammar
	ga            *LLAnalysis
	matrix        *sparse.IntMatrix
	conflicts     []Conflict
	policy        Policy
	leftRecursive []*Symbol
	HasConflicts  bool
}

// BuildTable constructs the parse table for an analysed grammar.
//
// For each rule A ➞ α in order of declaration the rule is entered into cell (A, t)
// for every t ∈ FIRST(α), and if α is nullable, for every t ∈ FOLLOW(A).
// If a cell is already occupied, a Conflict is recorded and the earlier rule
// is kept. All conflicts are collected.
//
// The table is returned in any case, for inspection. The error is an
// *AmbiguityError for conflicts under PolicyStrict, or a *LeftRecursionError for
// left-recursive grammars under either policy (a predictive parser would not
// terminate on them).
func BuildTable(ga *LLAnalysis, opts ...Option) (*Table, []Conflict, error) {
	cfg := tableConfig{policy: PolicyStrict}
	for _, opt := range opts {
		opt(&cfg)
	}
	g := ga.Grammar()
	rows, cols := len(g.nonterminals), len(g.terminals)+1
	tracer().Infof("LL(1) table of size %d x %d for %s", rows, cols, g.Name)
	t := &Table{
		g:      g,
		ga:     ga,
		matrix: sparse.NewIntMatrix(rows, cols, sparse.DefaultNullValue),
		policy: cfg.policy,
	}
	for _, r := range g.rules {
		A := r.LHS
		triggers, nullable := ga.firstOfSymbols(r.rhs)
		if nullable {
			triggers.union(ga.follow[A.Index])
		}
		for _, col := range triggers.values() {
			existing := t.matrix.Value(A.Index, col)
			if existing == t.matrix.NullValue() {
				tracer().Debugf("table(%s, %s) = rule %d", A, g.columnSymbol(col), r.Serial)
				t.matrix.Set(A.Index, col, int32(r.Serial))
				continue
			}
			c := Conflict{
				NonTerminal: A,
				Lookahead:   g.columnSymbol(col),
				Existing:    g.rules[existing],
				Competing:   r,
			}
			tracer().Debugf("%s", c)
			t.matrix.Add(A.Index, col, int32(r.Serial))
			t.conflicts = append(t.conflicts, c)
		}
	}
	t.HasConflicts = len(t.conflicts) > 0
	if t.leftRecursive = ga.LeftRecursive(); len(t.leftRecursive) > 0 {
		err := &LeftRecursionError{Grammar: g.Name, NonTerminals: t.leftRecursive, Conflicts: t.conflicts}
		tracer().Errorf("%v", err)
		return t, t.conflicts, err
	}
	if t.HasConflicts {
		if cfg.policy == PolicyStrict {
			err := &AmbiguityError{Grammar: g.Name, Conflicts: t.conflicts}
			tracer().Errorf("%v", err)
			return t, t.conflicts, err
		}
		for _, c := range t.conflicts {
			tracer().Infof("warning: %s, keeping rule %d", c, c.Existing.Serial)
		}
	}
	return t, t.conflicts, nil
}

// Grammar returns the grammar of the table.
func (t *Table) Grammar() *Grammar {
	return t.g
}

// Analysis returns the grammar analysis the table has been built from.
func (t *Table) Analysis() *LLAnalysis {
	return t.ga
}

// Policy returns the conflict policy the table has been built with.
func (t *Table) Policy() Policy {
	return t.policy
}

// Conflicts returns all the conflicts found during construction.
func (t *Table) Conflicts() []Conflict {
	return t.conflicts
}

// LeftRecursive returns true if the grammar of t is left-recursive. Such tables
// must not be used for parsing.
func (t *Table) LeftRecursive() bool {
	return len(t.leftRecursive) > 0
}

// Lookup returns the rule to expand non-terminal A with, given a lookahead
// terminal (or end-of-input).
func (t *Table) Lookup(A *Symbol, lookahead *Symbol) (*Rule, bool) {
	if A == nil || lookahead == nil || !A.IsNonTerminal() || lookahead.IsNonTerminal() {
		return nil, false
	}
	v := t.matrix.Value(A.Index, t.g.column(lookahead))
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return t.g.rules[v], true
}

// Cell returns the rule in cell (A, lookahead), and for conflicting cells the
// first competing rule. Missing entries are nil.
func (t *Table) Cell(A *Symbol, lookahead *Symbol) (*Rule, *Rule) {
	if A == nil || lookahead == nil || !A.IsNonTerminal() || lookahead.IsNonTerminal() {
		return nil, nil
	}
	v1, v2 := t.matrix.Values(A.Index, t.g.column(lookahead))
	return t.rule(v1), t.rule(v2)
}

// Row returns all the lookaheads for which the table holds a rule to expand A.
// Parsers use this for diagnostics.
func (t *Table) Row(A *Symbol) []*Symbol {
	if A == nil || !A.IsNonTerminal() {
		return nil
	}
	var las []*Symbol
	t.matrix.Row(A.Index, func(col int, _, _ int32) {
		las = append(las, t.g.columnSymbol(col))
	})
	return las
}

// Size returns the number of cells holding a rule.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

func (t *Table) rule(v int32) *Rule {
	if v == t.matrix.NullValue() {
		return nil
	}
	return t.g.rules[v]
}
