package ll

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/npillmayer/gorll"
	"github.com/npillmayer/gorll/ll/scanner"
)

// Reserved symbol names. No terminal or non-terminal may use them.
const (
	EpsilonName = "ε"
	EOFName     = "#eof"
)

// --- Symbols ---------------------------------------------------------------

// SymbolKind tags a grammar symbol.
type SymbolKind int8

// Symbols are terminals, non-terminals or the end-of-input marker.
const (
	TerminalKind SymbolKind = iota
	NonTerminalKind
	EOFKind
)

// Symbol represents a grammar symbol. Symbols are created by a grammar and
// are identified by kind and index. Two symbols of the same grammar are equal
// if and only if they are the same pointer.
type Symbol struct {
	Name   string
	Kind   SymbolKind
	Index  int // index within the terminals or non-terminals of the grammar
	tokval gorll.TokType
}

// IsTerminal returns true for terminals, but not for the end-of-input marker.
func (A *Symbol) IsTerminal() bool {
	return A.Kind == TerminalKind
}

// IsNonTerminal returns true for non-terminals.
func (A *Symbol) IsNonTerminal() bool {
	return A.Kind == NonTerminalKind
}

// IsEOF returns true for the end-of-input marker.
func (A *Symbol) IsEOF() bool {
	return A.Kind == EOFKind
}

// TokenType returns the token type a terminal is bound to. For the
// end-of-input marker it is scanner.EOF, for non-terminals it is 0.
func (A *Symbol) TokenType() gorll.TokType {
	return A.tokval
}

func (A *Symbol) String() string {
	return A.Name
}

// --- Rules -----------------------------------------------------------------

// Rule is a production of a grammar. Rules are numbered in order of declaration,
// starting with 0. An empty right-hand side denotes an epsilon-production.
type Rule struct {
	Serial int
	LHS    *Symbol
	rhs    []*Symbol
}

// RHS returns the right-hand side of a rule. Clients must not modify it.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEpsilon is true for rules with an empty right-hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(r.LHS.Name)
	b.WriteString(" ➞")
	if len(r.rhs) == 0 {
		b.WriteString(" " + EpsilonName)
	}
	for _, A := range r.rhs {
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a type for a validated, immutable context-free grammar.
// Grammars are created with a GrammarBuilder.
type Grammar struct {
	Name         string
	terminals    []*Symbol
	nonterminals []*Symbol
	rules        []*Rule
	rulesFor     [][]*Rule // rules grouped by LHS index, in declaration order
	byName       map[string]*Symbol
	byToken      map[gorll.TokType]*Symbol
	start        *Symbol
	eof          *Symbol
}

// Start returns the start symbol.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// EOF returns the end-of-input marker of g.
func (g *Grammar) EOF() *Symbol {
	return g.eof
}

// Rule returns rule no. i, or nil if i is out of range.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns all the rules in declaration order. Clients must not modify the slice.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// RulesFor returns the rules with left-hand side A, in declaration order.
func (g *Grammar) RulesFor(A *Symbol) []*Rule {
	if A == nil || !A.IsNonTerminal() || A.Index >= len(g.rulesFor) {
		return nil
	}
	return g.rulesFor[A.Index]
}

// SymbolByName returns a terminal or non-terminal by name, or nil.
func (g *Grammar) SymbolByName(name string) *Symbol {
	if name == EOFName {
		return g.eof
	}
	return g.byName[name]
}

// Terminal returns the terminal bound to a token type. scanner.EOF maps to
// the end-of-input marker. If no terminal is bound to tokval, nil is returned.
func (g *Grammar) Terminal(tokval gorll.TokType) *Symbol {
	if tokval == scanner.EOF {
		return g.eof
	}
	return g.byToken[tokval]
}

// Literal returns the token type of the terminal named lexeme, if that terminal
// is a literal, i.e., it is not bound to one of the (negative) token categories
// of package scanner. Keywords and operators are literals, identifiers and
// numbers are not. With Literal, a grammar serves as a scanner.Vocabulary.
func (g *Grammar) Literal(lexeme string) (gorll.TokType, bool) {
	A, ok := g.byName[lexeme]
	if !ok || !A.IsTerminal() || A.tokval < 0 {
		return 0, false
	}
	return A.tokval, true
}

var _ scanner.Vocabulary = (*Grammar)(nil)

// TerminalCount returns the number of terminals, not counting end-of-input.
func (g *Grammar) TerminalCount() int {
	return len(g.terminals)
}

// NonTerminalCount returns the number of non-terminals.
func (g *Grammar) NonTerminalCount() int {
	return len(g.nonterminals)
}

// EachTerminal iterates over the terminals in order of registration.
// The end-of-input marker is not included.
func (g *Grammar) EachTerminal(mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.terminals {
		r = append(r, mapper(A))
	}
	return r
}

// EachNonTerminal iterates over the non-terminals in order of registration.
func (g *Grammar) EachNonTerminal(mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.nonterminals {
		r = append(r, mapper(A))
	}
	return r
}

// column returns the table column for a lookahead symbol. Terminals occupy
// columns 0…n-1, end-of-input column n.
func (g *Grammar) column(A *Symbol) int {
	if A.IsEOF() {
		return len(g.terminals)
	}
	return A.Index
}

func (g *Grammar) columnSymbol(col int) *Symbol {
	if col == len(g.terminals) {
		return g.eof
	}
	return g.terminals[col]
}

// Dump is a debugging helper, tracing all the rules of g.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol = %s", g.start)
	for _, r := range g.rules {
		tracer().Debugf("%3d: [%s] ::= %v", r.Serial, r.LHS, r.rhs)
	}
	tracer().Debugf("-------------------------------------------------")
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("grammar %s (start %s)\n", g.Name, g.start))
	for _, r := range g.rules {
		b.WriteString(fmt.Sprintf("%3d: %s\n", r.Serial, r))
	}
	return b.String()
}

// --- Grammar errors --------------------------------------------------------

// Error codes for grammar construction.
var (
	ErrUndeclaredSymbol = errors.New("undeclared symbol")
	ErrDuplicateSymbol  = errors.New("duplicate symbol")
	ErrNoStartSymbol    = errors.New("no start symbol")
	ErrGrammarBuilt     = errors.New("grammar already built")
)

// GrammarError is returned for malformed grammars. Code is one of
// ErrUndeclaredSymbol, ErrDuplicateSymbol, ErrNoStartSymbol or ErrGrammarBuilt.
type GrammarError struct {
	Grammar string
	Code    error
	Symbol  string
	Detail  string
}

func (e *GrammarError) Error() string {
	msg := fmt.Sprintf("grammar %s: %s", e.Grammar, e.Code)
	if e.Symbol != "" {
		msg += fmt.Sprintf(" %q", e.Symbol)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the error code.
func (e *GrammarError) Unwrap() error {
	return e.Code
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars. Symbols have to be
// registered before a grammar is created, rules may reference symbols by
// name in any order. GrammarBuilder.Grammar() resolves and validates all
// references.
type GrammarBuilder struct {
	g     *Grammar
	decls []*ruleDecl
	start string
	err   error    // first registration error
	built *Grammar // set by a successful call to Grammar()
}

type symRef struct {
	name string
	kind SymbolKind
}

type ruleDecl struct {
	lhs string
	rhs []symRef
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	g := &Grammar{
		Name:    gname,
		byName:  make(map[string]*Symbol),
		byToken: make(map[gorll.TokType]*Symbol),
	}
	return &GrammarBuilder{g: g}
}

// Terminal registers a terminal, bound to a token type. It is an error to register
// a name twice, to use a reserved name, or to bind two terminals to the
// same token type.
func (b *GrammarBuilder) Terminal(name string, tokval gorll.TokType) error {
	if b.built != nil {
		return b.frozen(name)
	}
	if err := b.checkName(name); err != nil {
		return b.fail(err)
	}
	if tokval == scanner.EOF {
		return b.fail(b.error(ErrDuplicateSymbol, name, "token type is reserved for end of input"))
	}
	if other, ok := b.g.byToken[tokval]; ok {
		return b.fail(b.error(ErrDuplicateSymbol, name,
			fmt.Sprintf("token type %d already bound to %q", tokval, other.Name)))
	}
	A := &Symbol{Name: name, Kind: TerminalKind, Index: len(b.g.terminals), tokval: tokval}
	b.g.terminals = append(b.g.terminals, A)
	b.g.byName[name] = A
	b.g.byToken[tokval] = A
	return nil
}

// NonTerminal registers a non-terminal. It is an error to register
// a name twice or to use a reserved name.
func (b *GrammarBuilder) NonTerminal(name string) error {
	if b.built != nil {
		return b.frozen(name)
	}
	if err := b.checkName(name); err != nil {
		return b.fail(err)
	}
	A := &Symbol{Name: name, Kind: NonTerminalKind, Index: len(b.g.nonterminals)}
	b.g.nonterminals = append(b.g.nonterminals, A)
	b.g.byName[name] = A
	return nil
}

// Start sets the start symbol. It has to be a registered non-terminal by the
// time the grammar is created.
func (b *GrammarBuilder) Start(name string) *GrammarBuilder {
	b.start = name
	return b
}

func (b *GrammarBuilder) checkName(name string) error {
	if name == "" || name == EpsilonName || name == EOFName {
		return b.error(ErrDuplicateSymbol, name, "name is reserved")
	}
	if _, ok := b.g.byName[name]; ok {
		return b.error(ErrDuplicateSymbol, name, "already declared")
	}
	return nil
}

func (b *GrammarBuilder) error(code error, sym string, detail string) *GrammarError {
	return &GrammarError{Grammar: b.g.Name, Code: code, Symbol: sym, Detail: detail}
}

// frozen reports a registration after the grammar has been built. The built
// grammar is not affected.
func (b *GrammarBuilder) frozen(sym string) error {
	err := b.error(ErrGrammarBuilt, sym, "registration ignored")
	tracer().Errorf("%v", err)
	return err
}

func (b *GrammarBuilder) fail(err error) error {
	tracer().Errorf("%v", err)
	if b.err == nil {
		b.err = err
	}
	return err
}

// LHS starts a new rule for non-terminal name. Use
//
//     b.LHS("A").N("B").T("c").End()   // A ➞ B c
//
func (b *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{b: b, decl: &ruleDecl{lhs: name}}
}

// RuleBuilder is a builder type for a single rule.
type RuleBuilder struct {
	b    *GrammarBuilder
	decl *ruleDecl
}

// T appends a terminal to the right-hand side of the rule.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.decl.rhs = append(rb.decl.rhs, symRef{name: name, kind: TerminalKind})
	return rb
}

// N appends a non-terminal to the right-hand side of the rule.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.decl.rhs = append(rb.decl.rhs, symRef{name: name, kind: NonTerminalKind})
	return rb
}

// End closes the rule and adds it to the grammar. It returns the serial
// number the rule will have within the grammar.
//
// Rules added after the grammar has been built are ignored and End returns -1.
func (rb *RuleBuilder) End() int {
	if rb.b.built != nil {
		rb.b.frozen(rb.decl.lhs)
		return -1
	}
	rb.b.decls = append(rb.b.decls, rb.decl)
	return len(rb.b.decls) - 1
}

// Epsilon closes an empty rule and adds it to the grammar. It returns the serial
// number the rule will have within the grammar.
func (rb *RuleBuilder) Epsilon() int {
	if len(rb.decl.rhs) > 0 {
		panic(fmt.Sprintf("ll: epsilon rule for %s with non-empty right-hand side", rb.decl.lhs))
	}
	return rb.End()
}

// Grammar resolves all symbol references, validates the grammar and returns it.
// Once a grammar has been built, further calls return the same grammar and
// further registrations fail with ErrGrammarBuilt.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	if b.built != nil {
		return b.built, nil
	}
	if b.err != nil {
		return nil, b.err
	}
	g := b.g
	if b.start == "" {
		return nil, b.error(ErrNoStartSymbol, "", "")
	}
	if g.start = g.byName[b.start]; g.start == nil || !g.start.IsNonTerminal() {
		return nil, b.error(ErrUndeclaredSymbol, b.start, "start symbol must be a declared non-terminal")
	}
	g.eof = &Symbol{Name: EOFName, Kind: EOFKind, Index: len(g.terminals), tokval: scanner.EOF}
	g.rulesFor = make([][]*Rule, len(g.nonterminals))
	for serial, decl := range b.decls {
		lhs := g.byName[decl.lhs]
		if lhs == nil || !lhs.IsNonTerminal() {
			return nil, b.error(ErrUndeclaredSymbol, decl.lhs,
				fmt.Sprintf("left-hand side of rule %d is not a declared non-terminal", serial))
		}
		rule := &Rule{Serial: serial, LHS: lhs, rhs: make([]*Symbol, len(decl.rhs))}
		for i, ref := range decl.rhs {
			A := g.byName[ref.name]
			if A == nil || A.Kind != ref.kind {
				return nil, b.error(ErrUndeclaredSymbol, ref.name,
					fmt.Sprintf("referenced in rule %d as %s", serial, kindName(ref.kind)))
			}
			rule.rhs[i] = A
		}
		g.rules = append(g.rules, rule)
		g.rulesFor[lhs.Index] = append(g.rulesFor[lhs.Index], rule)
	}
	for _, A := range g.nonterminals {
		if len(g.rulesFor[A.Index]) == 0 {
			tracer().Infof("grammar %s: non-terminal %s has no rules", g.Name, A)
		}
	}
	b.built = g
	return g, nil
}

func kindName(k SymbolKind) string {
	switch k {
	case TerminalKind:
		return "terminal"
	case NonTerminalKind:
		return "non-terminal"
	}
	return "end of input"
}
