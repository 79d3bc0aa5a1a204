package ll

// LLAnalysis is an object for grammar analysis (compute nullable
// non-terminals, FIRST- and FOLLOW-sets). Create one with Analysis(g).
// An analysis is immutable once created.
type LLAnalysis struct {
	g        *Grammar
	nullable []bool    // by non-terminal index
	first    []*symset // by non-terminal index, table columns
	follow   []*symset // by non-terminal index, table columns
	corner   []*symset // left corners, by non-terminal index
	passes   [4]int    // fixed-point passes for nullable, FIRST, FOLLOW, left corners
}

// Analysis creates an analyser for a grammar and computes all the derived sets.
// All sets are least fixed points, computed by full passes over the rules of
// g until a pass does not add anything. Every set is bounded by the number of
// terminals (plus end-of-input) or non-terminals and passes only let sets grow,
// therefore the computation terminates for every grammar, including left-recursive
// and cyclic ones.
func Analysis(g *Grammar) *LLAnalysis {
	ga := &LLAnalysis{g: g}
	n := len(g.nonterminals)
	ga.nullable = make([]bool, n)
	ga.first = make([]*symset, n)
	ga.follow = make([]*symset, n)
	ga.corner = make([]*symset, n)
	for i := 0; i < n; i++ {
		ga.first[i] = newSymset()
		ga.follow[i] = newSymset()
		ga.corner[i] = newSymset()
	}
	ga.passes[0] = ga.computeNullable()
	ga.passes[1] = ga.computeFirst()
	ga.passes[2] = ga.computeFollow()
	ga.passes[3] = ga.computeLeftCorners()
	tracer().Debugf("analysis of %s took %v passes (nullable, FIRST, FOLLOW, left corners)",
		g.Name, ga.passes)
	return ga
}

// Grammar returns the grammar this analyser operates on.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// Passes returns the number of fixed-point passes for computing nullability,
// FIRST, FOLLOW and left corners, in this order. Every count includes the final pass
// which did not change anything.
func (ga *LLAnalysis) Passes() [4]int {
	return ga.passes
}

// Nullable returns true if A is able to derive the empty string.
// Terminals and end-of-input are never nullable.
func (ga *LLAnalysis) Nullable(A *Symbol) bool {
	if A == nil || !A.IsNonTerminal() {
		return false
	}
	return ga.nullable[A.Index]
}

// First returns FIRST(A), in order of terminal registration. FIRST of a
// terminal is the terminal itself. FIRST sets never contain an epsilon marker,
// use Nullable(A) instead.
func (ga *LLAnalysis) First(A *Symbol) []*Symbol {
	if A == nil {
		return nil
	}
	if !A.IsNonTerminal() {
		return []*Symbol{A}
	}
	return ga.symbols(ga.first[A.Index])
}

// Follow returns FOLLOW(A), in order of terminal registration, with
// end-of-input last if present. FOLLOW of the start symbol always contains
// end-of-input.
func (ga *LLAnalysis) Follow(A *Symbol) []*Symbol {
	if A == nil || !A.IsNonTerminal() {
		return nil
	}
	return ga.symbols(ga.follow[A.Index])
}

// FirstOfString returns FIRST of a string of symbols, together with a flag
// indicating if the whole string is nullable. The empty string is nullable and
// has an empty FIRST set.
func (ga *LLAnalysis) FirstOfString(syms []*Symbol) ([]*Symbol, bool) {
	f, nullable := ga.firstOfSymbols(syms)
	return ga.symbols(f), nullable
}

// LeftRecursive returns all the non-terminals A with A ⇒+ A α, in order of
// registration. Hidden left recursion through nullable prefixes is included.
func (ga *LLAnalysis) LeftRecursive() []*Symbol {
	var lr []*Symbol
	for _, A := range ga.g.nonterminals {
		if ga.corner[A.Index].contains(A.Index) {
			lr = append(lr, A)
		}
	}
	return lr
}

func (ga *LLAnalysis) symbols(s *symset) []*Symbol {
	syms := make([]*Symbol, 0, s.size())
	for _, col := range s.values() {
		syms = append(syms, ga.g.columnSymbol(col))
	}
	return syms
}

// firstOfSymbols scans syms left to right, collecting FIRST of every symbol
// until a non-nullable one has been included. The result set is fresh.
func (ga *LLAnalysis) firstOfSymbols(syms []*Symbol) (*symset, bool) {
	f := newSymset()
	for _, X := range syms {
		if !X.IsNonTerminal() {
			f.add(ga.g.column(X))
			return f, false
		}
		f.union(ga.first[X.Index])
		if !ga.nullable[X.Index] {
			return f, false
		}
	}
	return f, true
}

func (ga *LLAnalysis) allNullable(syms []*Symbol) bool {
	for _, X := range syms {
		if !X.IsNonTerminal() || !ga.nullable[X.Index] {
			return false
		}
	}
	return true
}

// --- Fixed points ----------------------------------------------------------

func (ga *LLAnalysis) computeNullable() int {
	passes := 0
	for changed := true; changed; {
		changed = false
		passes++
		for _, r := range ga.g.rules {
			A := r.LHS.Index
			if !ga.nullable[A] && ga.allNullable(r.rhs) {
				tracer().Debugf("%s is nullable by rule %d", r.LHS, r.Serial)
				ga.nullable[A] = true
				changed = true
			}
		}
	}
	return passes
}

// FIRST(A) accumulates, for each rule A ➞ X1…Xn, FIRST(Xi) for every Xi up to
// and including the first non-nullable one.
func (ga *LLAnalysis) computeFirst() int {
	passes := 0
	for changed := true; changed; {
		changed = false
		passes++
		for _, r := range ga.g.rules {
			f, _ := ga.firstOfSymbols(r.rhs)
			if ga.first[r.LHS.Index].union(f) {
				changed = true
			}
		}
	}
	return passes
}

// For every rule B ➞ α X β with X a non-terminal, FIRST(β) is added to FOLLOW(X),
// and if β is nullable, FOLLOW(B) is added, too.
func (ga *LLAnalysis) computeFollow() int {
	if ga.g.start != nil {
		ga.follow[ga.g.start.Index].add(ga.g.column(ga.g.eof))
	}
	passes := 0
	for changed := true; changed; {
		changed = false
		passes++
		for _, r := range ga.g.rules {
			for i, X := range r.rhs {
				if !X.IsNonTerminal() {
					continue
				}
				f, nullableRest := ga.firstOfSymbols(r.rhs[i+1:])
				if ga.follow[X.Index].union(f) {
					changed = true
				}
				if nullableRest && ga.follow[X.Index].union(ga.follow[r.LHS.Index]) {
					changed = true
				}
			}
		}
	}
	return passes
}

// The left corners of A are all the non-terminals B with A ⇒+ B α. A rule
// A ➞ X1…Xn contributes Xi (and Xi's left corners) as long as X1…Xi-1 are nullable.
func (ga *LLAnalysis) computeLeftCorners() int {
	passes := 0
	for changed := true; changed; {
		changed = false
		passes++
		for _, r := range ga.g.rules {
			lc := ga.corner[r.LHS.Index]
			for _, X := range r.rhs {
				if !X.IsNonTerminal() {
					break
				}
				if lc.add(X.Index) {
					changed = true
				}
				if lc.union(ga.corner[X.Index]) {
					changed = true
				}
				if !ga.nullable[X.Index] {
					break
				}
			}
		}
	}
	return passes
}
