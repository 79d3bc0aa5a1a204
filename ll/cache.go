package ll

import (
	"sync"

	"github.com/cnf/structhash"
)

// TableCache holds parse tables for grammars, keyed by a structural fingerprint
// of the grammar. Structurally identical grammars (same name, symbols, token types,
// rules and start symbol) share a table. A TableCache is safe for concurrent use.
type TableCache struct {
	mu      sync.Mutex
	opts    []Option
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	table     *Table
	conflicts []Conflict
	err       error
}

// NewTableCache creates an empty cache. All tables will be built using opts.
func NewTableCache(opts ...Option) *TableCache {
	return &TableCache{
		opts:    opts,
		entries: make(map[string]*cacheEntry),
	}
}

// Table returns the parse table for g, building it on first request.
// Results of BuildTable, including errors, are cached as a whole.
func (c *TableCache) Table(g *Grammar) (*Table, []Conflict, error) {
	key, err := Fingerprint(g)
	if err != nil {
		return nil, nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		tracer().Debugf("table cache hit for %s", g.Name)
		return e.table, e.conflicts, e.err
	}
	t, conflicts, err := BuildTable(Analysis(g), c.opts...)
	c.entries[key] = &cacheEntry{table: t, conflicts: conflicts, err: err}
	return t, conflicts, err
}

// Size returns the number of grammars in the cache.
func (c *TableCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Fingerprint returns a hash over the structure of a grammar.
func Fingerprint(g *Grammar) (string, error) {
	return structhash.Hash(g.describe(), 1)
}

// grammarDescr is a plain structural description of a grammar, suitable for hashing.
type grammarDescr struct {
	Name         string
	Terminals    []terminalDescr
	NonTerminals []string
	Rules        [][]string // LHS followed by RHS
	Start        string
}

type terminalDescr struct {
	Name    string
	TokType int
}

func (g *Grammar) describe() grammarDescr {
	d := grammarDescr{Name: g.Name, Start: g.start.Name}
	for _, A := range g.terminals {
		d.Terminals = append(d.Terminals, terminalDescr{Name: A.Name, TokType: int(A.tokval)})
	}
	for _, A := range g.nonterminals {
		d.NonTerminals = append(d.NonTerminals, A.Name)
	}
	for _, r := range g.rules {
		rule := []string{r.LHS.Name}
		for _, X := range r.rhs {
			rule = append(rule, X.Name)
		}
		d.Rules = append(d.Rules, rule)
	}
	return d
}
