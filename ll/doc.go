/*
Package ll implements prerequisites for LL(1) parsing: a grammar model,
static grammar analysis and the construction of predictive parse tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients first
register terminals (each bound to a token type) and non-terminals, then
add rules referencing them by name, and finally set a start symbol.
Grammars may contain epsilon-productions.

Example:

    b := ll.NewGrammarBuilder("G")
    b.Terminal("a", 'a')
    b.Terminal("b", 'b')
    b.NonTerminal("S")
    b.LHS("S").T("a").N("S").T("b").End()  // S  ->  a S b
    b.LHS("S").Epsilon()                   // S  ->
    b.Start("S")
    g, err := b.Grammar()                  // validates and freezes the grammar

This results in the following trivial grammar:

   g.Dump()

   0: [S] ::= [a S b]
   1: [S] ::= []

Registration and validation errors are of type *GrammarError and may be
checked with errors.Is against ErrUndeclaredSymbol, ErrDuplicateSymbol and
ErrNoStartSymbol.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LLAnalysis object, which computes the nullable
non-terminals and the FIRST and FOLLOW sets for the grammar. All of these are
least fixed points, computed by repeated passes over the rules until a pass
does not change anything.

    ga := ll.Analysis(g)
    ga.Grammar().EachNonTerminal(
        func(A *ll.Symbol) interface{} {
            fmt.Printf("FIRST(%s) = %v\n", A, ga.First(A))
            return nil
        })

    // Output:
    FIRST(S) = [a]

Parser Construction

Using grammar analysis as input, a predictive parse table can be constructed.
Every cell of the table is indexed by a non-terminal and a lookahead terminal
(or end of input) and holds at most one rule. Cells eligible for more than one
rule are reported as conflicts; the earlier declared rule stays in the cell.

    table, conflicts, err := ll.BuildTable(ga)                  // strict
    table, conflicts, err := ll.BuildTable(ga, ll.BestEffort()) // tolerate conflicts

Tables are immutable and may be shared between any number of parsers,
see package ll/predict.
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gorll.ll'.
func tracer() tracing.Trace {
	return tracing.Select("gorll.ll")
}
