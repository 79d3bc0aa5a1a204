/*
Package predict provides a table-driven predictive LL(1) parser. Clients have to
use the tools of package ll to prepare the parse table. The parser utilizes
the table to create a leftmost derivation for a given input, provided through
a scanner.Tokenizer, and returns it as a parse tree.

Usage

	b := ll.NewGrammarBuilder("AnBn")
	b.Terminal("a", 'a')
	b.Terminal("b", 'b')
	b.NonTerminal("S")
	b.Start("S")
	b.LHS("S").T("a").N("S").T("b").End()  // S ➞ a S b
	b.LHS("S").Epsilon()                   // S ➞ ε
	g, err := b.Grammar()
	…
	table, _, err := ll.BuildTable(ll.Analysis(g))
	…
	tree, err := predict.NewParser(table).Parse(scanner.GoTokenizer("input", strings.NewReader("aabb"), g))

The parser pulls one token at a time and never looks further ahead than one
token. It stops at the first error, reporting it as a *SyntaxError. There is no
error recovery.

Tables are read-only and may be shared between any number of parsers, running
concurrently. A parser keeps its parse stack local to a single call of Parse,
therefore one parser may serve concurrent calls as well. Tokenizers are not
shareable.

Configuration

If flag "panic-on-parser-stuck" is set in gconf, the parser panics when it detects
an internal inconsistency (e.g., a tokenizer returning nil instead of EOF), instead
of returning an error. This is meant for post-mortem debugging only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gorll.ll'.
func tracer() tracing.Trace {
	return tracing.Select("gorll.ll")
}
