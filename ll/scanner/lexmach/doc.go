/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the parsers of gorll.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

A lexer is built from a grammar: every literal terminal of the grammar (keywords
and operators, see ll.Grammar.Literal) is recognized verbatim, and terminals
bound to token categories of package scanner are recognized by regular
expressions the client provides. Clients who need more liberty should use their
own wrapper code to fit lexmachine into the scanner.Tokenizer interface.

	b := ll.NewGrammarBuilder("Let")
	b.Terminal("let", 256)
	b.Terminal(":=", 257)
	b.Terminal("id", scanner.Ident)
	b.Terminal("num", scanner.Int)
	…
	g, err := b.Grammar()
	…
	LM, err := lexmach.NewLMAdapter(g,
		lexmach.Token(`[a-z]([a-z]|[0-9])*`, "id"),
		lexmach.Token(`[0-9]+`, "num"),
		lexmach.Skip(`( |\t|\n)+`),
	)
	…
	scan, err := LM.Scanner("let x := 42")

Spans of tokens are byte offsets into the input, and the EOF token is positioned
at the end of the input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
