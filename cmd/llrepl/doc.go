/*
Command llrepl provides an interactive command line tool (LL.REPL) for
experimenting with predictive parsing. It loads a small LL(1) expression
grammar, prints the grammar analysis and the parse table, then reads
expressions from the command line, parses them and prints the parse tree
together with the value of the expression.

Lines starting with a colon are commands:

	:table   print the LL(1) parse table
	:sets    print nullability, FIRST and FOLLOW sets
	:html F  write the parse table as HTML to file F
	:quit    leave LL.REPL

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gorll.repl'
func tracer() tracing.Trace {
	return tracing.Select("gorll.repl")
}
