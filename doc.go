/*
Package gorll is an LL(1) parsing toolbox.

GoRLL computes the analysis sets of a context-free grammar (nullability, FIRST
and FOLLOW), builds a predictive parse table from them and drives a
table-driven parser over a stream of tokens. Package structure is
as follows:

■ ll: Package ll holds the grammar model, grammar analysis and parse table
construction, including conflict reporting.

■ ll/predict: Package predict implements the table-driven predictive parser.

■ ll/ptree: Package ptree implements the parse trees produced by the parser.

■ ll/scanner: Package scanner defines the pull-based token source the parser
consumes, together with default implementations. Sub-package lexmach adapts
lexmachine scanners.

■ cmd/llrepl: An interactive playground for an expression grammar.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gorll
