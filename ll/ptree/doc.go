/*
Package ptree implements parse trees as produced by the predictive parsers of
package ll/predict.

A parse tree mirrors the derivation of the input: every inner node is a
non-terminal together with the rule it has been expanded with, and its children
are the right-hand side symbols of that rule, in order. Leaves are terminals
carrying the token they have been matched with, or non-terminals expanded by an
epsilon-rule (i.e., with no children). Reading the terminal leaves left to right
yields the token sequence of the input.

Parse trees are created fresh for every parse and are owned by the caller.
Clients typically walk them with a Listener to compute values or to build an
abstract syntax tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ptree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gorll.ll'.
func tracer() tracing.Trace {
	return tracing.Select("gorll.ll")
}
