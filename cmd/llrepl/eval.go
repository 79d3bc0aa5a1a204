package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/gorll"
	"github.com/npillmayer/gorll/ll/ptree"
)

// Evaluate computes the value of an expression from its parse tree.
func Evaluate(tree *ptree.Node) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot evaluate %s: %v", tree, r)
		}
	}()
	result := tree.Walk(evaluator{}, ptree.LtoR)
	v, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("cannot evaluate %s", tree)
	}
	return v, nil
}

// tail is the value of a right-recursive tail non-terminal (Expr', Term'),
// which receives its left operand from its parent.
type tail func(left float64) float64

func identity(left float64) float64 { return left }

// evaluator is a ptree.Listener computing expression values bottom-up.
type evaluator struct{}

func (ev evaluator) EnterRule(ctxt ptree.RuleCtxt) bool {
	return true
}

func (ev evaluator) Terminal(token gorll.Token, level int) interface{} {
	return token
}

func (ev evaluator) ExitRule(ctxt ptree.RuleCtxt, values []interface{}) interface{} {
	switch ctxt.Node.Symbol.Name {
	case "Expr", "Term":
		return values[1].(tail)(values[0].(float64))
	case "Expr'", "Term'":
		if len(values) == 0 {
			return tail(identity)
		}
		op, right, rest := values[0].(string), values[1].(float64), values[2].(tail)
		return tail(func(left float64) float64 {
			return rest(apply(op, left, right))
		})
	case "SumOp", "ProdOp":
		return values[0].(gorll.Token).Lexeme()
	case "Factor":
		num := ctxt.Node.Child("number")
		if num == nil {
			return values[1]
		}
		n, ok := num.Token.Value().(int64)
		if !ok {
			panic(fmt.Sprintf("number %q without value", num.Token.Lexeme()))
		}
		return float64(n)
	}
	tracer().Errorf("unknown non-terminal %s", ctxt.Node.Symbol)
	return nil
}

func apply(op string, left, right float64) float64 {
	switch op {
	case "+":
		return left + right
	case "-":
		return left - right
	case "*":
		return left * right
	case "/":
		return left / right
	}
	panic(fmt.Sprintf("unknown operator %q", op))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
