package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/gorll"
	"github.com/npillmayer/gorll/ll"
	"github.com/npillmayer/gorll/ll/predict"
	"github.com/npillmayer/gorll/ll/scanner"
)

// We provide a simple LL(1) expression grammar for parsing experiments.
//
//  Expr   ➞ Term Expr'
//  Expr'  ➞ SumOp Term Expr'  |  ε
//  Term   ➞ Factor Term'
//  Term'  ➞ ProdOp Factor Term'  |  ε
//  Factor ➞ number  |  ( Expr )
//  SumOp  ➞ +  |  -
//  ProdOp ➞ *  |  /
//
func makeExprGrammar() (*ll.Grammar, error) {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelError)
	defer tracer().SetTraceLevel(level)
	b := ll.NewGrammarBuilder("Expressions")
	b.Terminal("number", scanner.Int)
	for _, op := range []string{"+", "-", "*", "/", "(", ")"} {
		b.Terminal(op, opType(op))
	}
	for _, A := range []string{"Expr", "Expr'", "Term", "Term'", "Factor", "SumOp", "ProdOp"} {
		b.NonTerminal(A)
	}
	b.Start("Expr")
	b.LHS("Expr").N("Term").N("Expr'").End()
	b.LHS("Expr'").N("SumOp").N("Term").N("Expr'").End()
	b.LHS("Expr'").Epsilon()
	b.LHS("Term").N("Factor").N("Term'").End()
	b.LHS("Term'").N("ProdOp").N("Factor").N("Term'").End()
	b.LHS("Term'").Epsilon()
	b.LHS("Factor").T("number").End()
	b.LHS("Factor").T("(").N("Expr").T(")").End()
	b.LHS("SumOp").T("+").End()
	b.LHS("SumOp").T("-").End()
	b.LHS("ProdOp").T("*").End()
	b.LHS("ProdOp").T("/").End()
	return b.Grammar()
}

// main() starts an interactive CLI ("LL.REPL"), where users may enter arithmetic
// expressions. LL.REPL will parse the input with a predictive parser and print
// out the parse tree and the value of the expression.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	showTable := flag.Bool("table", false, "Print the parse table on startup")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to LL.REPL")   // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up grammar and parse table
	g, err := makeExprGrammar()
	if err != nil {
		tracer().Errorf("error creating grammar: %v", err)
		os.Exit(3)
	}
	table, _, err := ll.BuildTable(ll.Analysis(g))
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	level := tracing.TraceLevelFromString(*tlevel)
	tracer().SetTraceLevel(level) // now set the user supplied level
	tracing.Select("gorll.ll").SetTraceLevel(level)
	g.Dump() // only visible in debug mode
	//
	// set up REPL
	repl, err := readline.New("llrepl> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{
		table: table,
		repl:  repl,
	}
	if *showTable {
		intp.printTable()
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		if _, err = intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	table *ll.Table
	repl  *readline.Instance
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval parses an expression or executes a command, given on a line by itself.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.Execute(strings.Fields(line[1:]))
	}
	tracer().Infof("----------------------- Parse ------------------------------------")
	scan := scanner.GoTokenizer("input", strings.NewReader(line), intp.table.Grammar())
	tree, err := predict.NewParser(intp.table).Parse(scan)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	out, err := tree.Render()
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	fmt.Print(out)
	tracer().Infof("-------------------------- Output --------------------------------")
	value, err := Evaluate(tree)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	pterm.Info.Println(formatValue(value))
	return false, nil
}

// Execute runs a REPL command.
func (intp *Intp) Execute(args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}
	switch args[0] {
	case "quit", "q":
		return true, nil
	case "table":
		return false, intp.printTable()
	case "sets":
		txt, err := ll.AnalysisAsText(intp.table.Analysis())
		if err != nil {
			return false, err
		}
		fmt.Println(txt)
	case "html":
		if len(args) < 2 {
			err := fmt.Errorf("usage: :html <file>")
			pterm.Error.Println(err.Error())
			return false, err
		}
		f, err := os.Create(args[1])
		if err != nil {
			pterm.Error.Println(err.Error())
			return false, err
		}
		defer f.Close()
		ll.TableAsHTML(intp.table, f)
		pterm.Info.Println(fmt.Sprintf("table written to %s", args[1]))
	default:
		err := fmt.Errorf("unknown command :%s", args[0])
		pterm.Error.Println(err.Error())
		return false, err
	}
	return false, nil
}

func (intp *Intp) printTable() error {
	for _, r := range intp.table.Grammar().Rules() {
		fmt.Printf("%3d: %s\n", r.Serial, r)
	}
	txt, err := ll.TableAsText(intp.table)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	fmt.Println(txt)
	return nil
}

// opType maps single-character operators to the token types the Go tokenizer
// produces for them.
func opType(op string) gorll.TokType {
	return gorll.TokType(op[0])
}
