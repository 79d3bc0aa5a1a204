package ll

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// TableAsHTML exports an LL(1) table in HTML-format. Conflicting cells show
// the rule kept and the first competing rule, as "kept/competing".
func TableAsHTML(t *Table, w io.Writer) {
	if t == nil {
		tracer().Errorf("table not yet created, cannot export to HTML")
		return
	}
	g := t.g
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("LL(1) table for %s, %d entries<p>", g.Name, t.Size()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, la := range t.lookaheads() {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", la))
	}
	io.WriteString(w, "</tr>\n")
	for _, A := range g.nonterminals {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", A))
		for _, la := range t.lookaheads() {
			td := t.cellString(A, la)
			if td == "" {
				td = "&nbsp;"
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}

// TableAsText renders an LL(1) table as a text table, one row per non-terminal
// and one column per lookahead. Cells contain rule numbers, conflicting cells
// show "kept/competing".
func TableAsText(t *Table) (string, error) {
	header := []string{""}
	for _, la := range t.lookaheads() {
		header = append(header, la.Name)
	}
	data := pterm.TableData{header}
	for _, A := range t.g.nonterminals {
		row := []string{A.Name}
		for _, la := range t.lookaheads() {
			row = append(row, t.cellString(A, la))
		}
		data = append(data, row)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// AnalysisAsText renders nullability, FIRST and FOLLOW of all non-terminals
// as a text table.
func AnalysisAsText(ga *LLAnalysis) (string, error) {
	data := pterm.TableData{{"", "nullable", "FIRST", "FOLLOW"}}
	ga.g.EachNonTerminal(func(A *Symbol) interface{} {
		data = append(data, []string{
			A.Name,
			fmt.Sprintf("%v", ga.Nullable(A)),
			fmt.Sprintf("%v", ga.First(A)),
			fmt.Sprintf("%v", ga.Follow(A)),
		})
		return nil
	})
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func (t *Table) lookaheads() []*Symbol {
	las := make([]*Symbol, 0, len(t.g.terminals)+1)
	las = append(las, t.g.terminals...)
	return append(las, t.g.eof)
}

func (t *Table) cellString(A *Symbol, la *Symbol) string {
	r1, r2 := t.Cell(A, la)
	if r1 == nil {
		return ""
	} else if r2 == nil {
		return fmt.Sprintf("%d", r1.Serial)
	}
	return fmt.Sprintf("%d/%d", r1.Serial, r2.Serial)
}
