package ptree

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Render returns a multi-line rendering of the tree, suitable for terminal output.
func (n *Node) Render() (string, error) {
	if n == nil {
		return "", nil
	}
	var items pterm.LeveledList
	n.level(&items, 0)
	root := pterm.NewTreeFromLeveledList(items)
	return pterm.DefaultTree.WithRoot(root).Srender()
}

func (n *Node) level(items *pterm.LeveledList, level int) {
	var text string
	switch {
	case n == nil:
		text = "<nil>"
	case n.IsTerminal() && n.Token == nil:
		text = n.Symbol.Name
	case n.IsTerminal():
		text = fmt.Sprintf("%s %q", n.Symbol, n.Token.Lexeme())
	case len(n.Children) == 0:
		text = fmt.Sprintf("%s ➞ ε", n.Symbol)
	default:
		text = n.Symbol.Name
	}
	*items = append(*items, pterm.LeveledListItem{Level: level, Text: text})
	if n == nil {
		return
	}
	for _, ch := range n.Children {
		ch.level(items, level+1)
	}
}
