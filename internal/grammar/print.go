package grammar

import (
	"fmt"
	"io"
	"regexp"
)

// softWrapPrint collapses whitespace-padded line breaks for one-line
// rendering of inner strings in tree dumps.
var softWrapPrint = regexp.MustCompile(`[ \t]*\r?\n[ \t]*`)

// Fprint writes a human-readable indented dump of the parse tree to w,
// one rule per line. Identifier and number leaves render as their
// matched text, inner strings as a quoted one-line form, and all other
// rules as <<rule_name>>. Debug aid only; the output is not part of
// the data contract.
func Fprint(w io.Writer, node *Node, source []byte) {
	printNode(w, node, source, 0)
}

func printNode(w io.Writer, node *Node, source []byte, level int) {
	fmt.Fprintf(w, "%*s", level*2, "")
	printSingleNode(w, node, source)
	for _, child := range node.Children {
		printNode(w, child, source, level+1)
	}
}

func printSingleNode(w io.Writer, node *Node, source []byte) {
	switch node.Rule {
	case RuleIdentifier, RuleNumber:
		fmt.Fprintln(w, node.Text(source))
	case RuleInnerString:
		fmt.Fprintf(w, "\"%s\"\n", softWrapPrint.ReplaceAllString(node.Text(source), `\n`))
	default:
		fmt.Fprintf(w, "<<%s>>\n", node.Rule)
	}
}
