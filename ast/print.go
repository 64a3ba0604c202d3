package ast

import (
	"fmt"
	"io"
	"strings"
)

func printTree(node *Node, w io.Writer, indent string, printPositions bool) {
	var depth int
	Inspect(node, func(n *Node) bool {
		if n == nil {
			depth--
			return true
		}
		prefix := strings.Repeat(indent, depth)
		line := prefix + n.Kind.String()
		if printPositions {
			line += fmt.Sprintf(" [%d...%d]", n.Pos, n.End)
		}
		if n.Text != "" {
			line += " " + n.Text
		}
		if n.Flags&NodeFlagsThisNodeHasError != 0 {
			line += " ERROR"
		}
		fmt.Fprintln(w, line)
		depth++
		return true
	})
}

// Print writes an indented dump of the tree to w.
func Print(node *Node, w io.Writer, indent string) {
	printTree(node, w, indent, false)
}

// PrintPositions is Print with byte offsets included per node.
func PrintPositions(node *Node, w io.Writer, indent string) {
	printTree(node, w, indent, true)
}

// String renders the tree as an indented dump.
func (n *Node) String() string {
	var sb strings.Builder
	Print(n, &sb, "  ")
	return sb.String()
}

// StringWithPositions renders the tree with byte offsets per node.
func (n *Node) StringWithPositions() string {
	var sb strings.Builder
	PrintPositions(n, &sb, "  ")
	return sb.String()
}
