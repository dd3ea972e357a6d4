package ast

import "strings"

// FormatParseTree renders node as the ASCII-art debug tree used by tests:
// each node is a 3-character "OMC" code (operation / meta / leaf-char),
// children hang off it at a fixed 6-column indent, with the first child
// folded onto its parent's line and later siblings introduced by a "+--"
// branch below.
func FormatParseTree(node *Node) string {
	lines := renderTree(node)
	return strings.Join(lines, "\n")
}

func renderTree(n *Node) []string {
	if len(n.Children) == 0 {
		return []string{code(n)}
	}

	first := renderTree(n.Children[0])
	lines := []string{code(n) + "---" + first[0]}

	firstMarker := marker(0, len(n.Children))
	for _, l := range first[1:] {
		lines = append(lines, firstMarker+strings.Repeat(" ", 5)+l)
	}

	for i := 1; i < len(n.Children); i++ {
		child := renderTree(n.Children[i])

		lines = append(lines, "|") // still inside the parent, more to come

		lines = append(lines, "+-----"+child[0])

		m := marker(i, len(n.Children))
		for _, l := range child[1:] {
			lines = append(lines, m+strings.Repeat(" ", 5)+l)
		}
	}

	return lines
}

// marker is the continuation character used on lines belonging to child i
// of a node with n children: "|" while more siblings remain after it, a
// blank space once it's the last child.
func marker(i, n int) string {
	if i < n-1 {
		return "|"
	}
	return " "
}

func code(n *Node) string {
	var o, m, c byte

	switch n.Kind {
	case KindConcat:
		o = 'c'
	case KindAlt:
		o = '|'
	case KindStar:
		o = '*'
	case KindPlus:
		o = '+'
	case KindQuestion:
		o = '?'
	default:
		o = 'N'
	}

	if n.Kind == KindAny {
		m = '.'
	} else {
		m = 'N'
	}

	switch n.Kind {
	case KindLiteral:
		c = n.Char
	case KindEmpty:
		c = '_'
	default:
		c = 'N'
	}

	return string([]byte{o, m, c})
}
