package node

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xlab/treeprint"
)

// Dump returns a human-readable outline of the tree rooted at n, one line
// per node. It is meant for debugging and test failure messages.
func Dump(n Node) string {
	tree := treeprint.New()
	root := tree.AddBranch(label(n))
	type item struct {
		n      Node
		branch treeprint.Tree
	}
	stack := []item{{n, root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		kids := ChildrenOf(top.n)
		branches := make([]treeprint.Tree, len(kids))
		for i, kid := range kids {
			if CanHaveChildren(kid) {
				branches[i] = top.branch.AddBranch(label(kid))
			} else {
				top.branch.AddNode(label(kid))
			}
		}
		for i := len(kids) - 1; i >= 0; i-- {
			if branches[i] != nil {
				stack = append(stack, item{kids[i], branches[i]})
			}
		}
	}
	return tree.String()
}

func label(n Node) string {
	switch v := n.(type) {
	case Tag:
		return "<" + v.Name + attrLabel(v.Attrs) + ">"
	case VoidTag:
		return "<" + v.Name + attrLabel(v.Attrs) + "/>"
	case Fragment:
		return "Fragment"
	case Document:
		return "Document"
	case Text:
		return strconv.Quote(v.Content)
	default:
		return "Empty"
	}
}

func attrLabel(attrs []Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = fmt.Sprintf("%s=%q", a.Name, a.Value)
	}
	return " " + strings.Join(parts, " ")
}
