package convert

import (
	"io"

	"golang.org/x/net/html"

	"github.com/vango-dev/htmf/pkg/node"
)

// Import reads an HTML page or fragment and builds the equivalent node tree.
//
// Input is classified as in Convert. A document yields a Document node, a
// fragment with one top-level node yields that node, and a fragment with
// several yields a Fragment. Whitespace-only text is dropped and the rest is
// trimmed; comments are dropped. Attributes keep their source order. Input
// with no content yields Empty.
func Import(r io.Reader) (node.Node, error) {
	in, err := parse(r)
	if err != nil {
		return nil, err
	}

	if in.doc != nil {
		c := node.NewCursor(node.Document{})
		for _, k := range children(in.doc) {
			c = importTree(c, k)
		}
		return c.Finish(), nil
	}

	c := node.NewCursor(node.Fragment{})
	for _, k := range in.nodes {
		c = importTree(c, k)
	}
	root := c.Finish()
	switch kids := node.ChildrenOf(root); len(kids) {
	case 0:
		return node.Empty{}, nil
	case 1:
		return kids[0], nil
	default:
		return root, nil
	}
}

// importTree appends the subtree rooted at root to the focus of c and
// returns a cursor on the same focus. The walk follows the parser's sibling
// and parent links, so it needs no recursion.
func importTree(c node.Cursor, root *html.Node) node.Cursor {
	n := root
	for {
		switch n.Type {
		case html.ElementNode:
			c = c.Open(n.Data, attrs(n)...)
			if n.FirstChild != nil && node.CanHaveChildren(c.Focus()) {
				n = n.FirstChild
				continue
			}
			c = c.Close()
		case html.TextNode:
			if t := text(n); t != "" {
				c = c.With(t)
			}
		}

		for {
			if n == root {
				return c
			}
			if n.NextSibling != nil {
				n = n.NextSibling
				break
			}
			n = n.Parent
			c = c.Close()
		}
	}
}
