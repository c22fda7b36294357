package convert

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/htmf/internal/errors"
	"github.com/vango-dev/htmf/pkg/node"
)

// ImportPath is the package generated code imports, under the alias "h".
const ImportPath = "github.com/vango-dev/htmf/pkg/node"

// Options controls the shape of generated source.
type Options struct {
	// Package is the package clause. Defaults to "views".
	Package string

	// Func is the name of the generated function. Defaults to "Page".
	Func string
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = "views"
	}
	if o.Func == "" {
		o.Func = "Page"
	}
	return o
}

// Convert reads an HTML page or fragment and returns gofmt-formatted Go
// source for a function that builds the same tree with the node package.
//
// Input beginning with a doctype or an <html> tag is parsed as a full
// document; anything else as the content of <body>. Attributes are sorted
// by name and value, whitespace-only text is dropped, and comments become
// Go line comments.
func Convert(r io.Reader, opts Options) (string, error) {
	opts = opts.withDefaults()
	if !token.IsIdentifier(opts.Package) || !token.IsIdentifier(opts.Func) {
		return "", errors.New("H003").
			WithDetail("package " + strconv.Quote(opts.Package) + " and func " + strconv.Quote(opts.Func) + " must both be Go identifiers")
	}

	in, err := parse(r)
	if err != nil {
		return "", err
	}

	var g generator
	g.printf("package %s\n\nimport h %q\n\nfunc %s() h.Node {\n", opts.Package, ImportPath, opts.Func)
	switch {
	case in.doc != nil:
		g.list("\treturn h.NewDocument(\n", children(in.doc), 1)
		g.buf.WriteString("\n")
	default:
		kids := in.nodes
		values := 0
		for _, k := range kids {
			if k.Type != html.CommentNode {
				values++
			}
		}
		switch values {
		case 0:
			return "", errors.New("H004")
		case 1:
			for _, k := range kids {
				if k.Type == html.CommentNode {
					g.comment(k, 1)
					continue
				}
				g.buf.WriteString("\treturn ")
				if k.Type == html.TextNode {
					g.buf.WriteString("h.NewText(" + literal(text(k)) + ")")
				} else {
					g.expr(k, 1)
				}
				g.buf.WriteString("\n")
			}
		default:
			g.list("\treturn h.NewFragment(\n", kids, 1)
			g.buf.WriteString("\n")
		}
	}
	g.buf.WriteString("}\n")

	src, err := format.Source(g.buf.Bytes())
	if err != nil {
		return "", errors.New("H002").WithScannerError("generated.go", g.buf.Bytes(), err)
	}
	return string(src), nil
}

// input is a parsed page: either a full document or a list of top-level
// body nodes.
type input struct {
	doc   *html.Node
	nodes []*html.Node
}

func parse(r io.Reader) (input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return input{}, errors.New("H001").Wrap(err)
	}

	if isDocument(data) {
		doc, err := html.Parse(bytes.NewReader(data))
		if err != nil {
			return input{}, errors.New("H001").Wrap(err)
		}
		return input{doc: doc}, nil
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(data), body)
	if err != nil {
		return input{}, errors.New("H001").Wrap(err)
	}
	kept := nodes[:0]
	for _, n := range nodes {
		if keep(n) {
			kept = append(kept, n)
		}
	}
	return input{nodes: kept}, nil
}

// isDocument reports whether data starts with a doctype or an <html> tag.
func isDocument(data []byte) bool {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimLeft(data, " \t\r\n\f")
	head := strings.ToLower(string(data[:min(len(data), 9)]))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

// keep reports whether n contributes to the output: elements, text that is
// not blank, and comments.
func keep(n *html.Node) bool {
	switch n.Type {
	case html.ElementNode, html.CommentNode:
		return true
	case html.TextNode:
		return text(n) != ""
	default:
		return false
	}
}

func children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func text(n *html.Node) string {
	return strings.TrimSpace(n.Data)
}

// piece is one unit of pending output: a literal string, or a node to
// expand at the given indentation depth.
type piece struct {
	text  string
	n     *html.Node
	depth int
}

type generator struct {
	buf   bytes.Buffer
	stack []piece
}

func (g *generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

// list writes header, then each node of kids on its own line one level
// deeper than depth, then a closing parenthesis at depth.
func (g *generator) list(header string, kids []*html.Node, depth int) {
	g.buf.WriteString(header)
	g.stack = g.stack[:0]
	g.pushList(kids, depth)
	g.drain()
}

// expr writes the expression for n, which starts on a line at depth.
func (g *generator) expr(n *html.Node, depth int) {
	g.stack = append(g.stack[:0], piece{n: n, depth: depth})
	g.drain()
}

// pushList schedules kids, each followed by a comma, and the closing
// parenthesis.
func (g *generator) pushList(kids []*html.Node, depth int) {
	g.stack = append(g.stack, piece{text: indent(depth) + ")"})
	for i := len(kids) - 1; i >= 0; i-- {
		k := kids[i]
		if k.Type == html.CommentNode {
			g.stack = append(g.stack, piece{text: commentLines(k, depth+1)})
			continue
		}
		g.stack = append(g.stack,
			piece{text: ",\n"},
			piece{n: k, depth: depth + 1},
			piece{text: indent(depth + 1)},
		)
	}
}

func (g *generator) drain() {
	for len(g.stack) > 0 {
		p := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]
		if p.n == nil {
			g.buf.WriteString(p.text)
			continue
		}

		switch p.n.Type {
		case html.TextNode:
			g.buf.WriteString(literal(text(p.n)))
		case html.ElementNode:
			open := element(p.n)
			kids := children(p.n)
			if !node.CanHaveChildren(node.El(p.n.Data)) {
				kids = nil
			}
			switch {
			case len(kids) == 0:
				g.buf.WriteString(open)
			case len(kids) == 1 && kids[0].Type != html.CommentNode:
				g.buf.WriteString("h.Attach(" + open + ", ")
				g.stack = append(g.stack, piece{text: ")"}, piece{n: kids[0], depth: p.depth})
			default:
				g.buf.WriteString("h.Attach(" + open + ",\n")
				g.pushList(kids, p.depth)
			}
		}
	}
}

func (g *generator) comment(n *html.Node, depth int) {
	g.buf.WriteString(commentLines(n, depth))
}

// element returns the h.El call for n with its sorted attributes.
func element(n *html.Node) string {
	var b strings.Builder
	b.WriteString("h.El(")
	b.WriteString(strconv.Quote(n.Data))
	for _, a := range sortedAttrs(n) {
		b.WriteString(", ")
		b.WriteString(attribute(a.Name, a.Value))
	}
	b.WriteString(")")
	return b.String()
}

// attrs returns the attributes of n in source order.
func attrs(n *html.Node) []node.Attr {
	out := make([]node.Attr, 0, len(n.Attr))
	for _, a := range n.Attr {
		out = append(out, node.Attr{Name: attrName(a), Value: a.Val})
	}
	return out
}

func sortedAttrs(n *html.Node) []node.Attr {
	out := attrs(n)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Value < out[j].Value
	})
	return out
}

func attrName(a html.Attribute) string {
	if a.Namespace != "" {
		return a.Namespace + ":" + a.Key
	}
	return a.Key
}

// attribute returns the constructor call for one attribute: the typed
// constructor from the attribute table when there is one, h.Data for data-*
// names, and h.Attribute otherwise.
func attribute(name, value string) string {
	if spec, ok := node.LookupAttr(name); ok {
		switch {
		case spec.Flag && value == "":
			return "h." + spec.Func + "()"
		case !spec.Flag:
			return "h." + spec.Func + "(" + literal(value) + ")"
		}
	}
	if key, ok := strings.CutPrefix(name, "data-"); ok && key != "" {
		return "h.Data(" + literal(key) + ", " + literal(value) + ")"
	}
	return "h.Attribute(" + literal(name) + ", " + literal(value) + ")"
}

// literal quotes s as a Go string, preferring a raw string when s holds
// double quotes and fits on one line.
func literal(s string) string {
	if strings.Contains(s, `"`) && strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

func commentLines(n *html.Node, depth int) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(n.Data), "\n") {
		line = strings.TrimSpace(line)
		b.WriteString(indent(depth))
		if line == "" {
			b.WriteString("//\n")
			continue
		}
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func indent(depth int) string {
	return strings.Repeat("\t", depth)
}
