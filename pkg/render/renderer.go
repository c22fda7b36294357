package render

import (
	"io"
	"strings"

	"github.com/vango-dev/htmf/pkg/node"
)

// Doctype is written once for every Document node.
const Doctype = "<!doctype html>"

// DefaultIndent is the indentation used per level in pretty mode.
const DefaultIndent = "    "

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty puts every child element on its own line, indented one level
	// deeper than its parent.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to four spaces if not specified.
	Indent string
}

// Renderer serializes finished node trees to HTML. A Renderer holds only
// its configuration and is safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = DefaultIndent
	}
	return &Renderer{config: config}
}

var (
	compact = NewRenderer(RendererConfig{})
	pretty  = NewRenderer(RendererConfig{Pretty: true})
)

// Render renders n without any inserted whitespace.
func Render(n node.Node) string {
	s, _ := compact.RenderToString(n)
	return s
}

// RenderPretty renders n with one child per line and four-space indentation.
func RenderPretty(n node.Node) string {
	s, _ := pretty.RenderToString(n)
	return s
}

// Config returns the renderer configuration.
func (r *Renderer) Config() RendererConfig {
	return r.config
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(n node.Node) (string, error) {
	var b strings.Builder
	if err := r.RenderToWriter(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderToWriter streams a node tree to the given writer. The only errors
// are those returned by w.
func (r *Renderer) RenderToWriter(w io.Writer, n node.Node) error {
	ew := &errWriter{w: w}
	r.render(ew, n, 0)
	return ew.err
}

// work is one entry of the render stack: either a node to render at a
// depth or literal markup to copy.
type work struct {
	n     node.Node
	depth int
	lit   string
	isLit bool
}

// render walks the tree depth-first with an explicit stack, so document
// depth is bounded by memory rather than by the goroutine stack.
func (r *Renderer) render(w *errWriter, root node.Node, depth int) {
	stack := []work{{n: root, depth: depth}}
	for len(stack) > 0 && w.err == nil {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if item.isLit {
			w.writeString(item.lit)
			continue
		}

		switch v := item.n.(type) {
		case node.Text:
			w.escape(v.Content)

		case node.VoidTag:
			r.openTag(w, v.Name, v.Attrs)
			w.writeString("/>")

		case node.Tag:
			r.openTag(w, v.Name, v.Attrs)
			w.writeString(">")
			kids := effectiveChildren(v.Children)
			closing := "</" + Escape(v.Name) + ">"
			if len(kids) == 0 {
				w.writeString(closing)
				continue
			}
			stack = append(stack, work{lit: r.newline(item.depth) + closing, isLit: true})
			stack = r.push(stack, kids, item.depth+1, true)

		case node.Fragment:
			stack = r.push(stack, effectiveChildren(v.Children), item.depth, false)

		case node.Document:
			w.writeString(Doctype)
			stack = r.push(stack, effectiveChildren(v.Children), item.depth, true)
		}
	}
}

// push schedules kids in order. In pretty mode each child is preceded by a
// line break, except the first when leading is false.
func (r *Renderer) push(stack []work, kids []node.Node, depth int, leading bool) []work {
	for i := len(kids) - 1; i >= 0; i-- {
		stack = append(stack, work{n: kids[i], depth: depth})
		if r.config.Pretty && (leading || i > 0) {
			stack = append(stack, work{lit: r.newline(depth), isLit: true})
		}
	}
	return stack
}

func (r *Renderer) openTag(w *errWriter, name string, attrs []node.Attr) {
	w.writeString("<")
	w.escape(name)
	for _, a := range attrs {
		w.writeString(" ")
		w.escape(a.Name)
		w.writeString(`="`)
		w.escape(a.Value)
		w.writeString(`"`)
	}
}

// newline returns the separator placed before a child at depth. It is
// empty in compact mode.
func (r *Renderer) newline(depth int) string {
	if !r.config.Pretty {
		return ""
	}
	return "\n" + strings.Repeat(r.config.Indent, depth)
}

// effectiveChildren splices Fragment children in place and drops Empty
// nodes. The input is returned as is when there is nothing to remove.
func effectiveChildren(kids []node.Node) []node.Node {
	clean := true
	for _, k := range kids {
		switch k.(type) {
		case node.Fragment, node.Empty, nil:
			clean = false
		}
	}
	if clean {
		return kids
	}

	var out []node.Node
	pending := [][]node.Node{kids}
	for len(pending) > 0 {
		top := pending[len(pending)-1]
		if len(top) == 0 {
			pending = pending[:len(pending)-1]
			continue
		}
		head := top[0]
		pending[len(pending)-1] = top[1:]
		switch v := head.(type) {
		case node.Fragment:
			pending = append(pending, v.Children)
		case node.Empty, nil:
		default:
			out = append(out, head)
		}
	}
	return out
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) writeString(s string) {
	if e.err != nil || s == "" {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *errWriter) escape(s string) {
	if e.err != nil {
		return
	}
	e.err = EscapeTo(e.w, s)
}
