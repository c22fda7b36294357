package render

import (
	"io"

	"github.com/vango-dev/htmf/pkg/node"
)

// PageData describes a full HTML page around a body tree. Empty fields
// produce no elements.
type PageData struct {
	Body  node.Node
	Title string

	// Lang sets <html lang> (default "en").
	Lang string

	Meta        []MetaTag
	Links       []LinkTag
	StyleSheets []string

	// Deferred and async scripts go in <head>, the rest after Body.
	Scripts []ScriptTag
}

// MetaTag is a <meta> element. Only non-empty fields become attributes.
type MetaTag struct {
	Charset   string
	Name      string
	Property  string
	HTTPEquiv string
	Content   string
}

// LinkTag is a <link> element. Only non-empty fields become attributes.
type LinkTag struct {
	Rel         string
	Href        string
	Type        string
	Sizes       string
	CrossOrigin string
	Media       string
}

// ScriptTag is an external <script>. Module overrides Type.
type ScriptTag struct {
	Src    string
	Type   string
	Defer  bool
	Async  bool
	Module bool
}

// Document assembles the page as a Document node.
func (p PageData) Document() node.Node {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	c := node.NewCursor(node.NewDocument()).
		Open("html", node.Lang(lang)).
		Open("head").
		With(
			node.El("meta", node.Charset("utf-8")),
			node.El("meta", node.Name("viewport"), node.Content("width=device-width, initial-scale=1")),
		)

	if p.Title != "" {
		c = c.Open("title").With(p.Title).Close()
	}
	for _, meta := range p.Meta {
		c = c.Descend(meta.node()).Close()
	}
	for _, link := range p.Links {
		c = c.Descend(link.node()).Close()
	}
	for _, href := range p.StyleSheets {
		c = c.With(node.El("link", node.Rel("stylesheet"), node.Href(href)))
	}
	for _, script := range p.Scripts {
		if script.Defer || script.Async {
			c = c.With(script.node())
		}
	}

	c = c.Close().Open("body").With(p.Body)
	for _, script := range p.Scripts {
		if !script.Defer && !script.Async {
			c = c.With(script.node())
		}
	}
	return c.Finish()
}

// RenderPage writes the page built by page.Document to w.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	return r.RenderToWriter(w, page.Document())
}

func (m MetaTag) node() node.Node {
	var attrs []node.Attr
	attrs = appendIf(attrs, node.Charset(m.Charset))
	attrs = appendIf(attrs, node.Name(m.Name))
	attrs = appendIf(attrs, node.Property(m.Property))
	attrs = appendIf(attrs, node.HTTPEquiv(m.HTTPEquiv))
	attrs = appendIf(attrs, node.Content(m.Content))
	return node.El("meta", attrs...)
}

func (l LinkTag) node() node.Node {
	var attrs []node.Attr
	attrs = appendIf(attrs, node.Rel(l.Rel))
	attrs = appendIf(attrs, node.Href(l.Href))
	attrs = appendIf(attrs, node.Type(l.Type))
	attrs = appendIf(attrs, node.Sizes(l.Sizes))
	attrs = appendIf(attrs, node.CrossOrigin(l.CrossOrigin))
	attrs = appendIf(attrs, node.Media(l.Media))
	return node.El("link", attrs...)
}

func (s ScriptTag) node() node.Node {
	typ := s.Type
	if s.Module {
		typ = "module"
	}
	attrs := []node.Attr{node.Src(s.Src)}
	attrs = appendIf(attrs, node.Type(typ))
	if s.Defer {
		attrs = append(attrs, node.Defer())
	}
	if s.Async {
		attrs = append(attrs, node.Async())
	}
	return node.El("script", attrs...)
}

// appendIf appends a unless its value is empty.
func appendIf(attrs []node.Attr, a node.Attr) []node.Attr {
	if a.Value == "" {
		return attrs
	}
	return append(attrs, a)
}
