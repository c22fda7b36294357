package render

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"github.com/vango-dev/htmf/pkg/node"
)

// Templ wraps a finished tree as a templ component so it can be embedded
// in templ templates.
func (r *Renderer) Templ(n node.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return r.RenderToWriter(w, n)
	})
}

// Gomponent wraps a finished tree as a gomponents node.
func (r *Renderer) Gomponent(n node.Node) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return r.RenderToWriter(w, n)
	})
}
