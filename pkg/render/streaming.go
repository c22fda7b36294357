package render

import (
	"io"
	"net/http"

	"github.com/vango-dev/htmf/pkg/node"
)

// StreamingRenderer writes a tree in chunks, flushing the underlying writer
// between the top-level children of a Document or Fragment root.
type StreamingRenderer struct {
	*Renderer
	flusher    http.Flusher
	w          io.Writer
	flushEvery int
}

// NewStreamingRenderer returns a renderer writing to w, typically an
// http.ResponseWriter. When w is an http.Flusher it is flushed after the
// doctype, after every flushEvery top-level children, and at the end.
// A flushEvery below one means every child.
func NewStreamingRenderer(w io.Writer, config RendererConfig, flushEvery int) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	if flushEvery < 1 {
		flushEvery = 1
	}
	return &StreamingRenderer{
		Renderer:   NewRenderer(config),
		flusher:    flusher,
		w:          w,
		flushEvery: flushEvery,
	}
}

// Render writes n and flushes between top-level children of a Document or
// Fragment root. The bytes written are identical to RenderToWriter.
func (s *StreamingRenderer) Render(n node.Node) error {
	ew := &errWriter{w: s.w}

	var kids []node.Node
	leading := false
	switch v := n.(type) {
	case node.Document:
		ew.writeString(Doctype)
		s.flush()
		kids, leading = effectiveChildren(v.Children), true
	case node.Fragment:
		kids = effectiveChildren(v.Children)
	default:
		s.render(ew, n, 0)
		s.flush()
		return ew.err
	}

	for i, kid := range kids {
		if leading || i > 0 {
			ew.writeString(s.newline(0))
		}
		s.render(ew, kid, 0)
		if ew.err != nil {
			return ew.err
		}
		if (i+1)%s.flushEvery == 0 {
			s.flush()
		}
	}

	s.flush()
	return ew.err
}

func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter counts flushes on top of any io.Writer, so streaming can
// be observed outside an HTTP handler.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

func (w *FlushableWriter) Flush() {
	w.FlushCount++
}

