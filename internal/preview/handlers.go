package preview

import (
	stderrors "errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmf/internal/errors"
	"github.com/vango-dev/htmf/internal/source"
	"github.com/vango-dev/htmf/pkg/node"
	"github.com/vango-dev/htmf/pkg/render"
)

const contentTypeHTML = "text/html; charset=utf-8"

// handleIndex lists every renderable file as a pair of links.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	names, err := source.List(s.fsys)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "listing pages failed", "error", err)
		http.Error(w, "cannot list pages", http.StatusInternalServerError)
		return
	}

	list := node.Map(names, func(name string) node.Node {
		href := "/render/" + name
		return node.Attach(node.El("li"),
			node.Attach(node.El("a", node.Href(href)), name),
			" ",
			node.Attach(node.El("a", node.Href(href+"?pretty=1"), node.Class("pretty")), "(pretty)"),
		)
	})

	body := node.NewFragment(
		node.Attach(node.El("h1"), "htmf preview"),
		node.IfElse(len(names) == 0,
			node.Attach(node.El("p", node.Class("empty")), "No .html or .msgpack files found."),
			node.Attach(node.El("ul"), list),
		),
	)

	w.Header().Set("Content-Type", contentTypeHTML)
	page := render.PageData{Title: "htmf preview", Body: body}
	if err := s.compact.RenderPage(w, page); err != nil {
		s.logger.WarnContext(r.Context(), "writing index failed", "error", err)
	}
}

// handleRender loads one file and streams it back as HTML.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	if !fs.ValidPath(name) || name == "." || !source.Supported(name) {
		http.NotFound(w, r)
		return
	}

	ctx, span := s.tracer.Start(r.Context(), "htmf.render",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("htmf.path", name)),
	)
	defer span.End()

	start := time.Now()
	format := formatLabel(name)

	n, err := source.Load(s.fsys, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.renderErrors.WithLabelValues(errorCode(err)).Inc()

		status := http.StatusUnprocessableEntity
		if stderrors.Is(err, fs.ErrNotExist) {
			status = http.StatusNotFound
		}
		s.logger.WarnContext(ctx, "render failed", "path", name, "status", status, "error", err)
		http.Error(w, err.Error(), status)
		return
	}

	count := node.Count(n)
	span.SetAttributes(attribute.Int("htmf.node_count", count))
	s.metrics.renderedNodes.Observe(float64(count))

	renderer := s.compact
	if pretty, _ := strconv.ParseBool(r.URL.Query().Get("pretty")); pretty {
		renderer = s.pretty
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	cw := &countingWriter{ResponseWriter: w}
	if err := render.NewStreamingRenderer(cw, renderer.Config(), 1).Render(n); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.WarnContext(ctx, "writing page failed", "path", name, "error", err)
		return
	}

	s.metrics.renderedBytes.Add(float64(cw.written))
	s.metrics.renderDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())
	span.SetStatus(codes.Ok, "")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func formatLabel(name string) string {
	switch source.FormatOf(name) {
	case source.FormatHTML:
		return "html"
	case source.FormatSnapshot:
		return "msgpack"
	default:
		return "unknown"
	}
}

func errorCode(err error) string {
	if code := errors.CodeOf(err); code != "" {
		return code
	}
	return "unknown"
}

// countingWriter counts bytes written through it and forwards flushes.
type countingWriter struct {
	http.ResponseWriter
	written int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.ResponseWriter.Write(p)
	c.written += n
	return n, err
}

func (c *countingWriter) Flush() {
	if f, ok := c.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
