// Package render serializes htmf node trees to HTML.
//
// The renderer handles all aspects of producing markup from a finished
// tree:
//
//   - Text, tag names, attribute names and values escaped by one routine
//   - Void elements written as <name/> with no closing tag
//   - Fragments spliced into their parent, Empty nodes dropped
//   - A single doctype per Document node
//   - Optional pretty printing, one child per line
//
// # Basic Usage
//
//	html := render.Render(page)
//	html = render.RenderPretty(page)
//
// To stream HTML to a writer with custom indentation:
//
//	renderer := render.NewRenderer(render.RendererConfig{Pretty: true, Indent: "\t"})
//	err := renderer.RenderToWriter(w, page)
//
// Traversal uses an explicit work stack, so arbitrarily deep trees render
// without growing the goroutine stack.
//
// # Full Page Rendering
//
//	page := render.PageData{
//	    Title: "My Page",
//	    Body:  body,
//	}
//	err := renderer.RenderPage(w, page)
//
// # Streaming
//
// For large pages, StreamingRenderer flushes between top-level children:
//
//	sr := render.NewStreamingRenderer(w, config, 8)
//	err := sr.Render(doc)
//
// # Interop
//
// Templ and Gomponent wrap a finished tree so it can be embedded in templ
// templates or gomponents trees.
package render
