package render

import (
	"strings"
	"testing"

	"github.com/vango-dev/htmf/pkg/node"
)

func TestRenderText(t *testing.T) {
	got := Render(node.NewText("Hello, World!"))
	if got != "Hello, World!" {
		t.Errorf("got %q, want %q", got, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	got := Render(node.NewText(`<x>&"'`))
	want := "&lt;x&gt;&amp;&quot;&#x27;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderElement(t *testing.T) {
	n := node.Attach(node.El("div", node.Class("container")),
		node.Attach(node.El("h1"), "Title"),
		node.Attach(node.El("p"), "Content"),
	)
	want := `<div class="container"><h1>Title</h1><p>Content</p></div>`
	if got := Render(n); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderAttributes(t *testing.T) {
	tests := []struct {
		name string
		node node.Node
		want string
	}{
		{
			name: "no attributes",
			node: node.El("div"),
			want: `<div></div>`,
		},
		{
			name: "order preserved",
			node: node.El("div", node.ID("a"), node.Class("b")),
			want: `<div id="a" class="b"></div>`,
		},
		{
			name: "duplicates passed through",
			node: node.El("div", node.Class("a"), node.Class("b")),
			want: `<div class="a" class="b"></div>`,
		},
		{
			name: "value escaped",
			node: node.El("a", node.Href(`/q?a=1&b="2"`)),
			want: `<a href="/q?a=1&amp;b=&quot;2&quot;"></a>`,
		},
		{
			name: "name escaped",
			node: node.El("div", node.Attribute(`x"y`, "1")),
			want: `<div x&quot;y="1"></div>`,
		},
		{
			name: "flag",
			node: node.El("input", node.Disabled()),
			want: `<input disabled=""/>`,
		},
		{
			name: "set after construction",
			node: node.SetAttr(node.SetAttr(node.El("div"), "id", "x"), "class", "y"),
			want: `<div id="x" class="y"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderVoidElements(t *testing.T) {
	tests := []struct {
		name string
		node node.Node
		want string
	}{
		{
			name: "br",
			node: node.El("br"),
			want: `<br/>`,
		},
		{
			name: "input",
			node: node.El("input", node.Type("text"), node.Name("email")),
			want: `<input type="text" name="email"/>`,
		},
		{
			name: "img with attempted children",
			node: node.Attach(node.El("img", node.Src("/a.png")), node.El("span"), "text"),
			want: `<img src="/a.png"/>`,
		},
		{
			name: "explicit void tag",
			node: node.NewVoidTag("custom-void"),
			want: `<custom-void/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.node)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if strings.Contains(got, "</") {
				t.Errorf("void element should not have closing tag, got %q", got)
			}
		})
	}
}

func TestRenderEmptyIsNeutral(t *testing.T) {
	with := node.Attach(node.El("body"), node.Nothing())
	without := node.El("body")
	if Render(with) != Render(without) {
		t.Errorf("Render(%q) != Render(%q)", Render(with), Render(without))
	}
	if RenderPretty(with) != RenderPretty(without) {
		t.Errorf("pretty: %q != %q", RenderPretty(with), RenderPretty(without))
	}

	mixed := node.Attach(node.El("ul"), node.Nothing(), node.Attach(node.El("li"), "a"), node.Nothing())
	if got, want := Render(mixed), "<ul><li>a</li></ul>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := Render(node.Nothing()); got != "" {
		t.Errorf("Empty rendered %q", got)
	}
	if got := Render(nil); got != "" {
		t.Errorf("nil rendered %q", got)
	}
}

func TestRenderDocument(t *testing.T) {
	html := node.El("html")
	doc := node.NewDocument(html)
	if got, want := Render(doc), Doctype+Render(html); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := strings.Count(Render(doc), Doctype); got != 1 {
		t.Errorf("doctype written %d times", got)
	}
	if got, want := RenderPretty(doc), "<!doctype html>\n<html></html>"; got != want {
		t.Errorf("pretty: got %q, want %q", got, want)
	}
}

func TestRenderFragment(t *testing.T) {
	frag := node.NewFragment(node.El("a"), "x", node.El("br"))
	if got, want := Render(frag), "<a></a>x<br/>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := RenderPretty(frag), "<a></a>\nx\n<br/>"; got != want {
		t.Errorf("pretty: got %q, want %q", got, want)
	}

	// A fragment placed directly in a child list is spliced at render time.
	literal := node.Tag{Name: "div", Children: []node.Node{
		node.Fragment{Children: []node.Node{node.Empty{}}},
	}}
	if got, want := RenderPretty(literal), "<div></div>"; got != want {
		t.Errorf("literal: got %q, want %q", got, want)
	}
}

func TestRenderPretty(t *testing.T) {
	n := node.NewDocument(
		node.Attach(node.El("html"),
			node.Attach(node.El("head"),
				node.El("meta", node.Charset("utf-8")),
			),
			node.Attach(node.El("body", node.Class("w-full")),
				node.Nothing(),
				node.Attach(node.El("p"), "bonjour"),
				node.NewFragment(
					node.El("div"),
					node.Attach(node.El("label", node.For("pw")), "Password"),
				),
			),
		),
	)
	want := strings.Join([]string{
		`<!doctype html>`,
		`<html>`,
		`    <head>`,
		`        <meta charset="utf-8"/>`,
		`    </head>`,
		`    <body class="w-full">`,
		`        <p>`,
		`            bonjour`,
		`        </p>`,
		`        <div></div>`,
		`        <label for="pw">`,
		`            Password`,
		`        </label>`,
		`    </body>`,
		`</html>`,
	}, "\n")
	if got := RenderPretty(n); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	compact := `<!doctype html><html><head><meta charset="utf-8"/></head>` +
		`<body class="w-full"><p>bonjour</p><div></div><label for="pw">Password</label></body></html>`
	if got := Render(n); got != compact {
		t.Errorf("compact: got %q, want %q", got, compact)
	}
}

func TestRenderCustomIndent(t *testing.T) {
	r := NewRenderer(RendererConfig{Pretty: true, Indent: "\t"})
	got, err := r.RenderToString(node.Attach(node.El("ul"), node.El("li")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "<ul>\n\t<li></li>\n</ul>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if r.Config().Indent != "\t" {
		t.Errorf("Indent = %q", r.Config().Indent)
	}
	if NewRenderer(RendererConfig{}).Config().Indent != DefaultIndent {
		t.Error("default indent not applied")
	}
}

func TestRenderDeepTree(t *testing.T) {
	const depth = 10000
	var n node.Node = node.NewText("leaf")
	for i := 0; i < depth; i++ {
		n = node.Attach(node.El("div"), n)
	}

	got := Render(n)
	want := strings.Repeat("<div>", depth) + "leaf" + strings.Repeat("</div>", depth)
	if got != want {
		t.Fatalf("deep render mismatch (len %d, want %d)", len(got), len(want))
	}

	pretty := RenderPretty(n)
	if !strings.HasSuffix(pretty, "\n</div>") {
		t.Errorf("pretty output should end with a closing tag on its own line")
	}
}

func TestRenderToWriterError(t *testing.T) {
	r := NewRenderer(RendererConfig{})
	n := node.Attach(node.El("div"), node.Attach(node.El("p"), "text"))
	for after := 0; after < 6; after++ {
		err := r.RenderToWriter(&failingWriter{after: after}, n)
		if err == nil {
			t.Fatalf("after=%d: expected error", after)
		}
		if !strings.Contains(err.Error(), "write failed") {
			t.Errorf("unexpected error: %v", err)
		}
	}
}

func TestRenderConcurrentReuse(t *testing.T) {
	n := node.Attach(node.El("div"), node.Attach(node.El("p"), "shared"))
	want := Render(n)
	done := make(chan string)
	for i := 0; i < 8; i++ {
		go func() { done <- Render(n) }()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
