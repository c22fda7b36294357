package convert

import (
	stderrors "errors"
	"go/format"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/htmf/internal/errors"
)

func convertString(t *testing.T, src string) string {
	t.Helper()
	out, err := Convert(strings.NewReader(src), Options{})
	require.NoError(t, err)
	return out
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	var he *errors.HtmfError
	require.True(t, stderrors.As(err, &he), "expected *HtmfError, got %T: %v", err, err)
	return he.Code
}

func TestConvert_Golden(t *testing.T) {
	got := convertString(t, `<div id="main" class="box"><p>hello</p><br></div>`)
	want := `package views

import h "github.com/vango-dev/htmf/pkg/node"

func Page() h.Node {
	return h.Attach(h.El("div", h.Class("box"), h.ID("main")),
		h.Attach(h.El("p"), "hello"),
		h.El("br"),
	)
}
`
	assert.Equal(t, want, got)
}

func TestConvert_Options(t *testing.T) {
	out, err := Convert(strings.NewReader(`<p>x</p>`), Options{Package: "pages", Func: "Login"})
	require.NoError(t, err)
	assert.Contains(t, out, "package pages\n")
	assert.Contains(t, out, "func Login() h.Node {")
}

func TestConvert_Attributes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"typed", `<a href="/x" target="_blank"></a>`, `h.El("a", h.Href("/x"), h.Target("_blank"))`},
		{"flag", `<input type="text" disabled>`, `h.El("input", h.Disabled(), h.Type("text"))`},
		{"flag with value", `<input disabled="disabled">`, `h.El("input", h.Attribute("disabled", "disabled"))`},
		{"unknown", `<div x-on="y"></div>`, `h.El("div", h.Attribute("x-on", "y"))`},
		{"data", `<div data-role="nav"></div>`, `h.El("div", h.Data("role", "nav"))`},
		{"renamed", `<label for="email"></label>`, `h.El("label", h.For("email"))`},
		{"hyphenated", `<meta http-equiv="refresh" content="5">`, `h.El("meta", h.Content("5"), h.HTTPEquiv("refresh"))`},
		{"quoted value", `<div title='say "hi"'></div>`, "h.El(\"div\", h.Title(`say \"hi\"`))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := convertString(t, tt.src)
			assert.Contains(t, out, "return "+tt.want+"\n")
		})
	}
}

func TestConvert_Text(t *testing.T) {
	out := convertString(t, "  hello  ")
	assert.Contains(t, out, `return h.NewText("hello")`)

	out = convertString(t, `<p>say "hi"</p>`)
	assert.Contains(t, out, "h.Attach(h.El(\"p\"), `say \"hi\"`)")

	out = convertString(t, "<p>tab\there `tick` \"q\"</p>")
	assert.Contains(t, out, `h.Attach(h.El("p"), "tab\there `+"`tick`"+` \"q\"")`)
}

func TestConvert_DropsBlankText(t *testing.T) {
	out := convertString(t, "<ul>\n  <li>a</li>\n  <li>b</li>\n</ul>")
	assert.Contains(t, out, `	return h.Attach(h.El("ul"),
		h.Attach(h.El("li"), "a"),
		h.Attach(h.El("li"), "b"),
	)`)
}

func TestConvert_Comments(t *testing.T) {
	out := convertString(t, `<div><!-- note --><p>x</p></div>`)
	assert.Contains(t, out, `	return h.Attach(h.El("div"),
		// note
		h.Attach(h.El("p"), "x"),
	)`)

	out = convertString(t, "<!-- top -->\n<p>x</p>")
	assert.Contains(t, out, "\t// top\n\treturn h.Attach(h.El(\"p\"), \"x\")\n")
}

func TestConvert_Fragment(t *testing.T) {
	out := convertString(t, `<h1>a</h1><p>b</p>`)
	assert.Contains(t, out, `	return h.NewFragment(
		h.Attach(h.El("h1"), "a"),
		h.Attach(h.El("p"), "b"),
	)`)
}

func TestConvert_Document(t *testing.T) {
	out := convertString(t, `<!DOCTYPE html><html lang="en"><head><title>T</title></head><body><p>x</p></body></html>`)
	assert.Contains(t, out, "return h.NewDocument(")
	assert.Contains(t, out, `h.Attach(h.El("html", h.Lang("en")),`)
	assert.Contains(t, out, `h.Attach(h.El("head"), h.Attach(h.El("title"), "T")),`)
	assert.Contains(t, out, `h.Attach(h.El("body"), h.Attach(h.El("p"), "x")),`)
}

func TestConvert_LoginPageIsStable(t *testing.T) {
	page := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Sign in</title>
    <link rel="stylesheet" href="/static/app.css">
  </head>
  <body>
    <!-- login form -->
    <form method="post" action="/login" class="card">
      <label for="email">Email</label>
      <input type="email" id="email" name="email" required autofocus>
      <label for="password">Password</label>
      <input type="password" id="password" name="password" required>
      <button type="submit" class="btn primary">Sign in</button>
    </form>
  </body>
</html>
`
	first := convertString(t, page)
	second := convertString(t, page)
	assert.Equal(t, first, second)

	formatted, err := format.Source([]byte(first))
	require.NoError(t, err)
	assert.Equal(t, first, string(formatted), "output should already be gofmt-clean")

	for _, want := range []string{
		`h.El("meta", h.Charset("utf-8")),`,
		`h.El("link", h.Href("/static/app.css"), h.Rel("stylesheet")),`,
		`// login form`,
		`h.Attach(h.El("form", h.Action("/login"), h.Class("card"), h.Method("post")),`,
		`h.Attach(h.El("label", h.For("email")), "Email"),`,
		`h.El("input", h.Autofocus(), h.ID("email"), h.Name("email"), h.Required(), h.Type("email")),`,
		`h.Attach(h.El("button", h.Class("btn primary"), h.Type("submit")), "Sign in"),`,
	} {
		assert.Contains(t, first, want)
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Run("invalid package", func(t *testing.T) {
		_, err := Convert(strings.NewReader("<p></p>"), Options{Package: "my-views"})
		require.Error(t, err)
		assert.Equal(t, "H003", errCode(t, err))
	})

	t.Run("read failure", func(t *testing.T) {
		cause := stderrors.New("disk gone")
		_, err := Convert(iotest.ErrReader(cause), Options{})
		require.Error(t, err)
		assert.Equal(t, "H001", errCode(t, err))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("no content", func(t *testing.T) {
		_, err := Convert(strings.NewReader(" \n\t "), Options{})
		require.Error(t, err)
		assert.Equal(t, "H004", errCode(t, err))
	})

	t.Run("only comments", func(t *testing.T) {
		_, err := Convert(strings.NewReader("<!-- a --><!-- b -->"), Options{})
		require.Error(t, err)
		assert.Equal(t, "H004", errCode(t, err))
	})
}

func TestIsDocument(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"<!doctype html><p>", true},
		{"  \n<!DOCTYPE html>", true},
		{"<html><body></body></html>", true},
		{"<HTML>", true},
		{"\xef\xbb\xbf<!doctype html>", true},
		{"<div></div>", false},
		{"<!-- c --><html>", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isDocument([]byte(tt.src)), "isDocument(%q)", tt.src)
	}
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, `"plain"`, literal("plain"))
	assert.Equal(t, "`a \"b\"`", literal(`a "b"`))
	assert.Equal(t, `"a \"b\"\nc"`, literal("a \"b\"\nc"))
	assert.Equal(t, "\"`x` \\\"y\\\"\"", literal("`x` \"y\""))
}
