package source

import (
	stderrors "errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/htmf/internal/errors"
	"github.com/vango-dev/htmf/pkg/codec"
	"github.com/vango-dev/htmf/pkg/node"
	"github.com/vango-dev/htmf/pkg/render"
)

func code(t *testing.T, err error) string {
	t.Helper()
	var he *errors.HtmfError
	require.True(t, stderrors.As(err, &he), "expected *HtmfError, got %T", err)
	return he.Code
}

func snapshotOf(t *testing.T, n node.Node) []byte {
	t.Helper()
	data, err := codec.Encode(n)
	require.NoError(t, err)
	return data
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatHTML, FormatOf("a/index.html"))
	assert.Equal(t, FormatHTML, FormatOf("page.HTM"))
	assert.Equal(t, FormatSnapshot, FormatOf("tree.msgpack"))
	assert.Equal(t, FormatUnknown, FormatOf("notes.txt"))
	assert.Equal(t, FormatUnknown, FormatOf("Makefile"))
}

func TestLoad(t *testing.T) {
	tree := node.Attach(node.El("p", node.Class("x")), "hi")
	fsys := fstest.MapFS{
		"index.html":     {Data: []byte(`<p class="x">hi</p>`)},
		"snap.msgpack":   {Data: snapshotOf(t, tree)},
		"broken.msgpack": {Data: []byte{0xc1}},
		"readme.txt":     {Data: []byte("hello")},
	}

	n, err := Load(fsys, "index.html")
	require.NoError(t, err)
	assert.True(t, node.Equal(tree, n))

	n, err = Load(fsys, "snap.msgpack")
	require.NoError(t, err)
	assert.Equal(t, `<p class="x">hi</p>`, render.Render(n))

	_, err = Load(fsys, "broken.msgpack")
	require.Error(t, err)
	assert.Equal(t, "H020", code(t, err))
	assert.ErrorIs(t, err, codec.ErrCorrupt)

	_, err = Load(fsys, "readme.txt")
	require.Error(t, err)
	assert.Equal(t, "H082", code(t, err))

	_, err = Load(fsys, "missing.html")
	require.Error(t, err)
	assert.Equal(t, "H080", code(t, err))
}

func TestList(t *testing.T) {
	fsys := fstest.MapFS{
		"b.html":          {Data: []byte("<p></p>")},
		"a/page.htm":      {Data: []byte("<p></p>")},
		"a/tree.msgpack":  {Data: []byte{}},
		"a/notes.md":      {Data: []byte("# notes")},
		".git/index.html": {Data: []byte("<p></p>")},
	}

	names, err := List(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/page.htm", "a/tree.msgpack", "b.html"}, names)
}
