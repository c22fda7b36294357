// Package source reads node trees from the file formats htmf understands:
// HTML pages and fragments, and msgpack snapshots.
package source

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"path"
	"strings"

	"github.com/vango-dev/htmf/internal/convert"
	"github.com/vango-dev/htmf/internal/errors"
	"github.com/vango-dev/htmf/pkg/codec"
	"github.com/vango-dev/htmf/pkg/node"
)

// Format identifies how a file is decoded.
type Format int

const (
	FormatUnknown Format = iota
	FormatHTML
	FormatSnapshot
)

// FormatOf classifies name by its extension.
func FormatOf(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".htm":
		return FormatHTML
	case ".msgpack":
		return FormatSnapshot
	default:
		return FormatUnknown
	}
}

// Supported reports whether name has an extension Parse understands.
func Supported(name string) bool {
	return FormatOf(name) != FormatUnknown
}

// Parse decodes data according to the extension of name.
func Parse(name string, data []byte) (node.Node, error) {
	switch FormatOf(name) {
	case FormatHTML:
		n, err := convert.Import(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return n, nil
	case FormatSnapshot:
		n, err := codec.Decode(data)
		switch {
		case err == nil:
			return n, nil
		case stderrors.Is(err, codec.ErrVersion):
			return nil, errors.New("H021").Wrap(err)
		default:
			return nil, errors.New("H020").Wrap(err)
		}
	default:
		return nil, errors.New("H082").WithDetail("Cannot read " + name + ": only .html, .htm, and .msgpack inputs are understood.")
	}
}

// Load reads name from fsys and decodes it with Parse.
func Load(fsys fs.FS, name string) (node.Node, error) {
	if !Supported(name) {
		return Parse(name, nil)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.New("H080").Wrap(err)
	}
	return Parse(name, data)
}

// List returns the supported files under fsys in lexical order.
func List(fsys fs.FS) ([]string, error) {
	var names []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if Supported(p) {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
