// Package codec stores finished node trees as compact msgpack snapshots.
//
// A snapshot is a flat, pre-order list of records, each carrying its own
// child count. Both directions walk the list with an explicit stack, so
// snapshot depth is not limited by the goroutine stack.
package codec

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vango-dev/htmf/pkg/node"
)

// Version is the snapshot format version written by Encode.
const Version = 1

// ErrCorrupt is returned for snapshots that do not describe a single
// well-formed tree.
var ErrCorrupt = errors.New("codec: corrupt snapshot")

// ErrVersion is returned for snapshots written with another format version.
var ErrVersion = errors.New("codec: unsupported snapshot")

type attr struct {
	_msgpack struct{} `msgpack:",as_array"`
	Name     string
	Value    string
}

type record struct {
	Kind     node.Kind `msgpack:"k"`
	Name     string    `msgpack:"n,omitempty"`
	Text     string    `msgpack:"t,omitempty"`
	Attrs    []attr    `msgpack:"a,omitempty"`
	Children int       `msgpack:"c,omitempty"`
}

type snapshot struct {
	Version int      `msgpack:"v"`
	Nodes   []record `msgpack:"nodes"`
}

// Encode serializes the tree rooted at n. Empty nodes are kept so the
// decoded tree is structurally equal to n.
func Encode(n node.Node) ([]byte, error) {
	snap := snapshot{Version: Version}
	stack := []node.Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		kids := node.ChildrenOf(top)
		rec := record{Kind: node.KindOf(top), Children: len(kids)}
		switch v := top.(type) {
		case node.Tag:
			rec.Name, rec.Attrs = v.Name, packAttrs(v.Attrs)
		case node.VoidTag:
			rec.Name, rec.Attrs = v.Name, packAttrs(v.Attrs)
		case node.Text:
			rec.Text = v.Content
		}
		snap.Nodes = append(snap.Nodes, rec)

		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return msgpack.Marshal(&snap)
}

// pending is a parent whose children are still being decoded.
type pending struct {
	rec  record
	kids []node.Node
}

// Decode rebuilds a tree written by Encode.
func Decode(data []byte) (node.Node, error) {
	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if snap.Version != Version {
		return nil, fmt.Errorf("%w version %d", ErrVersion, snap.Version)
	}
	if len(snap.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrCorrupt)
	}

	var (
		root  node.Node
		stack []*pending
	)
	for i, rec := range snap.Nodes {
		if root != nil {
			return nil, fmt.Errorf("%w: trailing record %d", ErrCorrupt, i)
		}
		if rec.Children < 0 {
			return nil, fmt.Errorf("%w: record %d has negative child count", ErrCorrupt, i)
		}
		if rest := len(snap.Nodes) - i - 1; rec.Children > rest {
			return nil, fmt.Errorf("%w: record %d claims %d children but %d records follow", ErrCorrupt, i, rec.Children, rest)
		}

		var done node.Node
		switch rec.Kind {
		case node.KindTag, node.KindFragment, node.KindDocument:
			if rec.Children > 0 {
				stack = append(stack, &pending{rec: rec, kids: make([]node.Node, 0, rec.Children)})
				continue
			}
			done = build(rec, nil)
		case node.KindVoidTag, node.KindText, node.KindEmpty:
			if rec.Children != 0 {
				return nil, fmt.Errorf("%w: %s record %d has children", ErrCorrupt, rec.Kind, i)
			}
			done = build(rec, nil)
		default:
			return nil, fmt.Errorf("%w: record %d has unknown kind %d", ErrCorrupt, i, rec.Kind)
		}

		// Hand the finished node to its parent, closing every parent that
		// becomes complete.
		for done != nil {
			if len(stack) == 0 {
				root, done = done, nil
				break
			}
			top := stack[len(stack)-1]
			top.kids = append(top.kids, done)
			done = nil
			if len(top.kids) == top.rec.Children {
				stack = stack[:len(stack)-1]
				done = build(top.rec, top.kids)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: truncated", ErrCorrupt)
	}
	return root, nil
}

func build(rec record, kids []node.Node) node.Node {
	switch rec.Kind {
	case node.KindTag:
		return node.Tag{Name: rec.Name, Attrs: unpackAttrs(rec.Attrs), Children: kids}
	case node.KindVoidTag:
		return node.VoidTag{Name: rec.Name, Attrs: unpackAttrs(rec.Attrs)}
	case node.KindFragment:
		return node.Fragment{Children: kids}
	case node.KindDocument:
		return node.Document{Children: kids}
	case node.KindText:
		return node.Text{Content: rec.Text}
	default:
		return node.Empty{}
	}
}

func packAttrs(attrs []node.Attr) []attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]attr, len(attrs))
	for i, a := range attrs {
		out[i] = attr{Name: a.Name, Value: a.Value}
	}
	return out
}

func unpackAttrs(attrs []attr) []node.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]node.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = node.Attr{Name: a.Name, Value: a.Value}
	}
	return out
}
