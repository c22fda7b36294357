package node

import (
	"fmt"
	"slices"
)

// NewTag creates an element that may hold children.
func NewTag(name string, attrs ...Attr) Node {
	return Tag{Name: name, Attrs: cloneAttrs(attrs)}
}

// NewVoidTag creates an element that can never hold children.
func NewVoidTag(name string, attrs ...Attr) Node {
	return VoidTag{Name: name, Attrs: cloneAttrs(attrs)}
}

// El creates an element by name. Names listed as void in the tag table
// produce a VoidTag; everything else, including unknown names, a Tag.
func El(name string, attrs ...Attr) Node {
	if IsVoidElement(name) {
		return NewVoidTag(name, attrs...)
	}
	return NewTag(name, attrs...)
}

// NewText creates a text node.
func NewText(content string) Node {
	return Text{Content: content}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) Node {
	return Text{Content: fmt.Sprintf(format, args...)}
}

// NewFragment groups children without a wrapper element.
func NewFragment(children ...any) Node {
	return Fragment{Children: Children(children...)}
}

// NewDocument creates a document root holding children.
func NewDocument(children ...any) Node {
	return Document{Children: Children(children...)}
}

// Nothing returns the Empty node.
func Nothing() Node {
	return Empty{}
}

// Attach appends children to n if n can hold children and returns the
// result. Text, VoidTag and Empty nodes are returned unchanged.
func Attach(n Node, children ...any) Node {
	if !CanHaveChildren(n) {
		return n
	}
	kids := Children(children...)
	if len(kids) == 0 {
		return n
	}
	return replaceChildren(n, appendNodes(ChildrenOf(n), kids...))
}

// SetAttr appends one attribute to a Tag or VoidTag. Other nodes are
// returned unchanged.
func SetAttr(n Node, name, value string) Node {
	return WithAttrs(n, Attr{Name: name, Value: value})
}

// WithAttrs appends attributes to a Tag or VoidTag in order. Other nodes
// are returned unchanged.
func WithAttrs(n Node, attrs ...Attr) Node {
	if len(attrs) == 0 {
		return n
	}
	switch v := n.(type) {
	case Tag:
		v.Attrs = append(slices.Clip(v.Attrs), attrs...)
		return v
	case VoidTag:
		v.Attrs = append(slices.Clip(v.Attrs), attrs...)
		return v
	default:
		return n
	}
}

// Children normalizes its arguments into an ordered child list.
//
//	nil            nothing
//	Fragment       its children, spliced in place
//	Node           itself (Empty included)
//	string         Text
//	[]Node, []any  each element, normalized
//	[]string       one Text per element
//	fmt.Stringer   Text of String()
//	Attr, []Attr   ignored; attributes are not children
//	other          Text of fmt.Sprint
func Children(items ...any) []Node {
	var out []Node
	for _, item := range items {
		out = appendChild(out, item)
	}
	return out
}

func appendChild(out []Node, item any) []Node {
	switch v := item.(type) {
	case nil:
		return out
	case Fragment:
		for _, c := range v.Children {
			out = appendChild(out, c)
		}
		return out
	case Node:
		return append(out, v)
	case string:
		return append(out, Text{Content: v})
	case []Node:
		for _, c := range v {
			out = appendChild(out, c)
		}
		return out
	case []string:
		for _, s := range v {
			out = append(out, Text{Content: s})
		}
		return out
	case []any:
		for _, c := range v {
			out = appendChild(out, c)
		}
		return out
	case Attr, []Attr:
		return out
	case fmt.Stringer:
		return append(out, Text{Content: v.String()})
	default:
		return append(out, Text{Content: fmt.Sprint(v)})
	}
}

// replaceChildren returns a copy of n holding kids. n must be able to hold
// children.
func replaceChildren(n Node, kids []Node) Node {
	switch v := n.(type) {
	case Tag:
		v.Children = kids
		return v
	case Fragment:
		v.Children = kids
		return v
	case Document:
		v.Children = kids
		return v
	default:
		return n
	}
}

// appendNodes appends to a copy of base so the caller's backing array is
// never shared with the result.
func appendNodes(base []Node, extra ...Node) []Node {
	out := make([]Node, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

func cloneAttrs(attrs []Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	return slices.Clone(attrs)
}

// If returns n if cond is true, Empty otherwise.
func If(cond bool, n Node) Node {
	if cond {
		return n
	}
	return Empty{}
}

// IfElse returns a if cond is true, b otherwise.
func IfElse(cond bool, a, b Node) Node {
	if cond {
		return a
	}
	return b
}

// When is like If but only calls fn when cond is true.
func When(cond bool, fn func() Node) Node {
	if cond {
		return fn()
	}
	return Empty{}
}

// Map renders each item with fn and groups the results in a Fragment.
func Map[T any](items []T, fn func(T) Node) Node {
	kids := make([]Node, 0, len(items))
	for _, item := range items {
		kids = append(kids, fn(item))
	}
	return Fragment{Children: Children(kids)}
}
