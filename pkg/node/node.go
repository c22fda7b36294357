package node

// Kind is the node type discriminator.
type Kind uint8

const (
	KindEmpty    Kind = iota // Nothing
	KindTag                  // <div>...</div>
	KindVoidTag              // <br/>
	KindFragment             // Grouping without wrapper
	KindDocument             // <!doctype html> root
	KindText                 // Escaped text
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindTag:
		return "Tag"
	case KindVoidTag:
		return "VoidTag"
	case KindFragment:
		return "Fragment"
	case KindDocument:
		return "Document"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is one point in a document tree. The set of implementations is
// closed; a nil Node is treated as Empty.
type Node interface {
	Kind() Kind
	isNode()
}

// Attr is a single attribute. Names are not required to be unique within
// an element and are rendered in the order they were added.
type Attr struct {
	Name  string
	Value string
}

// Tag is an element that may hold children.
type Tag struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

// VoidTag is an element that can never hold children.
type VoidTag struct {
	Name  string
	Attrs []Attr
}

// Fragment groups children without wrapping markup.
type Fragment struct {
	Children []Node
}

// Document is the root of a full page. Nesting a Document below another
// node is a caller error: it renders its doctype inline.
type Document struct {
	Children []Node
}

// Text is owned text content.
type Text struct {
	Content string
}

// Empty renders to nothing.
type Empty struct{}

func (Tag) Kind() Kind      { return KindTag }
func (VoidTag) Kind() Kind  { return KindVoidTag }
func (Fragment) Kind() Kind { return KindFragment }
func (Document) Kind() Kind { return KindDocument }
func (Text) Kind() Kind     { return KindText }
func (Empty) Kind() Kind    { return KindEmpty }

func (Tag) isNode()      {}
func (VoidTag) isNode()  {}
func (Fragment) isNode() {}
func (Document) isNode() {}
func (Text) isNode()     {}
func (Empty) isNode()    {}

// KindOf returns the kind of n, reporting KindEmpty for a nil node.
func KindOf(n Node) Kind {
	if n == nil {
		return KindEmpty
	}
	return n.Kind()
}

// ChildrenOf returns the children of n, or nil if n cannot hold children.
// The returned slice must not be modified.
func ChildrenOf(n Node) []Node {
	switch v := n.(type) {
	case Tag:
		return v.Children
	case Fragment:
		return v.Children
	case Document:
		return v.Children
	default:
		return nil
	}
}

// AttrsOf returns the attributes of n, or nil if n cannot hold attributes.
// The returned slice must not be modified.
func AttrsOf(n Node) []Attr {
	switch v := n.(type) {
	case Tag:
		return v.Attrs
	case VoidTag:
		return v.Attrs
	default:
		return nil
	}
}

// CanHaveChildren reports whether children attached to n are kept.
func CanHaveChildren(n Node) bool {
	switch n.(type) {
	case Tag, Fragment, Document:
		return true
	default:
		return false
	}
}

// IsEmpty reports whether n is Empty or nil.
func IsEmpty(n Node) bool {
	return KindOf(n) == KindEmpty
}
