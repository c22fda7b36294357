package node

// frame records one ancestor of a Cursor's focus: the parent's own state,
// the siblings before and after the focus, and the next frame up. Frames
// are never modified once created, so cursors sharing a frame chain are
// independent.
type frame struct {
	kind  Kind // KindTag, KindFragment or KindDocument
	name  string
	attrs []Attr
	left  []Node
	right []Node
	up    *frame
	depth int

	// splice is set when the focus was added by Descend, so a Fragment
	// focus is flattened into the parent like Attach does. Existing
	// children reached by Child, Next or Prev keep their shape.
	splice bool
}

// rebuild reconstructs the parent node around kids.
func (f *frame) rebuild(kids []Node) Node {
	switch f.kind {
	case KindFragment:
		return Fragment{Children: kids}
	case KindDocument:
		return Document{Children: kids}
	default:
		return Tag{Name: f.name, Attrs: f.attrs, Children: kids}
	}
}

// place returns the nodes focus occupies among the parent's children.
func (f *frame) place(focus Node) []Node {
	if f.splice || focus == nil {
		return Children(focus)
	}
	return []Node{focus}
}

// Cursor is a zipper over a tree under construction. The zero Cursor is
// focused on an Empty root.
//
// All methods take and return Cursor values and never modify shared state.
// Structural operations that make no sense for the focus (descending into
// text, ascending past the root) leave the cursor unchanged.
type Cursor struct {
	focus Node
	path  *frame
}

// NewCursor returns a cursor focused on root.
func NewCursor(root Node) Cursor {
	return Cursor{focus: root}
}

// Focus returns the node currently being edited.
func (c Cursor) Focus() Node {
	if c.focus == nil {
		return Empty{}
	}
	return c.focus
}

// Depth returns the number of ancestors above the focus.
func (c Cursor) Depth() int {
	if c.path == nil {
		return 0
	}
	return c.path.depth
}

// IsRoot reports whether the focus has no ancestor.
func (c Cursor) IsRoot() bool {
	return c.path == nil
}

// Descend makes child the new focus, appended after all current children
// of the focus. If the focus cannot hold children the cursor is returned
// unchanged.
func (c Cursor) Descend(child Node) Cursor {
	f := c.enter()
	if f == nil {
		return c
	}
	f.left = ChildrenOf(c.focus)
	f.splice = true
	return Cursor{focus: child, path: f}
}

// Open descends into a new element built by El.
func (c Cursor) Open(name string, attrs ...Attr) Cursor {
	return c.Descend(El(name, attrs...))
}

// Ascend rebuilds the parent around the focus and makes it the new focus.
// A Fragment focus placed by Descend is spliced into the parent, matching
// Attach. It reports false when the cursor is already at the root.
func (c Cursor) Ascend() (Cursor, bool) {
	f := c.path
	if f == nil {
		return c, false
	}
	placed := f.place(c.focus)
	kids := make([]Node, 0, len(f.left)+len(placed)+len(f.right))
	kids = append(kids, f.left...)
	kids = append(kids, placed...)
	kids = append(kids, f.right...)
	return Cursor{focus: f.rebuild(kids), path: f.up}, true
}

// Close ascends one level, staying put at the root.
func (c Cursor) Close() Cursor {
	up, _ := c.Ascend()
	return up
}

// Finish ascends to the root and returns it.
func (c Cursor) Finish() Node {
	for {
		up, ok := c.Ascend()
		if !ok {
			return c.Focus()
		}
		c = up
	}
}

// With appends children to the focus using Attach.
func (c Cursor) With(children ...any) Cursor {
	c.focus = Attach(c.focus, children...)
	return c
}

// SetAttr appends an attribute to the focus using SetAttr.
func (c Cursor) SetAttr(name, value string) Cursor {
	c.focus = SetAttr(c.focus, name, value)
	return c
}

// Attrs appends attributes to the focus using WithAttrs.
func (c Cursor) Attrs(attrs ...Attr) Cursor {
	c.focus = WithAttrs(c.focus, attrs...)
	return c
}

// Replace swaps the focus for n, keeping its position in the tree.
func (c Cursor) Replace(n Node) Cursor {
	c.focus = n
	return c
}

// Child focuses the i-th existing child of the focus. It reports false if
// the focus has no such child.
func (c Cursor) Child(i int) (Cursor, bool) {
	kids := ChildrenOf(c.focus)
	if i < 0 || i >= len(kids) {
		return c, false
	}
	f := c.enter()
	f.left = kids[:i:i]
	f.right = kids[i+1:]
	return Cursor{focus: kids[i], path: f}, true
}

// Next moves the focus to its right sibling. It reports false at the root
// or when the focus is the last child.
func (c Cursor) Next() (Cursor, bool) {
	f := c.path
	if f == nil || len(f.right) == 0 {
		return c, false
	}
	nf := *f
	nf.left = appendNodes(f.left, f.place(c.focus)...)
	nf.right = f.right[1:]
	nf.splice = false
	return Cursor{focus: f.right[0], path: &nf}, true
}

// Prev moves the focus to its left sibling. It reports false at the root
// or when the focus is the first child.
func (c Cursor) Prev() (Cursor, bool) {
	f := c.path
	if f == nil || len(f.left) == 0 {
		return c, false
	}
	last := len(f.left) - 1
	nf := *f
	nf.left = f.left[:last:last]
	nf.right = appendNodes(f.place(c.focus), f.right...)
	nf.splice = false
	return Cursor{focus: f.left[last], path: &nf}, true
}

// enter builds a frame describing the focus as a parent, or nil if the
// focus cannot hold children. The caller fills in the sibling lists.
func (c Cursor) enter() *frame {
	f := &frame{up: c.path, depth: c.Depth() + 1}
	switch v := c.focus.(type) {
	case Tag:
		f.kind, f.name, f.attrs = KindTag, v.Name, v.Attrs
	case Fragment:
		f.kind = KindFragment
	case Document:
		f.kind = KindDocument
	default:
		return nil
	}
	return f
}
