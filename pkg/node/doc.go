// Package node provides the document tree model for htmf.
//
// A tree is built from immutable Node values. Each variant is a plain value
// type, so the kind of a node is known statically and a void element can
// never carry children:
//
//	Tag       <div>, <p>, ... with attributes and children
//	VoidTag   <br/>, <img/>, ... with attributes only
//	Fragment  a group of children with no wrapping markup
//	Document  the root of a full page, rendered behind a doctype
//	Text      owned text, escaped on output
//	Empty     nothing; used for optional content
//
// # Combinators
//
// Trees are assembled with a handful of generic functions:
//
//	page := Attach(El("div", Class("card"), ID("main")),
//	    Attach(El("h1"), "Title"),
//	    Attach(El("p"), "Content"),
//	    If(admin, El("hr")),
//	)
//
// El looks the tag up in a static table to decide whether it is void.
// Attach appends children to a Tag, Fragment or Document and returns any
// other node unchanged. Attach never modifies its input; the result owns
// fresh child and attribute slices.
//
// # Cursor
//
// Cursor is a zipper over a tree under construction. It lets a caller open
// children top-down and return to the parent later, while the value at every
// step stays an exclusively owned tree:
//
//	page := NewCursor(El("div")).
//	    Open("span").With("one").Close().
//	    Open("p").With("two").
//	    Finish()
//
// Anything built with nested Attach calls can be built with a Cursor, and
// the two results are Equal.
package node
