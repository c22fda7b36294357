// Package convert turns existing HTML into node trees.
//
// Convert emits Go source that rebuilds a page with the node package, as a
// starting point for porting templates. Import builds the tree directly and
// backs the fmt and snapshot commands and the preview server.
//
//	src, err := convert.Convert(f, convert.Options{Package: "views", Func: "Login"})
//
// Both parse with golang.org/x/net/html, so malformed markup is repaired the
// way a browser would repair it rather than rejected.
package convert
