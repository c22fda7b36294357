// Package errors provides the coded errors returned by the htmf
// collaborators: the HTML converter, the snapshot codec, configuration
// loading, the preview server, and the CLI. The node and render packages
// never fail and do not use it.
//
// Codes are grouped by collaborator:
//   - H001-H019: converter
//   - H020-H039: snapshot codec
//   - H040-H059: configuration
//   - H060-H079: preview server
//   - H080-H099: CLI
//
// Errors are built from the registry and decorated as they travel up:
//
//	data, err := os.ReadFile(name)
//	if err != nil {
//	    return errors.New("H080").Wrap(err)
//	}
//
// A Printer lays them out for a terminal, with a source excerpt when the
// error carries a location:
//
//	ERROR H002: Generated source rejected by gofmt
//
//	  generated.go:4:9
//
//	      3 | func Page() h.Node {
//	  >   4 | 	return h.El("div",
//	        |         ^
//
//	  Cause: generated.go:4:9: expected operand
package errors
