package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"go/scanner"
)

// Category names the collaborator that raised an error.
type Category string

const (
	CategoryConvert Category = "convert"
	CategoryCodec   Category = "codec"
	CategoryConfig  Category = "config"
	CategoryPreview Category = "preview"
	CategoryCLI     Category = "cli"
)

// contextRadius is the number of source lines kept on each side of a
// reported line.
const contextRadius = 2

// Location is a position in an input page or in generated source.
// Line and Column are 1-based; a zero Column means the whole line.
type Location struct {
	Name   string
	Line   int
	Column int
}

func (l *Location) String() string {
	if l == nil {
		return ""
	}
	name := l.Name
	if name == "" {
		name = "<input>"
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", name, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", name, l.Line)
}

// HtmfError is a coded error raised outside the node and render packages.
type HtmfError struct {
	// Code is the registry key, such as "H001". Empty for ad hoc errors.
	Code string

	Category Category

	// Message is the one-line summary from the registry.
	Message string

	// Detail explains this occurrence.
	Detail string

	// Location points at the offending line, if known.
	Location *Location

	// Context holds the source lines around Location, the first of which
	// is line ContextStart.
	Context      []string
	ContextStart int

	// Suggestion tells the user what to try next.
	Suggestion string

	Wrapped error
}

// Error returns "code: message", followed by the cause when there is one.
func (e *HtmfError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *HtmfError) Unwrap() error {
	return e.Wrapped
}

// WithDetail sets the explanation for this occurrence.
func (e *HtmfError) WithDetail(d string) *HtmfError {
	e.Detail = d
	return e
}

// WithSuggestion sets the hint shown below the error.
func (e *HtmfError) WithSuggestion(s string) *HtmfError {
	e.Suggestion = s
	return e
}

// Wrap records the underlying cause.
func (e *HtmfError) Wrap(err error) *HtmfError {
	e.Wrapped = err
	return e
}

// At points the error at a line and column of the named source without
// attaching any context.
func (e *HtmfError) At(name string, line, column int) *HtmfError {
	e.Location = &Location{Name: name, Line: line, Column: column}
	return e
}

// WithSource points the error at line and column of src and keeps the
// surrounding lines for display. Lines outside src are ignored.
func (e *HtmfError) WithSource(name string, src []byte, line, column int) *HtmfError {
	lines := bytes.Split(src, []byte("\n"))
	if line < 1 || line > len(lines) {
		return e
	}
	e.At(name, line, column)

	first := max(1, line-contextRadius)
	last := min(len(lines), line+contextRadius)
	e.Context = e.Context[:0]
	for _, l := range lines[first-1 : last] {
		e.Context = append(e.Context, string(bytes.TrimRight(l, "\r")))
	}
	e.ContextStart = first
	return e
}

// WithScannerError locates the first position reported by a go/scanner
// error (which go/parser and go/format return) within src, and records err
// as the cause. Errors carrying no position are only wrapped.
func (e *HtmfError) WithScannerError(name string, src []byte, err error) *HtmfError {
	e.Wrap(err)

	var list scanner.ErrorList
	if stderrors.As(err, &list) && len(list) > 0 {
		return e.WithSource(name, src, list[0].Pos.Line, list[0].Pos.Column)
	}
	var single *scanner.Error
	if stderrors.As(err, &single) {
		return e.WithSource(name, src, single.Pos.Line, single.Pos.Column)
	}
	return e
}

// New returns an error filled in from the registry entry for code.
// Unregistered codes yield a generic message.
func New(code string) *HtmfError {
	t, ok := registry[code]
	if !ok {
		return &HtmfError{Code: code, Message: "Unknown error"}
	}
	return &HtmfError{
		Code:     code,
		Category: t.Category,
		Message:  t.Message,
		Detail:   t.Detail,
	}
}

// Newf returns an uncoded error with a formatted message.
func Newf(category Category, format string, args ...any) *HtmfError {
	return &HtmfError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// CodeOf returns the code of the first HtmfError in err's chain, or "" if
// there is none.
func CodeOf(err error) string {
	var he *HtmfError
	if stderrors.As(err, &he) {
		return he.Code
	}
	return ""
}
