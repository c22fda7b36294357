package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiGray   = "\033[90m"
)

// Printer lays out errors for a terminal.
type Printer struct {
	// Color enables ANSI escapes.
	Color bool

	// Width is the column at which details are wrapped (default 72).
	Width int
}

// StderrPrinter returns the printer PrintError uses: colored unless the
// NO_COLOR environment variable is set.
func StderrPrinter() Printer {
	_, noColor := os.LookupEnv("NO_COLOR")
	return Printer{Color: !noColor}
}

func (p Printer) paint(code, s string) string {
	if !p.Color {
		return s
	}
	return code + s + ansiReset
}

// Fprint writes err to w. HtmfErrors get the full layout; any other error
// gets a single line.
func (p Printer) Fprint(w io.Writer, err error) error {
	var he *HtmfError
	if !stderrors.As(err, &he) {
		_, werr := fmt.Fprintf(w, "\n%s %s\n\n", p.paint(ansiBold+ansiRed, "ERROR:"), err)
		return werr
	}
	_, werr := io.WriteString(w, p.Sprint(he))
	return werr
}

// Sprint returns the full layout of e: header, source excerpt with a caret
// under the column, detail, cause, and hint.
func (p Printer) Sprint(e *HtmfError) string {
	width := p.Width
	if width <= 0 {
		width = 72
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(p.paint(ansiBold+ansiRed, "ERROR"))
	if e.Code != "" {
		b.WriteString(" " + p.paint(ansiBold, e.Code))
	}
	b.WriteString(": " + e.Message + "\n\n")

	if e.Location != nil {
		b.WriteString("  " + p.paint(ansiCyan, e.Location.String()) + "\n")
		p.excerpt(&b, e)
		b.WriteString("\n")
	}

	for _, line := range wrapText(e.Detail, width) {
		b.WriteString("  " + line + "\n")
	}
	if e.Detail != "" {
		b.WriteString("\n")
	}

	if e.Wrapped != nil {
		b.WriteString("  " + p.paint(ansiYellow, "Cause: ") + e.Wrapped.Error() + "\n\n")
	}
	if e.Suggestion != "" {
		b.WriteString("  " + p.paint(ansiCyan, "Hint: ") + e.Suggestion + "\n\n")
	}
	return b.String()
}

func (p Printer) excerpt(b *strings.Builder, e *HtmfError) {
	if len(e.Context) == 0 {
		return
	}
	b.WriteString("\n")
	for i, line := range e.Context {
		n := e.ContextStart + i
		gutter := p.paint(ansiGray, fmt.Sprintf("%5d | ", n))
		if n != e.Location.Line {
			b.WriteString("  " + gutter + line + "\n")
			continue
		}
		b.WriteString(p.paint(ansiRed, "> ") + gutter + line + "\n")
		if e.Location.Column > 0 {
			pad := strings.Repeat(" ", e.Location.Column-1)
			b.WriteString("  " + p.paint(ansiGray, "      | ") + pad + p.paint(ansiRed, "^") + "\n")
		}
	}
}

// Format returns e laid out for a color terminal.
func (e *HtmfError) Format() string {
	return Printer{Color: true}.Sprint(e)
}

// FormatCompact returns e on one line, prefixed by its location if known.
func (e *HtmfError) FormatCompact() string {
	s := e.Message
	if e.Code != "" {
		s = e.Code + ": " + s
	}
	if e.Location != nil {
		s = e.Location.String() + ": " + s
	}
	return s
}

type jsonLocation struct {
	Name   string `json:"name,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

type jsonError struct {
	Code       string        `json:"code,omitempty"`
	Category   Category      `json:"category"`
	Message    string        `json:"message"`
	Detail     string        `json:"detail,omitempty"`
	Location   *jsonLocation `json:"location,omitempty"`
	Cause      string        `json:"cause,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
}

// FormatJSON returns e as a single JSON object.
func (e *HtmfError) FormatJSON() string {
	out := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
	}
	if e.Location != nil {
		out.Location = &jsonLocation{Name: e.Location.Name, Line: e.Location.Line, Column: e.Location.Column}
	}
	if e.Wrapped != nil {
		out.Cause = e.Wrapped.Error()
	}
	data, _ := json.Marshal(out)
	return string(data)
}

// wrapText breaks text into lines of at most width bytes, splitting only
// between words. A word longer than width gets a line of its own.
func wrapText(text string, width int) []string {
	var (
		lines []string
		line  []string
		n     int
	)
	for _, word := range strings.Fields(text) {
		if len(line) > 0 && n+1+len(word) > width {
			lines = append(lines, strings.Join(line, " "))
			line, n = line[:0], 0
		}
		if len(line) > 0 {
			n++
		}
		line = append(line, word)
		n += len(word)
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return lines
}

// PrintError writes err to standard error with StderrPrinter.
func PrintError(err error) {
	StderrPrinter().Fprint(os.Stderr, err)
}
