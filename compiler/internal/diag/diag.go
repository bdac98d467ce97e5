package diag

import (
	"fmt"
	"strings"

	"github.com/desilang/toklex/compiler/internal/term"
)

// Pos marks a 1-based line/column location in a file.
type Pos struct{ Line, Col int }

// Span marks a half-open range [Start, End) within a file.
type Span struct {
	Start Pos
	End   Pos
}

// Diagnostic is a message with an optional span and catalog code.
type Diagnostic struct {
	Code string
	Span Span
	Msg  string
	Help string
}

// New builds a diagnostic for a catalog entry. Msg defaults to the entry's
// title when empty.
func New(ce CodeEntry, span Span, msg string) Diagnostic {
	if msg == "" {
		msg = ce.Title
	}
	return Diagnostic{Code: ce.ID, Span: span, Msg: msg, Help: ce.Help}
}

func (d Diagnostic) Error() string {
	if d.Span.Start.Line == 0 {
		return d.Msg
	}
	return fmt.Sprintf("%d:%d: %s", d.Span.Start.Line, d.Span.Start.Col, d.Msg)
}

// Render formats d for the terminal:
//
//	file:3:7: error[TLE0001]: invalid character: @
//	  help: ...
func (d Diagnostic) Render(file string) string {
	var b strings.Builder
	if file != "" {
		term.Bprintf(&b, "%s:", file)
	}
	if d.Span.Start.Line > 0 {
		term.Bprintf(&b, "%d:%d:", d.Span.Start.Line, d.Span.Start.Col)
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	if d.Code != "" {
		term.Bprintf(&b, "error[%s]: %s\n", d.Code, d.Msg)
	} else {
		term.Bprintf(&b, "error: %s\n", d.Msg)
	}
	if d.Help != "" {
		term.Bprintf(&b, "  help: %s\n", d.Help)
	}
	return b.String()
}
