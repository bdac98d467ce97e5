// Package report renders a token list for people (table) and for tools
// (CSV, NDJSON), reads saved reports back, and compares two reports.
// Nothing here mutates the tokens it is given.
package report

import (
	"fmt"

	"github.com/desilang/toklex/compiler/internal/diag"
	"github.com/desilang/toklex/compiler/internal/lexer"
)

// Record is one report row. Line and Col are zero when the source format
// does not carry positions (CSV).
type Record struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
}

// FromTokens converts lexer tokens into report records.
func FromTokens(toks []lexer.Token) []Record {
	out := make([]Record, len(toks))
	for i, t := range toks {
		out[i] = Record{Kind: t.Kind.String(), Text: t.Lex, Line: t.Line, Col: t.Col}
	}
	return out
}

func checkKind(kind string, row int) error {
	if _, ok := lexer.ParseKind(kind); ok {
		return nil
	}
	ce := diag.MustLookup("report", "unknown_kind", "TRE0002", "unknown token kind")
	return diag.New(ce, diag.Span{Start: diag.Pos{Line: row, Col: 1}}, fmt.Sprintf("unknown token kind %q", kind))
}
