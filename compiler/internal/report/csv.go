package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/desilang/toklex/compiler/internal/diag"
	"github.com/desilang/toklex/compiler/internal/lexer"
)

var csvHeader = []string{"token", "lexeme"}

// WriteCSV writes the header row token,lexeme followed by one row per token.
func WriteCSV(w io.Writer, toks []lexer.Token) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range toks {
		if err := cw.Write([]string{t.Kind.String(), t.Lex}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a report written by WriteCSV. The header row is required; a
// leading UTF-8 BOM is tolerated.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, badHeader("empty report")
		}
		return nil, err
	}
	head[0] = strings.TrimPrefix(head[0], "\ufeff")
	if head[0] != csvHeader[0] || head[1] != csvHeader[1] {
		return nil, badHeader(fmt.Sprintf("got %q, want %q", strings.Join(head, ","), strings.Join(csvHeader, ",")))
	}

	var out []Record
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if err := checkKind(rec[0], row); err != nil {
			return out, err
		}
		out = append(out, Record{Kind: rec[0], Text: rec[1]})
	}
}

func badHeader(detail string) error {
	ce := diag.MustLookup("report", "bad_header", "TRE0001", "unexpected report header")
	return diag.New(ce, diag.Span{Start: diag.Pos{Line: 1, Col: 1}}, ce.Title+": "+detail)
}
