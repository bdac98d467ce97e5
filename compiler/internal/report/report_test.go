package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/desilang/toklex/compiler/internal/diag"
	"github.com/desilang/toklex/compiler/internal/lexer"
)

func mustLex(t *testing.T, src string) []lexer.Token {
	t.Helper()
	toks, err := lexer.TokenizeString(src)
	if err != nil {
		t.Fatalf("lex %q: %v", src, err)
	}
	return toks
}

func TestWriteTable(t *testing.T) {
	var b bytes.Buffer
	WriteTable(&b, mustLex(t, "if x1 <<< 2.5"))
	want := "" +
		"token       | lexeme\n" +
		"------------|------------\n" +
		"keyword     | if\n" +
		"identifier  | x1\n" +
		"operator    | <<<\n" +
		"real        | 2.5\n"
	if b.String() != want {
		t.Fatalf("table mismatch:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteTableEmpty(t *testing.T) {
	var b bytes.Buffer
	WriteTable(&b, nil)
	if got := strings.Count(b.String(), "\n"); got != 2 {
		t.Fatalf("empty table should only have header lines, got %q", b.String())
	}
}

func TestCSVRoundTrip(t *testing.T) {
	toks := mustLex(t, "func f(a,b){return a>=b;}")
	var b bytes.Buffer
	if err := WriteCSV(&b, toks); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if lines[0] != "token,lexeme" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "keyword,func" || lines[5] != "separator,\",\"" {
		t.Fatalf("unexpected rows: %q", lines)
	}
	if len(lines) != len(toks)+1 {
		t.Fatalf("got %d lines for %d tokens", len(lines), len(toks))
	}

	recs, err := ReadCSV(&b)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if rows := Mismatches(Diff(FromTokens(toks), recs)); len(rows) != 0 {
		t.Fatalf("round trip differs:\n%s", FormatDiff(rows, 0))
	}
}

func TestReadCSVRejectsBadInput(t *testing.T) {
	var d diag.Diagnostic

	_, err := ReadCSV(strings.NewReader("kind,text\nint,1\n"))
	if !errors.As(err, &d) || d.Code != "TRE0001" {
		t.Fatalf("expected bad header diagnostic, got %v", err)
	}
	_, err = ReadCSV(strings.NewReader(""))
	if !errors.As(err, &d) || d.Code != "TRE0001" {
		t.Fatalf("expected bad header diagnostic for empty input, got %v", err)
	}
	recs, err := ReadCSV(strings.NewReader("\ufefftoken,lexeme\nint,1\nstring,\"x\"\n"))
	if !errors.As(err, &d) || d.Code != "TRE0002" || d.Span.Start.Line != 3 {
		t.Fatalf("expected unknown kind on row 3, got %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("rows before the bad one should be returned, got %v", recs)
	}
}

func TestNDJSON(t *testing.T) {
	toks := mustLex(t, "x <= 10\ny")
	var b bytes.Buffer
	if err := WriteNDJSON(&b, toks); err != nil {
		t.Fatalf("WriteNDJSON: %v", err)
	}
	first := strings.SplitN(b.String(), "\n", 2)[0]
	if first != `{"kind":"identifier","text":"x","line":1,"col":1}` {
		t.Fatalf("first line = %s", first)
	}
	recs, err := ParseNDJSON(&b)
	if err != nil {
		t.Fatalf("ParseNDJSON: %v", err)
	}
	if len(recs) != 4 || recs[1].Text != "<=" || recs[3].Line != 2 {
		t.Fatalf("unexpected records: %#v", recs)
	}
}

func TestParseNDJSONSkipsMalformed(t *testing.T) {
	raw := "{\"kind\":\"int\",\"text\":\"1\"}\nnot json\n\n{\"kind\":\"separator\",\"text\":\";\"}\n"
	recs, err := ParseNDJSON(strings.NewReader(raw))
	if err == nil || !strings.Contains(err.Error(), "L2: not json") {
		t.Fatalf("expected malformed line summary, got %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
}

func TestDiff(t *testing.T) {
	want := []Record{{Kind: "int", Text: "1"}, {Kind: "operator", Text: "+"}}
	got := []Record{{Kind: "int", Text: "1", Line: 1, Col: 1}, {Kind: "operator", Text: "+="}, {Kind: "int", Text: "2"}}
	rows := Diff(want, got)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if !rows[0].Same() {
		t.Fatalf("positions must not matter: %#v", rows[0])
	}
	bad := Mismatches(rows)
	if len(bad) != 2 || bad[0].Index != 1 || bad[1].Want.Kind != "" {
		t.Fatalf("unexpected mismatches: %#v", bad)
	}
	out := FormatDiff(rows, 2)
	if strings.Count(out, "\n") != 4 || !strings.Contains(out, "! 1") {
		t.Fatalf("unexpected FormatDiff:\n%s", out)
	}
}
