package report

import (
	"strings"

	"github.com/desilang/toklex/compiler/internal/term"
)

// DiffRow is one index-aligned pair of records. A side past the end of its
// report is the zero Record.
type DiffRow struct {
	Index int
	Want  Record
	Got   Record
}

// Same reports whether both sides carry the same kind and text. Positions
// are ignored since CSV reports do not store them.
func (r DiffRow) Same() bool { return r.Want.Kind == r.Got.Kind && r.Want.Text == r.Got.Text }

// Diff aligns want and got by index; the result has max(len(want), len(got)) rows.
func Diff(want, got []Record) []DiffRow {
	n := max(len(want), len(got))
	rows := make([]DiffRow, n)
	for i := range rows {
		rows[i].Index = i
		if i < len(want) {
			rows[i].Want = want[i]
		}
		if i < len(got) {
			rows[i].Got = got[i]
		}
	}
	return rows
}

// Mismatches returns the rows whose sides differ.
func Mismatches(rows []DiffRow) []DiffRow {
	var out []DiffRow
	for _, r := range rows {
		if !r.Same() {
			out = append(out, r)
		}
	}
	return out
}

// FormatDiff pretty prints a side-by-side table, marking differing rows
// with '!'. If limit>0, only the first limit rows are printed.
func FormatDiff(rows []DiffRow, limit int) string {
	var b strings.Builder

	term.Bprintf(&b, "  %-6s | %-12s | %-24s || %-12s | %-24s\n", "idx", "want KIND", "want TEXT", "got KIND", "got TEXT")
	term.Bprintf(&b, "%s\n", strings.Repeat("-", 2+6+3+12+3+24+4+12+3+24))

	n := len(rows)
	if limit > 0 && limit < n {
		n = limit
	}
	for _, r := range rows[:n] {
		mark := " "
		if !r.Same() {
			mark = "!"
		}
		term.Bprintf(&b, "%s %-6d | %-12s | %-24s || %-12s | %-24s\n",
			mark, r.Index,
			label(r.Want.Kind), "'"+term.Short(r.Want.Text)+"'",
			label(r.Got.Kind), "'"+term.Short(r.Got.Text)+"'")
	}
	return b.String()
}

func label(kind string) string {
	if kind == "" {
		return "—"
	}
	return kind
}
