package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/desilang/toklex/compiler/internal/lexer"
	"github.com/desilang/toklex/compiler/internal/report"
	"github.com/desilang/toklex/compiler/internal/term"
)

/* ---------- diff (fresh lex vs saved report) ---------- */

func cmdDiff(args []string) int {
	// args: [--limit=N] [--verbose] <file> <report>
	var (
		verbose bool
		limit   int
		files   []string
	)
	for _, s := range args {
		switch {
		case s == "--verbose":
			verbose = true
		case strings.HasPrefix(s, "--limit="):
			n, err := strconv.Atoi(s[len("--limit="):])
			if err != nil || n < 0 {
				term.Eprintf("diff: bad --limit %q\n", s[len("--limit="):])
				return exitUsage
			}
			limit = n
		case !strings.HasPrefix(s, "-"):
			files = append(files, s)
		default:
			term.Eprintf("diff: unknown flag %s\n", s)
			return exitUsage
		}
	}
	if len(files) != 2 {
		term.Eprintln("usage: toklex diff [--limit=N] [--verbose] <file> <report.csv|report.ndjson>")
		return exitUsage
	}
	src, saved := files[0], files[1]

	toks, err := lexer.TokenizeFile(src)
	if err != nil {
		return reportLexError(src, err)
	}
	want, err := readReport(saved)
	if err != nil {
		term.Eprintf("read %s: %v\n", saved, err)
		return exitIO
	}

	rows := report.Diff(want, report.FromTokens(toks))
	bad := report.Mismatches(rows)
	if verbose {
		term.Eprintf("[diff] %s: %d tokens, %s: %d rows\n", src, len(toks), saved, len(want))
	}
	if len(bad) == 0 {
		term.Printf("reports match (%d tokens)\n", len(toks))
		return exitOK
	}
	term.Printf("%d of %d rows differ, first at index %d\n", len(bad), len(rows), bad[0].Index)
	if verbose {
		term.Printf("%s", report.FormatDiff(rows, limit))
	} else {
		term.Printf("%s", report.FormatDiff(bad, limit))
	}
	return exitIO
}

// readReport loads a saved report, choosing the reader by file extension.
func readReport(path string) ([]report.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ndjson", ".jsonl":
		return report.ParseNDJSON(f)
	default:
		return report.ReadCSV(f)
	}
}
