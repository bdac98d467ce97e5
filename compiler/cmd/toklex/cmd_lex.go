package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/desilang/toklex/compiler/internal/lexer"
	"github.com/desilang/toklex/compiler/internal/report"
	"github.com/desilang/toklex/compiler/internal/term"
)

/* ---------- lex (flags anywhere) ---------- */

const defaultOut = "output.txt"

type lexArgs struct {
	out     string
	format  string
	noFile  bool
	verbose bool
	file    string
}

func validFormat(f string) bool {
	switch f {
	case "table", "csv", "ndjson":
		return true
	}
	return false
}

func parseLexArgs(argv []string) (lexArgs, error) {
	a := lexArgs{out: defaultOut, format: "table"}
	for i := 0; i < len(argv); i++ {
		s := argv[i]
		switch {
		case strings.HasPrefix(s, "--out="):
			a.out = s[len("--out="):]
		case s == "--out":
			if i+1 >= len(argv) {
				return a, flag.ErrHelp
			}
			i++
			a.out = argv[i]
		case strings.HasPrefix(s, "--format="):
			a.format = s[len("--format="):]
		case s == "--format":
			if i+1 >= len(argv) {
				return a, flag.ErrHelp
			}
			i++
			a.format = argv[i]
		case s == "--no-file":
			a.noFile = true
		case s == "--verbose":
			a.verbose = true
		case !strings.HasPrefix(s, "-") && a.file == "":
			a.file = s
		default:
			return a, fmt.Errorf("unexpected argument %q", s)
		}
	}
	if a.file == "" {
		return a, flag.ErrHelp
	}
	if !validFormat(a.format) {
		return a, fmt.Errorf("unknown format %q (want table, csv or ndjson)", a.format)
	}
	if a.out == "" && !a.noFile {
		return a, fmt.Errorf("--out needs a path")
	}
	return a, nil
}

func cmdLex(argv []string) int {
	a, err := parseLexArgs(argv)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			term.Eprintf("lex: %v\n", err)
		}
		term.Eprintln("usage: toklex lex [--out=PATH] [--format=table|csv|ndjson] [--no-file] [--verbose] <file>")
		return exitUsage
	}

	toks, err := lexer.TokenizeFile(a.file)
	if err != nil {
		return reportLexError(a.file, err)
	}
	if a.verbose {
		term.Eprintf("[lex] %s: %d tokens\n", a.file, len(toks))
	}

	if err := render(term.Out, a.format, toks); err != nil {
		term.Eprintf("write stdout: %v\n", err)
		return exitIO
	}
	if a.noFile {
		return exitOK
	}
	if err := writeCSVFile(a.out, toks); err != nil {
		term.Eprintf("write %s: %v\n", a.out, err)
		return exitIO
	}
	if a.verbose {
		term.Eprintf("[lex] wrote %s\n", a.out)
	}
	return exitOK
}

// render writes toks to w in the given output format.
func render(w io.Writer, format string, toks []lexer.Token) error {
	switch format {
	case "csv":
		return report.WriteCSV(w, toks)
	case "ndjson":
		return report.WriteNDJSON(w, toks)
	default:
		report.WriteTable(w, toks)
		return nil
	}
}

func writeCSVFile(path string, toks []lexer.Token) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return report.WriteCSV(f, toks)
}

// reportLexError prints err and returns the matching exit status. Invalid
// characters and read failures get a full diagnostic; anything else (the
// file could not be opened) is a plain I/O failure.
func reportLexError(file string, err error) int {
	var ice *lexer.InvalidCharError
	if errors.As(err, &ice) {
		term.Eprintf("%s", ice.Diagnostic().Render(file))
		return exitLex
	}
	var re *lexer.ReadError
	if errors.As(err, &re) {
		term.Eprintf("%s", re.Diagnostic().Render(file))
		return exitIO
	}
	term.Eprintf("read %s: %v\n", file, err)
	return exitIO
}
