package main

import "github.com/desilang/toklex/compiler/internal/term"

func usage() {
	term.Eprintln("toklex — token classifier for the toy imperative language")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  toklex <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                                   Print version")
	term.Eprintln("  help                                      Show this help")
	term.Eprintln("  lex [--out=PATH] [--format=table|csv|ndjson] [--no-file] [--verbose] <file>")
	term.Eprintln("                                            Print the token table and write the CSV report")
	term.Eprintln("  diff [--limit=N] [--verbose] <file> <report>")
	term.Eprintln("                                            Compare tokens of <file> with a saved .csv or .ndjson report")
	term.Eprintln("  repl                                      Lex lines interactively")
	term.Eprintln("")
	term.Eprintln("Notes:")
	term.Eprintln("  - Flags may appear before or after the file.")
	term.Eprintln("  - The CSV report goes to output.txt unless --out or --no-file is given.")
	term.Eprintln("")
	term.Eprintln("Exit status:")
	term.Eprintln("  0 ok, 1 I/O error or reports differ, 2 usage, 3 invalid character")
}
