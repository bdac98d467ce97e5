package main

import (
	"os"

	"github.com/desilang/toklex/compiler/internal/term"
	"github.com/desilang/toklex/compiler/internal/version"
)

// Exit statuses.
const (
	exitOK    = 0
	exitIO    = 1 // unreadable input, unwritable report, reports differ
	exitUsage = 2
	exitLex   = 3 // invalid character in the source
)

/* ---------- main ---------- */

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		usage()
		return exitUsage
	}
	switch args[0] {
	case "version", "--version", "-v":
		term.Printf("%s\n", version.String())
		return exitOK
	case "help", "--help", "-h":
		usage()
		return exitOK
	case "lex":
		return cmdLex(args[1:])
	case "diff":
		return cmdDiff(args[1:])
	case "repl":
		return cmdRepl(args[1:])
	default:
		term.Eprintf("unknown command: %s\n\n", args[0])
		usage()
		return exitUsage
	}
}
