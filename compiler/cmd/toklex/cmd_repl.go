package main

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/desilang/toklex/compiler/internal/lexer"
	"github.com/desilang/toklex/compiler/internal/term"
	"github.com/desilang/toklex/compiler/internal/version"
)

/* ---------- repl ---------- */

const (
	historyFile = ".toklex_history"
	prompt      = "lex> "
)

func cmdRepl(args []string) int {
	if len(args) > 0 {
		term.Eprintln("usage: toklex repl")
		return exitUsage
	}
	term.Printf("%s (type :help for commands)\n", version.String())

	histPath := historyPath(os.UserHomeDir)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer func() {
		signal.Stop(sigc)
		close(done)
	}()
	go func() {
		select {
		case <-sigc:
			ln.Close()
			os.Exit(130)
		case <-done:
		}
	}()

	sess := &replSession{format: "table"}
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			term.Println()
			return exitOK
		}
		if err != nil {
			term.Eprintf("repl: %v\n", err)
			return exitIO
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if quit := sess.eval(term.Out, line); quit {
			return exitOK
		}
	}
}

// historyPath returns where REPL history lives, or "" when there is no home
// directory to keep it in.
func historyPath(homeDir func() (string, error)) string {
	home, err := homeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// replSession holds the state that survives between REPL lines.
type replSession struct {
	format string
}

// eval handles one REPL line: a :command or source text to lex. Lexical
// errors are printed and the session continues. It reports whether the user
// asked to quit.
func (s *replSession) eval(w io.Writer, line string) (quit bool) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, ":") {
		cmd, arg, _ := strings.Cut(trimmed, " ")
		switch strings.ToLower(cmd) {
		case ":quit", ":q":
			return true
		case ":help":
			term.Wprintf(w, ":format table|csv|ndjson   change output format (now %s)\n", s.format)
			term.Wprintf(w, ":quit                      leave\n")
		case ":format":
			arg = strings.TrimSpace(arg)
			if !validFormat(arg) {
				term.Wprintf(w, "unknown format %q\n", arg)
				return false
			}
			s.format = arg
		default:
			term.Wprintf(w, "unknown command %s. Type :help.\n", cmd)
		}
		return false
	}

	toks, err := lexer.TokenizeString(line)
	if err != nil {
		var ice *lexer.InvalidCharError
		if errors.As(err, &ice) {
			term.Wprintf(w, "%s", ice.Diagnostic().Render(""))
		} else {
			term.Wprintf(w, "error: %v\n", err)
		}
		return false
	}
	if err := render(w, s.format, toks); err != nil {
		term.Wprintf(w, "error: %v\n", err)
	}
	return false
}
