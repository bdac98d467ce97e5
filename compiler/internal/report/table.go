package report

import (
	"io"
	"strings"

	"github.com/desilang/toklex/compiler/internal/lexer"
	"github.com/desilang/toklex/compiler/internal/term"
)

const kindWidth = 12

// WriteTable prints the two-column console report:
//
//	token       | lexeme
//	------------|------------
//	keyword     | if
func WriteTable(w io.Writer, toks []lexer.Token) {
	term.Wprintf(w, "%-*s| %s\n", kindWidth, "token", "lexeme")
	term.Wprintf(w, "%s|%s\n", strings.Repeat("-", kindWidth), strings.Repeat("-", kindWidth))
	for _, t := range toks {
		term.Wprintf(w, "%-*s| %s\n", kindWidth, t.Kind, t.Lex)
	}
}
