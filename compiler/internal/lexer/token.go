package lexer

// Kind enumerates the token categories produced by the lexer.
type Kind int

const (
	KindEOF Kind = iota // end of input; returned by Next, never stored in a token list

	Keyword
	Separator
	Identifier
	Operator
	Real
	Int
)

var kindNames = [...]string{
	KindEOF:    "EOF",
	Keyword:    "keyword",
	Separator:  "separator",
	Identifier: "identifier",
	Operator:   "operator",
	Real:       "real",
	Int:        "int",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// ParseKind maps a report name ("int", "keyword", ...) back to its Kind.
// The EOF sentinel is not a report kind and is rejected.
func ParseKind(s string) (Kind, bool) {
	for k := Keyword; k <= Int; k++ {
		if kindNames[k] == s {
			return k, true
		}
	}
	return KindEOF, false
}

// Token is a single lexeme with its 1-based start position.
type Token struct {
	Kind Kind
	Lex  string
	Line int
	Col  int
}

// keywords is the fixed keyword set. Identifier lexemes found here are
// reported as Keyword.
var keywords = map[string]struct{}{
	"if":     {},
	"else":   {},
	"while":  {},
	"for":    {},
	"func":   {},
	"return": {},
}

// IsKeyword reports whether s is an exact member of the keyword set.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}
