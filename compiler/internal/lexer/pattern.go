package lexer

// dead is the DFA state from which no completion is possible.
const dead = -1

// Pattern is a lexical category expressed as a small DFA. Every state other
// than dead is a viable prefix: some continuation may still complete a
// match. The start state is always 0.
type Pattern struct {
	name string
	step func(state int, r rune) int
}

func (p Pattern) String() string { return p.name }

// Viable reports whether s is a viable prefix of p. The empty string is
// always viable.
func (p Pattern) Viable(s string) bool {
	st := 0
	for _, r := range s {
		if st = p.step(st, r); st == dead {
			return false
		}
	}
	return true
}

func isLetter(r rune) bool { return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }
func isDigit(r rune) bool  { return '0' <= r && r <= '9' }

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isSeparator(r rune) bool {
	switch r {
	case ';', ',', '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

func isOperator(r rune) bool {
	switch r {
	case '=', '+', '-', '*', '/', '%', '&', '|', '<', '>', '!':
		return true
	}
	return false
}

// single returns a pattern accepting exactly one rune from class.
func single(name string, class func(rune) bool) Pattern {
	return Pattern{name: name, step: func(st int, r rune) int {
		if st == 0 && class(r) {
			return 1
		}
		return dead
	}}
}

// run returns a pattern of the form first rest*.
func run(name string, first, rest func(rune) bool) Pattern {
	return Pattern{name: name, step: func(st int, r rune) int {
		switch {
		case st == 0 && first(r):
			return 1
		case st == 1 && rest(r):
			return 1
		}
		return dead
	}}
}

// Real literal states.
const (
	realStart = iota
	realInt      // [0-9]+
	realFrac     // [0-9]+\.[0-9]*
	realExp      // ...[eE]
	realExpSign  // ...[eE][-+]
	realExpDigit // ...[eE][-+]?[0-9]+
)

func stepReal(st int, r rune) int {
	switch st {
	case realStart:
		if isDigit(r) {
			return realInt
		}
	case realInt:
		if isDigit(r) {
			return realInt
		}
		if r == '.' {
			return realFrac
		}
	case realFrac:
		if isDigit(r) {
			return realFrac
		}
		if r == 'e' || r == 'E' {
			return realExp
		}
	case realExp:
		if r == '+' || r == '-' {
			return realExpSign
		}
		if isDigit(r) {
			return realExpDigit
		}
	case realExpSign, realExpDigit:
		if isDigit(r) {
			return realExpDigit
		}
	}
	return dead
}

// trie is a DFA over a fixed set of literal strings: state i is node i and
// every node is a prefix of at least one literal.
type trie []map[rune]int

func newTrie(words ...string) trie {
	t := trie{{}}
	for _, w := range words {
		n := 0
		for _, r := range w {
			next, ok := t[n][r]
			if !ok {
				next = len(t)
				t = append(t, map[rune]int{})
				t[n][r] = next
			}
			n = next
		}
	}
	return t
}

func (t trie) step(st int, r rune) int {
	if next, ok := t[st][r]; ok {
		return next
	}
	return dead
}

// The lexical grammar. These are built once and never modified.
var (
	identPattern   = run("identifier", isLetter, func(r rune) bool { return isLetter(r) || isDigit(r) })
	intPattern     = run("int", isDigit, isDigit)
	realPattern    = Pattern{name: "real", step: stepReal}
	spacePattern   = run("whitespace", isSpace, isSpace)
	sepPattern     = single("separator", isSeparator)
	soleOpPattern  = single("operator", isOperator)
	multiOpPattern = Pattern{name: "multi-operator", step: newTrie(
		"==", "!=", "<=", ">=", "<<<", ">>>", "<<", ">>",
		"|=", "&=", "^=", "+=", "-=", "*=", "/=", "%=",
	).step}
)
