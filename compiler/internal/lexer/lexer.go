package lexer

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// charClass is the category chosen from the first unconsumed character.
type charClass int

const (
	classEOF charClass = iota
	classSpace
	classIdent
	classDigit
	classSep
	classOp
	classInvalid
)

func classify(r rune) charClass {
	switch {
	case r == EOF:
		return classEOF
	case isSpace(r):
		return classSpace
	case isLetter(r):
		return classIdent
	case isDigit(r):
		return classDigit
	case isSeparator(r):
		return classSep
	case isOperator(r):
		return classOp
	default:
		return classInvalid
	}
}

// Lexer classifies the characters of a Stream into tokens. Whitespace runs
// are consumed and produce no token.
type Lexer struct {
	s *Stream
}

// New returns a Lexer reading from r.
func New(r io.Reader) *Lexer {
	return &Lexer{s: NewStream(r)}
}

// Next returns the next token, or a token of kind KindEOF once the input is
// exhausted. An *InvalidCharError is returned, without consuming the
// character, when the input holds a character that cannot start a token.
func (lx *Lexer) Next() (Token, error) {
	for {
		line, col := lx.s.Pos()
		r := lx.s.Peek(0)

		switch classify(r) {
		case classEOF:
			if err := lx.s.Err(); err != nil {
				return Token{Kind: KindEOF, Line: line, Col: col}, &ReadError{Err: err, Line: line, Col: col}
			}
			return Token{Kind: KindEOF, Line: line, Col: col}, nil

		case classSpace:
			Match(lx.s, spacePattern, Consume)

		case classIdent:
			lex, _ := Match(lx.s, identPattern, Consume)
			if IsKeyword(lex) {
				return Token{Kind: Keyword, Lex: lex, Line: line, Col: col}, nil
			}
			return Token{Kind: Identifier, Lex: lex, Line: line, Col: col}, nil

		case classDigit:
			// The digit run may be the integer part of a real; look before
			// committing.
			digits, stop := Match(lx.s, intPattern, PeekOnly)
			if stop == '.' {
				lex, _ := Match(lx.s, realPattern, Consume)
				return Token{Kind: Real, Lex: lex, Line: line, Col: col}, nil
			}
			skip(lx.s, utf8.RuneCountInString(digits))
			return Token{Kind: Int, Lex: digits, Line: line, Col: col}, nil

		case classSep:
			lex, _ := Match(lx.s, sepPattern, Consume)
			return Token{Kind: Separator, Lex: lex, Line: line, Col: col}, nil

		case classOp:
			if op, _ := Match(lx.s, multiOpPattern, PeekOnly); utf8.RuneCountInString(op) > 1 {
				skip(lx.s, utf8.RuneCountInString(op))
				return Token{Kind: Operator, Lex: op, Line: line, Col: col}, nil
			}
			lex, _ := Match(lx.s, soleOpPattern, Consume)
			return Token{Kind: Operator, Lex: lex, Line: line, Col: col}, nil

		case classInvalid:
			return Token{Kind: KindEOF, Line: line, Col: col}, &InvalidCharError{Char: r, Line: line, Col: col}
		}
	}
}

// All lexes the remaining input. On error it returns the tokens produced
// before the failure together with the error.
func (lx *Lexer) All() ([]Token, error) {
	var toks []Token
	for {
		t, err := lx.Next()
		if err != nil {
			return toks, err
		}
		if t.Kind == KindEOF {
			return toks, nil
		}
		toks = append(toks, t)
	}
}

// Tokenize lexes everything r yields.
func Tokenize(r io.Reader) ([]Token, error) { return New(r).All() }

// TokenizeString lexes src.
func TokenizeString(src string) ([]Token, error) { return Tokenize(strings.NewReader(src)) }

// TokenizeFile lexes the file at path. The file is closed before returning
// on every path.
func TokenizeFile(path string) ([]Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Tokenize(f)
}
