package lexer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/desilang/toklex/compiler/internal/diag"
)

// ErrInvalidCharacter is matched by every *InvalidCharError.
var ErrInvalidCharacter = errors.New("invalid character")

// InvalidCharError reports a character that cannot start any token.
type InvalidCharError struct {
	Char rune
	Line int
	Col  int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("%d:%d: invalid character: %s", e.Line, e.Col, describeChar(e.Char))
}

func (e *InvalidCharError) Is(target error) bool { return target == ErrInvalidCharacter }

// Diagnostic converts e into a catalog diagnostic.
func (e *InvalidCharError) Diagnostic() diag.Diagnostic {
	ce := diag.MustLookup("lexer", "invalid_character", "TLE0001", "invalid character")
	start := diag.Pos{Line: e.Line, Col: e.Col}
	return diag.New(ce, diag.Span{Start: start, End: diag.Pos{Line: e.Line, Col: e.Col + 1}},
		"invalid character: "+describeChar(e.Char))
}

// describeChar quotes r so control characters stay visible. Bytes that are
// not valid UTF-8 are shown by value.
func describeChar(r rune) string {
	if b, ok := InvalidByte(r); ok {
		return fmt.Sprintf("byte 0x%02X", b)
	}
	return strconv.QuoteRune(r)
}

// ReadError reports a failure of the underlying source. Tokens before the
// failure point are still valid.
type ReadError struct {
	Err  error
	Line int
	Col  int
}

func (e *ReadError) Error() string { return "read source: " + e.Err.Error() }

func (e *ReadError) Unwrap() error { return e.Err }

// Diagnostic converts e into a catalog diagnostic.
func (e *ReadError) Diagnostic() diag.Diagnostic {
	ce := diag.MustLookup("lexer", "read_failed", "TLE0002", "cannot read source")
	return diag.New(ce, diag.Span{Start: diag.Pos{Line: e.Line, Col: e.Col}},
		ce.Title+": "+e.Err.Error())
}
