package lexer

import "strings"

// Mode selects whether Match consumes the characters it accepts.
type Mode int

const (
	// Consume advances the stream over every accepted character.
	Consume Mode = iota
	// PeekOnly scans ahead with Peek and leaves the stream untouched.
	PeekOnly
)

// Match greedily extends a match of p from the head of s for as long as the
// accumulated text stays a viable prefix. It returns the matched text and the
// rune that stopped it (EOF if the stream ran out). In Consume mode the
// matched runes are consumed; the stop rune never is.
func Match(s *Stream, p Pattern, mode Mode) (string, rune) {
	var b strings.Builder
	st, off := 0, 0
	for {
		r := s.Peek(off)
		if r == EOF {
			return b.String(), EOF
		}
		next := p.step(st, r)
		if next == dead {
			return b.String(), r
		}
		st = next
		b.WriteRune(r)
		if mode == Consume {
			s.Advance()
		} else {
			off++
		}
	}
}

// skip consumes n runes from s.
func skip(s *Stream, n int) {
	for i := 0; i < n; i++ {
		s.Advance()
	}
}
