package lexer

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// EOF is returned by Peek and Advance once the source is exhausted.
const EOF rune = -1

// badByteBase offsets bytes that are not valid UTF-8 past the Unicode range,
// so they keep their value and can never match a character class.
const badByteBase rune = utf8.MaxRune + 1

// InvalidByte reports whether r stands for a raw byte that was not valid
// UTF-8, and which byte it was.
func InvalidByte(r rune) (byte, bool) {
	if r >= badByteBase && r <= badByteBase+0xFF {
		return byte(r - badByteBase), true
	}
	return 0, false
}

// Stream is a character source with arbitrary lookahead. Characters are
// pulled lazily from the underlying reader into a FIFO buffer; Peek never
// consumes, Advance removes from the front.
type Stream struct {
	src io.RuneReader
	buf []rune
	eof bool
	err error

	line int
	col  int
}

// NewStream wraps r. Readers that already implement io.RuneReader are used
// as is; anything else is buffered.
func NewStream(r io.Reader) *Stream {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &Stream{src: rr, line: 1, col: 1}
}

// fill pulls from the source until the buffer holds at least n runes or the
// source is exhausted. It reports whether n runes are available.
func (s *Stream) fill(n int) bool {
	for len(s.buf) < n {
		if s.eof {
			return false
		}
		r, size, err := s.src.ReadRune()
		if err != nil {
			s.eof = true
			if err != io.EOF {
				s.err = err
			}
			return false
		}
		if r == utf8.RuneError && size == 1 {
			r = s.rawByte(r)
		}
		s.buf = append(s.buf, r)
	}
	return true
}

// rawByte recovers the byte behind a RuneError of width 1 when the source
// can step back; otherwise it returns r unchanged.
func (s *Stream) rawByte(r rune) rune {
	rs, ok := s.src.(interface {
		io.RuneScanner
		io.ByteReader
	})
	if !ok || rs.UnreadRune() != nil {
		return r
	}
	b, err := rs.ReadByte()
	if err != nil {
		return r
	}
	return badByteBase + rune(b)
}

// Peek returns the rune n positions past the current one (Peek(0) is the
// next rune to be consumed), or EOF.
func (s *Stream) Peek(n int) rune {
	if n < 0 || !s.fill(n+1) {
		return EOF
	}
	return s.buf[n]
}

// Advance consumes and returns the current rune, or EOF.
func (s *Stream) Advance() rune {
	if !s.fill(1) {
		return EOF
	}
	r := s.buf[0]
	s.buf = s.buf[1:]
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// Pos is the 1-based line and column of the next unconsumed rune.
func (s *Stream) Pos() (line, col int) { return s.line, s.col }

// Buffered is the number of runes read from the source but not yet consumed.
func (s *Stream) Buffered() int { return len(s.buf) }

// Err returns the first read error other than io.EOF. A failed read ends the
// stream just like a clean EOF does.
func (s *Stream) Err() error { return s.err }
