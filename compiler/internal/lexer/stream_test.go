package lexer

import (
	"errors"
	"strings"
	"testing"
)

// countingReader counts how many runes have been pulled from the source.
type countingReader struct {
	r     *strings.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) { return c.r.Read(p) }

func (c *countingReader) ReadRune() (rune, int, error) {
	c.reads++
	return c.r.ReadRune()
}

func TestStreamPeekIsIdempotent(t *testing.T) {
	s := NewStream(strings.NewReader("abc"))
	for i := 0; i < 3; i++ {
		if got := s.Peek(1); got != 'b' {
			t.Fatalf("Peek(1) #%d = %q, want 'b'", i, got)
		}
	}
	if got := s.Peek(2); got != 'c' {
		t.Fatalf("Peek(2) = %q, want 'c'", got)
	}
	if got := s.Peek(3); got != EOF {
		t.Fatalf("Peek(3) = %q, want EOF", got)
	}
	for _, want := range "abc" {
		if got := s.Advance(); got != want {
			t.Fatalf("Advance() = %q, want %q", got, want)
		}
	}
	if got := s.Advance(); got != EOF {
		t.Fatalf("Advance() past end = %q, want EOF", got)
	}
	if got := s.Peek(0); got != EOF {
		t.Fatalf("Peek(0) past end = %q, want EOF", got)
	}
}

func TestStreamReadsLazily(t *testing.T) {
	cr := &countingReader{r: strings.NewReader("hello")}
	s := NewStream(cr)
	if cr.reads != 0 {
		t.Fatalf("NewStream read %d runes eagerly", cr.reads)
	}
	s.Peek(2)
	if cr.reads != 3 || s.Buffered() != 3 {
		t.Fatalf("after Peek(2): reads=%d buffered=%d, want 3/3", cr.reads, s.Buffered())
	}
	s.Peek(0)
	s.Peek(1)
	if cr.reads != 3 {
		t.Fatalf("re-peeking pulled more runes: reads=%d", cr.reads)
	}
	s.Advance()
	if cr.reads != 3 || s.Buffered() != 2 {
		t.Fatalf("Advance refilled needlessly: reads=%d buffered=%d", cr.reads, s.Buffered())
	}
}

func TestStreamPositions(t *testing.T) {
	s := NewStream(strings.NewReader("a\nbc"))
	want := [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {2, 3}}
	for i, w := range want {
		line, col := s.Pos()
		if line != w[0] || col != w[1] {
			t.Fatalf("step %d: Pos() = %d:%d, want %d:%d", i, line, col, w[0], w[1])
		}
		s.Advance()
	}
}

type failingReader struct{ n int }

var errDisk = errors.New("disk on fire")

func (f *failingReader) Read(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errDisk
	}
	f.n--
	p[0] = 'x'
	return 1, nil
}

func TestStreamReadErrorEndsStream(t *testing.T) {
	s := NewStream(&failingReader{n: 2})
	if s.Peek(1) != 'x' {
		t.Fatalf("expected two readable runes")
	}
	if s.Peek(2) != EOF {
		t.Fatalf("read error should look like EOF")
	}
	if !errors.Is(s.Err(), errDisk) {
		t.Fatalf("Err() = %v, want %v", s.Err(), errDisk)
	}

	clean := NewStream(strings.NewReader(""))
	clean.Peek(0)
	if clean.Err() != nil {
		t.Fatalf("io.EOF must not surface as an error, got %v", clean.Err())
	}
}

func TestStreamKeepsInvalidBytes(t *testing.T) {
	s := NewStream(strings.NewReader("a\xfeb"))
	if s.Peek(0) != 'a' || s.Peek(2) != 'b' {
		t.Fatalf("neighbours of the bad byte changed: %q %q", s.Peek(0), s.Peek(2))
	}
	b, ok := InvalidByte(s.Peek(1))
	if !ok || b != 0xFE {
		t.Fatalf("InvalidByte(Peek(1)) = %#x, %v, want 0xfe", b, ok)
	}
	if _, ok := InvalidByte('a'); ok {
		t.Fatalf("'a' is not an invalid byte")
	}
	if classify(s.Peek(1)) != classInvalid {
		t.Fatalf("invalid byte must classify as invalid")
	}
}
