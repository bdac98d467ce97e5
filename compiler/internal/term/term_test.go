package term

import (
	"bytes"
	"strings"
	"testing"
)

func TestRedirect(t *testing.T) {
	var out, errb bytes.Buffer
	oldOut, oldErr := Out, Err
	Out, Err = &out, &errb
	defer func() { Out, Err = oldOut, oldErr }()

	Printf("%d-%s\n", 1, "a")
	Eprintln("oops")
	if out.String() != "1-a\n" {
		t.Fatalf("stdout = %q", out.String())
	}
	if errb.String() != "oops\n" {
		t.Fatalf("stderr = %q", errb.String())
	}
}

func TestShort(t *testing.T) {
	if got := Short("a\tb\nc"); got != `a\tb\nc` {
		t.Fatalf("Short = %q", got)
	}
	long := strings.Repeat("x", 50)
	if got := Short(long); len(got) != 40 || !strings.HasSuffix(got, "...") {
		t.Fatalf("Short(long) = %q", got)
	}
}
