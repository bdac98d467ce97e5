package term

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Out and Err receive everything printed by the helpers below. CLI tests
// swap them for buffers.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

// Print helpers that ignore (n, err) to satisfy linters.
func Printf(format string, a ...any)  { _, _ = fmt.Fprintf(Out, format, a...) }
func Println(a ...any)                { _, _ = fmt.Fprintln(Out, a...) }
func Eprintf(format string, a ...any) { _, _ = fmt.Fprintf(Err, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(Err, a...) }

// Wprintf writes formatted text to any io.Writer, dropping (n, err).
func Wprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }

// Bprintf writes formatted text into a strings.Builder.
func Bprintf(b *strings.Builder, format string, a ...any) { _, _ = fmt.Fprintf(b, format, a...) }

// Short trims s to at most 40 bytes and escapes newlines and tabs so it fits
// on one table line.
func Short(s string) string {
	if len(s) > 40 {
		s = s[:37] + "..."
	}
	s = strings.ReplaceAll(s, "\n", "\\n")
	return strings.ReplaceAll(s, "\t", "\\t")
}
