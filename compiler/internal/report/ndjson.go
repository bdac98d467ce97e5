package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/desilang/toklex/compiler/internal/lexer"
)

// WriteNDJSON writes one JSON object per token:
//
//	{"kind":"identifier","text":"foo","line":3,"col":5}
func WriteNDJSON(w io.Writer, toks []lexer.Token) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range FromTokens(toks) {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// ParseNDJSON reads NDJSON records from r.
// Lines that fail to parse as JSON are skipped but summarized in the error.
func ParseNDJSON(r io.Reader) ([]Record, error) {
	var recs []Record

	sc := bufio.NewScanner(r)
	// 64 KiB initial, up to 8 MiB per line.
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	lineNo := 0
	var badLines []string
	for sc.Scan() {
		lineNo++
		raw := strings.TrimPrefix(strings.TrimSpace(sc.Text()), "\ufeff")
		if raw == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			if len(badLines) < 5 {
				badLines = append(badLines, fmt.Sprintf("L%d: %s", lineNo, raw))
			}
			continue
		}
		if err := checkKind(rec.Kind, lineNo); err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return recs, err
	}
	if len(badLines) > 0 {
		return recs, fmt.Errorf("ignored %d malformed NDJSON line(s), first few: %s",
			len(badLines), strings.Join(badLines, " | "))
	}
	return recs, nil
}
