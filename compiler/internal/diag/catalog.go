package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "TLE0001"
	Title string `json:"title"` // short human title e.g., "invalid character"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format.
type Registry struct {
	Lexer  map[string]CodeEntry `json:"lexer"`
	Report map[string]CodeEntry `json:"report"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			return // empty catalog is allowed
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key).
// Domain is "lexer" or "report".
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	var m map[string]CodeEntry
	switch domain {
	case "lexer":
		m = reg.Lexer
	case "report":
		m = reg.Report
	default:
		return CodeEntry{}, false
	}
	ce, ok := m[key]
	return ce, ok
}

// MustLookup returns the entry if found; otherwise a placeholder with the
// provided defaultID and title so codes stay stable even if the JSON is
// temporarily missing an entry.
func MustLookup(domain, key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := Lookup(domain, key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}
