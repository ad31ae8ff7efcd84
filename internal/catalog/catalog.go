// Package catalog holds the static career reference table. The catalog
// is built once at startup and injected into consumers; entries are
// never mutated afterwards.
package catalog

import (
	"strings"

	"github.com/skillsmatch/careermatch/internal/quiz"
)

// Entry is one career row: its display data, the raw requirements
// string, and the skill set derived from it at load time.
type Entry struct {
	Career         string
	Requirements   string
	Universities   string
	Image          string
	FitTypes       []quiz.PersonalityType
	RequiredSkills map[string]struct{}
}

// FitsType reports whether the given personality type applies to this entry.
func (e *Entry) FitsType(t quiz.PersonalityType) bool {
	for _, ft := range e.FitTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// Catalog is the immutable set of career entries.
type Catalog struct {
	entries []Entry
}

// Load builds the catalog from the embedded career table, deriving each
// entry's required-skill set exactly once.
func Load() *Catalog {
	return New(careers)
}

// New builds a catalog from the given entries, deriving each entry's
// required-skill set from its requirements string.
func New(rows []Entry) *Catalog {
	entries := make([]Entry, len(rows))
	copy(entries, rows)
	for i := range entries {
		entries[i].RequiredSkills = ParseSkills(entries[i].Requirements)
	}
	return &Catalog{entries: entries}
}

// Entries returns the catalog rows in declaration order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of catalog rows.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// ParseSkills tokenizes a comma-separated skills string into a set of
// lower-cased, trimmed, non-empty tokens. Empty input yields an empty set.
func ParseSkills(s string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		out[tok] = struct{}{}
	}
	return out
}
