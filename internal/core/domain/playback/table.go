package playback

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

/*
Table is the fixed, ordered command table. It is built once at startup
and never mutated afterwards; dispatch precedence is the order the
definitions were given in. The zero value is an empty table that
matches nothing.
*/
type Table struct {
	defs []Definition
}

// NewTable builds a Table from definitions, enforcing the closed-table
// invariants: every field present, tokens lowercase, abbreviations a
// single rune, and no token (word or abbreviation) claimed twice.
func NewTable(defs []Definition) (Table, error) {
	if len(defs) == 0 {
		return Table{}, fmt.Errorf("command table cannot be empty")
	}

	seenTokens := make(map[string]Action, len(defs)*2)
	claim := func(token string, owner Action) error {
		if prev, exists := seenTokens[token]; exists {
			return fmt.Errorf("token %q of command %q already belongs to %q", token, owner, prev)
		}
		seenTokens[token] = owner
		return nil
	}

	for i, def := range defs {
		if def.Action == "" || def.Word == "" || def.Abbreviation == "" || def.Output == "" {
			return Table{}, fmt.Errorf("command table definition %d is incomplete: %+v", i, def)
		}
		if def.Word != strings.ToLower(def.Word) || def.Abbreviation != strings.ToLower(def.Abbreviation) {
			return Table{}, fmt.Errorf("tokens of command %q must be lowercase", def.Action)
		}
		if utf8.RuneCountInString(def.Abbreviation) != 1 {
			return Table{}, fmt.Errorf("abbreviation %q of command %q must be a single letter", def.Abbreviation, def.Action)
		}
		if err := claim(def.Word, def.Action); err != nil {
			return Table{}, err
		}
		if err := claim(def.Abbreviation, def.Action); err != nil {
			return Table{}, err
		}
	}

	owned := make([]Definition, len(defs))
	copy(owned, defs)
	return Table{defs: owned}, nil
}

// Definitions returns the table entries in precedence order. The slice
// is a copy, so the table cannot be modified through it.
func (t Table) Definitions() []Definition {
	defs := make([]Definition, len(t.defs))
	copy(defs, t.defs)
	return defs
}

// Len returns the number of commands in the table.
func (t Table) Len() int {
	return len(t.defs)
}

/*
Match dispatches a normalized input line against the table. Entries
are checked in precedence order; an entry matches when the input
equals its full word or its abbreviation. The boolean is false when
nothing matched.

Match expects input that is already validated and lowercased; it
performs no normalization of its own.
*/
func (t Table) Match(normalized string) (Match, bool) {
	for _, def := range t.defs {
		if normalized == def.Word || normalized == def.Abbreviation {
			matchedBy := MatchedByWord
			if normalized == def.Abbreviation {
				matchedBy = MatchedByAbbreviation
			}
			return Match{Definition: def, MatchedBy: matchedBy}, true
		}
	}
	return Match{}, false
}
