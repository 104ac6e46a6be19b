package playback

import "strings"

/*
PromptText renders the interactive prompt from the table, e.g.

	P)lay, pA)use, R)ewind, F)ast-forward, S)top, or Q)uit?:

Each fragment uppercases the abbreviation letter at its first
occurrence inside the command word and inserts ")" after it. Fragments
join with ", ", the last one takes an "or " prefix, and the prompt ends
with "?: " including a trailing space.
*/
func (t Table) PromptText() string {
	var b strings.Builder
	for i, def := range t.defs {
		if i > 0 {
			b.WriteString(", ")
		}
		if i == len(t.defs)-1 && len(t.defs) > 1 {
			b.WriteString("or ")
		}
		b.WriteString(promptFragment(def))
	}
	b.WriteString("?: ")
	return b.String()
}

// promptFragment marks the abbreviation inside the word: "play" with
// abbreviation "p" becomes "P)lay", "pause" with "a" becomes "pA)use".
func promptFragment(def Definition) string {
	idx := strings.Index(def.Word, def.Abbreviation)
	if idx < 0 {
		// Abbreviation not part of the word; prefix it instead.
		return strings.ToUpper(def.Abbreviation) + ")" + def.Word
	}
	end := idx + len(def.Abbreviation)
	return def.Word[:idx] + strings.ToUpper(def.Abbreviation) + ")" + def.Word[end:]
}
