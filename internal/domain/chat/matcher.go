package chat

import "strings"

// Entry pairs a set of trigger keywords with the canned answer served
// when a visitor message hits one or more of them.
type Entry struct {
	Keywords []string
	Answer   string
}

// Matcher scores visitor messages against a fixed FAQ catalogue.
// Matching is accent and case insensitive so "dónde" and "donde"
// resolve to the same entry.
type Matcher struct {
	entries  []Entry
	fallback string
}

func NewMatcher(entries []Entry, fallback string) *Matcher {
	return &Matcher{entries: entries, fallback: fallback}
}

// Reply returns the answer of the entry with the most keyword hits.
// Ties resolve to the earlier entry. A message with no hits gets the
// fallback answer.
func (m *Matcher) Reply(message string) string {
	normalized := normalize(message)
	if normalized == "" {
		return m.fallback
	}

	words := tokenize(normalized)

	bestScore := 0
	bestAnswer := m.fallback
	for _, entry := range m.entries {
		score := 0
		for _, kw := range entry.Keywords {
			if _, ok := words[normalize(kw)]; ok {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestAnswer = entry.Answer
		}
	}
	return bestAnswer
}

func tokenize(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(s, func(r rune) bool {
		return !isWordRune(r)
	}) {
		words[w] = struct{}{}
	}
	return words
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == 'ñ'
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u",
)

func normalize(s string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}
