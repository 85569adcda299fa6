// Package nlp implements the text-processing front of the assistant:
// normalization, typo correction, intent classification and the domain gate.
package nlp

import (
	"regexp"
	"strings"
)

// punctRe strips everything that is neither a letter, a digit nor whitespace.
// Accented French letters are kept.
var punctRe = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

var stopwordSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Stopwords))
	for _, w := range Stopwords {
		set[w] = struct{}{}
	}
	return set
}()

// Normalize canonicalizes a question for pattern matching: lowercase,
// punctuation stripped, whitespace collapsed, stopwords removed. The function
// is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(question string) string {
	s := strings.ToLower(question)
	s = punctRe.ReplaceAllString(s, "")

	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		if _, skip := stopwordSet[w]; !skip {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
