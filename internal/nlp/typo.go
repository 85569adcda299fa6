package nlp

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// phraseRule rewrites a known garbled multi-word pattern.
type phraseRule struct {
	re   *regexp.Regexp
	repl string
}

// phraseRules are applied in order before token-level correction.
var phraseRules = []phraseRule{
	{regexp.MustCompile(`(?i)c\s*est\s+aoi\b`), "c'est quoi"},
	{regexp.MustCompile(`(?i)c\s*est\s+qoi\b`), "c'est quoi"},
	{regexp.MustCompile(`(?i)c\s*est\s+koi\b`), "c'est quoi"},
	{regexp.MustCompile(`(?i)sver\b`), "savez"},
	{regexp.MustCompile(`(?i)sr\b`), "sur"},
	{regexp.MustCompile(`(?i)\bque vous sver\b`), "que savez-vous"},
	{regexp.MustCompile(`(?i)\bque vous savez\b`), "que savez-vous"},
}

// termEntry maps a canonical domain term to its known misspellings.
type termEntry struct {
	canonical string
	variants  []string
}

// keyTerms is scanned in declared order; the first entry whose variant list
// yields a similarity >= typoThreshold wins.
var keyTerms = []termEntry{
	{"kounhany", []string{"kounhany", "kounhani", "kounhqny", "kounhqni", "counhany", "kunhany", "koonhany", "kounheny"}},
	{"voyant", []string{"voyant", "voyan", "voyent", "voiant"}},
	{"moteur", []string{"moteur", "motor", "motur"}},
	{"frein", []string{"frein", "fren", "freins", "frins"}},
	{"huile", []string{"huile", "huil", "uile"}},
	{"vidange", []string{"vidange", "vidence", "videnge"}},
	{"pneu", []string{"pneu", "pneus", "peu"}},
	{"batterie", []string{"batterie", "bateri", "baterie"}},
	{"quoi", []string{"quoi", "qoi", "koi", "aoi"}},
	{"savez", []string{"savez", "saver", "sver"}},
}

const typoThreshold = 0.75

// CorrectTypos applies the phrase rewrites, then replaces each token that is
// close enough to a known misspelling with its canonical term.
func CorrectTypos(text string) string {
	for _, rule := range phraseRules {
		text = rule.re.ReplaceAllString(text, rule.repl)
	}

	words := strings.Fields(text)
	corrected := make([]string, len(words))

	for i, word := range words {
		wordLower := strings.ToLower(strings.Trim(word, ".,!?;:"))
		best := word

		for _, entry := range keyTerms {
			if bestVariantScore(wordLower, entry.variants) >= typoThreshold {
				best = entry.canonical
				break
			}
		}

		corrected[i] = best
	}

	return strings.Join(corrected, " ")
}

// bestVariantScore returns the highest similarity between word and any
// variant, where similarity is 1 - editDistance/maxLen.
func bestVariantScore(word string, variants []string) float64 {
	var best float64
	for _, v := range variants {
		if score := similarity(word, v); score > best {
			best = score
		}
	}
	return best
}

func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}
