// Package language guesses the language of a text input. There is no local
// model here: non-Latin scripts are recognized by their Unicode ranges and
// Latin-script languages by common-word counting. Unknown input falls back
// to English.
package language

import (
	"strings"
	"unicode"
)

var latinIndicators = map[string][]string{
	"en": {"the", "and", "is", "are", "was", "were", "have", "has", "with", "for", "you", "what"},
	"es": {"el", "la", "los", "las", "es", "una", "como", "que", "por", "para", "hola", "ayudarte"},
	"fr": {"le", "les", "est", "une", "vous", "je", "pas", "avec", "pour", "bonjour", "comment"},
	"it": {"il", "lo", "gli", "che", "sono", "una", "con", "per", "ciao", "come", "posso"},
	"pt": {"o", "os", "um", "uma", "com", "para", "que", "você", "não", "como"},
}

// Detect returns a best-guess two-letter language code. It never fails; the
// fallback is "en".
func Detect(text string) string {
	if code := detectScript(text); code != "" {
		return code
	}

	lowerText := " " + strings.ToLower(text) + " "
	best := "en"
	bestCount := 0
	for code, words := range latinIndicators {
		count := 0
		for _, word := range words {
			if strings.Contains(lowerText, " "+word+" ") {
				count++
			}
		}
		if count > bestCount || (count == bestCount && code == "en") {
			best = code
			bestCount = count
		}
	}
	return best
}

// detectScript maps dominant non-Latin scripts to a language code. Devanagari
// is ambiguous between Hindi and Marathi; Hindi wins as the more common case.
func detectScript(text string) string {
	counts := map[string]int{}
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Devanagari, r):
			counts["hi"]++
		case unicode.Is(unicode.Kannada, r):
			counts["kn"]++
		case unicode.Is(unicode.Tamil, r):
			counts["ta"]++
		case unicode.Is(unicode.Telugu, r):
			counts["te"]++
		case unicode.Is(unicode.Bengali, r):
			counts["bn"]++
		}
	}
	best := ""
	bestCount := 0
	for code, count := range counts {
		if count > bestCount {
			best = code
			bestCount = count
		}
	}
	return best
}
