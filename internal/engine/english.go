package engine

import "unicode"

// validateEnglish is the §4(d)/§4.2 English phonotactic validator used
// to decide auto-restore: is raw a plausible fragment of an English
// word, as opposed to gibberish that happens to fail Vietnamese
// parsing too?
func validateEnglish(raw []rune) bool {
	if len(raw) == 0 {
		return false
	}
	lower := make([]rune, len(raw))
	for i, r := range raw {
		lower[i] = unicode.ToLower(r)
	}

	if containsImpossibleBigram(lower) {
		return false
	}

	leading := leadingConsonantRun(lower)
	switch {
	case leading > 3:
		return false
	case leading == 3:
		if !enOnsetCCC[string(lower[:3])] {
			return false
		}
	case leading == 2:
		if !enOnsetCC[string(lower[:2])] {
			return false
		}
	}

	return true
}

// containsImpossibleBigram checks every adjacent letter pair against
// enImpossibleBigram.
func containsImpossibleBigram(lower []rune) bool {
	for i := 0; i+1 < len(lower); i++ {
		if enImpossibleBigram[[2]rune{lower[i], lower[i+1]}] {
			return true
		}
	}
	return false
}

func leadingConsonantRun(lower []rune) int {
	n := 0
	for n < len(lower) && isEnglishConsonant(lower[n]) {
		n++
	}
	return n
}
