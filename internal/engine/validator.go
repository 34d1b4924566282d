package engine

import "unicode"

// This file is C6, the validator: the four-way classification §4.6
// runs after every buffer mutation.

// ValidationStatus is the validator's four-way classification.
type ValidationStatus int

const (
	// ValidVN: TransformBuffer parses cleanly as a legal Vietnamese
	// syllable-in-progress or complete syllable.
	ValidVN ValidationStatus = iota
	// ValidRaw: TransformBuffer equals RawBuffer (nothing transformed
	// yet) and RawBuffer is a viable Vietnamese onset/nucleus prefix.
	ValidRaw
	// InvalidVN: TransformBuffer cannot parse, or a constraint (e.g.
	// tone on a stop-coda syllable) is violated.
	InvalidVN
	// Impossible: TransformBuffer does not parse and RawBuffer
	// contains an EN_IMPOSSIBLE_BIGRAM or exceeds phonotactic length
	// limits.
	Impossible
)

// The §4.6 Impossible run-length ceilings, checked against RawBuffer.
const (
	maxConsonantRun = 3
	maxVowelRun     = 3
	maxCodaRun      = 4
)

// validate classifies the current buffer per §4.6 and refreshes the
// buffer's parsed-syllable cache. A TransformBuffer that parses is
// ValidVN even when RawBuffer, which also holds the trigger keys, has
// an impossible bigram (Telex "duowcjd" contains "jd").
func validate(b *BufferState) ValidationStatus {
	p, err := parseSyllable(b.Trans)
	b.Parsed, b.ParsedOK = p, err == nil
	if err == nil {
		return ValidVN
	}

	lower := lowerRunes(b.Raw)
	if exceedsLengthLimits(lower) || containsImpossibleBigram(lower) {
		return Impossible
	}

	if sameRunes(b.Raw, b.Trans) && viablePrefix(lower) {
		return ValidRaw
	}

	return InvalidVN
}

// wordFinalStopCodaInvalid re-checks toneCodaOK's stop-coda rule at
// word-boundary strictness: mid-word, ngang is tolerated on a stop
// coda because the syllable may still be growing a tone key (§4.2
// Rule 7's leniency, needed so a fragment like "tot" still parses
// while the typist is reaching for the tone letter); a syllable that
// finalizes at a boundary with no tone is simply not a finished
// Vietnamese word (Telex "keep" -> "kêp" must fall back to English).
func wordFinalStopCodaInvalid(trans []rune) bool {
	parsed, err := parseSyllable(trans)
	if err != nil {
		return false
	}
	return stopCodas[parsed.Final] && parsed.Tone == ToneNgang
}

// exceedsLengthLimits applies the three §4.6 Impossible run-length
// ceilings to a lowercased raw key sequence, tracking a leading
// consonant run, the vowel run, and a trailing (post-vowel) consonant
// run separately.
func exceedsLengthLimits(lower []rune) bool {
	leading, vowels, trailing := 0, 0, 0
	seenVowel := false
	for _, r := range lower {
		if _, _, _, isVowel := vowelIdentity(r); isVowel {
			vowels++
			seenVowel = true
			trailing = 0
			if vowels > maxVowelRun {
				return true
			}
			continue
		}
		if !isConsonantLetterRune(r) {
			leading, vowels, trailing, seenVowel = 0, 0, 0, false
			continue
		}
		if seenVowel {
			trailing++
			if trailing > maxCodaRun {
				return true
			}
		} else {
			leading++
			if leading > maxConsonantRun {
				return true
			}
		}
	}
	return false
}

// viablePrefix reports whether a lowercased raw sequence could still
// grow into a legal Vietnamese onset+nucleus: a consonant run that is
// itself a prefix of some valid onset, followed by vowels only (no
// coda yet, since a coda would close the syllable).
func viablePrefix(lower []rune) bool {
	if len(lower) == 0 {
		return false
	}
	i := 0
	for i < len(lower) && i < 3 {
		if _, _, _, isVowel := vowelIdentity(lower[i]); isVowel {
			break
		}
		if !isConsonantLetterRune(lower[i]) {
			return false
		}
		i++
	}
	if i > 0 && !onsetIsPrefix(string(lower[:i])) {
		return false
	}
	for ; i < len(lower); i++ {
		if _, _, _, isVowel := vowelIdentity(lower[i]); !isVowel {
			return false
		}
	}
	return true
}

// onsetIsPrefix reports whether s is a prefix of some valid onset.
func onsetIsPrefix(s string) bool {
	runes := []rune(s)
	if len(runes) == 1 && onsetConsonants[runes[0]] {
		return true
	}
	for o := range onsetValid {
		or := []rune(o)
		if len(or) >= len(runes) && string(or[:len(runes)]) == s {
			return true
		}
	}
	return false
}

func lowerRunes(r []rune) []rune {
	out := make([]rune, len(r))
	for i, c := range r {
		out[i] = unicode.ToLower(c)
	}
	return out
}

func sameRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
