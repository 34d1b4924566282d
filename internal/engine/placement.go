package engine

import "unicode"

// This file is C4, the placement algorithm: given a nucleus shape (and
// whether the syllable has a coda), decide which vowel position a tone
// mark lands on, and where a horn/breve/circumflex modifier spreads.

// isModifierBearer reports whether a tone-free vowel letter is one of
// the modifier bearers ă, â, ê, ô, ơ that take the tone under rules 4
// and 5. ư, though it carries a horn, is not counted.
func isModifierBearer(r rune) bool {
	switch r {
	case 'ă', 'â', 'ê', 'ô', 'ơ':
		return true
	}
	return false
}

// tonePlacementIndex implements §4.4's ordered rule list and returns
// the index into a nucleus's vowel run that an incoming tone should
// land on. identities are the tone-free lowercase vowel letters of the
// nucleus (1-3 of them); modern selects step 8's style for oa/oe/uy.
func tonePlacementIndex(identities []rune, hasCoda bool, modern bool) int {
	n := len(identities)
	if n == 1 {
		return 0
	}

	// Rules 4 & 5: a modifier-bearing vowel (ă â ê ô ơ) always takes
	// the tone, coda or not — iê→ê, uô→ô, ươ→ơ, uâ→â.
	for i := n - 1; i >= 0; i-- {
		if isModifierBearer(identities[i]) {
			return i
		}
	}

	// Rule 6: triphthongs place on the middle vowel. The spec's oai/oay
	// exception ("place on a") names the same middle position, so no
	// special case is needed.
	if n == 3 {
		return 1
	}

	a, b := identities[0], identities[1]

	// Rule 8: oa, oe, uy without a coda follow the style flag. With a
	// coda (oát, oàn, ...) the second vowel takes the tone in both
	// styles.
	if (a == 'o' && (b == 'a' || b == 'e')) || (a == 'u' && b == 'y') {
		if modern || hasCoda {
			return 1
		}
		return 0
	}

	// Rules 2 & 3: glide-ending diphthongs (ai, ao, au, ay, âu, ây, eo,
	// êu, ia, iu, oi, ôi, ơi, ui, ưi, ưu) and ua/ưa without a coda place
	// on the first, syllabic vowel.
	return 0
}

// TonePosition parses nothing itself; it is the public entry point the
// engine calls after §4.3 parsing to find the tone target within a
// ParsedSyllable's nucleus.
func TonePosition(s ParsedSyllable, modern bool) int {
	identities := make([]rune, len(s.Nucleus))
	for i, r := range s.Nucleus {
		letter, _, _, _ := vowelIdentity(r)
		identities[i] = letter
	}
	return tonePlacementIndex(identities, s.Final != "", modern)
}

// hornSpreadTargets detects the Telex "uow"/VNI "uo7" spread rule: a
// trailing "uo" (either case) should become "ươ" in one step, applying
// the horn to both vowels instead of just the one immediately before
// the trigger. Returns the buffer indices of u and o (uIdx < oIdx) and
// ok=true if buf ends in such a pair.
func hornSpreadTargets(buf []rune) (uIdx, oIdx int, ok bool) {
	n := len(buf)
	if n < 2 {
		return 0, 0, false
	}
	last, prev := buf[n-1], buf[n-2]
	if unicode.ToLower(last) == 'o' && unicode.ToLower(prev) == 'u' {
		return n - 2, n - 1, true
	}
	return 0, 0, false
}
