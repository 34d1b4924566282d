package engine

import "unicode"

// ParsedSyllable is the §3 data-model derivation over a TransformBuffer.
type ParsedSyllable struct {
	Initial string
	Medial  string
	Nucleus []rune
	Final   string
	Tone    ToneMark
}

// errUnparsed marks a buffer that cannot be parsed into a legal
// syllable; the caller treats it as an English candidate (spec
// Invariant V1).
var errUnparsed = &unparsedError{}

type unparsedError struct{}

func (*unparsedError) Error() string { return "unparsed" }

// parseSyllable runs the §4.3 greedy left-to-right procedure over a
// TransformBuffer slice.
func parseSyllable(buf []rune) (ParsedSyllable, error) {
	if len(buf) == 0 {
		return ParsedSyllable{}, errUnparsed
	}

	i := 0

	// Step 1: longest-match onset (trigraph > digraph > letter).
	onset, onsetLen := matchOnset(buf)
	i += onsetLen

	// Step 2: q requires a medial u.
	medial := ""
	if toLowerASCIIAware(onset) == "q" {
		if i >= len(buf) {
			return ParsedSyllable{}, errUnparsed
		}
		letter, _, _, ok := vowelIdentity(buf[i])
		if !ok || letter != 'u' {
			return ParsedSyllable{}, errUnparsed
		}
		medial = "u"
		i++
	}

	// Step 3: consume 1-3 nucleus vowels.
	nucleusStart := i
	for i < len(buf) && i-nucleusStart < 3 {
		if _, _, _, ok := vowelIdentity(buf[i]); !ok {
			break
		}
		i++
	}
	nucleusRunes := buf[nucleusStart:i]
	if len(nucleusRunes) == 0 {
		return ParsedSyllable{}, errUnparsed
	}

	identities := make([]rune, len(nucleusRunes))
	tone := ToneNgang
	toneSeen := false
	for idx, r := range nucleusRunes {
		letter, t, _, _ := vowelIdentity(r)
		identities[idx] = letter
		if t != ToneNgang {
			if toneSeen && t != tone {
				return ParsedSyllable{}, errUnparsed
			}
			tone = t
			toneSeen = true
		}
	}

	if !nucleusShapeValid(identities) {
		return ParsedSyllable{}, errUnparsed
	}

	// Step 4: longest-match coda from the remainder; remainder after
	// that must be empty.
	final, finalLen := matchCoda(buf[i:])
	i += finalLen
	if i != len(buf) {
		return ParsedSyllable{}, errUnparsed
	}

	// Step 6: matrix checks.
	if onset != "" && !onsetNucleusOK(onset, identities[0]) {
		return ParsedSyllable{}, errUnparsed
	}
	if final != "" && !nucleusCodaOK(identities[len(identities)-1], final) {
		return ParsedSyllable{}, errUnparsed
	}
	if !toneCodaOK(tone, final) {
		return ParsedSyllable{}, errUnparsed
	}

	return ParsedSyllable{
		Initial: onset,
		Medial:  medial,
		Nucleus: append([]rune(nil), nucleusRunes...),
		Final:   final,
		Tone:    tone,
	}, nil
}

// vowelIdentity returns the tone-free lowercase vowel letter a
// precomposed rune represents (e.g. 'ướ' is not a single rune, but 'ư'
// decomposes to letter 'ư', tone Ngang; 'ấ' decomposes to letter 'â',
// tone Sac).
func vowelIdentity(r rune) (letter rune, tone ToneMark, upper bool, ok bool) {
	d, ok := decomposeRune(r)
	if !ok {
		return 0, ToneNgang, false, false
	}
	if d.base == 'd' {
		return 0, ToneNgang, false, false
	}
	toneFree := vowelForms[d.base][d.mod]
	return toneFree, d.tone, d.upper, true
}

// matchOnset finds the longest valid onset prefix of buf, trying
// trigraph, then digraph, then single letter. q is matched alone (not
// as the qu digraph) so step 2 can consume its medial u explicitly.
// gi is matched as a 2-rune onset only when a further nucleus vowel
// follows (gia, giá, giữa); the consonant-run loop below breaks on i
// as soon as it sees it, so that case has to be special-cased up
// front. With nothing but i after g (gì, gìn) the i is the nucleus
// itself, so this falls through to the ordinary single-letter onset.
func matchOnset(buf []rune) (string, int) {
	if len(buf) >= 3 && unicode.ToLower(buf[0]) == 'g' {
		if letter, _, _, ok := vowelIdentity(buf[1]); ok && letter == 'i' {
			if _, _, _, ok2 := vowelIdentity(buf[2]); ok2 {
				return string(buf[:2]), 2
			}
		}
	}

	lower := make([]rune, 0, 3)
	for i := 0; i < len(buf) && i < 3; i++ {
		letter, _, _, isVowel := vowelIdentity(buf[i])
		if isVowel {
			_ = letter
			break
		}
		if !isConsonantLetterRune(buf[i]) {
			break
		}
		lower = append(lower, unicode.ToLower(buf[i]))
	}
	if len(lower) >= 3 {
		s := string(lower[:3])
		for _, tri := range onsetTrigraphs {
			if s == tri {
				return string(buf[:3]), 3
			}
		}
	}
	if len(lower) >= 2 {
		s := string(lower[:2])
		if s == "qu" {
			return string(buf[:1]), 1
		}
		for _, di := range onsetDigraphs {
			if s == di {
				return string(buf[:2]), 2
			}
		}
	}
	if len(lower) >= 1 && onsetConsonants[lower[0]] {
		return string(buf[:1]), 1
	}
	return "", 0
}

// matchCoda finds the longest valid coda prefix of buf.
func matchCoda(buf []rune) (string, int) {
	if len(buf) == 0 {
		return "", 0
	}
	if len(buf) >= 2 {
		s := toLowerASCIIAware(string(buf[:2]))
		if codaValid[s] {
			return string(buf[:2]), 2
		}
	}
	s := toLowerASCIIAware(string(buf[:1]))
	if codaValid[s] {
		return string(buf[:1]), 1
	}
	return "", 0
}

// nucleusShapeValid checks a 1-3 vowel run against nucleusDi/nucleusTri.
func nucleusShapeValid(identities []rune) bool {
	switch len(identities) {
	case 1:
		return nucleusVowels[identities[0]]
	case 2:
		return nucleusDi[[2]rune{identities[0], identities[1]}]
	case 3:
		return nucleusTri[[3]rune{identities[0], identities[1], identities[2]}]
	}
	return false
}

func isConsonantLetterRune(r rune) bool {
	lower := unicode.ToLower(r)
	if onsetConsonants[lower] {
		return true
	}
	return false
}
