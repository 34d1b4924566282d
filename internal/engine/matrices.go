package engine

import "unicode"

// This file holds the compile-time phonotactic matrices (C2): static
// sets and lookup tables built once as package-level literals (no
// runtime construction needed, so idempotent-init is trivial) encoding
// which onsets, nuclei, codas, and tone/coda pairings are legal
// Vietnamese, plus the English mirror tables used for auto-restore.

// nucleusVowels is the 12-letter Vietnamese vowel alphabet a syllable's
// nucleus is drawn from (lowercase; case is handled separately).
var nucleusVowels = map[rune]bool{
	'a': true, 'ă': true, 'â': true, 'e': true, 'ê': true, 'i': true,
	'o': true, 'ô': true, 'ơ': true, 'u': true, 'ư': true, 'y': true,
}

// onsetConsonants is the set of single-letter consonants that can
// appear in an onset.
var onsetConsonants = map[rune]bool{
	'b': true, 'c': true, 'd': true, 'đ': true, 'g': true, 'h': true,
	'k': true, 'l': true, 'm': true, 'n': true, 'p': true, 'q': true,
	'r': true, 's': true, 't': true, 'v': true, 'x': true,
}

// onsetValid is the full 28-entry set of recognized onsets (single
// consonants plus digraphs/trigraphs), matched longest-first by the
// parser.
var onsetValid = map[string]bool{
	"b": true, "c": true, "d": true, "đ": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,

	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,

	"ngh": true,
}

// onsetTrigraphs and onsetDigraphs let the parser try the longest
// match first without scanning the whole onsetValid map by length.
var onsetTrigraphs = []string{"ngh"}
var onsetDigraphs = []string{"ch", "gh", "gi", "kh", "ng", "nh", "ph", "qu", "th", "tr"}

// onsetFrontOnly is the set of onsets that may only precede a front
// vowel {e, ê, i, y} (the k/gh/ngh spelling rule).
var onsetFrontOnly = map[string]bool{"k": true, "gh": true, "ngh": true}

// onsetBackOnly is the set of onsets that may only precede a back/low
// vowel {a, ă, â, o, ô, ơ, u, ư} (the c/g/ng spelling rule).
var onsetBackOnly = map[string]bool{"c": true, "g": true, "ng": true}

var frontVowels = map[rune]bool{'e': true, 'ê': true, 'i': true, 'y': true}
var backVowels = map[rune]bool{'a': true, 'ă': true, 'â': true, 'o': true, 'ô': true, 'ơ': true, 'u': true, 'ư': true}

// onsetNucleusOK checks the §4.2 ONSET_NUCLEUS rule: does onset permit
// nucleus's first vowel v1?
func onsetNucleusOK(onset string, v1 rune) bool {
	lower := toLowerASCIIAware(onset)
	v1 = unicode.ToLower(v1)
	if onsetFrontOnly[lower] {
		return frontVowels[v1]
	}
	if onsetBackOnly[lower] {
		return backVowels[v1]
	}
	return true
}

// nucleusDi is the set of valid two-vowel nuclei (diphthongs), keyed
// lowercase. Membership alone is "valid"; callers needing the
// modifier-bearer distinction (e.g. iê requiring ê, not e) get it for
// free because the buffer already holds the modified letter by the
// time a syllable is parsed.
var nucleusDi = map[[2]rune]bool{
	{'a', 'i'}: true, {'a', 'o'}: true, {'a', 'u'}: true, {'a', 'y'}: true,
	{'â', 'u'}: true, {'â', 'y'}: true,
	{'e', 'o'}: true, {'ê', 'u'}: true,
	{'i', 'a'}: true, {'i', 'u'}: true, {'i', 'ê'}: true,
	{'o', 'a'}: true, {'o', 'ă'}: true, {'o', 'e'}: true, {'o', 'i'}: true,
	{'ô', 'i'}: true, {'ơ', 'i'}: true,
	{'u', 'a'}: true, {'u', 'â'}: true, {'u', 'ê'}: true, {'u', 'y'}: true,
	{'u', 'ô'}: true, {'u', 'i'}: true,
	{'ư', 'a'}: true, {'ư', 'ơ'}: true, {'ư', 'i'}: true, {'ư', 'u'}: true,
	{'y', 'ê'}: true,
}

// nucleusTri is the explicit set of 13 valid triphthongs (spec §4.2).
var nucleusTri = map[[3]rune]bool{
	{'i', 'ê', 'u'}: true,
	{'y', 'ê', 'u'}: true,
	{'o', 'a', 'i'}: true,
	{'o', 'a', 'y'}: true,
	{'o', 'e', 'o'}: true,
	{'u', 'â', 'y'}: true,
	{'u', 'ô', 'i'}: true,
	{'u', 'y', 'a'}: true,
	{'ư', 'ơ', 'i'}: true,
	{'ư', 'ơ', 'u'}: true,
	{'u', 'y', 'ê'}: true,
	{'u', 'y', 'u'}: true,
	{'u', 'ê', 'u'}: true,
}

// nucleusCodaOK is the §4.2 NUCLEUS_CODA restriction: ch/nh only
// after {a, ê, i, y}; ng never after {e, ê, i, y, ơ, ư}. Expressed as a
// negative/allow set over the coda keyed by the nucleus's last vowel.
func nucleusCodaOK(lastVowel rune, coda string) bool {
	lastVowel = unicode.ToLower(lastVowel)
	switch coda {
	case "ch", "nh":
		switch lastVowel {
		case 'a', 'ê', 'i', 'y':
			return true
		default:
			return false
		}
	case "ng":
		switch lastVowel {
		case 'e', 'ê', 'i', 'y', 'ơ', 'ư':
			return false
		default:
			return true
		}
	}
	return true
}

// codaValid is the set of valid Vietnamese codas.
var codaValid = map[string]bool{
	"c": true, "ch": true, "m": true, "n": true,
	"ng": true, "nh": true, "p": true, "t": true,
}

// stopCodas are the codas that restrict tone choice (§4.2 TONE_CODA).
var stopCodas = map[string]bool{"c": true, "ch": true, "p": true, "t": true}

// toneCodaOK implements §4.2's Rule 7: stop finals take sắc/nặng, and
// ngang is also accepted here so an untoned fragment like "tot" still
// parses mid-word (wordFinalStopCodaInvalid rejects it at a boundary).
func toneCodaOK(tone ToneMark, coda string) bool {
	if !stopCodas[coda] {
		return true
	}
	return tone == ToneSac || tone == ToneNang || tone == ToneNgang
}

// toLowerASCIIAware lowercases a short onset string without allocating
// through strings.ToLower's full Unicode path more than necessary for
// the single- and multi-rune onsets we ever see.
func toLowerASCIIAware(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return string(runes)
}

// --- English mirror tables (§4.2). validateEnglish reads enOnsetCC,
// enOnsetCCC and enImpossibleBigram; enCodaCC and enVowelDigraph are
// not consulted by it. ---

// enOnsetCC is the set of valid English two-consonant onset clusters.
var enOnsetCC = map[string]bool{
	"bl": true, "br": true, "ch": true, "cl": true, "cr": true,
	"dr": true, "dw": true, "fl": true, "fr": true, "gl": true,
	"gr": true, "pl": true, "pr": true, "qu": true, "sc": true,
	"sh": true, "sk": true, "sl": true, "sm": true, "sn": true,
	"sp": true, "st": true, "sw": true, "th": true, "tr": true,
	"tw": true, "wh": true, "wr": true,
}

// enOnsetCCC is the set of valid English three-consonant onsets:
// s + p/t/k + l/r/w as spelled, with the k sound also written c (scr)
// or q (squ).
var enOnsetCCC = map[string]bool{
	"spl": true, "spr": true, "str": true, "scr": true, "squ": true,
	"skr": true, "skw": true,
}

// enCodaCC is a representative set of common English coda clusters.
var enCodaCC = map[string]bool{
	"ct": true, "ft": true, "ld": true, "lf": true, "lk": true,
	"lm": true, "lp": true, "lt": true, "mp": true, "nd": true,
	"nk": true, "nt": true, "pt": true, "rd": true, "rk": true,
	"rm": true, "rn": true, "rp": true, "rt": true, "sk": true,
	"sp": true, "st": true, "xt": true, "ck": true, "ng": true,
	"sh": true, "ch": true, "th": true, "ss": true, "ll": true,
}

// enImpossibleBigram lists adjacent-letter pairs that never occur in
// English spelling.
var enImpossibleBigram = map[[2]rune]bool{
	{'q', 'a'}: true, {'q', 'b'}: true, {'q', 'c'}: true, {'q', 'd'}: true,
	{'q', 'e'}: true, {'q', 'f'}: true, {'q', 'g'}: true, {'q', 'h'}: true,
	{'q', 'i'}: true, {'q', 'j'}: true, {'q', 'k'}: true, {'q', 'l'}: true,
	{'q', 'm'}: true, {'q', 'n'}: true, {'q', 'o'}: true, {'q', 'p'}: true,
	{'q', 'q'}: true, {'q', 'r'}: true, {'q', 's'}: true, {'q', 't'}: true,
	{'q', 'v'}: true, {'q', 'w'}: true, {'q', 'x'}: true, {'q', 'y'}: true,
	{'q', 'z'}: true,
	{'j', 'b'}: true, {'j', 'c'}: true, {'j', 'd'}: true, {'j', 'f'}: true,
	{'j', 'g'}: true, {'j', 'j'}: true, {'j', 'k'}: true, {'j', 'l'}: true,
	{'j', 'm'}: true, {'j', 'n'}: true, {'j', 'p'}: true, {'j', 'q'}: true,
	{'j', 'r'}: true, {'j', 's'}: true, {'j', 't'}: true, {'j', 'v'}: true,
	{'j', 'w'}: true, {'j', 'x'}: true, {'j', 'z'}: true,
	{'x', 'b'}: true, {'x', 'd'}: true, {'x', 'f'}: true, {'x', 'g'}: true,
	{'x', 'j'}: true, {'x', 'k'}: true, {'x', 'l'}: true, {'x', 'm'}: true,
	{'x', 'n'}: true, {'x', 'q'}: true, {'x', 'r'}: true, {'x', 'v'}: true,
	{'x', 'w'}: true, {'x', 'x'}: true, {'x', 'z'}: true,
	{'v', 'b'}: true, {'v', 'f'}: true, {'v', 'g'}: true, {'v', 'j'}: true,
	{'v', 'k'}: true, {'v', 'q'}: true, {'v', 'v'}: true, {'v', 'w'}: true,
	{'v', 'x'}: true, {'v', 'z'}: true,
}

// enVowelDigraph is the set of valid English vowel digraphs.
var enVowelDigraph = map[string]bool{
	"ai": true, "au": true, "aw": true, "ay": true, "ea": true,
	"ee": true, "ei": true, "eu": true, "ew": true, "ey": true,
	"ie": true, "oa": true, "oe": true, "oi": true, "oo": true,
	"ou": true, "ow": true, "oy": true, "ue": true, "ui": true,
}

func isEnglishVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func isEnglishConsonant(r rune) bool {
	return unicode.IsLetter(r) && !isEnglishVowel(r)
}
