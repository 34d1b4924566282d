package engine

import "unicode"

// keyRune maps a logical Key plus uppercase intent to the base Latin
// rune a host should see if it just passed the keystroke through
// unmodified. It is the "logical key -> character" half of the C1
// keycode table; keysymToKey (in cmd/daemon) and RuneToKey below (used
// by cmd/cli) are the corresponding "host code -> Key" halves.
func keyRune(k Key, uppercase bool) rune {
	if r, ok := letterRunes[k]; ok {
		if uppercase {
			return unicode.ToUpper(r)
		}
		return r
	}
	if r, ok := digitRunes[k]; ok {
		return r
	}
	if r, ok := punctRunes[k]; ok {
		return r
	}
	return 0
}

var letterRunes = map[Key]rune{
	KeyA: 'a', KeyB: 'b', KeyC: 'c', KeyD: 'd', KeyE: 'e',
	KeyF: 'f', KeyG: 'g', KeyH: 'h', KeyI: 'i', KeyJ: 'j',
	KeyK: 'k', KeyL: 'l', KeyM: 'm', KeyN: 'n', KeyO: 'o',
	KeyP: 'p', KeyQ: 'q', KeyR: 'r', KeyS: 's', KeyT: 't',
	KeyU: 'u', KeyV: 'v', KeyW: 'w', KeyX: 'x', KeyY: 'y',
	KeyZ: 'z',
}

var runeLetters = func() map[rune]Key {
	m := make(map[rune]Key, len(letterRunes))
	for k, r := range letterRunes {
		m[r] = k
	}
	return m
}()

var digitRunes = map[Key]rune{
	Key0: '0', Key1: '1', Key2: '2', Key3: '3', Key4: '4',
	Key5: '5', Key6: '6', Key7: '7', Key8: '8', Key9: '9',
}

var runeDigits = func() map[rune]Key {
	m := make(map[rune]Key, len(digitRunes))
	for k, r := range digitRunes {
		m[r] = k
	}
	return m
}()

var punctRunes = map[Key]rune{
	KeyPeriod:       '.',
	KeyComma:        ',',
	KeySemicolon:    ';',
	KeyApostrophe:   '\'',
	KeyBracketOpen:  '[',
	KeyBracketClose: ']',
	KeySlash:        '/',
	KeyHyphen:       '-',
	KeyEquals:       '=',
	KeyBacktick:     '`',
	KeyBackslash:    '\\',
}

// isLetterKey reports whether k is one of the 26 Latin letter keys.
func isLetterKey(k Key) bool {
	_, ok := letterRunes[k]
	return ok
}

// isDigitKey reports whether k is one of the 10 digit keys.
func isDigitKey(k Key) bool {
	_, ok := digitRunes[k]
	return ok
}

// RuneToKey looks up the Key for a plain ASCII letter, digit, or
// punctuation rune. It is exported for host adapters that decode their
// transport into characters before handing keys to the engine (e.g.
// the terminal CLI host reading raw bytes).
func RuneToKey(r rune) (Key, bool) {
	lower := unicode.ToLower(r)
	if k, ok := runeLetters[lower]; ok {
		return k, true
	}
	if k, ok := runeDigits[r]; ok {
		return k, true
	}
	for k, pr := range punctRunes {
		if pr == r {
			return k, true
		}
	}
	return KeyNone, false
}

// --- composed Vietnamese codepoint tables (the Latin+modifier ->
// composed-codepoint half of C1) ---

// vowelForms maps a bare vowel (or 'd') and a modifier to the
// lowercase, tone-free letter that modifier produces. Entries absent
// from the map (e.g. 'a'+ModHorn) are unassigned combinations.
var vowelForms = map[rune]map[Modifier]rune{
	'a': {ModNone: 'a', ModBreve: 'ă', ModCircumflex: 'â'},
	'e': {ModNone: 'e', ModCircumflex: 'ê'},
	'i': {ModNone: 'i'},
	'o': {ModNone: 'o', ModCircumflex: 'ô', ModHorn: 'ơ'},
	'u': {ModNone: 'u', ModHorn: 'ư'},
	'y': {ModNone: 'y'},
	'd': {ModNone: 'd', ModStroke: 'đ'},
}

// toneForms maps the lowercase tone-free vowel letter to each of the
// six tones' precomposed forms. This is the total map over the
// Vietnamese alphabet in NFC form; 'd'/'đ' never takes a tone and so
// has no entry here.
var toneForms = map[rune]map[ToneMark]rune{
	'a': {ToneNgang: 'a', ToneSac: 'á', ToneHuyen: 'à', ToneHoi: 'ả', ToneNga: 'ã', ToneNang: 'ạ'},
	'ă': {ToneNgang: 'ă', ToneSac: 'ắ', ToneHuyen: 'ằ', ToneHoi: 'ẳ', ToneNga: 'ẵ', ToneNang: 'ặ'},
	'â': {ToneNgang: 'â', ToneSac: 'ấ', ToneHuyen: 'ầ', ToneHoi: 'ẩ', ToneNga: 'ẫ', ToneNang: 'ậ'},
	'e': {ToneNgang: 'e', ToneSac: 'é', ToneHuyen: 'è', ToneHoi: 'ẻ', ToneNga: 'ẽ', ToneNang: 'ẹ'},
	'ê': {ToneNgang: 'ê', ToneSac: 'ế', ToneHuyen: 'ề', ToneHoi: 'ể', ToneNga: 'ễ', ToneNang: 'ệ'},
	'i': {ToneNgang: 'i', ToneSac: 'í', ToneHuyen: 'ì', ToneHoi: 'ỉ', ToneNga: 'ĩ', ToneNang: 'ị'},
	'o': {ToneNgang: 'o', ToneSac: 'ó', ToneHuyen: 'ò', ToneHoi: 'ỏ', ToneNga: 'õ', ToneNang: 'ọ'},
	'ô': {ToneNgang: 'ô', ToneSac: 'ố', ToneHuyen: 'ồ', ToneHoi: 'ổ', ToneNga: 'ỗ', ToneNang: 'ộ'},
	'ơ': {ToneNgang: 'ơ', ToneSac: 'ớ', ToneHuyen: 'ờ', ToneHoi: 'ở', ToneNga: 'ỡ', ToneNang: 'ợ'},
	'u': {ToneNgang: 'u', ToneSac: 'ú', ToneHuyen: 'ù', ToneHoi: 'ủ', ToneNga: 'ũ', ToneNang: 'ụ'},
	'ư': {ToneNgang: 'ư', ToneSac: 'ứ', ToneHuyen: 'ừ', ToneHoi: 'ử', ToneNga: 'ữ', ToneNang: 'ự'},
	'y': {ToneNgang: 'y', ToneSac: 'ý', ToneHuyen: 'ỳ', ToneHoi: 'ỷ', ToneNga: 'ỹ', ToneNang: 'ỵ'},
}

// decomposition is the reverse of composeVowel: a composed codepoint's
// base letter, modifier, tone, and original case.
type decomposition struct {
	base  rune
	mod   Modifier
	tone  ToneMark
	upper bool
}

var decomposeTable map[rune]decomposition

func init() {
	decomposeTable = make(map[rune]decomposition)
	for base, mods := range vowelForms {
		for mod, toneFree := range mods {
			tones, ok := toneForms[toneFree]
			if !ok {
				// 'd' -> 'đ' never carries a tone.
				decomposeTable[toneFree] = decomposition{base: base, mod: mod, tone: ToneNgang}
				decomposeTable[unicode.ToUpper(toneFree)] = decomposition{base: base, mod: mod, tone: ToneNgang, upper: true}
				continue
			}
			for tone, r := range tones {
				decomposeTable[r] = decomposition{base: base, mod: mod, tone: tone}
				decomposeTable[unicode.ToUpper(r)] = decomposition{base: base, mod: mod, tone: tone, upper: true}
			}
		}
	}
}

// composeVowel builds the precomposed Vietnamese codepoint for a base
// letter ('a','e','i','o','u','y','d'), a modifier, and a tone. Tones
// are ignored for 'd'. Returns 0 for an unassigned combination (e.g.
// 'a'+ModHorn — there is no ă+horn).
func composeVowel(base rune, mod Modifier, tone ToneMark, upper bool) rune {
	mods, ok := vowelForms[unicode.ToLower(base)]
	if !ok {
		return 0
	}
	toneFree, ok := mods[mod]
	if !ok {
		return 0
	}
	var result rune
	if tones, ok := toneForms[toneFree]; ok {
		r, ok := tones[tone]
		if !ok {
			return 0
		}
		result = r
	} else {
		result = toneFree
	}
	if upper {
		return unicode.ToUpper(result)
	}
	return result
}

// decomposeRune returns the decomposition of a precomposed Vietnamese
// letter, or ok=false if r is not a recognized Vietnamese letter.
func decomposeRune(r rune) (decomposition, bool) {
	d, ok := decomposeTable[r]
	return d, ok
}
