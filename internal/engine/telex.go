package engine

// TelexMethod implements the Telex input method: s/f/r/x/j for
// tones, and a/e/o/w/d doubled (or w alone) for modifiers. w applies
// the horn to o/u only; it never produces ă from a.
type TelexMethod struct{}

// NewTelexMethod returns a Telex InputMethod.
func NewTelexMethod() *TelexMethod { return &TelexMethod{} }

func (t *TelexMethod) Name() InputMethodName { return MethodTelex }

var telexToneKeys = map[Key]ToneMark{
	KeyS: ToneSac,
	KeyF: ToneHuyen,
	KeyR: ToneHoi,
	KeyX: ToneNga,
	KeyJ: ToneNang,
}

func (t *TelexMethod) ToneForKey(k Key) (ToneMark, bool) {
	tone, ok := telexToneKeys[k]
	return tone, ok
}

// telexModifierKeys: a,e,o double themselves (circumflex); w is the
// horn on o/u (a takes no horn, so w after a stays a literal w); d
// doubles for stroke.
var telexModifierKeys = map[Key]Modifier{
	KeyA: ModCircumflex,
	KeyE: ModCircumflex,
	KeyO: ModCircumflex,
	KeyW: ModHorn,
	KeyD: ModStroke,
}

func (t *TelexMethod) ModifierForKey(k Key) (Modifier, bool) {
	mod, ok := telexModifierKeys[k]
	return mod, ok
}

// RevertsToLiteral is true for every Telex trigger key: a,e,o,w,d,
// s,f,r,x,j are all themselves ordinary Latin letters (w stands in for
// one), so a reverted compose leaves the trigger behind as plain text
// rather than swallowing it.
func (t *TelexMethod) RevertsToLiteral(k Key) bool {
	switch k {
	case KeyA, KeyE, KeyO, KeyW, KeyD, KeyS, KeyF, KeyR, KeyX, KeyJ:
		return true
	}
	return false
}

// ModifierTargets finds the nearest vowel (scanning back from the end
// of the buffer, past any trailing consonant) that accepts mod, so a
// modifier key typed after the rest of the syllable still reaches the
// vowel it belongs to (S2's non-adjacent "t o t o" -> tốt).
func (t *TelexMethod) ModifierTargets(b *BufferState, mod Modifier) ([]int, bool) {
	if mod == ModHorn {
		if u, o, ok := hornSpreadTargets(b.Trans); ok {
			return []int{u, o}, true
		}
	}
	for i := len(b.Trans) - 1; i >= 0; i-- {
		d, ok := decomposeRune(b.Trans[i])
		if !ok || d.base == 'd' {
			continue
		}
		if composeVowel(d.base, mod, d.tone, d.upper) == 0 {
			continue
		}
		return []int{i}, true
	}
	return nil, false
}

// StrokeTarget scans the whole buffer, not just a trailing run: the
// stroke key can convert an initial d to đ even after the rest of the
// word has been typed ("duowcj" then a trailing d, S1/S7's "alternate
// ordering" case), so a consonant or vowel in between must not stop
// the search.
func (t *TelexMethod) StrokeTarget(b *BufferState) (int, bool) {
	for i := len(b.Trans) - 1; i >= 0; i-- {
		if d, ok := decomposeRune(b.Trans[i]); ok && d.base == 'd' {
			return i, true
		}
	}
	return 0, false
}
