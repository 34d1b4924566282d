package engine

// VNIMethod implements the VNI input method: digits 1-5 for tones,
// 6-9 for modifiers (circumflex, horn, breve, stroke).
type VNIMethod struct{}

// NewVNIMethod returns a VNI InputMethod.
func NewVNIMethod() *VNIMethod { return &VNIMethod{} }

func (v *VNIMethod) Name() InputMethodName { return MethodVNI }

var vniToneKeys = map[Key]ToneMark{
	Key1: ToneSac,
	Key2: ToneHuyen,
	Key3: ToneHoi,
	Key4: ToneNga,
	Key5: ToneNang,
}

func (v *VNIMethod) ToneForKey(k Key) (ToneMark, bool) {
	tone, ok := vniToneKeys[k]
	return tone, ok
}

var vniModifierKeys = map[Key]Modifier{
	Key6: ModCircumflex,
	Key7: ModHorn,
	Key8: ModBreve,
	Key9: ModStroke,
}

func (v *VNIMethod) ModifierForKey(k Key) (Modifier, bool) {
	mod, ok := vniModifierKeys[k]
	return mod, ok
}

// RevertsToLiteral is always false for VNI: no digit is itself a
// Vietnamese letter, so a reverted digit is simply swallowed.
func (v *VNIMethod) RevertsToLiteral(k Key) bool { return false }

// ModifierTargets mirrors Telex's: it scans back from the end of the
// buffer for the nearest vowel that accepts mod, so the modifier digit
// still reaches its vowel across an intervening consonant.
func (v *VNIMethod) ModifierTargets(b *BufferState, mod Modifier) ([]int, bool) {
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

// StrokeTarget scans the whole buffer for a convertible d, mirroring
// Telex's StrokeTarget: the VNI analogue of S1 ("d u o 7 c 5 9") also
// applies the stroke key after the rest of the syllable is typed.
func (v *VNIMethod) StrokeTarget(b *BufferState) (int, bool) {
	for i := len(b.Trans) - 1; i >= 0; i-- {
		if d, ok := decomposeRune(b.Trans[i]); ok && d.base == 'd' {
			return i, true
		}
	}
	return 0, false
}
