package engine

import "testing"

func TestTelexToneForKey(t *testing.T) {
	m := NewTelexMethod()
	tests := []struct {
		key  Key
		want ToneMark
	}{
		{KeyS, ToneSac}, {KeyF, ToneHuyen}, {KeyR, ToneHoi},
		{KeyX, ToneNga}, {KeyJ, ToneNang},
	}
	for _, tt := range tests {
		got, ok := m.ToneForKey(tt.key)
		if !ok || got != tt.want {
			t.Errorf("ToneForKey(%v) = (%v, %v), want (%v, true)", tt.key, got, ok, tt.want)
		}
	}
	if _, ok := m.ToneForKey(KeyB); ok {
		t.Error("KeyB should not be a Telex tone key")
	}
}

func TestTelexModifierForKey(t *testing.T) {
	m := NewTelexMethod()
	tests := []struct {
		key  Key
		want Modifier
	}{
		{KeyA, ModCircumflex}, {KeyE, ModCircumflex}, {KeyO, ModCircumflex},
		{KeyW, ModHorn}, {KeyD, ModStroke},
	}
	for _, tt := range tests {
		got, ok := m.ModifierForKey(tt.key)
		if !ok || got != tt.want {
			t.Errorf("ModifierForKey(%v) = (%v, %v), want (%v, true)", tt.key, got, ok, tt.want)
		}
	}
}

func TestTelexRevertsToLiteral(t *testing.T) {
	m := NewTelexMethod()
	for _, k := range []Key{KeyA, KeyE, KeyO, KeyW, KeyD, KeyS, KeyF, KeyR, KeyX, KeyJ} {
		if !m.RevertsToLiteral(k) {
			t.Errorf("RevertsToLiteral(%v) should be true (letter-shaped trigger)", k)
		}
	}
	if m.RevertsToLiteral(KeyZ) {
		t.Error("RevertsToLiteral(KeyZ) should be false: z is not a Telex trigger")
	}
}

func TestTelexModifierTargetsSingleVowel(t *testing.T) {
	m := NewTelexMethod()
	b := NewBufferState()
	b.Trans = []rune("ca")
	targets, ok := m.ModifierTargets(b, ModCircumflex)
	if !ok || len(targets) != 1 || targets[0] != 1 {
		t.Errorf("ModifierTargets(ca, circumflex) = (%v, %v), want ([1], true)", targets, ok)
	}
}

func TestTelexModifierTargetsHornSpread(t *testing.T) {
	m := NewTelexMethod()
	b := NewBufferState()
	b.Trans = []rune("duo")
	targets, ok := m.ModifierTargets(b, ModHorn)
	if !ok || len(targets) != 2 || targets[0] != 1 || targets[1] != 2 {
		t.Errorf("ModifierTargets(duo, horn) = (%v, %v), want ([1 2], true)", targets, ok)
	}
}

func TestTelexStrokeTarget(t *testing.T) {
	m := NewTelexMethod()
	b := NewBufferState()
	b.Trans = []rune("d")
	idx, ok := m.StrokeTarget(b)
	if !ok || idx != 0 {
		t.Errorf("StrokeTarget(d) = (%d, %v), want (0, true)", idx, ok)
	}
	b.Trans = []rune("ca")
	if _, ok := m.StrokeTarget(b); ok {
		t.Error("StrokeTarget(ca) should fail: no d to decompose")
	}
}
