package engine

import "testing"

func TestVNIToneForKey(t *testing.T) {
	m := NewVNIMethod()
	tests := []struct {
		key  Key
		want ToneMark
	}{
		{Key1, ToneSac}, {Key2, ToneHuyen}, {Key3, ToneHoi},
		{Key4, ToneNga}, {Key5, ToneNang},
	}
	for _, tt := range tests {
		got, ok := m.ToneForKey(tt.key)
		if !ok || got != tt.want {
			t.Errorf("ToneForKey(%v) = (%v, %v), want (%v, true)", tt.key, got, ok, tt.want)
		}
	}
	if _, ok := m.ToneForKey(Key6); ok {
		t.Error("Key6 is a modifier key, not a tone key")
	}
}

func TestVNIModifierForKey(t *testing.T) {
	m := NewVNIMethod()
	tests := []struct {
		key  Key
		want Modifier
	}{
		{Key6, ModCircumflex}, {Key7, ModHorn}, {Key8, ModBreve}, {Key9, ModStroke},
	}
	for _, tt := range tests {
		got, ok := m.ModifierForKey(tt.key)
		if !ok || got != tt.want {
			t.Errorf("ModifierForKey(%v) = (%v, %v), want (%v, true)", tt.key, got, ok, tt.want)
		}
	}
}

func TestVNIRevertsToLiteralAlwaysFalse(t *testing.T) {
	m := NewVNIMethod()
	for _, k := range []Key{Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9} {
		if m.RevertsToLiteral(k) {
			t.Errorf("RevertsToLiteral(%v) should be false: no VNI digit is a literal letter", k)
		}
	}
}

func TestVNIModifierTargetsHornSpread(t *testing.T) {
	m := NewVNIMethod()
	b := NewBufferState()
	b.Trans = []rune("duo")
	targets, ok := m.ModifierTargets(b, ModHorn)
	if !ok || len(targets) != 2 || targets[0] != 1 || targets[1] != 2 {
		t.Errorf("ModifierTargets(duo, horn) = (%v, %v), want ([1 2], true)", targets, ok)
	}
}

func TestVNIStrokeTarget(t *testing.T) {
	m := NewVNIMethod()
	b := NewBufferState()
	b.Trans = []rune("d")
	idx, ok := m.StrokeTarget(b)
	if !ok || idx != 0 {
		t.Errorf("StrokeTarget(d) = (%d, %v), want (0, true)", idx, ok)
	}
}
