package engine

import "testing"

func TestTonePositionRealWorld(t *testing.T) {
	tests := []struct {
		name   string
		raw    string // already-composed (tone-free) buffer to parse
		modern bool
		want   int // index into ParsedSyllable.Nucleus
	}{
		{"single vowel", "a", true, 0},
		{"chao: tone on a", "chao", true, 0},
		{"xoa: tone on a", "xoa", true, 1},
		{"nghia: tone on i", "nghia", true, 0},
		{"tien: modifier bearer ê", "tiên", true, 1},
		{"muon: modifier bearer ô", "muôn", true, 1},
		{"oa no coda modern: second vowel", "hoa", true, 1},
		{"oa no coda traditional: first vowel", "hoa", false, 0},
		{"uy no coda modern: second vowel", "huy", true, 1},
		{"triphthong: middle vowel", "khuyu", true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := parseSyllable([]rune(tt.raw))
			if err != nil {
				t.Fatalf("parseSyllable(%q) failed: %v", tt.raw, err)
			}
			got := TonePosition(p, tt.modern)
			if got != tt.want {
				t.Errorf("TonePosition(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestHornSpreadTargets(t *testing.T) {
	u, o, ok := hornSpreadTargets([]rune("duo"))
	if !ok || u != 1 || o != 2 {
		t.Errorf("hornSpreadTargets(duo) = (%d, %d, %v), want (1, 2, true)", u, o, ok)
	}
	if _, _, ok := hornSpreadTargets([]rune("da")); ok {
		t.Error("hornSpreadTargets(da) should not match")
	}
}
