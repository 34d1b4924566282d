package engine

import "testing"

func TestParseSyllable(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"single vowel", "a", false},
		{"onset + nucleus", "ca", false},
		{"onset + nucleus + coda", "can", false},
		{"digraph onset", "cha", false},
		{"trigraph onset", "nghia", false},
		{"qu + u medial", "qua", false},
		{"triphthong", "khuya", false},
		{"stop coda with sac", "hát", false},
		{"empty", "", true},
		{"no vowel", "ch", true},
		{"k before front vowel valid", "ke", false}, // k is front-only, e is front: valid
		{"k before back vowel invalid", "ka", true},
		{"g before front vowel invalid", "ge", true},
		{"trailing garbage", "caq", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSyllable([]rune(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Errorf("parseSyllable(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
		})
	}
}

func TestParseSyllableToneOnPrecomposed(t *testing.T) {
	p, err := parseSyllable([]rune("chào"))
	if err != nil {
		t.Fatalf("parseSyllable(chào) failed: %v", err)
	}
	if p.Tone != ToneHuyen {
		t.Errorf("tone = %v, want ToneHuyen", p.Tone)
	}
	if p.Initial != "ch" {
		t.Errorf("initial = %q, want ch", p.Initial)
	}
}

func TestMatchOnsetSplitsQFromMedialU(t *testing.T) {
	onset, n := matchOnset([]rune("qua"))
	if onset != "q" || n != 1 {
		t.Errorf("matchOnset(qua) = (%q, %d), want (q, 1)", onset, n)
	}
}

func TestNucleusShapeValid(t *testing.T) {
	if !nucleusShapeValid([]rune{'i', 'ê', 'u'}) {
		t.Error("iêu should be a valid triphthong")
	}
	if nucleusShapeValid([]rune{'a', 'a'}) {
		t.Error("aa is not a valid nucleus shape")
	}
}
