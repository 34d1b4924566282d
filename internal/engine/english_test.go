package engine

import "testing"

func TestValidateEnglish(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"hello", true},
		{"strong", true},
		{"miss", true},
		{"var", true},
		{"qa", false},   // impossible bigram
		{"xj", false},   // impossible bigram
		{"", false},
		{"screen", true},  // scr- onset cluster (enOnsetCCC)
		{"zzzzb", false},  // 4+ leading consonants, no onset match
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := validateEnglish([]rune(tt.raw))
			if got != tt.want {
				t.Errorf("validateEnglish(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
