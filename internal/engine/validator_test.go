package engine

import "testing"

func TestValidateClassification(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ValidationStatus
	}{
		{"complete syllable", "hoa", ValidVN},
		{"single consonant prefix", "ng", ValidRaw},
		{"single vowel", "a", ValidVN},
		{"impossible bigram", "qj", Impossible},
		{"consonant run too long", "bcdg", Impossible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferState()
			b.Raw = []rune(tt.raw)
			b.Trans = []rune(tt.raw)
			got := validate(b)
			if got != tt.want {
				t.Errorf("validate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateInvalidWhenTransDivergesAndNotPrefix(t *testing.T) {
	b := NewBufferState()
	b.Raw = []rune("ge")
	b.Trans = []rune("gse")
	if got := validate(b); got != InvalidVN {
		t.Errorf("validate diverged non-prefix = %v, want InvalidVN", got)
	}
}

func TestExceedsLengthLimits(t *testing.T) {
	if !exceedsLengthLimits([]rune("aaaa")) {
		t.Error("four-vowel run should exceed maxVowelRun")
	}
	if exceedsLengthLimits([]rune("hoa")) {
		t.Error("hoa should not exceed any run limit")
	}
}

func TestViablePrefix(t *testing.T) {
	if !viablePrefix([]rune("ngh")) {
		t.Error("ngh is a prefix of the valid onset ngh")
	}
	if viablePrefix([]rune("")) {
		t.Error("empty is not a viable prefix")
	}
	if !viablePrefix([]rune("tr")) {
		t.Error("tr is a prefix of the valid onset tr")
	}
}

func TestOnsetIsPrefix(t *testing.T) {
	if !onsetIsPrefix("n") {
		t.Error("n should be a prefix of ng/nh/ngh")
	}
	if onsetIsPrefix("z") {
		t.Error("z is not a prefix of any valid onset")
	}
}
