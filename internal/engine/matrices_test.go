package engine

import "testing"

func TestOnsetNucleusOK(t *testing.T) {
	if onsetNucleusOK("k", 'a') {
		t.Error("k should be front-only, rejecting back vowel a")
	}
	if !onsetNucleusOK("k", 'e') {
		t.Error("k should accept front vowel e")
	}
	if onsetNucleusOK("g", 'e') {
		t.Error("g should be back-only, rejecting front vowel e")
	}
	if !onsetNucleusOK("g", 'a') {
		t.Error("g should accept back vowel a")
	}
	if !onsetNucleusOK("t", 'a') {
		t.Error("t has no front/back restriction")
	}
}

func TestNucleusCodaOK(t *testing.T) {
	if !nucleusCodaOK('a', "ch") {
		t.Error("ch should be valid after a")
	}
	if nucleusCodaOK('o', "ch") {
		t.Error("ch should be invalid after o")
	}
	if nucleusCodaOK('e', "ng") {
		t.Error("ng should be invalid after e")
	}
	if !nucleusCodaOK('a', "ng") {
		t.Error("ng should be valid after a")
	}
}

func TestToneCodaOK(t *testing.T) {
	if !toneCodaOK(ToneSac, "c") {
		t.Error("sac should be allowed on a stop coda")
	}
	if toneCodaOK(ToneHuyen, "c") {
		t.Error("huyen should be rejected on a stop coda")
	}
	if !toneCodaOK(ToneNgang, "n") {
		t.Error("any tone is fine on a non-stop coda")
	}
}

func TestContainsImpossibleBigram(t *testing.T) {
	if !containsImpossibleBigram([]rune("xj")) {
		t.Error("xj should be flagged as an impossible bigram")
	}
	if containsImpossibleBigram([]rune("th")) {
		t.Error("th is a valid English bigram")
	}
}
