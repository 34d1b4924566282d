package main

import "github.com/username/goviet-ime/internal/engine"

// X11 keysym values for the named keys the engine cares about. Letters,
// digits, and ASCII punctuation keysyms equal their Latin-1 codepoint
// (0x20-0xFF); everything else below is a named keysym outside that
// range. See X11/keysymdef.h.
const (
	xkBackSpace = 0xff08
	xkTab       = 0xff09
	xkReturn    = 0xff0d
	xkEscape    = 0xff1b
	xkDelete    = 0xffff
	xkLeft      = 0xff51
	xkUp        = 0xff52
	xkRight     = 0xff53
	xkDown      = 0xff54
)

// keysymToKey translates an X11 keysym into the engine's abstract Key
// enum: the "host code -> Key" half of C1 for this transport (keyRune in
// internal/engine/keytable.go is the reverse half, shared by every
// host). ASCII printable keysyms (0x20-0x7E) and the Latin-1 block
// (0xA0-0xFF) carry their Unicode codepoint directly; keysyms at
// 0x01000000+ encode a Unicode codepoint via bit 24.
func keysymToKey(keysym uint32) (engine.Key, bool) {
	switch keysym {
	case xkBackSpace:
		return engine.KeyBackspace, true
	case xkTab:
		return engine.KeyTab, true
	case xkReturn:
		return engine.KeyReturn, true
	case xkEscape:
		return engine.KeyEscape, true
	case xkLeft:
		return engine.KeyArrowLeft, true
	case xkRight:
		return engine.KeyArrowRight, true
	case xkUp:
		return engine.KeyArrowUp, true
	case xkDown:
		return engine.KeyArrowDown, true
	}

	r := keysymToRune(keysym)
	if r == 0 {
		return engine.KeyNone, false
	}
	return engine.RuneToKey(r)
}

// keysymToRune decodes the subset of the X11 keysym space that maps
// onto a single Unicode codepoint: ASCII (0x20-0x7E), Latin-1
// (0xA0-0xFF), and the Unicode keysym range (0x01000000-0x0110FFFF,
// where the codepoint is the low 24 bits).
func keysymToRune(keysym uint32) rune {
	switch {
	case keysym >= 0x20 && keysym <= 0x7e:
		return rune(keysym)
	case keysym >= 0xa0 && keysym <= 0xff:
		return rune(keysym)
	case keysym >= 0x01000000 && keysym <= 0x0110ffff:
		return rune(keysym & 0x00ffffff)
	}
	return 0
}
