package engine

// This file is C5, the input-method rule contract. Telex and VNI are
// both table-driven implementations of InputMethod; everything about
// how a keystroke actually mutates a buffer lives once in engine.go's
// pipeline, so a method only ever answers "what does this key mean".

// RuleKind classifies what a key dispatch produces.
type RuleKind int

const (
	RuleLiteral RuleKind = iota
	RuleTone
	RuleModifier
	RuleStroke
	RuleRevert
)

// RuleAction is what InputMethod dispatch logic in engine.go decides
// for a keystroke, given the method's table lookups.
type RuleAction struct {
	Kind RuleKind

	Tone ToneMark // meaningful when Kind == RuleTone
	Mod  Modifier // meaningful when Kind == RuleModifier or RuleStroke

	// Targets holds the absolute TransformBuffer indices a
	// RuleModifier or RuleStroke action mutates: one entry normally,
	// two for the Telex "uow"/VNI "uo7" horn spread.
	Targets []int

	// RevertLiteral is meaningful only for Kind == RuleRevert: whether
	// the reverting keystroke itself becomes a new literal position.
	// True for letter-shaped triggers, which is every Telex trigger
	// (the third 'a' in "aaa" ends the sequence as two literal a's plus
	// this one; a second 's' after "as" leaves "as"); false for VNI
	// digits, which are simply swallowed with no output.
	RevertLiteral bool
}

// InputMethod is the small, table-driven contract each of Telex and
// VNI implements.
type InputMethod interface {
	Name() InputMethodName

	// ToneForKey reports the tone a key requests, if k is a tone key.
	ToneForKey(k Key) (ToneMark, bool)

	// ModifierForKey reports the modifier a key requests (including
	// ModStroke for đ), if k is a modifier key.
	ModifierForKey(k Key) (Modifier, bool)

	// RevertsToLiteral reports whether reverting a compose triggered
	// by k leaves the reverting keystroke as a new literal position.
	RevertsToLiteral(k Key) bool

	// ModifierTargets returns the absolute Trans indices a
	// circumflex/breve/horn keystroke should mutate. ok is false when
	// no eligible vowel exists in the current buffer.
	ModifierTargets(b *BufferState, mod Modifier) (targets []int, ok bool)

	// StrokeTarget returns the absolute Trans index of the 'd'/'D'
	// this method's stroke trigger should convert.
	StrokeTarget(b *BufferState) (int, bool)
}
