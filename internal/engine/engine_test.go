package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(e *Engine, k Key) Result {
	return e.ProcessKey(KeyEvent{Key: k})
}

func TestEngineTelexToneApply(t *testing.T) {
	e := New(DefaultSettings(), nil)
	press(e, KeyA)
	res := press(e, KeyS)
	assert.Equal(t, ActionSend, res.Action)
	assert.Equal(t, []rune("á"), e.Buffer())
}

func TestEngineTelexToneRevertLeavesTriggerLiteral(t *testing.T) {
	e := New(DefaultSettings(), nil)
	press(e, KeyA)
	press(e, KeyS)
	res := press(e, KeyS)
	assert.Equal(t, ActionSend, res.Action)
	assert.Equal(t, []rune("as"), e.Buffer())
}

func TestEngineTelexStrokeCompose(t *testing.T) {
	e := New(DefaultSettings(), nil)
	press(e, KeyD)
	press(e, KeyD)
	assert.Equal(t, []rune("đ"), e.Buffer())
}

func TestEngineTelexModifierRevertInsertsLiteral(t *testing.T) {
	e := New(DefaultSettings(), nil)
	press(e, KeyD)
	press(e, KeyD)
	res := press(e, KeyD)
	require.Equal(t, ActionSend, res.Action)
	assert.Equal(t, []rune("dd"), e.Buffer())
}

func TestEngineVNIToneApply(t *testing.T) {
	settings := DefaultSettings()
	settings.Method = MethodVNI
	e := New(settings, nil)
	press(e, KeyA)
	press(e, Key1)
	assert.Equal(t, []rune("á"), e.Buffer())
}

func TestEngineShortcutExpansionAtBoundary(t *testing.T) {
	e := New(DefaultSettings(), nil)
	e.Shortcuts().Add("btw", "by the way")
	press(e, KeyB)
	press(e, KeyT)
	press(e, KeyW)
	res := press(e, KeySpace)
	require.Equal(t, ActionSend, res.Action)
	assert.Equal(t, 3, res.Backspace)
	assert.Equal(t, []rune("by the way"), res.Codepoints)
}

func TestEngineBackspacePopsRawAndRecomposes(t *testing.T) {
	e := New(DefaultSettings(), nil)
	press(e, KeyA)
	press(e, KeyS)
	res := press(e, KeyBackspace)
	assert.Equal(t, ActionSend, res.Action)
	assert.Equal(t, []rune("a"), e.Buffer())
}

func TestEngineEscapeRestoresRawWhenEnabled(t *testing.T) {
	settings := DefaultSettings()
	settings.EscRestore = true
	e := New(settings, nil)
	press(e, KeyA)
	press(e, KeyS)
	res := e.ProcessKey(KeyEvent{Key: KeyEscape})
	assert.Equal(t, ActionRestore, res.Action)
	assert.Equal(t, []rune("as"), res.Codepoints)
}

func TestEngineWordInitialWShortcut(t *testing.T) {
	e := New(DefaultSettings(), nil)
	press(e, KeyW)
	assert.Equal(t, []rune("ư"), e.Buffer())
}

func TestEngineWordInitialWShortcutDisabled(t *testing.T) {
	settings := DefaultSettings()
	settings.SkipWShortcut = true
	e := New(settings, nil)
	press(e, KeyW)
	assert.Equal(t, []rune("w"), e.Buffer())
}

func TestEngineDisabledIsNoop(t *testing.T) {
	settings := DefaultSettings()
	settings.Enabled = false
	e := New(settings, nil)
	res := press(e, KeyA)
	assert.Equal(t, ActionNone, res.Action)
}

// applyResult mimics how a host editor applies a Result to its visible
// text: delete the trailing Backspace runes, then insert Codepoints.
func applyResult(visible []rune, res Result) []rune {
	if res.Action == ActionNone {
		return visible
	}
	n := len(visible) - res.Backspace
	if n < 0 {
		n = 0
	}
	out := append([]rune(nil), visible[:n]...)
	return append(out, res.Codepoints...)
}

// typeWord runs keys through e, applies every Result the way a host
// would, finalizes on a trailing space, and returns the text a host
// would end up showing.
func typeWord(e *Engine, keys ...Key) []rune {
	var visible []rune
	for _, k := range keys {
		visible = applyResult(visible, press(e, k))
	}
	visible = applyResult(visible, press(e, KeySpace))
	return append(visible, ' ')
}

func TestEngineDuocViaTrailingStroke(t *testing.T) {
	e := New(DefaultSettings(), nil)
	got := typeWord(e, KeyD, KeyU, KeyO, KeyW, KeyC, KeyJ, KeyD)
	assert.Equal(t, []rune("được "), got)
}

func TestEngineTotViaNonAdjacentCircumflex(t *testing.T) {
	e := New(DefaultSettings(), nil)
	got := typeWord(e, KeyT, KeyO, KeyT, KeyO, KeyS)
	assert.Equal(t, []rune("tốt "), got)
}

func TestEngineTextRestoresToEnglishOnImpossibleCoda(t *testing.T) {
	e := New(DefaultSettings(), nil)
	got := typeWord(e, KeyT, KeyE, KeyX, KeyT)
	assert.Equal(t, []rune("text "), got)
}

func TestEngineValAcceptsHoiToneWithNoCoda(t *testing.T) {
	e := New(DefaultSettings(), nil)
	got := typeWord(e, KeyV, KeyA, KeyR)
	assert.Equal(t, []rune("vả "), got)
}

func TestEngineVarRevertsDoubleR(t *testing.T) {
	e := New(DefaultSettings(), nil)
	got := typeWord(e, KeyV, KeyA, KeyR, KeyR)
	assert.Equal(t, []rune("var "), got)
}

func TestEngineKeepFallsBackAtWordBoundary(t *testing.T) {
	e := New(DefaultSettings(), nil)
	got := typeWord(e, KeyK, KeyE, KeyE, KeyP)
	assert.Equal(t, []rune("keep "), got)
}

func TestEngineDuocAlternateModifierOrdering(t *testing.T) {
	e := New(DefaultSettings(), nil)
	got := typeWord(e, KeyD, KeyU, KeyW, KeyO, KeyW, KeyC, KeyD, KeyJ)
	assert.Equal(t, []rune("được "), got)
}

func TestEngineMissThirdSIsLiteralAfterRevert(t *testing.T) {
	e := New(DefaultSettings(), nil)
	got := typeWord(e, KeyM, KeyI, KeyS, KeyS, KeyS)
	assert.Equal(t, []rune("miss "), got)
}

func TestEngineVNIDuocAnalogue(t *testing.T) {
	settings := DefaultSettings()
	settings.Method = MethodVNI
	e := New(settings, nil)
	got := typeWord(e, KeyD, KeyU, KeyO, Key7, KeyC, Key5, Key9)
	assert.Equal(t, []rune("được "), got)
}

func TestEngineShortcutExpandsHaNoiAtBoundary(t *testing.T) {
	e := New(DefaultSettings(), nil)
	e.Shortcuts().Add("hn", "Hà Nội")
	got := typeWord(e, KeyH, KeyN)
	assert.Equal(t, []rune("Hà Nội "), got)
}
