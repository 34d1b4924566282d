package engine

import (
	"log"
	"unicode"
	"unicode/utf8"
)

// This file is C8, the per-key pipeline (§4.7): the one place buffer
// mutation, rule dispatch, validation, and the restore decision meet.
// A host owns an *Engine value; the core never reaches for a global.

// Engine is the host-facing entry point: one per edited text field (a
// host juggling several fields, like the httpd session host, keeps one
// Engine per session).
type Engine struct {
	settings  Settings
	method    InputMethod
	buf       *BufferState
	shortcuts *ShortcutTable

	capitalizeNext bool

	logger *log.Logger
}

// New returns an Engine ready to process keys. logger may be nil; the
// engine never fails on a nil logger (see logf).
func New(settings Settings, logger *log.Logger) *Engine {
	e := &Engine{
		settings:  settings,
		buf:       NewBufferState(),
		shortcuts: NewShortcutTable(),
		logger:    logger,
	}
	e.setMethod(settings.Method)
	return e
}

func (e *Engine) setMethod(name InputMethodName) {
	if name == MethodVNI {
		e.method = NewVNIMethod()
	} else {
		e.method = NewTelexMethod()
	}
}

// Settings returns the engine's current configuration.
func (e *Engine) Settings() Settings { return e.settings }

// SetSettings replaces the engine's configuration, swapping the input
// method if it changed. A method swap implicitly clears the
// in-progress buffer: Raw/Trans and any pending transform were built
// against the old method's rule table, and dispatching them against
// the new one is meaningless (§6 set_method).
func (e *Engine) SetSettings(s Settings) {
	if s.Method != e.settings.Method {
		e.setMethod(s.Method)
		e.buf.Clear()
		e.capitalizeNext = false
	}
	e.settings = s
}

// Shortcuts returns the engine's shortcut table for a host to populate.
func (e *Engine) Shortcuts() *ShortcutTable { return e.shortcuts }

// Clear resets the in-progress buffer without touching settings or the
// shortcut table (§6 "clear").
func (e *Engine) Clear() {
	e.buf.Clear()
	e.capitalizeNext = false
}

// Buffer exposes a read-only snapshot of the in-progress rendering, for
// a host that wants to paint a preedit string.
func (e *Engine) Buffer() []rune { return cloneRunes(e.buf.Trans) }

func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}

// ProcessKey runs the §4.7 pipeline for one keystroke.
func (e *Engine) ProcessKey(ev KeyEvent) Result {
	if !e.settings.Enabled {
		return Result{Action: ActionNone}
	}
	k := ev.Key

	switch k {
	case KeyEscape:
		return e.handleEscape()
	case KeyBackspace:
		return e.applyBackspace()
	}

	if ev.Ctrl || e.isBoundaryKey(k) || !e.isBufferKey(k) {
		return e.handleBoundary(k)
	}

	if e.buf.Full() {
		e.finalizeBoundary()
	}

	return e.handleLetter(ev, k)
}

// handleBoundary is steps 1 and 2: a shortcut match wins outright;
// otherwise the buffer finalizes and the boundary key itself is left
// for the host's normal key handling (the engine never buffered it).
func (e *Engine) handleBoundary(k Key) Result {
	if len(e.buf.Raw) > 0 {
		if expansion, ok := e.shortcuts.Lookup(string(e.buf.Raw)); ok {
			res := Result{
				Action:    ActionSend,
				Backspace: len(e.buf.Trans),
				Codepoints: []rune(expansion),
			}
			e.buf.Clear()
			e.armCapitalize(k)
			return res
		}
	}
	res := e.finalizeBoundary()
	e.armCapitalize(k)
	return res
}

// finalizeBoundary commits whatever the buffer currently represents
// and clears it (§4.7 Finalization). Trans already mirrors host text
// whenever the last restoreDecision ran, so the only fix-up needed
// here is the case where the buffer never got a restore (still
// InvalidVN, e.g. a cluster like "bt" that passes neither validator,
// or an untoned stop-coda syllable like "kêp" that
// wordFinalStopCodaInvalid rejects at the boundary).
func (e *Engine) finalizeBoundary() Result {
	if len(e.buf.Raw) == 0 {
		return Result{Action: ActionNone}
	}
	status := validate(e.buf)
	if status == ValidVN && wordFinalStopCodaInvalid(e.buf.Trans) {
		status = InvalidVN
	}
	var res Result
	if status != ValidVN && status != ValidRaw && !e.buf.English {
		res = Result{Action: ActionRestore, Backspace: len(e.buf.Trans), Codepoints: cloneRunes(e.buf.Raw)}
	} else {
		res = Result{Action: ActionNone}
	}
	e.buf.Clear()
	return res
}

// armCapitalize is the auto-capitalize rule: the key that just
// finalized a word decides whether the next letter is forced
// uppercase. Our closed Key set only names '.', so '?'/'!' (typically
// shift-combinations of other punctuation on a real keyboard) aren't
// separately recognized; a host mapping those onto KeyPeriod with
// Uppercase set still triggers this correctly.
func (e *Engine) armCapitalize(k Key) {
	if !e.settings.AutoCapitalize {
		return
	}
	e.capitalizeNext = k == KeyPeriod || k == KeyReturn
}

func (e *Engine) handleEscape() Result {
	if len(e.buf.Raw) == 0 {
		return Result{Action: ActionNone}
	}
	if !e.settings.EscRestore {
		e.buf.Clear()
		return Result{Action: ActionNone}
	}
	res := Result{Action: ActionRestore, Backspace: len(e.buf.Trans), Codepoints: cloneRunes(e.buf.Raw)}
	e.buf.Clear()
	return res
}

// applyBackspace pops one raw key and recomputes TransformBuffer from
// the remaining RawBuffer, per the simpler §4.7 step 5 contract.
func (e *Engine) applyBackspace() Result {
	if len(e.buf.Raw) == 0 {
		return Result{Action: ActionNone}
	}
	oldTrans := cloneRunes(e.buf.Trans)
	e.buf.Raw = e.buf.Raw[:len(e.buf.Raw)-1]
	e.buf.English = false
	e.recomposeFromRaw()
	status := validate(e.buf)
	return e.restoreDecision(status, oldTrans)
}

// recomposeFromRaw replays RawBuffer through the same dispatch/apply
// path ProcessKey uses, rebuilding TransformBuffer from scratch.
func (e *Engine) recomposeFromRaw() {
	raw := append([]rune(nil), e.buf.Raw...)
	e.buf.Trans = e.buf.Trans[:0]
	e.buf.Pending = pendingTransform{}
	for _, r := range raw {
		k, ok := RuneToKey(r)
		if !ok {
			e.buf.Trans = append(e.buf.Trans, r)
			continue
		}
		upper := unicode.IsUpper(r)
		action := e.dispatch(k, upper)
		e.apply(action, k, r)
	}
}

// handleLetter is steps 3 (overflow already handled by the caller), 6
// through 11: append the raw key, dispatch and apply the rule, then
// re-validate and decide how to reflect the change to the host.
func (e *Engine) handleLetter(ev KeyEvent, k Key) Result {
	oldTrans := cloneRunes(e.buf.Trans)

	upper := ev.Uppercase
	if e.settings.AutoCapitalize && e.capitalizeNext && isLetterKey(k) {
		upper = true
	}
	r := e.literalRune(k, upper)

	e.buf.Raw = append(e.buf.Raw, r)
	if !e.buf.HasFirstLetter {
		e.buf.HasFirstLetter = true
		e.buf.FirstLetterUpper = upper
	}
	if isLetterKey(k) {
		e.capitalizeNext = false
	}

	if e.buf.English {
		e.buf.Trans = append(e.buf.Trans, r)
		return e.sendDiff(oldTrans)
	}

	action := e.dispatch(k, upper)
	e.apply(action, k, r)

	if action.Kind == RuleRevert {
		// A revert already resolved itself: the compose it undid is
		// gone and, if RevertLiteral, the trigger key is now plain
		// text. RawBuffer still remembers the undone keystroke (it
		// grows by one every key regardless of composition), so
		// re-validating against it here would only resurrect a
		// character the user just erased (Telex "arr" must read back
		// as "ar", not "arr").
		return e.sendDiff(oldTrans)
	}

	status := validate(e.buf)
	return e.restoreDecision(status, oldTrans)
}

// literalRune is the rune a key types when it is not consumed as a
// trigger: the ordinary keysym rune, ơ/ư when the bracket shortcut is
// enabled, or word-initial Telex w -> ư (§6 set_skip_w_shortcut).
func (e *Engine) literalRune(k Key, upper bool) rune {
	if e.settings.BracketShortcut {
		switch k {
		case KeyBracketOpen:
			if upper {
				return 'Ơ'
			}
			return 'ơ'
		case KeyBracketClose:
			if upper {
				return 'Ư'
			}
			return 'ư'
		}
	}
	if k == KeyW && !e.settings.SkipWShortcut && e.method.Name() == MethodTelex && len(e.buf.Trans) == 0 {
		if upper {
			return 'Ư'
		}
		return 'ư'
	}
	return keyRune(k, upper)
}

func (e *Engine) isBoundaryKey(k Key) bool {
	switch k {
	case KeySpace, KeyReturn, KeyTab, KeyPeriod, KeyComma, KeySemicolon,
		KeyApostrophe, KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown,
		KeySlash, KeyHyphen, KeyEquals, KeyBacktick, KeyBackslash:
		return true
	case KeyBracketOpen, KeyBracketClose:
		return !e.settings.BracketShortcut
	}
	if isDigitKey(k) {
		return e.settings.Method != MethodVNI
	}
	return false
}

func (e *Engine) isBufferKey(k Key) bool {
	if isLetterKey(k) {
		return true
	}
	if isDigitKey(k) {
		return e.settings.Method == MethodVNI
	}
	if k == KeyBracketOpen || k == KeyBracketClose {
		return e.settings.BracketShortcut
	}
	return false
}

// dispatch is §4.7 steps 7-8: look up the rule table entry for k and
// fold in double-key revert detection (same trigger as the pending
// transform means revert, not compose).
func (e *Engine) dispatch(k Key, upper bool) RuleAction {
	if tone, ok := e.method.ToneForKey(k); ok {
		if e.buf.Pending.active && e.buf.Pending.trigger == k {
			return RuleAction{Kind: RuleRevert, RevertLiteral: e.method.RevertsToLiteral(k)}
		}
		parsed, err := parseSyllable(e.buf.Trans)
		if err != nil || len(parsed.Nucleus) == 0 {
			return RuleAction{Kind: RuleLiteral}
		}
		pos := TonePosition(parsed, e.settings.ModernTone)
		abs := nucleusStartIndex(parsed) + pos
		return RuleAction{Kind: RuleTone, Tone: tone, Targets: []int{abs}}
	}

	if mod, ok := e.method.ModifierForKey(k); ok {
		if e.buf.Pending.active && e.buf.Pending.trigger == k {
			return RuleAction{Kind: RuleRevert, RevertLiteral: e.method.RevertsToLiteral(k)}
		}
		if mod == ModStroke {
			idx, ok := e.method.StrokeTarget(e.buf)
			if !ok {
				return RuleAction{Kind: RuleLiteral}
			}
			return RuleAction{Kind: RuleStroke, Mod: ModStroke, Targets: []int{idx}}
		}
		targets, ok := e.method.ModifierTargets(e.buf, mod)
		if ok && mod == ModCircumflex && e.method.Name() == MethodTelex {
			// Telex a/e/o only put the circumflex on their own letter:
			// "toe" stays "toe", it does not become "tô".
			if d, _ := decomposeRune(e.buf.Trans[targets[0]]); d.base != keyRune(k, false) {
				ok = false
			}
		}
		if !ok {
			return RuleAction{Kind: RuleLiteral}
		}
		return RuleAction{Kind: RuleModifier, Mod: mod, Targets: targets}
	}

	return RuleAction{Kind: RuleLiteral}
}

// apply is §4.7 step 9: mutate TransformBuffer per action, recording
// enough of a pending-transform snapshot for a later revert.
func (e *Engine) apply(action RuleAction, k Key, literalRune rune) {
	switch action.Kind {
	case RuleLiteral:
		e.buf.Trans = append(e.buf.Trans, literalRune)
		e.buf.Pending = pendingTransform{}

	case RuleTone:
		idx := action.Targets[0]
		before := e.buf.Trans[idx]
		d, _ := decomposeRune(before)
		if nr := composeVowel(d.base, d.mod, action.Tone, d.upper); nr != 0 {
			e.buf.Trans[idx] = nr
		}
		e.buf.Pending = pendingTransform{active: true, trigger: k, positions: []int{idx}, befores: []rune{before}}

	case RuleModifier:
		befores := make([]rune, len(action.Targets))
		for i, idx := range action.Targets {
			before := e.buf.Trans[idx]
			befores[i] = before
			d, _ := decomposeRune(before)
			if nr := composeVowel(d.base, action.Mod, d.tone, d.upper); nr != 0 {
				e.buf.Trans[idx] = nr
			}
		}
		e.buf.Pending = pendingTransform{active: true, trigger: k, positions: append([]int(nil), action.Targets...), befores: befores}

	case RuleStroke:
		idx := action.Targets[0]
		before := e.buf.Trans[idx]
		if nr := composeVowel('d', ModStroke, ToneNgang, unicode.IsUpper(before)); nr != 0 {
			e.buf.Trans[idx] = nr
		}
		e.buf.Pending = pendingTransform{active: true, trigger: k, positions: []int{idx}, befores: []rune{before}}

	case RuleRevert:
		e.undoPending()
		if action.RevertLiteral {
			e.buf.Trans = append(e.buf.Trans, literalRune)
		}
		e.buf.Pending = pendingTransform{}
		// A revert is the user explicitly rejecting the compose; the
		// rest of this word is plain text from here on, same as an
		// English auto-restore (Telex "arr" -> "ar", not a renewed
		// shot at Vietnamese parsing on the next key).
		e.buf.English = true
	}
}

func (e *Engine) undoPending() {
	p := e.buf.Pending
	if !p.active {
		return
	}
	for i, idx := range p.positions {
		if idx < len(e.buf.Trans) {
			e.buf.Trans[idx] = p.befores[i]
		}
	}
}

// nucleusStartIndex maps a ParsedSyllable's nucleus back to an
// absolute TransformBuffer index.
func nucleusStartIndex(p ParsedSyllable) int {
	return utf8.RuneCountInString(p.Initial) + utf8.RuneCountInString(p.Medial)
}

// restoreDecision is §4.7 step 11.
func (e *Engine) restoreDecision(status ValidationStatus, oldTrans []rune) Result {
	switch status {
	case ValidVN, ValidRaw:
		return e.sendDiff(oldTrans)

	case InvalidVN:
		if e.settings.EnglishAutoRestore && validateEnglish(e.buf.Raw) {
			return e.restoreToRaw(oldTrans)
		}
		return e.sendDiff(oldTrans)

	case Impossible:
		if e.buf.Pending.active {
			e.undoPending()
			e.buf.Pending = pendingTransform{}
			e.buf.Trans = append(e.buf.Trans, e.buf.Raw[len(e.buf.Raw)-1])
			return e.restoreDecision(validate(e.buf), oldTrans)
		}
		return e.restoreToRaw(oldTrans)
	}
	return Result{Action: ActionNone}
}

func (e *Engine) sendDiff(oldTrans []rune) Result {
	common := commonPrefixLen(oldTrans, e.buf.Trans)
	return Result{
		Action:     ActionSend,
		Backspace:  len(oldTrans) - common,
		Codepoints: cloneRunes(e.buf.Trans[common:]),
		Buffer:     cloneRunes(e.buf.Trans),
	}
}

// restoreToRaw commits RawBuffer as TransformBuffer (so it keeps
// mirroring host text) and latches English mode until the next
// boundary.
func (e *Engine) restoreToRaw(oldTrans []rune) Result {
	e.buf.English = true
	e.buf.Trans = cloneRunes(e.buf.Raw)
	common := commonPrefixLen(oldTrans, e.buf.Trans)
	return Result{
		Action:     ActionRestore,
		Backspace:  len(oldTrans) - common,
		Codepoints: cloneRunes(e.buf.Trans[common:]),
		Buffer:     cloneRunes(e.buf.Trans),
	}
}
