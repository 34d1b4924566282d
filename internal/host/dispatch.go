// Package host adapts the transport-agnostic engine core to a
// particular platform: it owns the §5 serialization contract (one
// in-flight operation per engine, enforced with a mutex) and the §6
// operation table, translating each wire operation into a call on
// engine.Engine.
package host

import "github.com/username/goviet-ime/internal/engine"

// Op is the closed §6 operation set a host can ask Dispatch to run.
type Op int

const (
	OpProcessKey Op = iota
	OpSetMethod
	OpSetEnabled
	OpSetModernTone
	OpSetAutoCapitalize
	OpSetEnglishAutoRestore
	OpSetEscRestore
	OpSetBracketShortcut
	OpSetSkipWShortcut
	OpAddShortcut
	OpRemoveShortcut
	OpClearShortcuts
	OpClear
	OpGetBuffer
)

// Request is the dispatch-time payload for ops that need one; fields
// irrelevant to a given Op are left zero.
type Request struct {
	Key        engine.KeyEvent
	Bool       bool
	Method     engine.InputMethodName
	Trigger    string
	Expansion  string
}

// Dispatch runs a single §6 operation against an engine, holding the
// session's lock for the call's full duration (the caller, SessionStore.Do,
// is responsible for that locking — Dispatch itself assumes exclusive
// access to e).
func Dispatch(e *engine.Engine, op Op, req Request) engine.Result {
	switch op {
	case OpProcessKey:
		return e.ProcessKey(req.Key)

	case OpSetMethod:
		s := e.Settings()
		s.Method = req.Method
		e.SetSettings(s)

	case OpSetEnabled:
		s := e.Settings()
		s.Enabled = req.Bool
		e.SetSettings(s)

	case OpSetModernTone:
		s := e.Settings()
		s.ModernTone = req.Bool
		e.SetSettings(s)

	case OpSetAutoCapitalize:
		s := e.Settings()
		s.AutoCapitalize = req.Bool
		e.SetSettings(s)

	case OpSetEnglishAutoRestore:
		s := e.Settings()
		s.EnglishAutoRestore = req.Bool
		e.SetSettings(s)

	case OpSetEscRestore:
		s := e.Settings()
		s.EscRestore = req.Bool
		e.SetSettings(s)

	case OpSetBracketShortcut:
		s := e.Settings()
		s.BracketShortcut = req.Bool
		e.SetSettings(s)

	case OpSetSkipWShortcut:
		s := e.Settings()
		s.SkipWShortcut = req.Bool
		e.SetSettings(s)

	case OpAddShortcut:
		e.Shortcuts().Add(req.Trigger, req.Expansion)

	case OpRemoveShortcut:
		e.Shortcuts().Remove(req.Trigger)

	case OpClearShortcuts:
		e.Shortcuts().Clear()

	case OpClear:
		e.Clear()

	case OpGetBuffer:
		return engine.Result{Action: engine.ActionNone, Buffer: e.Buffer()}
	}
	return engine.Result{Action: engine.ActionNone}
}
