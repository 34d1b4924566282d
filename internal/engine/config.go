package engine

// Settings holds every push-in toggle the §6 operation table exposes.
// The core owns no persisted state and reads no config file; a host
// rebuilds Settings (and the shortcut table) at startup if it wants
// persistence, matching the teacher's EngineConfig/DefaultConfig shape.
type Settings struct {
	Method InputMethodName

	Enabled bool

	// ModernTone selects step 8's placement style for oa/oe/uy, applied
	// uniformly across every style-dependent rule rather than case by
	// case (see SPEC_FULL.md's Open Question resolution).
	ModernTone bool

	AutoCapitalize bool

	EnglishAutoRestore bool

	EscRestore bool

	// BracketShortcut enables '['->ơ, ']'->ư.
	BracketShortcut bool

	// SkipWShortcut disables Telex's word-initial w->ư when true.
	SkipWShortcut bool
}

// DefaultSettings returns the engine's default configuration.
func DefaultSettings() Settings {
	return Settings{
		Method:             MethodTelex,
		Enabled:            true,
		ModernTone:         true,
		AutoCapitalize:     false,
		EnglishAutoRestore: true,
		EscRestore:         false,
		BracketShortcut:    false,
		SkipWShortcut:      false,
	}
}
