package engine

// BufferLifecycle is the §4.10 buffer state machine.
type BufferLifecycle int

const (
	StateEmpty BufferLifecycle = iota
	StateRawOnly
	StateComposed
	StateEnglishMode
)

// strokeState names the two states of the §4.10 stroke-deferral state
// machine. The engine never enters PendingD: a stroke key converts d
// to đ at once (RuleStroke), and only a revert or Impossible rollback
// turns it back into d.
type strokeState int

const (
	NoPendingD strokeState = iota
	PendingD
)

// pendingTransform is the "last-applied-transform" record (§3): revert
// history only ever needs to remember one entry. positions/befores
// hold the TransformBuffer index(es) the trigger mutated and their
// pre-mutation rune(s), so RuleRevert can restore them exactly (2
// entries for the Telex "uow"/VNI "uo7" horn spread, 1 otherwise).
type pendingTransform struct {
	active    bool
	trigger   Key
	positions []int
	befores   []rune
}

// BufferState is the §3/§7 per-syllable substrate: raw keystrokes,
// their transformed rendering, the parsed syllable cache, and the
// small amount of derived state (pending revert, stroke deferral,
// English-mode latch) the pipeline needs between keys.
type BufferState struct {
	Raw    []rune
	Trans  []rune
	Parsed ParsedSyllable
	ParsedOK bool

	English bool
	Stroke  strokeState
	Pending pendingTransform

	// FirstLetterUpper records the case the engine committed for the
	// very first letter of the current word. No restore path reads it:
	// an English restore copies RawBuffer, which already holds that
	// letter in the case it was typed with (auto-capitalize included).
	FirstLetterUpper bool
	HasFirstLetter   bool
}

// NewBufferState returns an empty buffer.
func NewBufferState() *BufferState {
	return &BufferState{
		Raw:   make([]rune, 0, maxBufferLen),
		Trans: make([]rune, 0, maxBufferLen),
	}
}

// Clear resets the buffer to Empty.
func (b *BufferState) Clear() {
	b.Raw = b.Raw[:0]
	b.Trans = b.Trans[:0]
	b.Parsed = ParsedSyllable{}
	b.ParsedOK = false
	b.English = false
	b.Stroke = NoPendingD
	b.Pending = pendingTransform{}
	b.FirstLetterUpper = false
	b.HasFirstLetter = false
}

// Full reports whether the buffer is at its 32-codepoint capacity
// (Invariant V3).
func (b *BufferState) Full() bool {
	return len(b.Raw) >= maxBufferLen || len(b.Trans) >= maxBufferLen
}

// Lifecycle returns the buffer's current §4.10 state.
func (b *BufferState) Lifecycle() BufferLifecycle {
	if len(b.Raw) == 0 {
		return StateEmpty
	}
	if b.English {
		return StateEnglishMode
	}
	if b.ParsedOK {
		return StateComposed
	}
	return StateRawOnly
}

// commonPrefixLen returns how many leading runes a and b share.
func commonPrefixLen(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// cloneRunes copies a rune slice so callers can't mutate engine state
// through a returned Result or Syllable.
func cloneRunes(r []rune) []rune {
	if len(r) == 0 {
		return nil
	}
	out := make([]rune, len(r))
	copy(out, r)
	return out
}
