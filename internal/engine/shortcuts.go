package engine

import "unicode/utf8"

// ShortcutTable is C9: a bounded trigger -> expansion map, looked up
// only at word boundaries. Additions, removals, and a full clear are
// its only mutations (spec §4.9).
type ShortcutTable struct {
	entries map[string]string
	order   []string // insertion order, oldest first, for FIFO eviction
}

// NewShortcutTable returns an empty shortcut table.
func NewShortcutTable() *ShortcutTable {
	return &ShortcutTable{entries: make(map[string]string)}
}

// Add inserts or replaces a trigger's expansion. Oversize triggers or
// expansions are rejected silently, per §7 ("rejected silently; table
// unchanged"). Re-adding an existing trigger updates its expansion in
// place without moving it in FIFO order. When the table is full, the
// oldest-inserted trigger is evicted first (§7: "replaces
// least-recently-added entry").
func (t *ShortcutTable) Add(trigger, expansion string) bool {
	if trigger == "" || utf8.RuneCountInString(trigger) > maxShortcutTrigger {
		return false
	}
	if utf8.RuneCountInString(expansion) > maxShortcutExpansion {
		return false
	}
	if _, exists := t.entries[trigger]; exists {
		t.entries[trigger] = expansion
		return true
	}
	if len(t.order) >= maxShortcutEntries {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.entries, oldest)
	}
	t.entries[trigger] = expansion
	t.order = append(t.order, trigger)
	return true
}

// Remove deletes a trigger, if present.
func (t *ShortcutTable) Remove(trigger string) {
	if _, exists := t.entries[trigger]; !exists {
		return
	}
	delete(t.entries, trigger)
	for i, k := range t.order {
		if k == trigger {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Clear empties the table.
func (t *ShortcutTable) Clear() {
	t.entries = make(map[string]string)
	t.order = nil
}

// Lookup matches a trigger case-sensitively, as typed since the last
// word boundary.
func (t *ShortcutTable) Lookup(trigger string) (string, bool) {
	expansion, ok := t.entries[trigger]
	return expansion, ok
}

// Len reports the number of entries currently in the table.
func (t *ShortcutTable) Len() int {
	return len(t.entries)
}
