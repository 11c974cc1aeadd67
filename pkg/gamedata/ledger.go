package gamedata

import "strings"

// Ledger is the at-most-once guard over logical file loads. Keys
// compare case-insensitively, matching the file index. There is no
// removal: a loaded file stays loaded for the life of the process.
type Ledger struct {
	loaded map[string]bool
}

func NewLedger() *Ledger {
	return &Ledger{
		loaded: make(map[string]bool),
	}
}

// MarkAndCheck records key as loaded and reports whether this was the
// first request. Callers proceed with the load only on true; on false
// the work already happened and at most a cached handle should be
// returned.
func (l *Ledger) MarkAndCheck(key string) bool {
	lowered := strings.ToLower(key)
	if l.loaded[lowered] {
		return false
	}
	l.loaded[lowered] = true
	return true
}

// IsLoaded peeks without marking.
func (l *Ledger) IsLoaded(key string) bool {
	return l.loaded[strings.ToLower(key)]
}

func (l *Ledger) Count() int {
	return len(l.loaded)
}
