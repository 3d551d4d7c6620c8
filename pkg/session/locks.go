package session

import "sync"

// lockTable serializes mutating calls per session. Entries are refcounted
// and removed when the last holder releases, so the table never grows with
// the number of sessions ever seen, only with the number currently active.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*sessionLock)}
}

// Acquire blocks until the caller holds the session's lock and returns the
// release function. Release must be called exactly once.
func (t *lockTable) Acquire(sessionID string) func() {
	t.mu.Lock()
	l, ok := t.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		t.locks[sessionID] = l
	}
	l.refs++
	t.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		t.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(t.locks, sessionID)
		}
		t.mu.Unlock()
	}
}
