package proctor

import "time"

// tracker turns a flickering per-tick boolean into a grace-filtered
// activation signal. The raw signal must hold true for at least the grace
// period before the tracker activates; any false sample resets it. Observe
// returns true exactly on the false-to-true edge of the filtered signal, so
// one sustained violation produces one activation no matter how many ticks
// it spans.
//
// A zero grace activates on the first true sample.
type tracker struct {
	grace    time.Duration
	raisedAt time.Time
	active   bool
}

func newTracker(grace time.Duration) *tracker {
	return &tracker{grace: grace}
}

// Observe feeds one raw sample taken at now.
func (t *tracker) Observe(raw bool, now time.Time) bool {
	if !raw {
		t.raisedAt = time.Time{}
		t.active = false
		return false
	}
	if t.raisedAt.IsZero() {
		t.raisedAt = now
	}
	if t.active || now.Sub(t.raisedAt) < t.grace {
		return false
	}
	t.active = true
	return true
}

// Active reports the current filtered state.
func (t *tracker) Active() bool {
	return t.active
}
