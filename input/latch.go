package input

import "time"

// HoldLatch emulates held keys on hosts that report presses but never releases
// (terminals). A fresh press asserts the action for the first window, which must outlast
// the OS initial repeat delay; auto-repeat presses while held refresh it with the shorter
// repeat window so a released key stops soon after the last repeat. Pressing one
// direction releases the opposite one immediately
type HoldLatch struct {
	first  time.Duration
	repeat time.Duration
	until  map[Action]time.Time
}

// NewHoldLatch creates a latch. A non-positive repeat reuses first
func NewHoldLatch(first, repeat time.Duration) *HoldLatch {
	if repeat <= 0 {
		repeat = first
	}
	return &HoldLatch{
		first:  first,
		repeat: repeat,
		until:  make(map[Action]time.Time, 4),
	}
}

// Press asserts a until now plus the first window, or the repeat window when a is
// already held
func (l *HoldLatch) Press(a Action, now time.Time) {
	if opp := a.Opposite(); opp != ActionNone {
		delete(l.until, opp)
	}
	window := l.first
	if l.Held(a, now) {
		window = l.repeat
	}
	l.until[a] = now.Add(window)
}

// Release drops a immediately
func (l *HoldLatch) Release(a Action) {
	delete(l.until, a)
}

// Held reports whether a is still asserted at now
func (l *HoldLatch) Held(a Action, now time.Time) bool {
	deadline, ok := l.until[a]
	if !ok {
		return false
	}
	if !now.Before(deadline) {
		delete(l.until, a)
		return false
	}
	return true
}

// Clear releases everything
func (l *HoldLatch) Clear() {
	clear(l.until)
}
