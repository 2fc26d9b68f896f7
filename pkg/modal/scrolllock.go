package modal

// Scroller is the background surface whose scrolling a modal suspends.
// In the TUI this is the host view's scroll offset; any scrollable
// container can sit behind it.
type Scroller interface {
	ScrollOffset() int
	SetScrollOffset(offset int)
}

// ScrollLock suspends background scrolling while held and guarantees the
// pre-acquisition offset is restored on release.
//
// The lock has a single holder: acquiring an already-held lock is a no-op,
// and Release is idempotent so every exit path (close, teardown, non-LIFO
// modal shutdown) can release unconditionally.
type ScrollLock struct {
	scroller Scroller
	held     bool
	saved    int
}

// Acquire captures the scroller's current offset and marks the lock held.
func (l *ScrollLock) Acquire(s Scroller) {
	if l.held || s == nil {
		return
	}
	l.scroller = s
	l.saved = s.ScrollOffset()
	l.held = true
}

// Held reports whether the lock is currently held.
func (l *ScrollLock) Held() bool { return l.held }

// Locks reports whether the lock suppresses scrolling of s. Hosts consult
// this before applying scroll input to the background.
func (l *ScrollLock) Locks(s Scroller) bool {
	return l.held && l.scroller == s
}

// Release restores the captured offset and releases the lock. Releasing a
// lock that is not held does nothing.
func (l *ScrollLock) Release() {
	if !l.held {
		return
	}
	l.scroller.SetScrollOffset(l.saved)
	l.held = false
	l.scroller = nil
}
