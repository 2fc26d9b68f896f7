// Package focus constrains keyboard focus cycling to a container's
// focusable elements while a trap is active.
//
// The trap is surface-agnostic: the host supplies its focusable elements
// and focus accessors behind the Surface interface, so any widget tree can
// sit behind it. The trap only intercepts the wrapping Tab presses at the
// ends of the cycle; ordinary Tab movement stays with the host. Restoring
// focus after deactivation is the owner's job (the modal's, in practice) —
// the trap captures the pre-activation target and exposes it, nothing more.
package focus

// Focusable is one focusable element of a surface, in traversal order.
// Offsets and dimensions are relative to the surface origin so hosts can
// also use the list for mouse hit regions.
type Focusable struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// Surface is the capability a host exposes to the trap: ordered focusable
// discovery plus focus read/write.
type Surface interface {
	// Focusables returns the focusable elements in traversal order.
	// Disabled or hidden elements must not be included.
	Focusables() []Focusable
	// CurrentFocus returns the ID of the focused element, or "".
	CurrentFocus() string
	// SetFocus moves focus to the element with the given ID.
	SetFocus(id string)
}

// Trap confines Tab cycling to a surface while active.
type Trap struct {
	surface  Surface
	active   bool
	captured string
	pending  bool // initial focus move deferred to the next render
}

// New creates an inactive trap over the surface.
func New(surface Surface) *Trap {
	return &Trap{surface: surface}
}

// Active reports whether the trap is intercepting.
func (t *Trap) Active() bool { return t.active }

// Captured returns the focus target recorded at activation, for the owner
// to restore after the trap is gone.
func (t *Trap) Captured() string { return t.captured }

// Activate captures the currently focused target and schedules the initial
// focus move for the next render, once the surface has produced its
// focusables. Activating an active trap is a no-op.
func (t *Trap) Activate() {
	if t.active {
		return
	}
	t.active = true
	t.captured = t.surface.CurrentFocus()
	t.pending = true
}

// InitialFocus performs the deferred first-focus move. Call once the
// surface is rendered and its focusables exist. A trap deactivated before
// this fires does nothing: the deferred move is cancelled, not executed.
func (t *Trap) InitialFocus() {
	if !t.active || !t.pending {
		return
	}
	t.pending = false
	fs := t.surface.Focusables()
	if len(fs) == 0 {
		// No focusable descendants: keep intercepting, move nothing.
		return
	}
	t.surface.SetFocus(fs[0].ID)
}

// Deactivate stops interception and cancels any pending initial focus.
// The trap makes no further focus changes; the captured target stays
// available through Captured.
func (t *Trap) Deactivate() {
	t.active = false
	t.pending = false
}

// HandleTab intercepts a Tab (or Shift+Tab when back is true) press.
// It returns true when the press wrapped focus around an end of the cycle;
// false means the press is not the trap's concern and the host should move
// focus normally.
func (t *Trap) HandleTab(back bool) bool {
	if !t.active {
		return false
	}
	fs := t.surface.Focusables()
	if len(fs) == 0 {
		return false
	}

	current := t.surface.CurrentFocus()
	first := fs[0].ID
	last := fs[len(fs)-1].ID

	if !back && current == last {
		t.surface.SetFocus(first)
		return true
	}
	if back && current == first {
		t.surface.SetFocus(last)
		return true
	}
	return false
}
