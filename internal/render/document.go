package render

import "boulouiha.dev/internal/views"

// HTMLDocument records what an open modal acquired so the rendered markup
// can carry it: a body scroll lock and a document-level Escape trigger.
// Both live inside the modal fragment, so swapping the fragment out
// releases them.
type HTMLDocument struct {
	locks     int
	listeners views.KeyListeners
}

// LockScroll marks page scrolling as suspended.
func (d *HTMLDocument) LockScroll() {
	d.locks++
}

// UnlockScroll releases one lock.
func (d *HTMLDocument) UnlockScroll() {
	if d.locks > 0 {
		d.locks--
	}
}

// AddKeyListener registers a document key listener.
func (d *HTMLDocument) AddKeyListener(fn func(key string)) func() {
	return d.listeners.Add(fn)
}

// ScrollLocked reports whether any lock is held.
func (d *HTMLDocument) ScrollLocked() bool {
	return d.locks > 0
}

// Listening reports whether a key listener is installed.
func (d *HTMLDocument) Listening() bool {
	return d.listeners.Len() > 0
}

// Press delivers a key to the installed listeners.
func (d *HTMLDocument) Press(key string) {
	d.listeners.Dispatch(key)
}
