package tui

import "boulouiha.dev/internal/views"

// TerminalDocument is the Document of the terminal browser. A held scroll
// lock freezes grid navigation; key listeners see every key before the grid.
type TerminalDocument struct {
	locks     int
	listeners views.KeyListeners
}

func (d *TerminalDocument) LockScroll() {
	d.locks++
}

func (d *TerminalDocument) UnlockScroll() {
	if d.locks > 0 {
		d.locks--
	}
}

func (d *TerminalDocument) AddKeyListener(fn func(key string)) func() {
	return d.listeners.Add(fn)
}

// ScrollLocked reports whether navigation is frozen.
func (d *TerminalDocument) ScrollLocked() bool {
	return d.locks > 0
}

// Listeners returns how many key listeners are installed.
func (d *TerminalDocument) Listeners() int {
	return d.listeners.Len()
}

// Dispatch delivers a DOM-style key name to the listeners.
func (d *TerminalDocument) Dispatch(key string) {
	d.listeners.Dispatch(key)
}

// domKey maps bubbletea key strings to the names the views expect.
func domKey(k string) string {
	switch k {
	case "esc":
		return views.KeyEscape
	case "enter":
		return views.KeyEnter
	case " ", "space":
		return views.KeySpace
	}
	return k
}
