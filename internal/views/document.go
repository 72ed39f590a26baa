package views

import "sort"

// Key names as delivered by browsers.
const (
	KeyEnter  = "Enter"
	KeySpace  = " "
	KeyEscape = "Escape"
)

// Input is a user activation: a Click or a Key press.
type Input interface {
	isInput()
}

// Click is a pointer activation.
type Click struct{}

// Key is a keyboard activation.
type Key struct {
	Name string
}

func (Click) isInput() {}
func (Key) isInput()   {}

// Document is the page-level surface the modal acquires while open.
type Document interface {
	LockScroll()
	UnlockScroll()
	// AddKeyListener installs a document-wide key listener and returns
	// the function that removes it.
	AddKeyListener(fn func(key string)) (remove func())
}

// KeyListeners is a registry of document key listeners. Removing a
// listener while Dispatch runs is allowed.
type KeyListeners struct {
	next int
	fns  map[int]func(string)
}

// Add installs fn and returns its remover. Calling the remover twice is a no-op.
func (l *KeyListeners) Add(fn func(key string)) func() {
	if l.fns == nil {
		l.fns = make(map[int]func(string))
	}
	id := l.next
	l.next++
	l.fns[id] = fn
	return func() {
		delete(l.fns, id)
	}
}

// Len returns the number of installed listeners.
func (l *KeyListeners) Len() int {
	return len(l.fns)
}

// Dispatch delivers key to every listener installed at call time, in
// installation order.
func (l *KeyListeners) Dispatch(key string) {
	ids := make([]int, 0, len(l.fns))
	for id := range l.fns {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := l.fns[id]; ok {
			fn(key)
		}
	}
}

type nopDocument struct{}

func (nopDocument) LockScroll()   {}
func (nopDocument) UnlockScroll() {}
func (nopDocument) AddKeyListener(func(string)) func() {
	return func() {}
}
