package views

import "boulouiha.dev/internal/models"

// Element is an opaque handle to a rendered element (its DOM id on the web).
type Element string

// Revealer schedules a one-time entrance animation for an element.
// Calls are fire-and-forget.
type Revealer interface {
	Reveal(el Element, cfg models.RevealConfig)
}

// RevealerFunc adapts a plain function to Revealer.
type RevealerFunc func(el Element, cfg models.RevealConfig)

// Reveal calls f.
func (f RevealerFunc) Reveal(el Element, cfg models.RevealConfig) {
	f(el, cfg)
}

// NopRevealer discards every call.
type NopRevealer struct{}

// Reveal does nothing.
func (NopRevealer) Reveal(Element, models.RevealConfig) {}

// RevealCall is one recorded Reveal invocation.
type RevealCall struct {
	Element Element
	Config  models.RevealConfig
}

// RecordingRevealer keeps every call in order.
type RecordingRevealer struct {
	Calls []RevealCall
}

// Reveal records the call.
func (r *RecordingRevealer) Reveal(el Element, cfg models.RevealConfig) {
	r.Calls = append(r.Calls, RevealCall{Element: el, Config: cfg})
}

// Config returns the config registered for el, if any.
func (r *RecordingRevealer) Config(el Element) (models.RevealConfig, bool) {
	if r == nil {
		return models.RevealConfig{}, false
	}
	for _, c := range r.Calls {
		if c.Element == el {
			return c.Config, true
		}
	}
	return models.RevealConfig{}, false
}

// Stagger returns the reveal delay for the item at ordinal.
func Stagger(ordinal, stepMs int) int {
	if ordinal < 0 {
		return 0
	}
	return ordinal * stepMs
}

func revealOrNop(r Revealer) Revealer {
	if r == nil {
		return NopRevealer{}
	}
	return r
}
