package models

// Fixed reveal animation settings passed through to the client scheduler.
const (
	RevealOrigin   = "bottom"
	RevealDistance = "20px"
	RevealDuration = 500
	RevealEasing   = "cubic-bezier(0.645, 0.045, 0.355, 1)"

	DefaultRevealDelay      = 200
	DefaultRevealViewFactor = 0.25
)

// RevealConfig configures one entrance animation
type RevealConfig struct {
	DelayMs    int     `json:"delay"`
	ViewFactor float64 `json:"view_factor"`
}

// NewRevealConfig builds a config with delay clamped to >= 0 and viewFactor to [0,1]
func NewRevealConfig(delayMs int, viewFactor float64) RevealConfig {
	if delayMs < 0 {
		delayMs = 0
	}
	if viewFactor < 0 {
		viewFactor = 0
	}
	if viewFactor > 1 {
		viewFactor = 1
	}
	return RevealConfig{DelayMs: delayMs, ViewFactor: viewFactor}
}

// DefaultRevealConfig returns the site-wide default reveal settings
func DefaultRevealConfig() RevealConfig {
	return NewRevealConfig(DefaultRevealDelay, DefaultRevealViewFactor)
}
