package views

import (
	"sync"

	"rehearse/internal/domain"
)

// OverlayView is the terminal stand-in for a highlight overlay: it holds the
// annotation whose script is currently "running" so the player view can draw
// a popover. Show and Hide arrive from the engine on arbitrary goroutines.
type OverlayView struct {
	mu      sync.Mutex
	visible bool
	title   string
	body    string
	script  string
}

// NewOverlayView creates an empty overlay presenter.
func NewOverlayView() *OverlayView {
	return &OverlayView{}
}

// Show presents the annotation's highlight overlay.
func (o *OverlayView) Show(ann *domain.Annotation) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.visible = true
	o.title = ann.Title
	o.body = ann.Description
	o.script = ann.HighlightScript
}

// Hide dismisses the overlay.
func (o *OverlayView) Hide() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.visible = false
}

// State returns a consistent snapshot for rendering.
func (o *OverlayView) State() (visible bool, title, body, script string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible, o.title, o.body, o.script
}
