package ports

import "rehearse/internal/domain"

// OverlayPresenter executes highlight scripts visually. The engine
// guarantees at most one annotation is shown at a time and that exactly one
// Hide call is delivered when navigating away or resuming play.
type OverlayPresenter interface {
	// Show presents the annotation's highlight overlay. Only called for
	// annotations that carry a highlight script.
	Show(ann *domain.Annotation)

	// Hide dismisses the currently visible overlay.
	Hide()
}
