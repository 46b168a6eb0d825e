package ports

import "rehearse/internal/domain"

// DocumentSource loads annotation documents from wherever they live.
type DocumentSource interface {
	// Load reads and parses the document. A missing document is not an
	// error; it yields an empty document and the engine runs inert.
	Load() (*domain.AnnotationDocument, error)

	// Path identifies the document for session bookkeeping.
	Path() string
}

// DocumentWatcher notifies about external changes to the document.
type DocumentWatcher interface {
	// Changes delivers a signal per (debounced) modification.
	Changes() <-chan struct{}

	// Close stops watching and closes the Changes channel.
	Close() error
}
