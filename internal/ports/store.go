package ports

import "rehearse/internal/domain"

// SessionStore persists playback sessions across runs of the player.
type SessionStore interface {
	// Save upserts the session for its document path.
	Save(s *domain.Session) error

	// Load returns the stored session for a document path, or nil when
	// none exists.
	Load(documentPath string) (*domain.Session, error)

	// List returns all stored sessions, most recently updated first.
	List() ([]domain.Session, error)

	// Delete removes the session for a document path.
	Delete(documentPath string) error

	Close() error
}
