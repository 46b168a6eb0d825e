package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rehearse/internal/domain"
	"rehearse/internal/ports"

	_ "modernc.org/sqlite"
)

// SessionStore persists playback sessions in SQLite so a document can be
// resumed where it was left off, triggered set included.
type SessionStore struct {
	db     *sql.DB
	dbPath string
}

var _ ports.SessionStore = (*SessionStore)(nil)

// Open creates or opens the session database. An empty path selects the
// default location under the XDG data directory.
func Open(dbPath string) (*SessionStore, error) {
	if dbPath == "" {
		dbPath = defaultDatabasePath()
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS sessions (
			document_path TEXT PRIMARY KEY,
			position_ms   INTEGER NOT NULL,
			triggered     TEXT NOT NULL,
			updated_at    INTEGER NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup session database: %w", err)
	}

	return &SessionStore{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SessionStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save upserts the session for its document path.
func (s *SessionStore) Save(sess *domain.Session) error {
	updated := sess.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO sessions (document_path, position_ms, triggered, updated_at)
		VALUES (?, ?, ?, ?)
	`, sess.DocumentPath, sess.PositionMs, strings.Join(sess.Triggered, ","), updated.Unix())
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns the stored session for a document path, or nil.
func (s *SessionStore) Load(documentPath string) (*domain.Session, error) {
	row := s.db.QueryRow(`
		SELECT position_ms, triggered, updated_at FROM sessions WHERE document_path = ?
	`, documentPath)

	var positionMs, updatedAt int64
	var triggered string
	if err := row.Scan(&positionMs, &triggered, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &domain.Session{
		DocumentPath: documentPath,
		PositionMs:   positionMs,
		Triggered:    splitTriggered(triggered),
		UpdatedAt:    time.Unix(updatedAt, 0),
	}, nil
}

// List returns all stored sessions, most recently updated first.
func (s *SessionStore) List() ([]domain.Session, error) {
	rows, err := s.db.Query(`
		SELECT document_path, position_ms, triggered, updated_at
		FROM sessions ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var sess domain.Session
		var triggered string
		var updatedAt int64
		if err := rows.Scan(&sess.DocumentPath, &sess.PositionMs, &triggered, &updatedAt); err != nil {
			return nil, err
		}
		sess.Triggered = splitTriggered(triggered)
		sess.UpdatedAt = time.Unix(updatedAt, 0)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// Delete removes the session for a document path.
func (s *SessionStore) Delete(documentPath string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE document_path = ?`, documentPath); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func splitTriggered(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}

// defaultDatabasePath returns the session database path under XDG data.
func defaultDatabasePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "rehearse", "sessions.db")
}
