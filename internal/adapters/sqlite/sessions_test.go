package sqlite

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"rehearse/internal/domain"
)

func openTestStore(t *testing.T) *SessionStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSessionRoundTrip(t *testing.T) {
	store := openTestStore(t)

	sess := &domain.Session{
		DocumentPath: "/tmp/demo.md",
		PositionMs:   2500,
		Triggered:    []string{"intro", "notebook"},
	}
	if err := store.Save(sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load("/tmp/demo.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned nil for a saved session")
	}
	if got.PositionMs != 2500 {
		t.Errorf("position = %d, want 2500", got.PositionMs)
	}
	if !reflect.DeepEqual(got.Triggered, []string{"intro", "notebook"}) {
		t.Errorf("triggered = %v", got.Triggered)
	}
	if got.UpdatedAt.IsZero() {
		t.Errorf("UpdatedAt should be filled on save")
	}
}

func TestSessionSaveOverwrites(t *testing.T) {
	store := openTestStore(t)

	first := &domain.Session{DocumentPath: "doc.md", PositionMs: 100, Triggered: []string{"a"}}
	second := &domain.Session{DocumentPath: "doc.md", PositionMs: 900, Triggered: nil}
	if err := store.Save(first); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(second); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load("doc.md")
	if err != nil {
		t.Fatal(err)
	}
	if got.PositionMs != 900 || len(got.Triggered) != 0 {
		t.Errorf("overwrite failed: %+v", got)
	}
}

func TestSessionLoadMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Load("never-saved.md")
	if err != nil {
		t.Fatalf("missing session is not an error: %v", err)
	}
	if got != nil {
		t.Errorf("Load(missing) = %+v, want nil", got)
	}
}

func TestSessionListOrder(t *testing.T) {
	store := openTestStore(t)

	older := &domain.Session{DocumentPath: "old.md", UpdatedAt: time.Now().Add(-time.Hour)}
	newer := &domain.Session{DocumentPath: "new.md", UpdatedAt: time.Now()}
	if err := store.Save(older); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(newer); err != nil {
		t.Fatal(err)
	}

	sessions, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions", len(sessions))
	}
	if sessions[0].DocumentPath != "new.md" {
		t.Errorf("most recent first, got %s", sessions[0].DocumentPath)
	}
}

func TestSessionDelete(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(&domain.Session{DocumentPath: "doc.md"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete("doc.md"); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load("doc.md")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("session survived delete: %+v", got)
	}
}
