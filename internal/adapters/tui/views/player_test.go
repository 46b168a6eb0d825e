package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"rehearse/internal/domain"
	"rehearse/internal/engine"
)

type fakeClock struct {
	position int64
	playing  bool
}

func (c *fakeClock) CurrentTime() int64 { return c.position }
func (c *fakeClock) IsPlaying() bool    { return c.playing }

func (c *fakeClock) Play(atMs int64) {
	if atMs >= 0 {
		c.position = atMs
	}
	c.playing = true
}

func (c *fakeClock) Pause(atMs int64) {
	if atMs >= 0 {
		c.position = atMs
	}
	c.playing = false
}

type fakeSource struct {
	doc *domain.AnnotationDocument
}

func (s *fakeSource) Load() (*domain.AnnotationDocument, error) { return s.doc, nil }
func (s *fakeSource) Path() string                              { return "test.md" }

func playerDoc() *domain.AnnotationDocument {
	a1 := &domain.Annotation{ID: "a1", Title: "First", TimestampMs: 1000, SectionID: "walk"}
	a2 := &domain.Annotation{ID: "a2", Title: "Second", TimestampMs: 6000, SectionID: "walk"}
	return &domain.AnnotationDocument{
		Version:     1,
		Title:       "Player Test",
		Sections:    []*domain.TocSection{{ID: "walk", Title: "Walkthrough", Annotations: []*domain.Annotation{a1, a2}}},
		Annotations: []*domain.Annotation{a1, a2},
	}
}

func newTestPlayer(t *testing.T) (*PlayerModel, *engine.Engine, *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	overlay := NewOverlayView()
	eng := engine.New(domain.BuildTimeline(playerDoc()), clock, overlay, nil, engine.Options{})
	t.Cleanup(eng.Close)
	m := NewPlayerModel(eng, &fakeSource{doc: playerDoc()}, nil, nil, overlay, "http://localhost:5174/")
	return m, eng, clock
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPlayerNextKeyNavigates(t *testing.T) {
	m, eng, clock := newTestPlayer(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})

	snap := eng.Snapshot()
	if snap.ActiveAnnotationID != "a1" {
		t.Errorf("active = %q, want a1", snap.ActiveAnnotationID)
	}
	if clock.position != 1000 || clock.playing {
		t.Errorf("keyboard navigation should pause at the target, got position=%d playing=%v", clock.position, clock.playing)
	}
}

func TestPlayerPrevKeyAtStartIsNoOp(t *testing.T) {
	m, eng, _ := newTestPlayer(t)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})

	if got := eng.Snapshot().ActiveAnnotationID; got != "" {
		t.Errorf("active = %q, want none", got)
	}
	if m.message == "" {
		t.Error("expected an informational message for the no-op")
	}
}

func TestPlayerScrubClamps(t *testing.T) {
	m, eng, clock := newTestPlayer(t)

	m.Update(runeKey('['))
	if clock.position != 0 {
		t.Errorf("scrub back from 0 should clamp at 0, got %d", clock.position)
	}

	clock.position = 4000
	m.Update(runeKey(']'))
	if clock.position != 6000 {
		t.Errorf("scrub forward should clamp at the last annotation, got %d", clock.position)
	}
	if got := eng.Snapshot().ActiveAnnotationID; got != "" {
		t.Errorf("scrubbing should clear the active annotation, got %q", got)
	}
}

func TestPlayerTocSelection(t *testing.T) {
	m, eng, _ := newTestPlayer(t)

	// rows: [section, a1, a2]
	m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // fold section
	if len(m.rows) != 1 {
		t.Fatalf("rows after fold = %d, want 1", len(m.rows))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // unfold
	if len(m.rows) != 3 {
		t.Fatalf("rows after unfold = %d, want 3", len(m.rows))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := eng.Snapshot().ActiveAnnotationID; got != "a1" {
		t.Errorf("active = %q, want a1", got)
	}
}

func TestPlayerMarkerKey(t *testing.T) {
	m, eng, clock := newTestPlayer(t)
	clock.position = 5500

	m.Update(runeKey('m'))

	if got := eng.Snapshot().ActiveAnnotationID; got != "a2" {
		t.Errorf("nearest marker from 5500 = %q, want a2", got)
	}
}

func TestPlayerTocToggle(t *testing.T) {
	m, _, _ := newTestPlayer(t)

	if !m.showToc {
		t.Fatal("toc should start visible")
	}
	m.Update(runeKey('t'))
	if m.showToc {
		t.Error("t should hide the toc")
	}
}

func TestPlayerReloadSwapsTimeline(t *testing.T) {
	m, eng, _ := newTestPlayer(t)

	smaller := &domain.AnnotationDocument{
		Version:     1,
		Title:       "Smaller",
		Sections:    []*domain.TocSection{},
		Annotations: []*domain.Annotation{},
	}
	m.Update(documentLoadedMsg{doc: smaller})

	if got := eng.Timeline().Doc.Title; got != "Smaller" {
		t.Errorf("timeline title = %q, want Smaller", got)
	}
	if len(m.rows) != 0 {
		t.Errorf("rows = %d, want 0", len(m.rows))
	}
}

func TestPlayerViewRendersState(t *testing.T) {
	m, _, _ := newTestPlayer(t)
	m.SetSize(100, 40)

	out := m.View()
	if !strings.Contains(out, "Player Test") {
		t.Error("view should contain the document title")
	}
	if !strings.Contains(out, "paused") {
		t.Error("view should show the paused state")
	}
	if !strings.Contains(out, "Walkthrough") {
		t.Error("view should render the toc section")
	}
}
