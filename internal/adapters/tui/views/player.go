package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rehearse/internal/adapters/share"
	"rehearse/internal/adapters/tui/styles"
	"rehearse/internal/domain"
	"rehearse/internal/engine"
	"rehearse/internal/ports"
)

const scrubStepMs = 5000

// PlayerKeyMap defines key bindings for the player view
type PlayerKeyMap struct {
	PlayPause key.Binding
	Prev      key.Binding
	Next      key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Marker    key.Binding
	ScrubBack key.Binding
	ScrubFwd  key.Binding
	Toc       key.Binding
	CopyLink  key.Binding
	Edit      key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var PlayerKeys = PlayerKeyMap{
	PlayPause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous annotation"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next annotation"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "toc up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "toc down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "jump to selection"),
	),
	Marker: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "nearest marker"),
	),
	ScrubBack: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "scrub back 5s"),
	),
	ScrubFwd: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "scrub forward 5s"),
	),
	Toc: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle toc"),
	),
	CopyLink: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy deep link"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit document"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload document"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PlayerModel is the model for the player view: transport, markers, TOC
// panel and overlay popover around one engine instance.
type PlayerModel struct {
	eng     *engine.Engine
	source  ports.DocumentSource
	store   ports.SessionStore    // nil disables session persistence
	watcher ports.DocumentWatcher // nil disables live reload
	overlay *OverlayView
	baseURL string

	rows    []*domain.TimelineNode
	cursor  int
	showToc bool

	bar        progress.Model
	width      int
	height     int
	message    string
	messageErr bool
}

// NewPlayerModel creates a player around an already-built engine.
func NewPlayerModel(eng *engine.Engine, source ports.DocumentSource, store ports.SessionStore, watcher ports.DocumentWatcher, overlay *OverlayView, baseURL string) *PlayerModel {
	m := &PlayerModel{
		eng:     eng,
		source:  source,
		store:   store,
		watcher: watcher,
		overlay: overlay,
		baseURL: baseURL,
		showToc: true,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.refreshRows()
	return m
}

// Init starts the engine and the render loop. The engine's hash hydration is
// gated until here so a stale fragment never applies before first paint.
func (m *PlayerModel) Init() tea.Cmd {
	m.eng.Start()
	m.eng.Ready()
	cmds := []tea.Cmd{tickEvery(100 * time.Millisecond)}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForChange())
	}
	return tea.Batch(cmds...)
}

func (m *PlayerModel) waitForChange() tea.Cmd {
	changes := m.watcher.Changes()
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return documentChangedMsg{}
	}
}

func (m *PlayerModel) reload() tea.Msg {
	doc, err := m.source.Load()
	if err != nil {
		return errMsg{err}
	}
	return documentLoadedMsg{doc}
}

func (m *PlayerModel) refreshRows() {
	m.rows = m.eng.Timeline().Flatten()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages for the player
func (m *PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tickEvery(100 * time.Millisecond)

	case documentChangedMsg:
		return m, tea.Batch(m.reload, m.waitForChange())

	case documentLoadedMsg:
		m.eng.SetTimeline(domain.BuildTimeline(msg.doc))
		m.refreshRows()
		m.message = "document reloaded"
		m.messageErr = false
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case EditorFinishedMsg:
		if msg.Err != nil {
			m.message = msg.Err.Error()
			m.messageErr = true
			return m, nil
		}
		return m, m.reload

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *PlayerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = "" // Clear message on key press
	snap := m.eng.Snapshot()
	tl := m.eng.Timeline()

	switch {
	case key.Matches(msg, PlayerKeys.Quit):
		m.persistSession(snap)
		m.eng.Close()
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, PlayerKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, PlayerKeys.PlayPause):
		m.eng.TogglePlayPause()

	case key.Matches(msg, PlayerKeys.Next):
		if ann := tl.NextAfter(snap.CurrentTimeMs); ann != nil {
			m.eng.Navigate(domain.NavigationRequest{Target: ann, Source: domain.SourceKeyboard})
		} else {
			m.setInfo("no later annotation")
		}

	case key.Matches(msg, PlayerKeys.Prev):
		if ann := tl.PrevBefore(snap.CurrentTimeMs); ann != nil {
			m.eng.Navigate(domain.NavigationRequest{Target: ann, Source: domain.SourceKeyboard})
		} else {
			m.setInfo("no earlier annotation")
		}

	case key.Matches(msg, PlayerKeys.Marker):
		if ann := tl.NearestTo(snap.CurrentTimeMs); ann != nil {
			m.eng.Navigate(domain.NavigationRequest{Target: ann, Source: domain.SourceMarker})
		}

	case key.Matches(msg, PlayerKeys.ScrubBack):
		at := snap.CurrentTimeMs - scrubStepMs
		if at < 0 {
			at = 0
		}
		m.eng.Navigate(domain.NavigationRequest{Source: domain.SourceProgressBar, TimeMs: at})

	case key.Matches(msg, PlayerKeys.ScrubFwd):
		at := snap.CurrentTimeMs + scrubStepMs
		if end := tl.EndMs(); at > end {
			at = end
		}
		m.eng.Navigate(domain.NavigationRequest{Source: domain.SourceProgressBar, TimeMs: at})

	case key.Matches(msg, PlayerKeys.Toc):
		m.showToc = !m.showToc

	case key.Matches(msg, PlayerKeys.Up):
		if m.showToc && m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, PlayerKeys.Down):
		if m.showToc && m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, PlayerKeys.Select):
		if !m.showToc || m.cursor >= len(m.rows) {
			break
		}
		node := m.rows[m.cursor]
		if node.Kind == domain.NodeSection {
			node.Toggle()
			m.refreshRows()
		} else if node.Annotation != nil {
			m.eng.Navigate(domain.NavigationRequest{Target: node.Annotation, Source: domain.SourceToc})
		}

	case key.Matches(msg, PlayerKeys.CopyLink):
		id := snap.ActiveAnnotationID
		if id == "" && m.showToc && m.cursor < len(m.rows) && m.rows[m.cursor].Kind == domain.NodeAnnotation {
			id = m.rows[m.cursor].ID
		}
		if id == "" {
			m.setInfo("no annotation to link to")
			break
		}
		if err := share.CopyDeepLink(m.baseURL, id); err != nil {
			m.message = err.Error()
			m.messageErr = true
		} else {
			m.setInfo("copied " + share.DeepLink(m.baseURL, id))
		}

	case key.Matches(msg, PlayerKeys.Edit):
		// Pause before suspending; the clock keeps running otherwise.
		m.eng.Pause()
		path := m.source.Path()
		return m, func() tea.Msg { return OpenEditorMsg{Path: path} }

	case key.Matches(msg, PlayerKeys.Reload):
		return m, m.reload
	}

	return m, nil
}

func (m *PlayerModel) setInfo(text string) {
	m.message = text
	m.messageErr = false
}

func (m *PlayerModel) persistSession(snap engine.Snapshot) {
	if m.store == nil {
		return
	}
	// Best effort on the way out; the player is closing either way.
	_ = m.store.Save(&domain.Session{
		DocumentPath: m.source.Path(),
		PositionMs:   snap.CurrentTimeMs,
		Triggered:    m.eng.TriggeredIDs(),
	})
}

// View renders the player
func (m *PlayerModel) View() string {
	snap := m.eng.Snapshot()
	tl := m.eng.Timeline()

	var b strings.Builder
	b.WriteString(styles.Title.Render(tl.Doc.Title))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.source.Path()))
	b.WriteString("\n\n")

	main := m.renderTransport(snap, tl)
	if m.showToc {
		toc := styles.TocPanel.Render(m.renderToc(snap))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, toc, main))
	} else {
		b.WriteString(main)
	}
	b.WriteString("\n")

	if visible, title, body, script := m.overlay.State(); visible {
		b.WriteString("\n")
		b.WriteString(m.renderOverlay(title, body, script))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("space play/pause • ←/→ annotations • m marker • [/] scrub • t toc • y link • e edit • r reload • ? help • q quit"))

	return styles.App.Render(b.String())
}

func (m *PlayerModel) renderTransport(snap engine.Snapshot, tl *domain.Timeline) string {
	barWidth := m.width - 40
	if barWidth < 20 {
		barWidth = 20
	}
	m.bar.Width = barWidth

	end := tl.EndMs()
	percent := 0.0
	if end > 0 {
		percent = float64(snap.CurrentTimeMs) / float64(end)
		if percent > 1 {
			percent = 1
		}
	}

	var b strings.Builder
	status := styles.Paused.Render("⏸ paused")
	if snap.IsPlaying {
		status = styles.Playing.Render("▶ playing")
	}
	b.WriteString(status)
	b.WriteString("  ")
	b.WriteString(styles.TimeDisplay.Render(domain.FormatTimestamp(snap.CurrentTimeMs) + " / " + domain.FormatTimestamp(end)))
	b.WriteString("\n\n")

	b.WriteString(m.renderMarkers(snap, tl, barWidth))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(percent))
	b.WriteString("\n\n")

	if snap.ActiveAnnotationID != "" {
		if ann := tl.AnnotationByID(snap.ActiveAnnotationID); ann != nil {
			b.WriteString(styles.DetailTitle.Render(ann.Title))
			b.WriteString(styles.TocTimestamp.Render("  @ " + domain.FormatTimestamp(ann.TimestampMs)))
			b.WriteString("\n")
			if ann.Description != "" {
				b.WriteString(styles.DetailBody.Render(ann.Description))
				b.WriteString("\n")
			}
		}
	} else {
		b.WriteString(styles.MutedText.Render("no active annotation"))
		b.WriteString("\n")
	}

	return b.String()
}

// renderMarkers draws one cell per bar column, with ◆ where annotations sit.
func (m *PlayerModel) renderMarkers(snap engine.Snapshot, tl *domain.Timeline, width int) string {
	end := tl.EndMs()
	cells := make([]string, width)
	for i := range cells {
		cells[i] = styles.TrackLine.Render("─")
	}
	for _, ann := range tl.Ordered() {
		pos := 0
		if end > 0 {
			pos = int(ann.TimestampMs * int64(width-1) / end)
		}
		if pos < 0 || pos >= width {
			continue
		}
		style := styles.Marker
		if ann.ID == snap.ActiveAnnotationID {
			style = styles.MarkerActive
		}
		cells[pos] = style.Render("◆")
	}
	return strings.Join(cells, "")
}

func (m *PlayerModel) renderToc(snap engine.Snapshot) string {
	if len(m.rows) == 0 {
		return styles.MutedText.Render("(empty document)")
	}

	var b strings.Builder
	for i, node := range m.rows {
		line := ""
		switch node.Kind {
		case domain.NodeSection:
			indicator := styles.TocCollapsed
			if node.IsExpanded {
				indicator = styles.TocExpanded
			}
			line = indicator + node.Title
		case domain.NodeAnnotation:
			ts := styles.TocTimestamp.Render(domain.FormatTimestamp(node.Annotation.TimestampMs))
			line = "  " + styles.TocLeaf + node.Title + " " + ts
		}

		switch {
		case i == m.cursor:
			b.WriteString(styles.TocSelected.Render(line))
		case node.ID == snap.ActiveAnnotationID:
			b.WriteString(styles.TocActive.Render(line))
		case node.Kind == domain.NodeSection:
			b.WriteString(styles.TocSection.Render(line))
		default:
			b.WriteString(styles.TocEntry.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *PlayerModel) renderOverlay(title, body, script string) string {
	var b strings.Builder
	b.WriteString(styles.OverlayTitle.Render(title))
	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
	}
	if script != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("highlight: %s", script)))
	}
	return styles.Overlay.Render(b.String())
}

// SetSize updates the view dimensions
func (m *PlayerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
