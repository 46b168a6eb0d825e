package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"rehearse/internal/adapters/editor"
	"rehearse/internal/adapters/tui/views"
	"rehearse/internal/engine"
	"rehearse/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPlayer ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor *editor.Opener

	state  ViewState
	player *views.PlayerModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp wires the player around an engine and its collaborators. Store,
// watcher and editor may be nil; the corresponding features are disabled.
func NewApp(eng *engine.Engine, source ports.DocumentSource, store ports.SessionStore, watcher ports.DocumentWatcher, ed *editor.Opener, overlay *views.OverlayView, baseURL string) *App {
	return &App{
		editor: ed,
		state:  ViewPlayer,
		player: views.NewPlayerModel(eng, source, store, watcher, overlay, baseURL),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.player.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.player.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToPlayerMsg:
		a.state = ViewPlayer
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)
	}

	// Delegate to current view. The player keeps receiving ticks while the
	// help view is up so the engine state stays fresh behind it.
	var cmd tea.Cmd
	switch a.state {
	case ViewHelp:
		if _, isKey := msg.(tea.KeyMsg); isKey {
			_, cmd = a.help.Update(msg)
			return a, cmd
		}
		_, cmd = a.player.Update(msg)
	default:
		_, cmd = a.player.Update(msg)
	}

	return a, cmd
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return views.EditorFinishedMsg{Err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return views.EditorFinishedMsg{Err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.player.View()
	}
}
