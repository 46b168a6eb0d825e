package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rehearse/internal/domain"
)

// View switching messages

// SwitchToHelpMsg asks the app to show the help view.
type SwitchToHelpMsg struct{}

// SwitchToPlayerMsg asks the app to return to the player view.
type SwitchToPlayerMsg struct{}

// OpenEditorMsg asks the app to suspend the TUI and open the document in
// the user's editor.
type OpenEditorMsg struct {
	Path string
}

// EditorFinishedMsg reports the editor exiting; the player reloads on it.
type EditorFinishedMsg struct {
	Err error
}

// Player messages

type tickMsg time.Time

type documentLoadedMsg struct {
	doc *domain.AnnotationDocument
}

type documentChangedMsg struct{}

type errMsg struct {
	err error
}

// tickEvery drives the render loop; the engine polls the clock on its own
// ticker, this one only repaints.
func tickEvery(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func padRight(s string, length int) string {
	for len([]rune(s)) < length {
		s += " "
	}
	return s
}
