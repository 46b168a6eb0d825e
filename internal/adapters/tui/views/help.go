package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rehearse/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToPlayerMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Rehearse Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Annotated session replay"))
	b.WriteString("\n\n")

	b.WriteString(styles.OverlayTitle.Render("Transport"))
	b.WriteString("\n")
	b.WriteString(helpLine("space", "Play / pause"))
	b.WriteString(helpLine("← / →", "Previous / next annotation"))
	b.WriteString(helpLine("m", "Jump to nearest marker"))
	b.WriteString(helpLine("[ / ]", "Scrub back / forward 5 s"))
	b.WriteString("\n")

	b.WriteString(styles.OverlayTitle.Render("Table of contents"))
	b.WriteString("\n")
	b.WriteString(helpLine("t", "Toggle the TOC panel"))
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move the selection"))
	b.WriteString(helpLine("Enter", "Jump to annotation / fold section"))
	b.WriteString("\n")

	b.WriteString(styles.OverlayTitle.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("y", "Copy deep link to the active annotation"))
	b.WriteString(helpLine("e", "Edit the document in $EDITOR"))
	b.WriteString(helpLine("r", "Reload the document"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit (saves the session)"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
