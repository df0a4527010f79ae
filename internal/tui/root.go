package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/idomanteu/claude-code-launcher/internal/model"
)

// Selection is the project the user chose and how to launch it
type Selection struct {
	Project   model.Project
	Dangerous bool
}

// Model is the root Bubble Tea model
type Model struct {
	session Session
	keys    KeyMap

	// Set once the program is about to exit
	selection *Selection
	quitting  bool
}

// NewRootModel creates the selector over projects, newest first
func NewRootModel(projects []model.Project) Model {
	return Model{
		session: NewSession(projects),
		keys:    DefaultKeyMap(),
	}
}

// Selection returns the chosen project, or nil if the user quit
func (m Model) Selection() *Selection {
	return m.selection
}

// Session exposes the current selector state
func (m Model) Session() Session {
	return m.session
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.quitting || m.selection != nil {
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Interrupt) {
		return m.quit()
	}

	if m.session.Mode() == ModeFilter {
		return m.updateFilter(keyMsg)
	}
	if keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) > 1 {
		return m.replayRunes(keyMsg)
	}
	return m.updateBrowse(keyMsg)
}

// replayRunes handles runes that arrived in one read as separate key
// presses, so "/web" opens the filter and types "web"
func (m Model) replayRunes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var next tea.Model = m
	for _, r := range msg.Runes {
		var cmd tea.Cmd
		next, cmd = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt})
		if cmd != nil {
			return next, cmd
		}
	}
	return next, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		m.session.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.session.MoveDown()
	case key.Matches(msg, m.keys.Enter):
		if p, ok := m.session.Current(); ok {
			return m.selectProject(p)
		}
	case key.Matches(msg, m.keys.Search):
		m.session.StartFilter()
	case key.Matches(msg, m.keys.Dangerous):
		m.session.ToggleDangerous()
	case key.Matches(msg, m.keys.Shortcut):
		if p, ok := m.session.Shortcut(int(msg.Runes[0] - '0')); ok {
			return m.selectProject(p)
		}
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.session.StopFilter()
	case key.Matches(msg, m.keys.FilterUp):
		m.session.MoveUp()
	case key.Matches(msg, m.keys.FilterDown):
		m.session.MoveDown()
	case key.Matches(msg, m.keys.Enter):
		if p, ok := m.session.Current(); ok {
			return m.selectProject(p)
		}
	case key.Matches(msg, m.keys.Backspace):
		m.session.Backspace()
	case msg.Type == tea.KeySpace:
		m.session.AppendFilter(' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		for _, r := range msg.Runes {
			m.session.AppendFilter(r)
		}
	}
	return m, nil
}

func (m Model) selectProject(p model.Project) (tea.Model, tea.Cmd) {
	m.selection = &Selection{Project: p, Dangerous: m.session.Dangerous()}
	return m, tea.Quit
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}
