package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/strafe/internal/models"
)

const (
	playerPrompt = "Whose commands would you like to view?"
	typesPrompt  = "Select command types to filter, or none to show all"

	defaultWidth  = 60
	defaultHeight = 20
)

// pickerModel is the single choice player prompt.
type pickerModel struct {
	list      list.Model
	help      help.Model
	keys      keyMap
	chosen    int
	cancelled bool
}

func newPickerModel(players []models.Player) *pickerModel {
	items := make([]list.Item, len(players))
	for i, p := range players {
		items[i] = playerItem{index: i, player: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), defaultWidth, defaultHeight)
	l.Title = playerPrompt
	l.Styles.Title = styles.title
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return &pickerModel{list: l, help: help.New(), keys: newKeyMap(), chosen: -1}
}

func (m *pickerModel) Init() tea.Cmd { return nil }

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.interrupt) {
			m.cancelled = true
			return m, tea.Quit
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		// With a filter applied, esc falls through to the list and clears it.
		case key.Matches(msg, m.keys.quit) && m.list.FilterState() == list.Unfiltered:
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.enter):
			if item, ok := m.list.SelectedItem().(playerItem); ok {
				m.chosen = item.index
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *pickerModel) View() string {
	if m.chosen >= 0 || m.cancelled {
		return ""
	}
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.up, m.keys.down, m.keys.enter, m.keys.quit})
	return fmt.Sprintf("%s\n%s", m.list.View(), styles.help.Render(helpView))
}
