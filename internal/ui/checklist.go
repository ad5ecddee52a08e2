package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/strafe/internal/commands"
)

// checklistModel is the multiple choice command type prompt.
type checklistModel struct {
	list      list.Model
	help      help.Model
	keys      keyMap
	confirmed bool
	cancelled bool
}

func newChecklistModel(categories []commands.Category) *checklistModel {
	items := make([]list.Item, len(categories))
	for i, c := range categories {
		items[i] = categoryItem{category: c}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, defaultWidth, defaultHeight)
	l.Title = typesPrompt
	l.Styles.Title = styles.title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return &checklistModel{list: l, help: help.New(), keys: newKeyMap()}
}

func (m *checklistModel) Init() tea.Cmd { return nil }

func (m *checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.enter):
			m.confirmed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.toggle):
			m.toggle(m.list.Index())
			return m, nil
		case key.Matches(msg, m.keys.all):
			m.toggleAll()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *checklistModel) View() string {
	if m.confirmed || m.cancelled {
		return ""
	}
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.toggle, m.keys.all, m.keys.enter, m.keys.quit})
	return fmt.Sprintf("%s\n%s", m.list.View(), styles.help.Render(helpView))
}

func (m *checklistModel) toggle(idx int) {
	item, ok := m.list.SelectedItem().(categoryItem)
	if !ok {
		return
	}
	item.checked = !item.checked
	m.list.SetItem(idx, item)
}

// toggleAll checks every item unless all of them are already checked, in which case it clears them.
func (m *checklistModel) toggleAll() {
	items := m.list.Items()
	all := true
	for _, it := range items {
		if !it.(categoryItem).checked {
			all = false
			break
		}
	}
	for i, it := range items {
		item := it.(categoryItem)
		item.checked = !all
		m.list.SetItem(i, item)
	}
}

// selected returns the checked categories in list order.
func (m *checklistModel) selected() []commands.Category {
	var out []commands.Category
	for _, it := range m.list.Items() {
		if item := it.(categoryItem); item.checked {
			out = append(out, item.category)
		}
	}
	return out
}
