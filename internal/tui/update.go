package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/suhani1709/studyflow/internal/logger"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-2, msg.Height-4)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if item, ok := m.list.SelectedItem().(Item); ok {
				if err := m.tracker.ToggleTask(item.Task.ID); err != nil {
					logger.Warn("Toggle failed", "id", item.Task.ID, "error", err)
				}
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if item, ok := m.list.SelectedItem().(Item); ok {
				if err := m.tracker.DeleteTask(item.Task.ID); err != nil {
					logger.Warn("Delete failed", "id", item.Task.ID, "error", err)
				}
				m.refresh()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	m.list.SetItems(itemsForToday(m.tracker))
}
