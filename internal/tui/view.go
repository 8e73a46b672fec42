package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/suhani1709/studyflow/internal/stats"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 1)

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	today := m.tracker.Today()
	dayStats := stats.ForDate(m.tracker, today)
	streak := m.tracker.Streak()

	header := streakStyle.Render(fmt.Sprintf("🔥 streak %d (best %d)", streak.Current, streak.Best)) +
		helpStyle.Render(fmt.Sprintf("  %dm done, %d/%d tasks", dayStats.TotalMinutes, dayStats.CompletedTasks, dayStats.TotalTasks))

	footer := helpStyle.Render("space toggle · d delete · q quit")

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), footer))
}
