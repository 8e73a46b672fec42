package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/suhani1709/studyflow/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	doneStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("240"))

	categoryStyles = map[models.Category]lipgloss.Style{
		models.CategoryStudy:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.CategoryWork:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		models.CategoryPlay:     lipgloss.NewStyle().Foreground(lipgloss.Color("170")),
		models.CategoryPersonal: lipgloss.NewStyle().Foreground(lipgloss.Color("76")),
	}

	statusGlyphs = map[models.DayStatus]string{
		models.DayCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("76")).Render("●"),
		models.DayPartial:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Render("◐"),
		models.DayMissed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("○"),
		models.DayEmpty:     subtleStyle.Render("·"),
	}
)

// RenderCategory renders a category name in its colour.
func RenderCategory(c models.Category) string {
	if style, ok := categoryStyles[c]; ok {
		return style.Render(string(c))
	}
	return string(c)
}

// RenderStatus renders the calendar glyph for a day status.
func RenderStatus(s models.DayStatus) string {
	if glyph, ok := statusGlyphs[s]; ok {
		return glyph
	}
	return " "
}

// RenderTaskLine renders one task the way the list and dashboard show it.
func RenderTaskLine(task models.Task) string {
	check := "[ ]"
	if task.Completed {
		check = "[x]"
	}

	title := task.Title
	if task.Subject != "" {
		title = fmt.Sprintf("%s (%s)", title, task.Subject)
	}
	if task.Completed {
		title = doneStyle.Render(title)
	}

	return fmt.Sprintf("%s %s-%s  %s  %s  %s",
		check, task.StartTime, task.EndTime,
		RenderCategory(task.Category), title,
		subtleStyle.Render(shortID(task.ID)))
}

// shortID abbreviates a UUID for display; commands accept the prefix back.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
