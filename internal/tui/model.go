package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/suhani1709/studyflow/internal/models"
	"github.com/suhani1709/studyflow/internal/tracker"
)

type Item struct {
	Task models.Task
}

func (i Item) Title() string {
	check := "☐"
	if i.Task.Completed {
		check = "✓"
	}
	return fmt.Sprintf("%s %s", check, i.Task.Title)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s-%s | %s | %s", i.Task.StartTime, i.Task.EndTime, i.Task.Category, i.Task.Priority)
	if i.Task.Subject != "" {
		desc += " | " + i.Task.Subject
	}
	return desc
}

func (i Item) FilterValue() string { return i.Task.Title }

type Model struct {
	tracker  *tracker.Tracker
	list     list.Model
	keys     KeyMap
	quitting bool
	width    int
	height   int
}

func NewModel(trk *tracker.Tracker) Model {
	l := list.New(itemsForToday(trk), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Today"
	l.SetShowStatusBar(false)

	return Model{
		tracker: trk,
		list:    l,
		keys:    DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func itemsForToday(trk *tracker.Tracker) []list.Item {
	tasks := trk.TasksForDate(trk.Today())
	items := make([]list.Item, len(tasks))
	for i, task := range tasks {
		items[i] = Item{Task: task}
	}
	return items
}
