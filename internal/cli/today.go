package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/suhani1709/studyflow/internal/stats"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	today := ctx.Tracker.Today()
	dayStats := stats.ForDate(ctx.Tracker, today)
	streak := ctx.Tracker.Streak()

	statsCard := cardStyle.Render(fmt.Sprintf(
		"%s\n%s %3dm   %s %3dm\n%s %3dm   %s %3dm\ntotal %dm  done %d/%d",
		titleStyle.Render("Today "+today),
		RenderCategory("study"), dayStats.Study,
		RenderCategory("work"), dayStats.Work,
		RenderCategory("play"), dayStats.Play,
		RenderCategory("personal"), dayStats.Personal,
		dayStats.TotalMinutes, dayStats.CompletedTasks, dayStats.TotalTasks))

	streakCard := cardStyle.Render(fmt.Sprintf(
		"%s\ncurrent %d\nbest    %d",
		titleStyle.Render("Streak"), streak.Current, streak.Best))

	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, statsCard, " ", streakCard))

	tasks := ctx.Tracker.TasksForDate(today)
	if len(tasks) == 0 {
		fmt.Println(subtleStyle.Render("No tasks scheduled today."))
		return nil
	}
	for _, task := range tasks {
		fmt.Println(RenderTaskLine(task))
	}
	return nil
}

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	streak := ctx.Tracker.Streak()
	fmt.Printf("Current streak: %d day(s)\n", streak.Current)
	fmt.Printf("Best streak:    %d day(s)\n", streak.Best)
	if streak.LastActiveDate != "" {
		fmt.Printf("Last active:    %s\n", streak.LastActiveDate)
	}
	return nil
}
