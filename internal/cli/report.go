package cli

import (
	"fmt"
	"strings"

	"github.com/suhani1709/studyflow/internal/stats"
	"github.com/suhani1709/studyflow/internal/utils"
)

type ReportCmd struct {
	Weeks int `short:"w" help:"Number of weeks to report, ending with the current one." default:"1"`
}

func (c *ReportCmd) Run(ctx *Context) error {
	if c.Weeks < 1 {
		return fmt.Errorf("weeks must be at least 1")
	}

	anchor := ctx.Tracker.Today()
	for w := c.Weeks - 1; w >= 0; w-- {
		weekAnchor, err := utils.AddDays(anchor, -7*w)
		if err != nil {
			return err
		}

		days, err := stats.Week(ctx.Tracker, weekAnchor)
		if err != nil {
			return err
		}

		total := stats.ForRange(ctx.Tracker, days[0].Date, days[len(days)-1].Date)

		fmt.Println(titleStyle.Render(fmt.Sprintf("Week of %s", days[0].Date)))
		for _, day := range days {
			fmt.Printf("%s  %s %4dm  %s\n",
				day.Date, bar(day.Stats.TotalMinutes), day.Stats.TotalMinutes,
				subtleStyle.Render(fmt.Sprintf("%d/%d done", day.Stats.CompletedTasks, day.Stats.TotalTasks)))
		}
		fmt.Printf("total: %s %dm, %s %dm, %s %dm, %s %dm (%dm)\n\n",
			RenderCategory("study"), total.Study,
			RenderCategory("work"), total.Work,
			RenderCategory("play"), total.Play,
			RenderCategory("personal"), total.Personal,
			total.TotalMinutes)
	}
	return nil
}

// bar renders a crude horizontal chart, 30 minutes per cell.
func bar(minutes int) string {
	cells := minutes / 30
	if cells > 24 {
		cells = 24
	}
	return strings.Repeat("█", cells)
}
