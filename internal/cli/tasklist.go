package cli

import (
	"fmt"
)

type ListCmd struct {
	Date string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *ListCmd) Run(ctx *Context) error {
	date, err := ResolveDate(ctx, c.Date)
	if err != nil {
		return err
	}

	tasks := ctx.Tracker.TasksForDate(date)
	if len(tasks) == 0 {
		fmt.Printf("No tasks for %s\n", date)
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Tasks for %s", date)))
	for _, task := range tasks {
		fmt.Println(RenderTaskLine(task))
	}
	return nil
}
