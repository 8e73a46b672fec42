package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/suhani1709/studyflow/internal/constants"
	"github.com/suhani1709/studyflow/internal/stats"
)

type CalendarCmd struct {
	Month string `short:"m" help:"Month to show (YYYY-MM). Defaults to the current month."`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	anchor := c.Month
	if anchor == "" {
		anchor = ctx.Tracker.Today()[:7]
	}

	first, err := time.ParseInLocation("2006-01", anchor, time.Local)
	if err != nil {
		return fmt.Errorf("invalid month %q (expected YYYY-MM)", c.Month)
	}

	fmt.Println(titleStyle.Render(first.Format("January 2006")))
	fmt.Println(subtleStyle.Render("Mo  Tu  We  Th  Fr  Sa  Su"))

	var line strings.Builder
	// pad to the weekday of the 1st, Monday-first
	lead := (int(first.Weekday()) + 6) % 7
	line.WriteString(strings.Repeat("    ", lead))

	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		date := day.Format(constants.DateFormat)
		status := stats.StatusForDate(ctx.Tracker, date)
		line.WriteString(fmt.Sprintf("%2d%s ", day.Day(), RenderStatus(status)))

		if day.Weekday() == time.Sunday {
			fmt.Println(line.String())
			line.Reset()
		}
	}
	if line.Len() > 0 {
		fmt.Println(line.String())
	}

	fmt.Printf("\n%s completed  %s partial  %s missed\n",
		RenderStatus("completed"), RenderStatus("partial"), RenderStatus("missed"))
	return nil
}
