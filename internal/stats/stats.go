package stats

import (
	"github.com/suhani1709/studyflow/internal/models"
	"github.com/suhani1709/studyflow/internal/utils"
)

// TaskSource provides read access to the task collection by date. The
// tracker satisfies this; tests can supply a fixture.
type TaskSource interface {
	TasksForDate(date string) []models.Task
}

// ForDate computes the day's aggregate stats. Only completed tasks
// contribute minutes; durations are end minus start on the task's own
// date, so crossing midnight is not supported.
func ForDate(src TaskSource, date string) models.DayStats {
	tasks := src.TasksForDate(date)
	stats := models.DayStats{
		TotalTasks: len(tasks),
	}

	for _, task := range tasks {
		if !task.Completed {
			continue
		}
		stats.CompletedTasks++

		minutes := duration(task)
		switch task.Category {
		case models.CategoryStudy:
			stats.Study += minutes
		case models.CategoryWork:
			stats.Work += minutes
		case models.CategoryPlay:
			stats.Play += minutes
		case models.CategoryPersonal:
			stats.Personal += minutes
		}
		stats.TotalMinutes += minutes
	}

	return stats
}

// StatusForDate classifies a calendar day by its productive tasks.
// A day with tasks but none productive counts as missed, not as
// vacuously completed.
func StatusForDate(src TaskSource, date string) models.DayStatus {
	tasks := src.TasksForDate(date)
	if len(tasks) == 0 {
		return models.DayEmpty
	}

	productive := 0
	completedProductive := 0
	for _, task := range tasks {
		if !task.Category.Productive() {
			continue
		}
		productive++
		if task.Completed {
			completedProductive++
		}
	}

	switch {
	case completedProductive == 0:
		return models.DayMissed
	case completedProductive == productive:
		return models.DayCompleted
	default:
		return models.DayPartial
	}
}

// ForRange sums per-day stats over [from, to] inclusive. Invalid dates
// yield a zero result.
func ForRange(src TaskSource, from, to string) models.DayStats {
	var total models.DayStats

	date := from
	for {
		after, err := utils.DaysBetween(date, to)
		if err != nil || after < 0 {
			return total
		}
		total.Add(ForDate(src, date))
		if after == 0 {
			return total
		}
		next, err := utils.AddDays(date, 1)
		if err != nil {
			return total
		}
		date = next
	}
}

// DaySummary pairs a date with its aggregate stats, for report charts.
type DaySummary struct {
	Date  string
	Stats models.DayStats
}

// Week returns per-day summaries for the seven days starting at the
// Monday of the week containing anchor.
func Week(src TaskSource, anchor string) ([]DaySummary, error) {
	start, err := utils.StartOfWeek(anchor)
	if err != nil {
		return nil, err
	}

	days := make([]DaySummary, 0, 7)
	date := start
	for i := 0; i < 7; i++ {
		days = append(days, DaySummary{Date: date, Stats: ForDate(src, date)})
		next, err := utils.AddDays(date, 1)
		if err != nil {
			return nil, err
		}
		date = next
	}
	return days, nil
}

func duration(task models.Task) int {
	start, err := utils.ParseTimeToMinutes(task.StartTime)
	if err != nil {
		return 0
	}
	end, err := utils.ParseTimeToMinutes(task.EndTime)
	if err != nil {
		return 0
	}
	return end - start
}
