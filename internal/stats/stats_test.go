package stats

import (
	"testing"

	"github.com/suhani1709/studyflow/internal/models"
)

// fixture satisfies TaskSource from a literal map.
type fixture map[string][]models.Task

func (f fixture) TasksForDate(date string) []models.Task {
	return f[date]
}

func task(category models.Category, start, end string, completed bool) models.Task {
	return models.Task{
		Title:     "t",
		Category:  category,
		StartTime: start,
		EndTime:   end,
		Priority:  models.PriorityMedium,
		Completed: completed,
		Date:      "2024-01-10",
	}
}

func TestForDateExampleScenario(t *testing.T) {
	src := fixture{
		"2024-01-10": {task(models.CategoryStudy, "09:00", "10:30", true)},
	}

	got := ForDate(src, "2024-01-10")
	want := models.DayStats{
		Study:          90,
		TotalMinutes:   90,
		CompletedTasks: 1,
		TotalTasks:     1,
	}
	if got != want {
		t.Errorf("ForDate = %+v, want %+v", got, want)
	}

	if status := StatusForDate(src, "2024-01-10"); status != models.DayCompleted {
		t.Errorf("StatusForDate = %v, want completed", status)
	}
}

func TestForDateOnlyCompletedContribute(t *testing.T) {
	src := fixture{
		"2024-01-10": {
			task(models.CategoryStudy, "09:00", "10:00", true),
			task(models.CategoryWork, "10:00", "11:30", false),
			task(models.CategoryPlay, "18:00", "19:00", true),
			task(models.CategoryPersonal, "20:00", "20:45", true),
		},
	}

	got := ForDate(src, "2024-01-10")
	if got.Study != 60 || got.Work != 0 || got.Play != 60 || got.Personal != 45 {
		t.Errorf("per-category minutes wrong: %+v", got)
	}
	if got.TotalMinutes != got.Study+got.Work+got.Play+got.Personal {
		t.Errorf("TotalMinutes %d != category sum", got.TotalMinutes)
	}
	if got.CompletedTasks != 3 || got.TotalTasks != 4 {
		t.Errorf("counts wrong: %+v", got)
	}
	if got.CompletedTasks > got.TotalTasks {
		t.Error("completed must never exceed total")
	}
}

func TestForDateEmpty(t *testing.T) {
	got := ForDate(fixture{}, "2024-01-10")
	if got != (models.DayStats{}) {
		t.Errorf("expected zero stats for empty day, got %+v", got)
	}
}

func TestStatusForDate(t *testing.T) {
	cases := []struct {
		name  string
		tasks []models.Task
		want  models.DayStatus
	}{
		{"no tasks", nil, models.DayEmpty},
		{"productive none done", []models.Task{
			task(models.CategoryStudy, "09:00", "10:00", false),
		}, models.DayMissed},
		{"only unproductive tasks", []models.Task{
			task(models.CategoryPlay, "09:00", "10:00", true),
			task(models.CategoryPersonal, "10:00", "11:00", true),
		}, models.DayMissed},
		{"some productive done", []models.Task{
			task(models.CategoryStudy, "09:00", "10:00", true),
			task(models.CategoryWork, "10:00", "11:00", false),
		}, models.DayPartial},
		{"all productive done", []models.Task{
			task(models.CategoryStudy, "09:00", "10:00", true),
			task(models.CategoryWork, "10:00", "11:00", true),
			task(models.CategoryPlay, "18:00", "19:00", false),
		}, models.DayCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := fixture{"2024-01-10": tc.tasks}
			if got := StatusForDate(src, "2024-01-10"); got != tc.want {
				t.Errorf("StatusForDate = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStatusAgreesWithStats(t *testing.T) {
	src := fixture{
		"2024-01-10": {
			task(models.CategoryStudy, "09:00", "10:00", true),
			task(models.CategoryWork, "10:00", "11:00", false),
		},
		"2024-01-11": {},
	}

	for _, date := range []string{"2024-01-10", "2024-01-11", "2024-01-12"} {
		dayStats := ForDate(src, date)
		status := StatusForDate(src, date)
		if (status == models.DayEmpty) != (dayStats.TotalTasks == 0) {
			t.Errorf("%s: empty status must coincide with zero tasks (status %v, stats %+v)", date, status, dayStats)
		}
	}
}

func TestForRangeIsAdditive(t *testing.T) {
	monday := task(models.CategoryStudy, "09:00", "10:00", true)
	monday.Date = "2024-01-08"
	wednesday := task(models.CategoryWork, "14:00", "15:30", true)
	wednesday.Date = "2024-01-10"

	src := fixture{
		"2024-01-08": {monday},
		"2024-01-10": {wednesday},
	}

	got := ForRange(src, "2024-01-08", "2024-01-14")
	if got.Study != 60 || got.Work != 90 || got.TotalMinutes != 150 {
		t.Errorf("ForRange = %+v", got)
	}
	if got.CompletedTasks != 2 || got.TotalTasks != 2 {
		t.Errorf("ForRange counts = %+v", got)
	}

	// Inverted range is empty.
	if got := ForRange(src, "2024-01-14", "2024-01-08"); got != (models.DayStats{}) {
		t.Errorf("inverted range should be zero, got %+v", got)
	}
}

func TestWeekStartsMonday(t *testing.T) {
	days, err := Week(fixture{}, "2024-01-10") // a Wednesday
	if err != nil {
		t.Fatalf("Week failed: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Date != "2024-01-08" {
		t.Errorf("expected week to start 2024-01-08, got %s", days[0].Date)
	}
	if days[6].Date != "2024-01-14" {
		t.Errorf("expected week to end 2024-01-14, got %s", days[6].Date)
	}
}
