package tracker

import (
	"testing"

	"github.com/suhani1709/studyflow/internal/models"
)

// completeProductiveTask adds a study task on the given day and marks
// it done.
func completeProductiveTask(t *testing.T, trk *Tracker, date string) models.Task {
	t.Helper()

	task, err := trk.AddTask(draft("Study session", models.CategoryStudy, date))
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	if err := trk.ToggleTask(task.ID); err != nil {
		t.Fatalf("failed to toggle task: %v", err)
	}
	return task
}

func TestStreakMonotonicAdvance(t *testing.T) {
	trk, _ := setupTestTracker(t)

	// Day D: first completion starts the streak.
	setDay(t, trk, "2024-01-10")
	completeProductiveTask(t, trk, "2024-01-10")

	streak := trk.Streak()
	if streak.Current != 1 || streak.Best != 1 || streak.LastActiveDate != "2024-01-10" {
		t.Fatalf("after day D: %+v", streak)
	}

	// Day D+1: consecutive day continues it.
	setDay(t, trk, "2024-01-11")
	completeProductiveTask(t, trk, "2024-01-11")

	streak = trk.Streak()
	if streak.Current != 2 || streak.Best != 2 {
		t.Fatalf("after day D+1: %+v", streak)
	}

	// Day D+2 has no completion; day D+3 restarts at 1 with best kept.
	setDay(t, trk, "2024-01-13")
	completeProductiveTask(t, trk, "2024-01-13")

	streak = trk.Streak()
	if streak.Current != 1 {
		t.Errorf("expected current 1 after gap, got %d", streak.Current)
	}
	if streak.Best != 2 {
		t.Errorf("expected best 2 preserved, got %d", streak.Best)
	}
	if streak.LastActiveDate != "2024-01-13" {
		t.Errorf("expected last active 2024-01-13, got %s", streak.LastActiveDate)
	}
}

func TestStreakToggleIdempotentWithinDay(t *testing.T) {
	trk, _ := setupTestTracker(t)
	setDay(t, trk, "2024-01-10")

	task := completeProductiveTask(t, trk, "2024-01-10")
	before := trk.Streak()

	// Un-complete: credit already given is not revoked.
	if err := trk.ToggleTask(task.ID); err != nil {
		t.Fatalf("failed to toggle task: %v", err)
	}
	if got := trk.Streak(); got != before {
		t.Errorf("un-completing must not change the streak: %+v != %+v", got, before)
	}

	// Re-complete the same day: no double credit.
	if err := trk.ToggleTask(task.ID); err != nil {
		t.Fatalf("failed to toggle task: %v", err)
	}
	if got := trk.Streak(); got != before {
		t.Errorf("re-completing the same day must not change the streak: %+v != %+v", got, before)
	}
}

func TestStreakIgnoresUnproductiveTasks(t *testing.T) {
	trk, _ := setupTestTracker(t)
	setDay(t, trk, "2024-01-10")

	for _, category := range []models.Category{models.CategoryPlay, models.CategoryPersonal} {
		task, err := trk.AddTask(draft("Leisure", category, "2024-01-10"))
		if err != nil {
			t.Fatalf("failed to add task: %v", err)
		}
		if err := trk.ToggleTask(task.ID); err != nil {
			t.Fatalf("failed to toggle task: %v", err)
		}
	}

	if streak := trk.Streak(); streak != (models.StreakData{}) {
		t.Errorf("play/personal tasks must not advance the streak: %+v", streak)
	}
}

func TestStreakUpdateAlsoRecomputes(t *testing.T) {
	trk, _ := setupTestTracker(t)
	setDay(t, trk, "2024-01-10")

	task, err := trk.AddTask(draft("Finish report", models.CategoryWork, "2024-01-10"))
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	completed := true
	if err := trk.UpdateTask(task.ID, TaskUpdate{Completed: &completed}); err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if streak := trk.Streak(); streak.Current != 1 || streak.LastActiveDate != "2024-01-10" {
		t.Errorf("update with completed=true must credit the streak: %+v", streak)
	}
}

func TestStreakFutureAnchorRestarts(t *testing.T) {
	trk, _ := setupTestTracker(t)

	// Credit a day, then move the clock backwards past it. The stale
	// anchor is in the future, which recompute treats as a fresh start.
	setDay(t, trk, "2024-01-15")
	completeProductiveTask(t, trk, "2024-01-15")

	setDay(t, trk, "2024-01-12")
	completeProductiveTask(t, trk, "2024-01-12")

	streak := trk.Streak()
	if streak.Current != 1 {
		t.Errorf("expected fresh start for future anchor, got current %d", streak.Current)
	}
	if streak.LastActiveDate != "2024-01-12" {
		t.Errorf("expected last active 2024-01-12, got %s", streak.LastActiveDate)
	}
}

func TestStreakDeleteDoesNotRecompute(t *testing.T) {
	trk, _ := setupTestTracker(t)
	setDay(t, trk, "2024-01-10")

	task := completeProductiveTask(t, trk, "2024-01-10")
	before := trk.Streak()

	if err := trk.DeleteTask(task.ID); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}
	if got := trk.Streak(); got != before {
		t.Errorf("delete must not touch the streak: %+v != %+v", got, before)
	}
}
