package storage

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	apperrors "github.com/suhani1709/studyflow/internal/errors"
	"github.com/suhani1709/studyflow/internal/models"
)

func setupTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()

	store := NewJSONStore(filepath.Join(t.TempDir(), "studyflow.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return store
}

func sampleTask(title string) models.Task {
	return models.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Category:  models.CategoryStudy,
		Subject:   "algebra",
		StartTime: "09:00",
		EndTime:   "10:30",
		Priority:  models.PriorityHigh,
		Completed: true,
		Date:      "2024-01-10",
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studyflow.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	tasks := []models.Task{sampleTask("a"), sampleTask("b"), sampleTask("c")}
	for _, task := range tasks {
		if err := store.AddTask(task); err != nil {
			t.Fatalf("failed to add task: %v", err)
		}
	}

	streak := models.StreakData{Current: 3, Best: 7, LastActiveDate: "2024-01-10"}
	if err := store.SaveStreak(streak); err != nil {
		t.Fatalf("failed to save streak: %v", err)
	}

	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}

	gotTasks, err := reloaded.GetAllTasks()
	if err != nil {
		t.Fatalf("failed to read tasks: %v", err)
	}
	if len(gotTasks) != len(tasks) {
		t.Fatalf("expected %d tasks, got %d", len(tasks), len(gotTasks))
	}
	for i := range tasks {
		if gotTasks[i] != tasks[i] {
			t.Errorf("task %d mismatch: %+v != %+v", i, gotTasks[i], tasks[i])
		}
	}

	gotStreak, err := reloaded.GetStreak()
	if err != nil {
		t.Fatalf("failed to read streak: %v", err)
	}
	if gotStreak != streak {
		t.Errorf("streak mismatch: %+v != %+v", gotStreak, streak)
	}
}

func TestJSONStoreUpdateAndDelete(t *testing.T) {
	store := setupTestJSONStore(t)

	tasks := []models.Task{sampleTask("a"), sampleTask("b"), sampleTask("c")}
	for _, task := range tasks {
		if err := store.AddTask(task); err != nil {
			t.Fatalf("failed to add task: %v", err)
		}
	}

	tasks[1].Title = "b updated"
	tasks[1].Completed = false
	if err := store.UpdateTask(tasks[1]); err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if err := store.DeleteTask(tasks[0].ID); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}

	got, err := store.GetAllTasks()
	if err != nil {
		t.Fatalf("failed to read tasks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0] != tasks[1] || got[1] != tasks[2] {
		t.Errorf("expected updated order-preserved tasks, got %+v", got)
	}
}

func TestJSONStoreNotFound(t *testing.T) {
	store := setupTestJSONStore(t)

	if err := store.UpdateTask(sampleTask("ghost")); !apperrors.IsNotFound(err) {
		t.Errorf("expected not-found on update, got %v", err)
	}
	if err := store.DeleteTask("missing-id"); !apperrors.IsNotFound(err) {
		t.Errorf("expected not-found on delete, got %v", err)
	}
}

func TestJSONStoreInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studyflow.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("expected second init to fail")
	}
}

func TestJSONStoreZeroStreakByDefault(t *testing.T) {
	store := setupTestJSONStore(t)

	streak, err := store.GetStreak()
	if err != nil {
		t.Fatalf("failed to read streak: %v", err)
	}
	if streak != (models.StreakData{}) {
		t.Errorf("expected zero streak, got %+v", streak)
	}
}
