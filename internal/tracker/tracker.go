package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/suhani1709/studyflow/internal/constants"
	apperrors "github.com/suhani1709/studyflow/internal/errors"
	"github.com/suhani1709/studyflow/internal/logger"
	"github.com/suhani1709/studyflow/internal/models"
	"github.com/suhani1709/studyflow/internal/storage"
	"github.com/suhani1709/studyflow/internal/validation"
)

// Tracker is the sole owner of the task collection and the streak
// record. It keeps both in memory, persists through the storage
// provider after every mutation, and recomputes the streak whenever a
// completion state may have changed.
//
// A single mutex guards mutate -> recompute -> persist as one unit;
// everything else reads through copies.
type Tracker struct {
	mu     sync.Mutex
	store  storage.Provider
	tasks  []models.Task
	streak models.StreakData

	// now is injectable for tests
	now func() time.Time
}

func New(store storage.Provider) *Tracker {
	return &Tracker{
		store: store,
		now:   time.Now,
	}
}

// Load reads the task collection and streak record from storage. A
// failed read is non-fatal: the tracker starts from an empty
// collection / zero streak and logs a warning.
func (t *Tracker) Load() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	tasks, err := t.store.GetAllTasks()
	if err != nil {
		logger.Warn("Failed to read task collection, starting empty", "error", err)
		tasks = []models.Task{}
	}
	t.tasks = tasks

	streak, err := t.store.GetStreak()
	if err != nil {
		logger.Warn("Failed to read streak record, starting at zero", "error", err)
		streak = models.StreakData{}
	}
	t.streak = streak

	return nil
}

// Today returns the current local calendar date as YYYY-MM-DD.
func (t *Tracker) Today() string {
	return t.now().Format(constants.DateFormat)
}

// AddTask validates the draft, assigns a fresh id, appends it to the
// collection, and persists. The stored task (with id) is returned.
func (t *Tracker) AddTask(draft models.Task) (models.Task, error) {
	if err := validation.ValidateTask(draft); err != nil {
		return models.Task{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	draft.ID = uuid.New().String()
	t.tasks = append(t.tasks, draft)

	if err := t.store.AddTask(draft); err != nil {
		logger.Warn("Failed to persist new task, keeping in-memory state", "id", draft.ID, "error", err)
	}

	return draft, nil
}

// TaskUpdate carries the fields UpdateTask may merge into an existing
// task. Nil fields are left untouched. Date and ID are immutable and
// deliberately absent.
type TaskUpdate struct {
	Title     *string
	Category  *models.Category
	Subject   *string
	StartTime *string
	EndTime   *string
	Priority  *models.Priority
	Completed *bool
}

// UpdateTask merges the given fields into the task matching id and
// persists. The streak is recomputed from today's tasks afterwards
// regardless of which fields changed. Returns ErrNotFound for an
// unknown id.
func (t *Tracker) UpdateTask(id string, upd TaskUpdate) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, id)
	}

	merged := t.tasks[i]
	if upd.Title != nil {
		merged.Title = *upd.Title
	}
	if upd.Category != nil {
		merged.Category = *upd.Category
	}
	if upd.Subject != nil {
		merged.Subject = *upd.Subject
	}
	if upd.StartTime != nil {
		merged.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		merged.EndTime = *upd.EndTime
	}
	if upd.Priority != nil {
		merged.Priority = *upd.Priority
	}
	if upd.Completed != nil {
		merged.Completed = *upd.Completed
	}

	// The merged result must still satisfy the admission rules; the
	// metrics engine assumes stored tasks have well-formed times.
	if err := validation.ValidateTask(merged); err != nil {
		return err
	}

	t.tasks[i] = merged
	if err := t.store.UpdateTask(merged); err != nil {
		logger.Warn("Failed to persist task update, keeping in-memory state", "id", id, "error", err)
	}

	t.recomputeStreakLocked()
	return nil
}

// ToggleTask flips the completion flag of the task matching id,
// persists, and recomputes the streak from today's tasks.
func (t *Tracker) ToggleTask(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, id)
	}

	t.tasks[i].Completed = !t.tasks[i].Completed
	if err := t.store.UpdateTask(t.tasks[i]); err != nil {
		logger.Warn("Failed to persist task toggle, keeping in-memory state", "id", id, "error", err)
	}

	t.recomputeStreakLocked()
	return nil
}

// DeleteTask removes the task matching id. No streak recompute is
// triggered; credit already given is never revoked.
func (t *Tracker) DeleteTask(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, id)
	}

	t.tasks = append(t.tasks[:i], t.tasks[i+1:]...)
	if err := t.store.DeleteTask(id); err != nil {
		logger.Warn("Failed to persist task deletion, keeping in-memory state", "id", id, "error", err)
	}

	return nil
}

// TasksForDate returns every task scheduled on the given date in
// storage order. Sorting by time or completion is a presentation
// concern.
func (t *Tracker) TasksForDate(date string) []models.Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tasksForDateLocked(date)
}

func (t *Tracker) tasksForDateLocked(date string) []models.Task {
	tasks := []models.Task{}
	for _, task := range t.tasks {
		if task.Date == date {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// Tasks returns a copy of the whole collection in storage order.
func (t *Tracker) Tasks() []models.Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	tasks := make([]models.Task, len(t.tasks))
	copy(tasks, t.tasks)
	return tasks
}

// Streak returns the current streak record.
func (t *Tracker) Streak() models.StreakData {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.streak
}

func (t *Tracker) indexLocked(id string) int {
	for i := range t.tasks {
		if t.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
