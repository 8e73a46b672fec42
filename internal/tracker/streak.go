package tracker

import (
	"github.com/suhani1709/studyflow/internal/logger"
	"github.com/suhani1709/studyflow/internal/utils"
)

// recomputeStreakLocked advances the streak from today's tasks. Called
// with the tracker mutex held, after any completion-affecting mutation.
//
// The streak only moves forward in time: a day with zero completions
// never decrements it, and un-completing today's last productive task
// does not revoke credit already given.
func (t *Tracker) recomputeStreakLocked() {
	today := t.Today()

	credited := false
	for _, task := range t.tasksForDateLocked(today) {
		if task.Completed && task.Category.Productive() {
			credited = true
			break
		}
	}
	if !credited {
		return
	}

	// Already credited today; idempotent across repeated toggles.
	if t.streak.LastActiveDate == today {
		return
	}

	newCurrent := 1
	if t.streak.LastActiveDate != "" {
		gap, err := utils.DaysBetween(t.streak.LastActiveDate, today)
		switch {
		case err != nil:
			logger.Warn("Unparseable streak anchor, starting fresh", "lastActiveDate", t.streak.LastActiveDate)
		case gap == 1:
			newCurrent = t.streak.Current + 1
		default:
			// Missed gap, or a future anchor that should not occur;
			// either way the streak restarts at one.
		}
	}

	t.streak.Current = newCurrent
	if newCurrent > t.streak.Best {
		t.streak.Best = newCurrent
	}
	t.streak.LastActiveDate = today

	if err := t.store.SaveStreak(t.streak); err != nil {
		logger.Warn("Failed to persist streak, keeping in-memory state", "error", err)
	}
}
