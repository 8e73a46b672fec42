package validation

import (
	"fmt"
	"strings"

	apperrors "github.com/suhani1709/studyflow/internal/errors"
	"github.com/suhani1709/studyflow/internal/models"
	"github.com/suhani1709/studyflow/internal/utils"
)

// ValidateTask checks a task before it is admitted to the store. The
// policy is reject-before-mutation: a task that fails here is never
// persisted, so the metrics engine can assume well-formed times and
// non-negative durations.
func ValidateTask(task models.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", apperrors.ErrValidation)
	}

	if !validCategory(task.Category) {
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, task.Category)
	}

	switch task.Priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
	default:
		return fmt.Errorf("%w: unknown priority %q", apperrors.ErrValidation, task.Priority)
	}

	if !utils.ValidateDateFormat(task.Date) {
		return fmt.Errorf("%w: invalid date %q (expected YYYY-MM-DD)", apperrors.ErrValidation, task.Date)
	}

	start, err := utils.ParseTimeToMinutes(task.StartTime)
	if err != nil {
		return fmt.Errorf("%w: invalid start time %q (expected HH:MM)", apperrors.ErrValidation, task.StartTime)
	}
	end, err := utils.ParseTimeToMinutes(task.EndTime)
	if err != nil {
		return fmt.Errorf("%w: invalid end time %q (expected HH:MM)", apperrors.ErrValidation, task.EndTime)
	}

	// Tasks crossing midnight are not supported.
	if end <= start {
		return fmt.Errorf("%w: end time %s must be after start time %s", apperrors.ErrValidation, task.EndTime, task.StartTime)
	}

	return nil
}

func validCategory(c models.Category) bool {
	for _, known := range models.Categories {
		if c == known {
			return true
		}
	}
	return false
}
