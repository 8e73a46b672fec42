package cli

import (
	"fmt"
	"strings"

	apperrors "github.com/suhani1709/studyflow/internal/errors"
	"github.com/suhani1709/studyflow/internal/utils"
)

// ResolveTaskID expands a full or abbreviated task id to the stored id.
// Ambiguous prefixes are rejected rather than guessed at.
func ResolveTaskID(ctx *Context, idOrPrefix string) (string, error) {
	var matches []string
	for _, task := range ctx.Tracker.Tasks() {
		if task.ID == idOrPrefix {
			return task.ID, nil
		}
		if strings.HasPrefix(task.ID, idOrPrefix) {
			matches = append(matches, task.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", apperrors.ErrNotFound, idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q is ambiguous (%d matches)", idOrPrefix, len(matches))
	}
}

// ResolveDate turns an optional --date flag into a concrete date,
// defaulting to today.
func ResolveDate(ctx *Context, date string) (string, error) {
	if date == "" {
		return ctx.Tracker.Today(), nil
	}
	if !utils.ValidateDateFormat(date) {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}
