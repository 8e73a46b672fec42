package cli

import (
	"fmt"

	apperrors "github.com/suhani1709/studyflow/internal/errors"
	"github.com/suhani1709/studyflow/internal/logger"
)

type ToggleCmd struct {
	ID string `arg:"" help:"Task id (or unique prefix)."`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	id, err := ResolveTaskID(ctx, c.ID)
	if err != nil {
		return reportMissing(err, c.ID)
	}

	if err := ctx.Tracker.ToggleTask(id); err != nil {
		return reportMissing(err, c.ID)
	}

	streak := ctx.Tracker.Streak()
	fmt.Printf("Toggled %s (streak: %d, best: %d)\n", shortID(id), streak.Current, streak.Best)
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"Task id (or unique prefix)."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	id, err := ResolveTaskID(ctx, c.ID)
	if err != nil {
		return reportMissing(err, c.ID)
	}

	if err := ctx.Tracker.DeleteTask(id); err != nil {
		return reportMissing(err, c.ID)
	}

	fmt.Printf("Deleted %s\n", shortID(id))
	return nil
}

// reportMissing downgrades an unknown id to a warning; referencing a
// task that is already gone is not worth a non-zero exit.
func reportMissing(err error, id string) error {
	if apperrors.IsNotFound(err) {
		logger.Warn("No such task", "id", id)
		fmt.Printf("No task matching %q\n", id)
		return nil
	}
	return err
}
