package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/suhani1709/studyflow/internal/models"
	"github.com/suhani1709/studyflow/internal/utils"
)

type AddCmd struct {
	Title       string `arg:"" optional:"" help:"Task title."`
	Category    string `short:"c" help:"Category (study|work|play|personal)." default:"study"`
	Subject     string `help:"Subject (study tasks only)."`
	Start       string `short:"s" help:"Start time (HH:MM)."`
	End         string `short:"e" help:"End time (HH:MM)."`
	Priority    string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
	Date        string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
	Interactive bool   `short:"i" help:"Fill in the task through an interactive form."`
}

func (c *AddCmd) Run(ctx *Context) error {
	if c.Interactive {
		if err := c.runForm(); err != nil {
			return err
		}
	}
	if c.Title == "" {
		return fmt.Errorf("title is required (pass it as an argument or use --interactive)")
	}

	date, err := ResolveDate(ctx, c.Date)
	if err != nil {
		return err
	}

	task, err := ctx.Tracker.AddTask(models.Task{
		Title:     c.Title,
		Category:  models.Category(c.Category),
		Subject:   c.Subject,
		StartTime: c.Start,
		EndTime:   c.End,
		Priority:  models.Priority(c.Priority),
		Date:      date,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %s %s (%s-%s) on %s\n",
		RenderCategory(task.Category), task.Title, task.StartTime, task.EndTime, task.Date)
	fmt.Printf("id: %s\n", task.ID)
	return nil
}

func (c *AddCmd) runForm() error {
	categoryOptions := make([]huh.Option[string], 0, len(models.Categories))
	for _, cat := range models.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(string(cat), string(cat)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&c.Title),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&c.Category),
			huh.NewInput().
				Title("Subject (optional)").
				Value(&c.Subject),
			huh.NewInput().
				Title("Start time (HH:MM)").
				Validate(validateTimeInput).
				Value(&c.Start),
			huh.NewInput().
				Title("End time (HH:MM)").
				Validate(validateTimeInput).
				Value(&c.End),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("low", "low"),
					huh.NewOption("medium", "medium"),
					huh.NewOption("high", "high"),
				).
				Value(&c.Priority),
		),
	)

	return form.Run()
}

func validateTimeInput(s string) error {
	if !utils.ValidateTimeFormat(s) {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}
