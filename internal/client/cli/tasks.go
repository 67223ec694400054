package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/carekeeper/internal/models"
)

func formatTask(t models.Task) string {
	mark := " "
	if t.Status == models.StatusCompleted {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s  %s  due %s  %s/%s",
		mark, t.ID, t.Title, t.DueDate.Local().Format("2006-01-02 15:04"), t.Priority, t.Category)
}

func printTasks(tasks []models.Task) {
	if len(tasks) == 0 {
		printlnFn("No tasks")
		return
	}
	for _, t := range tasks {
		printlnFn(formatTask(t))
	}
}

func (a *App) ListTasks(ctx context.Context) error {
	printTasks(a.session.Tasks())
	return nil
}

// AddTask interactively collects the fields of a new task and creates it.
// Empty priority/category fall back to server defaults.
func (a *App) AddTask(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Task title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetOptionalText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	due, err := getSimpleText(a.reader, "Due date (YYYY-MM-DD or YYYY-MM-DD HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	dueDate, err := ParseDate(due, time.Local)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}
	priority, err := GetOptionalText(a.reader, "Priority (low/medium/high)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := GetOptionalText(a.reader, "Category (medication/appointment/personal-care/household/other)", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.session.AddTask(ctx, models.NewTask{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    models.TaskPriority(priority),
		Category:    models.TaskCategory(category),
	})
	if err != nil {
		printlnFn("Failed to add task:", err.Error())
		return err
	}

	printlnFn("Added task", task.ID)
	return nil
}

// DoneTask toggles the completion status of the given task.
func (a *App) DoneTask(ctx context.Context, id string) error {
	if err := a.session.ToggleTaskStatus(ctx, id); err != nil {
		printlnFn("Failed to update task:", err.Error())
		return err
	}
	return a.ListTasks(ctx)
}

func (a *App) DeleteTask(ctx context.Context, id string) error {
	if err := a.session.DeleteTask(ctx, id); err != nil {
		printlnFn("Failed to delete task:", err.Error())
		return err
	}
	printlnFn("Deleted task", id)
	return nil
}
