package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarea/internal/models"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
)

// ViewFlags selects the list and filters a command operates on
type ViewFlags struct {
	List     models.ListName
	Search   string
	Category string
}

// AddFilterFlags registers --search and --category on cmd
func AddFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "Only tasks whose text contains this (case-insensitive)")
	cmd.Flags().String("category", models.CategoryFilterAll, "Only tasks in this category (General, Work, Personal, Urgent, all)")
}

// AddViewFlags registers --list along with the filter flags
func AddViewFlags(cmd *cobra.Command) {
	cmd.Flags().String("list", string(models.ListPending), "Task list: pending or completed")
	AddFilterFlags(cmd)
}

// GetViewFlags parses the flags registered by AddViewFlags.
// Commands without --list get the pending list.
func GetViewFlags(cmd *cobra.Command) (ViewFlags, error) {
	listStr, _ := cmd.Flags().GetString("list")
	search, _ := cmd.Flags().GetString("search")
	categoryStr, _ := cmd.Flags().GetString("category")

	list, err := models.ParseListName(listStr)
	if err != nil {
		return ViewFlags{}, err
	}
	category, err := models.ParseCategoryFilter(categoryStr)
	if err != nil {
		return ViewFlags{}, err
	}
	return ViewFlags{List: list, Search: search, Category: category}, nil
}

// ParsePosition parses a 1-based task position argument
func ParsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, arg)
	}
	return n, nil
}

// ResolvePosition returns the task shown at the 1-based position of the
// filtered view, the same numbering 'task list' prints
func ResolvePosition(store *taskservice.Store, view ViewFlags, arg string) (models.Task, error) {
	n, err := ParsePosition(arg)
	if err != nil {
		return models.Task{}, err
	}
	tasks := store.View(view.List, view.Search, view.Category)
	if n > len(tasks) {
		return models.Task{}, fmt.Errorf("%w: position %d (%s view has %d tasks)",
			taskservice.ErrIndexOutOfRange, n, view.List, len(tasks))
	}
	return tasks[n-1], nil
}

// PositionOf returns the 1-based position of id in the unfiltered view of list,
// or 0 if the task is not there
func PositionOf(store *taskservice.Store, list models.ListName, id string) int {
	for i, t := range store.View(list, "", models.CategoryFilterAll) {
		if t.ID == id {
			return i + 1
		}
	}
	return 0
}
