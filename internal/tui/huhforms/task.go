package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tarea/internal/duedate"
	"github.com/thenoetrevino/tarea/internal/models"
)

// Field keys of the task form
const (
	KeyText     = "text"
	KeyDueDate  = "due"
	KeyCategory = "category"
	KeyPriority = "priority"
	KeySubtask  = "subtask"
)

// CreateTaskForm creates a huh form for adding/editing a task.
// The fields write into draft in place; submitLabel names the action
// ("Add" or "Update") in the form title.
func CreateTaskForm(draft *models.Draft, submitLabel string) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key(KeyText).
			Title("Task").
			Placeholder("What needs doing?").
			CharLimit(200).
			Value(&draft.Text),
	)

	fields = append(fields,
		huh.NewInput().
			Key(KeyDueDate).
			Title("Due date").
			Description("YYYY-MM-DD, leave empty for none").
			Placeholder(duedate.Layout).
			CharLimit(len(duedate.Layout)).
			Validate(ValidateDueDate).
			Value(&draft.DueDate),
	)

	fields = append(fields,
		huh.NewSelect[string]().
			Key(KeyCategory).
			Title("Category").
			Options(categoryOptions()...).
			Value(&draft.Category),
	)

	fields = append(fields,
		huh.NewSelect[string]().
			Key(KeyPriority).
			Title("Priority").
			Options(priorityOptions()...).
			Value(&draft.Priority),
	)

	fields = append(fields,
		huh.NewInput().
			Key(KeySubtask).
			Title("Subtask").
			Placeholder("Optional note (markdown)").
			Value(&draft.Subtask),
	)

	group := huh.NewGroup(fields...).
		Title(submitLabel + " task")

	form := huh.NewForm(group)
	return form.WithKeyMap(CreateKeyMap()).WithShowHelp(false)
}

// ValidateDueDate accepts an empty string or a YYYY-MM-DD calendar date
func ValidateDueDate(s string) error {
	if _, ok := duedate.Normalize(s); !ok {
		return errInvalidDueDate
	}
	return nil
}

func categoryOptions() []huh.Option[string] {
	var names []string
	for _, c := range models.Categories() {
		names = append(names, string(c))
	}
	return huh.NewOptions(names...)
}

func priorityOptions() []huh.Option[string] {
	var names []string
	for _, p := range models.Priorities() {
		names = append(names, string(p))
	}
	return huh.NewOptions(names...)
}
