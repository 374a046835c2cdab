package task

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/tarea/internal/cli/styles"
	"github.com/thenoetrevino/tarea/internal/models"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
)

// TaskOutput is a task as printed by the CLI
type TaskOutput struct {
	Position int    `json:"position"`
	List     string `json:"list"`
	Text     string `json:"text"`
	DueDate  string `json:"dueDate"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Subtask  string `json:"subtask"`
	Overdue  bool   `json:"overdue"`
}

// GetID returns the position, which is what later commands take as argument
func (o TaskOutput) GetID() string {
	return strconv.Itoa(o.Position)
}

func newTaskOutput(store *taskservice.Store, t models.Task, list models.ListName, position int) TaskOutput {
	return TaskOutput{
		Position: position,
		List:     string(list),
		Text:     t.Text,
		DueDate:  t.DueDate,
		Category: string(t.Category),
		Priority: string(t.Priority),
		Subtask:  t.Subtask,
		Overdue:  list == models.ListPending && store.IsOverdue(t.DueDate),
	}
}

// String renders one listing line, plus a second line for the subtask note
func (o TaskOutput) String() string {
	var b strings.Builder

	check := "[ ]"
	text := styles.ValueStyle.Render(o.Text)
	if o.List == string(models.ListCompleted) {
		check = "[x]"
		text = styles.CompletedStyle.Render(o.Text)
	}
	fmt.Fprintf(&b, "%3d. %s %s", o.Position, check, text)

	var meta []string
	if o.DueDate != "" {
		due := "due " + o.DueDate
		if o.Overdue {
			due = styles.OverdueStyle.Render(due + " (overdue)")
		}
		meta = append(meta, due)
	}
	meta = append(meta, o.Category,
		styles.PriorityStyle(models.Priority(o.Priority)).Render(o.Priority))
	b.WriteString("  ")
	b.WriteString(styles.SubtitleStyle.Render("(") + strings.Join(meta, ", ") + styles.SubtitleStyle.Render(")"))

	if o.Subtask != "" {
		b.WriteString("\n       ")
		b.WriteString(styles.SubtitleStyle.Render("↳ " + o.Subtask))
	}
	return b.String()
}

// printNotice writes the human-readable confirmation for a completed action
func printNotice(action taskservice.Action, out TaskOutput) {
	n := taskservice.NoticeFor(action, nil)
	badge := styles.SuccessStyle
	switch n.Level {
	case taskservice.LevelInfo:
		badge = styles.InfoStyle
	case taskservice.LevelError:
		badge = styles.ErrorStyle
	}
	fmt.Println(badge.Render(n.Message))
	fmt.Println(out.String())
}
