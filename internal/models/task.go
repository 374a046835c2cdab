package models

// Task is a single entry in either the pending or the completed list.
// ID is assigned per session and is not part of the stored record.
type Task struct {
	ID       string   `json:"-"`
	Text     string   `json:"text"`
	DueDate  string   `json:"dueDate"`
	Category Category `json:"category"`
	Priority Priority `json:"priority"`
	Subtask  string   `json:"subtask"`
}

// GetID returns the session identifier of the task
func (t Task) GetID() string {
	return t.ID
}

// HasSubtask reports whether the task carries a subtask note
func (t Task) HasSubtask() bool {
	return t.Subtask != ""
}

// SameContent compares the stored fields of two tasks, ignoring ID
func (t Task) SameContent(other Task) bool {
	return t.Text == other.Text &&
		t.DueDate == other.DueDate &&
		t.Category == other.Category &&
		t.Priority == other.Priority &&
		t.Subtask == other.Subtask
}

// Draft is raw form or flag input before it becomes a Task.
// Category and Priority are free text here and get parsed on submit.
type Draft struct {
	Text     string
	DueDate  string
	Category string
	Priority string
	Subtask  string
}

// NewDraft returns an empty draft with the default category and priority
func NewDraft() Draft {
	return Draft{
		Category: string(DefaultCategory),
		Priority: string(DefaultPriority),
	}
}

// DraftFromTask loads an existing task back into a draft for editing
func DraftFromTask(t Task) Draft {
	return Draft{
		Text:     t.Text,
		DueDate:  t.DueDate,
		Category: string(t.Category),
		Priority: string(t.Priority),
		Subtask:  t.Subtask,
	}
}
