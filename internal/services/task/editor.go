package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/tarea/internal/models"
)

// Editor holds the add/edit form state on top of a Store.
// In edit mode Submit updates the task being edited; otherwise it creates one.
type Editor struct {
	store  *Store
	draft  models.Draft
	editID string
}

// NewEditor returns an editor with an empty draft, not in edit mode
func NewEditor(store *Store) *Editor {
	return &Editor{store: store, draft: models.NewDraft()}
}

// Draft returns the current form contents
func (e *Editor) Draft() models.Draft {
	return e.draft
}

// SetDraft replaces the form contents
func (e *Editor) SetDraft(d models.Draft) {
	e.draft = d
}

// Editing reports whether Submit will update an existing task
func (e *Editor) Editing() bool {
	return e.editID != ""
}

// EditingID returns the ID of the task being edited, or ""
func (e *Editor) EditingID() string {
	return e.editID
}

// SubmitLabel is the caption of the submit action
func (e *Editor) SubmitLabel() string {
	if e.Editing() {
		return "Update"
	}
	return "Add"
}

// BeginEdit loads a pending task into the draft and enters edit mode
func (e *Editor) BeginEdit(id string) error {
	t, list, ok := e.store.Find(id)
	if !ok || list != models.ListPending {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	e.draft = models.DraftFromTask(t)
	e.editID = id
	return nil
}

// Cancel clears the draft and leaves edit mode
func (e *Editor) Cancel() {
	e.reset()
}

// Release leaves edit mode if id is the task being edited, keeping the draft.
// Call it when that task stops being pending.
func (e *Editor) Release(id string) {
	if e.editID == id {
		e.editID = ""
	}
}

// Submit creates or updates a task from the draft. On success, and on a
// storage error after the change was applied, the form resets. A validation
// error leaves draft and mode untouched.
func (e *Editor) Submit(ctx context.Context) (models.Task, Notice, error) {
	action := ActionAdd
	var (
		t   models.Task
		err error
	)

	if e.Editing() {
		action = ActionUpdate
		t, err = e.store.UpdateByID(ctx, e.editID, e.draft)
	} else {
		t, err = e.store.Create(ctx, e.draft)
	}

	switch {
	case err == nil, errors.Is(err, ErrStorage):
		e.reset()
	case errors.Is(err, ErrTaskNotFound):
		// the edited task is gone; the next submit adds the draft as new
		e.editID = ""
	}

	return t, NoticeFor(action, err), err
}

func (e *Editor) reset() {
	e.draft = models.NewDraft()
	e.editID = ""
}
