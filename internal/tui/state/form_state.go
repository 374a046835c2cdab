package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tarea/internal/models"
)

// FormState manages the add/edit task form.
// The huh fields write straight into draft, which is allocated once so
// the pointers handed to huh stay valid across model copies.
type FormState struct {
	form  *huh.Form
	draft *models.Draft
}

// NewFormState creates a new FormState with a default draft.
func NewFormState() *FormState {
	d := models.NewDraft()
	return &FormState{draft: &d}
}

// Form returns the current form instance, nil when no form is open.
func (s *FormState) Form() *huh.Form { return s.form }

// SetForm replaces the form instance.
func (s *FormState) SetForm(f *huh.Form) { s.form = f }

// Draft returns the values bound to the form fields.
func (s *FormState) Draft() *models.Draft { return s.draft }

// Load copies d into the bound draft.
func (s *FormState) Load(d models.Draft) { *s.draft = d }

// Clear closes the form and resets the draft to defaults.
func (s *FormState) Clear() {
	s.form = nil
	*s.draft = models.NewDraft()
}
