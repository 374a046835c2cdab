package models

import "errors"

// Parsing errors for the enumerated task fields
var (
	// ErrUnknownCategory indicates a category outside General, Work, Personal, Urgent
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownPriority indicates a priority outside Low, Normal, High
	ErrUnknownPriority = errors.New("unknown priority")

	// ErrUnknownList indicates a list name other than pending or completed
	ErrUnknownList = errors.New("unknown task list")
)
