package models

import (
	"fmt"
	"strings"
)

// ============================================================================
// CATEGORIES
// ============================================================================

// Category groups tasks by area of life
type Category string

const (
	CategoryGeneral  Category = "General"
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryUrgent   Category = "Urgent"
)

// DefaultCategory is used when a draft leaves category empty
const DefaultCategory = CategoryGeneral

// CategoryFilterAll matches every category in a view
const CategoryFilterAll = "all"

// Categories returns every category in display order
func Categories() []Category {
	return []Category{CategoryGeneral, CategoryWork, CategoryPersonal, CategoryUrgent}
}

// ParseCategory maps user input onto a Category, ignoring case.
// Empty input yields DefaultCategory.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultCategory, nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// ParseCategoryFilter accepts "all" (or empty) in addition to the categories
func ParseCategoryFilter(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, CategoryFilterAll) {
		return CategoryFilterAll, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return "", err
	}
	return string(c), nil
}

func (c Category) String() string {
	return string(c)
}

// ============================================================================
// LISTS
// ============================================================================

// ListName identifies one of the two task lists
type ListName string

const (
	ListPending   ListName = "pending"
	ListCompleted ListName = "completed"
)

// ParseListName maps user input onto a ListName, ignoring case.
// Empty input yields ListPending.
func ParseListName(s string) (ListName, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ListPending):
		return ListPending, nil
	case string(ListCompleted):
		return ListCompleted, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownList, s)
	}
}

// Other returns the list a task moves to when toggled
func (l ListName) Other() ListName {
	if l == ListCompleted {
		return ListPending
	}
	return ListCompleted
}

func (l ListName) String() string {
	return string(l)
}
