package models

import (
	"fmt"
	"strings"
)

// Priority is the urgency attached to a task
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
)

// DefaultPriority is used when a draft leaves priority empty
const DefaultPriority = PriorityNormal

// Priorities returns every priority in display order
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityNormal, PriorityHigh}
}

// ParsePriority maps user input onto a Priority, ignoring case.
// Empty input yields DefaultPriority.
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultPriority, nil
	}
	for _, p := range Priorities() {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}

// Rank orders priorities from Low (0) to High (2); unknown values rank as Normal
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityHigh:
		return 2
	default:
		return 1
	}
}

func (p Priority) String() string {
	return string(p)
}
