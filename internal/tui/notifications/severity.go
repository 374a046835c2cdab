package notifications

// Severity represents the severity level of a notification
type Severity int

const (
	Success Severity = iota
	Info
	Warning
	Error
)
