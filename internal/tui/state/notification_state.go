package state

import "charm.land/lipgloss/v2"

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelSuccess represents completed user actions (green, check icon)
	LevelSuccess NotificationLevel = iota
	// LevelInfo represents informational notifications (blue, bell icon)
	LevelInfo
	// LevelWarning represents warning notifications (yellow, warning icon)
	LevelWarning
	// LevelError represents error notifications (red, error icon)
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	ID      int
	Level   NotificationLevel
	Message string
}

// maxNotifications bounds the stack; older ones are dropped first
const maxNotifications = 3

// NotificationState manages notification display state.
// Notifications are dismissed by ID once their display time runs out.
type NotificationState struct {
	// notifications contains the list of current notifications to display
	notifications []Notification
	// nextID numbers notifications so expiry messages find the right one
	nextID int
	// windowWidth tracks the current window width for positioning
	windowWidth int
	// windowHeight tracks the current window height for positioning
	windowHeight int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{
		notifications: []Notification{},
	}
}

// Add adds a new notification and returns its ID.
func (s *NotificationState) Add(level NotificationLevel, message string) int {
	s.nextID++
	s.notifications = append(s.notifications, Notification{
		ID:      s.nextID,
		Level:   level,
		Message: message,
	})
	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}
	return s.nextID
}

// Dismiss removes the notification with the given ID, if still shown.
func (s *NotificationState) Dismiss(id int) {
	filtered := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all active notifications.
// Notifications are stacked vertically in the top-right corner of the screen.
func (s *NotificationState) GetLayers(renderFunc func(Notification) string) []*lipgloss.Layer {
	layers := []*lipgloss.Layer{}

	// If window dimensions not set, can't position properly
	if s.windowWidth == 0 {
		return layers
	}

	row := 0
	for _, notification := range s.notifications {
		notificationView := renderFunc(notification)
		notifWidth := lipgloss.Width(notificationView)
		notifHeight := lipgloss.Height(notificationView)

		// 1 char padding from right edge
		col := max(s.windowWidth-notifWidth-1, 0)

		if row+notifHeight >= s.windowHeight {
			// Don't render notifications that would go off screen
			break
		}

		layers = append(layers,
			lipgloss.NewLayer(notificationView).X(col).Y(row))
		row += notifHeight + 1 // +1 for spacing
	}

	return layers
}
