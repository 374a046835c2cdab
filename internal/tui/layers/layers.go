// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y := CenterOffset(lipgloss.Width(content), lipgloss.Height(content), screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CenterOffset returns the top-left corner that centers a box on the screen,
// pinned to the origin when the box is larger than the screen
func CenterOffset(contentWidth, contentHeight, screenWidth, screenHeight int) (int, int) {
	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2
	return max(x, 0), max(y, 0)
}

// ModalSize returns a modal width and height as a share of the screen,
// clamped to the given minimums and to the screen itself
func ModalSize(screenWidth, screenHeight, minWidth, minHeight int) (int, int) {
	width := min(max(screenWidth*6/10, minWidth), screenWidth)
	height := min(max(screenHeight*6/10, minHeight), screenHeight)
	return width, height
}
