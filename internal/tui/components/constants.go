package components

const (
	// TaskIndicatorWidth is the width of the selection marker and checkbox
	TaskIndicatorWidth = 6

	// SubtaskIndent lines the subtask note up under the task text
	SubtaskIndent = TaskIndicatorWidth

	// PaneChrome is the border plus horizontal padding of a pane
	PaneChrome = 4

	// MinPaneWidth keeps panes readable on narrow terminals
	MinPaneWidth = 24
)
