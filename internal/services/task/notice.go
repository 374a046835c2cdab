package task

import (
	"errors"

	"github.com/thenoetrevino/tarea/internal/models"
)

// Level is the severity of a Notice
type Level int

const (
	LevelSuccess Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	default:
		return "error"
	}
}

// Action names a mutating user action
type Action int

const (
	ActionAdd Action = iota
	ActionUpdate
	ActionComplete
	ActionReopen
	ActionRemovePending
	ActionRemoveCompleted
)

// RemoveAction picks the delete action for list
func RemoveAction(list models.ListName) Action {
	if list == models.ListCompleted {
		return ActionRemoveCompleted
	}
	return ActionRemovePending
}

// Notice is the transient feedback shown after an action
type Notice struct {
	Level   Level
	Message string
}

var successNotices = map[Action]Notice{
	ActionAdd:             {LevelSuccess, "Task added!"},
	ActionUpdate:          {LevelSuccess, "Task updated!"},
	ActionComplete:        {LevelInfo, "Task marked as completed!"},
	ActionReopen:          {LevelInfo, "Task moved to pending!"},
	ActionRemovePending:   {LevelError, "Task deleted from pending."},
	ActionRemoveCompleted: {LevelError, "Task deleted from completed."},
}

// NoticeFor builds the feedback for the outcome of action
func NoticeFor(action Action, err error) Notice {
	switch {
	case err == nil:
		return successNotices[action]
	case errors.Is(err, ErrEmptyText):
		return Notice{LevelWarning, "Please enter a task."}
	case errors.Is(err, ErrValidation):
		return Notice{LevelWarning, err.Error()}
	case errors.Is(err, ErrStorage):
		return Notice{LevelError, "Changes kept for this session but could not be saved: " + err.Error()}
	case errors.Is(err, ErrTaskNotFound), errors.Is(err, ErrIndexOutOfRange):
		return Notice{LevelError, "That task no longer exists."}
	default:
		return Notice{LevelError, err.Error()}
	}
}
